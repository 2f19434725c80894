package domain

import "context"

// UserRepository resolves accounts. Lookups that find nothing return
// ErrNotFound.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpsertByEmail(ctx context.Context, email, name string) (*User, error)
}

// ImageRepository appends and lists generation records. There is no update
// or delete path.
type ImageRepository interface {
	Create(ctx context.Context, image *Image) error
	ListByUser(ctx context.Context, userID string) ([]Image, error)
}
