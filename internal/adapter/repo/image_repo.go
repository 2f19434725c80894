package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pixelforge/internal/domain"
	"pixelforge/internal/infra"
	"pixelforge/internal/sqlinline"
)

// ImageRepositoryPG implements domain.ImageRepository using PostgreSQL.
type ImageRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewImageRepository constructs a new image repository instance.
func NewImageRepository(sql infra.SQLExecutor) *ImageRepositoryPG {
	return &ImageRepositoryPG{sql: sql}
}

// Create appends image as a new row and fills in its ID and CreatedAt.
// Nothing is deduplicated.
func (r *ImageRepositoryPG) Create(ctx context.Context, image *domain.Image) error {
	if err := image.Validate(); err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("image id: %w", err)
	}

	row := r.sql.QueryRow(ctx, sqlinline.QInsertImage,
		id.String(),
		image.UserID,
		image.Prompt,
		image.ImageURL,
		image.Style,
		image.Size,
	)
	if err := row.Scan(&image.CreatedAt); err != nil {
		if infra.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownOwner, image.UserID)
		}
		return err
	}
	image.ID = id.String()
	return nil
}

// ListByUser returns the user's images, most recent first.
func (r *ImageRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.Image, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectImagesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.UserID, &img.Prompt, &img.ImageURL, &img.Style, &img.Size, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

var _ domain.ImageRepository = (*ImageRepositoryPG)(nil)
