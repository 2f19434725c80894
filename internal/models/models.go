// Package models holds the gorm table definitions used to create and upgrade
// the schema. Runtime queries go through internal/sqlinline.
package models

import "time"

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Name      string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

// Image rows are append-only. IDs are UUIDv7 so ordering by id matches
// insertion order within the same created_at.
type Image struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;index:idx_images_user_created,priority:1"`
	Prompt    string    `gorm:"not null"`
	ImageURL  string    `gorm:"not null"`
	Style     string    `gorm:"not null"`
	Size      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;default:now();index:idx_images_user_created,priority:2,sort:desc"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}

type IntegrationToken struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Provider   string    `gorm:"not null;uniqueIndex"`
	Token      string    `gorm:"not null"`
	Properties string    `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time `gorm:"not null;default:now()"`
	UpdatedAt  time.Time `gorm:"not null;default:now()"`
}

// All lists every table in dependency order.
func All() []any {
	return []any{&User{}, &Image{}, &IntegrationToken{}}
}
