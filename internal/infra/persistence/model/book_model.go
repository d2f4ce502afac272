package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. OwnerID references users.id, so a
// user's owned-book collection is the relation itself; deleting a book
// removes it from the owner's collection structurally.
type BookModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Type          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(100);not null"`
	PublishedYear int       `gorm:"not null"`
	Genre         string    `gorm:"type:varchar(100);not null"`
	Author        string    `gorm:"type:varchar(255);not null"`
	Size          string    `gorm:"type:varchar(50);not null"`
	Picture       string    `gorm:"type:text"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
