// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Name           string    `gorm:"type:varchar(100)"`
	City           string    `gorm:"type:varchar(100)"`
	PhoneNumber    string    `gorm:"type:varchar(30)"`
	ProfilePicture string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Books []BookModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
