package model

import (
	"time"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table. The book snapshots are copies by
// value stored as JSONB columns; the party ids are real columns so the
// "offers this user is a party to" query is a plain index scan.
type OfferModel struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProposerID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	CounterUserID uuid.UUID            `gorm:"type:uuid;not null;index"`
	BookOne       entity.BookSnapshot  `gorm:"type:jsonb;serializer:json;not null"`
	BookTwo       *entity.BookSnapshot `gorm:"type:jsonb;serializer:json"`
	OwnerOneAck   bool                 `gorm:"not null;default:false"`
	OwnerTwoAck   bool                 `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
