package repository

import (
	"context"
	"errors"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOfferNotFound is a domain-specific error returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the standard operations for offer persistence.
type OfferRepository interface {
	// FindByID retrieves a single offer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByParty retrieves every offer where the given user is either the
	// proposer or the counter-party.
	FindByParty(ctx context.Context, userID uuid.UUID) ([]*entity.Offer, error)

	// Create persists a new offer entity to the storage.
	Create(ctx context.Context, offer *entity.Offer) error

	// Update modifies an existing offer entity in the storage.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes an offer by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
