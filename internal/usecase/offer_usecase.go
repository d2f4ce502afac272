package usecase

import (
	"context"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferUsecase defines the interface for the offer negotiation engine.
//
// An offer moves Proposed -> Countered -> Accepted; withdrawal deletes the
// record from any state. There is no rejected state.
type OfferUsecase interface {
	// Propose creates a new offer against the target book on behalf of the
	// initiating user. The created offer is in the Proposed state.
	Propose(ctx context.Context, proposerID, targetBookID uuid.UUID) (*entity.Offer, error)

	// Counter attaches a counter book to the offer and forces the responding
	// party's acknowledgement. Calling it again overwrites the counter book.
	Counter(ctx context.Context, offerID, counterBookID uuid.UUID) (*entity.Offer, error)

	// Accept sets the initiating party's acknowledgement unconditionally and
	// returns the offer as it was fetched before the update. Idempotent.
	Accept(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error)

	// ListForUser returns every offer the given user is a party to, as
	// proposer or counter-party.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Offer, error)

	// Withdraw deletes the offer and returns its pre-deletion snapshot.
	Withdraw(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error)
}
