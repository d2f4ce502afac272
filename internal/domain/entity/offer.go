package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus is the stage of negotiation an offer is in.
// There is no rejected terminal state; a rejection is modeled as deletion.
type OfferStatus string

const (
	// OfferStatusProposed means only the target book snapshot exists and
	// neither party has confirmed.
	OfferStatusProposed OfferStatus = "proposed"
	// OfferStatusCountered means the counter-party attached their book,
	// which forces their acknowledgement.
	OfferStatusCountered OfferStatus = "countered"
	// OfferStatusAccepted means both acknowledgements are set.
	OfferStatusAccepted OfferStatus = "accepted"
)

// BookSnapshot is a copy-by-value capture of a Book's fields at the moment it
// was attached to an offer. It keeps the original book and owner ids so the
// parties of an offer stay resolvable even after the book is edited or deleted.
type BookSnapshot struct {
	BookID        uuid.UUID `json:"bookId"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	State         string    `json:"state"`
	PublishedYear int       `json:"publishedYear"`
	Genre         string    `json:"genre"`
	Author        string    `json:"author"`
	Size          string    `json:"size"`
	Picture       string    `json:"picture,omitempty"`
	OwnerID       uuid.UUID `json:"ownerId"`
}

// Offer is a negotiation envelope between two users' books.
//
// ProposerID and CounterUserID identify the parties directly instead of being
// inferred from the embedded snapshots. The proposer is the initiating user;
// the counter-party is the owner of BookOne, known at proposal time.
type Offer struct {
	ID            uuid.UUID     `json:"id"`                // The unique identifier for the offer.
	ProposerID    uuid.UUID     `json:"proposerId"`        // The user who initiated the offer.
	CounterUserID uuid.UUID     `json:"counterUserId"`     // The owner of BookOne, who may counter and withdraw.
	BookOne       BookSnapshot  `json:"bookOne"`           // Snapshot of the target book taken at proposal time.
	BookTwo       *BookSnapshot `json:"bookTwo,omitempty"` // Snapshot of the counter-offered book. Nil until countered.
	OwnerOneAck   bool          `json:"ownerOneAck"`       // Whether the initiating party has confirmed.
	OwnerTwoAck   bool          `json:"ownerTwoAck"`       // Whether the responding party has confirmed. Forced true when BookTwo is set.
	CreatedAt     time.Time     `json:"createdAt"`         // Timestamp of when the offer was proposed.
	UpdatedAt     time.Time     `json:"updatedAt"`         // Timestamp of the last state change.
}

// Status derives the negotiation stage from the offer's fields.
func (o *Offer) Status() OfferStatus {
	switch {
	case o.OwnerOneAck && o.OwnerTwoAck:
		return OfferStatusAccepted
	case o.BookTwo != nil:
		return OfferStatusCountered
	default:
		return OfferStatusProposed
	}
}
