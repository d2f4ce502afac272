package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is an item owned by exactly one User at any time.
type Book struct {
	ID            uuid.UUID `json:"id"`            // The unique identifier for the book.
	Title         string    `json:"title"`         // The book's title.
	Type          string    `json:"type"`          // Category of the book, e.g. "novel", "textbook".
	State         string    `json:"state"`         // Physical condition, e.g. "new", "used".
	PublishedYear int       `json:"publishedYear"` // Year of publication.
	Genre         string    `json:"genre"`         // The book's genre.
	Author        string    `json:"author"`        // The book's author.
	Size          string    `json:"size"`          // Size descriptor, e.g. "pocket", "hardcover".
	Picture       string    `json:"picture,omitempty"` // Optional URL of a picture of the book.
	OwnerID       uuid.UUID `json:"ownerId"`       // The user who currently owns this book.
	CreatedAt     time.Time `json:"createdAt"`     // Timestamp of when this book was listed.
	UpdatedAt     time.Time `json:"updatedAt"`     // Timestamp of the last modification to this book's data.
}

// Snapshot captures the book's fields by value for embedding in an Offer.
// The copy is independent of later edits to (or deletion of) the original book.
func (b *Book) Snapshot() BookSnapshot {
	return BookSnapshot{
		BookID:        b.ID,
		Title:         b.Title,
		Type:          b.Type,
		State:         b.State,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre,
		Author:        b.Author,
		Size:          b.Size,
		Picture:       b.Picture,
		OwnerID:       b.OwnerID,
	}
}
