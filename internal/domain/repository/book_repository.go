package repository

import (
	"context"
	"errors"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByOwner retrieves every book owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error)

	// FindByOtherOwners retrieves every book NOT owned by the given user,
	// i.e. the browsable catalogue from that user's point of view.
	FindByOtherOwners(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error)

	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book entity in the storage.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book by its ID. Because ownership is a relational
	// reference, deleting the row also removes it from the owner's collection.
	Delete(ctx context.Context, id uuid.UUID) error
}
