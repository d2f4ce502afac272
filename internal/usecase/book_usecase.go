package usecase

import (
	"context"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookInput defines the data required to list a new book.
type CreateBookInput struct {
	Title         string
	Type          string
	State         string
	PublishedYear int
	Genre         string
	Author        string
	Size          string
	Picture       string
}

// UpdateBookInput defines the book fields that may change after listing.
// Nil fields are left untouched.
type UpdateBookInput struct {
	Title         *string
	Type          *string
	State         *string
	PublishedYear *int
	Genre         *string
	Author        *string
	Size          *string
	Picture       *string
}

// BookUsecase defines the interface for book-related business operations.
type BookUsecase interface {
	// CreateBook lists a new book under the given owner.
	CreateBook(ctx context.Context, ownerID uuid.UUID, input *CreateBookInput) (*entity.Book, error)

	// ListOwned returns the books owned by the given user.
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error)

	// ListOthers returns the browsable catalogue: every book not owned by the given user.
	ListOthers(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error)

	// GetBook returns a single book by id.
	GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error)

	// UpdateBook applies a partial update to a book.
	UpdateBook(ctx context.Context, bookID uuid.UUID, input *UpdateBookInput) (*entity.Book, error)

	// DeleteBook removes a book. The relational owner reference guarantees the
	// book also disappears from its owner's collection.
	DeleteBook(ctx context.Context, bookID uuid.UUID) error
}
