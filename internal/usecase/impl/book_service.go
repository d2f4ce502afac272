package impl

import (
	"context"
	"log/slog"

	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/domain/repository"
	"bookswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(txManager repository.TransactionManager, logger *slog.Logger) usecase.BookUsecase {
	return &bookService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateBook registers a new book under the given owner.
func (srv *bookService) CreateBook(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBookInput) (*entity.Book, error) {
	srv.logger.Info("Creating book", "ownerID", ownerID, "title", input.Title)

	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		bookRepo := repoFactory.BookRepo()

		// The owner must exist before we attach a book to them.
		if _, err := userRepo.FindByID(ctx, ownerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "book owner not found")
			}

			return errors.Wrap(err, "failed to find book owner")
		}

		newBook := &entity.Book{
			Title:         input.Title,
			Type:          input.Type,
			State:         input.State,
			PublishedYear: input.PublishedYear,
			Genre:         input.Genre,
			Author:        input.Author,
			Size:          input.Size,
			Picture:       input.Picture,
			OwnerID:       ownerID,
		}

		if err := bookRepo.Create(ctx, newBook); err != nil {
			return errors.WithStack(err)
		}
		book = newBook

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to create book", "error", err, "ownerID", ownerID)

		return nil, errors.Wrap(err, "failed to create book")
	}
	srv.logger.Debug("Book created", "bookID", book.ID)

	return book, nil
}

// ListOwned returns all books owned by the given user.
func (srv *bookService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error) {
	var books []*entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to list owned books")
		}
		books = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// ListOthers returns the browsing catalogue: every book not owned by the given user.
func (srv *bookService) ListOthers(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error) {
	var books []*entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().FindByOtherOwners(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list books from other owners")
		}
		books = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// GetBook retrieves a single book by id.
func (srv *bookService) GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error) {
	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookRepo().FindByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to find book")
		}
		book = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// UpdateBook applies a partial update to a book's descriptive fields.
func (srv *bookService) UpdateBook(ctx context.Context, bookID uuid.UUID, input *usecase.UpdateBookInput) (*entity.Book, error) {
	srv.logger.Info("Updating book", "bookID", bookID)

	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		found, err := bookRepo.FindByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to find book")
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Type != nil {
			found.Type = *input.Type
		}
		if input.State != nil {
			found.State = *input.State
		}
		if input.PublishedYear != nil {
			found.PublishedYear = *input.PublishedYear
		}
		if input.Genre != nil {
			found.Genre = *input.Genre
		}
		if input.Author != nil {
			found.Author = *input.Author
		}
		if input.Size != nil {
			found.Size = *input.Size
		}
		if input.Picture != nil {
			found.Picture = *input.Picture
		}

		if err := bookRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update book")
		}
		book = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook removes a book. Offers referencing it keep their snapshot copy.
func (srv *bookService) DeleteBook(ctx context.Context, bookID uuid.UUID) error {
	srv.logger.Info("Deleting book", "bookID", bookID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.BookRepo().Delete(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to delete book")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to delete book", "error", err, "bookID", bookID)

		return err
	}

	return nil
}
