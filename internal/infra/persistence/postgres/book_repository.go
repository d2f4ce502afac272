package postgres

import (
	"context"

	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/domain/repository"
	"bookswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByOwner retrieves every book owned by the given user.
func (repo *bookRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error) {
	var bookModels []model.BookModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&bookModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find books by owner")
	}

	return toBookDomainSlice(bookModels), nil
}

// FindByOtherOwners retrieves every book not owned by the given user.
func (repo *bookRepository) FindByOtherOwners(ctx context.Context, ownerID uuid.UUID) ([]*entity.Book, error) {
	var bookModels []model.BookModel
	err := repo.db.WithContext(ctx).
		Where("owner_id <> ?", ownerID).
		Order("created_at DESC").
		Find(&bookModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find books of other owners")
	}

	return toBookDomainSlice(bookModels), nil
}

// Create persists a new book entity to the database.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("book owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update modifies an existing book entity in the database.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Save(bookM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update book")
	}

	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Delete removes a book by its ID. Ownership is relational, so the row's
// removal also removes the book from its owner's collection.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:            data.ID,
		Title:         data.Title,
		Type:          data.Type,
		State:         data.State,
		PublishedYear: data.PublishedYear,
		Genre:         data.Genre,
		Author:        data.Author,
		Size:          data.Size,
		Picture:       data.Picture,
		OwnerID:       data.OwnerID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toBookDomainSlice(data []model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for i := range data {
		books = append(books, toBookDomain(&data[i]))
	}

	return books
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:            data.ID,
		Title:         data.Title,
		Type:          data.Type,
		State:         data.State,
		PublishedYear: data.PublishedYear,
		Genre:         data.Genre,
		Author:        data.Author,
		Size:          data.Size,
		Picture:       data.Picture,
		OwnerID:       data.OwnerID,
		CreatedAt:     data.CreatedAt,
	}
}
