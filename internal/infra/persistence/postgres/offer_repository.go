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

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// FindByID retrieves a single offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindByParty retrieves every offer where the given user is the proposer or
// the counter-party. Both columns are indexed, so this replaces the snapshot
// matching the user's offer collection used to require.
func (repo *offerRepository) FindByParty(ctx context.Context, userID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []model.OfferModel
	err := repo.db.WithContext(ctx).
		Where("proposer_id = ? OR counter_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&offerModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by party")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for i := range offerModels {
		offers = append(offers, toOfferDomain(&offerModels[i]))
	}

	return offers, nil
}

// Create persists a new offer entity to the database.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("offer party does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Update modifies an existing offer entity in the database.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Save(offerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Delete removes an offer by its ID.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:            data.ID,
		ProposerID:    data.ProposerID,
		CounterUserID: data.CounterUserID,
		BookOne:       data.BookOne,
		BookTwo:       data.BookTwo,
		OwnerOneAck:   data.OwnerOneAck,
		OwnerTwoAck:   data.OwnerTwoAck,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel for persistence.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:            data.ID,
		ProposerID:    data.ProposerID,
		CounterUserID: data.CounterUserID,
		BookOne:       data.BookOne,
		BookTwo:       data.BookTwo,
		OwnerOneAck:   data.OwnerOneAck,
		OwnerTwoAck:   data.OwnerTwoAck,
		CreatedAt:     data.CreatedAt,
	}
}
