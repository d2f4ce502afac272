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

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OfferUsecase {
	return &offerService{
		txManager: txManager,
		logger:    logger,
	}
}

// Propose opens a negotiation against the target book. The book's current
// fields are copied into the offer so later edits to the book do not change
// what was offered.
func (srv *offerService) Propose(ctx context.Context, proposerID uuid.UUID, targetBookID uuid.UUID) (*entity.Offer, error) {
	srv.logger.Info("Proposing offer", "proposerID", proposerID, "targetBookID", targetBookID)

	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		bookRepo := repoFactory.BookRepo()
		offerRepo := repoFactory.OfferRepo()

		if _, err := userRepo.FindByID(ctx, proposerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "proposer not found")
			}

			return errors.Wrap(err, "failed to find proposer")
		}

		targetBook, err := bookRepo.FindByID(ctx, targetBookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "target book not found")
			}

			return errors.Wrap(err, "failed to find target book")
		}

		newOffer := &entity.Offer{
			ProposerID:    proposerID,
			CounterUserID: targetBook.OwnerID,
			BookOne:       targetBook.Snapshot(),
		}

		if err := offerRepo.Create(ctx, newOffer); err != nil {
			return errors.WithStack(err)
		}
		offer = newOffer

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to propose offer", "error", err, "proposerID", proposerID)

		return nil, errors.Wrap(err, "failed to propose offer")
	}
	srv.logger.Debug("Offer proposed", "offerID", offer.ID)

	return offer, nil
}

// Counter attaches the counter-party's book to an open offer. Countering
// again replaces the previous counter book. Attaching the book also records
// the counter-party's acknowledgement.
func (srv *offerService) Counter(ctx context.Context, offerID uuid.UUID, counterBookID uuid.UUID) (*entity.Offer, error) {
	srv.logger.Info("Countering offer", "offerID", offerID, "counterBookID", counterBookID)

	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		offerRepo := repoFactory.OfferRepo()

		found, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrOfferNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		counterBook, err := bookRepo.FindByID(ctx, counterBookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "counter book not found")
			}

			return errors.Wrap(err, "failed to find counter book")
		}

		snapshot := counterBook.Snapshot()
		found.BookTwo = &snapshot
		found.OwnerTwoAck = true

		if err := offerRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}
		offer = found

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to counter offer", "error", err, "offerID", offerID)

		return nil, errors.Wrap(err, "failed to counter offer")
	}

	return offer, nil
}

// Accept records the proposer's acknowledgement of the current terms. The
// returned offer reflects the state before this acknowledgement was stored;
// callers reading the live state should fetch the offer again.
func (srv *offerService) Accept(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	srv.logger.Info("Accepting offer", "offerID", offerID)

	var before *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		found, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrOfferNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		snapshot := *found
		before = &snapshot

		found.OwnerOneAck = true
		if err := offerRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to accept offer", "error", err, "offerID", offerID)

		return nil, errors.Wrap(err, "failed to accept offer")
	}

	return before, nil
}

// ListForUser returns every offer where the user is either the proposer or
// the counter-party.
func (srv *offerService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Offer, error) {
	var offers []*entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OfferRepo().FindByParty(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list offers")
		}
		offers = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// Withdraw removes an offer regardless of its negotiation state and returns
// the record as it stood before deletion.
func (srv *offerService) Withdraw(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	srv.logger.Info("Withdrawing offer", "offerID", offerID)

	var withdrawn *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		found, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrOfferNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if err := offerRepo.Delete(ctx, offerID); err != nil {
			return errors.Wrap(err, "failed to delete offer")
		}
		withdrawn = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to withdraw offer", "error", err, "offerID", offerID)

		return nil, err
	}

	return withdrawn, nil
}
