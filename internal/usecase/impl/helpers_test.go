package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"bookswap/internal/domain/entity"
	"bookswap/internal/domain/repository"
	"bookswap/internal/domain/service"

	"github.com/google/uuid"
)

// fakeTxManager runs the unit of work directly against in-memory repositories.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepoFactory struct {
	users  *fakeUserRepo
	books  *fakeBookRepo
	offers *fakeOfferRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository   { return f.users }
func (f *fakeRepoFactory) BookRepo() repository.BookRepository   { return f.books }
func (f *fakeRepoFactory) OfferRepo() repository.OfferRepository { return f.offers }

func newFakeStore() (*fakeTxManager, *fakeRepoFactory) {
	factory := &fakeRepoFactory{
		users:  &fakeUserRepo{byID: map[uuid.UUID]*entity.User{}},
		books:  &fakeBookRepo{byID: map[uuid.UUID]*entity.Book{}},
		offers: &fakeOfferRepo{byID: map[uuid.UUID]*entity.Offer{}},
	}

	return &fakeTxManager{factory: factory}, factory
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.byID {
		if strings.EqualFold(user.Email, email) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.byID[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.byID[user.ID] = &clone

	return nil
}

type fakeBookRepo struct {
	byID map[uuid.UUID]*entity.Book
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Book, error) {
	book, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrBookNotFound
	}
	clone := *book

	return &clone, nil
}

func (r *fakeBookRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Book, error) {
	return r.filter(func(b *entity.Book) bool { return b.OwnerID == ownerID }), nil
}

func (r *fakeBookRepo) FindByOtherOwners(_ context.Context, userID uuid.UUID) ([]*entity.Book, error) {
	return r.filter(func(b *entity.Book) bool { return b.OwnerID != userID }), nil
}

func (r *fakeBookRepo) filter(keep func(*entity.Book) bool) []*entity.Book {
	var books []*entity.Book
	for _, book := range r.byID {
		if keep(book) {
			clone := *book
			books = append(books, &clone)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].ID.String() < books[j].ID.String()
	})

	return books
}

func (r *fakeBookRepo) Create(_ context.Context, book *entity.Book) error {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	clone := *book
	r.byID[book.ID] = &clone

	return nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *entity.Book) error {
	if _, ok := r.byID[book.ID]; !ok {
		return repository.ErrBookNotFound
	}
	book.UpdatedAt = time.Now()
	clone := *book
	r.byID[book.ID] = &clone

	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrBookNotFound
	}
	delete(r.byID, id)

	return nil
}

type fakeOfferRepo struct {
	byID map[uuid.UUID]*entity.Offer
}

func (r *fakeOfferRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}
	clone := cloneOffer(offer)

	return clone, nil
}

func (r *fakeOfferRepo) FindByParty(_ context.Context, userID uuid.UUID) ([]*entity.Offer, error) {
	var offers []*entity.Offer
	for _, offer := range r.byID {
		if offer.ProposerID == userID || offer.CounterUserID == userID {
			offers = append(offers, cloneOffer(offer))
		}
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].ID.String() < offers[j].ID.String()
	})

	return offers, nil
}

func (r *fakeOfferRepo) Create(_ context.Context, offer *entity.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	now := time.Now()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	r.byID[offer.ID] = cloneOffer(offer)

	return nil
}

func (r *fakeOfferRepo) Update(_ context.Context, offer *entity.Offer) error {
	if _, ok := r.byID[offer.ID]; !ok {
		return repository.ErrOfferNotFound
	}
	offer.UpdatedAt = time.Now()
	r.byID[offer.ID] = cloneOffer(offer)

	return nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrOfferNotFound
	}
	delete(r.byID, id)

	return nil
}

func cloneOffer(offer *entity.Offer) *entity.Offer {
	clone := *offer
	if offer.BookTwo != nil {
		bookTwo := *offer.BookTwo
		clone.BookTwo = &bookTwo
	}

	return &clone
}

// fakeHasher keeps passwords recoverable so tests can assert on the stored value.
type fakeHasher struct {
	failHash bool
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.failHash {
		return "", fmt.Errorf("hash backend unavailable")
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (s *fakeTokenService) IssueToken(userID uuid.UUID, email string) (string, error) {
	return "token:" + userID.String() + ":" + email, nil
}

func (s *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
