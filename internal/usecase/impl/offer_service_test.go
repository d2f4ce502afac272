package impl

import (
	"context"
	"testing"

	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/errors"
	"bookswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerFixture struct {
	svc       usecase.OfferUsecase
	books     usecase.BookUsecase
	alice     *entity.User
	bob       *entity.User
	aliceBook *entity.Book
	bobBook   *entity.Book
}

// newOfferFixture seeds two users who each own one book.
func newOfferFixture(t *testing.T) *offerFixture {
	t.Helper()

	tx, factory := newFakeStore()
	books := NewBookService(tx, testLogger())
	ctx := context.Background()

	alice := seedUser(t, factory, "alice@example.com")
	bob := seedUser(t, factory, "bob@example.com")

	aliceBook, err := books.CreateBook(ctx, alice.ID, &usecase.CreateBookInput{Title: "Alice's Book", State: "used"})
	require.NoError(t, err)
	bobBook, err := books.CreateBook(ctx, bob.ID, &usecase.CreateBookInput{Title: "Bob's Book", State: "new"})
	require.NoError(t, err)

	return &offerFixture{
		svc:       NewOfferService(tx, testLogger()),
		books:     books,
		alice:     alice,
		bob:       bob,
		aliceBook: aliceBook,
		bobBook:   bobBook,
	}
}

func TestOfferService_Propose(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	// Bob opens a negotiation against Alice's book.
	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, offer.ID)

	assert.Equal(t, f.bob.ID, offer.ProposerID)
	assert.Equal(t, f.alice.ID, offer.CounterUserID)
	assert.Equal(t, f.aliceBook.ID, offer.BookOne.BookID)
	assert.Equal(t, "Alice's Book", offer.BookOne.Title)
	assert.Nil(t, offer.BookTwo)
	assert.False(t, offer.OwnerOneAck)
	assert.False(t, offer.OwnerTwoAck)
	assert.Equal(t, entity.OfferStatusProposed, offer.Status())
}

func TestOfferService_ProposeUnknownTargets(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	_, err := f.svc.Propose(ctx, uuid.New(), f.aliceBook.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = f.svc.Propose(ctx, f.bob.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestOfferService_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)

	// Editing the live book after the proposal must not change the offer.
	newTitle := "Renamed"
	_, err = f.books.UpdateBook(ctx, f.aliceBook.ID, &usecase.UpdateBookInput{Title: &newTitle})
	require.NoError(t, err)

	offers, err := f.svc.ListForUser(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, offer.ID, offers[0].ID)
	assert.Equal(t, "Alice's Book", offers[0].BookOne.Title)
}

func TestOfferService_Counter(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)

	countered, err := f.svc.Counter(ctx, offer.ID, f.bobBook.ID)
	require.NoError(t, err)
	require.NotNil(t, countered.BookTwo)
	assert.Equal(t, f.bobBook.ID, countered.BookTwo.BookID)
	assert.True(t, countered.OwnerTwoAck)
	assert.False(t, countered.OwnerOneAck)
	assert.Equal(t, entity.OfferStatusCountered, countered.Status())
}

func TestOfferService_CounterReplacesPreviousBook(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	secondBook, err := f.books.CreateBook(ctx, f.bob.ID, &usecase.CreateBookInput{Title: "Bob's Other Book"})
	require.NoError(t, err)

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)

	_, err = f.svc.Counter(ctx, offer.ID, f.bobBook.ID)
	require.NoError(t, err)

	countered, err := f.svc.Counter(ctx, offer.ID, secondBook.ID)
	require.NoError(t, err)
	require.NotNil(t, countered.BookTwo)
	assert.Equal(t, secondBook.ID, countered.BookTwo.BookID)
}

func TestOfferService_CounterNotFound(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	_, err := f.svc.Counter(ctx, uuid.New(), f.bobBook.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)

	_, err = f.svc.Counter(ctx, offer.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestOfferService_AcceptReturnsPriorState(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)
	_, err = f.svc.Counter(ctx, offer.ID, f.bobBook.ID)
	require.NoError(t, err)

	// Accept returns the offer as it was before the acknowledgement landed.
	returned, err := f.svc.Accept(ctx, offer.ID)
	require.NoError(t, err)
	assert.False(t, returned.OwnerOneAck)
	assert.True(t, returned.OwnerTwoAck)

	offers, err := f.svc.ListForUser(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.True(t, offers[0].OwnerOneAck)
	assert.Equal(t, entity.OfferStatusAccepted, offers[0].Status())
}

func TestOfferService_AcceptIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)
	_, err = f.svc.Counter(ctx, offer.ID, f.bobBook.ID)
	require.NoError(t, err)

	_, err = f.svc.Accept(ctx, offer.ID)
	require.NoError(t, err)

	second, err := f.svc.Accept(ctx, offer.ID)
	require.NoError(t, err)
	assert.True(t, second.OwnerOneAck, "second accept sees the already-stored acknowledgement")
}

func TestOfferService_AcceptNotFound(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)

	_, err := f.svc.Accept(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
}

func TestOfferService_ListForUserCoversBothRoles(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)

	// Both the proposer and the book's owner see the offer.
	for _, userID := range []uuid.UUID{f.bob.ID, f.alice.ID} {
		offers, err := f.svc.ListForUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, offer.ID, offers[0].ID)
	}

	stranger := uuid.New()
	offers, err := f.svc.ListForUser(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestOfferService_Withdraw(t *testing.T) {
	t.Parallel()

	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Propose(ctx, f.bob.ID, f.aliceBook.ID)
	require.NoError(t, err)

	withdrawn, err := f.svc.Withdraw(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, offer.ID, withdrawn.ID)

	offers, err := f.svc.ListForUser(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, offers)

	_, err = f.svc.Withdraw(ctx, offer.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
}
