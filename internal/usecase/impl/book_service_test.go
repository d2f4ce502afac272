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

func seedUser(t *testing.T, factory *fakeRepoFactory, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hashed:pw", Name: email}
	require.NoError(t, factory.users.Create(context.Background(), user))

	return user
}

func TestBookService_CreateBook(t *testing.T) {
	t.Parallel()

	tx, factory := newFakeStore()
	svc := NewBookService(tx, testLogger())
	ctx := context.Background()

	owner := seedUser(t, factory, "owner@example.com")

	book, err := svc.CreateBook(ctx, owner.ID, &usecase.CreateBookInput{
		Title:         "The Go Programming Language",
		Type:          "paperback",
		State:         "used",
		PublishedYear: 2015,
		Genre:         "technical",
		Author:        "Donovan & Kernighan",
		Size:          "medium",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, owner.ID, book.OwnerID)

	_, err = svc.CreateBook(ctx, uuid.New(), &usecase.CreateBookInput{Title: "Orphan"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestBookService_ListOwnedAndOthers(t *testing.T) {
	t.Parallel()

	tx, factory := newFakeStore()
	svc := NewBookService(tx, testLogger())
	ctx := context.Background()

	alice := seedUser(t, factory, "alice@example.com")
	bob := seedUser(t, factory, "bob@example.com")

	_, err := svc.CreateBook(ctx, alice.ID, &usecase.CreateBookInput{Title: "Alice's Book"})
	require.NoError(t, err)
	_, err = svc.CreateBook(ctx, bob.ID, &usecase.CreateBookInput{Title: "Bob's Book"})
	require.NoError(t, err)

	owned, err := svc.ListOwned(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Alice's Book", owned[0].Title)

	others, err := svc.ListOthers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "Bob's Book", others[0].Title)

	empty, err := svc.ListOwned(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBookService_GetAndUpdateBook(t *testing.T) {
	t.Parallel()

	tx, factory := newFakeStore()
	svc := NewBookService(tx, testLogger())
	ctx := context.Background()

	owner := seedUser(t, factory, "owner@example.com")
	created, err := svc.CreateBook(ctx, owner.ID, &usecase.CreateBookInput{Title: "Original", State: "new"})
	require.NoError(t, err)

	found, err := svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", found.Title)

	newState := "worn"
	updated, err := svc.UpdateBook(ctx, created.ID, &usecase.UpdateBookInput{State: &newState})
	require.NoError(t, err)
	assert.Equal(t, "worn", updated.State)
	assert.Equal(t, "Original", updated.Title)

	_, err = svc.GetBook(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	_, err = svc.UpdateBook(ctx, uuid.New(), &usecase.UpdateBookInput{State: &newState})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Parallel()

	tx, factory := newFakeStore()
	svc := NewBookService(tx, testLogger())
	ctx := context.Background()

	owner := seedUser(t, factory, "owner@example.com")
	created, err := svc.CreateBook(ctx, owner.ID, &usecase.CreateBookInput{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, created.ID))

	_, err = svc.GetBook(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

	err = svc.DeleteBook(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}
