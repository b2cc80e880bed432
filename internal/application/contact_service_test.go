package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newContactFixture(t *testing.T) (*ContactService, *fakeContactRepo, *fakeUserRepo) {
	t.Helper()
	contacts := newFakeContactRepo()
	users := newFakeUserRepo()
	return NewContactService(contacts, users, nil), contacts, users
}

func TestContactAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the list on first use", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")

		list, added, err := svc.Add(ctx, owner.ID.Hex(), friend.ID.Hex())
		require.NoError(t, err)
		assert.True(t, added)
		require.Len(t, list.Contacts, 1)
		assert.Equal(t, friend.ID, list.Contacts[0].ContactID)
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")

		_, _, err := svc.Add(ctx, owner.ID.Hex(), friend.ID.Hex())
		require.NoError(t, err)
		list, added, err := svc.Add(ctx, owner.ID.Hex(), friend.ID.Hex())
		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, list.Contacts, 1)
	})

	t.Run("malformed ids fail", func(t *testing.T) {
		svc, _, _ := newContactFixture(t)
		_, _, err := svc.Add(ctx, "not-hex", bson.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrInvalidContactAction)
	})
}

func TestContactToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("add then remove", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")

		list, err := svc.Toggle(ctx, owner.ID.Hex(), friend.ID.Hex(), ContactActionAdd)
		require.NoError(t, err)
		assert.Len(t, list.Contacts, 1)

		list, err = svc.Toggle(ctx, owner.ID.Hex(), friend.ID.Hex(), ContactActionRemove)
		require.NoError(t, err)
		assert.Empty(t, list.Contacts)
	})

	t.Run("adding a present contact fails", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")

		_, err := svc.Toggle(ctx, owner.ID.Hex(), friend.ID.Hex(), ContactActionAdd)
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, owner.ID.Hex(), friend.ID.Hex(), ContactActionAdd)
		assert.ErrorIs(t, err, ErrInvalidContactAction)
	})

	t.Run("removing an absent contact fails", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")
		other := seedUser(t, users, "other")

		_, err := svc.Toggle(ctx, owner.ID.Hex(), friend.ID.Hex(), ContactActionAdd)
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, owner.ID.Hex(), other.ID.Hex(), ContactActionRemove)
		assert.ErrorIs(t, err, ErrInvalidContactAction)
	})

	t.Run("removing without a list fails", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")

		_, err := svc.Toggle(ctx, owner.ID.Hex(), bson.NewObjectID().Hex(), ContactActionRemove)
		assert.ErrorIs(t, err, ErrContactListNotFound)
	})

	t.Run("unknown action fails", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")

		_, err := svc.Toggle(ctx, owner.ID.Hex(), bson.NewObjectID().Hex(), "block")
		assert.ErrorIs(t, err, ErrInvalidContactAction)
	})
}

func TestContactList(t *testing.T) {
	ctx := context.Background()

	t.Run("joins profiles", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")

		_, _, err := svc.Add(ctx, owner.ID.Hex(), friend.ID.Hex())
		require.NoError(t, err)

		views, err := svc.List(ctx, owner.ID.Hex())
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, friend.ID.Hex(), views[0].ContactID)
		assert.Equal(t, friend.Name, views[0].Name)
		assert.Equal(t, friend.Email, views[0].Email)
	})

	t.Run("missing list", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")

		_, err := svc.List(ctx, owner.ID.Hex())
		assert.ErrorIs(t, err, ErrNoContacts)
	})

	t.Run("dangling references are skipped", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")
		friend := seedUser(t, users, "friend")

		_, _, err := svc.Add(ctx, owner.ID.Hex(), friend.ID.Hex())
		require.NoError(t, err)
		_, _, err = svc.Add(ctx, owner.ID.Hex(), bson.NewObjectID().Hex())
		require.NoError(t, err)

		views, err := svc.List(ctx, owner.ID.Hex())
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, friend.ID.Hex(), views[0].ContactID)
	})

	t.Run("only dangling references", func(t *testing.T) {
		svc, _, users := newContactFixture(t)
		owner := seedUser(t, users, "owner")

		_, _, err := svc.Add(ctx, owner.ID.Hex(), bson.NewObjectID().Hex())
		require.NoError(t, err)

		_, err = svc.List(ctx, owner.ID.Hex())
		assert.ErrorIs(t, err, ErrNoContacts)
	})
}
