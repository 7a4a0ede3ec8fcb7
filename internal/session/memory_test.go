package session

import (
	"context"
	"testing"
	"time"

	"kion-order-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	sess := &models.Session{
		ID:      "s1",
		VenueID: "balboa",
		Cart:    []models.CartLine{{ItemID: "ja-kao", Quantity: 2}},
		Form:    models.NewCheckoutForm(),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{ID: "s1"}))
	time.Sleep(25 * time.Millisecond)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{ID: "s1"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{
		ID:   "s1",
		Cart: []models.CartLine{{ItemID: "ja-kao", Quantity: 1}},
	}))

	first, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	first.Cart[0].Quantity = 99
	first.VenueID = "mutated"

	// Unsaved mutations must not leak into the store.
	second, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Cart[0].Quantity)
	assert.Empty(t, second.VenueID)
}
