package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesIntoExistingLine(t *testing.T) {
	cat, store := newTestEnv(t)
	svc := NewCartService(cat, store)
	ctx := context.Background()
	sess := newSessionAtVenue(t, cat, store)

	// Repeated adds of the same item: count equals the number of calls and
	// total equals unit price times count.
	for i := 1; i <= 4; i++ {
		cart, err := svc.Add(ctx, sess.ID, "ja-kao")
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, i, cart.Count)
		assert.Equal(t, 25.0*float64(i), cart.Total)
	}
}

func TestRemoveIsInverseOfAdd(t *testing.T) {
	cat, store := newTestEnv(t)
	svc := NewCartService(cat, store)
	ctx := context.Background()
	sess := newSessionAtVenue(t, cat, store)

	_, err := svc.Add(ctx, sess.ID, "ja-kao")
	require.NoError(t, err)
	before, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, sess.ID, "ja-kao")
	require.NoError(t, err)
	after, err := svc.Remove(ctx, sess.ID, "ja-kao")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestRemoveDeletesLineAtQuantityOne(t *testing.T) {
	cat, store := newTestEnv(t)
	svc := NewCartService(cat, store)
	ctx := context.Background()
	sess := newSessionAtVenue(t, cat, store)

	_, err := svc.Add(ctx, sess.ID, "siu-mai")
	require.NoError(t, err)

	cart, err := svc.Remove(ctx, sess.ID, "siu-mai")
	require.NoError(t, err)

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.Count)
	assert.Equal(t, 0.0, cart.Total)
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	cat, store := newTestEnv(t)
	svc := NewCartService(cat, store)
	ctx := context.Background()
	sess := newSessionAtVenue(t, cat, store)

	_, err := svc.Add(ctx, sess.ID, "ja-kao")
	require.NoError(t, err)
	before, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)

	after, err := svc.Remove(ctx, sess.ID, "never-added")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestAddUnknownItem(t *testing.T) {
	cat, store := newTestEnv(t)
	svc := NewCartService(cat, store)
	sess := newSessionAtVenue(t, cat, store)

	_, err := svc.Add(context.Background(), sess.ID, "no-such-item")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartRequiresVenue(t *testing.T) {
	cat, store := newTestEnv(t)
	sessionSvc := NewSessionService(cat, store)
	cartSvc := NewCartService(cat, store)
	ctx := context.Background()

	sess, err := sessionSvc.Create(ctx)
	require.NoError(t, err)

	_, err = cartSvc.Add(ctx, sess.ID, "ja-kao")
	assert.ErrorIs(t, err, ErrNoVenueSelected)
	_, err = cartSvc.Remove(ctx, sess.ID, "ja-kao")
	assert.ErrorIs(t, err, ErrNoVenueSelected)
	_, err = cartSvc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNoVenueSelected)
}

func TestCartTotalsScenario(t *testing.T) {
	cat, store := newTestEnv(t)
	svc := NewCartService(cat, store)
	ctx := context.Background()
	sess := newSessionAtVenue(t, cat, store)

	// Two Ja Kao (25.00 each) and one Siu Mai (23.00).
	_, err := svc.Add(ctx, sess.ID, "ja-kao")
	require.NoError(t, err)
	_, err = svc.Add(ctx, sess.ID, "ja-kao")
	require.NoError(t, err)
	cart, err := svc.Add(ctx, sess.ID, "siu-mai")
	require.NoError(t, err)

	assert.Equal(t, 73.0, cart.Total)
	assert.Equal(t, 3, cart.Count)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "Ja Kao", cart.Lines[0].Name)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 50.0, cart.Lines[0].Subtotal)
	assert.Equal(t, "Siu Mai", cart.Lines[1].Name)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
	assert.Equal(t, 23.0, cart.Lines[1].Subtotal)
}
