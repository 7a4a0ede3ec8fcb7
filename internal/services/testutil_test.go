package services

import (
	"context"
	"testing"
	"time"

	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/models"
	"kion-order-backend/internal/session"

	"github.com/stretchr/testify/require"
)

// newTestEnv loads the embedded catalog and an in-memory session store.
func newTestEnv(t *testing.T) (*catalog.Store, session.Store) {
	t.Helper()

	cat, err := catalog.Load("")
	require.NoError(t, err)
	return cat, session.NewMemoryStore(time.Hour)
}

// newSessionAtVenue creates a fresh session already pointed at Balboa.
func newSessionAtVenue(t *testing.T, cat *catalog.Store, store session.Store) *models.Session {
	t.Helper()

	svc := NewSessionService(cat, store)
	sess, err := svc.Create(context.Background())
	require.NoError(t, err)
	sess, err = svc.SelectVenue(context.Background(), sess.ID, "balboa")
	require.NoError(t, err)
	return sess
}
