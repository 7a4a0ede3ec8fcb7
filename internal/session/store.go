package session

import (
	"context"
	"errors"

	"kion-order-backend/internal/models"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store persists per-visitor ordering sessions. Implementations apply the
// configured TTL on every Save.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}

// cloneSession copies a session so callers can mutate the result without
// touching the stored state until they Save.
func cloneSession(s *models.Session) *models.Session {
	clone := *s
	clone.Cart = make([]models.CartLine, len(s.Cart))
	copy(clone.Cart, s.Cart)
	return &clone
}
