package services

import (
	"context"
	"time"

	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/models"
	"kion-order-backend/internal/session"

	"github.com/google/uuid"
)

// SessionService owns the session lifecycle and the venue selection
// transition.
type SessionService struct {
	catalog  *catalog.Store
	sessions session.Store
}

func NewSessionService(catalog *catalog.Store, sessions session.Store) *SessionService {
	return &SessionService{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Create starts a new empty session: no venue, empty cart, default form.
func (s *SessionService) Create(ctx context.Context) (*models.Session, error) {
	now := time.Now()
	sess := &models.Session{
		ID:        uuid.NewString(),
		Cart:      []models.CartLine{},
		Form:      models.NewCheckoutForm(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the current session state.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// SelectVenue points the session at a venue. Selecting again switches venues.
func (s *SessionService) SelectVenue(ctx context.Context, sessionID, venueID string) (*models.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := s.catalog.VenueByID(venueID); !ok {
		return nil, ErrVenueNotFound
	}

	sess.VenueID = venueID
	sess.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ChangeVenue clears the venue pointer so the visitor can pick again. Cart
// and form are deliberately kept (misclick recovery).
func (s *SessionService) ChangeVenue(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.VenueID = ""
	sess.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
