package services

import (
	"context"
	"strings"
	"time"

	"kion-order-backend/internal/models"
	"kion-order-backend/internal/session"
)

// CheckoutService manages the delivery form attached to a session. Fields are
// updated individually; only the submit-time check in OrderService validates
// across fields.
type CheckoutService struct {
	sessions session.Store
}

func NewCheckoutService(sessions session.Store) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
	}
}

// UpdateFormRequest carries partial form updates; nil fields are untouched.
type UpdateFormRequest struct {
	FullName        *string `json:"full_name"`
	DeliveryAddress *string `json:"delivery_address"`
	DinerCount      *int    `json:"diner_count"`
	ReceiptKind     *string `json:"receipt_kind"`
	DietaryNotes    *string `json:"dietary_notes"`
}

// GetForm returns the current delivery form.
func (s *CheckoutService) GetForm(ctx context.Context, sessionID string) (*models.CheckoutForm, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.VenueID == "" {
		return nil, ErrNoVenueSelected
	}

	form := sess.Form
	return &form, nil
}

// UpdateForm applies the given field updates. Invalid values leave the form
// unchanged.
func (s *CheckoutService) UpdateForm(ctx context.Context, sessionID string, req *UpdateFormRequest) (*models.CheckoutForm, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.VenueID == "" {
		return nil, ErrNoVenueSelected
	}

	// Validate everything before touching the form.
	if req.DinerCount != nil {
		if *req.DinerCount < models.MinDinerCount || *req.DinerCount > models.MaxDinerCount {
			return nil, ErrInvalidDinerCount
		}
	}
	if req.ReceiptKind != nil {
		if *req.ReceiptKind != models.ReceiptBoleta && *req.ReceiptKind != models.ReceiptFactura {
			return nil, ErrInvalidReceiptKind
		}
	}

	if req.FullName != nil {
		sess.Form.FullName = *req.FullName
	}
	if req.DeliveryAddress != nil {
		sess.Form.DeliveryAddress = *req.DeliveryAddress
	}
	if req.DinerCount != nil {
		sess.Form.DinerCount = *req.DinerCount
	}
	if req.ReceiptKind != nil {
		sess.Form.ReceiptKind = *req.ReceiptKind
	}
	if req.DietaryNotes != nil {
		notes := strings.TrimSpace(*req.DietaryNotes)
		if notes == "" {
			notes = models.DefaultDietaryNotes
		}
		sess.Form.DietaryNotes = notes
	}

	sess.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	form := sess.Form
	return &form, nil
}
