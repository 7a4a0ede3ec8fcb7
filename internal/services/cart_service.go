package services

import (
	"context"
	"math"
	"time"

	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/models"
	"kion-order-backend/internal/session"
)

// CartService maintains the per-session cart. Item ids are validated against
// the catalog at add-time; quantities never drop below one.
type CartService struct {
	catalog  *catalog.Store
	sessions session.Store
}

func NewCartService(catalog *catalog.Store, sessions session.Store) *CartService {
	return &CartService{
		catalog:  catalog,
		sessions: sessions,
	}
}

type CartLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
	Count int                `json:"count"`
}

// Add puts one unit of the item into the cart, merging into an existing line.
func (s *CartService) Add(ctx context.Context, sessionID, itemID string) (*CartResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.VenueID == "" {
		return nil, ErrNoVenueSelected
	}

	if _, ok := s.catalog.ItemByID(itemID); !ok {
		return nil, ErrItemNotFound
	}

	found := false
	for i, line := range sess.Cart {
		if line.ItemID == itemID {
			sess.Cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		sess.Cart = append(sess.Cart, models.CartLine{ItemID: itemID, Quantity: 1})
	}

	sess.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return s.buildCartResponse(sess), nil
}

// Remove takes one unit of the item out of the cart. The line is deleted when
// its quantity reaches zero; removing an absent item is a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID, itemID string) (*CartResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.VenueID == "" {
		return nil, ErrNoVenueSelected
	}

	changed := false
	for i, line := range sess.Cart {
		if line.ItemID != itemID {
			continue
		}
		if line.Quantity > 1 {
			sess.Cart[i].Quantity--
		} else {
			sess.Cart = append(sess.Cart[:i], sess.Cart[i+1:]...)
		}
		changed = true
		break
	}

	if changed {
		sess.UpdatedAt = time.Now()
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, err
		}
	}

	return s.buildCartResponse(sess), nil
}

// Get returns the cart read model with current catalog prices.
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.VenueID == "" {
		return nil, ErrNoVenueSelected
	}

	return s.buildCartResponse(sess), nil
}

func (s *CartService) buildCartResponse(sess *models.Session) *CartResponse {
	lines := make([]CartLineResponse, 0, len(sess.Cart))
	var total float64
	count := 0

	for _, line := range sess.Cart {
		item, ok := s.catalog.ItemByID(line.ItemID)
		if !ok {
			// Item no longer in the catalog, skip it.
			continue
		}

		subtotal := round2(item.Price * float64(line.Quantity))
		lines = append(lines, CartLineResponse{
			ItemID:    line.ItemID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total += item.Price * float64(line.Quantity)
		count += line.Quantity
	}

	return &CartResponse{
		Lines: lines,
		Total: round2(total),
		Count: count,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
