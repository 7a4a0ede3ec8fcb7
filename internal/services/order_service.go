package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/session"
)

const messageSeparator = "--------------------------"

// OrderService turns a session's cart, form and venue into the final WhatsApp
// hand-off. It never performs the navigation itself; the client follows the
// returned link.
type OrderService struct {
	catalog  *catalog.Store
	sessions session.Store
}

func NewOrderService(catalog *catalog.Store, sessions session.Store) *OrderService {
	return &OrderService{
		catalog:  catalog,
		sessions: sessions,
	}
}

// ComposeResponse is the hand-off for the messaging sink: the venue's contact
// number, the raw order text and the ready-to-open deep link.
type ComposeResponse struct {
	Destination string `json:"destination"`
	Message     string `json:"message"`
	Link        string `json:"link"`
}

// Compose validates the session and renders the order message. On any
// validation failure nothing is mutated and no hand-off is produced.
func (s *OrderService) Compose(ctx context.Context, sessionID string) (*ComposeResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.VenueID == "" {
		return nil, ErrNoVenueSelected
	}

	venue, ok := s.catalog.VenueByID(sess.VenueID)
	if !ok {
		return nil, ErrVenueNotFound
	}
	if len(sess.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	fullName := strings.TrimSpace(sess.Form.FullName)
	address := strings.TrimSpace(sess.Form.DeliveryAddress)
	if fullName == "" || address == "" {
		return nil, ErrMissingDeliveryFields
	}

	notes := strings.TrimSpace(sess.Form.DietaryNotes)
	if notes == "" {
		notes = "Ninguna"
	}

	var total float64
	text := fmt.Sprintf("¡Hola KION %s! 🏮 Quiero realizar un pedido:\n", venue.Name)
	text += messageSeparator + "\n"
	for _, line := range sess.Cart {
		item, ok := s.catalog.ItemByID(line.ItemID)
		if !ok {
			continue
		}
		subtotal := item.Price * float64(line.Quantity)
		text += fmt.Sprintf("- (%d)x %s... S/ %.2f\n", line.Quantity, item.Name, subtotal)
		total += subtotal
	}
	text += messageSeparator + "\n"
	text += fmt.Sprintf("Total: S/ %.2f\n", round2(total))
	text += "\n"
	text += "Nombre: " + fullName + "\n"
	text += "Dirección: " + address + "\n"
	text += fmt.Sprintf("Comensales: %d\n", sess.Form.DinerCount)
	text += "Comprobante: " + sess.Form.ReceiptKind + "\n"
	text += "Restricciones: " + notes + "\n"
	text += messageSeparator + "\n"
	text += "*Entiendo que el pago es previo mediante link.*"

	return &ComposeResponse{
		Destination: venue.Phone,
		Message:     text,
		Link:        "https://wa.me/" + venue.Phone + "?text=" + url.QueryEscape(text),
	}, nil
}
