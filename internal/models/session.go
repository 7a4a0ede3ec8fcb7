package models

import "time"

// Receipt kinds accepted on the checkout form.
const (
	ReceiptBoleta  = "Boleta"
	ReceiptFactura = "Factura"
)

// DefaultDietaryNotes is substituted whenever the diner leaves the notes blank.
const DefaultDietaryNotes = "Ninguna"

// Diner count bounds enforced on the checkout form.
const (
	MinDinerCount = 1
	MaxDinerCount = 99
)

// CartLine pairs a menu item with a chosen quantity.
// Quantity is always >= 1; a line reaching zero is removed from the cart.
type CartLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CheckoutForm holds the delivery details entered by the diner.
type CheckoutForm struct {
	FullName        string `json:"full_name"`
	DeliveryAddress string `json:"delivery_address"`
	DinerCount      int    `json:"diner_count"`
	ReceiptKind     string `json:"receipt_kind"`
	DietaryNotes    string `json:"dietary_notes"`
}

// NewCheckoutForm returns a form with the default field values.
func NewCheckoutForm() CheckoutForm {
	return CheckoutForm{
		DinerCount:   MinDinerCount,
		ReceiptKind:  ReceiptBoleta,
		DietaryNotes: DefaultDietaryNotes,
	}
}

// Session is the whole per-visitor ordering state: selected venue, cart and
// checkout form. It lives only in the session store and expires with it.
type Session struct {
	ID        string       `json:"id"`
	VenueID   string       `json:"venue_id"`
	Cart      []CartLine   `json:"cart"`
	Form      CheckoutForm `json:"form"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
