package services

import "errors"

// Domain errors surfaced to the presentation layer. Handlers translate these
// into HTTP statuses.
var (
	ErrVenueNotFound         = errors.New("venue not found")
	ErrNoVenueSelected       = errors.New("no venue selected")
	ErrItemNotFound          = errors.New("menu item not found")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrMissingDeliveryFields = errors.New("full name and delivery address are required")
	ErrInvalidDinerCount     = errors.New("diner count must be between 1 and 99")
	ErrInvalidReceiptKind    = errors.New("receipt kind must be Boleta or Factura")
)
