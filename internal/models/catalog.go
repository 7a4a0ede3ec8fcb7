package models

// MenuItem is a single orderable dish. Catalog data is read-only after load.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image"`
}

// Category groups menu items in display order.
type Category struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Venue is a physical location with its own WhatsApp contact number.
type Venue struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Business holds brand metadata shown by the info endpoint.
type Business struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// OpeningHours holds the display strings for the weekly schedule.
type OpeningHours struct {
	MonThu string `json:"mon_thu"`
	FriSat string `json:"fri_sat"`
	Sun    string `json:"sun"`
}
