package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"kion-order-backend/internal/models"

	_ "embed"
)

// defaultCatalog ships the KION menu so the server runs without external data.
//
//go:embed catalog.json
var defaultCatalog []byte

// Document is the on-disk shape of the catalog.
type Document struct {
	Business   models.Business     `json:"business"`
	Hours      models.OpeningHours `json:"hours"`
	Venues     []models.Venue      `json:"venues"`
	Categories []models.Category   `json:"categories"`
}

// Store holds the immutable venue and menu catalog. All accessors are
// read-only; the store is never mutated after Load.
type Store struct {
	business   models.Business
	hours      models.OpeningHours
	venues     []models.Venue
	categories []models.Category
	itemsByID  map[string]models.MenuItem
	venuesByID map[string]models.Venue
}

// Load reads the catalog from path, or from the embedded default catalog when
// path is empty. A malformed catalog is a startup failure.
func Load(path string) (*Store, error) {
	data := defaultCatalog
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = fileData
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(&doc)
}

// New validates the document and builds the lookup indexes.
func New(doc *Document) (*Store, error) {
	if len(doc.Venues) == 0 {
		return nil, errors.New("catalog has no venues")
	}
	if len(doc.Categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	venuesByID := make(map[string]models.Venue, len(doc.Venues))
	for _, venue := range doc.Venues {
		if venue.ID == "" || venue.Name == "" || venue.Phone == "" {
			return nil, fmt.Errorf("venue %q is missing required fields", venue.ID)
		}
		if _, exists := venuesByID[venue.ID]; exists {
			return nil, fmt.Errorf("duplicate venue id %q", venue.ID)
		}
		venuesByID[venue.ID] = venue
	}

	itemsByID := make(map[string]models.MenuItem)
	for _, category := range doc.Categories {
		if category.ID == "" || category.Name == "" {
			return nil, fmt.Errorf("category %q is missing required fields", category.ID)
		}
		for _, item := range category.Items {
			if item.ID == "" || item.Name == "" {
				return nil, fmt.Errorf("item %q in category %q is missing required fields", item.ID, category.ID)
			}
			if item.Price < 0 {
				return nil, fmt.Errorf("item %q has a negative price", item.ID)
			}
			if _, exists := itemsByID[item.ID]; exists {
				return nil, fmt.Errorf("duplicate item id %q", item.ID)
			}
			itemsByID[item.ID] = item
		}
	}

	return &Store{
		business:   doc.Business,
		hours:      doc.Hours,
		venues:     doc.Venues,
		categories: doc.Categories,
		itemsByID:  itemsByID,
		venuesByID: venuesByID,
	}, nil
}

// Business returns the brand metadata.
func (s *Store) Business() models.Business {
	return s.business
}

// Hours returns the weekly opening hours.
func (s *Store) Hours() models.OpeningHours {
	return s.hours
}

// Venues returns all venues in catalog order.
func (s *Store) Venues() []models.Venue {
	return s.venues
}

// VenueByID looks up a venue by id.
func (s *Store) VenueByID(id string) (models.Venue, bool) {
	venue, ok := s.venuesByID[id]
	return venue, ok
}

// Categories returns the full menu in catalog order.
func (s *Store) Categories() []models.Category {
	return s.categories
}

// ItemByID looks up a menu item by id across all categories.
func (s *Store) ItemByID(id string) (models.MenuItem, bool) {
	item, ok := s.itemsByID[id]
	return item, ok
}

// Filter returns the categories whose items match the query as a
// case-insensitive substring of the name or description. Categories left with
// no matching items are omitted. An empty or whitespace-only query returns
// the full menu unchanged.
func (s *Store) Filter(query string) []models.Category {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.categories
	}
	query = strings.ToLower(query)

	var filtered []models.Category
	for _, category := range s.categories {
		var items []models.MenuItem
		for _, item := range category.Items {
			if strings.Contains(strings.ToLower(item.Name), query) ||
				strings.Contains(strings.ToLower(item.Description), query) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		filtered = append(filtered, models.Category{
			ID:    category.ID,
			Name:  category.Name,
			Items: items,
		})
	}
	return filtered
}
