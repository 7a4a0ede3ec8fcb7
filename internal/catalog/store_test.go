package catalog

import (
	"testing"

	"kion-order-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	assert.Len(t, store.Venues(), 3)
	assert.Len(t, store.Categories(), 5)
	assert.Equal(t, "KION Peruvian Chinese", store.Business().Name)
	assert.Equal(t, "12:00 pm a 11:00 pm", store.Hours().MonThu)

	venue, ok := store.VenueByID("balboa")
	require.True(t, ok)
	assert.Equal(t, "Balboa", venue.Name)
	assert.Equal(t, "51933440161", venue.Phone)

	item, ok := store.ItemByID("ja-kao")
	require.True(t, ok)
	assert.Equal(t, "Ja Kao", item.Name)
	assert.Equal(t, 25.0, item.Price)

	_, ok = store.ItemByID("no-such-item")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestNewRejectsMalformedCatalog(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{
			name: "no venues",
			doc: Document{
				Categories: []models.Category{{ID: "c", Name: "C"}},
			},
		},
		{
			name: "no categories",
			doc: Document{
				Venues: []models.Venue{{ID: "v", Name: "V", Phone: "1"}},
			},
		},
		{
			name: "duplicate item id",
			doc: Document{
				Venues: []models.Venue{{ID: "v", Name: "V", Phone: "1"}},
				Categories: []models.Category{{ID: "c", Name: "C", Items: []models.MenuItem{
					{ID: "x", Name: "One", Price: 1},
					{ID: "x", Name: "Two", Price: 2},
				}}},
			},
		},
		{
			name: "negative price",
			doc: Document{
				Venues: []models.Venue{{ID: "v", Name: "V", Phone: "1"}},
				Categories: []models.Category{{ID: "c", Name: "C", Items: []models.MenuItem{
					{ID: "x", Name: "One", Price: -1},
				}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, store.Categories(), store.Filter(""))
	assert.Equal(t, store.Categories(), store.Filter("   "))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	upper := store.Filter("POLLO")
	lower := store.Filter("pollo")
	require.NotEmpty(t, upper)
	assert.Equal(t, lower, upper)
}

func TestFilterChaufaReturnsOnlyArroces(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	result := store.Filter("chaufa")
	require.Len(t, result, 1)
	assert.Equal(t, "arroces", result[0].ID)
	// All three rice dishes mention chaufa in name or description.
	assert.Len(t, result[0].Items, 3)
}

func TestFilterMatchesDescription(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	// "tamarindo" only appears in descriptions.
	result := store.Filter("tamarindo")
	require.Len(t, result, 2)
	assert.Equal(t, "dim-sum", result[0].ID)
	require.Len(t, result[0].Items, 1)
	assert.Equal(t, "wantan-tradicional", result[0].Items[0].ID)
	assert.Equal(t, "especiales", result[1].ID)
}

func TestFilterNoMatchesReturnsEmpty(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, store.Filter("sushi"))
}
