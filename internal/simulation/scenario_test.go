package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUniqueIDs(t *testing.T) {
	catalog := NewCatalog()

	seen := make(map[string]bool)
	for _, s := range catalog.All() {
		assert.False(t, seen[s.ID], "duplicate scenario id %q", s.ID)
		seen[s.ID] = true
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	catalog := NewCatalog()
	require.NotEmpty(t, catalog.All())

	for _, s := range catalog.All() {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.CallerName, "scenario %s", s.ID)
		assert.NotEmpty(t, s.Company, "scenario %s", s.ID)
		assert.NotEmpty(t, s.Opening, "scenario %s", s.ID)
		assert.Contains(t, []Category{CategoryScam, CategoryLegitimate}, s.Category, "scenario %s", s.ID)
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog()

	s := catalog.Lookup("paypal_scam")
	assert.Equal(t, "paypal_scam", s.ID)
	assert.Equal(t, CategoryScam, s.Category)

	s = catalog.Lookup("legitimate_call")
	assert.Equal(t, "legitimate_call", s.ID)
	assert.Equal(t, CategoryLegitimate, s.Category)
}

func TestCatalogLookupUnknownDefaultsToFirst(t *testing.T) {
	catalog := NewCatalog()

	first := catalog.All()[0]
	assert.Equal(t, first.ID, catalog.Lookup("no_such_scenario").ID)
	assert.Equal(t, first.ID, catalog.Lookup("").ID)
}

func TestCatalogRandomUsesPicker(t *testing.T) {
	catalog := NewCatalog()
	catalog.pick = func(n int) int {
		require.Equal(t, len(catalog.All()), n)
		return 3
	}

	assert.Equal(t, catalog.All()[3].ID, catalog.Random().ID)
}
