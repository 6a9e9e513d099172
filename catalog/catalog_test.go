package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowmate/models"
)

func TestAllCoversEveryCategory(t *testing.T) {
	all := All()
	require.Len(t, all, len(models.AllCategories))

	for i, cat := range models.AllCategories {
		assert.Equal(t, cat, all[i].Category)
		assert.NotEmpty(t, all[i].Name)
		assert.NotEmpty(t, all[i].PriceRange)
		assert.NotEmpty(t, all[i].Turnaround)
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(models.CategoryScripting)
	require.True(t, ok)
	assert.Equal(t, "Basic Scripting & Automation", info.Name)

	_, ok = Lookup(models.ServiceCategory("bogus"))
	assert.False(t, ok)
}

func TestPriceListNamesEveryPackage(t *testing.T) {
	list := PriceList()
	for _, info := range All() {
		assert.Contains(t, list, info.Name)
		assert.Contains(t, list, info.PriceRange)
	}
}
