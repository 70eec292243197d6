package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postill/internal/models"
)

var sample = []models.Product{
	{ID: 1, Name: "Espresso", CategoryID: 1},
	{ID: 2, Name: "Double Espresso", CategoryID: 1},
	{ID: 3, Name: "Croissant", CategoryID: 2},
	{ID: 4, Name: "Orange Juice", CategoryID: 3},
}

func TestFilter_NameSubstringCaseInsensitive(t *testing.T) {
	got := Filter(sample, "espresso", AllCategories)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	got = Filter(sample, "ESPRESSO", AllCategories)
	assert.Len(t, got, 2)
}

func TestFilter_CategoryAndName(t *testing.T) {
	got := Filter(sample, "espresso", 1)
	assert.Len(t, got, 2)

	got = Filter(sample, "espresso", 2)
	assert.Empty(t, got)
}

func TestFilter_AllCategoriesEmptyQueryReturnsEverything(t *testing.T) {
	got := Filter(sample, "", AllCategories)
	assert.Len(t, got, len(sample))
}

func TestFilter_UnknownCategoryYieldsEmptyWithoutError(t *testing.T) {
	got := Filter(sample, "", 99)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, "latte", AllCategories))
}

func TestFindByID(t *testing.T) {
	p, ok := FindByID(sample, 3)
	require.True(t, ok)
	assert.Equal(t, "Croissant", p.Name)

	_, ok = FindByID(sample, 42)
	assert.False(t, ok)
}
