package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

func TestSortByRelevanceNameBeatsTag(t *testing.T) {
	boxes := []domain.Box{
		{Name: "Alpha Case", Category: "weapons", Tags: []string{"rare"}},
		{Name: "Beta Box", Category: "weapons", Tags: []string{"alpha"}},
	}

	sorted := SortByRelevance(boxes, "alpha", nil)

	require.Len(t, sorted, 2)
	assert.Equal(t, "Alpha Case", sorted[0].Name, "name match must outrank tag match")
	assert.Equal(t, "Beta Box", sorted[1].Name)
}

func TestSortByRelevanceBlankQueryUsesFallback(t *testing.T) {
	boxes := []domain.Box{
		{Name: "Zeta", Price: 5},
		{Name: "Alpha", Price: 50},
		{Name: "Mid", Price: 20},
	}

	byPriceDesc := func(a, b domain.Box) int {
		switch {
		case a.Price > b.Price:
			return -1
		case a.Price < b.Price:
			return 1
		}
		return 0
	}

	sorted := SortByRelevance(boxes, "   ", byPriceDesc)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alpha", sorted[0].Name)
	assert.Equal(t, "Mid", sorted[1].Name)
	assert.Equal(t, "Zeta", sorted[2].Name)
}

func TestSortByRelevanceBlankQueryDefaultAlphabetical(t *testing.T) {
	boxes := []domain.Box{
		{Name: "zeta"},
		{Name: "Alpha"},
	}

	sorted := SortByRelevance(boxes, "", nil)
	assert.Equal(t, "Alpha", sorted[0].Name)
}

func TestSortByRelevanceTieBreaking(t *testing.T) {
	// Both names start with the query, scoring identically; alphabetical
	// fallback decides
	boxes := []domain.Box{
		{Name: "Golden Watch"},
		{Name: "Golden Knife"},
	}

	sorted := SortByRelevance(boxes, "golden", nil)
	assert.Equal(t, "Golden Knife", sorted[0].Name)
	assert.Equal(t, "Golden Watch", sorted[1].Name)
}

func TestSortByRelevanceDoesNotMutateInput(t *testing.T) {
	boxes := []domain.Box{
		{Name: "Beta"},
		{Name: "Alpha"},
	}

	_ = SortByRelevance(boxes, "", nil)
	assert.Equal(t, "Beta", boxes[0].Name, "input slice must not be reordered")
}

func TestSortByRelevanceUnmatchedBoxesSinkToBottom(t *testing.T) {
	boxes := []domain.Box{
		{Name: "Unrelated Thing"},
		{Name: "Golden Knife"},
	}

	sorted := SortByRelevance(boxes, "golden", nil)
	assert.Equal(t, "Golden Knife", sorted[0].Name)
}
