package search

import (
	"sort"
	"strings"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Comparator orders two boxes; negative means a before b
type Comparator func(a, b domain.Box) int

// ByName orders boxes alphabetically by name, the default tie-breaker
func ByName(a, b domain.Box) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// SortByRelevance returns a new slice ordered by multi-word relevance score
// descending. A blank query applies only the fallback comparator. Ties are
// broken by the fallback (alphabetical by name when nil), so the ordering is
// fully determined.
func SortByRelevance(boxes []domain.Box, query string, fallback Comparator) []domain.Box {
	if fallback == nil {
		fallback = ByName
	}

	sorted := make([]domain.Box, len(boxes))
	copy(sorted, boxes)

	if strings.TrimSpace(query) == "" {
		sort.SliceStable(sorted, func(i, j int) bool {
			return fallback(sorted[i], sorted[j]) < 0
		})
		return sorted
	}

	scores := make([]float64, len(sorted))
	for i, box := range sorted {
		if m := ScoreMultiWord(query, box.Name, box.Category, box.Tags); m != nil {
			scores[i] = m.Score
		}
	}

	// Sort indices so scores travel with their boxes
	idx := make([]int, len(sorted))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return fallback(sorted[idx[a]], sorted[idx[b]]) < 0
	})

	result := make([]domain.Box, len(sorted))
	for i, j := range idx {
		result[i] = sorted[j]
	}
	return result
}
