package slug

import (
	"sort"
	"strings"
)

// Match is one scored candidate from FindBestMatches. Provider is left empty
// for the caller to fill once it knows which feed the candidate came from.
type Match struct {
	OriginalName string  `json:"original_name"`
	Slug         string  `json:"slug"`
	Score        float64 `json:"score"`
	Provider     string  `json:"provider,omitempty"`
}

// FindBestMatches ranks candidate names against a target slug. Scoring is a
// three-stage cascade: exact slug equality, substring containment in either
// direction, then weighted Levenshtein similarity over both the generated
// slug and the normalized raw name. A length-difference penalty is applied to
// anything scoring above the floor, and candidates at or below the floor are
// dropped. This is a ranking helper, not a classifier; callers pick their own
// acceptance threshold.
func FindBestMatches(searchSlug string, candidateNames []string) []Match {
	if searchSlug == "" || len(candidateNames) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(candidateNames))
	for _, name := range candidateNames {
		candidateSlug := Generate(name)

		var score float64
		switch {
		case candidateSlug == searchSlug:
			score = ScoreExact
		case strings.Contains(searchSlug, candidateSlug) || strings.Contains(candidateSlug, searchSlug):
			score = ScoreContained
		default:
			slugSim := Similarity(searchSlug, candidateSlug)
			rawSim := Similarity(searchSlug, Normalize(name))
			if rawSim > slugSim {
				slugSim = rawSim
			}
			score = slugSim * FuzzyWeight
		}

		if score > MinMatchScore {
			score -= lengthPenalty(searchSlug, candidateSlug)
		}
		if score <= MinMatchScore {
			continue
		}

		matches = append(matches, Match{
			OriginalName: name,
			Slug:         candidateSlug,
			Score:        score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// lengthPenalty deducts up to MaxLengthPenalty proportional to the relative
// length mismatch between the two slugs
func lengthPenalty(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}

	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	return MaxLengthPenalty * float64(diff) / float64(maxLen)
}

// Equivalent reports whether two slugs describe the same box by comparing
// their keyword sets with Jaccard overlap. Tokens must be longer than
// MinKeywordLength and outside the stopword list to count as keywords.
func Equivalent(a, b string) bool {
	keysA := extractKeywords(a)
	keysB := extractKeywords(b)
	if len(keysA) == 0 || len(keysB) == 0 {
		return false
	}

	intersection := 0
	for k := range keysA {
		if keysB[k] {
			intersection++
		}
	}
	union := len(keysA) + len(keysB) - intersection

	return float64(intersection)/float64(union) > EquivalenceThreshold
}

// extractKeywords returns the set of significant hyphen-split tokens
func extractKeywords(s string) map[string]bool {
	keywords := make(map[string]bool)
	for _, token := range strings.Split(s, "-") {
		if len(token) > MinKeywordLength && !keywordStopwords[token] {
			keywords[token] = true
		}
	}
	return keywords
}
