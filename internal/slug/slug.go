// Package slug converts display names into canonical URL-safe identifiers
// and ranks candidate names by similarity. Every function is pure and total:
// degenerate inputs produce empty results, never errors.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes to NFD, strips combining marks, and recomposes
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts text to a lowercase hyphenated slug: diacritics are
// stripped, runs of non-alphanumeric characters collapse to a single hyphen,
// and leading/trailing hyphens are trimmed. Idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	stripped, _, err := transform.String(deaccent, text)
	if err != nil {
		// Transform only fails on malformed UTF-8; slug the input as-is.
		stripped = text
	}

	var b strings.Builder
	b.Grow(len(stripped))
	lastHyphen := true // suppresses a leading hyphen
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// Generate produces the canonical slug for a box name. Common filler words
// are substituted or dropped after normalization, and a name that reduces to
// nothing falls back to FallbackSlug. Deterministic for a given input.
func Generate(name string) string {
	normalized := Normalize(name)
	if normalized == "" {
		return FallbackSlug
	}

	tokens := strings.Split(normalized, "-")
	result := tokens[:0]
	for _, token := range tokens {
		for _, sub := range fillerSubstitutions {
			if token == sub.word {
				token = sub.replacement
				break
			}
		}
		if token != "" {
			result = append(result, token)
		}
	}

	if len(result) == 0 {
		return FallbackSlug
	}
	return strings.Join(result, "-")
}

// Similarity returns Levenshtein similarity in [0,1]: 1 for identical
// strings (including two empties), 0 when exactly one side is empty.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with a two-row DP table
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
