package slug

// FallbackSlug is returned when a name reduces to nothing after filler removal
const FallbackSlug = "unknown-box"

// Match score thresholds and weights
const (
	// ScoreExact is awarded when two generated slugs are identical
	ScoreExact = 1.0
	// ScoreContained is awarded when one slug contains the other
	ScoreContained = 0.8
	// FuzzyWeight scales the similarity score for non-containment matches
	FuzzyWeight = 0.6
	// MinMatchScore is the floor below which candidates are discarded
	MinMatchScore = 0.3
	// MaxLengthPenalty caps the deduction for mismatched slug lengths
	MaxLengthPenalty = 0.3
	// EquivalenceThreshold is the keyword overlap required for Equivalent
	EquivalenceThreshold = 0.6
	// MinKeywordLength excludes short tokens from keyword extraction
	MinKeywordLength = 2
)

// fillerSubstitution rewrites a common filler word inside a generated slug.
// Replacement may be empty, which drops the word entirely.
type fillerSubstitution struct {
	word        string
	replacement string
}

// fillerSubstitutions is applied token-by-token after normalization.
// Ordered slice rather than a map so substitution is deterministic.
var fillerSubstitutions = []fillerSubstitution{
	{"and", "n"},
	{"the", ""},
	{"box", ""},
	{"case", ""},
	{"mystery", "myst"},
	{"premium", "prem"},
	{"ultimate", "ult"},
	{"special", "spec"},
	{"limited", "ltd"},
	{"edition", "ed"},
}

// keywordStopwords are ignored when extracting keyword sets for Equivalent
var keywordStopwords = map[string]bool{
	"the": true,
	"and": true,
	"for": true,
	"new": true,
	"box": true,
}
