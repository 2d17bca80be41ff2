package search

// MatchType identifies which field a query matched against
type MatchType string

const (
	MatchExactName   MatchType = "exact_name"
	MatchPartialName MatchType = "partial_name"
	MatchCategory    MatchType = "category"
	MatchTag         MatchType = "tag"
	MatchPartialTag  MatchType = "partial_tag"
)

// Single-word tier scores. Tiers are evaluated in strict priority order so a
// name match always outranks a category match, which outranks a tag match.
const (
	ScoreExactName     = 100.0
	ScoreNamePrefix    = 85.0
	ScoreNameContains  = 75.0 // base before length bonus and position penalty
	ScoreNameFloor     = 60.0
	ScoreCategory      = 50.0
	ScoreExactTag      = 35.0
	ScorePartialTag    = 25.0 // base before length bonus
	ScorePartialTagCap = 30.0
)

// Single-word scoring modifiers
const (
	LengthBonusWeight  = 10.0 // scales |query|/|field| into the score
	PositionPenaltyPer = 2.0  // per character before the match index
	PositionPenaltyCap = 20.0
)

// Multi-word scoring parameters
const (
	// FullPhraseWins short-circuits token scoring when the whole phrase
	// already matches well
	FullPhraseWins = 60.0
	// AllTokensBonus rewards queries where every token matched something
	AllTokensBonus = 15.0
	// SequenceBonus rewards tokens appearing contiguously in the name
	SequenceBonus = 20.0
	// MultiWordCap bounds the combined score when no full-phrase score exists
	MultiWordCap = 95.0
	// MinCombinedScore is the floor below which token scoring is abandoned
	MinCombinedScore = 10.0
)
