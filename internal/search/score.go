// Package search ranks boxes against free-text queries with tiered field
// weighting: name matches always outrank category matches, which outrank tag
// matches. All functions are pure; callers may invoke them per keystroke.
package search

import (
	"regexp"
	"strings"
)

// Match is the scored result of matching one box against a query
type Match struct {
	Score       float64   `json:"score"`
	Type        MatchType `json:"match_type"`
	MatchedTerm string    `json:"matched_term"`
}

// Score evaluates a single-word query against a box's name, category, and
// tags. Tiers are checked in strict priority order and the first hit wins.
// Returns nil when nothing matches.
func Score(query, name, category string, tags []string) *Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	lowerName := strings.ToLower(name)

	// Tier 1: exact name
	if lowerName == query {
		return &Match{Score: ScoreExactName, Type: MatchExactName, MatchedTerm: name}
	}

	// Tier 2: name prefix
	if strings.HasPrefix(lowerName, query) {
		return &Match{Score: ScoreNamePrefix, Type: MatchPartialName, MatchedTerm: name}
	}

	// Tier 3: name substring, scored by how much of the name the query
	// covers and how early it appears
	if idx := strings.Index(lowerName, query); idx >= 0 {
		lengthRatio := float64(len(query)) / float64(len(lowerName))
		positionPenalty := PositionPenaltyPer * float64(idx)
		if positionPenalty > PositionPenaltyCap {
			positionPenalty = PositionPenaltyCap
		}
		score := ScoreNameContains + LengthBonusWeight*lengthRatio - positionPenalty
		if score < ScoreNameFloor {
			score = ScoreNameFloor
		}
		return &Match{Score: score, Type: MatchPartialName, MatchedTerm: name}
	}

	// Tier 4: category substring
	if category != "" && strings.Contains(strings.ToLower(category), query) {
		return &Match{Score: ScoreCategory, Type: MatchCategory, MatchedTerm: category}
	}

	// Tier 5: tags, keeping only the best-scoring tag
	var best *Match
	for _, tag := range tags {
		lowerTag := strings.ToLower(tag)

		var candidate *Match
		if lowerTag == query {
			candidate = &Match{Score: ScoreExactTag, Type: MatchTag, MatchedTerm: tag}
		} else if strings.Contains(lowerTag, query) {
			score := ScorePartialTag + LengthBonusWeight*float64(len(query))/float64(len(lowerTag))
			if score > ScorePartialTagCap {
				score = ScorePartialTagCap
			}
			candidate = &Match{Score: score, Type: MatchPartialTag, MatchedTerm: tag}
		}

		if candidate != nil && (best == nil || candidate.Score > best.Score) {
			best = candidate
		}
	}

	return best
}

// ScoreMultiWord evaluates a whitespace-separated query. Single-token queries
// delegate to Score. For multi-token queries the full phrase is tried first
// and wins outright when it scores well; otherwise tokens are scored
// independently, bonuses applied for full coverage and contiguous order, and
// the result capped by the full-phrase score (or MultiWordCap when the phrase
// itself did not match).
func ScoreMultiWord(query, name, category string, tags []string) *Match {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) == 1 {
		return Score(tokens[0], name, category, tags)
	}

	fullPhrase := Score(strings.Join(tokens, " "), name, category, tags)
	if fullPhrase != nil && fullPhrase.Score >= FullPhraseWins {
		return fullPhrase
	}

	var combined float64
	var best *Match
	allMatched := true
	for _, token := range tokens {
		m := Score(token, name, category, tags)
		if m == nil {
			allMatched = false
			continue
		}
		combined += m.Score
		if best == nil || m.Score > best.Score {
			best = m
		}
	}

	if allMatched {
		combined += AllTokensBonus
	}
	if tokensInSequence(tokens, name) {
		combined += SequenceBonus
	}

	if combined <= MinCombinedScore || best == nil {
		return fullPhrase
	}

	ceiling := MultiWordCap
	if fullPhrase != nil {
		ceiling = fullPhrase.Score
	}
	score := combined / float64(len(tokens))
	if score > ceiling {
		score = ceiling
	}

	return &Match{Score: score, Type: best.Type, MatchedTerm: best.MatchedTerm}
}

// tokensInSequence reports whether the tokens appear in order as a contiguous
// whitespace-separated run in the name. Tokens are regex-escaped before the
// pattern is built so metacharacters in user input cannot break or inject
// into the pattern.
func tokensInSequence(tokens []string, name string) bool {
	escaped := make([]string, len(tokens))
	for i, token := range tokens {
		escaped[i] = regexp.QuoteMeta(token)
	}

	re, err := regexp.Compile(`(?i)` + strings.Join(escaped, `\s+`))
	if err != nil {
		return false
	}
	return re.MatchString(name)
}
