package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// BlockType identifies the shape of a content block's payload
type BlockType string

const (
	BlockTypeText     BlockType = "text"
	BlockTypeProsCons BlockType = "pros_cons"
	BlockTypeFAQ      BlockType = "faq"
	BlockTypeStats    BlockType = "stats"
)

// IsValidBlockType checks if a block type string is known
func IsValidBlockType(t string) bool {
	switch BlockType(t) {
	case BlockTypeText, BlockTypeProsCons, BlockTypeFAQ, BlockTypeStats:
		return true
	}
	return false
}

// ContentBlock is one ordered section of an operator review page.
// Payload is a tagged variant: exactly one of the typed payload structs,
// selected by Type and validated on ingestion.
type ContentBlock struct {
	ID         int             `json:"block_id" db:"block_id"`
	OperatorID string          `json:"operator_id" db:"operator_id"`
	Type       BlockType       `json:"type" db:"block_type"`
	Heading    string          `json:"heading,omitempty" db:"heading"`
	Payload    json.RawMessage `json:"payload" db:"payload"`
	Position   int             `json:"position" db:"position"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// TextPayload is the payload for BlockTypeText
type TextPayload struct {
	Body string `json:"body"`
}

// ProsConsPayload is the payload for BlockTypeProsCons
type ProsConsPayload struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// FAQEntry is one question/answer pair in a FAQ block
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQPayload is the payload for BlockTypeFAQ
type FAQPayload struct {
	Entries []FAQEntry `json:"entries"`
}

// StatsPayload is the payload for BlockTypeStats
type StatsPayload struct {
	BoxCount    int     `json:"box_count"`
	AvgBoxPrice float64 `json:"avg_box_price"`
	FoundedYear int     `json:"founded_year,omitempty"`
	PayoutSpeed string  `json:"payout_speed,omitempty"`
	TrustScore  float64 `json:"trust_score,omitempty"`
}

// DecodePayload unmarshals the block payload into the struct matching its
// type. Unknown types and malformed payloads return ErrInvalidBlockType.
func (b *ContentBlock) DecodePayload() (interface{}, error) {
	var target interface{}
	switch b.Type {
	case BlockTypeText:
		target = &TextPayload{}
	case BlockTypeProsCons:
		target = &ProsConsPayload{}
	case BlockTypeFAQ:
		target = &FAQPayload{}
	case BlockTypeStats:
		target = &StatsPayload{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidBlockType, b.Type)
	}

	if err := json.Unmarshal(b.Payload, target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlockType, err)
	}
	return target, nil
}
