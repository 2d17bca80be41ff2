package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

func TestValidatePayload(t *testing.T) {
	v, err := NewPayloadValidator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		blockType domain.BlockType
		payload   string
		wantErr   bool
	}{
		{
			name:      "valid text payload",
			blockType: domain.BlockTypeText,
			payload:   `{"body":"RillaBox has been around since 2021."}`,
			wantErr:   false,
		},
		{
			name:      "text payload missing body",
			blockType: domain.BlockTypeText,
			payload:   `{}`,
			wantErr:   true,
		},
		{
			name:      "text payload with empty body",
			blockType: domain.BlockTypeText,
			payload:   `{"body":""}`,
			wantErr:   true,
		},
		{
			name:      "text payload with unknown field",
			blockType: domain.BlockTypeText,
			payload:   `{"body":"ok","title":"sneaky"}`,
			wantErr:   true,
		},
		{
			name:      "valid pros cons payload",
			blockType: domain.BlockTypeProsCons,
			payload:   `{"pros":["Fast payouts"],"cons":["Limited catalog"]}`,
			wantErr:   false,
		},
		{
			name:      "pros cons payload missing cons",
			blockType: domain.BlockTypeProsCons,
			payload:   `{"pros":["Fast payouts"]}`,
			wantErr:   true,
		},
		{
			name:      "valid faq payload",
			blockType: domain.BlockTypeFAQ,
			payload:   `{"entries":[{"question":"Is it legit?","answer":"Yes."}]}`,
			wantErr:   false,
		},
		{
			name:      "faq payload with empty entries",
			blockType: domain.BlockTypeFAQ,
			payload:   `{"entries":[]}`,
			wantErr:   true,
		},
		{
			name:      "faq entry missing answer",
			blockType: domain.BlockTypeFAQ,
			payload:   `{"entries":[{"question":"Is it legit?"}]}`,
			wantErr:   true,
		},
		{
			name:      "valid stats payload",
			blockType: domain.BlockTypeStats,
			payload:   `{"box_count":42,"avg_box_price":24.5,"trust_score":8.2}`,
			wantErr:   false,
		},
		{
			name:      "stats payload with out of range trust score",
			blockType: domain.BlockTypeStats,
			payload:   `{"box_count":42,"avg_box_price":24.5,"trust_score":11}`,
			wantErr:   true,
		},
		{
			name:      "stats payload with fractional box count",
			blockType: domain.BlockTypeStats,
			payload:   `{"box_count":4.5,"avg_box_price":24.5}`,
			wantErr:   true,
		},
		{
			name:      "malformed json",
			blockType: domain.BlockTypeText,
			payload:   `{"body":`,
			wantErr:   true,
		},
		{
			name:      "unknown block type",
			blockType: domain.BlockType("carousel"),
			payload:   `{}`,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePayload(tt.blockType, []byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidBlockType), "error should wrap ErrInvalidBlockType, got: %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
