package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGeneratedCatalog(t *testing.T) {
	require.NoError(t, Validate(Generate()))
}

func TestValidateEmptyCatalog(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidateRejectsMutations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cards []Rule)
		wantErr string
	}{
		{
			name:    "malformed id",
			mutate:  func(cards []Rule) { cards[0].ID = "X001" },
			wantErr: "invalid id",
		},
		{
			name:    "id out of sequence",
			mutate:  func(cards []Rule) { cards[5].ID = "R099" },
			wantErr: "out of sequence",
		},
		{
			name:    "empty text",
			mutate:  func(cards []Rule) { cards[10].Text = "  " },
			wantErr: "empty text",
		},
		{
			name:    "unknown skin type",
			mutate:  func(cards []Rule) { cards[0].Tags = "skin_type:reptile concern:acne routine:am" },
			wantErr: "unknown skin type",
		},
		{
			name:    "unknown concern",
			mutate:  func(cards []Rule) { cards[0].Tags = "skin_type:oily concern:scales routine:am" },
			wantErr: "unknown concern",
		},
		{
			name:    "malformed tag pair",
			mutate:  func(cards []Rule) { cards[0].Tags = "skin_type:oily concern routine:am" },
			wantErr: "malformed tag",
		},
		{
			name:    "duplicate facet",
			mutate:  func(cards []Rule) { cards[0].Tags = "skin_type:oily skin_type:dry concern:acne routine:am" },
			wantErr: "duplicate facet",
		},
		{
			name:    "category routine outside am/pm",
			mutate:  func(cards []Rule) { cards[0].Tags = "skin_type:oily concern:acne routine:noon" },
			wantErr: "must be am or pm",
		},
		{
			name:    "advice sentence missing for tagged concern",
			mutate:  func(cards []Rule) { cards[0].Tags = "skin_type:oily concern:dryness routine:am" },
			wantErr: "advice sentence",
		},
		{
			name:    "generic rule with partial any",
			mutate:  func(cards []Rule) { cards[80].Tags = "skin_type:oily concern:any routine:am_step_order" },
			wantErr: "generic rules",
		},
		{
			name:    "unknown structural routine",
			mutate:  func(cards []Rule) { cards[82].Tags = "skin_type:any concern:any routine:weekly" },
			wantErr: "structural routine",
		},
		{
			name:    "unknown safety category",
			mutate:  func(cards []Rule) { cards[86].Tags = "safety:ask_a_friend routine:any" },
			wantErr: "unknown safety category",
		},
		{
			name:    "safety rule without routine:any",
			mutate:  func(cards []Rule) { cards[86].Tags = "safety:non_medical routine:pm" },
			wantErr: "routine must be",
		},
		{
			name:    "safety rule with extra facet",
			mutate:  func(cards []Rule) { cards[86].Tags = "safety:non_medical routine:any skin_type:oily" },
			wantErr: "exactly safety and routine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := Generate()
			tt.mutate(cards)

			err := Validate(cards)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
