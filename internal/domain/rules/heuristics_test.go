package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		forced    bool
		triggered []string
	}{
		{
			name:      "scam phrase",
			text:      "double your money in a week",
			forced:    true,
			triggered: []string{"scam_phrase"},
		},
		{
			name:      "bait and lure together",
			text:      "jackpot alert, claim it today",
			forced:    true,
			triggered: []string{"bait_lure_combo"},
		},
		{
			name:   "bait alone is not enough",
			text:   "the jackpot machine broke down",
			forced: false,
		},
		{
			name:   "lure alone is not enough",
			text:   "you can earn respect through hard work",
			forced: false,
		},
		{
			name:      "eight digit amount",
			text:      "send us 10000000 rupees",
			forced:    true,
			triggered: []string{"unrealistic_amount"},
		},
		{
			name:   "seven digits stay under the bar",
			text:   "the house costs 9999999",
			forced: false,
		},
		{
			name:      "small stake huge payout",
			text:      "pay 500 and get 500000 back",
			forced:    true,
			triggered: []string{"disproportionate_return"},
		},
		{
			name:   "two equal numbers never disproportionate",
			text:   "transfer 900 or 900",
			forced: false,
		},
		{
			name:   "single number no ratio",
			text:   "call 555 now",
			forced: false,
		},
		{
			name:   "plain text",
			text:   "selling a used bicycle, slightly rusty",
			forced: false,
		},
		{
			name:   "empty",
			text:   "",
			forced: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(Normalize(tt.text))
			assert.Equal(t, tt.forced, v.Forced)
			if tt.triggered != nil {
				assert.Equal(t, tt.triggered, v.Triggered)
			}
		})
	}
}

func TestEvaluateStacksRules(t *testing.T) {
	// lottery + guaranteed hit the phrase list, lottery+earn the combo,
	// and the amount has ten digits
	v := Evaluate(Normalize("Congratulations! You won a lottery jackpot, earn guaranteed profit of 5000000000!"))
	assert.True(t, v.Forced)
	assert.Equal(t, []string{"scam_phrase", "bait_lure_combo", "unrealistic_amount"}, v.Triggered)
}
