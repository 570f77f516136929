package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/goebm/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		wantName   string
		wantParams map[string]float64
	}{
		{"bare name", "mse", "mse", map[string]float64{}},
		{"single param", "pseudo_huber:delta=1.5", "pseudo_huber", map[string]float64{"delta": 1.5}},
		{"multiple params", "log_loss:a=1,b=2", "log_loss", map[string]float64{"a": 1, "b": 2}},
		{"whitespace everywhere", "  quantile : alpha = 0.25 ", "quantile", map[string]float64{"alpha": 0.25}},
		{"scientific notation", "quantile:alpha=2.5e-1", "quantile", map[string]float64{"alpha": 0.25}},
		{"negative value", "pseudo_huber:delta=-2", "pseudo_huber", map[string]float64{"delta": -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, r.Name)
			assert.Equal(t, tt.wantParams, r.Params)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		sentinel error
	}{
		{"empty spec", "", errors.ErrUnknownLoss},
		{"blank spec", "   ", errors.ErrUnknownLoss},
		{"missing name", ":delta=1", errors.ErrUnknownLoss},
		{"colon without params", "pseudo_huber:", errors.ErrLossParams},
		{"missing equals", "pseudo_huber:delta", errors.ErrLossParams},
		{"empty key", "pseudo_huber:=1", errors.ErrLossParams},
		{"duplicate key", "pseudo_huber:delta=1,delta=2", errors.ErrLossParams},
		{"non numeric value", "pseudo_huber:delta=abc", errors.ErrLossParams},
		{"empty field", "pseudo_huber:delta=1,,x=2", errors.ErrLossParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "want %v in chain, got %v", tt.sentinel, err)
		})
	}
}

func TestRecipeTake(t *testing.T) {
	r, err := Parse("pseudo_huber:delta=1.5")
	require.NoError(t, err)

	assert.Equal(t, 1.5, r.Take("delta", 1.0))
	assert.Equal(t, 1.0, r.Take("delta", 1.0), "taken parameters fall back to the default")

	_, ok := r.Leftover()
	assert.False(t, ok)
}

func TestRecipeLeftover(t *testing.T) {
	r, err := Parse("quantile:zeta=1,alpha=0.5,beta=2")
	require.NoError(t, err)

	r.Take("alpha", 0.5)

	key, ok := r.Leftover()
	require.True(t, ok)
	assert.Equal(t, "beta", key, "leftover reporting is deterministic")
}
