package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 0.0, SafeDiv(10, 0))
	assert.Equal(t, 2.5, SafeDiv(5, 2))
	assert.False(t, math.IsNaN(SafeDiv(0, 0)))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "increase", current: 110, previous: 100, want: 10},
		{name: "decrease", current: 90, previous: 100, want: -10},
		{name: "no baseline", current: 90, previous: 0, want: 0},
		{name: "unchanged", current: 50, previous: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 94.44, Round2(85.0/90.0*100))
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, -2.35, Round2(-2.345))
	assert.Equal(t, 0.0, Round2(0))
}
