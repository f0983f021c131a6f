package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "already two decimals", in: 12.34, want: 12.34},
		{name: "rounds half up", in: 0.005, want: 0.01},
		{name: "drops float noise", in: 0.1 + 0.2, want: 0.3},
		{name: "negative amounts", in: -1.005, want: -1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 0.0001)
		})
	}
}

func TestSameAmount(t *testing.T) {
	assert.True(t, SameAmount(10.00, 10.004))
	assert.True(t, SameAmount(10.00, 10.01))
	assert.False(t, SameAmount(10.00, 10.02))
}
