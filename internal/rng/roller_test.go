package rng_test

import (
	"testing"

	"github.com/siegecord/r6-bot-discord/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestMockRoller_Intn(t *testing.T) {
	tests := []struct {
		name   string
		setup  []int
		n      int
		want   []int
	}{
		{
			name:  "returns values in sequence",
			setup: []int{3, 1, 0},
			n:     5,
			want:  []int{3, 1, 0},
		},
		{
			name:  "exhausted sequence falls back to zero",
			setup: []int{2},
			n:     5,
			want:  []int{2, 0, 0},
		},
		{
			name:  "out of range value is clamped to zero",
			setup: []int{9},
			n:     5,
			want:  []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := rng.NewMockRoller()
			m.SetInts(tt.setup)
			for _, want := range tt.want {
				assert.Equal(t, want, m.Intn(tt.n))
			}
		})
	}
}

func TestMockRoller_Percent(t *testing.T) {
	m := rng.NewMockRoller()
	m.SetPercents([]float64{95.45, 50, 99})

	assert.InDelta(t, 95.45, m.Percent(), 0.001)
	assert.InDelta(t, 50.0, m.Percent(), 0.001)
	assert.InDelta(t, 99.0, m.Percent(), 0.001)
	assert.Zero(t, m.Percent())
}

func TestRandomRoller_Ranges(t *testing.T) {
	r := rng.NewRandomRoller()

	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)

		p := r.Percent()
		assert.GreaterOrEqual(t, p, 0.0)
		assert.Less(t, p, 100.0)
	}
}
