package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name     string
		vy       int
		gravity  int
		terminal int
		want     int
	}{
		{"from rest", 0, 1, 20, 1},
		{"accelerates", 10, 1, 20, 11},
		{"reaches cap", 19, 1, 20, 20},
		{"stays at cap", 20, 1, 20, 20},
		{"rising slows", -20, 1, 20, -19},
		{"heavy gravity capped", 5, 30, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(0, 0, 10, 10)
			b.VY = tt.vy
			b.ApplyGravity(tt.gravity, tt.terminal)
			assert.Equal(t, tt.want, b.VY)
		})
	}
}

func TestBodyEdges(t *testing.T) {
	b := NewBody(10, 20, 64, 32)
	assert.Equal(t, 74, b.Right())
	assert.Equal(t, 52, b.Bottom())
	assert.Equal(t, 42, b.CenterX())

	b.SetRight(100)
	b.SetBottom(200)
	assert.Equal(t, 36, b.X)
	assert.Equal(t, 168, b.Y)
	assert.Equal(t, 64, b.W(), "size must not change")
	assert.Equal(t, 32, b.H(), "size must not change")
}
