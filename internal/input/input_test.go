package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementNormalizesDiagonal(t *testing.T) {
	x, y := State{MoveX: 1, MoveY: 1}.Movement()
	assert.InDelta(t, 1.0, math.Hypot(x, y), 1e-9)

	x, y = State{MoveX: 0.5}.Movement()
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 0.0, y)

	x, y = State{MoveX: math.NaN()}.Movement()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestIdleScript(t *testing.T) {
	s := Idle()
	for i := 0; i < 5; i++ {
		assert.Equal(t, State{}, s.Poll())
	}
	assert.Equal(t, 5, s.Ticks())
}

func TestCircleScript(t *testing.T) {
	s := Circle(4)
	first := s.Poll()
	assert.True(t, first.Dash)
	assert.InDelta(t, 1.0, first.MoveX, 1e-9)

	second := s.Poll()
	assert.False(t, second.Dash)
	assert.InDelta(t, 1.0, second.MoveY, 1e-9)
	assert.InDelta(t, 1.0, math.Hypot(second.MoveX, second.MoveY), 1e-9)
}

func TestByName(t *testing.T) {
	s, err := ByName("circle")
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = ByName("zigzag")
	assert.ErrorIs(t, err, ErrUnknownScript)
}
