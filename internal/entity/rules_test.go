package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Validate(t *testing.T) {
	t.Run("Default rules are valid", func(t *testing.T) {
		require.NoError(t, DefaultRules().Validate())
	})

	t.Run("Connect four geometry is valid", func(t *testing.T) {
		rules := Rules{Rows: 6, Cols: 7, WinLength: 4, Gravity: true}

		require.NoError(t, rules.Validate())
		assert.Equal(t, "6x7k4g", rules.String())
	})

	t.Run("Rejects empty boards", func(t *testing.T) {
		err := Rules{Rows: 0, Cols: 3, WinLength: 3}.Validate()

		require.ErrorIs(t, err, ErrInvalidRules)
	})

	t.Run("Rejects a win length longer than the board", func(t *testing.T) {
		err := Rules{Rows: 3, Cols: 3, WinLength: 4}.Validate()

		require.ErrorIs(t, err, ErrInvalidRules)
	})
}

func TestGameState(t *testing.T) {
	assert.True(t, Win(PlayerOne).IsTerminal())
	assert.True(t, Draw().IsTerminal())
	assert.False(t, InProgress().IsTerminal())
	assert.Equal(t, "win(1)", Win(PlayerOne).String())
	assert.Equal(t, "draw", Draw().String())
}
