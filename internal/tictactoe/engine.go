package tictactoe

import (
	"fmt"

	"github.com/jdecked/cs152-final/internal/apperror"
	"github.com/jdecked/cs152-final/internal/entity"
)

// DefaultDepth matches the look-ahead the knowledge base search was queried with.
const DefaultDepth = 6

// Engine evaluates boards and picks moves for a fixed set of rules.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules entity.Rules
	depth int
}

// NewEngine - creates an engine. A depth <= 0 searches until the game ends.
func NewEngine(rules entity.Rules, depth int) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("could not create engine: %w", err)
	}

	return &Engine{
		rules: rules,
		depth: depth,
	}, nil
}

func (that *Engine) Rules() entity.Rules {
	return that.rules
}

func (that *Engine) Depth() int {
	return that.depth
}

// Validate - checks that the board has the dimensions of the rules.
func (that *Engine) Validate(board entity.Board) error {
	if board.Rows() != that.rules.Rows || board.Cols() != that.rules.Cols {
		return fmt.Errorf("%w: expected %dx%d board, got %dx%d", apperror.ErrMalformedBoard,
			that.rules.Rows, that.rules.Cols, board.Rows(), board.Cols())
	}

	return nil
}
