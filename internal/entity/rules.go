package entity

import (
	"errors"
	"fmt"
)

const (
	DefaultSize      = 3
	DefaultWinLength = 3
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules describe the board geometry and the win condition.
// With Gravity set a cell can only be taken once the cell below it
// (row - 1) is occupied, so columns fill up from row 0.
type Rules struct {
	Rows      int
	Cols      int
	WinLength int
	Gravity   bool
}

func DefaultRules() Rules {
	return Rules{
		Rows:      DefaultSize,
		Cols:      DefaultSize,
		WinLength: DefaultWinLength,
	}
}

func (that Rules) Validate() error {
	if that.Rows < 1 || that.Cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidRules, that.Rows, that.Cols)
	}

	if that.WinLength < 1 || (that.WinLength > that.Rows && that.WinLength > that.Cols) {
		return fmt.Errorf("%w: win length %d does not fit a %dx%d board", ErrInvalidRules, that.WinLength, that.Rows, that.Cols)
	}

	return nil
}

func (that Rules) EmptyBoard() Board {
	return NewBoard(that.Rows, that.Cols)
}

// String is a compact identifier, e.g. "3x3k3" or "6x7k4g".
func (that Rules) String() string {
	id := fmt.Sprintf("%dx%dk%d", that.Rows, that.Cols, that.WinLength)
	if that.Gravity {
		id += "g"
	}

	return id
}
