package entity

import (
	"fmt"

	"github.com/jdecked/cs152-final/internal/apperror"
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerOne
	PlayerTwo
)

const (
	SymbolEmpty     = "-"
	SymbolPlayerOne = "1"
	SymbolPlayerTwo = "2"
)

// ParseMark accepts the front end symbols ("-", "1", "2"), the knowledge base
// encoding of an empty cell ("0") and the classic "X" / "O" letters.
func ParseMark(symbol string) (Mark, error) {
	switch symbol {
	case SymbolEmpty, "0", "":
		return Empty, nil
	case SymbolPlayerOne, "X", "x":
		return PlayerOne, nil
	case SymbolPlayerTwo, "O", "o":
		return PlayerTwo, nil
	default:
		return Empty, fmt.Errorf("%w: unknown symbol %q", apperror.ErrMalformedBoard, symbol)
	}
}

// ParsePlayer is ParseMark restricted to player marks.
func ParsePlayer(symbol string) (Mark, error) {
	mark, err := ParseMark(symbol)
	if err != nil || !mark.IsPlayer() {
		return Empty, fmt.Errorf("%w: %q is not a player", apperror.ErrInvalidMove, symbol)
	}

	return mark, nil
}

func (that Mark) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent returns the other player. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerOne:
		return SymbolPlayerOne
	case PlayerTwo:
		return SymbolPlayerTwo
	default:
		return SymbolEmpty
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}
