package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jdecked/cs152-final/internal/apperror"
)

// Board is an immutable rows x cols grid of marks. Every change produces a
// new Board, so boards can be shared between search branches freely.
type Board struct {
	rows  int
	cols  int
	cells []Mark
}

func NewBoard(rows, cols int) Board {
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Mark, rows*cols),
	}
}

// BoardFromMarks builds a board from row-major marks.
func BoardFromMarks(grid [][]Mark) (Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Board{}, fmt.Errorf("%w: board has no cells", apperror.ErrMalformedBoard)
	}

	board := NewBoard(len(grid), len(grid[0]))
	for row, marks := range grid {
		if len(marks) != board.cols {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, expected %d",
				apperror.ErrMalformedBoard, row, len(marks), board.cols)
		}

		copy(board.cells[row*board.cols:], marks)
	}

	return board, nil
}

// ParseBoard builds a board from the wire symbols.
func ParseBoard(symbols [][]string) (Board, error) {
	grid := make([][]Mark, len(symbols))
	for row, line := range symbols {
		grid[row] = make([]Mark, len(line))
		for col, symbol := range line {
			mark, err := ParseMark(symbol)
			if err != nil {
				return Board{}, fmt.Errorf("cell (%d, %d): %w", row, col, err)
			}

			grid[row][col] = mark
		}
	}

	return BoardFromMarks(grid)
}

func (that Board) Rows() int {
	return that.rows
}

func (that Board) Cols() int {
	return that.cols
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.rows && col < that.cols
}

func (that Board) At(row, col int) Mark {
	return that.cells[row*that.cols+col]
}

// With returns a copy of the board with the cell at move set to mark.
// Bounds are the caller's responsibility.
func (that Board) With(move Move, mark Mark) Board {
	next := Board{
		rows:  that.rows,
		cols:  that.cols,
		cells: make([]Mark, len(that.cells)),
	}
	copy(next.cells, that.cells)
	next.cells[move.Row*that.cols+move.Column] = mark

	return next
}

func (that Board) CountEmpty() int {
	count := 0
	for _, cell := range that.cells {
		if cell == Empty {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.CountEmpty() == 0
}

func (that Board) Equal(other Board) bool {
	if that.rows != other.rows || that.cols != other.cols {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Symbols returns the board as rows of wire symbols.
func (that Board) Symbols() [][]string {
	symbols := make([][]string, that.rows)
	for row := range symbols {
		symbols[row] = make([]string, that.cols)
		for col := range symbols[row] {
			symbols[row][col] = that.At(row, col).String()
		}
	}

	return symbols
}

// Key is a compact, unique text form of the board, e.g. "3x3:1-2------".
func (that Board) Key() string {
	var sb strings.Builder

	sb.WriteString(strconv.Itoa(that.rows))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(that.cols))
	sb.WriteByte(':')

	for _, cell := range that.cells {
		sb.WriteString(cell.String())
	}

	return sb.String()
}

func (that Board) String() string {
	lines := make([]string, that.rows)
	for row, symbols := range that.Symbols() {
		lines[row] = strings.Join(symbols, " ")
	}

	return strings.Join(lines, "\n")
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Symbols())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var symbols [][]string
	if err := json.Unmarshal(data, &symbols); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedBoard, err)
	}

	board, err := ParseBoard(symbols)
	if err != nil {
		return err
	}

	*that = board

	return nil
}
