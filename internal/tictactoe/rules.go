package tictactoe

import (
	"fmt"

	"github.com/jdecked/cs152-final/internal/apperror"
	"github.com/jdecked/cs152-final/internal/entity"
)

// directions cover rows, columns and both diagonals.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// LegalMoves - returns every playable cell in row-major order.
func (that *Engine) LegalMoves(board entity.Board) ([]entity.Move, error) {
	if err := that.Validate(board); err != nil {
		return nil, err
	}

	return that.legalMoves(board), nil
}

// ApplyMove - returns a new board with the move played. The input board is never modified.
func (that *Engine) ApplyMove(board entity.Board, move entity.Move, player entity.Mark) (entity.Board, error) {
	if err := that.Validate(board); err != nil {
		return entity.Board{}, err
	}

	if !player.IsPlayer() {
		return entity.Board{}, fmt.Errorf("%w: %q is not a player", apperror.ErrInvalidMove, player)
	}

	if !board.InBounds(move.Row, move.Column) {
		return entity.Board{}, fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOutOfRange, move)
	}

	if board.At(move.Row, move.Column) != entity.Empty {
		return entity.Board{}, fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	if !that.playable(board, move.Row, move.Column) {
		return entity.Board{}, fmt.Errorf("%w: cell %s has nothing below it", apperror.ErrInvalidMove, move)
	}

	return board.With(move, player), nil
}

// Evaluate - reports a win, a draw, or a game still in progress.
func (that *Engine) Evaluate(board entity.Board) (entity.GameState, error) {
	if err := that.Validate(board); err != nil {
		return entity.GameState{}, err
	}

	winner := entity.Empty
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			mark := board.At(row, col)
			if !mark.IsPlayer() || mark == winner || !that.startsLine(board, row, col) {
				continue
			}

			if winner != entity.Empty {
				return entity.GameState{}, fmt.Errorf("%w: both players have a winning line", apperror.ErrMalformedBoard)
			}

			winner = mark
		}
	}

	if winner != entity.Empty {
		return entity.Win(winner), nil
	}

	if board.IsFull() {
		return entity.Draw(), nil
	}

	return entity.InProgress(), nil
}

func (that *Engine) legalMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, board.CountEmpty())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if board.At(row, col) == entity.Empty && that.playable(board, row, col) {
				moves = append(moves, entity.Move{Row: row, Column: col})
			}
		}
	}

	return moves
}

func (that *Engine) playable(board entity.Board, row, col int) bool {
	return !that.rules.Gravity || row == 0 || board.At(row-1, col) != entity.Empty
}

// startsLine reports whether a winning line of the mark at (row, col) starts there.
func (that *Engine) startsLine(board entity.Board, row, col int) bool {
	mark := board.At(row, col)
	for _, dir := range directions {
		if that.run(board, row, col, dir[0], dir[1], mark) >= that.rules.WinLength-1 {
			return true
		}
	}

	return false
}

// completesLine reports whether the mark just placed at move finished a line.
func (that *Engine) completesLine(board entity.Board, move entity.Move, mark entity.Mark) bool {
	for _, dir := range directions {
		length := 1 +
			that.run(board, move.Row, move.Column, dir[0], dir[1], mark) +
			that.run(board, move.Row, move.Column, -dir[0], -dir[1], mark)
		if length >= that.rules.WinLength {
			return true
		}
	}

	return false
}

// run counts consecutive cells holding mark beyond (row, col) in direction (dr, dc).
func (that *Engine) run(board entity.Board, row, col, dr, dc int, mark entity.Mark) int {
	count := 0
	for {
		row, col = row+dr, col+dc
		if !board.InBounds(row, col) || board.At(row, col) != mark || count >= that.rules.WinLength {
			return count
		}
		count++
	}
}
