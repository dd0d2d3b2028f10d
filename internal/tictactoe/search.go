package tictactoe

import (
	"fmt"

	"github.com/jdecked/cs152-final/internal/apperror"
	"github.com/jdecked/cs152-final/internal/entity"
)

// Scores are from the point of view of the side to move.
const (
	scoreLoss = -1
	scoreDraw = 0
	scoreWin  = 1

	scoreInfinity = scoreWin + 1
)

// BestMove - picks the move with the best guaranteed outcome for player, assuming
// optimal replies, and returns the state of the board after it.
// Equal scores resolve to the lowest row, then the lowest column.
func (that *Engine) BestMove(board entity.Board, player entity.Mark) (entity.Move, entity.GameState, error) {
	if !player.IsPlayer() {
		return entity.Move{}, entity.GameState{}, fmt.Errorf("%w: %q is not a player", apperror.ErrInvalidMove, player)
	}

	state, err := that.Evaluate(board)
	if err != nil {
		return entity.Move{}, entity.GameState{}, err
	}

	if state.IsTerminal() {
		return entity.Move{}, state, fmt.Errorf("%w: game is over (%s)", apperror.ErrNoLegalMove, state)
	}

	moves := that.legalMoves(board)
	if len(moves) == 0 {
		return entity.Move{}, state, apperror.ErrNoLegalMove
	}

	best := moves[0]
	bestScore := -scoreInfinity

	for _, move := range moves {
		next := board.With(move, player)

		// a reply that fails high against bestScore can only tie it, so the earlier move stays
		score := -that.negamax(next, move, player.Opponent(), 1, -scoreInfinity, -bestScore)
		if score > bestScore {
			best, bestScore = move, score
		}

		if bestScore == scoreWin {
			break
		}
	}

	return best, that.stateAfter(board.With(best, player), best, player), nil
}

// negamax scores board for toMove after the opponent played last at the given ply.
func (that *Engine) negamax(board entity.Board, last entity.Move, toMove entity.Mark, ply, alpha, beta int) int {
	if that.completesLine(board, last, toMove.Opponent()) {
		return scoreLoss
	}

	moves := that.legalMoves(board)
	if len(moves) == 0 {
		return scoreDraw
	}

	if that.depth > 0 && ply >= that.depth {
		return scoreDraw
	}

	best := -scoreInfinity
	for _, move := range moves {
		score := -that.negamax(board.With(move, toMove), move, toMove.Opponent(), ply+1, -beta, -alpha)
		if score > best {
			best = score
		}

		if best > alpha {
			alpha = best
		}

		if alpha >= beta {
			break
		}
	}

	return best
}

func (that *Engine) stateAfter(board entity.Board, move entity.Move, player entity.Mark) entity.GameState {
	if that.completesLine(board, move, player) {
		return entity.Win(player)
	}

	if len(that.legalMoves(board)) == 0 {
		return entity.Draw()
	}

	return entity.InProgress()
}
