package tictactoe

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdecked/cs152-final/internal/apperror"
	"github.com/jdecked/cs152-final/internal/entity"
)

// solver is a plain memoised minimax over 3x3 boards used as an oracle.
type solver struct {
	engine *Engine
	memo   map[string]int
}

func newSolver(t *testing.T) *solver {
	t.Helper()

	return &solver{
		engine: newEngine(t, entity.DefaultRules(), 0),
		memo:   make(map[string]int),
	}
}

// value is the game-theoretic value of board for toMove.
func (that *solver) value(t *testing.T, board entity.Board, toMove entity.Mark) int {
	t.Helper()

	key := board.Key() + toMove.String()
	if v, ok := that.memo[key]; ok {
		return v
	}

	state, err := that.engine.Evaluate(board)
	require.NoError(t, err)

	var v int
	switch {
	case state.IsWin() && state.Winner == toMove:
		v = scoreWin
	case state.IsWin():
		v = scoreLoss
	case state.IsDraw():
		v = scoreDraw
	default:
		v = scoreLoss
		for _, move := range that.engine.legalMoves(board) {
			if child := -that.value(t, board.With(move, toMove), toMove.Opponent()); child > v {
				v = child
			}
		}
	}

	that.memo[key] = v

	return v
}

func TestEngine_BestMove(t *testing.T) {
	engine := newEngine(t, entity.DefaultRules(), DefaultDepth)

	t.Run("Completes an open row", func(t *testing.T) {
		// Given: player one holds two cells of the top row
		board := mustBoard(t,
			"11-",
			"---",
			"---",
		)

		// When: asking for the best move of player one
		move, state, err := engine.BestMove(board, entity.PlayerOne)

		// Then: the row is completed and player one wins
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Column: 2}, move)
		assert.Equal(t, entity.Win(entity.PlayerOne), state)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		board := mustBoard(t,
			"11-",
			"-2-",
			"---",
		)

		move, state, err := engine.BestMove(board, entity.PlayerTwo)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Column: 2}, move)
		assert.Equal(t, entity.InProgress(), state)
	})

	t.Run("Treats both players the same", func(t *testing.T) {
		board := mustBoard(t,
			"22-",
			"-1-",
			"---",
		)

		move, _, err := engine.BestMove(board, entity.PlayerOne)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Column: 2}, move)
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: both players threaten a line, player two to move
		board := mustBoard(t,
			"11-",
			"22-",
			"1--",
		)

		// When: asking for the best move of player two
		move, state, err := engine.BestMove(board, entity.PlayerTwo)

		// Then: player two wins instead of blocking
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Column: 2}, move)
		assert.Equal(t, entity.Win(entity.PlayerTwo), state)
	})

	t.Run("Last cell ends in a draw", func(t *testing.T) {
		board := mustBoard(t,
			"121",
			"122",
			"21-",
		)

		move, state, err := engine.BestMove(board, entity.PlayerTwo)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Column: 2}, move)
		assert.Equal(t, entity.Draw(), state)
	})

	t.Run("Error on full board", func(t *testing.T) {
		board := mustBoard(t,
			"121",
			"122",
			"211",
		)

		_, _, err := engine.BestMove(board, entity.PlayerOne)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		board := mustBoard(t,
			"111",
			"22-",
			"---",
		)

		_, state, err := engine.BestMove(board, entity.PlayerTwo)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, entity.Win(entity.PlayerOne), state)
	})

	t.Run("Error on malformed board", func(t *testing.T) {
		_, _, err := engine.BestMove(entity.NewBoard(2, 2), entity.PlayerOne)

		require.ErrorIs(t, err, apperror.ErrMalformedBoard)
	})

	t.Run("Error on empty mark as player", func(t *testing.T) {
		_, _, err := engine.BestMove(entity.DefaultRules().EmptyBoard(), entity.Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestEngine_BestMoveDepth(t *testing.T) {
	// Given: player two threatens the bottom row
	board := mustBoard(t,
		"---",
		"---",
		"22-",
	)

	t.Run("One ply does not see the threat", func(t *testing.T) {
		engine := newEngine(t, entity.DefaultRules(), 1)

		move, _, err := engine.BestMove(board, entity.PlayerOne)

		// Then: every move looks equal and the first one is taken
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Column: 0}, move)
	})

	t.Run("Two plies block the threat", func(t *testing.T) {
		engine := newEngine(t, entity.DefaultRules(), 2)

		move, _, err := engine.BestMove(board, entity.PlayerOne)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Column: 2}, move)
	})
}

func TestEngine_BestMoveOnEmptyBoard(t *testing.T) {
	engine := newEngine(t, entity.DefaultRules(), DefaultDepth)
	oracle := newSolver(t)
	board := entity.DefaultRules().EmptyBoard()

	// When: player one opens the game
	move, state, err := engine.BestMove(board, entity.PlayerOne)
	require.NoError(t, err)

	// Then: the opening is deterministic
	assert.Equal(t, entity.Move{Row: 0, Column: 0}, move)
	assert.Equal(t, entity.InProgress(), state)

	// And: player two cannot force a win after it
	reply := oracle.value(t, board.With(move, entity.PlayerOne), entity.PlayerTwo)
	assert.LessOrEqual(t, reply, scoreDraw)
}

func TestEngine_BestMoveIsOptimal(t *testing.T) {
	if testing.Short() {
		t.Skip("walks every reachable position")
	}

	engine := newEngine(t, entity.DefaultRules(), 0)
	oracle := newSolver(t)
	seen := make(map[string]bool)

	var walk func(board entity.Board, toMove entity.Mark)
	walk = func(board entity.Board, toMove entity.Mark) {
		key := board.Key() + toMove.String()
		if seen[key] {
			return
		}
		seen[key] = true

		state, err := engine.Evaluate(board)
		require.NoError(t, err)
		if state.IsTerminal() {
			return
		}

		// Given: a reachable position
		optimum := oracle.value(t, board, toMove)

		// When: asking the unbounded engine for a move
		move, after, err := engine.BestMove(board, toMove)
		require.NoError(t, err)

		// Then: the move keeps the game-theoretic value of the position
		got := scoreWin
		if !after.IsWin() {
			got = -oracle.value(t, board.With(move, toMove), toMove.Opponent())
		}
		require.Equal(t, optimum, got, "board:\n%s\nto move %s", board, toMove)

		for _, next := range engine.legalMoves(board) {
			walk(board.With(next, toMove), toMove.Opponent())
		}
	}

	walk(entity.DefaultRules().EmptyBoard(), entity.PlayerOne)

	// 4520 non-terminal positions with player one to start
	assert.Greater(t, len(seen), 4000)
}

func TestEngine_BestMoveGravity(t *testing.T) {
	rules := entity.Rules{Rows: 6, Cols: 7, WinLength: 4, Gravity: true}
	engine := newEngine(t, rules, 4)

	t.Run("Drops on top of an open three", func(t *testing.T) {
		// Given: player one has three stacked pieces in column 3
		board := rules.EmptyBoard()
		for row := 0; row < 3; row++ {
			board = board.With(entity.Move{Row: row, Column: 3}, entity.PlayerOne)
		}
		for _, col := range []int{0, 1, 5} {
			board = board.With(entity.Move{Row: 0, Column: col}, entity.PlayerTwo)
		}

		// When: player two looks for a move
		move, state, err := engine.BestMove(board, entity.PlayerTwo)

		// Then: the column is capped
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 3, Column: 3}, move)
		assert.Equal(t, entity.InProgress(), state)
	})
}

func TestEngine_BestMoveConcurrent(t *testing.T) {
	engine := newEngine(t, entity.DefaultRules(), DefaultDepth)
	board := mustBoard(t,
		"1--",
		"-2-",
		"--1",
	)

	expected, _, err := engine.BestMove(board, entity.PlayerTwo)
	require.NoError(t, err)

	// When: many goroutines search the same board
	var wg sync.WaitGroup
	moves := make([]entity.Move, 16)
	for i := range moves {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			moves[i], _, _ = engine.BestMove(board, entity.PlayerTwo)
		}(i)
	}
	wg.Wait()

	// Then: they all agree
	for _, move := range moves {
		assert.Equal(t, expected, move)
	}
}
