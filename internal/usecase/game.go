package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jdecked/cs152-final/internal/apperror"
	"github.com/jdecked/cs152-final/internal/entity"
	"github.com/jdecked/cs152-final/internal/repository"
)

type GameUseCase interface {
	Play(ctx context.Context, board entity.Board, player entity.Mark) (*entity.PlayResult, error)
	Win(ctx context.Context, board entity.Board, player entity.Mark) (entity.Mark, error)
	Draw(ctx context.Context, board entity.Board) (bool, error)
}

type gameEngine interface {
	Rules() entity.Rules
	Depth() int

	ApplyMove(board entity.Board, move entity.Move, player entity.Mark) (entity.Board, error)
	Evaluate(board entity.Board) (entity.GameState, error)
	BestMove(board entity.Board, player entity.Mark) (entity.Move, entity.GameState, error)
}

type moveRepo interface {
	Save(ctx context.Context, query repository.MoveQuery, move repository.CachedMove) error
	Get(ctx context.Context, query repository.MoveQuery) (repository.CachedMove, error)
}

type gameUseCase struct {
	logger *slog.Logger

	engine   gameEngine
	moveRepo moveRepo
}

// NewGameUseCase - moveRepo is optional, without it every move is searched.
func NewGameUseCase(logger *slog.Logger, engine gameEngine, moveRepo moveRepo) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game"),
		engine:   engine,
		moveRepo: moveRepo,
	}
}

// Play - picks the AI move for player and plays it.
func (that *gameUseCase) Play(ctx context.Context, board entity.Board, player entity.Mark) (*entity.PlayResult, error) {
	log := that.logger.With("method", "Play", "player", player.String())

	move, state, err := that.bestMove(ctx, board, player)
	if err != nil {
		return nil, fmt.Errorf("failed to find a move: %w", err)
	}

	nextBoard, err := that.engine.ApplyMove(board, move, player)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move %s: %w", move, err)
	}

	log.Debug("move played", "move", move.String(), "state", state.String())

	return &entity.PlayResult{
		Move:      move,
		NextBoard: nextBoard,
		State:     state,
	}, nil
}

// Win - returns player when player owns a winning line, Empty otherwise.
func (that *gameUseCase) Win(_ context.Context, board entity.Board, player entity.Mark) (entity.Mark, error) {
	if !player.IsPlayer() {
		return entity.Empty, fmt.Errorf("%w: %q is not a player", apperror.ErrInvalidMove, player)
	}

	state, err := that.engine.Evaluate(board)
	if err != nil {
		return entity.Empty, fmt.Errorf("failed to evaluate board: %w", err)
	}

	if state.IsWin() && state.Winner == player {
		return player, nil
	}

	return entity.Empty, nil
}

// Draw - reports whether the board is full without a winner.
func (that *gameUseCase) Draw(_ context.Context, board entity.Board) (bool, error) {
	state, err := that.engine.Evaluate(board)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate board: %w", err)
	}

	return state.IsDraw(), nil
}

func (that *gameUseCase) bestMove(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, entity.GameState, error) {
	if that.moveRepo == nil {
		return that.engine.BestMove(board, player)
	}

	log := that.logger.With("method", "bestMove")

	query := repository.MoveQuery{
		Rules:  that.engine.Rules(),
		Depth:  that.engine.Depth(),
		Player: player,
		Board:  board,
	}

	cached, err := that.moveRepo.Get(ctx, query)
	switch {
	case err == nil:
		log.Debug("move cache hit", "board", board.Key())
		return cached.Move, cached.State, nil
	case !errors.Is(err, repository.ErrMoveNotCached):
		log.Warn("failed to read move cache", "error", err)
	}

	move, state, err := that.engine.BestMove(board, player)
	if err != nil {
		return entity.Move{}, entity.GameState{}, err
	}

	if err = that.moveRepo.Save(ctx, query, repository.CachedMove{Move: move, State: state}); err != nil {
		log.Warn("failed to write move cache", "error", err)
	}

	return move, state, nil
}
