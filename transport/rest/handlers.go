package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jdecked/cs152-final/internal/apperror"
	"github.com/jdecked/cs152-final/internal/entity"
)

const maxBodyBytes = 1 << 20

type gameUseCase interface {
	Play(ctx context.Context, board entity.Board, player entity.Mark) (*entity.PlayResult, error)
	Win(ctx context.Context, board entity.Board, player entity.Mark) (entity.Mark, error)
	Draw(ctx context.Context, board entity.Board) (bool, error)
}

type GameHandlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewGameHandlers(logger *slog.Logger, game gameUseCase) *GameHandlers {
	return &GameHandlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

// Play - POST /play, the AI moves for the given player.
func (that *GameHandlers) Play(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Play")

	var req PlayerBoardRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.sendError(w, log, err)
		return
	}

	player, err := entity.ParsePlayer(req.Player)
	if err != nil {
		that.sendError(w, log, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	result, err := that.game.Play(r.Context(), req.Board, player)
	if err != nil {
		that.sendError(w, log, err)
		return
	}

	resp := PlayResponse{
		Row:       result.Move.Row,
		Column:    result.Move.Column,
		NextBoard: result.NextBoard,
	}
	if result.State.IsWin() {
		resp.Winner = symbolOf(result.State.Winner)
	}

	that.sendJSON(w, log, http.StatusOK, resp)
}

// Win - POST /win, whether the given player has won.
func (that *GameHandlers) Win(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Win")

	var req PlayerBoardRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.sendError(w, log, err)
		return
	}

	player, err := entity.ParsePlayer(req.Player)
	if err != nil {
		that.sendError(w, log, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	winner, err := that.game.Win(r.Context(), req.Board, player)
	if err != nil {
		that.sendError(w, log, err)
		return
	}

	that.sendJSON(w, log, http.StatusOK, WinResponse{Winner: symbolOf(winner)})
}

// Draw - POST /draw, whether the board is drawn.
func (that *GameHandlers) Draw(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Draw")

	var req BoardRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.sendError(w, log, err)
		return
	}

	draw, err := that.game.Draw(r.Context(), req.Board)
	if err != nil {
		that.sendError(w, log, err)
		return
	}

	that.sendJSON(w, log, http.StatusOK, DrawResponse{Draw: draw})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, apperror.ErrMalformedBoard):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrNoLegalMove):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (that *GameHandlers) sendError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = http.StatusText(status)
	} else {
		log.Info("request rejected", "status", status, "error", err)
	}

	that.sendJSON(w, log, status, ErrorResponse{Error: message})
}

func (that *GameHandlers) sendJSON(w http.ResponseWriter, log *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to write response", "error", err)
	}
}

func symbolOf(mark entity.Mark) *string {
	if !mark.IsPlayer() {
		return nil
	}

	symbol := mark.String()

	return &symbol
}
