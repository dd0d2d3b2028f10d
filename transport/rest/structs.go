package rest

import (
	"errors"

	"github.com/jdecked/cs152-final/internal/entity"
)

var errBadRequest = errors.New("bad request")

// PlayerBoardRequest is the body of /play and /win.
type PlayerBoardRequest struct {
	Player string       `json:"player"`
	Board  entity.Board `json:"board"`
}

// BoardRequest is the body of /draw.
type BoardRequest struct {
	Board entity.Board `json:"board"`
}

type PlayResponse struct {
	Row       int          `json:"row"`
	Column    int          `json:"column"`
	NextBoard entity.Board `json:"nextBoard"`
	Winner    *string      `json:"winner"`
}

type WinResponse struct {
	Winner *string `json:"winner"`
}

type DrawResponse struct {
	Draw bool `json:"draw"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
