package apperror

import "errors"

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrNoLegalMove    = errors.New("no legal move")
	ErrMalformedBoard = errors.New("malformed board")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrCellOutOfRange = errors.New("cell is out of range")
)
