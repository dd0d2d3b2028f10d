package entity

import "fmt"

// Move identifies the cell a player fills.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Column)
}

// PlayResult is the outcome of an AI turn.
type PlayResult struct {
	Move      Move      `json:"move"`
	NextBoard Board     `json:"next_board"`
	State     GameState `json:"state"`
}
