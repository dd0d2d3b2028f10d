package entity

import "fmt"

// Status values follow the state atoms of the original knowledge base.
type Status string

const (
	StatusPlay Status = "play"
	StatusWin  Status = "win"
	StatusDraw Status = "draw"
)

type GameState struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner"`
}

func InProgress() GameState {
	return GameState{Status: StatusPlay}
}

func Win(player Mark) GameState {
	return GameState{Status: StatusWin, Winner: player}
}

func Draw() GameState {
	return GameState{Status: StatusDraw}
}

func (that GameState) IsWin() bool {
	return that.Status == StatusWin
}

func (that GameState) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that GameState) IsTerminal() bool {
	return that.IsWin() || that.IsDraw()
}

func (that GameState) String() string {
	if that.IsWin() {
		return fmt.Sprintf("%s(%s)", that.Status, that.Winner)
	}

	return string(that.Status)
}
