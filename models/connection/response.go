package connection

import (
	mb "github.com/saeidalz13/naval-battle/models/battleship"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// GridView is a grid with cell states spelled out
// ("empty", "occupied", "hit", "miss").
type GridView [][]string

func NewGridView(grid mb.Grid) GridView {
	view := make(GridView, len(grid))
	for x, row := range grid {
		view[x] = make([]string, len(row))
		for y, cs := range row {
			view[x][y] = cs.String()
		}
	}
	return view
}

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespGameStarted struct {
	GameUuid     string   `json:"game_uuid"`
	GridSize     int      `json:"grid_size"`
	OwnGrid      GridView `json:"own_grid"`
	OpponentGrid GridView `json:"opponent_grid"`
}

type RespAwaitingMove struct {
	Side string `json:"side"`
}

type RespShotResult struct {
	Attacker     string           `json:"attacker"`
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Result       string           `json:"result"`
	SunkCoords   []mb.Coordinates `json:"sunk_coords,omitempty"`
	IsTurn       bool             `json:"is_turn"`
	OwnGrid      GridView         `json:"own_grid"`
	OpponentGrid GridView         `json:"opponent_grid"`
}

type RespEndGame struct {
	Winner            string `json:"winner"`
	PlayerMatchStatus int    `json:"player_match_status"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
