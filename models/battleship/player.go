package battleship

type Side uint8

// SideA moves first. By convention it is the human.
const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideB {
		return "computer"
	}
	return "human"
}

func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// MoveSource supplies the next target for one side. It may block while
// waiting for input. Bounds are checked by the board, not here.
type MoveSource interface {
	NextTarget() (Coordinates, error)
}

// MoveSourceFunc adapts a plain function to MoveSource.
type MoveSourceFunc func() (Coordinates, error)

func (f MoveSourceFunc) NextTarget() (Coordinates, error) {
	return f()
}

type Player struct {
	side   Side
	board  *Board
	source MoveSource
	moves  int
}

func NewPlayer(side Side, board *Board, source MoveSource) *Player {
	return &Player{
		side:   side,
		board:  board,
		source: source,
	}
}

func (p *Player) Side() Side {
	return p.side
}

// Board is the player's own board, the one the opponent fires at.
func (p *Player) Board() *Board {
	return p.board
}

// Moves counts the shots this player landed on the board, rejected
// targets excluded.
func (p *Player) Moves() int {
	return p.moves
}

func (p *Player) IsLoser() bool {
	return p.board.IsDefeated()
}
