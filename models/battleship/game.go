package battleship

import (
	"errors"
	"log"
	"math/rand"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/naval-battle/internal/error"
)

type GameState uint8

const (
	GameStateAwaitingSideA GameState = iota
	GameStateAwaitingSideB
	GameStateSideAWon
	GameStateSideBWon
)

func (gs GameState) String() string {
	switch gs {
	case GameStateAwaitingSideA:
		return "awaiting " + SideA.String()
	case GameStateAwaitingSideB:
		return "awaiting " + SideB.String()
	case GameStateSideAWon:
		return SideA.String() + " won"
	case GameStateSideBWon:
		return SideB.String() + " won"
	default:
		return "unknown"
	}
}

func (gs GameState) IsFinished() bool {
	return gs == GameStateSideAWon || gs == GameStateSideBWon
}

// ShotReport describes one shot that landed. SunkCoords is set only when
// the shot sank a vessel.
type ShotReport struct {
	Attacker   Side          `json:"attacker"`
	Target     Coordinates   `json:"target"`
	Result     ShotResult    `json:"result"`
	SunkCoords []Coordinates `json:"sunk_coords,omitempty"`
	State      GameState     `json:"state"`
}

// Game alternates move requests between two players. A hit or a sink
// keeps the turn, a miss passes it, and a shot that defeats the opponent
// ends the game on the spot.
type Game struct {
	uuid    string
	state   GameState
	players [2]*Player

	// Optional hooks, called synchronously from Move.
	OnAwaiting func(side Side)
	OnRejected func(side Side, target Coordinates, err error)
	OnShot     func(report ShotReport)
}

func NewGame(playerA, playerB *Player) *Game {
	return &Game{
		uuid:    uuid.NewString()[:6],
		state:   GameStateAwaitingSideA,
		players: [2]*Player{playerA, playerB},
	}
}

// NewRandomGame builds both boards with the fleet config. Side B's board
// is hidden.
func NewRandomGame(rng *rand.Rand, fc FleetConfig, sourceA, sourceB MoveSource) (*Game, error) {
	if err := fc.Validate(); err != nil {
		return nil, err
	}

	boardA := GenerateRandomBoard(rng, fc, false)
	boardB := GenerateRandomBoard(rng, fc, true)

	return NewGame(
		NewPlayer(SideA, boardA, sourceA),
		NewPlayer(SideB, boardB, sourceB),
	), nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) IsFinished() bool {
	return g.state.IsFinished()
}

func (g *Game) Player(side Side) *Player {
	return g.players[side]
}

// Turn is the side currently awaited. Meaningless once finished.
func (g *Game) Turn() Side {
	if g.state == GameStateAwaitingSideB {
		return SideB
	}
	return SideA
}

// Winner reports the winning side once the game is over.
func (g *Game) Winner() (Side, bool) {
	switch g.state {
	case GameStateSideAWon:
		return SideA, true
	case GameStateSideBWon:
		return SideB, true
	default:
		return SideA, false
	}
}

// Move resolves exactly one landed shot for the awaited side. Targets the
// board rejects are reported through OnRejected and the same side is
// asked again. An error from the move source aborts the move.
func (g *Game) Move() (ShotReport, error) {
	if g.IsFinished() {
		return ShotReport{}, cerr.ErrGameIsOver(g.uuid)
	}

	attacker := g.players[g.Turn()]
	defender := g.players[g.Turn().Other()]
	if attacker.source == nil {
		return ShotReport{}, cerr.ErrNilMoveSource(attacker.side.String())
	}

	for {
		if g.OnAwaiting != nil {
			g.OnAwaiting(attacker.side)
		}

		target, err := attacker.source.NextTarget()
		if err != nil {
			return ShotReport{}, err
		}

		result, err := defender.board.Shot(target)
		if err != nil {
			if errors.Is(err, cerr.ErrOutOfBounds) || errors.Is(err, cerr.ErrAlreadyFired) {
				if g.OnRejected != nil {
					g.OnRejected(attacker.side, target, err)
				}
				continue
			}
			return ShotReport{}, err
		}
		attacker.moves++

		report := ShotReport{
			Attacker: attacker.side,
			Target:   target,
			Result:   result,
		}
		if result == ShotResultSunk {
			report.SunkCoords = defender.board.VesselAt(target).Coordinates()
		}

		switch {
		case defender.board.IsDefeated():
			g.finish(attacker.side)
		case !result.GoesAgain():
			g.pass(defender.side)
		}
		report.State = g.state

		if g.OnShot != nil {
			g.OnShot(report)
		}
		return report, nil
	}
}

// Play runs moves until one side is defeated and returns the winner.
func (g *Game) Play() (Side, error) {
	log.Printf("game started: %s\n", g.uuid)

	for !g.IsFinished() {
		if _, err := g.Move(); err != nil {
			log.Printf("game aborted: %s\terr: %v\n", g.uuid, err)
			return SideA, err
		}
	}

	winner, _ := g.Winner()
	log.Printf("game finished: %s\twinner: %s\n", g.uuid, winner)
	return winner, nil
}

func (g *Game) finish(winner Side) {
	if winner == SideA {
		g.state = GameStateSideAWon
		return
	}
	g.state = GameStateSideBWon
}

func (g *Game) pass(to Side) {
	if to == SideA {
		g.state = GameStateAwaitingSideA
		return
	}
	g.state = GameStateAwaitingSideB
}
