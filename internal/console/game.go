package console

import (
	"fmt"
	"io"
	"math/rand"

	mb "github.com/saeidalz13/naval-battle/models/battleship"
)

// Play runs one terminal game: the human reads targets from in, the
// computer fires at random. It returns the winning side.
func Play(rng *rand.Rand, fc mb.FleetConfig, in io.Reader, out io.Writer) (mb.Side, error) {
	game, err := mb.NewRandomGame(
		rng,
		fc,
		NewStdinMoveSource(in, out),
		NewAnnouncedMoveSource(mb.NewRandomMoveSource(rng, fc.GridSize), out),
	)
	if err != nil {
		return mb.SideA, err
	}

	human := game.Player(mb.SideA)
	computer := game.Player(mb.SideB)

	game.OnAwaiting = func(side mb.Side) {
		RenderBoard(out, "Your board:", human.Board())
		RenderBoard(out, "Opponent board:", computer.Board())
		if side == mb.SideA {
			fmt.Fprintln(out, "\nYour turn!")
		} else {
			fmt.Fprintln(out, "\nComputer's turn!")
		}
	}
	game.OnRejected = func(side mb.Side, target mb.Coordinates, err error) {
		fmt.Fprintln(out, err)
	}
	game.OnShot = func(report mb.ShotReport) {
		switch report.Result {
		case mb.ShotResultSunk:
			fmt.Fprintln(out, "Ship destroyed!")
		case mb.ShotResultHit:
			fmt.Fprintln(out, "Ship hit!")
		default:
			fmt.Fprintln(out, "Miss!")
		}
	}

	fmt.Fprintln(out, "Starting the game!")
	winner, err := game.Play()
	if err != nil {
		return mb.SideA, err
	}

	RenderBoard(out, "Your board:", human.Board())
	RenderBoard(out, "Opponent board:", computer.Board())
	if winner == mb.SideA {
		fmt.Fprintln(out, "\nYou won!")
	} else {
		fmt.Fprintln(out, "\nYou lost!")
	}
	return winner, nil
}
