package battleship

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/naval-battle/internal/error"
)

func scriptedSource(targets ...Coordinates) MoveSource {
	i := 0
	return MoveSourceFunc(func() (Coordinates, error) {
		if i >= len(targets) {
			return Coordinates{}, io.EOF
		}
		target := targets[i]
		i++
		return target, nil
	})
}

func boardWith(t *testing.T, vessels ...*Vessel) *Board {
	t.Helper()
	board := NewBoard(GridSizeDefault, false)
	for _, v := range vessels {
		if outcome := board.AddVessel(v); !outcome.Placed() {
			t.Fatal(outcome.Err())
		}
	}
	board.BeginPlay()
	return board
}

func TestGameHitsKeepTheTurn(t *testing.T) {
	boardA := boardWith(t, mustVessel(t, 0, 0, 1, DirectionHorizontal))
	boardB := boardWith(t, mustVessel(t, 0, 0, 3, DirectionHorizontal))

	game := NewGame(
		NewPlayer(SideA, boardA, scriptedSource(NewCoordinates(0, 0), NewCoordinates(0, 1), NewCoordinates(5, 5))),
		NewPlayer(SideB, boardB, scriptedSource(NewCoordinates(4, 4))),
	)

	tests := []struct {
		name           string
		expectedResult ShotResult
		expectedState  GameState
	}{
		{"first hit", ShotResultHit, GameStateAwaitingSideA},
		{"second hit", ShotResultHit, GameStateAwaitingSideA},
		{"miss passes the turn", ShotResultMiss, GameStateAwaitingSideB},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			report, err := game.Move()
			if err != nil {
				t.Fatal(err)
			}
			if report.Attacker != SideA {
				t.Fatalf("expected attacker: %s\tgot: %s", SideA, report.Attacker)
			}
			if report.Result != test.expectedResult {
				t.Fatalf("expected result: %s\tgot: %s", test.expectedResult, report.Result)
			}
			if game.State() != test.expectedState || report.State != test.expectedState {
				t.Fatalf("expected state: %s\tgot: %s", test.expectedState, game.State())
			}
		})
	}

	if game.Player(SideA).Moves() != 3 || game.Player(SideB).Moves() != 0 {
		t.Fatalf("expected moves 3/0\tgot: %d/%d", game.Player(SideA).Moves(), game.Player(SideB).Moves())
	}

	report, err := game.Move()
	if err != nil {
		t.Fatal(err)
	}
	if report.Attacker != SideB || report.Result != ShotResultMiss || game.Turn() != SideA {
		t.Fatalf("expected side B miss handing back the turn\tgot: %+v", report)
	}
}

func TestGameRejectedTargetsAskAgain(t *testing.T) {
	boardA := boardWith(t, mustVessel(t, 5, 5, 1, DirectionHorizontal))
	boardB := boardWith(t, mustVessel(t, 3, 3, 2, DirectionVertical))

	game := NewGame(
		NewPlayer(SideA, boardA, scriptedSource(
			NewCoordinates(0, 0),
			NewCoordinates(0, 0),
			NewCoordinates(6, 0),
			NewCoordinates(-1, 2),
			NewCoordinates(1, 1),
		)),
		NewPlayer(SideB, boardB, scriptedSource(NewCoordinates(0, 0))),
	)

	var rejected []error
	awaiting := 0
	game.OnRejected = func(side Side, target Coordinates, err error) {
		if side != SideA {
			t.Fatalf("unexpected rejected side: %s", side)
		}
		rejected = append(rejected, err)
	}
	game.OnAwaiting = func(side Side) {
		awaiting++
	}

	// A misses at (0,0), B misses, then A keeps getting rejected until (1,1)
	for i := 0; i < 3; i++ {
		if _, err := game.Move(); err != nil {
			t.Fatal(err)
		}
	}

	if len(rejected) != 3 {
		t.Fatalf("expected 3 rejected targets\tgot: %d", len(rejected))
	}
	if !errors.Is(rejected[0], cerr.ErrAlreadyFired) {
		t.Fatalf("expected already fired\tgot: %v", rejected[0])
	}
	for _, err := range rejected[1:] {
		if !errors.Is(err, cerr.ErrOutOfBounds) {
			t.Fatalf("expected out of bounds\tgot: %v", err)
		}
	}
	if awaiting != 6 {
		t.Fatalf("expected 6 move requests\tgot: %d", awaiting)
	}
	if game.Player(SideA).Moves() != 2 {
		t.Fatalf("rejected targets must not count as moves\tgot: %d", game.Player(SideA).Moves())
	}
}

func TestGameFinishingShotEndsGame(t *testing.T) {
	boardA := boardWith(t, mustVessel(t, 0, 0, 1, DirectionHorizontal))
	boardB := boardWith(t, mustVessel(t, 2, 2, 1, DirectionHorizontal))

	game := NewGame(
		NewPlayer(SideA, boardA, scriptedSource(NewCoordinates(2, 2), NewCoordinates(4, 4))),
		NewPlayer(SideB, boardB, scriptedSource(NewCoordinates(0, 0))),
	)

	var reports []ShotReport
	game.OnShot = func(report ShotReport) {
		reports = append(reports, report)
	}

	winner, err := game.Play()
	if err != nil {
		t.Fatal(err)
	}
	if winner != SideA || game.State() != GameStateSideAWon {
		t.Fatalf("expected side A to win\tgot: %s", game.State())
	}
	if len(reports) != 1 || reports[0].Result != ShotResultSunk {
		t.Fatalf("expected a single sinking shot\tgot: %+v", reports)
	}
	if len(reports[0].SunkCoords) != 1 || reports[0].SunkCoords[0] != NewCoordinates(2, 2) {
		t.Fatalf("expected sunk coords [(2,2)]\tgot: %v", reports[0].SunkCoords)
	}
	if !game.Player(SideB).IsLoser() || game.Player(SideA).IsLoser() {
		t.Fatal("loser flags do not match the outcome")
	}

	if _, err := game.Move(); err == nil {
		t.Fatal("expected error when moving in a finished game")
	}
}

func TestGameMoveSourceErrorAborts(t *testing.T) {
	boardA := boardWith(t, mustVessel(t, 0, 0, 1, DirectionHorizontal))
	boardB := boardWith(t, mustVessel(t, 2, 2, 1, DirectionHorizontal))

	game := NewGame(
		NewPlayer(SideA, boardA, scriptedSource()),
		NewPlayer(SideB, boardB, scriptedSource()),
	)

	if _, err := game.Play(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF\tgot: %v", err)
	}
	if game.IsFinished() {
		t.Fatal("aborted game must not be finished")
	}
}

func TestGameNilMoveSource(t *testing.T) {
	game := NewGame(
		NewPlayer(SideA, boardWith(t), nil),
		NewPlayer(SideB, boardWith(t), nil),
	)
	if _, err := game.Move(); err == nil {
		t.Fatal("expected error for nil move source")
	}
}

func TestRandomGamePlaysToTheEnd(t *testing.T) {
	fc := DefaultFleetConfig()

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		game, err := NewRandomGame(rng, fc,
			NewRandomMoveSource(rng, fc.GridSize),
			NewRandomMoveSource(rng, fc.GridSize),
		)
		if err != nil {
			t.Fatal(err)
		}
		if game.Player(SideA).Board().IsHidden() || !game.Player(SideB).Board().IsHidden() {
			t.Fatal("expected only side B's board to be hidden")
		}

		winner, err := game.Play()
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !game.Player(winner.Other()).IsLoser() {
			t.Fatalf("seed %d: loser board is not defeated", seed)
		}
		if game.Player(winner).IsLoser() {
			t.Fatalf("seed %d: winner board is defeated", seed)
		}
	}
}

func TestNewRandomGameInvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fc := DefaultFleetConfig()
	fc.Lengths = nil

	if _, err := NewRandomGame(rng, fc, nil, nil); err == nil {
		t.Fatal("expected invalid config error")
	}
}
