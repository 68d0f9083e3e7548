package battleship

import (
	"log"
	"math/rand"

	cerr "github.com/saeidalz13/naval-battle/internal/error"
)

const (
	GridSizeDefault             int = 6
	MaxPlacementAttemptsDefault int = 2000
)

// One 3-segment, two 2-segment and four 1-segment vessels.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

type FleetConfig struct {
	GridSize    int
	Lengths     []int
	MaxAttempts int
}

func DefaultFleetConfig() FleetConfig {
	lengths := make([]int, len(DefaultFleet))
	copy(lengths, DefaultFleet)

	return FleetConfig{
		GridSize:    GridSizeDefault,
		Lengths:     lengths,
		MaxAttempts: MaxPlacementAttemptsDefault,
	}
}

func (fc FleetConfig) Validate() error {
	if fc.GridSize < 1 {
		return cerr.ErrInvalidFleetConfig("grid size must be positive")
	}
	if fc.MaxAttempts < 1 {
		return cerr.ErrInvalidFleetConfig("max attempts must be positive")
	}
	if len(fc.Lengths) == 0 {
		return cerr.ErrInvalidFleetConfig("fleet is empty")
	}
	for _, l := range fc.Lengths {
		if l < 1 || l > fc.GridSize {
			return cerr.ErrInvalidFleetConfig("vessel length does not fit the grid")
		}
	}
	return nil
}

// TryCreateBoard places the fleet in order, sampling a random bow and
// direction until each vessel fits. The attempt counter is shared by the
// whole fleet; when it runs out the partial board is dropped and false
// is returned.
func TryCreateBoard(rng *rand.Rand, fc FleetConfig, hidden bool) (*Board, bool) {
	board := NewBoard(fc.GridSize, hidden)
	attempts := 0

	for _, length := range fc.Lengths {
		for {
			attempts++
			if attempts > fc.MaxAttempts {
				return nil, false
			}

			bow := NewCoordinates(rng.Intn(fc.GridSize), rng.Intn(fc.GridSize))
			vessel, err := NewVessel(bow, length, Direction(rng.Intn(2)))
			if err != nil {
				return nil, false
			}

			if board.AddVessel(vessel).Placed() {
				break
			}
		}
	}

	board.BeginPlay()
	return board, true
}

// GenerateRandomBoard restarts from an empty board until the whole fleet
// is placed within the attempt ceiling. The config must be valid and the
// fleet must fit, otherwise this never returns.
func GenerateRandomBoard(rng *rand.Rand, fc FleetConfig, hidden bool) *Board {
	for restarts := 0; ; restarts++ {
		if board, ok := TryCreateBoard(rng, fc, hidden); ok {
			if restarts > 0 {
				log.Printf("fleet placed after %d board restarts\n", restarts)
			}
			return board
		}
	}
}
