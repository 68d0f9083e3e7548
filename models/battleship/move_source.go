package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/naval-battle/internal/error"
)

// RandomMoveSource picks uniformly among the cells it has not tried yet.
// It knows nothing about the opponent board, so it may still pick a cell
// revealed around a sunk vessel; the turn engine asks again in that case.
type RandomMoveSource struct {
	rng     *rand.Rand
	untried []Coordinates
}

var _ MoveSource = (*RandomMoveSource)(nil)

func NewRandomMoveSource(rng *rand.Rand, gridSize int) *RandomMoveSource {
	untried := make([]Coordinates, 0, gridSize*gridSize)
	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			untried = append(untried, NewCoordinates(x, y))
		}
	}

	return &RandomMoveSource{
		rng:     rng,
		untried: untried,
	}
}

func (rms *RandomMoveSource) NextTarget() (Coordinates, error) {
	if len(rms.untried) == 0 {
		return Coordinates{}, cerr.ErrNoTargetsLeft()
	}

	idx := rms.rng.Intn(len(rms.untried))
	target := rms.untried[idx]

	last := len(rms.untried) - 1
	rms.untried[idx] = rms.untried[last]
	rms.untried = rms.untried[:last]

	return target, nil
}

func (rms *RandomMoveSource) Remaining() int {
	return len(rms.untried)
}
