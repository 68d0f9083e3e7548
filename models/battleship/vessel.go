package battleship

import (
	cerr "github.com/saeidalz13/naval-battle/internal/error"
)

type Direction uint8

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "vertical"
	}
	return "horizontal"
}

// Vessel is a straight run of cells starting at the bow. Its shape never
// changes after construction; only the remaining segments go down.
type Vessel struct {
	bow               Coordinates
	length            int
	direction         Direction
	remainingSegments int
	coords            []Coordinates
}

func NewVessel(bow Coordinates, length int, direction Direction) (*Vessel, error) {
	if length < 1 {
		return nil, cerr.ErrInvalidVesselLength(length)
	}
	if direction != DirectionHorizontal && direction != DirectionVertical {
		return nil, cerr.ErrInvalidDirection(uint8(direction))
	}

	coords := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		if direction == DirectionHorizontal {
			coords = append(coords, bow.Add(0, i))
		} else {
			coords = append(coords, bow.Add(i, 0))
		}
	}

	return &Vessel{
		bow:               bow,
		length:            length,
		direction:         direction,
		remainingSegments: length,
		coords:            coords,
	}, nil
}

func (v *Vessel) Bow() Coordinates {
	return v.bow
}

func (v *Vessel) Length() int {
	return v.length
}

func (v *Vessel) Direction() Direction {
	return v.direction
}

func (v *Vessel) RemainingSegments() int {
	return v.remainingSegments
}

// Coordinates returns a copy of the occupied cells, bow first.
func (v *Vessel) Coordinates() []Coordinates {
	coords := make([]Coordinates, len(v.coords))
	copy(coords, v.coords)
	return coords
}

func (v *Vessel) Occupies(c Coordinates) bool {
	for _, vc := range v.coords {
		if vc == c {
			return true
		}
	}
	return false
}

func (v *Vessel) IsSunk() bool {
	return v.remainingSegments == 0
}

func (v *Vessel) gotHit() {
	if v.remainingSegments > 0 {
		v.remainingSegments--
	}
}
