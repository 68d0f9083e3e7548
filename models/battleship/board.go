package battleship

import (
	cerr "github.com/saeidalz13/naval-battle/internal/error"
)

type ShotResult uint8

const (
	ShotResultMiss ShotResult = iota
	ShotResultHit
	ShotResultSunk
)

func (sr ShotResult) String() string {
	switch sr {
	case ShotResultHit:
		return "hit"
	case ShotResultSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// GoesAgain reports whether the shooting side keeps the turn.
func (sr ShotResult) GoesAgain() bool {
	return sr == ShotResultHit || sr == ShotResultSunk
}

// PlacementOutcome is the tagged result of AddVessel. The zero value
// means the vessel was placed.
type PlacementOutcome struct {
	Conflict PlacementConflict
	At       Coordinates
}

type PlacementConflict uint8

const (
	PlacementConflictNone PlacementConflict = iota
	PlacementConflictOutOfBounds
	PlacementConflictOverlap
)

func (po PlacementOutcome) Placed() bool {
	return po.Conflict == PlacementConflictNone
}

// Err converts a conflict to an error for logging. Nil when placed.
func (po PlacementOutcome) Err() error {
	switch po.Conflict {
	case PlacementConflictOutOfBounds:
		return cerr.ErrVesselOutOfGridBound(po.At.X, po.At.Y)
	case PlacementConflictOverlap:
		return cerr.ErrVesselOverlap(po.At.X, po.At.Y)
	default:
		return nil
	}
}

// Board owns a square grid and the vessels placed on it.
//
// Two sets are kept apart: excluded holds vessel cells and their
// one-cell contour and is only consulted while placing; fired holds every
// cell that was shot at or revealed around a sunk vessel.
type Board struct {
	size           int
	hidden         bool
	destroyedCount int
	vessels        []*Vessel
	occupants      map[Coordinates]*Vessel
	excluded       map[Coordinates]struct{}
	fired          map[Coordinates]struct{}
}

func NewBoard(size int, hidden bool) *Board {
	return &Board{
		size:      size,
		hidden:    hidden,
		vessels:   make([]*Vessel, 0, len(DefaultFleet)),
		occupants: make(map[Coordinates]*Vessel, size*size),
		excluded:  make(map[Coordinates]struct{}, size*size),
		fired:     make(map[Coordinates]struct{}, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) IsHidden() bool {
	return b.hidden
}

func (b *Board) DestroyedCount() int {
	return b.destroyedCount
}

func (b *Board) Vessels() []*Vessel {
	return b.vessels
}

// AddVessel checks every cell of v before touching the board, so a
// conflict leaves the board exactly as it was.
func (b *Board) AddVessel(v *Vessel) PlacementOutcome {
	for _, c := range v.coords {
		if !c.IsWithin(b.size) {
			return PlacementOutcome{Conflict: PlacementConflictOutOfBounds, At: c}
		}
		if _, prs := b.excluded[c]; prs {
			return PlacementOutcome{Conflict: PlacementConflictOverlap, At: c}
		}
	}

	for _, c := range v.coords {
		b.occupants[c] = v
		b.excluded[c] = struct{}{}
	}
	b.vessels = append(b.vessels, v)
	b.contour(v, false)

	return PlacementOutcome{}
}

// contour excludes the vessel cells and their 8 neighbours from further
// placement. With reveal, the ring around the vessel is marked as fired
// so it shows as Miss and cannot be targeted again.
func (b *Board) contour(v *Vessel, reveal bool) {
	for _, c := range v.coords {
		for _, n := range c.Neighbours() {
			if !n.IsWithin(b.size) {
				continue
			}
			b.excluded[n] = struct{}{}
			if reveal {
				b.fired[n] = struct{}{}
			}
		}
	}
}

// BeginPlay resets the shot history. Placement bookkeeping is left alone.
func (b *Board) BeginPlay() {
	b.fired = make(map[Coordinates]struct{}, b.size*b.size)
}

// Shot resolves one shot. Errors wrap cerr.ErrOutOfBounds or
// cerr.ErrAlreadyFired and leave the board untouched.
func (b *Board) Shot(c Coordinates) (ShotResult, error) {
	if !c.IsWithin(b.size) {
		return ShotResultMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if b.IsFired(c) {
		return ShotResultMiss, cerr.ErrPositionAlreadyFired(c.X, c.Y)
	}
	b.fired[c] = struct{}{}

	vessel, prs := b.occupants[c]
	if !prs {
		return ShotResultMiss, nil
	}

	vessel.gotHit()
	if vessel.IsSunk() {
		b.destroyedCount++
		b.contour(vessel, true)
		return ShotResultSunk, nil
	}
	return ShotResultHit, nil
}

func (b *Board) IsFired(c Coordinates) bool {
	_, prs := b.fired[c]
	return prs
}

// VesselAt returns the vessel covering c, or nil.
func (b *Board) VesselAt(c Coordinates) *Vessel {
	return b.occupants[c]
}

// IsDefeated is true once every owned vessel is sunk.
func (b *Board) IsDefeated() bool {
	for _, v := range b.vessels {
		if !v.IsSunk() {
			return false
		}
	}
	return true
}

func (b *Board) CellState(c Coordinates) CellState {
	_, occupied := b.occupants[c]
	fired := b.IsFired(c)

	switch {
	case occupied && fired:
		return CellStateHit
	case occupied:
		return CellStateOccupied
	case fired:
		return CellStateMiss
	default:
		return CellStateEmpty
	}
}

// Grid returns the full state of every cell.
func (b *Board) Grid() Grid {
	grid := NewGrid(b.size)
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			grid[x][y] = b.CellState(NewCoordinates(x, y))
		}
	}
	return grid
}

// View is the grid as an outside viewer may see it. Hidden boards report
// unhit vessel cells as empty.
func (b *Board) View() Grid {
	grid := b.Grid()
	if !b.hidden {
		return grid
	}

	for x := range grid {
		for y := range grid[x] {
			if grid[x][y] == CellStateOccupied {
				grid[x][y] = CellStateEmpty
			}
		}
	}
	return grid
}
