package battleship

// CellState is what a single grid position shows. It is always derived
// from the vessels on the board and the set of fired-upon cells.
type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateOccupied
	CellStateHit
	CellStateMiss
)

func (cs CellState) String() string {
	switch cs {
	case CellStateEmpty:
		return "empty"
	case CellStateOccupied:
		return "occupied"
	case CellStateHit:
		return "hit"
	case CellStateMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Coordinates are zero based. X is the row and Y is the column,
// so a grid is indexed as grid[x][y].
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Add returns the coordinates offset by (dx, dy).
func (c Coordinates) Add(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

// IsWithin reports whether c lies in [0,size)x[0,size).
func (c Coordinates) IsWithin(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Neighbours returns c and its 8 surrounding positions, in-bound or not.
func (c Coordinates) Neighbours() []Coordinates {
	coords := make([]Coordinates, 0, 9)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			coords = append(coords, c.Add(dx, dy))
		}
	}
	return coords
}

type Grid [][]CellState

// Creates a new default grid
// All indexes are zero/CellStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}
