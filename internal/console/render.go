package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/naval-battle/models/battleship"
)

const (
	symbolEmpty    = "O"
	symbolOccupied = "■"
	symbolHit      = "X"
	symbolMiss     = "T"
)

func cellSymbol(cs mb.CellState) string {
	switch cs {
	case mb.CellStateOccupied:
		return symbolOccupied
	case mb.CellStateHit:
		return symbolHit
	case mb.CellStateMiss:
		return symbolMiss
	default:
		return symbolEmpty
	}
}

// FormatGrid draws a grid with 1-based row and column headers.
func FormatGrid(grid mb.Grid) string {
	var sb strings.Builder

	sb.WriteString("  |")
	for y := range grid {
		fmt.Fprintf(&sb, " %d |", y+1)
	}

	for x, row := range grid {
		fmt.Fprintf(&sb, "\n%d |", x+1)
		for _, cs := range row {
			fmt.Fprintf(&sb, " %s |", cellSymbol(cs))
		}
	}
	return sb.String()
}

// RenderBoard writes the board as a viewer may see it, so a hidden board
// never shows its vessels.
func RenderBoard(w io.Writer, title string, board *mb.Board) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, FormatGrid(board.View()))
}
