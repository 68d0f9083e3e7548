package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/naval-battle/internal/error"
	mb "github.com/saeidalz13/naval-battle/models/battleship"
)

// StdinMoveSource reads "row col" lines, both 1-based. Malformed lines
// are reported and asked again; bounds are left to the board.
type StdinMoveSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.MoveSource = (*StdinMoveSource)(nil)

func NewStdinMoveSource(in io.Reader, out io.Writer) *StdinMoveSource {
	return &StdinMoveSource{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (sms *StdinMoveSource) NextTarget() (mb.Coordinates, error) {
	for {
		fmt.Fprint(sms.out, "Your move: ")
		if !sms.scanner.Scan() {
			if err := sms.scanner.Err(); err != nil {
				return mb.Coordinates{}, err
			}
			return mb.Coordinates{}, io.EOF
		}

		target, err := ParseTarget(sms.scanner.Text())
		if err != nil {
			fmt.Fprintln(sms.out, err)
			continue
		}
		return target, nil
	}
}

// ParseTarget turns "3 4" into zero-based coordinates (2,3).
func ParseTarget(line string) (mb.Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Coordinates{}, cerr.ErrMalformedInput(line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrMalformedInput(line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrMalformedInput(line)
	}

	return mb.NewCoordinates(x-1, y-1), nil
}

// AnnouncedMoveSource prints every target its inner source picks.
type AnnouncedMoveSource struct {
	inner mb.MoveSource
	out   io.Writer
}

var _ mb.MoveSource = (*AnnouncedMoveSource)(nil)

func NewAnnouncedMoveSource(inner mb.MoveSource, out io.Writer) *AnnouncedMoveSource {
	return &AnnouncedMoveSource{inner: inner, out: out}
}

func (ams *AnnouncedMoveSource) NextTarget() (mb.Coordinates, error) {
	target, err := ams.inner.NextTarget()
	if err != nil {
		return target, err
	}
	fmt.Fprintf(ams.out, "Computer move: %d %d\n", target.X+1, target.Y+1)
	return target, nil
}
