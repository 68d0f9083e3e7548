package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed = "attack operation failed"
)

// Sentinels for the recoverable shot errors. The turn engine matches
// them with errors.Is and asks the same side again.
var (
	ErrOutOfBounds  = errors.New("coordinates out of grid bound")
	ErrAlreadyFired = errors.New("cell already fired upon")
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsOver(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrPositionAlreadyFired(x, y int) error {
	return fmt.Errorf("%w in previous rounds\tx: %d\ty: %d", ErrAlreadyFired, x, y)
}

func ErrVesselOutOfGridBound(x, y int) error {
	return fmt.Errorf("vessel cell is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrVesselOverlap(x, y int) error {
	return fmt.Errorf("vessel cell is taken or touches another vessel\tx: %d\ty: %d", x, y)
}

func ErrInvalidVesselLength(length int) error {
	return fmt.Errorf("vessel length must be positive, got: %d", length)
}

func ErrInvalidDirection(direction uint8) error {
	return fmt.Errorf("invalid vessel direction: %d", direction)
}

func ErrInvalidFleetConfig(reason string) error {
	return fmt.Errorf("invalid fleet config: %s", reason)
}

func ErrMalformedInput(input string) error {
	return fmt.Errorf("expected two numbers separated by space, got: %q", input)
}

func ErrNilMoveSource(side string) error {
	return fmt.Errorf("move source is nil for side: %s", side)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrNoTargetsLeft() error {
	return fmt.Errorf("every cell of the grid has been tried")
}
