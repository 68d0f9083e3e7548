package connection

import (
	mb "github.com/saeidalz13/naval-battle/models/battleship"
)

// ReqAttack carries zero-based coordinates of the client's target.
type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (ra ReqAttack) Coordinates() mb.Coordinates {
	return mb.NewCoordinates(ra.X, ra.Y)
}
