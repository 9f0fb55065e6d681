package component

import "github.com/lixenwraith/balthazar/physics"

// Direction is the player's sprite facing
type Direction uint8

const (
	FacingUp Direction = iota
	FacingDown
	FacingLeft
	FacingRight
)

func (d Direction) String() string {
	switch d {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// PlayerComponent marks the controlled character
type PlayerComponent struct {
	Body   physics.BodyHandle
	Facing Direction
	Moving bool
}
