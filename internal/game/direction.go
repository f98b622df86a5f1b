package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for a direction outside up, down, left
// and right.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a movement command.
type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the grid offset of one step. ok is false for unknown
// directions.
func (d Direction) Delta() (dx, dy int, ok bool) {
	switch d {
	case DirectionUp:
		return 0, -1, true
	case DirectionDown:
		return 0, 1, true
	case DirectionLeft:
		return -1, 0, true
	case DirectionRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// ParseDirection maps "up", "down", "left" or "right" (any case) to a
// Direction.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
	}
}
