// Package game provides the game session state machine and the terminal
// game loop driving it.
package game

// Status is the overall state of a game.
type Status int

const (
	// StatusRunning accepts movement commands.
	StatusRunning Status = iota
	// StatusVictory is terminal: the player reached the treasure.
	StatusVictory
	// StatusDefeat is terminal: the player died in an encounter.
	StatusDefeat
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the game has been won or lost.
func (s Status) IsTerminal() bool {
	return s == StatusVictory || s == StatusDefeat
}

// MoveOutcome reports what a Move call did.
type MoveOutcome int

const (
	// MoveIgnored means the game was already over; nothing happened.
	MoveIgnored MoveOutcome = iota
	// MoveBlockedBoundary means the target was off the board.
	MoveBlockedBoundary
	// MoveBlockedTerrain means the target was water or rock.
	MoveBlockedTerrain
	// MoveStalemate means a monster survived the encounter and held its cell.
	MoveStalemate
	// MoveDefeat means the player died in the encounter.
	MoveDefeat
	// MoveMoved means the player stepped onto an empty cell.
	MoveMoved
	// MoveSlayed means the player killed a monster and took its cell.
	MoveSlayed
	// MoveVictory means the player stepped onto the treasure.
	MoveVictory
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case MoveIgnored:
		return "ignored"
	case MoveBlockedBoundary:
		return "blocked_boundary"
	case MoveBlockedTerrain:
		return "blocked_terrain"
	case MoveStalemate:
		return "stalemate"
	case MoveDefeat:
		return "defeat"
	case MoveMoved:
		return "moved"
	case MoveSlayed:
		return "slayed"
	case MoveVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Moved returns true if the player changed cells.
func (o MoveOutcome) Moved() bool {
	return o == MoveMoved || o == MoveSlayed || o == MoveVictory
}
