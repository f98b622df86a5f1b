// Package world provides the game grid, terrain generation and entity
// placement.
package world

// Texture is the terrain type of a cell.
type Texture int

const (
	// Grass is the only passable texture.
	Grass Texture = iota
	// Water is an impassable obstacle.
	Water
	// Rock is an impassable obstacle.
	Rock
)

// String returns the texture name.
func (t Texture) String() string {
	switch t {
	case Grass:
		return "grass"
	case Water:
		return "water"
	case Rock:
		return "rock"
	default:
		return "unknown"
	}
}

// IsPassable returns true if the texture can be walked on.
func (t Texture) IsPassable() bool {
	return t == Grass
}

// IsObstacle returns true for the textures painted by terrain generation.
func (t Texture) IsObstacle() bool {
	return t == Water || t == Rock
}

// Opposing returns the obstacle texture that must keep its distance from t.
// Grass has no opposing texture and returns itself.
func (t Texture) Opposing() Texture {
	switch t {
	case Water:
		return Rock
	case Rock:
		return Water
	default:
		return t
	}
}

// Rune returns the texture's display character.
func (t Texture) Rune() rune {
	switch t {
	case Water:
		return '~'
	case Rock:
		return '^'
	default:
		return '.'
	}
}

// ParseTexture maps a texture name to its value.
func ParseTexture(name string) (Texture, bool) {
	switch name {
	case "grass":
		return Grass, true
	case "water":
		return Water, true
	case "rock":
		return Rock, true
	default:
		return Grass, false
	}
}

// Content is the occupant of a cell.
type Content int

const (
	Empty Content = iota
	Player
	Treasure
	Monster
)

// String returns the content name.
func (c Content) String() string {
	switch c {
	case Empty:
		return "empty"
	case Player:
		return "player"
	case Treasure:
		return "treasure"
	case Monster:
		return "monster"
	default:
		return "unknown"
	}
}

// Rune returns the content's display character. Empty has none.
func (c Content) Rune() rune {
	switch c {
	case Player:
		return '@'
	case Treasure:
		return '$'
	case Monster:
		return 'm'
	default:
		return 0
	}
}

// Cell is a single grid square.
type Cell struct {
	Texture Texture
	Content Content
}

// Rune returns the glyph shown for the cell: its occupant, or its terrain
// when empty.
func (c Cell) Rune() rune {
	if r := c.Content.Rune(); r != 0 {
		return r
	}
	return c.Texture.Rune()
}

// IsEmptyGrass returns true if an entity may be placed on the cell.
func (c Cell) IsEmptyGrass() bool {
	return c.Texture == Grass && c.Content == Empty
}
