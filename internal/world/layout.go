package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is returned when a text layout cannot be parsed.
var ErrInvalidLayout = errors.New("invalid layout")

// Parse builds a grid from rows of glyphs:
//
//	.  grass      ~  water      ^  rock
//	@  player     $  treasure   m  monster
//
// Entities always stand on grass. Blank lines and surrounding whitespace
// are ignored. All rows must have the same width.
func Parse(layout string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	width := len([]rune(rows[0]))
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidLayout, y, len(runes), width)
		}
		for x, r := range runes {
			c, ok := cellForRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at %d:%d", ErrInvalidLayout, r, x, y)
			}
			g.Set(x, y, c)
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on error.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return g
}

func cellForRune(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Cell{Texture: Grass}, true
	case '~':
		return Cell{Texture: Water}, true
	case '^':
		return Cell{Texture: Rock}, true
	case '@':
		return Cell{Texture: Grass, Content: Player}, true
	case '$':
		return Cell{Texture: Grass, Content: Treasure}, true
	case 'm':
		return Cell{Texture: Grass, Content: Monster}, true
	default:
		return Cell{}, false
	}
}

// String renders the grid in the format accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.At(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
