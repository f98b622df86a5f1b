package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Phoemerrion/tresoria/internal/world"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette maps terrain and occupants to hex colors, as stored in
// palette.json.
type Palette struct {
	Grass    string `json:"grass"`
	Water    string `json:"water"`
	Rock     string `json:"rock"`
	Player   string `json:"player"`
	Treasure string `json:"treasure"`
	Monster  string `json:"monster"`
}

// Validate checks that every entry is a valid color.
func (p *Palette) Validate() error {
	for _, hex := range []string{p.Grass, p.Water, p.Rock, p.Player, p.Treasure, p.Monster} {
		if _, err := ParseHexColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// TextureColor returns the color for a terrain texture.
func (p *Palette) TextureColor(t world.Texture) tcell.Color {
	switch t {
	case world.Water:
		return colorOr(p.Water, tcell.ColorBlue)
	case world.Rock:
		return colorOr(p.Rock, tcell.ColorGray)
	default:
		return colorOr(p.Grass, tcell.ColorGreen)
	}
}

// ContentColor returns the color for an occupant.
func (p *Palette) ContentColor(c world.Content) tcell.Color {
	switch c {
	case world.Player:
		return colorOr(p.Player, tcell.ColorYellow)
	case world.Treasure:
		return colorOr(p.Treasure, tcell.ColorOrange)
	case world.Monster:
		return colorOr(p.Monster, tcell.ColorRed)
	default:
		return tcell.ColorDefault
	}
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// LoadPalette loads the display palette from the embedded palette.json.
func LoadPalette() (Palette, error) {
	return Load[Palette]("palette.json")
}
