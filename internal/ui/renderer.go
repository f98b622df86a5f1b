package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Phoemerrion/tresoria/internal/entity"
	"github.com/Phoemerrion/tresoria/internal/gamedata"
	"github.com/Phoemerrion/tresoria/internal/world"
)

// HelpLine lists the key bindings.
const HelpLine = "arrows/hjkl move  n new map  q quit"

// View is everything the renderer draws for one frame.
type View struct {
	Grid     *world.Grid
	Stats    entity.Stats
	Status   string
	Monsters int
	Messages []string // newest first
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the board, a status line, the key help and as many recent
// messages as fit below them.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	g := v.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := g.At(x, y)
			r.screen.SetContent(x, y, cell.Rune(), r.cellStyle(cell))
		}
	}

	y := g.Height() + 1
	r.screen.DrawText(0, y, StatusLine(v), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	y++
	r.screen.DrawText(0, y, HelpLine, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	y += 2

	_, height := r.screen.Size()
	for _, msg := range v.Messages {
		if y >= height {
			break
		}
		r.RenderMessage(msg, y)
		y++
	}

	r.screen.Show()
}

// StatusLine summarizes the player's condition.
func StatusLine(v View) string {
	return fmt.Sprintf("HP %d/%d  STR %d  monsters %d  %s",
		v.Stats.Health, v.Stats.MaxHealth, v.Stats.Strength, v.Monsters, v.Status)
}

// cellStyle colors occupants over their terrain.
func (r *Renderer) cellStyle(c world.Cell) tcell.Style {
	if c.Content != world.Empty {
		return tcell.StyleDefault.Foreground(r.palette.ContentColor(c.Content)).Bold(true)
	}
	return tcell.StyleDefault.Foreground(r.palette.TextureColor(c.Texture))
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}
