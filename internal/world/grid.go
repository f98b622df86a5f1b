package world

import "fmt"

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats the position as "x:y".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Grid is a fixed-size board of cells stored row-major.
// Every cell starts as empty grass.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an all-grass grid. It panics on non-positive dimensions;
// configuration is validated before a grid is ever built.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Area returns the total number of cells.
func (g *Grid) Area() int { return g.width * g.height }

// InBounds returns true if (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// OnEdge returns true if (x, y) is in the outermost ring of the grid.
func (g *Grid) OnEdge(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: cell %d:%d out of bounds %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// At returns the cell at (x, y). It panics when out of bounds.
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set replaces the cell at (x, y). It panics when out of bounds.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// SetTexture changes only the terrain of (x, y).
func (g *Grid) SetTexture(x, y int, t Texture) {
	g.cells[g.index(x, y)].Texture = t
}

// SetContent changes only the occupant of (x, y).
func (g *Grid) SetContent(x, y int, c Content) {
	g.cells[g.index(x, y)].Content = c
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, c Cell)) {
	for i, c := range g.cells {
		fn(Position{X: i % g.width, Y: i / g.width}, c)
	}
}

// Count returns the number of cells matching pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// Find returns the positions holding content, in row-major order.
func (g *Grid) Find(content Content) []Position {
	var found []Position
	g.Each(func(p Position, c Cell) {
		if c.Content == content {
			found = append(found, p)
		}
	})
	return found
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// HasTextureWithin reports whether any in-bounds cell within Chebyshev
// distance radius of (x, y) has texture t.
func (g *Grid) HasTextureWithin(x, y, radius int, t Texture) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.At(nx, ny).Texture == t {
				return true
			}
		}
	}
	return false
}

// HasAdjacentTexture reports whether a 4-neighbour of (x, y) has texture t.
func (g *Grid) HasAdjacentTexture(x, y int, t Texture) bool {
	for _, d := range orthogonal {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) && g.At(nx, ny).Texture == t {
			return true
		}
	}
	return false
}

var (
	orthogonal = []Position{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonal   = []Position{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)
