package world

import "github.com/zyedidia/generic/mapset"

// Region is a maximal 4-connected set of cells sharing a texture.
type Region struct {
	Texture Texture
	Cells   []Position
}

// Size returns the number of cells in the region.
func (r Region) Size() int { return len(r.Cells) }

// Regions returns the connected regions of texture t, scanning seeds in
// row-major order.
func Regions(g *Grid, t Texture) []Region {
	visited := mapset.New[Position]()
	var regions []Region

	g.Each(func(p Position, c Cell) {
		if c.Texture != t || visited.Has(p) {
			return
		}

		region := Region{Texture: t}
		queue := []Position{p}
		visited.Put(p)
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			region.Cells = append(region.Cells, current)

			for _, d := range orthogonal {
				n := current.Add(d.X, d.Y)
				if !g.InBounds(n.X, n.Y) || visited.Has(n) {
					continue
				}
				if g.At(n.X, n.Y).Texture == t {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, region)
	})
	return regions
}
