package world

import (
	"context"
	"testing"

	"github.com/Phoemerrion/tresoria/internal/random"
)

// sparsePasses mirrors the alternate 3/5/3/5 configuration.
func sparsePasses() []Pass {
	return []Pass{
		{Texture: Water, Fraction: 0.03},
		{Texture: Rock, Fraction: 0.05},
		{Texture: Water, Fraction: 0.03},
		{Texture: Rock, Fraction: 0.05},
	}
}

type terrainCase struct {
	name      string
	strategy  Strategy
	diagonals bool
	passes    []Pass
}

var terrainCases = []terrainCase{
	{"walk classic", RandomWalk, false, ClassicPasses()},
	{"walk diagonal", RandomWalk, true, ClassicPasses()},
	{"walk sparse", RandomWalk, false, sparsePasses()},
	{"scatter classic", Scattered, false, ClassicPasses()},
	{"scatter sparse", Scattered, false, sparsePasses()},
}

func generate(seed int64, tc terrainCase, width, height int) (*Grid, TerrainReport) {
	g := NewGrid(width, height)
	terrain := NewTerrain(random.New(seed), tc.passes, tc.strategy)
	terrain.Diagonals = tc.diagonals
	return g, terrain.Generate(context.Background(), g)
}

// chebyshev returns the king-move distance between two positions.
func chebyshev(a, b Position) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

func TestTerrainSeparation(t *testing.T) {
	for _, tc := range terrainCases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				g, _ := generate(seed, tc, 30, 15)

				var water, rock []Position
				g.Each(func(p Position, c Cell) {
					switch c.Texture {
					case Water:
						water = append(water, p)
					case Rock:
						rock = append(rock, p)
					}
				})

				for _, w := range water {
					for _, r := range rock {
						if d := chebyshev(w, r); d <= SeparationRadius {
							t.Fatalf("seed %d: water %v and rock %v at distance %d\n%s", seed, w, r, d, g)
						}
					}
				}
			}
		})
	}
}

func TestTerrainRegionsPerPass(t *testing.T) {
	for _, tc := range terrainCases {
		t.Run(tc.name, func(t *testing.T) {
			seeds := map[Texture]int{}
			for _, p := range tc.passes {
				seeds[p.Texture]++
			}

			for seed := int64(1); seed <= 25; seed++ {
				g, _ := generate(seed, tc, 30, 15)
				for tex, passes := range seeds {
					if n := len(Regions(g, tex)); n > passes {
						t.Fatalf("seed %d: %d %s regions from %d passes\n%s", seed, n, tex, passes, g)
					}
				}
			}
		})
	}
}

func TestTerrainReportMatchesGrid(t *testing.T) {
	for _, tc := range terrainCases {
		t.Run(tc.name, func(t *testing.T) {
			g, report := generate(42, tc, 30, 15)

			obstacles := g.Count(func(c Cell) bool { return c.Texture.IsObstacle() })
			if obstacles != report.Painted() {
				t.Errorf("grid has %d obstacle cells, report says %d", obstacles, report.Painted())
			}
			for i, p := range report.Passes {
				if p.Painted > p.Target {
					t.Errorf("pass %d painted %d cells, target %d", i, p.Painted, p.Target)
				}
			}
			if report.Painted() == 0 {
				t.Error("expected some terrain on a 30x15 board")
			}
		})
	}
}

func TestTerrainLeavesContentAlone(t *testing.T) {
	g, _ := generate(3, terrainCases[0], 30, 15)
	if n := g.Count(func(c Cell) bool { return c.Content != Empty }); n != 0 {
		t.Errorf("terrain generation placed %d entities", n)
	}
}

func TestScatterAvoidsEdges(t *testing.T) {
	g, _ := generate(11, terrainCases[3], 30, 15)
	g.Each(func(p Position, c Cell) {
		if c.Texture.IsObstacle() && g.OnEdge(p.X, p.Y) {
			t.Errorf("scattered growth painted edge cell %v", p)
		}
	})
}

func TestTerrainReproducibility(t *testing.T) {
	for _, tc := range terrainCases {
		t.Run(tc.name, func(t *testing.T) {
			g1, _ := generate(12345, tc, 30, 15)
			g2, _ := generate(12345, tc, 30, 15)

			if g1.String() != g2.String() {
				t.Errorf("same seed produced different maps:\n%s\n%s", g1, g2)
			}
		})
	}
}

func TestTerrainDifferentSeeds(t *testing.T) {
	g1, _ := generate(12345, terrainCases[0], 30, 15)
	g2, _ := generate(54321, terrainCases[0], 30, 15)

	if g1.String() == g2.String() {
		t.Error("maps with different seeds should not be identical")
	}
}

func TestTerrainTinyBoard(t *testing.T) {
	// Targets floor to zero on a 1x1 board; nothing should be painted
	// and nothing should loop.
	g, report := generate(1, terrainCases[0], 1, 1)
	if report.Painted() != 0 || g.At(0, 0).Texture != Grass {
		t.Errorf("1x1 board painted: %+v", report)
	}
}

func TestPassTarget(t *testing.T) {
	tests := []struct {
		fraction float64
		area     int
		want     int
	}{
		{0.15, 450, 67},
		{0.10, 450, 45},
		{0.03, 450, 13},
		{0.05, 450, 22},
		{0, 450, 0},
	}

	for _, tt := range tests {
		p := Pass{Texture: Water, Fraction: tt.fraction}
		if got := p.Target(tt.area); got != tt.want {
			t.Errorf("Target(%d) with fraction %v = %d, want %d", tt.area, tt.fraction, got, tt.want)
		}
	}
}

func TestRegions(t *testing.T) {
	g := MustParse(`
		~~...
		.~...
		.....
		...~~
		^...~
	`)

	water := Regions(g, Water)
	if len(water) != 2 {
		t.Fatalf("water regions = %d, want 2", len(water))
	}
	if water[0].Size() != 3 || water[1].Size() != 3 {
		t.Errorf("water region sizes = %d, %d, want 3, 3", water[0].Size(), water[1].Size())
	}
	if rock := Regions(g, Rock); len(rock) != 1 || rock[0].Size() != 1 {
		t.Errorf("rock regions = %+v, want a single cell", rock)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
		ok   bool
	}{
		{"walk", RandomWalk, true},
		{"Scatter", Scattered, true},
		{"scattered", Scattered, true},
		{"flood", RandomWalk, false},
	}

	for _, tt := range tests {
		got, ok := ParseStrategy(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStrategy(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
