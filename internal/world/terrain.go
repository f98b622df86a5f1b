package world

import (
	"context"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Phoemerrion/tresoria/internal/random"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
)

const (
	// SeparationRadius is the Chebyshev distance inside which water and
	// rock may never meet.
	SeparationRadius = 2

	// Growth budgets. They only matter on crowded boards where rejection
	// sampling would otherwise stall.
	walkStepFactor       = 8  // walk steps per target cell
	scatterAttemptFactor = 50 // samples per board cell
)

// Strategy selects how obstacle regions are grown.
type Strategy int

const (
	// RandomWalk paints a trail from a seed, one neighbour at a time.
	RandomWalk Strategy = iota
	// Scattered samples random cells and keeps those touching the region.
	Scattered
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case RandomWalk:
		return "walk"
	case Scattered:
		return "scatter"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(name) {
	case "walk", "random_walk":
		return RandomWalk, true
	case "scatter", "scattered":
		return Scattered, true
	default:
		return RandomWalk, false
	}
}

// Pass is one round of obstacle growth.
type Pass struct {
	Texture  Texture
	Fraction float64 // share of the board area to paint
}

// Target returns the number of cells the pass aims to paint on a board of
// the given area.
func (p Pass) Target(area int) int {
	return int(math.Floor(float64(area) * p.Fraction))
}

// ClassicPasses is the default terrain: 15% water, 10% rock, 10% water,
// 15% rock.
func ClassicPasses() []Pass {
	return []Pass{
		{Texture: Water, Fraction: 0.15},
		{Texture: Rock, Fraction: 0.10},
		{Texture: Water, Fraction: 0.10},
		{Texture: Rock, Fraction: 0.15},
	}
}

// PassReport records what a single pass achieved.
type PassReport struct {
	Texture Texture
	Target  int
	Painted int      // grass cells converted by this pass
	Seed    Position // first cell of the pass, valid when Seeded
	Seeded  bool
}

// TerrainReport summarizes a Generate call.
type TerrainReport struct {
	Passes []PassReport
}

// Painted returns the total number of cells painted across all passes.
func (r TerrainReport) Painted() int {
	n := 0
	for _, p := range r.Passes {
		n += p.Painted
	}
	return n
}

// Terrain grows connected water and rock regions onto a grid.
type Terrain struct {
	Passes    []Pass
	Strategy  Strategy
	Diagonals bool // let the random walk step diagonally
	rng       random.Source
}

// NewTerrain creates a terrain generator drawing from rng.
func NewTerrain(rng random.Source, passes []Pass, strategy Strategy) *Terrain {
	return &Terrain{
		Passes:   passes,
		Strategy: strategy,
		rng:      rng,
	}
}

// Generate applies every pass in order to g. Passes that cannot grow stop
// early; a partial region is not an error.
func (t *Terrain) Generate(ctx context.Context, g *Grid) TerrainReport {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "terrain.generate")
	defer span.End()

	startTime := time.Now()

	report := TerrainReport{Passes: make([]PassReport, 0, len(t.Passes))}
	for _, pass := range t.Passes {
		if !pass.Texture.IsObstacle() {
			continue
		}
		target := pass.Target(g.Area())
		var pr PassReport
		switch t.Strategy {
		case Scattered:
			pr = t.scatter(g, pass.Texture, target)
		default:
			pr = t.walk(g, pass.Texture, target)
		}
		report.Passes = append(report.Passes, pr)
	}

	span.SetAttributes(
		attribute.Int("terrain.width", g.Width()),
		attribute.Int("terrain.height", g.Height()),
		attribute.String("terrain.strategy", t.Strategy.String()),
		attribute.Int("terrain.passes", len(report.Passes)),
		attribute.Int("terrain.painted", report.Painted()),
		attribute.Int64("terrain.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return report
}

// canHold reports whether tex may occupy (x, y) without breaking the
// separation from the opposing obstacle.
func canHold(g *Grid, x, y int, tex Texture) bool {
	return !g.HasTextureWithin(x, y, SeparationRadius, tex.Opposing())
}

// walk grows a region by random walk. The walk may cross cells it already
// owns; only freshly painted grass counts toward the target.
func (t *Terrain) walk(g *Grid, tex Texture, target int) PassReport {
	report := PassReport{Texture: tex, Target: target}
	if target <= 0 {
		return report
	}

	seed, ok := t.pickSeed(g, tex)
	if !ok {
		return report
	}
	report.Seed, report.Seeded = seed, true
	if g.At(seed.X, seed.Y).Texture == Grass {
		g.SetTexture(seed.X, seed.Y, tex)
		report.Painted++
	}

	current := seed
	maxSteps := target * walkStepFactor
	for steps := 0; report.Painted < target && steps < maxSteps; steps++ {
		next, ok := t.step(g, current, tex)
		if !ok {
			break
		}
		if g.At(next.X, next.Y).Texture == Grass {
			g.SetTexture(next.X, next.Y, tex)
			report.Painted++
		}
		current = next
	}
	return report
}

// pickSeed draws random cells until one can hold tex.
func (t *Terrain) pickSeed(g *Grid, tex Texture) (Position, bool) {
	for attempt := 0; attempt < g.Area(); attempt++ {
		x, y := t.rng.Intn(g.Width()), t.rng.Intn(g.Height())
		if canHold(g, x, y, tex) {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}

// step returns a random valid neighbour of from.
func (t *Terrain) step(g *Grid, from Position, tex Texture) (Position, bool) {
	dirs := make([]Position, 0, len(orthogonal)+len(diagonal))
	dirs = append(dirs, orthogonal...)
	if t.Diagonals {
		dirs = append(dirs, diagonal...)
	}
	random.Shuffle(t.rng, dirs)

	for _, d := range dirs {
		n := from.Add(d.X, d.Y)
		if !g.InBounds(n.X, n.Y) {
			continue
		}
		if canHold(g, n.X, n.Y, tex) && g.HasAdjacentTexture(n.X, n.Y, tex) {
			return n, true
		}
	}
	return Position{}, false
}

// scatter grows a region by rejection sampling interior grass cells.
func (t *Terrain) scatter(g *Grid, tex Texture, target int) PassReport {
	report := PassReport{Texture: tex, Target: target}
	budget := g.Area() * scatterAttemptFactor

	for attempt := 0; report.Painted < target && attempt < budget; attempt++ {
		x, y := t.rng.Intn(g.Width()), t.rng.Intn(g.Height())
		if g.At(x, y).Texture != Grass || g.OnEdge(x, y) || !canHold(g, x, y, tex) {
			continue
		}
		if report.Painted > 0 && !g.HasAdjacentTexture(x, y, tex) {
			continue
		}
		g.SetTexture(x, y, tex)
		if report.Painted == 0 {
			report.Seed, report.Seeded = Position{X: x, Y: y}, true
		}
		report.Painted++
	}
	return report
}
