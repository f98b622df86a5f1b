package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Phoemerrion/tresoria/internal/random"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
)

// ErrInsufficientCapacity is returned when the board has fewer empty grass
// cells than entities to place.
var ErrInsufficientCapacity = errors.New("not enough empty grass cells")

// pickAttemptFactor bounds rejection sampling before falling back to an
// exhaustive scan.
const pickAttemptFactor = 4

// Placement records where entities were put.
type Placement struct {
	Player   Position
	Treasure Position
	Monsters []Position
}

// Placer puts the player, treasure and monsters on empty grass.
type Placer struct {
	rng random.Source
}

// NewPlacer creates a placer drawing from rng.
func NewPlacer(rng random.Source) *Placer {
	return &Placer{rng: rng}
}

// PickEmptyGrass returns a uniformly random empty grass cell of g.
func (p *Placer) PickEmptyGrass(g *Grid) (Position, error) {
	maxAttempts := g.Area() * pickAttemptFactor
	for attempt := 0; attempt < maxAttempts; attempt++ {
		x, y := p.rng.Intn(g.Width()), p.rng.Intn(g.Height())
		if g.At(x, y).IsEmptyGrass() {
			return Position{X: x, Y: y}, nil
		}
	}

	// Sparse boards: pick among the remaining cells directly.
	var free []Position
	g.Each(func(pos Position, c Cell) {
		if c.IsEmptyGrass() {
			free = append(free, pos)
		}
	})
	if len(free) == 0 {
		return Position{}, ErrInsufficientCapacity
	}
	return free[p.rng.Intn(len(free))], nil
}

// Place puts one player, one treasure and monsters monsters on g, in that
// order. The capacity check runs first, so a failed call leaves g
// untouched.
func (p *Placer) Place(ctx context.Context, g *Grid, monsters int) (Placement, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "entities.place")
	defer span.End()

	need := monsters + 2
	free := g.Count(Cell.IsEmptyGrass)
	span.SetAttributes(
		attribute.Int("entities.monsters", monsters),
		attribute.Int("entities.free_cells", free),
	)
	if monsters < 0 || free < need {
		span.SetAttributes(attribute.Bool("failed", true))
		return Placement{}, fmt.Errorf("place %d entities on %d free cells: %w", need, free, ErrInsufficientCapacity)
	}

	var placement Placement
	var err error
	if placement.Player, err = p.put(g, Player); err != nil {
		return Placement{}, err
	}
	if placement.Treasure, err = p.put(g, Treasure); err != nil {
		return Placement{}, err
	}
	placement.Monsters = make([]Position, 0, monsters)
	for i := 0; i < monsters; i++ {
		pos, err := p.put(g, Monster)
		if err != nil {
			return Placement{}, err
		}
		placement.Monsters = append(placement.Monsters, pos)
	}
	return placement, nil
}

func (p *Placer) put(g *Grid, content Content) (Position, error) {
	pos, err := p.PickEmptyGrass(g)
	if err != nil {
		return Position{}, fmt.Errorf("place %s: %w", content, err)
	}
	g.SetContent(pos.X, pos.Y, content)
	return pos, nil
}
