package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Phoemerrion/tresoria/internal/combat"
	"github.com/Phoemerrion/tresoria/internal/entity"
	"github.com/Phoemerrion/tresoria/internal/eventlog"
	"github.com/Phoemerrion/tresoria/internal/gamedata"
	"github.com/Phoemerrion/tresoria/internal/random"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
	"github.com/Phoemerrion/tresoria/internal/world"
)

// Session is a single-player game: a generated map, the player's stats and
// the game status. It is not safe for concurrent use.
type Session struct {
	id       string
	cfg      Config
	sink     eventlog.Sink
	messages gamedata.Messages
	terrain  *world.Terrain
	placer   *world.Placer
	resolver *combat.Resolver

	grid          *world.Grid
	player        world.Position
	stats         entity.Stats
	status        Status
	terrainReport world.TerrainReport
	moves         int
	kills         int
}

// New validates cfg, wires the generators to src and generates the first
// map. Narrative events go to sink. A nil src selects a generator seeded
// from cfg.Seed, or from crypto/rand when the seed is 0.
func New(ctx context.Context, cfg Config, sink eventlog.Sink, src random.Source) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: nil log sink", ErrInvalidConfig)
	}

	if src == nil {
		seed := cfg.Seed
		if seed == 0 {
			var err error
			if seed, err = random.NewSeed(); err != nil {
				return nil, err
			}
		}
		src = random.New(seed)
	}

	messages, err := gamedata.LoadMessages()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	terrain := world.NewTerrain(src, cfg.Passes, cfg.Strategy)
	terrain.Diagonals = cfg.Diagonals

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		sink:     sink,
		messages: messages,
		terrain:  terrain,
		placer:   world.NewPlacer(src),
		resolver: combat.NewResolver(src),
	}
	if err := s.NewGame(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame discards the current map and generates a fresh one, resetting
// the player's stats and the status. If generation fails the previous game
// is kept.
func (s *Session) NewGame(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.new_game")
	defer span.End()

	g := world.NewGrid(s.cfg.Width, s.cfg.Height)
	report := s.terrain.Generate(ctx, g)
	placement, err := s.placer.Place(ctx, g, s.cfg.MonsterCount())
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("new game: %w", err)
	}

	s.reset(g, placement.Player)
	s.terrainReport = report

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("board.width", g.Width()),
		attribute.Int("board.height", g.Height()),
		attribute.Int("board.obstacles", report.Painted()),
		attribute.Int("board.monsters", len(placement.Monsters)),
		attribute.Int("player.start_x", placement.Player.X),
		attribute.Int("player.start_y", placement.Player.Y),
	)
	return nil
}

// NewGameFromGrid starts a game on a prepared grid instead of a generated
// one. The grid must hold exactly one player, standing on grass, and at
// most one treasure. The session keeps its own copy.
func (s *Session) NewGameFromGrid(ctx context.Context, g *world.Grid) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.load_grid")
	defer span.End()

	players := g.Find(world.Player)
	if len(players) != 1 {
		return fmt.Errorf("%w: grid holds %d players, want 1", world.ErrInvalidLayout, len(players))
	}
	if treasures := g.Find(world.Treasure); len(treasures) > 1 {
		return fmt.Errorf("%w: grid holds %d treasures, want at most 1", world.ErrInvalidLayout, len(treasures))
	}
	var misplaced error
	g.Each(func(p world.Position, c world.Cell) {
		if c.Content != world.Empty && c.Texture != world.Grass && misplaced == nil {
			misplaced = fmt.Errorf("%w: %s on %s at %v", world.ErrInvalidLayout, c.Content, c.Texture, p)
		}
	})
	if misplaced != nil {
		return misplaced
	}

	s.reset(g.Clone(), players[0])
	s.terrainReport = world.TerrainReport{}

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("board.width", g.Width()),
		attribute.Int("board.height", g.Height()),
	)
	return nil
}

// reset installs a new board and starts the log over with a single
// new-map event.
func (s *Session) reset(g *world.Grid, player world.Position) {
	s.grid = g
	s.player = player
	s.stats = s.cfg.PlayerStats
	s.status = StatusRunning
	s.moves = 0
	s.kills = 0
	s.sink.ClearLogs()
	s.sink.LogMessage(s.messages.NewMap.Format())
}

// Move steps the player one cell in direction d and reports what happened.
// Once the game is over Move does nothing at all. An unknown direction
// returns ErrInvalidDirection without logging. Every other call logs
// exactly one event.
func (s *Session) Move(ctx context.Context, d Direction) (MoveOutcome, error) {
	if s.status.IsTerminal() {
		return MoveIgnored, nil
	}
	dx, dy, ok := d.Delta()
	if !ok {
		return MoveIgnored, fmt.Errorf("move %d: %w", int(d), ErrInvalidDirection)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.move")
	defer span.End()

	from := s.player
	outcome, message := s.step(ctx, from.Add(dx, dy))
	s.sink.LogMessage(message)
	s.moves++

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("direction", d.String()),
		attribute.Int("from_x", from.X),
		attribute.Int("from_y", from.Y),
		attribute.String("outcome", outcome.String()),
		attribute.String("status", s.status.String()),
		attribute.Int("player.health", s.stats.Health),
	)
	return outcome, nil
}

// MoveNamed parses name with ParseDirection and moves.
func (s *Session) MoveNamed(ctx context.Context, name string) (MoveOutcome, error) {
	d, err := ParseDirection(name)
	if err != nil {
		if s.status.IsTerminal() {
			return MoveIgnored, nil
		}
		return MoveIgnored, err
	}
	return s.Move(ctx, d)
}

// step resolves a move onto target and returns the event to log.
func (s *Session) step(ctx context.Context, target world.Position) (MoveOutcome, string) {
	if !s.grid.InBounds(target.X, target.Y) {
		return MoveBlockedBoundary, s.messages.Boundary.Format()
	}

	cell := s.grid.At(target.X, target.Y)
	if !cell.Texture.IsPassable() {
		detail := s.messages.Water
		if cell.Texture == world.Rock {
			detail = s.messages.Rock
		}
		return MoveBlockedTerrain, s.messages.Terrain.Format("detail", string(detail))
	}

	var narrative []string
	outcome := MoveMoved
	switch cell.Content {
	case world.Monster:
		result, lines := s.encounter(ctx)
		narrative = append(narrative, lines...)
		switch result.Outcome {
		case combat.OutcomePlayerDefeated:
			s.status = StatusDefeat
			return MoveDefeat, joinLines(narrative)
		case combat.OutcomeMonsterSurvived:
			return MoveStalemate, joinLines(narrative)
		}
		outcome = MoveSlayed
	case world.Treasure:
		s.status = StatusVictory
		outcome = MoveVictory
	}

	s.grid.SetContent(s.player.X, s.player.Y, world.Empty)
	s.grid.SetContent(target.X, target.Y, world.Player)
	s.player = target

	narrative = append(narrative, s.messages.Moved.Format("pos", target.String()))
	if outcome == MoveVictory {
		narrative = append(narrative, s.messages.Victory.Format())
	}
	return outcome, joinLines(narrative)
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Grid returns a snapshot of the board.
func (s *Session) Grid() *world.Grid { return s.grid.Clone() }

// Player returns the player's position.
func (s *Session) Player() world.Position { return s.player }

// Stats returns the player's current stats.
func (s *Session) Stats() entity.Stats { return s.stats }

// Status returns the game status.
func (s *Session) Status() Status { return s.status }

// MonsterCount returns the number of monsters still on the board.
func (s *Session) MonsterCount() int {
	return len(s.grid.Find(world.Monster))
}

// Moves returns the number of logged moves in the current game.
func (s *Session) Moves() int { return s.moves }

// Kills returns the number of monsters slain in the current game.
func (s *Session) Kills() int { return s.kills }

// TerrainReport returns what terrain generation achieved for the current
// map. It is empty for games started from a prepared grid.
func (s *Session) TerrainReport() world.TerrainReport { return s.terrainReport }

// IsCapacityError reports whether err came from a board too crowded to
// place every entity.
func IsCapacityError(err error) bool {
	return errors.Is(err, world.ErrInsufficientCapacity)
}
