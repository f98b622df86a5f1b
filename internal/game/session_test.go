package game

import (
	"context"
	"errors"
	"testing"

	"github.com/Phoemerrion/tresoria/internal/combat"
	"github.com/Phoemerrion/tresoria/internal/entity"
	"github.com/Phoemerrion/tresoria/internal/eventlog"
	"github.com/Phoemerrion/tresoria/internal/random"
	"github.com/Phoemerrion/tresoria/internal/world"
)

// newScenario starts a session on a hand-drawn board. When rolls are given
// they drive every monster roll.
func newScenario(t *testing.T, layout string, rolls ...int) (*Session, *eventlog.MessageLog) {
	t.Helper()
	ctx := context.Background()

	log := eventlog.New(0)
	s, err := New(ctx, DefaultConfig(), log, random.New(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.NewGameFromGrid(ctx, world.MustParse(layout)); err != nil {
		t.Fatalf("NewGameFromGrid: %v", err)
	}
	if len(rolls) > 0 {
		s.resolver = combat.NewResolver(random.NewScripted(rolls...))
	}
	return s, log
}

func lastMessage(t *testing.T, log *eventlog.MessageLog) string {
	t.Helper()
	recent := log.Recent(1)
	if len(recent) == 0 {
		t.Fatal("log is empty")
	}
	return recent[0]
}

func TestNewGeneratesPlayableBoard(t *testing.T) {
	ctx := context.Background()

	for seed := int64(1); seed <= 10; seed++ {
		log := eventlog.New(0)
		s, err := New(ctx, DefaultConfig(), log, random.New(seed))
		if err != nil {
			t.Fatalf("seed %d: New: %v", seed, err)
		}

		g := s.Grid()
		if g.Width() != 30 || g.Height() != 15 {
			t.Fatalf("seed %d: board %dx%d, want 30x15", seed, g.Width(), g.Height())
		}
		if n := len(g.Find(world.Player)); n != 1 {
			t.Errorf("seed %d: %d players", seed, n)
		}
		if n := len(g.Find(world.Treasure)); n != 1 {
			t.Errorf("seed %d: %d treasures", seed, n)
		}
		if n := s.MonsterCount(); n != 22 {
			t.Errorf("seed %d: %d monsters, want 22", seed, n)
		}
		g.Each(func(p world.Position, c world.Cell) {
			if c.Content != world.Empty && c.Texture != world.Grass {
				t.Errorf("seed %d: %s on %s at %v", seed, c.Content, c.Texture, p)
			}
		})
		if got := g.At(s.Player().X, s.Player().Y).Content; got != world.Player {
			t.Errorf("seed %d: Player() %v holds %s", seed, s.Player(), got)
		}
		if s.Status() != StatusRunning {
			t.Errorf("seed %d: status %s, want running", seed, s.Status())
		}
		if s.Stats() != entity.DefaultStats() {
			t.Errorf("seed %d: stats %+v, want defaults", seed, s.Stats())
		}
		if msgs := log.Messages(); len(msgs) != 1 || msgs[0] != s.messages.NewMap.Format() {
			t.Errorf("seed %d: log = %q, want the new-map message only", seed, msgs)
		}
		if s.ID() == "" {
			t.Errorf("seed %d: empty session id", seed)
		}
	}
}

func TestNewIsReproducible(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, DefaultConfig(), eventlog.New(0), random.New(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(ctx, DefaultConfig(), eventlog.New(0), random.New(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Grid().String() != b.Grid().String() {
		t.Error("same seed produced different boards")
	}
	if a.ID() == b.ID() {
		t.Error("sessions share an id")
	}

	cfg := DefaultConfig()
	cfg.Seed = 42
	c, err := New(ctx, cfg, eventlog.New(0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d, err := New(ctx, cfg, eventlog.New(0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Grid().String() != d.Grid().String() {
		t.Error("same configured seed produced different boards")
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	tiny := DefaultConfig()
	tiny.Width, tiny.Height = 1, 1
	if _, err := New(ctx, tiny, eventlog.New(0), random.New(1)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("1x1 board: error = %v, want ErrInvalidConfig", err)
	}

	if _, err := New(ctx, DefaultConfig(), nil, random.New(1)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil sink: error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewGameFailureKeepsPreviousGame(t *testing.T) {
	ctx := context.Background()
	log := eventlog.New(0)
	s, err := New(ctx, DefaultConfig(), log, random.New(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := s.Grid().String()
	player := s.Player()

	s.cfg.MonsterDensity = 0.99
	err = s.NewGame(ctx)
	if !errors.Is(err, world.ErrInsufficientCapacity) || !IsCapacityError(err) {
		t.Fatalf("NewGame error = %v, want ErrInsufficientCapacity", err)
	}
	if s.Grid().String() != before || s.Player() != player {
		t.Error("failed NewGame changed the board")
	}
	if log.Len() != 1 {
		t.Errorf("failed NewGame touched the log: %q", log.Messages())
	}
}

func TestNewGameResetsState(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@m$", 49, 0)
	s.stats.Health = 5

	if out, _ := s.Move(ctx, DirectionRight); out != MoveDefeat {
		t.Fatalf("Move = %s, want defeat", out)
	}

	if err := s.NewGame(ctx); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if s.Status() != StatusRunning {
		t.Errorf("status = %s, want running", s.Status())
	}
	if s.Stats() != entity.DefaultStats() {
		t.Errorf("stats = %+v, want defaults", s.Stats())
	}
	if s.Moves() != 0 || s.Kills() != 0 {
		t.Errorf("moves, kills = %d, %d, want 0, 0", s.Moves(), s.Kills())
	}
	if log.Len() != 1 {
		t.Errorf("log = %q, want the new-map message only", log.Messages())
	}
	if s.Grid().Width() != 30 {
		t.Errorf("board width = %d, want the configured 30", s.Grid().Width())
	}
}

func TestMoveBoundary(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, `
		@.
		.$
	`)

	for _, d := range []Direction{DirectionLeft, DirectionUp} {
		out, err := s.Move(ctx, d)
		if err != nil {
			t.Fatalf("Move(%s): %v", d, err)
		}
		if out != MoveBlockedBoundary {
			t.Errorf("Move(%s) = %s, want blocked_boundary", d, out)
		}
		if got := lastMessage(t, log); got != s.messages.Boundary.Format() {
			t.Errorf("Move(%s) logged %q", d, got)
		}
		if s.Player() != (world.Position{X: 0, Y: 0}) {
			t.Errorf("player moved to %v", s.Player())
		}
	}
}

func TestMoveBlockedByTerrain(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, `
		@^
		~$
	`)
	before := s.Grid().String()

	if out, _ := s.Move(ctx, DirectionRight); out != MoveBlockedTerrain {
		t.Errorf("Move(right) = %s, want blocked_terrain", out)
	}
	want := "This obstacle cannot be crossed! Even a stubborn head cannot dig through rock..."
	if got := lastMessage(t, log); got != want {
		t.Errorf("rock message = %q, want %q", got, want)
	}

	if out, _ := s.Move(ctx, DirectionDown); out != MoveBlockedTerrain {
		t.Errorf("Move(down) = %s, want blocked_terrain", out)
	}
	want = "This obstacle cannot be crossed! You would drown in a glass of water..."
	if got := lastMessage(t, log); got != want {
		t.Errorf("water message = %q, want %q", got, want)
	}

	if s.Grid().String() != before {
		t.Error("blocked moves changed the board")
	}
}

func TestMoveOntoGrass(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@.$")

	out, err := s.Move(ctx, DirectionRight)
	if err != nil || out != MoveMoved {
		t.Fatalf("Move = %s, %v, want moved", out, err)
	}
	if s.Player() != (world.Position{X: 1, Y: 0}) {
		t.Errorf("player at %v, want 1:0", s.Player())
	}
	g := s.Grid()
	if g.At(0, 0).Content != world.Empty || g.At(1, 0).Content != world.Player {
		t.Errorf("board after move:\n%s", g)
	}
	if got := lastMessage(t, log); got != "Player is now on 1:0." {
		t.Errorf("logged %q", got)
	}
}

func TestMoveSlaysMonster(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@m$", 0, 0)
	s.stats.Health = 12

	out, err := s.Move(ctx, DirectionRight)
	if err != nil || out != MoveSlayed {
		t.Fatalf("Move = %s, %v, want slayed", out, err)
	}
	if s.Stats().Health != 100 {
		t.Errorf("health = %d, want fully restored 100", s.Stats().Health)
	}
	if s.Player() != (world.Position{X: 1, Y: 0}) {
		t.Errorf("player at %v, want 1:0", s.Player())
	}
	if s.MonsterCount() != 0 || s.Kills() != 1 {
		t.Errorf("monsters, kills = %d, %d, want 0, 1", s.MonsterCount(), s.Kills())
	}
	want := "A monster blocks the way! Got it! Your health is fully restored. Player is now on 1:0."
	if got := lastMessage(t, log); got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}

func TestMoveStalemate(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@m$", 49, 19)

	out, _ := s.Move(ctx, DirectionRight)
	if out != MoveStalemate {
		t.Fatalf("Move = %s, want stalemate", out)
	}
	if s.Stats().Health != 71 {
		t.Errorf("health = %d, want 71", s.Stats().Health)
	}
	if s.Player() != (world.Position{X: 0, Y: 0}) {
		t.Errorf("player moved to %v", s.Player())
	}
	if s.Grid().At(1, 0).Content != world.Monster {
		t.Error("surviving monster left its cell")
	}
	if s.Status() != StatusRunning {
		t.Errorf("status = %s, want running", s.Status())
	}
	want := "A monster blocks the way! The monster slaps you for 29 damage. You both walk away nursing your bruises..."
	if got := lastMessage(t, log); got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}

func TestMoveDefeat(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@m$", 49, 0)
	s.stats.Health = 5

	out, _ := s.Move(ctx, DirectionRight)
	if out != MoveDefeat {
		t.Fatalf("Move = %s, want defeat", out)
	}
	if s.Status() != StatusDefeat {
		t.Errorf("status = %s, want defeat", s.Status())
	}
	if s.Stats().Health != -5 {
		t.Errorf("health = %d, want -5", s.Stats().Health)
	}
	want := "A monster blocks the way! The monster slaps you for 10 damage. You have been wiped out!"
	if got := lastMessage(t, log); got != want {
		t.Errorf("logged %q, want %q", got, want)
	}

	assertFrozen(t, s, log)
}

func TestMoveVictory(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@$")

	out, _ := s.Move(ctx, DirectionRight)
	if out != MoveVictory || !out.Moved() {
		t.Fatalf("Move = %s, want victory", out)
	}
	if s.Status() != StatusVictory {
		t.Errorf("status = %s, want victory", s.Status())
	}
	if s.Grid().At(1, 0).Content != world.Player {
		t.Error("treasure cell does not hold the player")
	}
	if got := lastMessage(t, log); got != "Player is now on 1:0. You found the treasure!" {
		t.Errorf("logged %q", got)
	}

	assertFrozen(t, s, log)
}

// assertFrozen checks that a finished game ignores every command.
func assertFrozen(t *testing.T, s *Session, log *eventlog.MessageLog) {
	t.Helper()
	ctx := context.Background()

	board := s.Grid().String()
	player := s.Player()
	stats := s.Stats()
	total := log.Total()

	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight, Direction(0)} {
		out, err := s.Move(ctx, d)
		if out != MoveIgnored || err != nil {
			t.Errorf("Move(%s) after game over = %s, %v, want ignored", d, out, err)
		}
	}
	if out, err := s.MoveNamed(ctx, "sideways"); out != MoveIgnored || err != nil {
		t.Errorf("MoveNamed after game over = %s, %v, want ignored", out, err)
	}

	if s.Grid().String() != board || s.Player() != player || s.Stats() != stats {
		t.Error("game over state changed")
	}
	if log.Total() != total {
		t.Errorf("game over moves logged %d events", log.Total()-total)
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	ctx := context.Background()
	s, log := newScenario(t, "@.$")
	total := log.Total()

	if _, err := s.Move(ctx, Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Move(9) error = %v, want ErrInvalidDirection", err)
	}
	if _, err := s.MoveNamed(ctx, "north"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("MoveNamed(north) error = %v, want ErrInvalidDirection", err)
	}
	if log.Total() != total || s.Moves() != 0 {
		t.Error("invalid directions were logged")
	}
	if out, err := s.MoveNamed(ctx, " Right "); err != nil || out != MoveMoved {
		t.Errorf("MoveNamed(Right) = %s, %v, want moved", out, err)
	}
}

func TestEveryMoveLogsOnce(t *testing.T) {
	ctx := context.Background()
	log := eventlog.New(10)
	s, err := New(ctx, DefaultConfig(), log, random.New(11))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := random.New(12)
	dirs := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
	for i := 0; i < 500 && !s.Status().IsTerminal(); i++ {
		total := log.Total()
		if _, err := s.Move(ctx, dirs[rng.Intn(len(dirs))]); err != nil {
			t.Fatalf("Move: %v", err)
		}
		if log.Total() != total+1 {
			t.Fatalf("move %d logged %d events, want 1", i, log.Total()-total)
		}
		if s.Stats().Health > s.Stats().MaxHealth {
			t.Fatalf("health %d above max", s.Stats().Health)
		}
		if n := len(s.Grid().Find(world.Player)); n != 1 {
			t.Fatalf("%d players on the board", n)
		}
	}
	if log.Len() > 10 {
		t.Errorf("log retained %d messages, want at most 10", log.Len())
	}
}

func TestNewGameFromGridValidation(t *testing.T) {
	ctx := context.Background()
	s, _ := newScenario(t, "@$")

	tests := []struct {
		name   string
		layout string
	}{
		{"no player", ".$"},
		{"two players", "@@$"},
		{"two treasures", "@$$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.NewGameFromGrid(ctx, world.MustParse(tt.layout))
			if !errors.Is(err, world.ErrInvalidLayout) {
				t.Errorf("error = %v, want ErrInvalidLayout", err)
			}
		})
	}

	g := world.MustParse("@.$")
	g.SetTexture(1, 0, world.Rock)
	g.SetContent(1, 0, world.Monster)
	if err := s.NewGameFromGrid(ctx, g); !errors.Is(err, world.ErrInvalidLayout) {
		t.Errorf("monster on rock: error = %v, want ErrInvalidLayout", err)
	}
}
