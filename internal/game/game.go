package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Phoemerrion/tresoria/internal/eventlog"
	"github.com/Phoemerrion/tresoria/internal/gamedata"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
	"github.com/Phoemerrion/tresoria/internal/ui"
)

// Command is a player input after key mapping.
type Command int

const (
	CommandNone Command = iota
	CommandMove
	CommandNewGame
	CommandQuit
)

// commandFor maps a key event to a command. dir is set for CommandMove.
func commandFor(key tcell.Key, r rune) (cmd Command, dir Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, 0
	case tcell.KeyUp:
		return CommandMove, DirectionUp
	case tcell.KeyDown:
		return CommandMove, DirectionDown
	case tcell.KeyLeft:
		return CommandMove, DirectionLeft
	case tcell.KeyRight:
		return CommandMove, DirectionRight
	case tcell.KeyRune:
		switch r {
		case 'k':
			return CommandMove, DirectionUp
		case 'j':
			return CommandMove, DirectionDown
		case 'h':
			return CommandMove, DirectionLeft
		case 'l':
			return CommandMove, DirectionRight
		case 'n', 'N':
			return CommandNewGame, 0
		case 'q', 'Q':
			return CommandQuit, 0
		}
	}
	return CommandNone, 0
}

// Game drives a Session from the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	log      *eventlog.MessageLog
	running  bool
}

// NewTerminal opens the terminal and starts a session with cfg, keeping up to
// logSize narrative messages.
func NewTerminal(ctx context.Context, cfg Config, logSize int) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	log := eventlog.New(logSize)
	session, err := New(ctx, cfg, log, nil)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  session,
		log:      log,
		running:  true,
	}, nil
}

// Session returns the session being played.
func (g *Game) Session() *Session { return g.session }

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(
		attribute.String("session.id", g.session.ID()),
		attribute.Int("board.width", g.session.Config().Width),
		attribute.Int("board.height", g.session.Config().Height),
	)
	defer span.End()

	defer g.screen.Close()
	for g.running {
		g.render()
		if err := g.handleInput(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.View{
		Grid:     s.Grid(),
		Stats:    s.Stats(),
		Status:   s.Status().String(),
		Monsters: s.MonsterCount(),
		Messages: g.log.Recent(g.log.Len()),
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// The screen was finalized.
		g.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	cmd, dir := commandFor(ev.Key(), ev.Rune())
	switch cmd {
	case CommandQuit:
		g.running = false
	case CommandMove:
		if _, err := g.session.Move(ctx, dir); err != nil && !errors.Is(err, ErrInvalidDirection) {
			return err
		}
	case CommandNewGame:
		// A board that cannot be placed on keeps the current game.
		if err := g.session.NewGame(ctx); err != nil && !IsCapacityError(err) {
			return err
		}
	}
	return nil
}

// Close cleans up game resources when Run was never called.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
