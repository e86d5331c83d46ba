package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/teletext/pkg/chat"
	"github.com/jwebster45206/teletext/pkg/scene"
	"github.com/jwebster45206/teletext/pkg/world"
)

var (
	ErrUnsupportedIntent = errors.New("intent not supported in this scene")
	ErrNotRunning        = errors.New("game is not running")
)

// Scene is one top-level interaction mode. Only the topmost scene of the
// stack receives input, updates and draw calls.
type Scene interface {
	Kind() scene.Kind
	Handle(ctx context.Context, in Intent) error
	Update(dt time.Duration)
	View() Frame
}

// Options configure a Game.
type Options struct {
	// NewWorld builds a fresh world each time play starts. Defaults to world.Default.
	NewWorld       func() (*world.World, error)
	Notifier       Notifier
	Logger         *slog.Logger
	Volumes        Volumes
	EndAfterChoice bool // conversations close after one answer
	LogLimit       int  // text log size, see chat.NewLog
}

// Game is the top-level controller and owns all application state of a
// session. It is driven from a single goroutine and is not safe for
// concurrent use.
type Game struct {
	id             uuid.UUID
	title          string
	scenes         *scene.Stack[Scene]
	newWorld       func() (*world.World, error)
	notifier       Notifier
	logger         *slog.Logger
	volumes        Volumes
	endAfterChoice bool
	logLimit       int
	running        bool
}

// New creates a game on its start screen. The world factory is run once to
// make sure the seed data is usable before the player presses start.
func New(ctx context.Context, opts Options) (*Game, error) {
	g := &Game{
		id:             uuid.New(),
		newWorld:       opts.NewWorld,
		notifier:       opts.Notifier,
		logger:         opts.Logger,
		volumes:        Volumes{Music: ClampVolume(opts.Volumes.Music), SFX: ClampVolume(opts.Volumes.SFX)},
		endAfterChoice: opts.EndAfterChoice,
		logLimit:       opts.LogLimit,
		running:        true,
	}
	if g.newWorld == nil {
		g.newWorld = func() (*world.World, error) { return world.Default(), nil }
	}
	if g.notifier == nil {
		g.notifier = NopNotifier{}
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	g.logger = g.logger.With("game_id", g.id.String())

	w, err := g.newWorld()
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}
	g.title = w.Title

	g.scenes = scene.NewStack[Scene](newStartScene(g))
	g.notify(ctx, Notification{Type: NotificationMusicTrack, Track: TrackMenu})
	g.notify(ctx, Notification{Type: NotificationVolumeChanged, Channel: ChannelMusic, Level: g.volumes.Music})
	g.notify(ctx, Notification{Type: NotificationVolumeChanged, Channel: ChannelSFX, Level: g.volumes.SFX})

	g.logger.Info("Game created", "title", g.title)
	return g, nil
}

// ID returns the session ID used on notifications.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Title returns the title of the seed data.
func (g *Game) Title() string {
	return g.title
}

// Running reports whether the session is still alive.
func (g *Game) Running() bool {
	return g.running
}

// Scene returns the kind of the topmost scene.
func (g *Game) Scene() scene.Kind {
	return g.scenes.Current().Kind()
}

// Volumes returns the current volume levels.
func (g *Game) Volumes() Volumes {
	return g.volumes
}

// Handle delivers in to the topmost scene. Gameplay rejections are returned
// as wrapped sentinel errors and are also written to the text log.
func (g *Game) Handle(ctx context.Context, in Intent) error {
	if !g.running {
		return ErrNotRunning
	}
	current := g.scenes.Current()
	err := current.Handle(ctx, in)
	if err != nil {
		g.logger.Debug("Intent rejected", "scene", current.Kind().String(), "intent", in.Name(), "error", err)
	}
	return err
}

// Update advances the topmost scene by one tick.
func (g *Game) Update(dt time.Duration) {
	if !g.running {
		return
	}
	g.scenes.Current().Update(dt)
}

// View returns the frame of the topmost scene.
func (g *Game) View() Frame {
	return g.scenes.Current().View()
}

// startPlaying replaces the start screen with a fresh play scene.
func (g *Game) startPlaying(ctx context.Context) error {
	w, err := g.newWorld()
	if err != nil {
		g.logger.Error("Failed to build world", "error", err)
		return fmt.Errorf("failed to build world: %w", err)
	}
	play := newPlayScene(g, w)
	g.scenes.Replace(play)

	g.logger.Info("Scene changed", "scene", scene.KindPlaying.String())
	g.notify(ctx, Notification{Type: NotificationMusicTrack, Track: TrackGame})
	g.notify(ctx, Notification{Type: NotificationRoomEntered, Room: play.state.CurrentRoom().Name})
	return nil
}

func (g *Game) pause(play *PlayScene) {
	g.scenes.Push(newPauseScene(g, play))
	g.logger.Info("Scene changed", "scene", scene.KindPaused.String())
}

func (g *Game) resume() {
	if _, ok := g.scenes.Pop(); ok {
		g.logger.Info("Scene changed", "scene", g.Scene().String())
	}
}

func (g *Game) setVolume(ctx context.Context, ch Channel, level int) error {
	if ch != ChannelMusic && ch != ChannelSFX {
		return fmt.Errorf("unknown volume channel %q", ch)
	}
	g.volumes = g.volumes.With(ch, level)
	g.notify(ctx, Notification{Type: NotificationVolumeChanged, Channel: ch, Level: g.volumes.Get(ch)})
	return nil
}

func (g *Game) quit(ctx context.Context) {
	if !g.running {
		return
	}
	g.running = false
	g.logger.Info("Game quit", "scene", g.Scene().String())
	g.notify(ctx, Notification{Type: NotificationQuit})
}

func (g *Game) newLog() *chat.Log {
	return chat.NewLog(g.logLimit)
}

// notify forwards n to the notifier. The asset/audio side owns its failures;
// they are logged and otherwise ignored.
func (g *Game) notify(ctx context.Context, n Notification) {
	if err := g.notifier.Notify(ctx, g.id, n); err != nil {
		g.logger.Warn("Notification failed", "type", string(n.Type), "error", err)
	}
}
