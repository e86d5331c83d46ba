package game

import (
	"context"
	"fmt"
	"time"

	"github.com/jwebster45206/teletext/pkg/scene"
)

// StartScene is the title screen: start a game or quit.
type StartScene struct {
	g *Game
}

func newStartScene(g *Game) *StartScene {
	return &StartScene{g: g}
}

func (s *StartScene) Kind() scene.Kind { return scene.KindStart }

func (s *StartScene) Handle(ctx context.Context, in Intent) error {
	switch in.(type) {
	case StartGame:
		return s.g.startPlaying(ctx)
	case Quit:
		s.g.quit(ctx)
		return nil
	default:
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedIntent, in.Name(), s.Kind())
	}
}

func (s *StartScene) Update(time.Duration) {}

func (s *StartScene) View() Frame {
	return Frame{
		Scene: scene.KindStart,
		Title: s.g.title,
		Menu:  []string{MenuStart, MenuQuit},
	}
}
