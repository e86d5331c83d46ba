package game

import (
	"context"
	"fmt"
	"time"

	"github.com/jwebster45206/teletext/pkg/scene"
)

// PauseScene sits on top of a PlayScene. The play scene stays on the stack
// but receives neither input nor updates until the pause is popped.
type PauseScene struct {
	g    *Game
	play *PlayScene
}

func newPauseScene(g *Game, play *PlayScene) *PauseScene {
	return &PauseScene{g: g, play: play}
}

func (s *PauseScene) Kind() scene.Kind { return scene.KindPaused }

func (s *PauseScene) Handle(ctx context.Context, in Intent) error {
	switch in := in.(type) {
	case TogglePause, Resume:
		s.g.resume()
		return nil
	case SetVolume:
		return s.g.setVolume(ctx, in.Channel, in.Level)
	case Quit:
		s.g.quit(ctx)
		return nil
	default:
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedIntent, in.Name(), s.Kind())
	}
}

func (s *PauseScene) Update(time.Duration) {}

// View draws the frozen play frame with the pause overlay on top.
func (s *PauseScene) View() Frame {
	f := s.play.View()
	f.Scene = scene.KindPaused
	f.Pause = &PauseOverlay{
		Volumes: s.g.volumes,
		Menu:    []string{MenuContinue, MenuSFX, MenuMusic, MenuQuitGame},
	}
	return f
}
