package game

import (
	"fmt"

	"github.com/jwebster45206/teletext/pkg/dialogue"
)

// Intent is a discrete request from the input driver.
type Intent interface {
	Name() string
}

// StartGame leaves the start screen and begins play.
type StartGame struct{}

// Move asks to walk into an adjacent room.
type Move struct {
	Room string
}

// RunTask executes a task of the current room.
type RunTask struct {
	ID int
}

// Talk starts a conversation with a person in the current room.
type Talk struct {
	Person string
}

// Choose answers in the active conversation.
type Choose struct {
	Option dialogue.Option
}

// EndConversation closes the active conversation.
type EndConversation struct{}

// ShowTasks writes the current room's tasks to the log.
type ShowTasks struct{}

// Status writes every relationship score to the log.
type Status struct{}

// TogglePause opens the pause menu while playing and closes it while paused.
type TogglePause struct{}

// Resume closes the pause menu.
type Resume struct{}

// SetVolume changes a volume channel; the level is clamped to 0..MaxVolume.
type SetVolume struct {
	Channel Channel
	Level   int
}

// Quit terminates the session. Only the start screen and the pause menu accept it.
type Quit struct{}

func (StartGame) Name() string       { return "start_game" }
func (m Move) Name() string          { return fmt.Sprintf("move(%s)", m.Room) }
func (r RunTask) Name() string       { return fmt.Sprintf("run_task(%d)", r.ID) }
func (t Talk) Name() string          { return fmt.Sprintf("talk(%s)", t.Person) }
func (c Choose) Name() string        { return fmt.Sprintf("choose(%s)", c.Option) }
func (EndConversation) Name() string { return "end_conversation" }
func (ShowTasks) Name() string       { return "show_tasks" }
func (Status) Name() string          { return "status" }
func (TogglePause) Name() string     { return "toggle_pause" }
func (Resume) Name() string          { return "resume" }
func (v SetVolume) Name() string     { return fmt.Sprintf("set_volume(%s=%d)", v.Channel, v.Level) }
func (Quit) Name() string            { return "quit" }
