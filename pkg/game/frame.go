package game

import (
	"time"

	"github.com/jwebster45206/teletext/pkg/chat"
	"github.com/jwebster45206/teletext/pkg/dialogue"
	"github.com/jwebster45206/teletext/pkg/scene"
	"github.com/jwebster45206/teletext/pkg/world"
)

// Menu labels.
const (
	MenuStart    = "Spiel starten"
	MenuQuit     = "Beenden"
	MenuContinue = "Fortfahren"
	MenuQuitGame = "Spiel beenden"
	MenuSFX      = "SFX Lautstärke"
	MenuMusic    = "Musik Lautstärke"
)

// Dialogue button labels, in display order.
var DialogueOptions = []string{"Ja", "Nein", "Smalltalk", "Gespräch beenden"}

// Frame is everything the driver needs to draw one frame. It holds copies;
// mutating a Frame does not change the game.
type Frame struct {
	Scene        scene.Kind
	Title        string
	Menu         []string            // Start screen entries
	Room         *world.RoomSnapshot // Current room while playing or paused
	Conversation *ConversationView   // Active conversation, if any
	Log          []chat.ChatMessage  // Text log, oldest first
	Elapsed      time.Duration       // Play time, frozen while paused
	Pause        *PauseOverlay       // Set only while paused
}

// ConversationView describes the active conversation.
type ConversationView struct {
	Person  world.PersonSnapshot
	Status  dialogue.Status
	Options []string
}

// PauseOverlay is drawn on top of the frozen play frame.
type PauseOverlay struct {
	Volumes Volumes
	Menu    []string
}
