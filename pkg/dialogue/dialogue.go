package dialogue

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/teletext/pkg/chat"
	"github.com/jwebster45206/teletext/pkg/world"
)

// ErrNoConversation is returned when a choice is made without an active conversation.
var ErrNoConversation = errors.New("no active conversation")

const (
	// TalkativeThreshold is the talkativeness a person needs to exceed to enjoy smalltalk.
	TalkativeThreshold = 3

	YesPoints       = 2
	SmalltalkPoints = 1
)

// Dialogue lines.
const (
	LineGreeting      = "Hallo! Möchtest du etwas für mich erledigen?"
	LineTaskOffer     = "Super! Ich habe eine Aufgabe für dich."
	LineChatty        = "Oh, ich rede so gerne... Übrigens, wusstest du schon, dass ..."
	LineTerse         = "Hm, na gut."
	LineDecline       = "Schade, vielleicht später!"
	LineFallback      = "Okay."
	LineFarewell      = "Bis später!"
	ReplyYes          = "Ja."
	ReplyNo           = "Nein."
	ReplySmalltalk    = "Smalltalk."
	narrateNoTask     = "%s hat aktuell keine Aufgabe für dich."
	narrateNewTask    = "%s gibt dir die Aufgabe: [%d] %s"
	narratePending    = "%s hat dir diese Aufgabe schon gegeben: [%d] %s"
	narrateRelation   = "(Beziehung zu %s +%d → %d)"
	narrateIntroducer = "%s: %s"
)

// Option is a player's answer in a conversation.
type Option int

const (
	OptionUnknown Option = iota
	OptionYes
	OptionNo
	OptionSmalltalk
)

func (o Option) String() string {
	switch o {
	case OptionYes:
		return "yes"
	case OptionNo:
		return "no"
	case OptionSmalltalk:
		return "smalltalk"
	default:
		return "unknown"
	}
}

// ParseOption maps free-text input to an Option. Input is trimmed and lowercased.
func ParseOption(s string) Option {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ja", "j", "yes", "y":
		return OptionYes
	case "nein", "n", "no":
		return OptionNo
	case "smalltalk", "s":
		return OptionSmalltalk
	default:
		return OptionUnknown
	}
}

// Status is the state of a conversation.
type Status int

const (
	StatusIdle           Status = iota // no conversation, or ended
	StatusAwaitingChoice               // greeted, waiting for the first answer
	StatusResolved                     // at least one answer given; further answers allowed
)

func (s Status) String() string {
	switch s {
	case StatusAwaitingChoice:
		return "awaiting_choice"
	case StatusResolved:
		return "resolved"
	default:
		return "idle"
	}
}

// Conversation is the handle of one interaction with a person.
type Conversation struct {
	Person  *world.Person
	status  Status
	choices int
}

// Status returns the conversation's current state.
func (c *Conversation) Status() Status {
	if c == nil {
		return StatusIdle
	}
	return c.status
}

// Active reports whether the conversation still accepts choices.
func (c *Conversation) Active() bool {
	return c.Status() != StatusIdle
}

// Choices returns how many answers were given in this conversation.
func (c *Conversation) Choices() int {
	if c == nil {
		return 0
	}
	return c.choices
}

// Effect is the outcome of one choice.
type Effect struct {
	Option            Option
	Messages          []chat.ChatMessage
	RelationshipDelta int
	Relationship      int
	Task              *world.Task // Task created by the choice, if any
	TaskRoom          *world.Room // Room the task was created in
	Ended             bool        // Conversation closed after this choice
}

// Engine runs conversations and applies their effects to the world.
// At most one conversation is active at a time.
type Engine struct {
	world          *world.World
	active         *Conversation
	endAfterChoice bool
	logger         *slog.Logger
}

// NewEngine creates a dialogue engine for w.
func NewEngine(w *world.World, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{world: w, logger: logger}
}

// WithEndAfterChoice makes every conversation end implicitly after its first choice.
// Returns the Engine for method chaining
func (e *Engine) WithEndAfterChoice(end bool) *Engine {
	e.endAfterChoice = end
	return e
}

// Active returns the current conversation, or nil.
func (e *Engine) Active() *Conversation {
	if e.active == nil || !e.active.Active() {
		return nil
	}
	return e.active
}

// Begin greets p and returns the new conversation. An already active
// conversation is closed without a farewell.
func (e *Engine) Begin(p *world.Person) (*Conversation, []chat.ChatMessage) {
	if e.active != nil {
		e.active.status = StatusIdle
	}
	c := &Conversation{Person: p, status: StatusAwaitingChoice}
	e.active = c

	e.logger.Debug("Conversation started", "person", p.Key)

	msgs := []chat.ChatMessage{}
	if p.Description != "" {
		msgs = append(msgs, chat.Narration(narrateIntroducer, p.Label(), p.Description))
	}
	msgs = append(msgs, chat.Say(p.Name, LineGreeting))
	return c, msgs
}

// Choose applies opt to the conversation. Relationship changes are increases
// only: +2 for yes, +1 for smalltalk, nothing otherwise.
func (e *Engine) Choose(c *Conversation, opt Option) (Effect, error) {
	if !c.Active() {
		return Effect{}, ErrNoConversation
	}
	p := c.Person
	eff := Effect{Option: opt}

	switch opt {
	case OptionYes:
		eff.Messages = append(eff.Messages,
			chat.Reply(ReplyYes),
			chat.Say(p.Name, LineTaskOffer),
		)
		eff.Messages = append(eff.Messages, e.assignTask(p, &eff))
		eff.RelationshipDelta = YesPoints
	case OptionSmalltalk:
		eff.Messages = append(eff.Messages, chat.Reply(ReplySmalltalk))
		if p.Talkativeness > TalkativeThreshold {
			eff.Messages = append(eff.Messages, chat.Say(p.Name, LineChatty))
		} else {
			eff.Messages = append(eff.Messages, chat.Say(p.Name, LineTerse))
		}
		eff.RelationshipDelta = SmalltalkPoints
	case OptionNo:
		eff.Messages = append(eff.Messages,
			chat.Reply(ReplyNo),
			chat.Say(p.Name, LineDecline),
		)
	default:
		eff.Messages = append(eff.Messages, chat.Say(p.Name, LineFallback))
	}

	eff.Relationship = p.RaiseRelationship(eff.RelationshipDelta)
	if eff.RelationshipDelta > 0 {
		eff.Messages = append(eff.Messages,
			chat.Narration(narrateRelation, p.Name, eff.RelationshipDelta, eff.Relationship))
	}

	p.History = append(p.History, opt.String())
	c.choices++
	c.status = StatusResolved

	e.logger.Debug("Dialogue choice",
		"person", p.Key,
		"option", opt.String(),
		"relationship", eff.Relationship)

	if e.endAfterChoice {
		e.close(c)
		eff.Ended = true
	}
	return eff, nil
}

// End closes the conversation with a farewell. Ending an inactive or nil
// conversation does nothing.
func (e *Engine) End(c *Conversation) []chat.ChatMessage {
	if !c.Active() {
		return nil
	}
	e.close(c)
	e.logger.Debug("Conversation ended", "person", c.Person.Key, "choices", c.choices)
	return []chat.ChatMessage{chat.Say(c.Person.Name, LineFarewell)}
}

func (e *Engine) close(c *Conversation) {
	c.status = StatusIdle
	if e.active == c {
		e.active = nil
	}
}

// assignTask applies the task-assignment table for p. A task whose ID is
// already active in the destination room is not added twice.
func (e *Engine) assignTask(p *world.Person, eff *Effect) chat.ChatMessage {
	a, ok := e.world.AssignmentFor(p)
	if !ok {
		return chat.Narration(narrateNoTask, p.Name)
	}
	room, ok := e.world.Rooms[a.Room]
	if !ok {
		e.logger.Warn("Assignment points to unknown room", "person", p.Key, "room", a.Room)
		return chat.Narration(narrateNoTask, p.Name)
	}
	if room.HasTask(a.Task.ID) {
		return chat.Narration(narratePending, p.Name, a.Task.ID, a.Task.Name)
	}

	room.AddTask(a.Task)
	task := a.Task
	eff.Task = &task
	eff.TaskRoom = room

	e.logger.Info("Task assigned", "person", p.Key, "room", room.Key, "task_id", task.ID)
	return chat.Narration(narrateNewTask, p.Name, task.ID, task.Name)
}

// Describe renders an effect's messages as plain lines.
func (eff Effect) Describe() []string {
	lines := make([]string, 0, len(eff.Messages))
	for _, m := range eff.Messages {
		lines = append(lines, m.String())
	}
	return lines
}

// String implements fmt.Stringer for log output.
func (eff Effect) String() string {
	return fmt.Sprintf("%s (+%d → %d)", eff.Option, eff.RelationshipDelta, eff.Relationship)
}
