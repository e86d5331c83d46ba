package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jwebster45206/teletext/pkg/chat"
	"github.com/jwebster45206/teletext/pkg/dialogue"
	"github.com/jwebster45206/teletext/pkg/scene"
	"github.com/jwebster45206/teletext/pkg/state"
	"github.com/jwebster45206/teletext/pkg/world"
)

// Text log lines of the play scene.
const (
	lineWelcome      = "Willkommen bei %s! Du stehst im %s."
	lineEntered      = "Du bist jetzt im %s."
	lineNotConnected = "Du kannst nicht dorthin gehen."
	lineTaskDone     = "Aufgabe '%s' ausgeführt!"
	lineBadTask      = "Ungültige Aufgaben-ID."
	lineNobodyHere   = "Hier ist gerade niemand."
	lineNotHere      = "Diese Person ist nicht hier."
	lineNoTasks      = "Keine Aufgaben verfügbar."
	lineTasksHeader  = "Aufgaben im %s:"
	lineNoTalk       = "Du sprichst gerade mit niemandem."
	lineRelationship = "%s: Beziehung %d"
)

// PlayScene is the exploration and conversation mode. It owns the world of
// the running session.
type PlayScene struct {
	g        *Game
	state    *state.GameState
	dialogue *dialogue.Engine
	log      *chat.Log
	elapsed  time.Duration
}

func newPlayScene(g *Game, w *world.World) *PlayScene {
	p := &PlayScene{
		g:        g,
		state:    state.NewGameState(w).WithLogger(g.logger),
		dialogue: dialogue.NewEngine(w, g.logger).WithEndAfterChoice(g.endAfterChoice),
		log:      g.newLog(),
	}
	p.state.ID = g.id
	p.log.Add(chat.Narration(lineWelcome, w.Title, p.state.CurrentRoom().Name))
	return p
}

func (p *PlayScene) Kind() scene.Kind { return scene.KindPlaying }

func (p *PlayScene) Handle(ctx context.Context, in Intent) error {
	switch in := in.(type) {
	case Move:
		return p.move(ctx, in.Room)
	case RunTask:
		return p.runTask(in.ID)
	case Talk:
		return p.talk(ctx, in.Person)
	case Choose:
		return p.choose(in.Option)
	case EndConversation:
		p.log.Add(p.dialogue.End(p.dialogue.Active())...)
		return nil
	case ShowTasks:
		p.showTasks()
		return nil
	case Status:
		p.showStatus()
		return nil
	case TogglePause:
		p.g.pause(p)
		return nil
	default:
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedIntent, in.Name(), p.Kind())
	}
}

func (p *PlayScene) move(ctx context.Context, target string) error {
	room, err := p.state.MoveTo(target)
	if err != nil {
		p.log.Add(chat.Narration(lineNotConnected))
		return err
	}
	// Walking away ends a conversation without a farewell.
	p.dialogue.End(p.dialogue.Active())

	p.log.Add(chat.Narration(lineEntered, room.Name))
	p.g.notify(ctx, Notification{Type: NotificationRoomEntered, Room: room.Name})
	return nil
}

func (p *PlayScene) runTask(id int) error {
	t, err := p.state.ExecuteCurrentTask(id)
	if err != nil {
		p.log.Add(chat.Narration(lineBadTask))
		return err
	}
	p.log.Add(chat.Narration(lineTaskDone, t.Name))
	return nil
}

func (p *PlayScene) talk(ctx context.Context, name string) error {
	person, err := p.state.FindPerson(name)
	switch {
	case errors.Is(err, state.ErrNobodyHere):
		p.log.Add(chat.Narration(lineNobodyHere))
		return err
	case err != nil:
		p.log.Add(chat.Narration(lineNotHere))
		return err
	}

	_, msgs := p.dialogue.Begin(person)
	p.log.Add(msgs...)
	p.g.notify(ctx, Notification{Type: NotificationPersonFocused, Person: person.Name})
	return nil
}

func (p *PlayScene) choose(opt dialogue.Option) error {
	c := p.dialogue.Active()
	eff, err := p.dialogue.Choose(c, opt)
	if err != nil {
		p.log.Add(chat.Narration(lineNoTalk))
		return err
	}
	p.log.Add(eff.Messages...)
	return nil
}

func (p *PlayScene) showTasks() {
	room := p.state.CurrentRoom()
	if len(room.Tasks) == 0 {
		p.log.Add(chat.Narration(lineNoTasks))
		return
	}
	lines := make([]string, 0, len(room.Tasks)+1)
	lines = append(lines, fmt.Sprintf(lineTasksHeader, room.Name))
	for _, t := range room.Tasks {
		lines = append(lines, "  "+t.String())
	}
	p.log.Add(chat.Narration("%s", strings.Join(lines, "\n")))
}

func (p *PlayScene) showStatus() {
	for _, s := range p.state.Relationships() {
		p.log.Add(chat.Narration(lineRelationship, s.Name, s.Relationship))
	}
}

func (p *PlayScene) Update(dt time.Duration) {
	p.elapsed += dt
}

func (p *PlayScene) View() Frame {
	room := p.state.Snapshot()
	f := Frame{
		Scene:   scene.KindPlaying,
		Title:   p.g.title,
		Room:    &room,
		Log:     p.log.Messages(),
		Elapsed: p.elapsed,
	}
	if c := p.dialogue.Active(); c != nil {
		f.Conversation = &ConversationView{
			Person:  c.Person.Snapshot(),
			Status:  c.Status(),
			Options: append([]string(nil), DialogueOptions...),
		}
	}
	return f
}
