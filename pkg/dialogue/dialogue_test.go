package dialogue

import (
	"log/slog"
	"os"
	"testing"

	"github.com/jwebster45206/teletext/pkg/chat"
	"github.com/jwebster45206/teletext/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *world.World) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	w := world.Default()
	return NewEngine(w, logger), w
}

func person(t *testing.T, w *world.World, name string) *world.Person {
	t.Helper()
	p, ok := w.Person(name)
	require.True(t, ok, name)
	return p
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		input string
		want  Option
	}{
		{"ja", OptionYes},
		{" JA ", OptionYes},
		{"yes", OptionYes},
		{"nein", OptionNo},
		{"No", OptionNo},
		{"Smalltalk", OptionSmalltalk},
		{"vielleicht", OptionUnknown},
		{"", OptionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOption(tt.input))
		})
	}
}

func TestBegin_Greets(t *testing.T) {
	e, w := newTestEngine(t)
	holger := person(t, w, "holger")

	c, msgs := e.Begin(holger)
	require.NotNil(t, c)
	assert.Equal(t, StatusAwaitingChoice, c.Status())
	assert.Same(t, c, e.Active())
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	assert.Equal(t, chat.Say("Holger", LineGreeting), last)
}

func TestBegin_ReplacesActiveConversation(t *testing.T) {
	e, w := newTestEngine(t)
	first, _ := e.Begin(person(t, w, "flo"))
	second, _ := e.Begin(person(t, w, "kirsten"))

	assert.False(t, first.Active())
	assert.True(t, second.Active())
	assert.Same(t, second, e.Active())

	_, err := e.Choose(first, OptionYes)
	assert.ErrorIs(t, err, ErrNoConversation)
}

func TestChoose_RelationshipDeltas(t *testing.T) {
	tests := []struct {
		name   string
		option Option
		delta  int
	}{
		{"yes", OptionYes, 2},
		{"smalltalk", OptionSmalltalk, 1},
		{"no", OptionNo, 0},
		{"unknown", OptionUnknown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, w := newTestEngine(t)
			p := person(t, w, "kirsten")
			c, _ := e.Begin(p)

			eff, err := e.Choose(c, tt.option)
			require.NoError(t, err)
			assert.Equal(t, tt.delta, eff.RelationshipDelta)
			assert.Equal(t, tt.delta, eff.Relationship)
			assert.Equal(t, tt.delta, p.Relationship)
		})
	}
}

func TestChoose_RelationshipOnlyIncreases(t *testing.T) {
	e, w := newTestEngine(t)
	p := person(t, w, "flo")
	c, _ := e.Begin(p)

	prev := p.Relationship
	for _, opt := range []Option{OptionYes, OptionNo, OptionSmalltalk, OptionUnknown, OptionYes, OptionNo} {
		_, err := e.Choose(c, opt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Relationship, prev)
		prev = p.Relationship
	}
	assert.Equal(t, 2+1+2, p.Relationship)
	assert.Equal(t, []string{"yes", "no", "smalltalk", "unknown", "yes", "no"}, p.History)
	assert.Equal(t, 6, c.Choices())
}

func TestChoose_YesCreatesAssignedTask(t *testing.T) {
	e, w := newTestEngine(t)
	holger := person(t, w, "holger")
	post, _ := w.Room("post")

	c, _ := e.Begin(holger)
	eff, err := e.Choose(c, OptionYes)
	require.NoError(t, err)

	require.NotNil(t, eff.Task)
	assert.Equal(t, 10, eff.Task.ID)
	assert.Equal(t, "Brief abgeben", eff.Task.Name)
	assert.Same(t, post, eff.TaskRoom)
	assert.True(t, post.HasTask(10))
	assert.Equal(t, 2, holger.Relationship)

	lines := eff.Describe()
	assert.Contains(t, lines, `Du: "Ja."`)
	assert.Contains(t, lines, "Holger gibt dir die Aufgabe: [10] Brief abgeben")
	assert.Contains(t, lines, "(Beziehung zu Holger +2 → 2)")
}

func TestChoose_YesDoesNotDuplicatePendingTask(t *testing.T) {
	e, w := newTestEngine(t)
	flo := person(t, w, "flo")
	printer, _ := w.Room("drucker")
	before := len(printer.Tasks)

	c, _ := e.Begin(flo)
	_, err := e.Choose(c, OptionYes)
	require.NoError(t, err)
	eff, err := e.Choose(c, OptionYes)
	require.NoError(t, err)

	assert.Nil(t, eff.Task)
	assert.Len(t, printer.Tasks, before+1)
	assert.Equal(t, 4, flo.Relationship)
	assert.Contains(t, eff.Describe(), "Flo hat dir diese Aufgabe schon gegeben: [11] Dokument drucken")

	printer.RemoveTask(11)
	eff, err = e.Choose(c, OptionYes)
	require.NoError(t, err)
	require.NotNil(t, eff.Task, "a completed task can be handed out again")
}

func TestChoose_YesWithoutAssignment(t *testing.T) {
	w, err := world.Build(world.Seed{
		Hub:     "a",
		Persons: []world.PersonSeed{{Key: "gast", Name: "Gast"}},
		Rooms:   []world.RoomSeed{{Key: "a", Name: "A", Persons: []string{"gast"}}},
	})
	require.NoError(t, err)
	e := NewEngine(w, nil)
	gast, _ := w.Person("gast")
	a, _ := w.Room("a")

	c, _ := e.Begin(gast)
	eff, err := e.Choose(c, OptionYes)
	require.NoError(t, err)

	assert.Nil(t, eff.Task)
	assert.Empty(t, a.Tasks)
	assert.Equal(t, 2, gast.Relationship)
	assert.Contains(t, eff.Describe(), "Gast hat aktuell keine Aufgabe für dich.")
}

func TestChoose_SmalltalkThreshold(t *testing.T) {
	tests := []struct {
		name          string
		talkativeness int
		want          string
	}{
		{"chatty", 7, LineChatty},
		{"just above", 4, LineChatty},
		{"at threshold", 3, LineTerse},
		{"quiet", 0, LineTerse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			p := &world.Person{Key: "p", Name: "P", Talkativeness: tt.talkativeness}
			c, _ := e.Begin(p)

			eff, err := e.Choose(c, OptionSmalltalk)
			require.NoError(t, err)
			assert.Contains(t, eff.Messages, chat.Say("P", tt.want))
			assert.Equal(t, 1, p.Relationship)
		})
	}
}

func TestChoose_NoAndFallbackLines(t *testing.T) {
	e, w := newTestEngine(t)
	k := person(t, w, "kirsten")
	c, _ := e.Begin(k)

	eff, err := e.Choose(c, OptionNo)
	require.NoError(t, err)
	assert.Equal(t, []chat.ChatMessage{chat.Reply(ReplyNo), chat.Say("Kirsten", LineDecline)}, eff.Messages)

	eff, err = e.Choose(c, OptionUnknown)
	require.NoError(t, err)
	assert.Equal(t, []chat.ChatMessage{chat.Say("Kirsten", LineFallback)}, eff.Messages)
	assert.Equal(t, 0, k.Relationship)
}

func TestChoose_WithoutConversation(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.Choose(nil, OptionYes)
	assert.ErrorIs(t, err, ErrNoConversation)
}

func TestEnd_Idempotent(t *testing.T) {
	e, w := newTestEngine(t)
	c, _ := e.Begin(person(t, w, "holger"))

	msgs := e.End(c)
	assert.Equal(t, []chat.ChatMessage{chat.Say("Holger", LineFarewell)}, msgs)
	assert.Equal(t, StatusIdle, c.Status())
	assert.Nil(t, e.Active())

	assert.Nil(t, e.End(c))
	assert.Nil(t, e.End(nil))

	_, err := e.Choose(c, OptionYes)
	assert.ErrorIs(t, err, ErrNoConversation)
}

func TestEndAfterChoice(t *testing.T) {
	e, w := newTestEngine(t)
	e.WithEndAfterChoice(true)
	c, _ := e.Begin(person(t, w, "flo"))

	eff, err := e.Choose(c, OptionSmalltalk)
	require.NoError(t, err)
	assert.True(t, eff.Ended)
	assert.False(t, c.Active())
	assert.Nil(t, e.Active())
	assert.Nil(t, e.End(c))
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "awaiting_choice", StatusAwaitingChoice.String())
	assert.Equal(t, "resolved", StatusResolved.String())
	assert.Equal(t, "smalltalk", OptionSmalltalk.String())
}
