package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessage_String(t *testing.T) {
	tests := []struct {
		name     string
		msg      ChatMessage
		expected string
	}{
		{
			name:     "npc speech is quoted",
			msg:      Say("Holger", "Bis später!"),
			expected: `Holger: "Bis später!"`,
		},
		{
			name:     "player reply",
			msg:      Reply("Ja."),
			expected: `Du: "Ja."`,
		},
		{
			name:     "narration",
			msg:      Narration("Du bist jetzt im %s.", "Flur"),
			expected: "Du bist jetzt im Flur.",
		},
		{
			name:     "system message ignores speaker",
			msg:      ChatMessage{Role: ChatRoleSystem, Speaker: "x", Content: "Hinweis"},
			expected: "Hinweis",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.msg.String())
		})
	}
}

func TestLog_Bounded(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Add(Narration("line %d", i))
	}
	require.Equal(t, 3, l.Len())

	msgs := l.Messages()
	assert.Equal(t, "line 2", msgs[0].Content)
	assert.Equal(t, "line 4", msgs[2].Content)
}

func TestLog_Last(t *testing.T) {
	l := NewLog(0)
	assert.Nil(t, l.Last(2))

	l.Add(Narration("a"), Narration("b"), Narration("c"))
	last := l.Last(2)
	require.Len(t, last, 2)
	assert.Equal(t, "b", last[0].Content)
	assert.Equal(t, "c", last[1].Content)
	assert.Len(t, l.Last(10), 3)
}

func TestLog_MessagesIsCopy(t *testing.T) {
	l := NewLog(10)
	l.Add(Narration("original"))
	msgs := l.Messages()
	msgs[0].Content = "changed"
	assert.Equal(t, "original", l.Messages()[0].Content)
}

func TestNewLog_DefaultLimit(t *testing.T) {
	l := NewLog(-1)
	for i := 0; i < DefaultLogLimit+10; i++ {
		l.Add(Narration("%s", fmt.Sprint(i)))
	}
	assert.Equal(t, DefaultLogLimit, l.Len())
}
