package chat

import "fmt"

const (
	ChatRoleUser   = "user"      // The player
	ChatRoleAgent  = "assistant" // NPC speech
	ChatRoleSystem = "system"    // Narration and rejected actions
)

// PlayerName is the speaker label used for the player's own lines.
const PlayerName = "Du"

// DefaultLogLimit bounds how many messages a Log keeps.
const DefaultLogLimit = 500

// ChatMessage is a single line of the scrolling text log.
type ChatMessage struct {
	Role    string `json:"role"`              // "user", "assistant", "system"
	Speaker string `json:"speaker,omitempty"` // Who says it; empty for narration
	Content string `json:"content"`
}

// String renders the message the way the text log shows it.
// Speech is quoted, narration is printed as is.
func (m ChatMessage) String() string {
	if m.Speaker == "" || m.Role == ChatRoleSystem {
		return m.Content
	}
	return fmt.Sprintf("%s: \"%s\"", m.Speaker, m.Content)
}

// Narration creates a system message.
func Narration(format string, a ...any) ChatMessage {
	return ChatMessage{Role: ChatRoleSystem, Content: fmt.Sprintf(format, a...)}
}

// Say creates a line spoken by an NPC.
func Say(speaker, content string) ChatMessage {
	return ChatMessage{Role: ChatRoleAgent, Speaker: speaker, Content: content}
}

// Reply creates a line spoken by the player.
func Reply(content string) ChatMessage {
	return ChatMessage{Role: ChatRoleUser, Speaker: PlayerName, Content: content}
}

// Log is a bounded, append-only message history. The oldest messages are
// dropped once the limit is reached.
type Log struct {
	messages []ChatMessage
	limit    int
}

// NewLog creates a log that keeps at most limit messages. A limit of zero or
// less uses DefaultLogLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return &Log{limit: limit}
}

// Add appends messages to the log.
func (l *Log) Add(msgs ...ChatMessage) {
	l.messages = append(l.messages, msgs...)
	if over := len(l.messages) - l.limit; over > 0 {
		l.messages = append([]ChatMessage(nil), l.messages[over:]...)
	}
}

// Messages returns a copy of all messages, oldest first.
func (l *Log) Messages() []ChatMessage {
	out := make([]ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Last returns a copy of the n most recent messages.
func (l *Log) Last(n int) []ChatMessage {
	if n > len(l.messages) {
		n = len(l.messages)
	}
	if n <= 0 {
		return nil
	}
	out := make([]ChatMessage, n)
	copy(out, l.messages[len(l.messages)-n:])
	return out
}

// Len returns the number of messages in the log.
func (l *Log) Len() int {
	return len(l.messages)
}
