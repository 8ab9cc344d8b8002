package assistant

import (
	"time"

	"solar_cli/pkg/ai"

	"github.com/google/uuid"
)

// Turn is one immutable entry of a conversation.
type Turn struct {
	Role    ai.Role
	Content string
	At      time.Time
	// Failed marks an assistant turn that carries an error display string.
	Failed bool
}

// Session owns the conversation history of one interactive run.
// It is not safe for concurrent use; the UI mutates it from one goroutine.
type Session struct {
	ID      string
	Started time.Time

	turns []Turn
	now   func() time.Time
}

// NewSession starts an empty session with a fresh id.
func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
		now:     time.Now,
	}
}

// ShortID is the first block of the session id.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// Record appends the user prompt followed by the assistant outcome.
func (s *Session) Record(prompt string, result Result) {
	at := s.now()
	s.turns = append(s.turns,
		Turn{Role: ai.RoleUser, Content: prompt, At: at},
		Turn{Role: ai.RoleAssistant, Content: result.Display(), At: at, Failed: !result.OK()},
	)
}

// Turns returns a copy of the history in chronological order.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len is the number of recorded turns.
func (s *Session) Len() int {
	return len(s.turns)
}

// LastReply returns the most recent successful assistant content.
func (s *Session) LastReply() (string, bool) {
	for i := len(s.turns) - 1; i >= 0; i-- {
		t := s.turns[i]
		if t.Role == ai.RoleAssistant && !t.Failed {
			return t.Content, true
		}
	}
	return "", false
}

// Messages converts the history to chat messages. Failed exchanges are
// skipped so error text is never replayed to the model.
func Messages(turns []Turn) []ai.Message {
	msgs := make([]ai.Message, 0, len(turns))
	for i := 0; i < len(turns); i++ {
		t := turns[i]
		if t.Role == ai.RoleUser && i+1 < len(turns) && turns[i+1].Failed {
			i++
			continue
		}
		if t.Failed {
			continue
		}
		msgs = append(msgs, ai.Message{Role: t.Role, Content: t.Content})
	}
	return msgs
}
