package ai

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultHistoryMessages = 10
	DefaultPromptBytes     = 16000
)

// HistoryWindow returns at most maxMessages of the most recent prior
// messages. The window never starts with an assistant message and never
// carries system messages.
func HistoryWindow(prior []Message, maxMessages int) []Message {
	if maxMessages <= 0 {
		maxMessages = DefaultHistoryMessages
	}

	filtered := make([]Message, 0, len(prior))
	for _, msg := range prior {
		if msg.Role == RoleSystem {
			continue
		}
		filtered = append(filtered, msg)
	}
	if len(filtered) > maxMessages {
		filtered = filtered[len(filtered)-maxMessages:]
	}
	for len(filtered) > 0 && filtered[0].Role == RoleAssistant {
		filtered = filtered[1:]
	}
	return filtered
}

// NormalizePrompt trims surrounding whitespace, drops invalid UTF-8 and
// keeps at most maxBytes of the prompt. The boolean reports truncation.
func NormalizePrompt(prompt string, maxBytes int) (string, bool) {
	clean := strings.TrimSpace(strings.ToValidUTF8(prompt, ""))
	if maxBytes <= 0 || len(clean) <= maxBytes {
		return clean, false
	}

	end := maxBytes
	for end > 0 && !utf8.ValidString(clean[:end]) {
		end--
	}
	return clean[:end], true
}
