package welcome

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWelcomeMessage_ContainsShortcuts(t *testing.T) {
	msg := WelcomeMessage()

	for _, s := range Shortcuts {
		if !strings.Contains(msg, s.Key) {
			t.Errorf("Expected welcome message to contain shortcut %q", s.Key)
		}
	}
}

func TestWelcomeMessage_ContainsTitle(t *testing.T) {
	msg := WelcomeMessage()
	if !strings.Contains(msg, "Solar Industry Assistant") {
		t.Error("Expected welcome message to contain title")
	}
}

func TestWelcomeMessage_ContainsBorder(t *testing.T) {
	msg := WelcomeMessage()
	if !strings.Contains(msg, "╭") || !strings.Contains(msg, "╰") {
		t.Error("Expected welcome message to contain box border characters")
	}
}

func TestWelcomeMessage_LinesAligned(t *testing.T) {
	lines := strings.Split(WelcomeMessage(), "\n")
	want := ansi.StringWidth(lines[0])
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != want {
			t.Errorf("Line %d has width %d, expected %d: %q", i, got, want, ansi.Strip(line))
		}
	}
}
