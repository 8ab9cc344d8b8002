package ai

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestHistoryWindow_KeepsMostRecent(t *testing.T) {
	prior := []Message{
		{Role: RoleUser, Content: "q1"},
		{Role: RoleAssistant, Content: "a1"},
		{Role: RoleUser, Content: "q2"},
		{Role: RoleAssistant, Content: "a2"},
		{Role: RoleUser, Content: "q3"},
		{Role: RoleAssistant, Content: "a3"},
	}

	window := HistoryWindow(prior, 4)
	if len(window) != 4 {
		t.Fatalf("Expected 4 messages, got %d", len(window))
	}
	if window[0].Content != "q2" || window[3].Content != "a3" {
		t.Fatalf("Expected q2..a3, got %+v", window)
	}
}

func TestHistoryWindow_NeverStartsWithAssistant(t *testing.T) {
	prior := []Message{
		{Role: RoleUser, Content: "q1"},
		{Role: RoleAssistant, Content: "a1"},
		{Role: RoleUser, Content: "q2"},
		{Role: RoleAssistant, Content: "a2"},
	}

	window := HistoryWindow(prior, 3)
	if len(window) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(window))
	}
	if window[0].Role != RoleUser {
		t.Fatalf("Expected window to start with a user message, got %s", window[0].Role)
	}
}

func TestHistoryWindow_DropsSystemMessages(t *testing.T) {
	prior := []Message{
		{Role: RoleSystem, Content: "old system"},
		{Role: RoleUser, Content: "q1"},
	}

	window := HistoryWindow(prior, 0)
	if len(window) != 1 || window[0].Content != "q1" {
		t.Fatalf("Expected only the user message, got %+v", window)
	}
}

func TestNormalizePrompt(t *testing.T) {
	got, truncated := NormalizePrompt("  How much do panels cost?\n", 0)
	if got != "How much do panels cost?" {
		t.Fatalf("Expected trimmed prompt, got %q", got)
	}
	if truncated {
		t.Fatal("Expected no truncation")
	}
}

func TestNormalizePrompt_TruncatesOnRuneBoundary(t *testing.T) {
	prompt := strings.Repeat("é", 10) // 20 bytes

	got, truncated := NormalizePrompt(prompt, 5)
	if !truncated {
		t.Fatal("Expected truncation")
	}
	if !utf8.ValidString(got) {
		t.Fatalf("Expected valid UTF-8, got %q", got)
	}
	if len(got) != 4 {
		t.Fatalf("Expected 4 bytes, got %d", len(got))
	}
}
