package utils

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 2, "he"},
		{"hello", 0, ""},
		{"日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		if got := TruncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("TruncateToWidth(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPadStyled(t *testing.T) {
	if got := PadStyled("ab", 5); got != "ab   " {
		t.Errorf("Expected padded text, got %q", got)
	}
	if got := PadStyled("\x1b[1mab\x1b[0m", 4); !strings.HasSuffix(got, "\x1b[0m  ") {
		t.Errorf("Expected padding after styled text, got %q", got)
	}
	if got := PadStyled("abcdef", 3); got != "abcdef" {
		t.Errorf("Expected text unchanged, got %q", got)
	}
}

func TestFitLines(t *testing.T) {
	got := FitLines([]string{"a", "b", "c"}, 2, 2)
	if got != "a \nb " {
		t.Errorf("Expected cut to 2 lines, got %q", got)
	}

	got = FitLines([]string{"a"}, 1, 3)
	if got != "a\n \n " {
		t.Errorf("Expected padding lines, got %q", got)
	}

	if got := FitLines([]string{"abcdef", "\x1b[1mbold text\x1b[0m"}, 4, 2); ansi.Strip(got) != "abcd\nbold" {
		t.Errorf("Expected wide lines cut to width, got %q", got)
	}

	if got := FitLines(nil, 5, 0); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}
