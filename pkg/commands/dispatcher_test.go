package commands

import (
	"strings"
	"testing"

	"solar_cli/pkg/assistant"
	"solar_cli/pkg/roi"
)

var testDefaults = roi.Inputs{SystemCost: 20000, AnnualSavings: 1500, Incentives: 5000}

func TestNewContext(t *testing.T) {
	sess := assistant.NewSession()
	ctx := NewContext(sess, testDefaults)

	if ctx.Session != sess {
		t.Error("Expected Session to be set")
	}
	if ctx.ROIDefaults != testDefaults {
		t.Errorf("Expected defaults %+v, got %+v", testDefaults, ctx.ROIDefaults)
	}
	if ctx.Arg(0) != "" {
		t.Errorf("Expected empty arg, got %q", ctx.Arg(0))
	}
}

func TestNewDispatcher(t *testing.T) {
	d := NewDispatcher()

	if d == nil {
		t.Fatal("NewDispatcher() returned nil")
	}

	commands := []string{"/roi", "/docs", "/new", "/history", "/help"}
	for _, cmd := range commands {
		if _, ok := d.GetHandler(cmd); !ok {
			t.Errorf("Expected handler for %s to be registered", cmd)
		}
	}
	if len(d.Handlers()) != len(commands) {
		t.Errorf("Expected %d handlers, got %d", len(commands), len(d.Handlers()))
	}
}

func TestParse(t *testing.T) {
	name, args := Parse("  /ROI 20000  1500 5000 ")
	if name != "/roi" {
		t.Fatalf("Expected '/roi', got %q", name)
	}
	if len(args) != 3 || args[2] != "5000" {
		t.Fatalf("Unexpected args %v", args)
	}

	if name, args := Parse("   "); name != "" || args != nil {
		t.Fatalf("Expected empty parse, got %q %v", name, args)
	}
}

func TestIsCommand(t *testing.T) {
	if !IsCommand(" /help") {
		t.Error("Expected /help to be a command")
	}
	if IsCommand("what is /net metering?") {
		t.Error("Expected a question not to be a command")
	}
}

func TestDispatcher_Dispatch_UnknownCommand(t *testing.T) {
	d := NewDispatcher()
	ctx := NewContext(nil, testDefaults)

	result := d.Dispatch("/unknown", ctx)

	if result == nil {
		t.Fatal("Expected result for unknown command")
	}
	if result.Title != "Error" {
		t.Errorf("Expected title 'Error', got %q", result.Title)
	}
	if !strings.Contains(result.Content, "Unknown command: /unknown") {
		t.Errorf("Unexpected content %q", result.Content)
	}
}

func TestDispatcher_ROIWithArguments(t *testing.T) {
	d := NewDispatcher()
	ctx := NewContext(nil, testDefaults)

	result := d.DispatchLine("/roi 10000 2000", ctx)

	if result.Error != nil {
		t.Fatalf("Unexpected error: %v", result.Error)
	}
	if !strings.Contains(result.Content, "Estimated ROI Period: 5.0 years") {
		t.Errorf("Unexpected content %q", result.Content)
	}
}

func TestDispatcher_ROIDefaults(t *testing.T) {
	d := NewDispatcher()
	ctx := NewContext(nil, testDefaults)

	result := d.DispatchLine("/roi", ctx)

	if !strings.Contains(result.Content, "Estimated ROI Period: 10.0 years") {
		t.Errorf("Expected defaults to be used, got %q", result.Content)
	}
}

func TestDispatcher_ROIErrors(t *testing.T) {
	d := NewDispatcher()

	tests := []struct {
		line    string
		wantErr string
	}{
		{line: "/roi 1", wantErr: "Usage: /roi"},
		{line: "/roi abc 100", wantErr: "invalid system cost"},
		{line: "/roi 100 -5", wantErr: "annual savings must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result := d.DispatchLine(tt.line, NewContext(nil, testDefaults))
			if result.Error == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(result.Content, tt.wantErr) {
				t.Fatalf("Expected content containing %q, got %q", tt.wantErr, result.Content)
			}
		})
	}
}

func TestDispatcher_DocsAndNew(t *testing.T) {
	d := NewDispatcher()
	ctx := NewContext(nil, testDefaults)

	if got := d.Dispatch("/docs", ctx).Action; got != ResultActionShowDocs {
		t.Errorf("Expected show_docs action, got %q", got)
	}
	if got := d.Dispatch("/new", ctx).Action; got != ResultActionNewSession {
		t.Errorf("Expected new_session action, got %q", got)
	}
}

func TestDispatcher_History(t *testing.T) {
	d := NewDispatcher()
	sess := assistant.NewSession()
	ctx := NewContext(sess, testDefaults)

	if got := d.Dispatch("/history", ctx).Content; !strings.Contains(got, "No questions") {
		t.Fatalf("Expected empty history message, got %q", got)
	}

	sess.Record("How do I clean my panels?", assistant.Success("Use water."))
	got := d.Dispatch("/history", ctx).Content
	if !strings.Contains(got, "2 turns") || !strings.Contains(got, "1. How do I clean my panels?") {
		t.Fatalf("Unexpected history content %q", got)
	}
}

func TestDispatcher_Dispatch_HelpCommand(t *testing.T) {
	d := NewDispatcher()
	ctx := NewContext(nil, testDefaults)

	result := d.Dispatch("/help", ctx)

	if result == nil {
		t.Fatal("Expected result for /help command")
	}
	if result.Title != "Help" {
		t.Errorf("Expected title 'Help', got %q", result.Title)
	}
	for _, cmd := range []string{"/roi", "/docs", "/new", "/history"} {
		if !strings.Contains(result.Content, cmd) {
			t.Errorf("Expected help to list %s", cmd)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short\nquestion", 60); got != "short question" {
		t.Fatalf("Expected whitespace collapsed, got %q", got)
	}
	long := strings.Repeat("a", 80)
	if got := preview(long, 10); got != "aaaaaaa..." {
		t.Fatalf("Expected truncation, got %q", got)
	}
}
