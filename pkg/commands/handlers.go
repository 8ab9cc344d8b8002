package commands

import (
	"fmt"
	"strings"

	"solar_cli/pkg/ai"
	"solar_cli/pkg/docs"
	"solar_cli/pkg/roi"
)

const historyPreviewRunes = 60

// ROIHandler handles the /roi command
type ROIHandler struct{}

func (h *ROIHandler) Name() string { return "/roi" }
func (h *ROIHandler) Description() string {
	return "Payback period: /roi <cost> <savings> [incentives]"
}

func (h *ROIHandler) Execute(ctx *Context) *Result {
	in := ctx.ROIDefaults
	if len(ctx.Args) > 0 {
		if len(ctx.Args) < 2 || len(ctx.Args) > 3 {
			return &Result{
				Title:   "ROI Calculator",
				Content: "Usage: /roi <system cost> <annual savings> [incentives]",
				Error:   fmt.Errorf("expected 2 or 3 arguments, got %d", len(ctx.Args)),
			}
		}
		parsed, err := roi.ParseInputs(ctx.Arg(0), ctx.Arg(1), ctx.Arg(2))
		if err != nil {
			return &Result{Title: "ROI Calculator", Content: err.Error(), Error: err}
		}
		in = parsed
	}

	if err := in.Validate(); err != nil {
		return &Result{Title: "ROI Calculator", Content: err.Error(), Error: err}
	}

	return &Result{
		Title:   "ROI Calculator",
		Content: roi.Calculate(in).Markdown(),
	}
}

// DocsHandler handles the /docs command
type DocsHandler struct{}

func (h *DocsHandler) Name() string        { return "/docs" }
func (h *DocsHandler) Description() string { return "Open the documentation view" }

func (h *DocsHandler) Execute(ctx *Context) *Result {
	return &Result{
		Title:   "Documentation",
		Content: docs.Markdown(),
		Action:  ResultActionShowDocs,
	}
}

// NewSessionHandler handles the /new command
type NewSessionHandler struct{}

func (h *NewSessionHandler) Name() string        { return "/new" }
func (h *NewSessionHandler) Description() string { return "Start a new conversation" }

func (h *NewSessionHandler) Execute(ctx *Context) *Result {
	return &Result{
		Title:   "New Session",
		Content: "Started a new conversation.",
		Action:  ResultActionNewSession,
	}
}

// HistoryHandler handles the /history command
type HistoryHandler struct{}

func (h *HistoryHandler) Name() string        { return "/history" }
func (h *HistoryHandler) Description() string { return "List the questions asked in this session" }

func (h *HistoryHandler) Execute(ctx *Context) *Result {
	if ctx.Session == nil || ctx.Session.Len() == 0 {
		return &Result{
			Title:   "History",
			Content: "No questions in this session yet.",
		}
	}

	turns := ctx.Session.Turns()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Session %s: %d turns\n\n", ctx.Session.ShortID(), len(turns))
	n := 0
	for _, t := range turns {
		if t.Role != ai.RoleUser {
			continue
		}
		n++
		fmt.Fprintf(&sb, "%d. %s\n", n, preview(t.Content, historyPreviewRunes))
	}

	return &Result{
		Title:   "History",
		Content: sb.String(),
	}
}

func preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// HelpHandler handles the /help command
type HelpHandler struct {
	dispatcher *Dispatcher
}

func (h *HelpHandler) Name() string        { return "/help" }
func (h *HelpHandler) Description() string { return "Show help" }

func (h *HelpHandler) Execute(ctx *Context) *Result {
	var sb strings.Builder
	sb.WriteString("Ask any question about solar panels, installation, maintenance, costs or regulations.\n\n")
	sb.WriteString("Available Commands:\n\n")
	if h.dispatcher != nil {
		for _, handler := range h.dispatcher.Handlers() {
			fmt.Fprintf(&sb, "- `%s` %s\n", handler.Name(), handler.Description())
		}
	}
	sb.WriteString(`
Shortcuts:

- Tab / Shift+Tab: switch view
- Enter: send question or calculate
- Ctrl+Y: copy the last reply
- PgUp / PgDn: scroll
- Ctrl+C: quit
`)

	return &Result{
		Title:   "Help",
		Content: sb.String(),
	}
}
