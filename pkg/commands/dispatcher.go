package commands

import (
	"sort"
	"strings"
)

// ResultAction tells the UI what to do after showing a result.
type ResultAction string

const (
	ResultActionNone       ResultAction = ""
	ResultActionShowDocs   ResultAction = "show_docs"
	ResultActionNewSession ResultAction = "new_session"
)

// Result represents the result of a command execution
type Result struct {
	Title   string
	Content string // markdown
	Error   error
	Action  ResultAction
}

// Handler is the interface for command handlers
type Handler interface {
	Execute(ctx *Context) *Result
	Name() string
	Description() string
}

// Dispatcher routes commands to their handlers
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher creates a new command dispatcher
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
	}

	d.Register(&ROIHandler{})
	d.Register(&DocsHandler{})
	d.Register(&NewSessionHandler{})
	d.Register(&HistoryHandler{})
	d.Register(&HelpHandler{dispatcher: d})

	return d
}

// Register adds a handler to the dispatcher
func (d *Dispatcher) Register(h Handler) {
	d.handlers[h.Name()] = h
}

// IsCommand reports whether chat input should be dispatched instead of
// sent to the assistant.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "/")
}

// Parse splits a command line into its name and arguments.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// DispatchLine parses line and executes the named command with its
// arguments bound to ctx.
func (d *Dispatcher) DispatchLine(line string, ctx *Context) *Result {
	name, args := Parse(line)
	ctx.Args = args
	return d.Dispatch(name, ctx)
}

// Dispatch executes a command by name
func (d *Dispatcher) Dispatch(cmdName string, ctx *Context) *Result {
	handler, ok := d.handlers[cmdName]
	if !ok {
		return &Result{
			Title:   "Error",
			Content: "Unknown command: " + cmdName + "\n\nType /help to list commands.",
		}
	}

	return handler.Execute(ctx)
}

// GetHandler returns a handler by name
func (d *Dispatcher) GetHandler(cmdName string) (Handler, bool) {
	h, ok := d.handlers[cmdName]
	return h, ok
}

// Handlers returns every registered handler sorted by name.
func (d *Dispatcher) Handlers() []Handler {
	out := make([]Handler, 0, len(d.handlers))
	for _, h := range d.handlers {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
