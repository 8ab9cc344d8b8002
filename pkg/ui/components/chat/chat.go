package chat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"solar_cli/pkg/assistant"
	"solar_cli/pkg/ui/components/utils"
	"solar_cli/pkg/ui/components/viewport"
	"solar_cli/pkg/ui/components/welcome"
	"solar_cli/pkg/ui/markdown"
	"solar_cli/pkg/ui/styles"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	panelBorderSize = 1
	panelPaddingH   = 1
	inputHeight     = 3
	footerLabel     = "Enter Send | PgUp/PgDn Scroll | Ctrl+Y Copy | /help Commands"
	thinkingLabel   = "Thinking..."
)

// EntryKind identifies how a transcript entry is rendered.
type EntryKind int

const (
	EntryUser EntryKind = iota
	EntryAssistant
	EntryError
	EntryNotice
)

// Entry is one block of the chat transcript.
type Entry struct {
	Kind    EntryKind
	Title   string
	Content string
}

// SubmitMsg is returned when the user submits the input box.
type SubmitMsg struct {
	Content string
}

// CopiedMsg reports the outcome of a copy request.
type CopiedMsg struct {
	Chars int
}

// Panel is the chat view: a scrollable transcript above a text input.
type Panel struct {
	width   int
	height  int
	input   textarea.Model
	view    viewport.ContentViewport
	entries []Entry
	pending bool

	clipboard io.Writer
}

// NewPanel creates a chat panel with a focused input.
func NewPanel() *Panel {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about solar energy..."
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	ta.Focus()

	p := &Panel{
		input:     ta,
		view:      viewport.NewContentViewport(true),
		clipboard: os.Stdout,
	}
	p.view.SetRenderFunc(p.renderTranscript)
	return p
}

// SetSize sets the panel dimensions including its border.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.SetWidth(p.contentWidth())
	p.view.SetSize(p.contentWidth(), p.transcriptHeight())
}

// SetClipboardWriter redirects OSC52 copy sequences.
func (p *Panel) SetClipboardWriter(w io.Writer) {
	p.clipboard = w
}

// Focus focuses the input box.
func (p *Panel) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur removes focus from the input box.
func (p *Panel) Blur() {
	p.input.Blur()
}

// InputValue returns the unsent input.
func (p *Panel) InputValue() string {
	return p.input.Value()
}

// IsPending reports whether a request is in flight.
func (p *Panel) IsPending() bool {
	return p.pending
}

// SetPending toggles the thinking indicator.
func (p *Panel) SetPending(active bool) {
	p.pending = active
	p.refresh()
}

// AppendUserMessage adds a submitted question to the transcript.
func (p *Panel) AppendUserMessage(content string) {
	p.entries = append(p.entries, Entry{Kind: EntryUser, Content: content})
	p.view.GotoBottom()
	p.refresh()
}

// AppendResult adds the assistant turn for res. Failures render inline
// with the error prefix.
func (p *Panel) AppendResult(res assistant.Result) {
	if res.OK() {
		p.entries = append(p.entries, Entry{Kind: EntryAssistant, Content: res.Text()})
	} else {
		p.entries = append(p.entries, Entry{Kind: EntryError, Content: res.Display()})
	}
	p.refresh()
}

// AppendNotice adds command output that is not part of the conversation.
func (p *Panel) AppendNotice(title, content string) {
	p.entries = append(p.entries, Entry{Kind: EntryNotice, Title: title, Content: content})
	p.view.GotoBottom()
	p.refresh()
}

// Reset clears the transcript and input.
func (p *Panel) Reset() {
	p.entries = nil
	p.pending = false
	p.input.Reset()
	p.refresh()
}

// Entries returns a copy of the transcript.
func (p *Panel) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// LastReply returns the most recent successful assistant reply.
func (p *Panel) LastReply() string {
	for i := len(p.entries) - 1; i >= 0; i-- {
		if p.entries[i].Kind == EntryAssistant {
			return p.entries[i].Content
		}
	}
	return ""
}

// HandlePaste routes paste content to the input.
func (p *Panel) HandlePaste(content string) {
	p.input.InsertString(content)
}

// Update handles keyboard input for the panel.
func (p *Panel) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if p.pending {
			return nil
		}
		content, ok := p.submit()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return SubmitMsg{Content: content}
		}
	case "pgup":
		p.view.PageUp()
		return nil
	case "pgdown":
		p.view.PageDown()
		return nil
	case "ctrl+y":
		return p.copyLastReply()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Panel) submit() (string, bool) {
	content := strings.TrimSpace(p.input.Value())
	if content == "" {
		return "", false
	}
	p.input.Reset()
	return content, true
}

func (p *Panel) copyLastReply() tea.Cmd {
	text := p.LastReply()
	w := p.clipboard
	return func() tea.Msg {
		if text == "" {
			return CopiedMsg{}
		}
		_, _ = fmt.Fprint(w, osc52.New(text))
		return CopiedMsg{Chars: len([]rune(text))}
	}
}

func (p *Panel) refresh() {
	p.view.SetRenderFunc(p.renderTranscript)
}

func (p *Panel) renderTranscript(width int) string {
	if len(p.entries) == 0 && !p.pending {
		return welcome.WelcomeMessage()
	}

	blocks := make([]string, 0, len(p.entries)+1)
	for i, e := range p.entries {
		switch e.Kind {
		case EntryUser:
			if i > 0 {
				blocks = append(blocks, styles.FooterStyle.Render(strings.Repeat("─", min(width, 40))))
			}
			blocks = append(blocks, styles.UserLabelStyle.Render("You:")+"\n"+markdown.Wrap(e.Content, width))
		case EntryAssistant:
			blocks = append(blocks, styles.AssistantLabelStyle.Render("Assistant:")+"\n"+markdown.Render(e.Content, width))
		case EntryError:
			blocks = append(blocks, styles.AssistantLabelStyle.Render("Assistant:")+"\n"+styles.ErrorStyle.Render(markdown.Wrap(e.Content, width)))
		case EntryNotice:
			blocks = append(blocks, styles.TitleStyle.Render(e.Title)+"\n"+markdown.Render(e.Content, width))
		}
	}
	if p.pending {
		blocks = append(blocks, styles.ThinkingStyle.Render(thinkingLabel))
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the panel.
func (p *Panel) View() string {
	width := p.contentWidth()

	lines := make([]string, 0, p.contentHeight())
	lines = append(lines, strings.Split(p.view.View(), "\n")...)
	lines = lines[:min(len(lines), p.transcriptHeight())]
	for len(lines) < p.transcriptHeight() {
		lines = append(lines, "")
	}
	lines = append(lines, styles.FooterStyle.Render(strings.Repeat("─", width)))
	lines = append(lines, strings.Split(p.input.View(), "\n")...)

	footer := footerLabel
	if p.pending {
		footer = "Waiting for the assistant..."
	}
	lines = append(lines, styles.FooterStyle.Render(utils.TruncateToWidth(footer, width)))
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}

	return styles.BoxStyle.
		Width(max(p.width, 1)).
		Render(utils.FitLines(lines, width, p.contentHeight()))
}

func (p *Panel) contentWidth() int {
	return max(p.width-2*(panelBorderSize+panelPaddingH), 1)
}

func (p *Panel) contentHeight() int {
	return max(p.height-2*panelBorderSize, 1)
}

// transcriptHeight leaves room for the separator, input and footer.
func (p *Panel) transcriptHeight() int {
	return max(p.contentHeight()-inputHeight-2, 1)
}
