// Package ui implements the interactive terminal front end: a chat view,
// an ROI calculator and the documentation reference.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"solar_cli/pkg/assistant"
	"solar_cli/pkg/commands"
	"solar_cli/pkg/docs"
	"solar_cli/pkg/roi"
	"solar_cli/pkg/ui/components/chat"
	"solar_cli/pkg/ui/components/roiform"
	"solar_cli/pkg/ui/components/sidebar"
	"solar_cli/pkg/ui/components/statusbar"
	"solar_cli/pkg/ui/components/utils"
	"solar_cli/pkg/ui/components/viewport"
	"solar_cli/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Responder answers a prompt. *assistant.Generator satisfies it.
type Responder interface {
	Generate(ctx context.Context, prompt string, history []assistant.Turn) assistant.Result
}

// View identifies one of the application views.
type View int

const (
	ViewChat View = iota
	ViewROI
	ViewDocs
	viewCount
)

var viewTitles = [viewCount]string{"Chat Assistant", "ROI Calculator", "Documentation"}

func (v View) String() string {
	if v < 0 || v >= viewCount {
		return "unknown"
	}
	return viewTitles[v]
}

const docsFooterLabel = "Up/Down PgUp/PgDn Scroll | 1-3 Switch view"

// Options configures the model.
type Options struct {
	Provider    string
	Model       string
	ROIDefaults roi.Inputs
}

// chatResultMsg carries a finished request back to the UI goroutine.
type chatResultMsg struct {
	sessionID string
	prompt    string
	result    assistant.Result
}

// Model represents the Bubble Tea application state
type Model struct {
	ctx        context.Context
	responder  Responder
	session    *assistant.Session
	dispatcher *commands.Dispatcher
	opts       Options

	// UI Components
	sidebar   *sidebar.Sidebar
	chat      *chat.Panel
	roiForm   *roiform.Form
	docs      *viewport.ContentViewport
	statusBar *statusbar.StatusBarView

	width  int
	height int
	ready  bool
}

// NewModel creates the application model with a fresh session.
func NewModel(ctx context.Context, responder Responder, opts Options) Model {
	items := make([]sidebar.Item, 0, viewCount)
	for _, title := range viewTitles {
		items = append(items, sidebar.Item{Title: title})
	}

	docsView := viewport.NewContentViewport(false)
	docsView.SetMarkdown(docs.Markdown())

	m := Model{
		ctx:        ctx,
		responder:  responder,
		session:    assistant.NewSession(),
		dispatcher: commands.NewDispatcher(),
		opts:       opts,
		sidebar:    sidebar.NewSidebar(items...),
		chat:       chat.NewPanel(),
		roiForm:    roiform.NewForm(opts.ROIDefaults),
		docs:       &docsView,
		statusBar:  statusbar.NewStatusBarView(),
	}
	m.statusBar.SetModel(opts.Provider, opts.Model)
	m.syncSession()
	m.statusBar.SetView(ViewChat.String())
	return m
}

// Init starts the input cursor.
func (m Model) Init() tea.Cmd {
	return m.chat.Focus()
}

// Session returns the active conversation.
func (m Model) Session() *assistant.Session {
	return m.session
}

// ActiveView returns the view currently shown.
func (m Model) ActiveView() View {
	return View(m.sidebar.Selected())
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		switch m.ActiveView() {
		case ViewChat:
			m.chat.HandlePaste(msg.Content)
		case ViewROI:
			m.roiForm.HandlePaste(msg.Content)
		}
		return m, nil

	case chat.SubmitMsg:
		if commands.IsCommand(msg.Content) {
			return m.runCommand(msg.Content)
		}
		return m, m.startRequest(msg.Content)

	case chatResultMsg:
		m.finishRequest(msg)
		return m, nil

	case chat.CopiedMsg:
		if msg.Chars == 0 {
			m.statusBar.SetMessage("Nothing to copy yet")
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Copied last reply (%d chars)", msg.Chars))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		slog.Info("ui_quit",
			"session", m.session.ShortID(),
			"turns", m.session.Len(),
			"pending", m.chat.IsPending(),
			"unsent_input", m.chat.InputValue() != "",
		)
		return m, tea.Quit
	case "tab":
		m.sidebar.Next()
		return m, m.activate()
	case "shift+tab":
		m.sidebar.Prev()
		return m, m.activate()
	}

	switch m.ActiveView() {
	case ViewChat:
		if msg.String() == "enter" && m.chat.IsPending() {
			m.statusBar.SetMessage("Waiting for the reply...")
			return m, nil
		}
		m.statusBar.SetMessage("")
		return m, m.chat.Update(msg)

	case ViewROI:
		cmd := m.roiForm.Update(msg)
		if msg.String() == "enter" {
			m.statusBar.SetMessage(m.roiForm.Summary())
			slog.Debug("roi_calculated", "result", m.roiForm.Summary())
		}
		return m, cmd

	case ViewDocs:
		if key := msg.String(); len(key) == 1 && key >= "1" && key <= "3" {
			m.sidebar.Select(int(key[0] - '1'))
			return m, m.activate()
		}
		return m, m.docs.Update(msg)
	}

	return m, nil
}

// activate moves focus to the selected view.
func (m *Model) activate() tea.Cmd {
	view := m.ActiveView()
	m.statusBar.SetView(view.String())
	m.statusBar.SetMessage("")
	slog.Debug("view_switched", "view", view.String())

	m.chat.Blur()
	m.roiForm.Blur()
	switch view {
	case ViewChat:
		return m.chat.Focus()
	case ViewROI:
		return m.roiForm.Focus()
	}
	return nil
}

func (m *Model) startRequest(prompt string) tea.Cmd {
	m.chat.AppendUserMessage(prompt)
	m.chat.SetPending(true)

	ctx := m.ctx
	responder := m.responder
	sessionID := m.session.ID
	history := m.session.Turns()
	return func() tea.Msg {
		return chatResultMsg{
			sessionID: sessionID,
			prompt:    prompt,
			result:    responder.Generate(ctx, prompt, history),
		}
	}
}

func (m *Model) finishRequest(msg chatResultMsg) {
	m.chat.SetPending(false)
	if msg.sessionID != m.session.ID {
		slog.Warn("chat_result_dropped", "session", msg.sessionID)
		return
	}
	m.session.Record(msg.prompt, msg.result)
	m.chat.AppendResult(msg.result)
	m.syncSession()
	if !msg.result.OK() {
		m.statusBar.SetMessage("Request failed (" + msg.result.Kind() + ")")
	}
}

func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	ctx := commands.NewContext(m.session, m.opts.ROIDefaults)
	res := m.dispatcher.DispatchLine(line, ctx)
	slog.Info("command_executed", "command", strings.Fields(line)[0], "error", res.Error != nil)

	switch res.Action {
	case commands.ResultActionNewSession:
		m.session = assistant.NewSession()
		m.chat.Reset()
		m.chat.AppendNotice(res.Title, res.Content)
		m.syncSession()
		return m, nil
	case commands.ResultActionShowDocs:
		m.sidebar.Select(int(ViewDocs))
		m.docs.GotoTop()
		return m, m.activate()
	}

	m.chat.AppendNotice(res.Title, res.Content)
	return m, nil
}

func (m *Model) syncSession() {
	id := m.session.ShortID()
	m.statusBar.SetSession(id)
	m.sidebar.SetInfo(
		m.opts.Provider,
		m.opts.Model,
		"session "+id,
		fmt.Sprintf("%d turns", m.session.Len()),
	)
}

func (m *Model) resize() {
	l := computeLayout(m.width, m.height)
	m.sidebar.SetSize(l.sidebarWidth, l.bodyHeight)
	m.chat.SetSize(l.mainWidth, l.bodyHeight)
	m.roiForm.SetSize(l.mainWidth, l.bodyHeight)
	// border plus padding horizontally; border and footer vertically
	m.docs.SetSize(l.mainWidth-4, l.bodyHeight-3)
	m.statusBar.SetWidth(m.width)
}

// View renders the program's UI in the alternate screen.
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render returns the current frame as a string.
func (m Model) Render() string {
	if !m.ready {
		return "Initializing..."
	}

	var main string
	switch m.ActiveView() {
	case ViewChat:
		main = m.chat.View()
	case ViewROI:
		main = m.roiForm.View()
	case ViewDocs:
		main = m.renderDocs()
	}

	body := main
	if l := computeLayout(m.width, m.height); l.sidebarWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.Render())
}

func (m Model) renderDocs() string {
	l := computeLayout(m.width, m.height)
	width := max(l.mainWidth-4, 1)
	height := max(l.bodyHeight-2, 1)

	lines := strings.Split(m.docs.View(), "\n")
	lines = lines[:min(len(lines), height-1)]
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, styles.FooterStyle.Render(utils.TruncateToWidth(docsFooterLabel, width)))

	return styles.BoxStyle.
		Width(max(l.mainWidth, 1)).
		Render(utils.FitLines(lines, width, height))
}
