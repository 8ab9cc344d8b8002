package statusbar

import (
	"strings"

	"solar_cli/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// StatusBarView renders the bottom status line.
type StatusBarView struct {
	view     string
	provider string
	model    string
	session  string
	message  string
	width    int
}

// NewStatusBarView creates a new status bar view
func NewStatusBarView() *StatusBarView {
	return &StatusBarView{width: 80}
}

// SetView sets the active view name.
func (s *StatusBarView) SetView(name string) {
	s.view = name
}

// SetModel updates the active provider and model displayed.
func (s *StatusBarView) SetModel(provider, model string) {
	s.provider = strings.TrimSpace(provider)
	s.model = strings.TrimSpace(model)
}

// SetSession sets the short session id.
func (s *StatusBarView) SetSession(id string) {
	s.session = id
}

// SetMessage sets a temporary message that replaces the key hint.
func (s *StatusBarView) SetMessage(msg string) {
	s.message = msg
}

// Message returns the current temporary message.
func (s *StatusBarView) Message() string {
	return s.message
}

// SetWidth updates the width for rendering
func (s *StatusBarView) SetWidth(width int) {
	s.width = width
}

// Render returns the styled status bar string
func (s *StatusBarView) Render() string {
	modelLabel := s.model
	if modelLabel == "" {
		modelLabel = "unknown"
	}
	if s.provider != "" {
		modelLabel = s.provider + ":" + modelLabel
	}

	parts := []string{"[solar_cli]"}
	if s.view != "" {
		parts = append(parts, s.view)
	}
	parts = append(parts, "[llm]: "+modelLabel)
	if s.session != "" {
		parts = append(parts, "[session]: "+s.session)
	}
	if s.message != "" {
		parts = append(parts, s.message)
	} else {
		parts = append(parts, "/help for commands")
	}
	content := strings.Join(parts, " | ")

	// Truncate if too long (ANSI-aware width).
	maxWidth := s.width - 2
	if maxWidth < 10 {
		maxWidth = 10
	}
	if ansi.StringWidth(content) > maxWidth {
		content = ansi.Truncate(content, maxWidth, "...")
	}

	styled := statusStyle.Render(content)
	if w := lipgloss.Width(styled); w < s.width {
		styled += statusStyle.UnsetPadding().Render(strings.Repeat(" ", s.width-w))
	}
	return styled
}

var statusStyle = styles.StatusBarStyle

// SetTheme allows changing the status bar theme
func (s *StatusBarView) SetTheme(theme string) {
	switch theme {
	case "dark":
		statusStyle = styles.StatusBarStyleDark
	default:
		statusStyle = styles.StatusBarStyle
	}
}
