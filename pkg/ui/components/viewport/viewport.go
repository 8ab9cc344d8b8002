package viewport

import (
	"solar_cli/pkg/ui/markdown"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// ContentViewport wraps Bubble Tea's viewport for scrollable markdown
// content. The source is re-rendered whenever the width changes.
type ContentViewport struct {
	Viewport viewport.Model
	source   string
	renderFn func(width int) string
	ready    bool
	follow   bool
}

// NewContentViewport creates a new content viewport. When follow is set
// new content keeps the view pinned to the bottom.
func NewContentViewport(follow bool) ContentViewport {
	return ContentViewport{
		Viewport: viewport.New(),
		follow:   follow,
	}
}

// SetSize updates the viewport dimensions
func (v *ContentViewport) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	widthChanged := width != v.Viewport.Width()
	v.Viewport.SetWidth(width)
	v.Viewport.SetHeight(height)
	v.ready = true
	if widthChanged {
		v.render()
	}
}

// SetMarkdown replaces the content with rendered markdown.
func (v *ContentViewport) SetMarkdown(source string) {
	v.source = source
	v.renderFn = nil
	v.render()
}

// SetRenderFunc replaces the content with the output of fn, which is
// called again with the new width on every resize.
func (v *ContentViewport) SetRenderFunc(fn func(width int) string) {
	v.source = ""
	v.renderFn = fn
	v.render()
}

// Source returns the markdown last passed to SetMarkdown.
func (v *ContentViewport) Source() string {
	return v.source
}

func (v *ContentViewport) render() {
	atBottom := v.Viewport.AtBottom()
	if v.renderFn != nil {
		v.Viewport.SetContent(v.renderFn(v.Viewport.Width()))
	} else {
		v.Viewport.SetContent(markdown.Render(v.source, v.Viewport.Width()))
	}
	if v.follow && atBottom {
		v.Viewport.GotoBottom()
	}
}

// Update handles viewport updates (scrolling, etc)
func (v *ContentViewport) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.Viewport, cmd = v.Viewport.Update(msg)
	return cmd
}

// View renders the viewport
func (v *ContentViewport) View() string {
	if !v.ready {
		return "Loading..."
	}
	return v.Viewport.View()
}

// GotoBottom jumps to the end of the content.
func (v *ContentViewport) GotoBottom() {
	v.Viewport.GotoBottom()
}

// GotoTop jumps to the start of the content.
func (v *ContentViewport) GotoTop() {
	v.Viewport.GotoTop()
}

// PageUp scrolls up one page
func (v *ContentViewport) PageUp() {
	v.Viewport.PageUp()
}

// PageDown scrolls down one page
func (v *ContentViewport) PageDown() {
	v.Viewport.PageDown()
}

// IsAtBottom returns true if scrolled to bottom
func (v *ContentViewport) IsAtBottom() bool {
	return v.Viewport.AtBottom()
}
