package sidebar

import (
	"fmt"
	"strings"

	"solar_cli/pkg/ui/components/utils"
	"solar_cli/pkg/ui/styles"
)

const (
	sidebarBorderSize = 1
	sidebarPaddingH   = 1
	sidebarTitle      = "☀ Solar"
	sidebarFooter     = "Tab/1-3 Switch"
)

// Item is one navigable view.
type Item struct {
	Title string
	Hint  string
}

// Sidebar lists the application views and marks the active one.
type Sidebar struct {
	items    []Item
	selected int
	info     []string
	width    int
	height   int
}

// NewSidebar creates a sidebar over items with the first one selected.
func NewSidebar(items ...Item) *Sidebar {
	return &Sidebar{items: items}
}

// SetSize sets the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetInfo sets the lines shown below the navigation list.
func (s *Sidebar) SetInfo(lines ...string) {
	s.info = lines
}

// Selected returns the index of the active item.
func (s *Sidebar) Selected() int {
	return s.selected
}

// SelectedItem returns the active item.
func (s *Sidebar) SelectedItem() Item {
	if len(s.items) == 0 {
		return Item{}
	}
	return s.items[s.selected]
}

// Select activates item i. Out of range indexes are ignored.
func (s *Sidebar) Select(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.selected = i
	return true
}

// Next activates the following item, wrapping around.
func (s *Sidebar) Next() {
	if len(s.items) > 0 {
		s.selected = (s.selected + 1) % len(s.items)
	}
}

// Prev activates the preceding item, wrapping around.
func (s *Sidebar) Prev() {
	if len(s.items) > 0 {
		s.selected = (s.selected - 1 + len(s.items)) % len(s.items)
	}
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	width := s.contentWidth()

	lines := []string{styles.TitleStyle.Render(utils.TruncateToWidth(sidebarTitle, width)), ""}
	for i, item := range s.items {
		label := utils.TruncateToWidth(fmt.Sprintf("%d %s", i+1, item.Title), width)
		if i == s.selected {
			lines = append(lines, styles.SelectedStyle.Render(utils.PadStyled(label, width)))
		} else {
			lines = append(lines, styles.TextStyle.Render(label))
		}
	}

	if len(s.info) > 0 {
		lines = append(lines, "", styles.FooterStyle.Render(strings.Repeat("─", width)))
		for _, line := range s.info {
			lines = append(lines, styles.TextMutedStyle.Render(utils.TruncateToWidth(line, width)))
		}
	}

	height := max(s.height-2*sidebarBorderSize, 1)
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, styles.FooterStyle.Render(utils.TruncateToWidth(sidebarFooter, width)))

	return styles.BoxStyleMuted.
		Width(max(s.width, 1)).
		Render(utils.FitLines(lines, width, height))
}

func (s *Sidebar) contentWidth() int {
	return max(s.width-2*(sidebarBorderSize+sidebarPaddingH), 1)
}
