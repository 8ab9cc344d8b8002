package ui

const (
	sidebarWidth       = 24
	minWidthForSidebar = 64
	statusBarHeight    = 1
)

type layout struct {
	sidebarWidth int
	mainWidth    int
	bodyHeight   int
}

// computeLayout hides the sidebar on narrow terminals and reserves the
// bottom row for the status bar.
func computeLayout(width, height int) layout {
	l := layout{
		mainWidth:  max(width, 1),
		bodyHeight: max(height-statusBarHeight, 1),
	}
	if width >= minWidthForSidebar {
		l.sidebarWidth = sidebarWidth
		l.mainWidth = width - sidebarWidth
	}
	return l
}
