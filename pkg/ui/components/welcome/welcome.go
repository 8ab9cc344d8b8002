package welcome

import (
	"fmt"
	"strings"

	"solar_cli/pkg/ui/components/utils"
	"solar_cli/pkg/ui/styles"
	"solar_cli/pkg/version"

	"github.com/mattn/go-runewidth"
)

// Shortcut is a key binding listed in the welcome box.
type Shortcut struct {
	Key  string
	Desc string
}

// Shortcuts lists the bindings shown to new users.
var Shortcuts = []Shortcut{
	{"Enter", "Ask the assistant"},
	{"Tab", "Next view (Shift+Tab back)"},
	{"Ctrl+Y", "Copy the last reply"},
	{"PgUp/PgDn", "Scroll the conversation"},
	{"/help", "List commands"},
	{"Ctrl+C", "Quit"},
}

// WelcomeMessage returns the welcome box shown in an empty chat.
func WelcomeMessage() string {
	const boxWidth = 53 // Total inner width

	makeLine := func(content string, visualWidth int) string {
		pad := boxWidth - visualWidth
		if pad < 0 {
			pad = 0
		}
		return styles.WelcomeBorderStyle.Render("│") + content + strings.Repeat(" ", pad) + styles.WelcomeBorderStyle.Render("│")
	}
	centered := func(text string, style func(...string) string) string {
		width := runewidth.StringWidth(text)
		left := (boxWidth - width) / 2
		return makeLine(strings.Repeat(" ", left)+style(text), left+width)
	}

	top := styles.WelcomeBorderStyle.Render("╭" + strings.Repeat("─", boxWidth) + "╮")
	bottom := styles.WelcomeBorderStyle.Render("╰" + strings.Repeat("─", boxWidth) + "╯")
	empty := makeLine("", 0)

	var lines []string
	lines = append(lines, top)
	lines = append(lines, centered("Solar Industry Assistant", styles.WelcomeTitleStyle.Render))
	lines = append(lines, centered("Ask about panels, installation, costs and rules", styles.TextMutedStyle.Render))
	lines = append(lines, empty)

	header := "  Shortcuts:"
	lines = append(lines, makeLine(styles.WelcomeHeaderStyle.Render(header), runewidth.StringWidth(header)))
	for _, s := range Shortcuts {
		keyFormatted := fmt.Sprintf("    %-11s", s.Key)
		line := styles.WelcomeKeyStyle.Render(keyFormatted) + styles.TextStyle.Render(s.Desc)
		lineWidth := runewidth.StringWidth(keyFormatted) + runewidth.StringWidth(s.Desc)
		lines = append(lines, makeLine(line, lineWidth))
	}

	lines = append(lines, empty)

	versionText := version.Summary()
	if runewidth.StringWidth(versionText) > boxWidth-4 {
		versionText = utils.TruncateToWidth(versionText, boxWidth-4)
	}
	lines = append(lines, centered(versionText, styles.WelcomeVersionStyle.Render))
	lines = append(lines, bottom)

	return strings.Join(lines, "\n")
}
