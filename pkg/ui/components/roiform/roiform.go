package roiform

import (
	"strconv"
	"strings"

	"solar_cli/pkg/roi"
	"solar_cli/pkg/ui/components/utils"
	"solar_cli/pkg/ui/styles"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

const footerLabel = "Up/Down Field | Enter Calculate | Tab Next view"

const (
	fieldCost = iota
	fieldSavings
	fieldIncentives
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Total System Cost ($)",
	"Annual Energy Savings ($)",
	"Incentives ($)",
}

// Form is the ROI calculator view.
type Form struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	breakdown *roi.Breakdown
	err       error
	width     int
	height    int
}

// NewForm creates a form pre-filled with defaults.
func NewForm(defaults roi.Inputs) *Form {
	f := &Form{}
	values := [fieldCount]float64{defaults.SystemCost, defaults.AnnualSavings, defaults.Incentives}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = "0"
		ti.CharLimit = 20
		ti.SetValue(strconv.FormatFloat(values[i], 'f', -1, 64))
		f.inputs[i] = ti
	}
	return f
}

// SetSize sets the form dimensions.
func (f *Form) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// Focus focuses the current field.
func (f *Form) Focus() tea.Cmd {
	return f.inputs[f.focus].Focus()
}

// Blur removes focus from every field.
func (f *Form) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Values returns the raw field contents.
func (f *Form) Values() [fieldCount]string {
	var out [fieldCount]string
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

// SetValues replaces the field contents.
func (f *Form) SetValues(cost, savings, incentives string) {
	f.inputs[fieldCost].SetValue(cost)
	f.inputs[fieldSavings].SetValue(savings)
	f.inputs[fieldIncentives].SetValue(incentives)
}

// Result returns the last calculation or its validation error.
func (f *Form) Result() (*roi.Breakdown, error) {
	return f.breakdown, f.err
}

// Calculate parses the fields and stores the breakdown or error.
func (f *Form) Calculate() (*roi.Breakdown, error) {
	v := f.Values()
	in, err := roi.ParseInputs(v[fieldCost], v[fieldSavings], v[fieldIncentives])
	if err == nil {
		err = in.Validate()
	}
	if err != nil {
		f.breakdown = nil
		f.err = err
		return nil, err
	}
	b := roi.Calculate(in)
	f.breakdown = &b
	f.err = nil
	return f.breakdown, nil
}

// Update handles keyboard input for the form.
func (f *Form) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		f.Calculate()
		return nil
	case "up":
		return f.moveFocus(-1)
	case "down":
		return f.moveFocus(1)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *Form) moveFocus(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// View renders the form.
func (f *Form) View() string {
	width := max(f.width-4, 1)
	return styles.BoxStyle.
		Width(max(f.width, 1)).
		Render(utils.FitLines(f.contentLines(width), width, max(f.height-2, 1)))
}

func (f *Form) contentLines(width int) []string {
	var lines []string
	lines = append(lines, styles.TitleStyle.Render("ROI Calculator"), "")
	for i, in := range f.inputs {
		label := styles.LabelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = styles.FocusedLabelStyle.Render(fieldLabels[i])
		}
		lines = append(lines, label+in.View())
	}
	lines = append(lines, "")

	switch {
	case f.err != nil:
		lines = append(lines, styles.ErrorStyle.Render("Error: "+f.err.Error()))
	case f.breakdown != nil:
		lines = append(lines, f.renderBreakdown()...)
	default:
		lines = append(lines, styles.TextMutedStyle.Render("Press Enter to calculate the payback period."))
	}

	return append(lines, "", styles.FooterStyle.Render(utils.TruncateToWidth(footerLabel, width)))
}

func (f *Form) renderBreakdown() []string {
	b := f.breakdown
	summary := styles.SuccessStyle.Render(b.Summary())
	if !b.PaysBack() {
		summary = styles.ErrorStyle.Render(b.Summary())
	}

	lines := []string{summary, "", styles.TextBoldStyle.Render("Breakdown")}
	for _, row := range b.Rows() {
		lines = append(lines, "  "+styles.LabelStyle.Render(row[0])+styles.ValueStyle.Render(row[1]))
	}
	return lines
}

// Summary returns the plain result line, or "" before the first calculation.
func (f *Form) Summary() string {
	switch {
	case f.err != nil:
		return "Error: " + f.err.Error()
	case f.breakdown != nil:
		return f.breakdown.Summary()
	}
	return ""
}

// HandlePaste inserts pasted digits into the focused field.
func (f *Form) HandlePaste(content string) {
	in := &f.inputs[f.focus]
	in.SetValue(in.Value() + strings.TrimSpace(content))
}
