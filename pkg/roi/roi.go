// Package roi computes the payback period of a solar installation.
package roi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Compute returns the years needed for annualSavings to recover
// systemCost net of incentives. Non-positive savings never pay back and
// yield +Inf. The net cost is not clamped, so generous incentives give a
// negative period.
func Compute(systemCost, annualSavings, incentives float64) float64 {
	if annualSavings <= 0 {
		return math.Inf(1)
	}
	return (systemCost - incentives) / annualSavings
}

// Inputs are the calculator form values.
type Inputs struct {
	SystemCost    float64
	AnnualSavings float64
	Incentives    float64
}

// Validate rejects values the form does not accept.
func (in Inputs) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"system cost", in.SystemCost},
		{"annual savings", in.AnnualSavings},
		{"incentives", in.Incentives},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a number", f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}
	return nil
}

// ParseInputs reads form text. Dollar signs, commas and surrounding spaces
// are ignored; an empty incentives field means zero.
func ParseInputs(cost, savings, incentives string) (Inputs, error) {
	var in Inputs
	var err error
	if in.SystemCost, err = parseAmount("system cost", cost, false); err != nil {
		return Inputs{}, err
	}
	if in.AnnualSavings, err = parseAmount("annual savings", savings, false); err != nil {
		return Inputs{}, err
	}
	if in.Incentives, err = parseAmount("incentives", incentives, true); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

func parseAmount(name, raw string, optional bool) (float64, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		if optional {
			return 0, nil
		}
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

// Breakdown is the calculator result shown to the user.
type Breakdown struct {
	Inputs
	NetCost      float64
	PaybackYears float64
}

// Calculate fills in the breakdown for in.
func Calculate(in Inputs) Breakdown {
	return Breakdown{
		Inputs:       in,
		NetCost:      in.SystemCost - in.Incentives,
		PaybackYears: Compute(in.SystemCost, in.AnnualSavings, in.Incentives),
	}
}

// PaysBack reports whether the investment is ever recovered.
func (b Breakdown) PaysBack() bool {
	return !math.IsInf(b.PaybackYears, 1)
}

// Summary is the one-line outcome, e.g. "Estimated ROI Period: 10.0 years".
func (b Breakdown) Summary() string {
	if !b.PaysBack() {
		return "Estimated ROI Period: never pays back (annual savings must be greater than zero)"
	}
	return fmt.Sprintf("Estimated ROI Period: %.1f years", b.PaybackYears)
}

// Rows returns the label/value pairs of the breakdown table.
func (b Breakdown) Rows() [][2]string {
	years := "never"
	if b.PaysBack() {
		years = fmt.Sprintf("%.1f years", b.PaybackYears)
	}
	return [][2]string{
		{"Total Investment", FormatCurrency(b.SystemCost)},
		{"Incentives", FormatCurrency(b.Incentives)},
		{"Net Cost", FormatCurrency(b.NetCost)},
		{"Annual Savings", FormatCurrency(b.AnnualSavings)},
		{"Payback Period", years},
	}
}

// Markdown renders the summary and breakdown for the chat transcript.
func (b Breakdown) Markdown() string {
	var sb strings.Builder
	sb.WriteString("**")
	sb.WriteString(b.Summary())
	sb.WriteString("**\n\n")
	sb.WriteString("### Breakdown\n\n")
	for _, row := range b.Rows() {
		fmt.Fprintf(&sb, "- %s: %s\n", row[0], row[1])
	}
	return sb.String()
}

// FormatCurrency renders v as dollars with thousands separators.
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	whole := strconv.FormatInt(cents/100, 10)

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, sb.String(), cents%100)
}
