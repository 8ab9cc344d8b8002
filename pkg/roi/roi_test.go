package roi

import (
	"math"
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                      string
		cost, savings, incentives float64
		want                      float64
	}{
		{name: "with incentives", cost: 20000, savings: 1500, incentives: 5000, want: 10.0},
		{name: "no incentives", cost: 10000, savings: 2000, incentives: 0, want: 5.0},
		{name: "incentives exceed cost", cost: 1000, savings: 500, incentives: 2000, want: -2.0},
		{name: "zero cost", cost: 0, savings: 100, incentives: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.cost, tt.savings, tt.incentives)
			if got != tt.want {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCompute_NeverPaysBack(t *testing.T) {
	for _, savings := range []float64{0, -1, -1500, math.Inf(-1)} {
		got := Compute(20000, savings, 5000)
		if !math.IsInf(got, 1) {
			t.Fatalf("Expected +Inf for savings %v, got %v", savings, got)
		}
	}
}

func TestCompute_MatchesFormula(t *testing.T) {
	for cost := 0.0; cost <= 50000; cost += 7321.5 {
		for incentives := 0.0; incentives <= 12000; incentives += 2999.25 {
			for savings := 0.5; savings <= 5000; savings += 997.3 {
				want := (cost - incentives) / savings
				if got := Compute(cost, savings, incentives); got != want {
					t.Fatalf("Compute(%v, %v, %v) = %v, want %v", cost, savings, incentives, got, want)
				}
			}
		}
	}
}

func TestCalculate(t *testing.T) {
	b := Calculate(Inputs{SystemCost: 20000, AnnualSavings: 1500, Incentives: 5000})

	if b.NetCost != 15000 {
		t.Fatalf("Expected net cost 15000, got %v", b.NetCost)
	}
	if b.Summary() != "Estimated ROI Period: 10.0 years" {
		t.Fatalf("Unexpected summary %q", b.Summary())
	}

	rows := b.Rows()
	if rows[0] != [2]string{"Total Investment", "$20,000.00"} {
		t.Fatalf("Unexpected first row %v", rows[0])
	}
	if rows[2] != [2]string{"Net Cost", "$15,000.00"} {
		t.Fatalf("Unexpected net cost row %v", rows[2])
	}
	if !strings.Contains(b.Markdown(), "- Annual Savings: $1,500.00") {
		t.Fatalf("Expected savings row in markdown, got %q", b.Markdown())
	}
}

func TestCalculate_NeverPaysBack(t *testing.T) {
	b := Calculate(Inputs{SystemCost: 20000, AnnualSavings: 0, Incentives: 5000})
	if b.PaysBack() {
		t.Fatal("Expected no payback")
	}
	if !strings.Contains(b.Summary(), "never pays back") {
		t.Fatalf("Unexpected summary %q", b.Summary())
	}
	if b.Rows()[4][1] != "never" {
		t.Fatalf("Expected 'never' payback row, got %q", b.Rows()[4][1])
	}
}

func TestInputsValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Inputs
		wantErr string
	}{
		{name: "valid", in: Inputs{20000, 1500, 5000}},
		{name: "zero savings allowed", in: Inputs{20000, 0, 0}},
		{name: "negative cost", in: Inputs{-1, 1500, 0}, wantErr: "system cost must not be negative"},
		{name: "negative savings", in: Inputs{1, -5, 0}, wantErr: "annual savings must not be negative"},
		{name: "negative incentives", in: Inputs{1, 5, -1}, wantErr: "incentives must not be negative"},
		{name: "nan", in: Inputs{math.NaN(), 5, 0}, wantErr: "system cost must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("Expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseInputs(t *testing.T) {
	in, err := ParseInputs("$20,000", " 1500.50 ", "")
	if err != nil {
		t.Fatalf("ParseInputs() error: %v", err)
	}
	if in.SystemCost != 20000 || in.AnnualSavings != 1500.5 || in.Incentives != 0 {
		t.Fatalf("Unexpected inputs %+v", in)
	}

	if _, err := ParseInputs("", "1", "1"); err == nil || !strings.Contains(err.Error(), "system cost is required") {
		t.Fatalf("Expected required error, got %v", err)
	}
	if _, err := ParseInputs("abc", "1", "1"); err == nil || !strings.Contains(err.Error(), "invalid system cost") {
		t.Fatalf("Expected invalid error, got %v", err)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := map[float64]string{
		0:          "$0.00",
		5:          "$5.00",
		999.999:    "$1,000.00",
		1500:       "$1,500.00",
		20000:      "$20,000.00",
		1234567.89: "$1,234,567.89",
		-2500.5:    "-$2,500.50",
	}
	for in, want := range tests {
		if got := FormatCurrency(in); got != want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}
