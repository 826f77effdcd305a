package retirement

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lmercadov/finadvisor/internal/utils"
	"github.com/lmercadov/finadvisor/providers/tool"
)

// Input describes the accumulation plan. Return and inflation are annual
// nominal percentages; contributions are assumed at month end.
type Input struct {
	CurrentAge          int      `json:"current_age" jsonschema:"description=Current age in years,required"`
	RetirementAge       int      `json:"retirement_age" jsonschema:"description=Target age to stop contributing,required"`
	CurrentSavings      float64  `json:"current_savings" jsonschema:"description=Current portfolio balance,required"`
	MonthlyContribution float64  `json:"monthly_contribution" jsonschema:"description=Planned monthly contribution,required"`
	ExpectedReturnPct   *float64 `json:"expected_return_pct" jsonschema:"description=Annual nominal return percentage,default=6"`
	InflationPct        *float64 `json:"inflation_pct" jsonschema:"description=Annual inflation percentage,default=3"`
	Currency            string   `json:"currency" jsonschema:"description=ISO currency code for display,default=MXN"`
}

// Output carries the projected balances in both nominal terms and today's
// money, plus the derived real return. When the age precondition fails only
// the summary is populated.
type Output struct {
	Years          int     `json:"years,omitempty" jsonschema:"description=Accumulation horizon in years"`
	Months         int     `json:"months,omitempty" jsonschema:"description=Accumulation horizon in months"`
	RealReturnPct  float64 `json:"real_return_pct,omitempty" jsonschema:"description=Inflation-adjusted annual return percentage"`
	NominalBalance float64 `json:"nominal_balance,omitempty" jsonschema:"description=Projected balance at retirement in nominal terms"`
	RealBalance    float64 `json:"real_balance,omitempty" jsonschema:"description=Projected balance deflated to today's money"`
	Currency       string  `json:"currency" jsonschema:"description=Display currency code"`
	Summary        string  `json:"summary" jsonschema:"description=Markdown projection report"`
}

// NewRetirementTool builds the savings projection tool.
func NewRetirementTool() *tool.Tool[Input, Output] {
	return tool.NewTool("retirement_projection", Project,
		tool.WithDescription("Project retirement savings under constant nominal return and inflation, reporting both the nominal balance and today's-money equivalent."),
	)
}

// Project compounds current savings and an ordinary annuity of monthly
// contributions at the monthly-equivalent nominal rate, then deflates the
// result by cumulative inflation.
func Project(ctx context.Context, input Input) (Output, error) {
	currency := input.Currency
	if currency == "" {
		currency = "MXN"
	}
	expectedReturnPct := 6.0
	if input.ExpectedReturnPct != nil {
		expectedReturnPct = *input.ExpectedReturnPct
	}
	inflationPct := 3.0
	if input.InflationPct != nil {
		inflationPct = *input.InflationPct
	}

	if input.RetirementAge <= input.CurrentAge {
		return Output{Currency: currency, Summary: "retirement_age must be greater than current_age"}, nil
	}

	years := input.RetirementAge - input.CurrentAge
	months := years * 12

	rNominal := expectedReturnPct / 100.0
	inflation := inflationPct / 100.0
	rReal := (1+rNominal)/(1+inflation) - 1

	// Monthly rate equivalent to the annual nominal rate.
	rMonthly := math.Pow(1+rNominal, 1.0/12.0) - 1
	fvCurrent := input.CurrentSavings * math.Pow(1+rMonthly, float64(months))

	var fvContrib float64
	if rMonthly == 0 {
		fvContrib = input.MonthlyContribution * float64(months)
	} else {
		fvContrib = input.MonthlyContribution * ((math.Pow(1+rMonthly, float64(months)) - 1) / rMonthly)
	}

	fvNominal := fvCurrent + fvContrib
	fvReal := fvNominal / math.Pow(1+inflation, float64(years))

	var lines []string
	lines = append(lines, fmt.Sprintf("**Horizon:** %d years (%d months)", years, months))
	lines = append(lines, fmt.Sprintf("**Expected return (nominal):** %s%% | **Inflation:** %s%%",
		utils.FormatPercent(expectedReturnPct), utils.FormatPercent(inflationPct)))
	lines = append(lines, fmt.Sprintf("**Projected balance (nominal):** %s %s", utils.FormatAmount(fvNominal), currency))
	lines = append(lines, fmt.Sprintf("**Projected balance (today's money):** %s %s", utils.FormatAmount(fvReal), currency))
	lines = append(lines, "")
	lines = append(lines, "Tips:")
	lines = append(lines, "- Increase contributions annually at least with inflation.")
	lines = append(lines, "- Build an emergency fund separately (3–6 months of expenses).")
	lines = append(lines, "- Rebalance to your risk profile yearly.")

	return Output{
		Years:          years,
		Months:         months,
		RealReturnPct:  rReal * 100,
		NominalBalance: fvNominal,
		RealBalance:    fvReal,
		Currency:       currency,
		Summary:        strings.Join(lines, "\n"),
	}, nil
}
