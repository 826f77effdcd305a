package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lmercadov/finadvisor/internal/utils"
	"github.com/lmercadov/finadvisor/providers/tool"
)

// Input describes one month of money: take-home income, the two cost
// buckets, and the savings target as a percentage of income.
type Input struct {
	MonthlyIncome  float64  `json:"monthly_income" jsonschema:"description=Total take-home income per month,required"`
	FixedCosts     float64  `json:"fixed_costs" jsonschema:"description=Sum of fixed mandatory costs such as rent and utilities,required"`
	VariableCosts  float64  `json:"variable_costs" jsonschema:"description=Sum of typical variable spending such as food and transport,required"`
	SavingsGoalPct *float64 `json:"savings_goal_pct" jsonschema:"description=Target savings as a percentage of income,default=20"`
	Currency       string   `json:"currency" jsonschema:"description=ISO currency code for display,default=MXN"`
}

// Output is the computed plan. Feasible reports whether fixed costs,
// variable costs, and the savings target fit inside income; Gap carries the
// shortfall when they do not, Buffer the slack when they do.
type Output struct {
	Currency      string  `json:"currency" jsonschema:"description=Display currency code"`
	SavingsTarget float64 `json:"savings_target,omitempty" jsonschema:"description=Monthly savings target amount"`
	PlannedTotal  float64 `json:"planned_total,omitempty" jsonschema:"description=Fixed plus variable costs plus savings target"`
	Feasible      bool    `json:"feasible" jsonschema:"description=Whether the plan fits inside income"`
	Gap           float64 `json:"gap,omitempty" jsonschema:"description=Shortfall when the plan is infeasible"`
	Buffer        float64 `json:"buffer,omitempty" jsonschema:"description=Unallocated slack when the plan is feasible"`
	Summary       string  `json:"summary" jsonschema:"description=Markdown budget plan"`
}

// NewBudgetTool builds the monthly budget planning tool.
func NewBudgetTool() *tool.Tool[Input, Output] {
	return tool.NewTool("budget_plan", Plan,
		tool.WithDescription("Create a simple monthly budget plan with a savings target and a feasibility check."),
	)
}

// Plan computes the savings target and checks whether the month balances.
// Non-positive income short-circuits to a validation summary rather than an
// error, so the invocation boundary still returns a renderable result.
func Plan(ctx context.Context, input Input) (Output, error) {
	currency := input.Currency
	if currency == "" {
		currency = "MXN"
	}
	savingsGoalPct := 20.0
	if input.SavingsGoalPct != nil {
		savingsGoalPct = *input.SavingsGoalPct
	}

	if input.MonthlyIncome <= 0 {
		return Output{Currency: currency, Summary: "Monthly income must be > 0."}, nil
	}

	income := decimal.NewFromFloat(input.MonthlyIncome)
	fixed := decimal.NewFromFloat(input.FixedCosts)
	variable := decimal.NewFromFloat(input.VariableCosts)
	goalPct := decimal.NewFromFloat(savingsGoalPct)

	savingsTarget := income.Mul(goalPct.Div(decimal.NewFromInt(100)))
	plannedTotal := fixed.Add(variable).Add(savingsTarget)
	feasible := !plannedTotal.GreaterThan(income)

	var lines []string
	lines = append(lines, fmt.Sprintf("**Income:** %s %s", utils.FormatDecimal(income), currency))
	lines = append(lines, fmt.Sprintf("- Fixed costs: %s %s", utils.FormatDecimal(fixed), currency))
	lines = append(lines, fmt.Sprintf("- Variable costs: %s %s", utils.FormatDecimal(variable), currency))
	lines = append(lines, fmt.Sprintf("- Savings target (%s%%): %s %s", goalPct.StringFixed(1), utils.FormatDecimal(savingsTarget), currency))
	lines = append(lines, "")

	output := Output{
		Currency:      currency,
		SavingsTarget: savingsTarget.InexactFloat64(),
		PlannedTotal:  plannedTotal.InexactFloat64(),
		Feasible:      feasible,
	}

	if feasible {
		buffer := income.Sub(plannedTotal)
		output.Buffer = buffer.InexactFloat64()
		lines = append(lines, fmt.Sprintf("✅ Plan feasible. Buffer: %s %s (unallocated)", utils.FormatDecimal(buffer), currency))
		lines = append(lines, "Tip: Allocate buffer to an emergency fund until 3–6 months of expenses.")
	} else {
		gap := plannedTotal.Sub(income)
		output.Gap = gap.InexactFloat64()
		lines = append(lines, fmt.Sprintf("⚠️ Plan infeasible by %s %s. Suggestions:", utils.FormatDecimal(gap), currency))
		lines = append(lines, "- Reduce variable costs (start here).")
		lines = append(lines, "- Negotiate fixed bills or consider cheaper alternatives.")
		lines = append(lines, "- Lower savings target temporarily and ramp up later.")
	}

	output.Summary = strings.Join(lines, "\n")
	return output, nil
}
