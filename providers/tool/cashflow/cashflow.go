package cashflow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lmercadov/finadvisor/internal/utils"
	"github.com/lmercadov/finadvisor/providers/tool"
)

var (
	hundred     = decimal.NewFromInt(100)
	needsRatio  = decimal.NewFromFloat(0.50)
	wantsRatio  = decimal.NewFromFloat(0.30)
	savingRatio = decimal.NewFromFloat(0.20)
)

// NewCashflowTool builds the ledger analysis tool.
func NewCashflowTool() *tool.Tool[Input, Output] {
	return tool.NewTool("analyze_cashflow", Analyze,
		tool.WithDescription("Analyze a cashflow CSV (date, description, amount, type, category) and summarize totals, per-category flows, and savings rate."),
	)
}

// Analyze classifies each ledger row, totals income and expenses, and
// renders a Markdown report with a per-category breakdown and a 50/30/20
// envelope suggestion when there is income.
func Analyze(ctx context.Context, input Input) (Output, error) {
	currency := input.Currency
	if currency == "" {
		currency = "MXN"
	}
	hasHeader := input.HasHeader == nil || *input.HasHeader

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for _, e := range readLedger(input.CSVText, hasHeader) {
		totalIncome = totalIncome.Add(e.income)
		totalExpense = totalExpense.Add(e.expense)
		byCategory[e.category] = byCategory[e.category].Add(e.catDelta)
	}

	net := totalIncome.Sub(totalExpense)
	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = net.Div(totalIncome).Mul(hundred)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	// Case-insensitive order with the raw name as tie-breaker, so repeated
	// runs render identically.
	sort.Slice(categories, func(i, j int) bool {
		li, lj := strings.ToLower(categories[i]), strings.ToLower(categories[j])
		if li != lj {
			return li < lj
		}
		return categories[i] < categories[j]
	})

	var lines []string
	lines = append(lines, fmt.Sprintf("**Currency:** %s", strings.ToUpper(currency)))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("**Total income:** %s %s", utils.FormatDecimal(totalIncome), currency))
	lines = append(lines, fmt.Sprintf("**Total expenses:** %s %s", utils.FormatDecimal(totalExpense), currency))
	lines = append(lines, fmt.Sprintf("**Net (income - expenses):** %s %s", utils.FormatDecimal(net), currency))
	lines = append(lines, fmt.Sprintf("**Savings rate:** %s%%", savingsRate.StringFixed(2)))
	lines = append(lines, "")
	lines = append(lines, "### Category breakdown (positive=net inflow, negative=net outflow)")
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("- %s: %s %s", category, utils.FormatDecimal(byCategory[category]), currency))
	}

	if totalIncome.IsPositive() {
		lines = append(lines, "")
		lines = append(lines, "### 50/30/20 baseline suggestion")
		lines = append(lines, fmt.Sprintf("- Needs (≈50%%): %s %s", utils.FormatDecimal(totalIncome.Mul(needsRatio)), currency))
		lines = append(lines, fmt.Sprintf("- Wants (≈30%%): %s %s", utils.FormatDecimal(totalIncome.Mul(wantsRatio)), currency))
		lines = append(lines, fmt.Sprintf("- Savings/Debt (≈20%%): %s %s", utils.FormatDecimal(totalIncome.Mul(savingRatio)), currency))
	}

	structured := make(map[string]float64, len(byCategory))
	for category, amount := range byCategory {
		structured[category] = amount.InexactFloat64()
	}

	return Output{
		Currency:       currency,
		TotalIncome:    totalIncome.InexactFloat64(),
		TotalExpenses:  totalExpense.InexactFloat64(),
		Net:            net.InexactFloat64(),
		SavingsRatePct: savingsRate.InexactFloat64(),
		ByCategory:     structured,
		Summary:        strings.Join(lines, "\n"),
	}, nil
}
