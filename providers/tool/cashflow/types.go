package cashflow

// Input is a cashflow ledger as CSV text. Expected columns, in order:
// date, description, amount, type, category. Only amount is required per
// row; type (INCOME/EXPENSE) and category refine classification.
type Input struct {
	CSVText   string `json:"csv_text" jsonschema:"description=Ledger rows as CSV text with columns date/description/amount/type/category,required"`
	Currency  string `json:"currency" jsonschema:"description=ISO currency code for display,default=MXN"`
	HasHeader *bool  `json:"has_header" jsonschema:"description=Whether the first line is a header row,default=true"`
}

// Output summarizes the ledger: totals, net, savings rate, and the
// per-category net flow (positive = inflow, negative = outflow).
type Output struct {
	Currency       string             `json:"currency" jsonschema:"description=Display currency code"`
	TotalIncome    float64            `json:"total_income" jsonschema:"description=Sum of income rows"`
	TotalExpenses  float64            `json:"total_expenses" jsonschema:"description=Sum of expense rows as a positive magnitude"`
	Net            float64            `json:"net" jsonschema:"description=Income minus expenses"`
	SavingsRatePct float64            `json:"savings_rate_pct" jsonschema:"description=Net as a percentage of income"`
	ByCategory     map[string]float64 `json:"by_category" jsonschema:"description=Net flow per category"`
	Summary        string             `json:"summary" jsonschema:"description=Markdown cashflow report"`
}
