// Package cashflow analyzes simple CSV ledgers. Rows carry a signed amount
// and optionally an explicit INCOME/EXPENSE type and a category; the tool
// totals both sides, derives the savings rate, and renders a Markdown report
// with a category breakdown and a 50/30/20 envelope suggestion.
//
// Amount arithmetic uses decimals so repeated sums of money values do not
// accumulate binary float error.
package cashflow
