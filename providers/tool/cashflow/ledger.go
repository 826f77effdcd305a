package cashflow

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

const fallbackCategory = "Uncategorized"

// entry is one classified ledger row: the deltas it contributes to the
// totals and to its category bucket.
type entry struct {
	income   decimal.Decimal
	expense  decimal.Decimal
	category string
	catDelta decimal.Decimal
}

// parseRow extracts an entry from a CSV record. Rows shorter than three
// fields contribute a zero amount; a row whose amount cannot be parsed is
// rejected entirely.
func parseRow(record []string) (entry, error) {
	amount := decimal.Zero
	typ := ""
	category := fallbackCategory

	if len(record) >= 3 {
		parsed, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return entry{}, err
		}
		amount = parsed
	}
	if len(record) >= 4 {
		typ = strings.ToUpper(strings.TrimSpace(record[3]))
	}
	if len(record) >= 5 {
		if trimmed := strings.TrimSpace(record[4]); trimmed != "" {
			category = trimmed
		}
	}

	return classify(amount, typ, category), nil
}

// classify applies the type column when present and falls back to the sign
// of the amount. An explicit EXPENSE subtracts from its category bucket even
// if the amount was recorded positive.
func classify(amount decimal.Decimal, typ, category string) entry {
	e := entry{category: category}

	switch typ {
	case "INCOME":
		e.income = amount.Abs()
		e.catDelta = amount.Abs()
	case "EXPENSE":
		e.expense = amount.Abs()
		e.catDelta = amount.Abs().Neg()
	default:
		if amount.Sign() >= 0 {
			e.income = amount
			e.catDelta = amount
		} else {
			e.expense = amount.Abs()
			e.catDelta = amount
		}
	}

	return e
}

// readLedger parses CSV text into classified entries, optionally skipping a
// header row. Malformed rows are dropped rather than failing the whole
// ledger.
func readLedger(csvText string, hasHeader bool) []entry {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var entries []entry
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}

		if first && hasHeader {
			first = false
			continue
		}
		first = false

		if len(record) == 0 {
			continue
		}

		e, err := parseRow(record)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}

	return entries
}
