package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary value with two decimal places and
// thousands separators, e.g. 1234567.891 -> "1,234,567.89". Negative values
// keep a leading minus sign: -1500 -> "-1,500.00".
func FormatAmount(v float64) string {
	return groupFixed(strconv.FormatFloat(v, 'f', 2, 64))
}

// FormatDecimal renders a decimal monetary value the same way as
// [FormatAmount].
func FormatDecimal(d decimal.Decimal) string {
	return groupFixed(d.StringFixed(2))
}

func groupFixed(formatted string) string {
	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	intPart, fracPart, _ := strings.Cut(formatted, ".")
	return sign + groupThousands(intPart) + "." + fracPart
}

// FormatRate renders an FX rate with six decimal places.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// FormatPercent renders a percentage with two decimal places, without the
// percent sign.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
