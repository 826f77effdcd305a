package riskprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lmercadov/finadvisor/providers/tool"
)

const (
	errEmptyArray   = "answers_json must be a non-empty JSON array"
	errInvalidArray = "Invalid answers_json; must be JSON array of integers."

	disclaimerLine = "Note: This is educational, not investment advice. Consider your horizon, liquidity, and taxes."
)

// Input carries the questionnaire answers as a JSON array of integers 1-5,
// where higher means more risk-tolerant.
type Input struct {
	AnswersJSON string `json:"answers_json" jsonschema:"description=JSON array of integers 1-5 answering standard risk-tolerance questions (higher = more tolerant),required"`
}

// Output is the inferred profile. On validation failure only the summary is
// populated, carrying the fixed validation message.
type Output struct {
	Profile      string  `json:"profile,omitempty" jsonschema:"description=Conservative or Moderate or Aggressive"`
	AverageScore float64 `json:"average_score,omitempty" jsonschema:"description=Mean of the answer scores"`
	Mix          string  `json:"mix,omitempty" jsonschema:"description=Illustrative asset mix for the profile"`
	Summary      string  `json:"summary" jsonschema:"description=Markdown risk profile report"`
}

// NewRiskProfileTool builds the questionnaire scoring tool.
func NewRiskProfileTool() *tool.Tool[Input, Output] {
	return tool.NewTool("risk_profile", Profile,
		tool.WithDescription("Score a risk-tolerance questionnaire (JSON array of integers 1-5) into Conservative, Moderate, or Aggressive with an illustrative asset mix."),
	)
}

// Profile decodes the answers strictly, averages them, and maps the mean to
// one of three profiles. Malformed input degrades to a fixed validation
// summary rather than a tool error.
func Profile(ctx context.Context, input Input) (Output, error) {
	// Strict decode on purpose: a payload that is not well-formed JSON is a
	// caller mistake worth reporting, not repairing.
	var answers []any
	if err := json.Unmarshal([]byte(input.AnswersJSON), &answers); err != nil {
		return Output{Summary: errInvalidArray}, nil
	}
	if len(answers) == 0 {
		return Output{Summary: errEmptyArray}, nil
	}

	sum := 0
	for _, answer := range answers {
		score, ok := coerceInt(answer)
		if !ok {
			return Output{Summary: errInvalidArray}, nil
		}
		sum += score
	}

	avg := float64(sum) / float64(len(answers))

	var profile, mix string
	switch {
	case avg < 2.5:
		profile = "Conservative"
		mix = "70% bonds / 25% equities / 5% cash"
	case avg < 3.5:
		profile = "Moderate"
		mix = "40% bonds / 55% equities / 5% cash"
	default:
		profile = "Aggressive"
		mix = "15% bonds / 80% equities / 5% cash"
	}

	summary := fmt.Sprintf("**Risk profile:** %s\n**Illustrative mix:** %s\n%s", profile, mix, disclaimerLine)

	return Output{
		Profile:      profile,
		AverageScore: avg,
		Mix:          mix,
		Summary:      summary,
	}, nil
}

// coerceInt truncates the element kinds a JSON array of "integers" shows up
// with in practice: numbers, numeric strings, and booleans.
func coerceInt(v any) (int, bool) {
	switch value := v.(type) {
	case float64:
		return int(math.Trunc(value)), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return parsed, true
	case bool:
		if value {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
