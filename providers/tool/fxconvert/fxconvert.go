package fxconvert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmercadov/finadvisor/internal/utils"
	"github.com/lmercadov/finadvisor/providers/tool"
)

// NewFxConvertTool builds the currency conversion tool. Providers are tried
// in order and any that errors is skipped; when all of them fail the tool
// still succeeds at the invocation boundary and reports the failure in the
// summary.
func NewFxConvertTool() *tool.Tool[Input, Output] {
	return tool.NewTool("fx_convert", Convert,
		tool.WithDescription("Convert an amount between currencies using live FX rate providers with automatic failover."),
	)
}

// Convert resolves the amount through the provider chain. The returned error
// is always nil: provider failures degrade to a fixed summary rather than a
// tool error.
func Convert(ctx context.Context, input Input) (Output, error) {
	from := strings.ToUpper(strings.TrimSpace(input.FromCurrency))
	to := strings.ToUpper(strings.TrimSpace(input.ToCurrency))

	for _, provider := range providerChain() {
		quote, err := provider.Convert(ctx, input.Amount, from, to)
		if err != nil {
			slog.WarnContext(ctx, "fx provider failed, trying next",
				"provider", provider.Name(),
				"from", from,
				"to", to,
				"error", err,
			)
			continue
		}

		summary := fmt.Sprintf("%s %s ≈ %s %s",
			utils.FormatAmount(input.Amount), from,
			utils.FormatAmount(quote.Converted), to,
		)
		if quote.HasRate {
			summary += " @ " + utils.FormatRate(quote.Rate)
		}

		return Output{
			FromCurrency:    from,
			ToCurrency:      to,
			Amount:          input.Amount,
			ConvertedAmount: quote.Converted,
			ImpliedRate:     quote.Rate,
			Provider:        provider.Name(),
			Summary:         summary,
		}, nil
	}

	return Output{
		FromCurrency: from,
		ToCurrency:   to,
		Amount:       input.Amount,
		Summary:      fmt.Sprintf("Unable to fetch FX rate for %s->%s right now.", from, to),
	}, nil
}
