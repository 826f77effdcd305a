package stockquote

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lmercadov/finadvisor/internal/utils"
	"github.com/lmercadov/finadvisor/providers/tool"
)

const disabledNotice = "Live quotes disabled (missing FINNHUB_API_KEY). Set it and restart the server, " +
	"or rely on historical/planned inputs instead."

var finnhubBaseURL = "https://finnhub.io/api/v1"

var quoteClient = &http.Client{Timeout: 15 * time.Second}

// Config carries the quote tool's credential. An empty APIKey disables live
// quotes without disabling the tool itself.
type Config struct {
	APIKey string
}

// NewQuoteTool builds the live quote tool with the given credential.
func NewQuoteTool(cfg Config) *tool.Tool[Input, Output] {
	return tool.NewTool("quote", cfg.quote,
		tool.WithDescription("Get a live stock quote for a ticker symbol; reports a notice when live quotes are not configured."),
	)
}

// quote fetches a Finnhub snapshot for the symbol. A missing credential and
// a failed fetch both degrade to the same user-facing notice; the fetch
// failure is additionally logged.
func (c Config) quote(ctx context.Context, input Input) (Output, error) {
	symbol := strings.ToUpper(strings.TrimSpace(input.Symbol))

	if c.APIKey == "" {
		return Output{Symbol: symbol, Summary: disabledNotice}, nil
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("token", c.APIKey)

	endpoint := finnhubBaseURL + "/quote?" + params.Encode()
	_, payload, err := utils.DoGetSync[quoteAPIResponse](ctx, quoteClient, endpoint)
	if err != nil {
		slog.WarnContext(ctx, "stock quote fetch failed", "symbol", symbol, "error", err)
		return Output{Symbol: symbol, Summary: disabledNotice}, nil
	}

	output := Output{
		Symbol:       symbol,
		Available:    true,
		Price:        payload.Current,
		PrevClose:    payload.PrevClose,
		QuoteTimeUTC: time.Unix(payload.Timestamp, 0).UTC().Format("2006-01-02T15:04:05") + "Z",
	}

	if payload.Current != nil && payload.PrevClose != nil && *payload.PrevClose != 0 {
		change := *payload.Current - *payload.PrevClose
		changePct := change / *payload.PrevClose * 100.0
		output.Change = &change
		output.ChangePct = &changePct
	}

	output.Summary = fmt.Sprintf("**%s**\nPrice: %s | Prev Close: %s\nChange: %s (%s)\nTimestamp: %s",
		symbol,
		formatNumber(output.Price),
		formatNumber(output.PrevClose),
		formatNumber(output.Change),
		formatChangePct(output.ChangePct),
		output.QuoteTimeUTC,
	)

	return output, nil
}

func formatNumber(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatChangePct(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return utils.FormatPercent(*v) + "%"
}
