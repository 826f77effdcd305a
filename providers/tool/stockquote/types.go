package stockquote

// Input names the ticker to quote.
type Input struct {
	Symbol string `json:"symbol" jsonschema:"description=Ticker symbol such as AAPL or MSFT,required"`
}

// Output is the quote snapshot. Available reports whether a live quote was
// obtained; when false only Symbol and the notice summary are populated.
type Output struct {
	Symbol       string   `json:"symbol" jsonschema:"description=Upper-cased ticker symbol"`
	Available    bool     `json:"available" jsonschema:"description=Whether a live quote was obtained"`
	Price        *float64 `json:"price,omitempty" jsonschema:"description=Current price"`
	PrevClose    *float64 `json:"prev_close,omitempty" jsonschema:"description=Previous close price"`
	Change       *float64 `json:"change,omitempty" jsonschema:"description=Absolute change versus previous close"`
	ChangePct    *float64 `json:"change_pct,omitempty" jsonschema:"description=Percentage change versus previous close"`
	QuoteTimeUTC string   `json:"quote_time_utc,omitempty" jsonschema:"description=Quote timestamp in UTC"`
	Summary      string   `json:"summary" jsonschema:"description=Markdown quote report or availability notice"`
}

// quoteAPIResponse mirrors the Finnhub quote payload. Price fields are
// pointers so an absent key is distinguishable from zero.
type quoteAPIResponse struct {
	Current   *float64 `json:"c"`
	High      *float64 `json:"h"`
	Low       *float64 `json:"l"`
	Open      *float64 `json:"o"`
	PrevClose *float64 `json:"pc"`
	Timestamp int64    `json:"t"`
}
