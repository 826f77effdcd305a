package fxconvert

// Input holds the conversion request: a non-negative amount and two
// ISO-4217-like currency codes. Codes are upper-cased and trimmed before use
// but not validated against a fixed ISO list; unrecognized codes surface as
// provider failures.
type Input struct {
	Amount       float64 `json:"amount" jsonschema:"description=Amount in the source currency,required"`
	FromCurrency string  `json:"from_currency" jsonschema:"description=Source currency code (e.g. USD),required"`
	ToCurrency   string  `json:"to_currency" jsonschema:"description=Target currency code (e.g. MXN),required"`
}

// Output carries the resolved conversion plus a human-readable summary. When
// every provider in the chain fails, only the currency fields and the
// failure summary are populated.
type Output struct {
	FromCurrency    string  `json:"from_currency" jsonschema:"description=Normalized source currency code"`
	ToCurrency      string  `json:"to_currency" jsonschema:"description=Normalized target currency code"`
	Amount          float64 `json:"amount" jsonschema:"description=Requested amount in the source currency"`
	ConvertedAmount float64 `json:"converted_amount,omitempty" jsonschema:"description=Amount converted to the target currency"`
	ImpliedRate     float64 `json:"implied_rate,omitempty" jsonschema:"description=Effective rate derived from the conversion"`
	Provider        string  `json:"provider,omitempty" jsonschema:"description=Rate provider that answered"`
	Summary         string  `json:"summary" jsonschema:"description=Human-readable conversion result"`
}

// === Internal API response types ===

// convertAPIResponse is the exchangerate.host /convert payload. Result is a
// pointer because some responses omit it and carry only a rate table.
type convertAPIResponse struct {
	Result *float64 `json:"result"`
}

// latestAPIResponse is the rate-table payload shared by the
// exchangerate.host and frankfurter.app /latest endpoints.
type latestAPIResponse struct {
	Rates map[string]float64 `json:"rates"`
}
