package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lmercadov/finadvisor/providers/observability"
)

// DoGetSync performs a synchronous HTTP GET request and decodes the JSON
// response into OutputStruct. url must already carry its encoded query
// parameters.
//
// Error handling strategy:
//   - context errors (timeout, cancellation) propagate through the client
//   - connection failures and non-2xx statuses return an error
//   - response body close errors are logged, never override the primary error
//   - JSON decode errors include a response preview for debugging
//
// Rate providers treat every error from this function uniformly: log and move
// to the next provider in the chain.
func DoGetSync[OutputStruct any](ctx context.Context, client *http.Client, url string) (*http.Response, *OutputStruct, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodGet),
			observability.String(observability.AttrHTTPURL, url),
		)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error", observability.Error(err))
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var resStruct OutputStruct
	if err := json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s",
			res.StatusCode, err, TruncateString(string(respBody), 500))
	}

	return res, &resStruct, nil
}
