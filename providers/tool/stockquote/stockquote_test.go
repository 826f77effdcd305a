package stockquote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func withQuoteServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	orig := finnhubBaseURL
	finnhubBaseURL = server.URL
	t.Cleanup(func() { finnhubBaseURL = orig })
}

func TestQuoteWithoutCredential(t *testing.T) {
	withQuoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made without a credential")
	})

	output, err := Config{}.quote(context.Background(), Input{Symbol: "aapl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Available {
		t.Error("quote must not be available without a credential")
	}
	if output.Symbol != "AAPL" {
		t.Errorf("expected upper-cased symbol, got %q", output.Symbol)
	}
	if !strings.HasPrefix(output.Summary, "Live quotes disabled (missing FINNHUB_API_KEY).") {
		t.Errorf("expected the disabled notice, got %q", output.Summary)
	}
}

func TestQuoteSuccess(t *testing.T) {
	withQuoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "NVDA" {
			t.Errorf("expected symbol=NVDA, got %q", got)
		}
		if got := r.URL.Query().Get("token"); got != "test-key" {
			t.Errorf("expected injected token, got %q", got)
		}
		w.Write([]byte(`{"c": 130.5, "h": 132, "l": 128, "o": 129, "pc": 125.5, "t": 1735689600}`))
	})

	output, err := Config{APIKey: "test-key"}.quote(context.Background(), Input{Symbol: "nvda"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Available {
		t.Fatal("expected an available quote")
	}
	if output.Change == nil || *output.Change != 5 {
		t.Errorf("expected change 5, got %v", output.Change)
	}
	for _, line := range []string{
		"**NVDA**",
		"Price: 130.5 | Prev Close: 125.5",
		"Change: 5 (3.98%)",
		"Timestamp: 2025-01-01T00:00:00Z",
	} {
		if !strings.Contains(output.Summary, line) {
			t.Errorf("summary is missing %q:\n%s", line, output.Summary)
		}
	}
}

func TestQuoteZeroPrevCloseOmitsChange(t *testing.T) {
	withQuoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"c": 10, "pc": 0, "t": 0}`))
	})

	output, err := Config{APIKey: "test-key"}.quote(context.Background(), Input{Symbol: "IPO"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Change != nil || output.ChangePct != nil {
		t.Error("change must be omitted when previous close is zero")
	}
	if !strings.Contains(output.Summary, "Change: n/a (n/a)") {
		t.Errorf("expected n/a change clause:\n%s", output.Summary)
	}
}

func TestQuoteFetchFailureDegradesToNotice(t *testing.T) {
	withQuoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	output, err := Config{APIKey: "test-key"}.quote(context.Background(), Input{Symbol: "MSFT"})
	if err != nil {
		t.Fatalf("fetch failure must not be an error: %v", err)
	}
	if output.Available {
		t.Error("quote must not be available after a failed fetch")
	}
	if !strings.HasPrefix(output.Summary, "Live quotes disabled") {
		t.Errorf("expected the disabled notice, got %q", output.Summary)
	}
}
