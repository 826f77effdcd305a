package fxconvert

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func withTestServers(t *testing.T, hostHandler, frankfurterHandler http.HandlerFunc) {
	t.Helper()

	hostServer := httptest.NewServer(hostHandler)
	frankfurterServer := httptest.NewServer(frankfurterHandler)
	t.Cleanup(hostServer.Close)
	t.Cleanup(frankfurterServer.Close)

	origHost, origFrankfurter := exchangerateHostBaseURL, frankfurterBaseURL
	exchangerateHostBaseURL = hostServer.URL
	frankfurterBaseURL = frankfurterServer.URL
	t.Cleanup(func() {
		exchangerateHostBaseURL = origHost
		frankfurterBaseURL = origFrankfurter
	})
}

func TestConvertUsesConvertEndpointFirst(t *testing.T) {
	var paths []string
	withTestServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			if r.URL.Path != "/convert" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if got := r.URL.Query().Get("from"); got != "USD" {
				t.Errorf("expected from=USD, got %q", got)
			}
			w.Write([]byte(`{"result": 1750.25}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("frankfurter should not be reached when the first provider answers")
		},
	)

	output, err := Convert(context.Background(), Input{Amount: 100, FromCurrency: "usd", ToCurrency: "mxn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected a single request, got %d", len(paths))
	}
	if output.Provider != "exchangerate.host/convert" {
		t.Errorf("unexpected provider %q", output.Provider)
	}
	expected := "100.00 USD ≈ 1,750.25 MXN @ 17.502500"
	if output.Summary != expected {
		t.Errorf("expected summary %q, got %q", expected, output.Summary)
	}
	if output.ConvertedAmount != 1750.25 {
		t.Errorf("expected converted amount 1750.25, got %v", output.ConvertedAmount)
	}
}

func TestConvertFallsBackToLatest(t *testing.T) {
	withTestServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/convert":
				w.WriteHeader(http.StatusBadGateway)
			case "/latest":
				if got := r.URL.Query().Get("base"); got != "EUR" {
					t.Errorf("expected base=EUR, got %q", got)
				}
				w.Write([]byte(`{"rates": {"USD": 1.08}}`))
			default:
				t.Errorf("unexpected path %q", r.URL.Path)
			}
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("frankfurter should not be reached when the rate table answers")
		},
	)

	output, err := Convert(context.Background(), Input{Amount: 200, FromCurrency: "EUR", ToCurrency: "USD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Provider != "exchangerate.host/latest" {
		t.Errorf("unexpected provider %q", output.Provider)
	}
	expected := "200.00 EUR ≈ 216.00 USD @ 1.080000"
	if output.Summary != expected {
		t.Errorf("expected summary %q, got %q", expected, output.Summary)
	}
}

func TestConvertFallsBackToFrankfurter(t *testing.T) {
	withTestServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/latest" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			// frankfurter scales the table by the requested amount.
			w.Write([]byte(`{"rates": {"MXN": 875.1234}}`))
		},
	)

	output, err := Convert(context.Background(), Input{Amount: 50, FromCurrency: "USD", ToCurrency: "MXN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Provider != "frankfurter.app/latest" {
		t.Errorf("unexpected provider %q", output.Provider)
	}
	if output.ConvertedAmount != 875.1234 {
		t.Errorf("expected converted amount 875.1234, got %v", output.ConvertedAmount)
	}
	if !strings.Contains(output.Summary, "@ 17.502468") {
		t.Errorf("expected implied rate clause, got %q", output.Summary)
	}
}

func TestConvertAllProvidersFail(t *testing.T) {
	withTestServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		},
	)

	output, err := Convert(context.Background(), Input{Amount: 100, FromCurrency: "usd", ToCurrency: "mxn"})
	if err != nil {
		t.Fatalf("degraded result must not be an error: %v", err)
	}
	expected := "Unable to fetch FX rate for USD->MXN right now."
	if output.Summary != expected {
		t.Errorf("expected summary %q, got %q", expected, output.Summary)
	}
	if output.Provider != "" {
		t.Errorf("expected empty provider, got %q", output.Provider)
	}
}

func TestConvertZeroAmountOmitsRate(t *testing.T) {
	withTestServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/convert" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			w.Write([]byte(`{"result": 0}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("fallback should not be reached")
		},
	)

	output, err := Convert(context.Background(), Input{Amount: 0, FromCurrency: "USD", ToCurrency: "MXN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "0.00 USD ≈ 0.00 MXN"
	if output.Summary != expected {
		t.Errorf("expected summary without rate clause %q, got %q", expected, output.Summary)
	}
}

func TestConvertMissingResultFallsThrough(t *testing.T) {
	withTestServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/convert":
				w.Write([]byte(`{}`))
			case "/latest":
				w.Write([]byte(`{"rates": {"JPY": 150.5}}`))
			}
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("frankfurter should not be reached")
		},
	)

	output, err := Convert(context.Background(), Input{Amount: 10, FromCurrency: "USD", ToCurrency: "JPY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Provider != "exchangerate.host/latest" {
		t.Errorf("expected fallback to the rate table, got %q", output.Provider)
	}
	if output.ConvertedAmount != 1505 {
		t.Errorf("expected 1505, got %v", output.ConvertedAmount)
	}
}
