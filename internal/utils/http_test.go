package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type ratesPayload struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func TestDoGetSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", request.Method)
		}
		if request.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept application/json, got %s", request.Header.Get("Accept"))
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"base":"USD","rates":{"MXN":17.1}}`))
	}))
	defer server.Close()

	_, payload, err := DoGetSync[ratesPayload](context.Background(), nil, server.URL)
	if err != nil {
		t.Fatalf("DoGetSync failed: %v", err)
	}
	if payload.Base != "USD" {
		t.Errorf("expected base USD, got %q", payload.Base)
	}
	if payload.Rates["MXN"] != 17.1 {
		t.Errorf("expected MXN rate 17.1, got %v", payload.Rates["MXN"])
	}
}

func TestDoGetSync_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte(`upstream down`))
	}))
	defer server.Close()

	_, _, err := DoGetSync[ratesPayload](context.Background(), nil, server.URL)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "non-2xx status 502") {
		t.Errorf("expected status in error, got: %s", err.Error())
	}
}

func TestDoGetSync_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`{broken`))
	}))
	defer server.Close()

	_, _, err := DoGetSync[ratesPayload](context.Background(), nil, server.URL)
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if !strings.Contains(err.Error(), "error unmarshaling response body") {
		t.Errorf("expected unmarshal error, got: %s", err.Error())
	}
}

func TestDoGetSync_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, _, err := DoGetSync[ratesPayload](context.Background(), nil, server.URL)
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if !strings.Contains(err.Error(), "error sending request") {
		t.Errorf("expected request error, got: %s", err.Error())
	}
}
