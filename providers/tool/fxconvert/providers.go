package fxconvert

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lmercadov/finadvisor/internal/utils"
)

var (
	exchangerateHostBaseURL = "https://api.exchangerate.host"
	frankfurterBaseURL      = "https://api.frankfurter.app"
)

const requestTimeout = 5 * time.Second

// fxClient bounds each provider attempt: 5s to connect, 5s overall.
var fxClient = &http.Client{
	Timeout: requestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{Timeout: requestTimeout}).DialContext,
	},
}

// Quote is one provider's answer: the converted amount and, when derivable,
// the effective rate.
type Quote struct {
	Converted float64
	Rate      float64
	HasRate   bool
}

// RateProvider is one strategy in the conversion chain. Any error is treated
// uniformly by the resolver: log and fall through to the next provider.
type RateProvider interface {
	Name() string
	Convert(ctx context.Context, amount float64, from, to string) (Quote, error)
}

// providerChain returns the resolver's strategies in priority order:
// exchangerate.host direct convert, exchangerate.host rate table, then
// frankfurter.app as the independent fallback vendor.
func providerChain() []RateProvider {
	return []RateProvider{
		hostConvertProvider{},
		hostLatestProvider{},
		frankfurterProvider{},
	}
}

// hostConvertProvider asks exchangerate.host for a directly converted amount.
type hostConvertProvider struct{}

func (hostConvertProvider) Name() string { return "exchangerate.host/convert" }

func (hostConvertProvider) Convert(ctx context.Context, amount float64, from, to string) (Quote, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	endpoint := exchangerateHostBaseURL + "/convert?" + params.Encode()
	_, payload, err := utils.DoGetSync[convertAPIResponse](ctx, fxClient, endpoint)
	if err != nil {
		return Quote{}, err
	}
	if payload.Result == nil {
		return Quote{}, fmt.Errorf("convert response carries no result")
	}

	quote := Quote{Converted: *payload.Result}
	if amount != 0 {
		quote.Rate = *payload.Result / amount
		quote.HasRate = true
	}
	return quote, nil
}

// hostLatestProvider is the same-vendor fallback: fetch the rate table with
// the source currency as base and multiply locally.
type hostLatestProvider struct{}

func (hostLatestProvider) Name() string { return "exchangerate.host/latest" }

func (hostLatestProvider) Convert(ctx context.Context, amount float64, from, to string) (Quote, error) {
	params := url.Values{}
	params.Set("base", from)
	params.Set("symbols", to)

	endpoint := exchangerateHostBaseURL + "/latest?" + params.Encode()
	_, payload, err := utils.DoGetSync[latestAPIResponse](ctx, fxClient, endpoint)
	if err != nil {
		return Quote{}, err
	}

	rate, exists := payload.Rates[to]
	if !exists {
		return Quote{}, fmt.Errorf("rate table is missing %s", to)
	}

	return Quote{Converted: amount * rate, Rate: rate, HasRate: true}, nil
}

// frankfurterProvider queries frankfurter.app, which scales the rate table by
// the requested amount, so the table entry already is the converted value.
type frankfurterProvider struct{}

func (frankfurterProvider) Name() string { return "frankfurter.app/latest" }

func (frankfurterProvider) Convert(ctx context.Context, amount float64, from, to string) (Quote, error) {
	params := url.Values{}
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("from", from)
	params.Set("to", to)

	endpoint := frankfurterBaseURL + "/latest?" + params.Encode()
	_, payload, err := utils.DoGetSync[latestAPIResponse](ctx, fxClient, endpoint)
	if err != nil {
		return Quote{}, err
	}

	converted, exists := payload.Rates[to]
	if !exists {
		return Quote{}, fmt.Errorf("rate table is missing %s", to)
	}

	quote := Quote{Converted: converted}
	if amount != 0 {
		quote.Rate = converted / amount
		quote.HasRate = true
	}
	return quote, nil
}
