package fava

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	The Frankfurter API serves the ECB daily reference rates:

	GET https://api.frankfurter.dev/v1/latest?base=USD&symbols=EUR,GBP

	{
	    "base": "USD",
	    "date": "2024-01-15",
	    "rates": {
	        "EUR": 0.85,
	        "GBP": 0.73
	    }
	}
*/

const frankfurterURL = "https://api.frankfurter.dev/v1"

// FetchLatest retrieves the latest reference rates for one base currency and
// returns them as observations, one per quote symbol. With no symbols, all
// currencies the service knows are returned.
//
// Responses are cached on disk with a daily expiry, so repeated calls within
// a day hit the network once.
func FetchLatest(base string, symbols ...string) ([]Observation, error) {
	if err := ValidateCurrency(base); err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%s/latest?base=%s", frankfurterURL, base)
	if len(symbols) > 0 {
		addr += "&symbols=" + strings.Join(symbols, ",")
	}

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", base, err)
	}
	return parseFrankfurter(jobj)
}

// parseFrankfurter extracts observations from a decoded Frankfurter response.
// Split from the HTTP call so it can be exercised on canned payloads.
func parseFrankfurter(jobj any) ([]Observation, error) {
	jdate, err := jsonpath.Get("$.date", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates response: %q %w", "$.date", err)
	}
	sdate, ok := jdate.(string)
	if !ok {
		return nil, fmt.Errorf("error parsing rates response: %q is not a string but %T", "$.date", jdate)
	}
	on, err := ParseDate(sdate)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates response: %w", err)
	}

	jbase, err := jsonpath.Get("$.base", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates response: %q %w", "$.base", err)
	}
	base, ok := jbase.(string)
	if !ok {
		return nil, fmt.Errorf("error parsing rates response: %q is not a string but %T", "$.base", jbase)
	}

	jrates, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates response: %q %w", "$.rates", err)
	}
	rates, ok := jrates.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing rates response: %q is not an object but %T", "$.rates", jrates)
	}

	// Sort quote symbols for a stable observation order.
	symbols := make([]string, 0, len(rates))
	for symbol := range rates {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	observations := make([]Observation, 0, len(symbols))
	for _, symbol := range symbols {
		val, ok := rates[symbol].(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing rates response: rate %q is not a number but %T", symbol, rates[symbol])
		}
		o := Observation{Date: on, Base: base, Quote: symbol, Rate: R(val)}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("error parsing rates response: %w", err)
		}
		observations = append(observations, o)
	}
	return observations, nil
}
