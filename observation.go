package fava

import (
	"fmt"
	"regexp"
)

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyPairRegex checks for the format: 6 uppercase letters (3 for base, 3 for quote).
var currencyPairRegex = regexp.MustCompile(`^[A-Z]{6}$`)

// ValidateCurrency checks that 'code' is a plausible ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid currency code %q: must be 3 uppercase letters", code)
	}
	return nil
}

// Pair represents an ordered (base, quote) currency pair, following the common
// market convention used in foreign exchange (FX) markets.
//
// - Base: the currency being priced.
// - Quote: the currency used for the price.
//
// The pair "EURUSD" represents the price of one Euro (EUR) in terms of
// US Dollars (USD). A pair is distinct from its reverse: (A,B) and (B,A) are
// two different pairs, and both may be observed in real-world data.
type Pair struct {
	Base  string
	Quote string
}

// NewPair returns a validated pair from base and quote currency codes.
func NewPair(base, quote string) (Pair, error) {
	if err := ValidateCurrency(base); err != nil {
		return Pair{}, err
	}
	if err := ValidateCurrency(quote); err != nil {
		return Pair{}, err
	}
	return Pair{Base: base, Quote: quote}, nil
}

// ParsePair parses the concatenated six-letter form, e.g. "EURUSD".
func ParsePair(s string) (Pair, error) {
	if !currencyPairRegex.MatchString(s) {
		return Pair{}, fmt.Errorf("invalid currency pair %q: must be 6 uppercase letters like \"EURUSD\"", s)
	}
	return Pair{Base: s[:3], Quote: s[3:]}, nil
}

// String returns the concatenated six-letter form.
func (p Pair) String() string { return p.Base + p.Quote }

// reversed returns the pair priced in the opposite direction.
func (p Pair) reversed() Pair { return Pair{Base: p.Quote, Quote: p.Base} }

// unordered returns the canonical key for the unordered currency pair {A,B}.
func (p Pair) unordered() Pair {
	if p.Quote < p.Base {
		return p.reversed()
	}
	return p
}

// Observation is a single validated rate record: one unit of Base was worth
// Rate units of Quote on Date.
type Observation struct {
	Date  Date   `json:"date"`
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Rate  Rate   `json:"rate"`
}

// Pair returns the directed pair this observation prices.
func (o Observation) Pair() Pair { return Pair{Base: o.Base, Quote: o.Quote} }

// Validate checks the observation fields. A zero rate is accepted: it yields
// no usable inverse but is a legitimate record.
func (o Observation) Validate() error {
	if o.Date.IsZero() {
		return fmt.Errorf("observation %s%s is missing a date", o.Base, o.Quote)
	}
	if err := ValidateCurrency(o.Base); err != nil {
		return err
	}
	return ValidateCurrency(o.Quote)
}
