package fava

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// This file contains code to persist rate observations as a JSONL file, one
// observation per line, human-readable and git-friendly:
//
//	{"date":"2024-01-15","base":"USD","quote":"EUR","rate":"0.85"}
//
// Rates are written as decimal strings to keep them exact.
//
// The price index has no incremental mutation API: new observations are
// appended to the file, and callers rebuild a whole new PriceMap from a fresh
// decode. In-flight queries keep seeing the old index until the new one is
// published.

// DecodePrices reads a JSONL stream of rate observations.
//
// Lines are validated individually with positional error messages. The result
// is sorted chronologically (stable, so same-day observations keep their
// input order) and is ready to be handed to NewPriceMap.
func DecodePrices(r io.Reader) ([]Observation, error) {
	var observations []Observation

	i := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var o Observation
		if err := json.Unmarshal([]byte(line), &o); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, line, err)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", i, err)
		}
		observations = append(observations, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error on line %d: %w", i, err)
	}

	sort.SliceStable(observations, func(a, b int) bool {
		return observations[a].Date.Before(observations[b].Date)
	})
	return observations, nil
}

// EncodePrice writes a single observation as one JSONL line.
func EncodePrice(w io.Writer, o Observation) error {
	var jw jsonObjectWriter
	jw.Append("date", o.Date).
		Append("base", o.Base).
		Append("quote", o.Quote).
		Append("rate", o.Rate)

	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal observation %s%s: %w", o.Base, o.Quote, err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("cannot write observation: %w", err)
	}
	return nil
}

// EncodePrices writes observations as a JSONL stream.
func EncodePrices(w io.Writer, observations ...Observation) error {
	for _, o := range observations {
		if err := EncodePrice(w, o); err != nil {
			return err
		}
	}
	return nil
}
