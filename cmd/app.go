// Package cmd implements the CLI application to query and maintain a price file.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/c-vigo/fava"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&priceCmd{}, "queries")
	c.Register(&convertCmd{}, "queries")
	c.Register(&pairsCmd{}, "queries")
	c.Register(&seriesCmd{}, "queries")

	c.Register(&addCmd{}, "observations")
	c.Register(&fetchCmd{}, "observations")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var pricesFile = flag.String("prices-file", "prices.jsonl", "Path to the price observations file (JSONL format)")
var operatingCurrencies = flag.String("operating-currencies", "", "Comma-separated list of operating currencies (e.g. \"USD,EUR\")")

// OperatingCurrencies returns the operating currencies from the app flags.
func OperatingCurrencies() []string {
	var currencies []string
	for _, c := range strings.Split(*operatingCurrencies, ",") {
		if c = strings.TrimSpace(c); c != "" {
			currencies = append(currencies, c)
		}
	}
	return currencies
}

// DecodePriceMap loads the app prices file and builds the index from it.
// A missing file is an empty index, not an error.
func DecodePriceMap() (*fava.PriceMap, error) {
	f, err := os.Open(*pricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return fava.NewPriceMap(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open prices file %q: %w", *pricesFile, err)
	}
	defer f.Close()

	observations, err := fava.DecodePrices(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read prices file %q: %w", *pricesFile, err)
	}
	return fava.NewPriceMap(observations), nil
}

// AppendObservations appends observations to the app prices file. The index
// is rebuilt from the file on the next load, there is no in-place update.
func AppendObservations(observations ...fava.Observation) subcommands.ExitStatus {
	f, err := os.OpenFile(*pricesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening prices file %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fava.EncodePrices(f, observations...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to prices file %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %d observation(s) to %s\n", len(observations), *pricesFile)
	return subcommands.ExitSuccess
}
