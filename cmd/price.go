package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/c-vigo/fava"
	"github.com/google/subcommands"
)

type priceCmd struct {
	base  string
	quote string
	date  string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "resolve the rate between two currencies" }
func (*priceCmd) Usage() string {
	return `price -b <base> -q <quote> [-d <date>]

  Resolves the most recent known rate for one base unit in quote units, on or
  before the given date (latest known by default). When the pair was never
  observed directly, a one-hop triangulation through a third currency is
  attempted.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "currency being priced (3-letter code)")
	f.StringVar(&c.quote, "q", "", "currency the price is expressed in (3-letter code)")
	f.StringVar(&c.date, "d", "", "resolve the rate as of this date (YYYY-MM-DD)")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := fava.NewPair(c.base, c.quote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	m, err := DecodePriceMap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	var pt fava.PricePoint
	var ok bool
	if c.date == "" {
		pt, ok = m.PricePoint(pair)
	} else {
		on, err := fava.ParseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		pt, ok = m.PricePointAsOf(pair, on)
	}

	if !ok {
		fmt.Fprintf(os.Stderr, "no rate is known for %s/%s\n", pair.Base, pair.Quote)
		return subcommands.ExitFailure
	}

	if pt.Date.IsZero() {
		fmt.Printf("1 %s = %s %s\n", pair.Base, pt.Rate, pair.Quote)
	} else {
		fmt.Printf("1 %s = %s %s (as of %s)\n", pair.Base, pt.Rate, pair.Quote, pt.Date)
	}
	return subcommands.ExitSuccess
}
