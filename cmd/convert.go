package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/c-vigo/fava"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	date string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `convert [-d <date>] <amount> <from> <to>

  Converts an amount of money using the rate resolved for the pair, e.g.:

    fpc convert 100 USD EUR
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "resolve the rate as of this date (YYYY-MM-DD)")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "expected <amount> <from> <to>")
		return subcommands.ExitUsageError
	}
	value, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	pair, err := fava.NewPair(f.Arg(1), f.Arg(2))
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

	amount := fava.M(value, pair.Base)
	converted := amount.Convert(pt.Rate, pair.Quote)
	if pt.Date.IsZero() {
		fmt.Printf("%s = %s\n", amount, converted)
	} else {
		fmt.Printf("%s = %s (at %s as of %s)\n", amount, converted, pt.Rate, pt.Date)
	}
	return subcommands.ExitSuccess
}
