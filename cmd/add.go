package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/c-vigo/fava"
	"github.com/google/subcommands"
)

type addCmd struct {
	date  string
	base  string
	quote string
	rate  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a price observation" }
func (*addCmd) Usage() string {
	return `add [-d <date>] -b <base> -q <quote> -r <rate>

  Appends one price observation to the prices file. A later observation for
  the same pair and day supersedes the earlier one on the next load.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fava.Today().String(), "day of the observation (YYYY-MM-DD)")
	f.StringVar(&c.base, "b", "", "currency being priced (3-letter code)")
	f.StringVar(&c.quote, "q", "", "currency the price is expressed in (3-letter code)")
	f.StringVar(&c.rate, "r", "", "price of one base unit in quote units")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := fava.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	rate, err := fava.ParseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid rate %q: %v\n", c.rate, err)
		return subcommands.ExitUsageError
	}

	o := fava.Observation{Date: on, Base: c.base, Quote: c.quote, Rate: rate}
	if err := o.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return AppendObservations(o)
}
