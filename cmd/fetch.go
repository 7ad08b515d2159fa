package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/c-vigo/fava"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	base    string
	symbols string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the latest reference rates from Frankfurter" }
func (*fetchCmd) Usage() string {
	return `fetch -b <base> [-s <symbols>]

  Fetches the latest ECB reference rates for the base currency from the
  Frankfurter API and appends them to the prices file, e.g.:

    fpc fetch -b USD -s EUR,GBP
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "base currency to fetch rates for (3-letter code)")
	f.StringVar(&c.symbols, "s", "", "comma-separated quote currencies (all of them by default)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var symbols []string
	for _, s := range strings.Split(c.symbols, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}

	observations, err := fava.FetchLatest(c.base, symbols...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rates for %q: %v\n", c.base, err)
		return subcommands.ExitFailure
	}
	return AppendObservations(observations...)
}
