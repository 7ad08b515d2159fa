package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/c-vigo/fava"
	"github.com/c-vigo/fava/renderer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type seriesCmd struct {
	base     string
	quote    string
	markdown bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "dump the full price history of a pair" }
func (*seriesCmd) Usage() string {
	return `series -b <base> -q <quote> [-md]

  Dumps the full chronological price history stored for a directed pair.
  It only lists observed data and never triangulates.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "currency being priced (3-letter code)")
	f.StringVar(&c.quote, "q", "", "currency the price is expressed in (3-letter code)")
	f.BoolVar(&c.markdown, "md", false, "print raw markdown instead of rendering it")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	s, ok := renderer.NewSeries(m, pair)
	if !ok {
		fmt.Fprintf(os.Stderr, "no series is stored for %s/%s\n", pair.Base, pair.Quote)
		return subcommands.ExitFailure
	}

	md := renderer.RenderSeries(s)
	if c.markdown {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}

	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
