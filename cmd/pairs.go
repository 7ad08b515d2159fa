package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/c-vigo/fava/renderer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type pairsCmd struct {
	markdown bool
}

func (*pairsCmd) Name() string     { return "pairs" }
func (*pairsCmd) Synopsis() string { return "list the known currency pairs" }
func (*pairsCmd) Usage() string {
	return `pairs [-md]

  Lists every known currency pair in its canonical direction with its latest
  known rate. Pairs between operating currencies are listed in both
  directions (see the -operating-currencies app flag).
`
}

func (c *pairsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "print raw markdown instead of rendering it")
}

func (c *pairsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodePriceMap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderPairs(renderer.NewPairs(m, OperatingCurrencies()))
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
