package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/c-vigo/fava/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI assistant about your prices" }
func (*assistCmd) Usage() string {
	return `assist [<prompt> ...]

  Starts an interactive chat with an AI analyst that can query the prices
  file. Positional arguments are played as the first prompts. Requires a
  GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodePriceMap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating AI client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(m, OperatingCurrencies()))
	if err := a.Run(ctx, client, f.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error in assist session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
