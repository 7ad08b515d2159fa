package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/c-vigo/fava/docs"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type topicCmd struct {
	markdown bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print documentation about a topic" }
func (*topicCmd) Usage() string {
	return `topic [-md] [<name>]

  Prints the documentation for a topic. Without a name, lists the available
  topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "print raw markdown instead of rendering it")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var md string
	if f.NArg() == 0 {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		md = "# Topics\n\n* " + strings.Join(topics, "\n* ") + "\n"
	} else {
		var err error
		md, err = docs.GetTopic(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

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
