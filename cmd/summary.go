package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Rudhira-web/tracker"
	"github.com/Rudhira-web/tracker/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expense and balance totals" }
func (*summaryCmd) Usage() string {
	return `summary [-d <date>]

  Displays the book totals: income, expense, and their balance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tracker.Today().String(), "Date stamped on the summary. See 'topic format' for supported date formats.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := tracker.NewSummary(store.Book(), on)
	printMarkdown(renderer.SummaryMarkdown(summary, displayCurrency()))

	return subcommands.ExitSuccess
}
