package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Rudhira-web/tracker/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "break down expenses by category" }
func (*chartCmd) Usage() string {
	return `chart [-o <file.svg>]

  Breaks down expenses by category and shows the pie layout as a legend.
  With -o the chart is written as an SVG file instead.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the chart to this SVG file instead of printing the legend")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	breakdown := store.Book().ExpenseBreakdown()

	if c.output == "" {
		printMarkdown(renderer.BreakdownMarkdown(breakdown, displayCurrency()))
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening chart file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := renderer.BreakdownSVG(out, breakdown, displayCurrency()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote chart to %s\n", c.output)
	return subcommands.ExitSuccess
}
