package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rudhira-web/tracker"
	"github.com/Rudhira-web/tracker/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	category string
	kind     string
	head     int
	tail     int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the recorded transactions" }
func (*listCmd) Usage() string {
	return `list [-c <category>] [-k <kind>] [-head <n>] [-tail <n>]

  Lists transactions from the book, with options for filtering and limiting
  the output. The # column is the index the remove command takes.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Show only transactions of this category.")
	f.StringVar(&c.kind, "k", "", "Show only transactions of this kind (INCOME or EXPENSE).")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var kindSet bool
	var kind tracker.Kind
	if c.kind != "" {
		var err error
		kind, err = tracker.ParseKind(strings.ToUpper(c.kind))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
			return subcommands.ExitUsageError
		}
		kindSet = true
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accept := func(tx tracker.Transaction) bool {
		if c.category != "" && tx.Category != c.category {
			return false
		}
		if kindSet && tx.Kind != kind {
			return false
		}
		return true
	}

	// Indices are positions in the full book, so they survive the filters.
	var entries []renderer.Entry
	for i, tx := range store.Book().Transactions(accept) {
		entries = append(entries, renderer.Entry{Index: i, Transaction: tx})
	}

	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(entries, displayCurrency()))

	return subcommands.ExitSuccess
}
