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

type removeCmd struct {
	index int
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a transaction from the book" }
func (*removeCmd) Usage() string {
	return `remove -i <index>

  Removes the transaction at the given index, as shown in the # column of
  list. An index that matches nothing is not an error, nothing is removed.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the transaction to remove")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Keep the target around so the confirmation can say what went away.
	var target tracker.Transaction
	for i, tx := range store.Book().Transactions() {
		if i == c.index {
			target = tx
			break
		}
	}

	removed, err := store.RemoveAt(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Println("nothing removed")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Removed: %s\n", renderer.Transaction(target, displayCurrency()))
	return subcommands.ExitSuccess
}
