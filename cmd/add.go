package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rudhira-web/tracker"
	"github.com/google/subcommands"
)

// appendTransaction records a transaction in the book file.
func appendTransaction(tx tracker.Transaction) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}
	if err := store.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended transaction to %s\n", store.Path())
	return subcommands.ExitSuccess
}

// --- Add Command ---

type addCmd struct {
	date        string
	category    string
	description string
	amount      string
	kind        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `add -c <category> -a <amount> [-d <date>] [-m <description>] [-k <kind>]

  Records a transaction in the book. Expenses are the default, use -k INCOME
  for money coming in.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tracker.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Category the transaction belongs to")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal")
	f.StringVar(&c.description, "m", "", "An optional description for the transaction")
	f.StringVar(&c.kind, "k", tracker.Expense.String(), "Transaction kind (INCOME or EXPENSE)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := tracker.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := tracker.ParseKind(strings.ToUpper(c.kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := tracker.NewTransaction(day, c.category, c.description, amount, kind)
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}
