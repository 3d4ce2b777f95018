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

type importCmd struct {
	input  string
	format string
	dryRun bool

	// JSONPath overrides for the json format.
	mapping tracker.JSONMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge records from a csv or json export" }
func (*importCmd) Usage() string {
	return `import -i <file> [-format csv|json] [-dry-run]

  Merges records from an external export into the book. csv expects the book
  line format, json expects a bank export and extracts fields with JSONPath
  expressions (see 'topic import' for the paths and how to override them).
  The import is strict: one bad record aborts and the book is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "File to import")
	f.StringVar(&c.format, "format", "csv", "Input format: csv or json")
	f.BoolVar(&c.dryRun, "dry-run", false, "Show what would be imported without writing the book")

	m := tracker.DefaultJSONMapping()
	f.StringVar(&c.mapping.Records, "records", m.Records, "JSONPath to the list of records (json format)")
	f.StringVar(&c.mapping.Date, "date", m.Date, "JSONPath to a record's date (json format)")
	f.StringVar(&c.mapping.Category, "category", m.Category, "JSONPath to a record's category (json format)")
	f.StringVar(&c.mapping.Description, "description", m.Description, "JSONPath to a record's description (json format)")
	f.StringVar(&c.mapping.Amount, "amount", m.Amount, "JSONPath to a record's amount (json format)")
	f.StringVar(&c.mapping.Kind, "kind", m.Kind, "JSONPath to a record's kind (json format)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var txs []tracker.Transaction
	switch c.format {
	case "csv":
		txs, err = tracker.ImportRecords(in)
	case "json":
		txs, err = tracker.ImportJSON(in, c.mapping)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want csv or json.\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	// The decoders return what the export says, the gate is here.
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: record %d: %v\n", c.input, i, err)
			return subcommands.ExitFailure
		}
	}

	if c.dryRun {
		entries := make([]renderer.Entry, 0, len(txs))
		for i, tx := range txs {
			entries = append(entries, renderer.Entry{Index: i, Transaction: tx})
		}
		printMarkdown(renderer.TransactionsMarkdown(entries, displayCurrency()))
		fmt.Printf("Dry run: %d transactions ready to import.\n", len(txs))
		return subcommands.ExitSuccess
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Append(txs...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported %d transactions to %s\n", len(txs), store.Path())
	return subcommands.ExitSuccess
}
