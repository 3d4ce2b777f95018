package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Rudhira-web/tracker"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the book records to a file" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes all records in the book line format, to stdout or to a file. The
  output is a valid book file, import reads it back.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "File to write, stdout when missing")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := tracker.EncodeBook(w, store.Book()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting book: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Successfully exported %d transactions to %s\n", store.Book().Len(), c.output)
	}
	return subcommands.ExitSuccess
}
