package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the distinct categories in use" }
func (*categoriesCmd) Usage() string {
	return `categories

  Prints the distinct categories in the book, sorted, one per line. Handy for
  shell pipelines and for the -c filter of list.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, category := range store.Book().Categories() {
		fmt.Println(category)
	}
	return subcommands.ExitSuccess
}
