// Package cmd implements the CLI application to manage a book of transactions.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Rudhira-web/tracker"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// commands lists every verb with its help group. Register installs them, the
// extension fallback consults the names.
var commands = []struct {
	cmd   subcommands.Command
	group string
}{
	{&addCmd{}, "records"},
	{&listCmd{}, "records"},
	{&removeCmd{}, "records"},

	{&summaryCmd{}, "reports"},
	{&chartCmd{}, "reports"},
	{&categoriesCmd{}, "reports"},

	{&exportCmd{}, "exchange"},
	{&importCmd{}, "exchange"},

	{&assistCmd{}, "help"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, reg := range commands {
		c.Register(reg.cmd, reg.group)
	}
}

// Knows reports whether verb names a built-in command, as opposed to a
// candidate extension.
func Knows(verb string) bool {
	switch verb {
	case "help", "flags", "commands":
		return true
	}
	for _, reg := range commands {
		if reg.cmd.Name() == verb {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	bookFile        = flag.String("f", "", "Path to the book file, defaults to "+DefaultBookFile)
	defaultCurrency = flag.String("currency", "", "Currency code used to display amounts (e.g. USD)")
	Verbose         = flag.Bool("v", false, "Log more details about what the command does")
)

// DefaultBookFile is where transactions live unless -f or TRACKER_FILE says otherwise.
const DefaultBookFile = "transactions.csv"

// bookPath resolves the book file: the -f flag, then TRACKER_FILE, then the
// default. Resolved late so that a .env file loaded in main is honored.
func bookPath() string {
	if *bookFile != "" {
		return *bookFile
	}
	if path := os.Getenv(EnvBookFile); path != "" {
		return path
	}
	return DefaultBookFile
}

// displayCurrency resolves the display currency: the -currency flag, then
// TRACKER_CURRENCY, then none (plain two-decimal amounts).
func displayCurrency() string {
	if *defaultCurrency != "" {
		return *defaultCurrency
	}
	return os.Getenv(EnvCurrency)
}

// verbose reports whether verbose logging is on, via -v or TRACKER_VERBOSE.
func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// OpenStore opens the book selected by the global flags.
func OpenStore() (*tracker.Store, error) {
	return tracker.Open(bookPath())
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
