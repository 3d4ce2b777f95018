package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/Rudhira-web/tracker/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion reads the raw command line, so it runs before
	// anything else. The call exits on its own when completing.
	completion()

	// A .env next to the book keeps the flags out of every invocation.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("skipping .env: %v", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// An unknown verb may still be an extension on the PATH.
	if args := flag.Args(); len(args) > 0 && !cmd.Knows(args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion spec. Install it with
// COMP_INSTALL=1 xt.
func completion() {
	kinds := predict.Set{"INCOME", "EXPENSE"}

	spec := &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {
				Flags: map[string]complete.Predictor{
					"d": predict.Something,
					"c": predict.Something,
					"a": predict.Something,
					"m": predict.Something,
					"k": kinds,
				},
			},
			"list": {
				Flags: map[string]complete.Predictor{
					"c":    predict.Something,
					"k":    kinds,
					"head": predict.Something,
					"tail": predict.Something,
				},
			},
			"remove": {
				Flags: map[string]complete.Predictor{
					"i": predict.Something,
				},
			},
			"summary": {
				Flags: map[string]complete.Predictor{
					"d": predict.Something,
				},
			},
			"chart": {
				Flags: map[string]complete.Predictor{
					"o": predict.Files("*.svg"),
				},
			},
			"categories": {},
			"export": {
				Flags: map[string]complete.Predictor{
					"o": predict.Files("*.csv"),
				},
			},
			"import": {
				Flags: map[string]complete.Predictor{
					"i":           predict.Files("*"),
					"format":      predict.Set{"csv", "json"},
					"dry-run":     predict.Nothing,
					"records":     predict.Something,
					"date":        predict.Something,
					"category":    predict.Something,
					"description": predict.Something,
					"amount":      predict.Something,
					"kind":        predict.Something,
				},
			},
			"assist": {Args: predict.Something},
			"topic":  {Args: predict.Set{"readme", "chart", "format", "import", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"f":        predict.Files("*.csv"),
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
	}
	spec.Complete("xt")
}
