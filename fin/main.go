package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/alexsmit75/finance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	// Plain "fin" keeps the original interactive interface.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "session")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion and exits early when invoked by
// the shell completion machinery.
func completion() {
	fieldFlags := map[string]complete.Predictor{
		"date":        predict.Nothing,
		"type":        predict.Set{"income", "expense"},
		"amount":      predict.Nothing,
		"category":    predict.Nothing,
		"description": predict.Nothing,
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"session": {},
			"add":     {Flags: fieldFlags},
			"find":    {},
			"edit":    {Flags: fieldFlags},
			"list": {Flags: map[string]complete.Predictor{
				"head": predict.Nothing,
				"tail": predict.Nothing,
				"ids":  predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "session", "storage", "ids"}},
		},
		Flags: map[string]complete.Predictor{
			"store-file":   predict.Files("*.csv"),
			"counter-file": predict.Files("*.txt"),
			"v":            predict.Nothing,
		},
	}
	c.Complete("fin")
}
