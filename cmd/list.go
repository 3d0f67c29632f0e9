package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alexsmit75/finance/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	head int
	tail int
	ids  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the records in the store" }
func (*listCmd) Usage() string {
	return `fin list [-head <n> | -tail <n>] [-ids]

  Lists records from the store in insertion order, with options for
  limiting the output.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N records.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N records.")
	f.BoolVar(&p.ids, "ids", false, "Show only the record ids.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.ids {
		ids, err := repo.IDs()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.IDs(ids))
		return subcommands.ExitSuccess
	}

	records, err := repo.Records()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.head > 0 && len(records) > p.head {
		records = records[:p.head]
	}
	if p.tail > 0 && len(records) > p.tail {
		records = records[len(records)-p.tail:]
	}

	printMarkdown(renderer.Records(records))
	return subcommands.ExitSuccess
}
