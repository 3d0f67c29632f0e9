package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/alexsmit75/finance"
	"github.com/alexsmit75/finance/renderer"
	"github.com/google/subcommands"
)

type findCmd struct{}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "look up a record by its id" }
func (*findCmd) Usage() string {
	return `fin find <id>

  Prints the record with the given id. Ids are compared as text, first
  match wins. When no record matches, all known ids are listed instead.
`
}

func (*findCmd) SetFlags(f *flag.FlagSet) {}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: find expects exactly one id argument.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	record, err := repo.FindByID(id)
	if errors.Is(err, finance.ErrNotFound) {
		return reportNotFound(repo, id)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Record(record))
	return subcommands.ExitSuccess
}

// reportNotFound prints the not-found message with the full id listing
// and fails the command.
func reportNotFound(repo *finance.Repository, id string) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "No record with id %s.\n", id)
	ids, err := repo.IDs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IDs(ids))
	return subcommands.ExitFailure
}
