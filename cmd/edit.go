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

type editCmd struct {
	overrides finance.Overrides
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace fields of an existing record" }
func (*editCmd) Usage() string {
	return `fin edit [-date <d>] [-type <t>] [-amount <a>] [-category <c>] [-description <text>] <id>

  Replaces the given fields of the record with that id. Omitted flags
  keep the field's prior value, mirroring the blank-input rule of the
  interactive session. The record keeps its position in the store.

Usage Examples:
$ fin edit -amount 150 2
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.overrides.Date, "date", "", "New date; empty keeps the current value.")
	f.StringVar(&p.overrides.Type, "type", "", "New type; empty keeps the current value.")
	f.StringVar(&p.overrides.Amount, "amount", "", "New amount; empty keeps the current value.")
	f.StringVar(&p.overrides.Category, "category", "", "New category; empty keeps the current value.")
	f.StringVar(&p.overrides.Description, "description", "", "New description; empty keeps the current value.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit expects exactly one id argument.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	updated, err := repo.ReplaceByID(id, p.overrides)
	if errors.Is(err, finance.ErrNotFound) {
		return reportNotFound(repo, id)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error editing record: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Record updated.")
	printMarkdown(renderer.Record(updated))
	return subcommands.ExitSuccess
}
