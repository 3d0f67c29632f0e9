package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alexsmit75/finance"
	"github.com/google/subcommands"
)

type addCmd struct {
	date        string
	txType      string
	amount      string
	category    string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new record to the store" }
func (*addCmd) Usage() string {
	return `fin add [-date <d>] [-type <t>] [-amount <a>] [-category <c>] [-description <text>]

  Appends a record with the next sequential id. Values are stored as
  given; nothing is validated or parsed.

Usage Examples:
$ fin add -date 2024-01-01 -type income -amount 100 -category salary -description "Jan"
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Record date, conventionally YYYY-MM-DD.")
	f.StringVar(&p.txType, "type", "", "Record type, conventionally income or expense.")
	f.StringVar(&p.amount, "amount", "", "Record amount, stored as text.")
	f.StringVar(&p.category, "category", "", "Record category.")
	f.StringVar(&p.description, "description", "", "Record description.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := repo.NextID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error assigning id: %v\n", err)
		return subcommands.ExitFailure
	}

	record := finance.Record{
		ID:          fmt.Sprintf("%d", id),
		Date:        p.date,
		Type:        p.txType,
		Amount:      p.amount,
		Category:    p.category,
		Description: p.description,
	}
	if err := repo.Append(record); err != nil {
		fmt.Fprintf(os.Stderr, "Error appending record: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Record added with id %s.\n", record.ID)
	return subcommands.ExitSuccess
}
