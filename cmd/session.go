package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alexsmit75/finance"
	"github.com/alexsmit75/finance/session"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run the interactive wallet menu" }
func (*sessionCmd) Usage() string {
	return `fin session

  Starts the interactive menu loop: add, find and edit records by
  answering prompts. This is also what plain "fin" runs.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (*sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	storage, err := openStorage()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := session.New(finance.NewRepository(storage), os.Stdin, os.Stdout)
	if err := s.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
