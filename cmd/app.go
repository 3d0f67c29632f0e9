// Package cmd implements the CLI application to manage the wallet.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/alexsmit75/finance"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands to register.
// A main package will iterate Commands to register them, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&addCmd{},
	&findCmd{},
	&editCmd{},
	&listCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// A .env file, when present, seeds the environment before the flag
// defaults below are computed.
var _ = godotenv.Load()

var storeFile = flag.String("store-file", envOr("FINANCE_STORE_FILE", "finances.csv"), "Path to the CSV store file holding the records")
var counterFile = flag.String("counter-file", envOr("FINANCE_COUNTER_FILE", "last_id.txt"), "Path to the file holding the last assigned id")
var verbose = flag.Bool("v", false, "Enable verbose logging")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// appLogger builds the diagnostic logger. It stays quiet unless -v is set.
func appLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// openStorage is the central function to open the wallet files. It
// materializes the store with a header row on first use.
func openStorage() (*finance.FileStorage, error) {
	storage := finance.NewFileStorage(*storeFile, *counterFile)
	if err := storage.EnsureStore(); err != nil {
		return nil, err
	}
	logger := appLogger()
	logger.Debug().
		Str("store", *storeFile).
		Str("counter", *counterFile).
		Msg("wallet files ready")
	return storage, nil
}

// openRepository opens the wallet files and wraps them in a repository.
func openRepository() (*finance.Repository, error) {
	storage, err := openStorage()
	if err != nil {
		return nil, err
	}
	return finance.NewRepository(storage), nil
}

// printMarkdown renders markdown for the terminal and prints it. When
// rendering fails the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
