package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// setTempWallet points the global store and counter flags at a temp
// directory and restores them when the test ends.
func setTempWallet(t *testing.T) (store, counter string) {
	t.Helper()
	dir := t.TempDir()
	store = filepath.Join(dir, "finances.csv")
	counter = filepath.Join(dir, "last_id.txt")

	oldStore, oldCounter := storeFile, counterFile
	storeFile, counterFile = &store, &counter
	t.Cleanup(func() { storeFile, counterFile = oldStore, oldCounter })
	return store, counter
}

func runCmd(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse args %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	store, counter := setTempWallet(t)

	status := runCmd(t, &addCmd{}, "-date", "2024-01-01", "-type", "income", "-amount", "100", "-category", "salary", "-description", "Jan")
	if status != subcommands.ExitSuccess {
		t.Fatalf("first add: expected ExitSuccess, got %v", status)
	}
	status = runCmd(t, &addCmd{}, "-date", "2024-01-02", "-type", "expense", "-amount", "30", "-category", "food", "-description", "lunch")
	if status != subcommands.ExitSuccess {
		t.Fatalf("second add: expected ExitSuccess, got %v", status)
	}

	content, err := os.ReadFile(store)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	want := "id,date,type,amount,category,description\n" +
		"2,2024-01-01,income,100,salary,Jan\n" +
		"3,2024-01-02,expense,30,food,lunch\n"
	if string(content) != want {
		t.Errorf("store mismatch.\nGot:\n%s\nWant:\n%s", content, want)
	}

	counterContent, err := os.ReadFile(counter)
	if err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	if strings.TrimSpace(string(counterContent)) != "3" {
		t.Errorf("counter = %q, want 3", counterContent)
	}
}

func TestAddCreatesStoreOnFirstRun(t *testing.T) {
	store, _ := setTempWallet(t)

	if status := runCmd(t, &listCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("list on fresh wallet: expected ExitSuccess, got %v", status)
	}

	content, err := os.ReadFile(store)
	if err != nil {
		t.Fatalf("store was not materialized: %v", err)
	}
	if string(content) != "id,date,type,amount,category,description\n" {
		t.Errorf("fresh store = %q, want header only", content)
	}
}

func TestListRejectsHeadAndTailTogether(t *testing.T) {
	setTempWallet(t)
	if status := runCmd(t, &listCmd{}, "-head", "1", "-tail", "1"); status != subcommands.ExitUsageError {
		t.Errorf("expected ExitUsageError, got %v", status)
	}
}
