// Package session implements the interactive menu loop of the wallet: a
// synchronous prompt/response cycle over an input reader and an output
// writer, dispatching to the repository operations.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexsmit75/finance"
)

// Session drives the interactive menu. It reads commands and field
// values from in and prints everything to out, so tests can script a
// whole dialogue with a strings.Reader and a bytes.Buffer.
type Session struct {
	repo *finance.Repository
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a session over the given repository and streams.
func New(repo *finance.Repository, in io.Reader, out io.Writer) *Session {
	return &Session{repo: repo, in: bufio.NewScanner(in), out: out}
}

// Run loops on the menu until the user exits or the input ends. Lookup
// misses are reported and the loop continues; storage failures abort the
// session with an error.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, "\nPersonal finance wallet\n")
		fmt.Fprint(s.out, "1. Add a record\n")
		fmt.Fprint(s.out, "2. Find a record by id\n")
		fmt.Fprint(s.out, "3. Edit a record\n")
		fmt.Fprint(s.out, "4. Exit\n")

		choice, ok := s.prompt("Choose an action: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = s.add()
		case "2":
			err = s.find()
		case "3":
			err = s.edit()
		case "4":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice, please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints the label and reads one input line. ok is false when the
// input is exhausted, which ends the session like an explicit exit.
func (s *Session) prompt(label string) (value string, ok bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) add() error {
	id, err := s.repo.NextID()
	if err != nil {
		return err
	}

	record := finance.Record{ID: fmt.Sprintf("%d", id)}
	fields := []struct {
		label string
		value *string
	}{
		{"Date (YYYY-MM-DD): ", &record.Date},
		{"Type (income/expense): ", &record.Type},
		{"Amount: ", &record.Amount},
		{"Category: ", &record.Category},
		{"Description: ", &record.Description},
	}
	for _, f := range fields {
		value, ok := s.prompt(f.label)
		if !ok {
			return nil
		}
		*f.value = value
	}

	if err := s.repo.Append(record); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Record added with id %s.\n", record.ID)
	return nil
}

func (s *Session) find() error {
	id, ok := s.prompt("Record id to find: ")
	if !ok {
		return nil
	}

	record, err := s.repo.FindByID(id)
	if errors.Is(err, finance.ErrNotFound) {
		return s.reportNotFound(id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Found record:")
	s.printRecord(record)
	return nil
}

func (s *Session) edit() error {
	id, ok := s.prompt("Record id to edit: ")
	if !ok {
		return nil
	}

	record, err := s.repo.FindByID(id)
	if errors.Is(err, finance.ErrNotFound) {
		return s.reportNotFound(id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Current record:")
	s.printRecord(record)

	// A blank answer keeps the field's prior value.
	var overrides finance.Overrides
	fields := []struct {
		label string
		value *string
	}{
		{"New date (blank keeps current): ", &overrides.Date},
		{"New type (blank keeps current): ", &overrides.Type},
		{"New amount (blank keeps current): ", &overrides.Amount},
		{"New category (blank keeps current): ", &overrides.Category},
		{"New description (blank keeps current): ", &overrides.Description},
	}
	for _, f := range fields {
		value, ok := s.prompt(f.label)
		if !ok {
			return nil
		}
		*f.value = value
	}

	if _, err := s.repo.ReplaceByID(id, overrides); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Record updated.")
	return nil
}

// reportNotFound prints the not-found message and the full id listing as
// a recovery aid.
func (s *Session) reportNotFound(id string) error {
	fmt.Fprintf(s.out, "No record with id %s.\n", id)
	ids, err := s.repo.IDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(s.out, "The store holds no records yet.")
		return nil
	}
	fmt.Fprintf(s.out, "Known ids: %s\n", strings.Join(ids, ", "))
	return nil
}

func (s *Session) printRecord(r finance.Record) {
	fmt.Fprintf(s.out, "  id:          %s\n", r.ID)
	fmt.Fprintf(s.out, "  date:        %s\n", r.Date)
	fmt.Fprintf(s.out, "  type:        %s\n", r.Type)
	fmt.Fprintf(s.out, "  amount:      %s\n", r.Amount)
	fmt.Fprintf(s.out, "  category:    %s\n", r.Category)
	fmt.Fprintf(s.out, "  description: %s\n", r.Description)
}
