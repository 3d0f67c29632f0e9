package session

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/alexsmit75/finance"
)

// runScript feeds the given input lines to a session over the storage and
// returns the captured output.
func runScript(t *testing.T, storage *finance.MemStorage, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	s := New(finance.NewRepository(storage), in, &out)
	if err := s.Run(); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return out.String()
}

func TestSession_AddThenExit(t *testing.T) {
	storage := finance.NewMemStorage()
	out := runScript(t, storage,
		"1",
		"2024-01-01",
		"income",
		"100",
		"salary",
		"Jan",
		"4",
	)

	if !strings.Contains(out, "Record added with id 2.") {
		t.Errorf("output missing add confirmation:\n%s", out)
	}
	want := []finance.Record{{ID: "2", Date: "2024-01-01", Type: "income", Amount: "100", Category: "salary", Description: "Jan"}}
	if !reflect.DeepEqual(storage.Records, want) {
		t.Errorf("store = %+v, want %+v", storage.Records, want)
	}
	if storage.Counter != 2 {
		t.Errorf("counter = %d, want 2", storage.Counter)
	}
}

func TestSession_FindShowsRecord(t *testing.T) {
	storage := finance.NewMemStorage(
		finance.Record{ID: "2", Date: "2024-01-01", Type: "income", Amount: "100", Category: "salary", Description: "Jan"},
	)
	out := runScript(t, storage, "2", "2", "4")

	for _, want := range []string{"Found record:", "id:          2", "amount:      100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSession_FindNotFoundListsIDs(t *testing.T) {
	storage := finance.NewMemStorage(
		finance.Record{ID: "2"},
		finance.Record{ID: "3"},
	)
	out := runScript(t, storage, "2", "99", "4")

	if !strings.Contains(out, "No record with id 99.") {
		t.Errorf("output missing not-found message:\n%s", out)
	}
	if !strings.Contains(out, "Known ids: 2, 3") {
		t.Errorf("output missing id listing:\n%s", out)
	}
}

func TestSession_EditKeepsBlankFields(t *testing.T) {
	original := finance.Record{ID: "2", Date: "2024-01-01", Type: "income", Amount: "100", Category: "salary", Description: "Jan"}
	storage := finance.NewMemStorage(original)

	out := runScript(t, storage,
		"3",
		"2",
		"",    // date kept
		"",    // type kept
		"150", // amount replaced
		"",    // category kept
		"",    // description kept
		"4",
	)

	if !strings.Contains(out, "Record updated.") {
		t.Errorf("output missing update confirmation:\n%s", out)
	}
	want := original
	want.Amount = "150"
	if !reflect.DeepEqual(storage.Records, []finance.Record{want}) {
		t.Errorf("store = %+v, want %+v", storage.Records, []finance.Record{want})
	}
}

func TestSession_EditNotFound(t *testing.T) {
	storage := finance.NewMemStorage(finance.Record{ID: "2"})
	out := runScript(t, storage, "3", "7", "4")

	if !strings.Contains(out, "No record with id 7.") {
		t.Errorf("output missing not-found message:\n%s", out)
	}
	if !strings.Contains(out, "Known ids: 2") {
		t.Errorf("output missing id listing:\n%s", out)
	}
	// A failed edit prompts for no field values and writes nothing.
	if strings.Contains(out, "New date") {
		t.Errorf("edit prompted for values on a missing record:\n%s", out)
	}
}

func TestSession_InvalidChoiceStaysInMenu(t *testing.T) {
	storage := finance.NewMemStorage()
	out := runScript(t, storage, "x", "4")

	if !strings.Contains(out, "Invalid choice, please try again.") {
		t.Errorf("output missing invalid-choice message:\n%s", out)
	}
	// The menu is shown again after the bad input.
	if strings.Count(out, "Personal finance wallet") != 2 {
		t.Errorf("menu shown %d times, want 2:\n%s", strings.Count(out, "Personal finance wallet"), out)
	}
}

func TestSession_EndOfInputExits(t *testing.T) {
	storage := finance.NewMemStorage()
	// No explicit exit command: the input just ends.
	out := runScript(t, storage, "1", "2024-01-01")
	if !strings.Contains(out, "Type (income/expense): ") {
		t.Errorf("session did not reach the type prompt:\n%s", out)
	}
	if len(storage.Records) != 0 {
		t.Errorf("aborted add must not write, store = %+v", storage.Records)
	}
}
