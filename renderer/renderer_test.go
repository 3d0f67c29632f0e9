package renderer

import (
	"strings"
	"testing"

	"github.com/alexsmit75/finance"
)

func TestRecords(t *testing.T) {
	records := []finance.Record{
		{ID: "2", Date: "2024-01-01", Type: "income", Amount: "100", Category: "salary", Description: "Jan"},
		{ID: "3", Date: "2024-01-15", Type: "expense", Amount: "42.50", Category: "food", Description: "milk | bread"},
	}

	got := Records(records)

	wantLines := []string{
		"| ID | Date | Type | Amount | Category | Description |",
		"|---|---|---|---|---|---|",
		"| 2 | 2024-01-01 | income | 100 | salary | Jan |",
		`| 3 | 2024-01-15 | expense | 42.50 | food | milk \| bread |`,
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("Records output missing line %q.\nGot:\n%s", line, got)
		}
	}
}

func TestRecords_Empty(t *testing.T) {
	if got := Records(nil); !strings.Contains(got, "empty") {
		t.Errorf("Records(nil) = %q, want an empty-store notice", got)
	}
}

func TestIDs(t *testing.T) {
	testCases := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "some ids", ids: []string{"2", "3", "4"}, want: "Known ids: 2, 3, 4\n"},
		{name: "no ids", ids: nil, want: "The store holds no records yet.\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IDs(tc.ids); got != tc.want {
				t.Errorf("IDs(%v) = %q, want %q", tc.ids, got, tc.want)
			}
		})
	}
}
