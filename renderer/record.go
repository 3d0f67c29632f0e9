package renderer

import (
	"fmt"
	"strings"

	"github.com/alexsmit75/finance"
)

var tableHeader = []string{"ID", "Date", "Type", "Amount", "Category", "Description"}

// Record renders a single record as a one-row markdown table.
func Record(r finance.Record) string {
	return table(tableHeader, [][]string{r.Row()})
}

// Records renders the record set as a markdown table, in store order.
func Records(records []finance.Record) string {
	if len(records) == 0 {
		return "The store is empty.\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return table(tableHeader, rows)
}

// IDs renders the known-ids listing shown after a not-found lookup.
func IDs(ids []string) string {
	if len(ids) == 0 {
		return "The store holds no records yet.\n"
	}
	return fmt.Sprintf("Known ids: %s\n", strings.Join(ids, ", "))
}
