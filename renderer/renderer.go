// Package renderer turns wallet values into markdown strings. The cmd
// package pipes them through a terminal markdown renderer; plain output
// stays readable too.
package renderer

import (
	"strings"
)

// escape neutralizes characters that would break a markdown table cell.
// Field values are raw user text and may contain anything.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// table renders a markdown table with the given header and rows.
func table(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(escape(c))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for range header {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
