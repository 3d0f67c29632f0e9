package finance

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file handles the store and counter wire formats.
// The store is a plain CSV file, header row first, one record per row,
// readable by any spreadsheet. The counter is a single line holding the
// last assigned id in base 10.

// DecodeStore reads a CSV store from r and returns its records in file
// order. The first row is the header; columns are matched by header name
// so a reordered file still decodes correctly. A header-only store yields
// an empty slice.
func DecodeStore(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate short rows, recordFromRow pads them

	header, err := cr.Read()
	if err == io.EOF {
		// A completely empty file has no header. Treat it as an empty
		// store rather than an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store header: %w", err)
	}

	// Map the file's column order onto the schema order.
	index := make([]int, len(Header))
	for i, name := range Header {
		index[i] = -1
		for j, col := range header {
			if strings.TrimSpace(col) == name {
				index[i] = j
				break
			}
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read store row: %w", err)
		}
		ordered := make([]string, len(Header))
		for i, j := range index {
			if j >= 0 && j < len(row) {
				ordered[i] = row[j]
			}
		}
		records = append(records, recordFromRow(ordered))
	}
	return records, nil
}

// EncodeStore writes the header followed by exactly the given records, in
// the given order. The header comes from the Header schema constant, so
// encoding an empty record set is valid and produces a header-only store.
func EncodeStore(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("could not write store header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("could not write record %q: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCounter reads the last assigned id from r.
func DecodeCounter(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("could not read counter: %w", err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("malformed counter %q: %w", strings.TrimSpace(line), err)
	}
	return value, nil
}

// EncodeCounter writes the last assigned id as a single text line.
func EncodeCounter(w io.Writer, value int) error {
	if _, err := fmt.Fprintf(w, "%d\n", value); err != nil {
		return fmt.Errorf("could not write counter: %w", err)
	}
	return nil
}
