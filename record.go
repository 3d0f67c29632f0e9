package finance

// Header is the fixed column order of the store file. The header is a
// schema constant rather than being derived from the first record, so an
// empty store is still a valid file with a header row.
var Header = []string{"id", "date", "type", "amount", "category", "description"}

// Record is a single wallet entry. Every field is raw text: the tool
// stores and retrieves values exactly as entered, it never parses dates
// or amounts.
type Record struct {
	ID          string
	Date        string
	Type        string
	Amount      string
	Category    string
	Description string
}

// Row returns the record fields in Header order.
func (r Record) Row() []string {
	return []string{r.ID, r.Date, r.Type, r.Amount, r.Category, r.Description}
}

// recordFromRow builds a Record from a CSV row in Header order. Short rows
// leave the trailing fields empty, extra columns are ignored.
func recordFromRow(row []string) Record {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Record{
		ID:          get(0),
		Date:        get(1),
		Type:        get(2),
		Amount:      get(3),
		Category:    get(4),
		Description: get(5),
	}
}

// Overrides holds replacement values for an edit. A blank field keeps the
// record's prior value, so the zero Overrides is a no-op.
type Overrides struct {
	Date        string
	Type        string
	Amount      string
	Category    string
	Description string
}

// Apply returns a copy of r with the non-blank overrides applied.
func (o Overrides) Apply(r Record) Record {
	if o.Date != "" {
		r.Date = o.Date
	}
	if o.Type != "" {
		r.Type = o.Type
	}
	if o.Amount != "" {
		r.Amount = o.Amount
	}
	if o.Category != "" {
		r.Category = o.Category
	}
	if o.Description != "" {
		r.Description = o.Description
	}
	return r
}
