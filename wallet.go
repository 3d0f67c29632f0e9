package finance

import (
	"errors"
	"iter"
)

// ErrNotFound reports a lookup for an id that has no record in the store.
// It is a normal control-flow outcome, never fatal: callers report it to
// the user together with the list of known ids.
var ErrNotFound = errors.New("record not found")

// Wallet is the in-memory record set loaded from the store.
//
// Records keep their insertion order across load/save cycles; an edit
// replaces a record in place without moving it.
type Wallet struct {
	records []Record
}

// NewWallet creates a wallet over the given records, in the given order.
func NewWallet(records ...Record) *Wallet {
	return &Wallet{records: records}
}

// Len returns the number of records in the wallet.
func (w *Wallet) Len() int { return len(w.records) }

// Records iterates over all records in store order.
func (w *Wallet) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range w.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Append adds a record at the end of the wallet.
func (w *Wallet) Append(r Record) {
	w.records = append(w.records, r)
}

// FindByID returns the first record whose id equals the given string
// exactly. Ids are compared as text, not numbers: "07" never matches "7".
// Uniqueness is a convention, not an invariant, so on duplicate ids the
// first occurrence wins silently.
func (w *Wallet) FindByID(id string) (Record, error) {
	for _, r := range w.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// ReplaceByID applies the non-blank overrides to the record with the
// given id, in place. The record keeps its position in the sequence and
// every other record is untouched. Returns the updated record, or
// ErrNotFound without modifying anything.
func (w *Wallet) ReplaceByID(id string, o Overrides) (Record, error) {
	for i, r := range w.records {
		if r.ID == id {
			w.records[i] = o.Apply(r)
			return w.records[i], nil
		}
	}
	return Record{}, ErrNotFound
}

// IDs returns all record ids in store order. It backs the recovery
// listing printed after a not-found lookup.
func (w *Wallet) IDs() []string {
	ids := make([]string, 0, len(w.records))
	for _, r := range w.records {
		ids = append(ids, r.ID)
	}
	return ids
}
