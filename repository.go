package finance

import (
	"fmt"
	"strconv"
)

// Repository runs the wallet operations against a Storage. Every
// operation loads the full store, works on it in memory and writes it
// back; the store is small enough that a linear scan is the index.
type Repository struct {
	storage Storage
}

// NewRepository creates a repository over the given storage.
func NewRepository(storage Storage) *Repository {
	return &Repository{storage: storage}
}

// NextID returns the id for the next record: the persisted counter plus
// one. The counter is trusted blindly and never reconciled with the
// store's actual maximum, so externally edited stores can drift and make
// the next id collide with an existing record.
func (p *Repository) NextID() (int, error) {
	last, err := p.storage.LoadCounter()
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

// Append adds the record at the end of the store and persists the
// counter as the record's id. The store save and the counter save are
// two separate writes with no transaction across them; a failure in
// between leaves the store updated and the counter stale.
func (p *Repository) Append(r Record) error {
	id, err := strconv.Atoi(r.ID)
	if err != nil {
		return fmt.Errorf("record id %q is not a number: %w", r.ID, err)
	}

	records, err := p.storage.LoadStore()
	if err != nil {
		return err
	}
	wallet := NewWallet(records...)
	wallet.Append(r)

	if err := p.storage.SaveStore(wallet.records); err != nil {
		return err
	}
	return p.storage.SaveCounter(id)
}

// FindByID returns the first record with the given id, or ErrNotFound.
// It never writes.
func (p *Repository) FindByID(id string) (Record, error) {
	records, err := p.storage.LoadStore()
	if err != nil {
		return Record{}, err
	}
	return NewWallet(records...).FindByID(id)
}

// ReplaceByID applies the non-blank overrides to the record with the
// given id, preserving its position, and writes the store back. On
// ErrNotFound nothing is written.
func (p *Repository) ReplaceByID(id string, o Overrides) (Record, error) {
	records, err := p.storage.LoadStore()
	if err != nil {
		return Record{}, err
	}
	wallet := NewWallet(records...)
	updated, err := wallet.ReplaceByID(id, o)
	if err != nil {
		return Record{}, err
	}
	if err := p.storage.SaveStore(wallet.records); err != nil {
		return Record{}, err
	}
	return updated, nil
}

// IDs returns every record id in store order.
func (p *Repository) IDs() ([]string, error) {
	records, err := p.storage.LoadStore()
	if err != nil {
		return nil, err
	}
	return NewWallet(records...).IDs(), nil
}

// Records returns every record in store order.
func (p *Repository) Records() ([]Record, error) {
	return p.storage.LoadStore()
}
