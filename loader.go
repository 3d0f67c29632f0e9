package finance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage persists the wallet on disk: the store as a CSV file and
// the counter as a one-line text file next to it. Both files are written
// through a temp-file-and-rename, so a failed write leaves the previous
// content intact. The two files are still independent: there is no
// transaction spanning store and counter, and a crash between the two
// saves can leave them out of step.
type FileStorage struct {
	StorePath   string
	CounterPath string
}

// NewFileStorage creates a file-backed storage over the given paths.
func NewFileStorage(storePath, counterPath string) *FileStorage {
	return &FileStorage{StorePath: storePath, CounterPath: counterPath}
}

// EnsureStore creates the store file with only the header row when it
// does not exist yet. Idempotent: an existing store is left untouched.
func (s *FileStorage) EnsureStore() error {
	if _, err := os.Stat(s.StorePath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not stat store file %q: %w", s.StorePath, err)
	}
	if err := s.SaveStore(nil); err != nil {
		return fmt.Errorf("could not create store file %q: %w", s.StorePath, err)
	}
	return nil
}

// LoadStore reads every record from the store file.
func (s *FileStorage) LoadStore() ([]Record, error) {
	f, err := os.Open(s.StorePath)
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", s.StorePath, err)
	}
	defer f.Close()

	records, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", s.StorePath, err)
	}
	return records, nil
}

// SaveStore overwrites the store file with the header and exactly the
// given records, in the given order.
func (s *FileStorage) SaveStore(records []Record) error {
	return writeFileAtomic(s.StorePath, func(f *os.File) error {
		return EncodeStore(f, records)
	})
}

// LoadCounter reads the persisted counter. A missing counter file reads
// as 1: it means no record was ever assigned an id, not an error.
func (s *FileStorage) LoadCounter() (int, error) {
	f, err := os.Open(s.CounterPath)
	if errors.Is(err, fs.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not open counter file %q: %w", s.CounterPath, err)
	}
	defer f.Close()

	value, err := DecodeCounter(f)
	if err != nil {
		return 0, fmt.Errorf("could not decode counter file %q: %w", s.CounterPath, err)
	}
	return value, nil
}

// SaveCounter overwrites the counter file with the given value.
func (s *FileStorage) SaveCounter(value int) error {
	return writeFileAtomic(s.CounterPath, func(f *os.File) error {
		return EncodeCounter(f, value)
	})
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it over the destination, so readers never observe a truncated
// file.
func writeFileAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}
