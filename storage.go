package finance

// Storage is the persistence port for the wallet. The store and the
// counter live in two separate places with no cross-validation between
// them; the port keeps that split explicit and lets tests run against an
// in-memory implementation.
type Storage interface {
	// LoadStore reads the full record set in store order.
	LoadStore() ([]Record, error)
	// SaveStore overwrites the store with exactly the given records.
	SaveStore(records []Record) error
	// LoadCounter reads the last assigned id. A missing counter means
	// "no prior records" and reads as 1, not as an error.
	LoadCounter() (int, error)
	// SaveCounter overwrites the counter with the given value.
	SaveCounter(value int) error
}

// MemStorage is an in-memory Storage for tests.
type MemStorage struct {
	Records []Record
	Counter int

	// SaveStoreErr and SaveCounterErr, when set, make the corresponding
	// save fail. Tests use them to exercise partial-failure paths.
	SaveStoreErr   error
	SaveCounterErr error
}

// NewMemStorage creates an empty in-memory storage. The counter starts at
// 1, mirroring a missing counter file.
func NewMemStorage(records ...Record) *MemStorage {
	return &MemStorage{Records: records, Counter: 1}
}

func (m *MemStorage) LoadStore() ([]Record, error) {
	records := make([]Record, len(m.Records))
	copy(records, m.Records)
	return records, nil
}

func (m *MemStorage) SaveStore(records []Record) error {
	if m.SaveStoreErr != nil {
		return m.SaveStoreErr
	}
	m.Records = make([]Record, len(records))
	copy(m.Records, records)
	return nil
}

func (m *MemStorage) LoadCounter() (int, error) { return m.Counter, nil }

func (m *MemStorage) SaveCounter(value int) error {
	if m.SaveCounterErr != nil {
		return m.SaveCounterErr
	}
	m.Counter = value
	return nil
}
