package datasource

import "log/slog"

// MemoryStore is the leaf DataSource: a named in-memory slot holding one
// value. It stands in for a real file or record; there is no persistence.
type MemoryStore struct {
	name    string
	value   string
	written bool
	log     *slog.Logger
}

// NewMemoryStore creates an empty store. A nil logger falls back to
// slog.Default().
func NewMemoryStore(name string, log *slog.Logger) *MemoryStore {
	if log == nil {
		log = slog.Default()
	}
	return &MemoryStore{name: name, log: log}
}

// Name returns the identifier the store was created with.
func (s *MemoryStore) Name() string { return s.name }

// Write records value, overwriting any previous one.
func (s *MemoryStore) Write(value string) error {
	s.value = value
	s.written = true
	s.log.Debug("store write", "name", s.name, "len", len(value))
	return nil
}

// Read returns the most recently written value, or ErrNotInitialized if the
// store has never been written.
func (s *MemoryStore) Read() (string, error) {
	if !s.written {
		s.log.Debug("store read before write", "name", s.name)
		return "", ErrNotInitialized
	}
	s.log.Debug("store read", "name", s.name, "len", len(s.value))
	return s.value, nil
}
