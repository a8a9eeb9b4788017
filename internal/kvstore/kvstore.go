// Package kvstore defines the durable key-value boundary behind the
// mapping store. Any backend with get/set/remove-by-key semantics can be
// plugged in; the mapping store never depends on a concrete medium.
package kvstore

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent;
	// absence is not an error.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryStore is an in-memory Store used in tests and as a scratch
// backend. It is not durable.
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}
