package client

// Storage is the local persistence capability the client depends on: get,
// set and remove by string key, scoped per league+field by key naming. It is
// single-consumer and synchronous, so implementations need no locking.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// MemoryStorage is the in-process Storage implementation.
type MemoryStorage struct {
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	v, ok := s.items[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.items[key] = value
}

func (s *MemoryStorage) Remove(key string) {
	delete(s.items, key)
}
