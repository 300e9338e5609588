package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps records in memory. It backs tests and throwaway
// sessions; the error fields let tests exercise failure paths.
type MemoryBackend struct {
	mu      sync.Mutex
	records map[string][]byte

	LoadErrors map[string]error
	SaveErrors map[string]error
	Saves      int
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string][]byte)}
}

// Put seeds a record without counting it as a save.
func (m *MemoryBackend) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records == nil {
		m.records = make(map[string][]byte)
	}
	m.records[name] = append([]byte(nil), data...)
}

// Get returns the raw bytes of a record.
func (m *MemoryBackend) Get(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[name]
	return append([]byte(nil), data...), ok
}

func (m *MemoryBackend) Load(_ context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.LoadErrors[name]; err != nil {
		return nil, err
	}
	data, ok := m.records[name]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryBackend) Save(_ context.Context, name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.SaveErrors[name]; err != nil {
		return err
	}
	if m.records == nil {
		m.records = make(map[string][]byte)
	}
	m.records[name] = append([]byte(nil), data...)
	m.Saves++
	return nil
}

func (m *MemoryBackend) Kind() string { return KindMemory }

func (m *MemoryBackend) Close() error { return nil }
