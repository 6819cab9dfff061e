package storage

import "sync"

// Memory is an in-memory Backend. It backs tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes every Write return an error. Tests use it to exercise
	// the store's degraded-write path.
	FailWrites error
	// FailReads makes every Read return an error for keys that exist.
	FailReads error
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotExist
	}
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[key] = stored
	return nil
}
