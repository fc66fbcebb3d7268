package store

import "sync"

// MemorySubstrate holds collection documents in process memory. Used by
// tests and as a scratch store for dry runs; contents are lost on exit.
type MemorySubstrate struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{docs: make(map[string][]byte)}
}

func (m *MemorySubstrate) Get(name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, true, nil
}

func (m *MemorySubstrate) Put(name string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(doc))
	copy(cp, doc)
	m.docs[name] = cp
	return nil
}

func (m *MemorySubstrate) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = make(map[string][]byte)
	return nil
}
