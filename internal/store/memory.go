package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps the serialized document in process memory. It round-trips
// through JSON on every load and save so callers observe the same value
// semantics as the file store: a loaded document is a private copy, and only
// Save publishes changes.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

// NewMemoryStore returns an empty in-memory store. The first Load seeds it.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the current document, seeding a default when the
// store is empty.
func (s *MemoryStore) Load() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.raw == nil {
		doc := NewDocument()
		s.raw, _ = json.Marshal(doc)
		return doc
	}

	doc := &Document{}
	if err := json.Unmarshal(s.raw, doc); err != nil {
		doc = NewDocument()
		s.raw, _ = json.Marshal(doc)
		return doc
	}

	if migrate(doc) {
		s.raw, _ = json.Marshal(doc)
	}
	return doc
}

// Save replaces the stored value.
func (s *MemoryStore) Save(doc *Document) {
	if doc == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
}
