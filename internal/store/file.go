package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/noah-isme/gradetracker-api/pkg/config"
)

// FileStore persists the document as a single JSON file under a base
// directory. Writes replace the whole file unconditionally; there is no
// locking or optimistic concurrency check across processes.
type FileStore struct {
	path      string
	logger    *zap.Logger
	available bool
}

// NewFileStore ensures the base directory exists and returns a handle. When
// the directory cannot be created the store still works, serving a fresh
// seeded document on every load and dropping saves.
func NewFileStore(cfg config.StoreConfig, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "./data"
	}
	file := cfg.File
	if file == "" {
		file = "gradetracker.json"
	}

	s := &FileStore{path: filepath.Join(dir, file), logger: logger}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("store directory unavailable, operating without persistence",
			zap.String("dir", dir), zap.Error(err))
		return s
	}
	s.available = true
	return s
}

// Load returns the stored document, creating and persisting a seeded default
// when none exists. Legacy shapes are migrated and re-saved on the way in.
func (s *FileStore) Load() *Document {
	if !s.available {
		return NewDocument()
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read stored document, starting fresh", zap.Error(err))
		}
		doc := NewDocument()
		s.Save(doc)
		return doc
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		s.logger.Warn("stored document is corrupt, starting fresh", zap.Error(err))
		doc = NewDocument()
		s.Save(doc)
		return doc
	}

	if migrate(doc) {
		s.Save(doc)
	}
	return doc
}

// Save serializes and overwrites the stored value unconditionally.
func (s *FileStore) Save(doc *Document) {
	if !s.available || doc == nil {
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		s.logger.Warn("failed to serialize document", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Warn("failed to persist document", zap.Error(err))
	}
}

// Path exposes the backing file location (useful for debugging).
func (s *FileStore) Path() string {
	return s.path
}
