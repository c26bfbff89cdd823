package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Collection keys in the document store.
const (
	KeyRecords = "repair_records"
	KeyParts   = "spare_parts"
	KeyUsers   = "users"
)

// DocumentStore is the durable persistence boundary: whole collections
// are stored as one JSON document per key. There is no schema versioning
// beyond load-if-present.
type DocumentStore interface {
	// Load unmarshals the document stored under key into out. It returns
	// false with a nil error when no document exists.
	Load(ctx context.Context, key string, out interface{}) (bool, error)
	// Save marshals v and stores it under key, replacing any previous
	// document.
	Save(ctx context.Context, key string, v interface{}) error
	// Delete removes the document stored under key, if any.
	Delete(ctx context.Context, key string) error
}

// Document is the single table behind the gorm-backed store.
type Document struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (Document) TableName() string {
	return "documents"
}

// GormDocumentStore persists documents in a Postgres jsonb column.
type GormDocumentStore struct {
	db *gorm.DB
}

// NewGormDocumentStore migrates the documents table and returns the store.
func NewGormDocumentStore(db *gorm.DB) (*GormDocumentStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("migrate documents: %w", err)
	}
	return &GormDocumentStore{db: db}, nil
}

func (s *GormDocumentStore) Load(ctx context.Context, key string, out interface{}) (bool, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load document %s: %w", key, err)
	}
	if err := json.Unmarshal(doc.Data, out); err != nil {
		return false, fmt.Errorf("decode document %s: %w", key, err)
	}
	return true, nil
}

func (s *GormDocumentStore) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	doc := Document{Key: key, Data: data, UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return fmt.Errorf("save document %s: %w", key, err)
	}
	return nil
}

func (s *GormDocumentStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}

// MemoryDocumentStore keeps documents in process memory. Used by tests
// and by the demo mode where no database is configured.
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{docs: make(map[string][]byte)}
}

func (s *MemoryDocumentStore) Load(ctx context.Context, key string, out interface{}) (bool, error) {
	s.mu.RLock()
	data, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode document %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryDocumentStore) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryDocumentStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()
	return nil
}
