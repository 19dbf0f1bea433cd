package storage

import (
	"context"
	"sync"
)

// MemoryBindingStore is an in-process BindingStore used in tests and when no
// redis instance is configured.
type MemoryBindingStore struct {
	mu         sync.Mutex
	documentID string
}

// NewMemoryBindingStore returns a store pre-seeded with documentID, which may
// be empty.
func NewMemoryBindingStore(documentID string) *MemoryBindingStore {
	return &MemoryBindingStore{documentID: documentID}
}

func (s *MemoryBindingStore) DocumentID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentID, nil
}

func (s *MemoryBindingStore) SetDocumentID(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentID = documentID
	return nil
}
