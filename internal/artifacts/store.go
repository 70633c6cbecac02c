// Package artifacts holds generated output files long enough for the
// browser to download them. This is the only state shared across requests;
// each entry belongs to exactly one completed generation.
package artifacts

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Artifact is a generated downloadable file.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Entry groups the artifacts of one completed generation run.
type Entry struct {
	ID          uuid.UUID
	Resume      Artifact
	CoverLetter Artifact
	CreatedAt   time.Time
}

// Store is an in-memory artifact store keyed by run ID.
type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Entry
}

// NewStore creates an empty artifact store.
func NewStore() *Store {
	return &Store{entries: make(map[uuid.UUID]*Entry)}
}

// Put stores the artifacts of a completed run and returns its ID.
func (s *Store) Put(resume, coverLetter Artifact) uuid.UUID {
	entry := &Entry{
		ID:          uuid.New(),
		Resume:      resume,
		CoverLetter: coverLetter,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.entries[entry.ID] = entry
	s.mu.Unlock()

	return entry.ID
}

// Get returns the entry for a run ID.
func (s *Store) Get(id uuid.UUID) (*Entry, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no artifacts for run %s", id)
	}
	return entry, nil
}

// Delete removes the entry for a run ID. Unknown IDs are a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
