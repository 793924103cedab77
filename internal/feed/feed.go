// Package feed holds the latest post snapshot fetched from the Hive backend.
// Readers get whatever was fetched last, possibly stale or empty; nothing
// here blocks on the network.
package feed

import (
	"sync"
	"time"

	"hornethive-server/internal/model"
)

type Snapshot struct {
	mu        sync.RWMutex
	posts     []model.Post
	fetchedAt time.Time
}

func NewSnapshot() *Snapshot { return &Snapshot{} }

// Replace swaps in a freshly fetched post collection.
func (s *Snapshot) Replace(posts []model.Post, fetchedAt time.Time) {
	s.mu.Lock()
	s.posts = posts
	s.fetchedAt = fetchedAt
	s.mu.Unlock()
}

// Posts returns the current snapshot. The returned slice must not be
// mutated by callers.
func (s *Snapshot) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// FetchedAt returns when the snapshot was last replaced; zero if never.
func (s *Snapshot) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}
