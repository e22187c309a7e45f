package mem

import (
	"sync"
	"time"
)

// FeedCacheStore holds rendered social-feed pages for a short TTL so the hot
// first pages do not hit the database on every scroll. Any write to posts or
// likes invalidates the whole cache; feed pages are cheap to rebuild.
type FeedCacheStore interface {
	Set(key string, page interface{}, ttl time.Duration)
	Get(key string) (interface{}, bool)
	InvalidateAll()
}

type feedEntry struct {
	page      interface{}
	expiresAt time.Time
}

type FeedCache struct {
	mu   sync.RWMutex
	data map[string]feedEntry
}

func NewFeedCache() *FeedCache {
	return &FeedCache{
		data: make(map[string]feedEntry),
	}
}

func (s *FeedCache) Set(key string, page interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = feedEntry{
		page:      page,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *FeedCache) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.page, true
}

func (s *FeedCache) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]feedEntry)
}
