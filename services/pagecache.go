package services

import (
	"sync"
	"time"
)

// CachedPage is a fully rendered response. Body bytes are replayed verbatim,
// so two hits within the TTL are byte-identical.
type CachedPage struct {
	Status      int
	ContentType string
	Body        []byte
}

// PageCache is the injected store behind the home-feed cache. Clear exists for
// tests and operations; request handling never calls it.
type PageCache interface {
	Get(key string) (*CachedPage, bool)
	Set(key string, page *CachedPage, ttl time.Duration)
	Clear()
}

type memoryCacheEntry struct {
	page      *CachedPage
	expiresAt time.Time
}

type MemoryPageCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
}

var _ PageCache = (*MemoryPageCache)(nil)

func NewMemoryPageCache() *MemoryPageCache {
	return &MemoryPageCache{entries: make(map[string]memoryCacheEntry)}
}

func (mpc *MemoryPageCache) Get(key string) (*CachedPage, bool) {
	mpc.mu.Lock()
	defer mpc.mu.Unlock()
	entry, ok := mpc.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(mpc.entries, key)
		return nil, false
	}
	return entry.page, true
}

func (mpc *MemoryPageCache) Set(key string, page *CachedPage, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	body := make([]byte, len(page.Body))
	copy(body, page.Body)
	mpc.mu.Lock()
	mpc.entries[key] = memoryCacheEntry{
		page: &CachedPage{
			Status:      page.Status,
			ContentType: page.ContentType,
			Body:        body,
		},
		expiresAt: time.Now().Add(ttl),
	}
	mpc.mu.Unlock()
}

func (mpc *MemoryPageCache) Clear() {
	mpc.mu.Lock()
	mpc.entries = make(map[string]memoryCacheEntry)
	mpc.mu.Unlock()
}
