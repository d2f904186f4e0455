package site

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// PageCache keeps rendered pages in memory, bounded by their total size.
// A nil *PageCache is valid and caches nothing.
type PageCache struct {
	c *ristretto.Cache[string, []byte]
}

// NewPageCache creates a cache holding at most maxBytes of HTML.
func NewPageCache(maxBytes int64) (*PageCache, error) {
	if maxBytes < 1024 {
		return nil, fmt.Errorf("page cache size %d too small", maxBytes)
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxBytes / 100 * 10, // ~10x expected pages
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating page cache: %w", err)
	}
	return &PageCache{c: c}, nil
}

// Get returns the cached page for key.
func (p *PageCache) Get(key string) ([]byte, bool) {
	if p == nil {
		return nil, false
	}
	return p.c.Get(key)
}

// Set stores page under key. Admission is asynchronous; Wait flushes it.
func (p *PageCache) Set(key string, page []byte) {
	if p == nil {
		return
	}
	p.c.Set(key, page, int64(len(page)))
}

// Wait blocks until pending Sets are applied.
func (p *PageCache) Wait() {
	if p != nil {
		p.c.Wait()
	}
}

// Close stops the cache's background goroutines.
func (p *PageCache) Close() {
	if p != nil {
		p.c.Close()
	}
}
