package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// BestCache adapts a Store to core.BestStore. Reads go through an
// in-memory map because the HUD asks for the best every frame; writes go
// to both. Storage errors are logged and read as 0.
// Safe for concurrent use by several sessions.
type BestCache struct {
	store  *Store
	logger *log.Logger

	mu    sync.Mutex
	cache map[string]int
}

// NewBestCache creates a cache over store. A nil logger discards output.
func NewBestCache(store *Store, logger *log.Logger) *BestCache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestCache{
		store:  store,
		logger: logger,
		cache:  make(map[string]int),
	}
}

// Best returns the best for key, loading it on first use.
func (c *BestCache) Best(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.cache[key]; ok {
		return v
	}
	v, err := c.store.Best(key)
	if err != nil {
		c.logger.Warn("Reading best failed", "key", key, "error", err)
		v = 0
	}
	c.cache[key] = v
	return v
}

// SetBest records score for key if it beats the cached best. The compare
// and the write happen under one lock.
func (c *BestCache) SetBest(key string, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.cache[key]
	if !ok {
		var err error
		if current, err = c.store.Best(key); err != nil {
			c.logger.Warn("Reading best failed", "key", key, "error", err)
			current = 0
		}
		c.cache[key] = current
	}
	if score <= current {
		return
	}
	c.cache[key] = score
	if err := c.store.SetBest(key, score); err != nil {
		c.logger.Warn("Saving best failed", "key", key, "error", err)
	}
}
