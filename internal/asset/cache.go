package asset

import "sync"

// Location is the outcome of a successful search for a file name
type Location struct {
	Found    bool
	RemoteID string
}

// Cache maps file names to search outcomes for the life of the process.
// Entries never expire: the Drive folder is treated as append-only.
// It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Location
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Location)}
}

// Get returns the cached location for name
func (c *Cache) Get(name string) (Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	loc, ok := c.entries[name]
	return loc, ok
}

// Put stores the location for name, replacing any earlier entry
func (c *Cache) Put(name string, loc Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = loc
}

// Len returns the number of cached names, found or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
