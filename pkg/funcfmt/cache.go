package funcfmt

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CacheConfig contains configuration options for the template cache.
type CacheConfig struct {
	// MaxSize is the maximum number of prepared templates to hold.
	// 0 disables caching entirely.
	MaxSize int
	// TTL is the time-to-live for cached templates. 0 means no
	// expiration.
	TTL time.Duration
}

// TemplateCache caches prepared templates keyed by their template source,
// so hosts that compile the same format string repeatedly pay the parse
// cost once. Expired entries are purged by go-cache's janitor; when the
// cache is full it is flushed wholesale (go-cache has no LRU eviction).
type TemplateCache[T any] struct {
	store  *gocache.Cache
	config CacheConfig
}

// NewTemplateCache creates a template cache with the given configuration.
// A MaxSize of 0 yields a disabled cache on which every operation is a
// no-op.
func NewTemplateCache[T any](config CacheConfig) *TemplateCache[T] {
	if config.MaxSize <= 0 {
		return &TemplateCache[T]{config: config}
	}

	ttl := gocache.NoExpiration
	cleanup := time.Duration(0)
	if config.TTL > 0 {
		ttl = config.TTL
		cleanup = config.TTL
	}

	return &TemplateCache[T]{
		store:  gocache.New(ttl, cleanup),
		config: config,
	}
}

// Get retrieves a prepared template by its source string.
func (tc *TemplateCache[T]) Get(key string) (*PreparedTemplate[T], bool) {
	if tc.store == nil {
		return nil, false
	}
	v, ok := tc.store.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*PreparedTemplate[T]), true
}

// Set stores a prepared template under its source string.
func (tc *TemplateCache[T]) Set(key string, tmpl *PreparedTemplate[T]) {
	if tc.store == nil {
		return
	}
	if _, exists := tc.store.Get(key); !exists && tc.store.ItemCount() >= tc.config.MaxSize {
		tc.store.Flush()
	}
	tc.store.SetDefault(key, tmpl)
}

// Prepare returns the cached template for key, or compiles one with the
// given compile function and caches the result.
func (tc *TemplateCache[T]) Prepare(key string, compile func() (*PreparedTemplate[T], error)) (*PreparedTemplate[T], error) {
	if cached, ok := tc.Get(key); ok {
		return cached, nil
	}

	prepared, err := compile()
	if err != nil {
		return nil, err
	}

	tc.Set(key, prepared)
	return prepared, nil
}

// Remove removes a template from the cache.
func (tc *TemplateCache[T]) Remove(key string) {
	if tc.store == nil {
		return
	}
	tc.store.Delete(key)
}

// Clear removes all templates from the cache.
func (tc *TemplateCache[T]) Clear() {
	if tc.store == nil {
		return
	}
	tc.store.Flush()
}

// Size returns the current number of cached templates, including entries
// that have expired but not yet been purged.
func (tc *TemplateCache[T]) Size() int {
	if tc.store == nil {
		return 0
	}
	return tc.store.ItemCount()
}

// Enabled reports whether caching is active.
func (tc *TemplateCache[T]) Enabled() bool {
	return tc.store != nil
}
