package funcfmt

import (
	"os"
	"time"
)

// Engine ties a formatter registry to a configuration, a prepared
// template cache, and a logger. Hosts that compile the same template
// sources repeatedly get cached compiles; hosts that compile once can use
// the package-level Prepare directly and skip the Engine.
//
// There is no default global engine: registries, configs, and caches are
// explicit caller-owned values.
type Engine[T any] struct {
	config      *Config
	cache       *TemplateCache[T]
	registry    *FormatterRegistry[T]
	logger      *Logger
	openMarker  rune
	closeMarker rune
}

// Option represents a configuration option for an Engine.
type Option[T any] func(*Engine[T])

// WithConfig returns an option that sets the engine configuration.
func WithConfig[T any](config *Config) Option[T] {
	return func(e *Engine[T]) {
		e.config = config
	}
}

// WithCacheTTL returns an option that sets the cache time-to-live.
func WithCacheTTL[T any](ttl time.Duration) Option[T] {
	return func(e *Engine[T]) {
		e.config.CacheTTL = ttl
	}
}

// WithCacheMaxSize returns an option that sets the cache size
// (0 disables caching).
func WithCacheMaxSize[T any](maxSize int) Option[T] {
	return func(e *Engine[T]) {
		e.config.CacheMaxSize = maxSize
	}
}

// WithMarkers returns an option that sets the placeholder marker pair.
func WithMarkers[T any](openMarker, closeMarker rune) Option[T] {
	return func(e *Engine[T]) {
		e.openMarker = openMarker
		e.closeMarker = closeMarker
	}
}

// WithLogger returns an option that sets the engine logger.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(e *Engine[T]) {
		e.logger = logger
	}
}

// New creates an engine around the given registry. A nil registry is
// treated as empty, which makes every placeholder reference an
// UnknownPlaceholderError at compile time.
func New[T any](registry *FormatterRegistry[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		config:      DefaultConfig(),
		registry:    registry,
		openMarker:  DefaultOpenMarker,
		closeMarker: DefaultCloseMarker,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewFormatterRegistry[T]()
	}
	if e.logger == nil {
		e.logger = NewLogger(os.Stderr, ParseLogLevel(e.config.LogLevel))
	}
	e.cache = NewTemplateCache[T](CacheConfig{
		MaxSize: e.config.CacheMaxSize,
		TTL:     e.config.CacheTTL,
	})
	return e
}

// Prepare compiles a template through the cache: a cached compile of the
// same source is returned directly, otherwise the template is compiled
// with the engine's markers and the result cached.
func (e *Engine[T]) Prepare(tmpl string) (*PreparedTemplate[T], error) {
	if cached, ok := e.cache.Get(tmpl); ok {
		if e.logger.IsDebugMode() {
			e.logger.WithField("template_length", len(tmpl)).Debug("template cache hit")
		}
		return cached, nil
	}

	prepared, err := PrepareWithMarkers(e.registry, tmpl, e.openMarker, e.closeMarker)
	if err != nil {
		return nil, err
	}

	e.cache.Set(tmpl, prepared)
	if e.logger.IsDebugMode() {
		e.logger.WithFields(Fields{
			"template_length": len(tmpl),
			"piece_count":     prepared.PieceCount(),
		}).Debug("template compiled")
	}
	return prepared, nil
}

// Render is a convenience that prepares tmpl (through the cache) and
// renders it against data in one call.
func (e *Engine[T]) Render(tmpl string, data *T) (string, error) {
	prepared, err := e.Prepare(tmpl)
	if err != nil {
		return "", err
	}
	return prepared.Render(data)
}

// Registry returns the engine's formatter registry.
func (e *Engine[T]) Registry() *FormatterRegistry[T] {
	return e.registry
}

// Config returns the engine's configuration.
func (e *Engine[T]) Config() *Config {
	return e.config
}

// ClearCache removes all templates from the engine's cache.
func (e *Engine[T]) ClearCache() {
	e.cache.Clear()
}

// CacheSize returns the number of templates currently cached.
func (e *Engine[T]) CacheSize() int {
	return e.cache.Size()
}
