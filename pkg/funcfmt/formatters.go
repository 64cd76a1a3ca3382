package funcfmt

import (
	"errors"
	"sort"
	"sync"
)

// FormatterFunc is a callback invoked during rendering. It receives the
// data value for the current render and returns the replacement text for
// its placeholder. Returning false signals that no value is available for
// this data, which fails the render with MissingValueError.
type FormatterFunc[T any] func(data *T) (string, bool)

// FormatterPair associates a placeholder name with its callback. Used by
// FormatterRegistryFromPairs to build a registry from an ordered list.
type FormatterPair[T any] struct {
	Name string
	Fn   FormatterFunc[T]
}

// FormatterRegistry manages the placeholder names available to Prepare.
//
// A registry is typically populated once and then treated as read-only.
// Registration is still guarded by a lock so that concurrent readers are
// safe even if a caller registers late.
type FormatterRegistry[T any] struct {
	mu         sync.RWMutex
	formatters map[string]FormatterFunc[T]
}

// NewFormatterRegistry creates an empty formatter registry.
func NewFormatterRegistry[T any]() *FormatterRegistry[T] {
	return &FormatterRegistry[T]{
		formatters: make(map[string]FormatterFunc[T]),
	}
}

// FormatterRegistryFromPairs creates a registry from an ordered list of
// (name, callback) pairs. A later pair with the same name overwrites an
// earlier one.
func FormatterRegistryFromPairs[T any](pairs ...FormatterPair[T]) (*FormatterRegistry[T], error) {
	r := NewFormatterRegistry[T]()
	for _, p := range pairs {
		if err := r.Register(p.Name, p.Fn); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a formatter under the given name, replacing any existing
// entry for that name (last registration wins). The name must be
// non-empty. Names containing the template's marker characters are not
// rejected here, but such names can never be referenced by a template.
func (r *FormatterRegistry[T]) Register(name string, fn FormatterFunc[T]) error {
	if name == "" {
		return errors.New("formatter name cannot be empty")
	}
	if fn == nil {
		return errors.New("formatter callback cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.formatters[name] = fn
	return nil
}

// Lookup retrieves the formatter registered under name.
func (r *FormatterRegistry[T]) Lookup(name string) (FormatterFunc[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.formatters[name]
	return fn, exists
}

// Names returns all registered placeholder names in sorted order.
func (r *FormatterRegistry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered formatters.
func (r *FormatterRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.formatters)
}
