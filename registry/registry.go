package registry

import (
	"maps"
	"os"
	"sync"
)

// Registry holds registered entries for a single application scope along
// with the configuration of its auto-load pass.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V

	// loadMu guards the one-shot auto-load gate and the pattern list so
	// concurrent ForceLoad callers cannot double-run the scan.
	loadMu   sync.Mutex
	loaded   bool
	patterns []string
	loadFile LoadFunc[K, V]

	keyFn    func(V) K
	basePath string
}

// Option configures a Registry at construction time.
type Option[K comparable, V any] func(*Registry[K, V])

// WithKeyFunc sets the key-derivation function used by RegisterValue.
func WithKeyFunc[K comparable, V any](fn func(V) K) Option[K, V] {
	return func(r *Registry[K, V]) { r.keyFn = fn }
}

// WithBasePath sets the root directory for auto-load pattern resolution,
// overriding the PROJECT_ROOT and BASE_DIR environment variables.
func WithBasePath[K comparable, V any](path string) Option[K, V] {
	return func(r *Registry[K, V]) { r.basePath = path }
}

// WithAutoLoad seeds the ordered list of auto-load glob patterns. The
// given slice is copied, so later mutation by the caller has no effect.
func WithAutoLoad[K comparable, V any](patterns ...string) Option[K, V] {
	return func(r *Registry[K, V]) {
		r.patterns = append([]string(nil), patterns...)
	}
}

// WithLoader sets the file-loading primitive invoked per matched file
// during the auto-load pass.
func WithLoader[K comparable, V any](fn LoadFunc[K, V]) Option[K, V] {
	return func(r *Registry[K, V]) { r.loadFile = fn }
}

// New creates an empty, unloaded Registry. The base path is fixed here
// and never re-resolved from the environment later.
func New[K comparable, V any](opts ...Option[K, V]) *Registry[K, V] {
	r := &Registry[K, V]{entries: make(map[K]V)}
	for _, opt := range opts {
		opt(r)
	}
	if r.basePath == "" {
		r.basePath = resolveBasePath()
	}
	return r
}

// resolveBasePath picks the scan root from the environment: PROJECT_ROOT
// first, then BASE_DIR, then the working directory.
func resolveBasePath() string {
	if p := os.Getenv("PROJECT_ROOT"); p != "" {
		return p
	}
	if p := os.Getenv("BASE_DIR"); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Entries returns a snapshot of the registered entries. Mutating the
// returned map does not affect the Registry.
func (r *Registry[K, V]) Entries() map[K]V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.entries)
}

// Len returns the number of registered entries.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Loaded reports whether the auto-load pass has completed.
func (r *Registry[K, V]) Loaded() bool {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	return r.loaded
}

// Patterns returns a copy of the configured auto-load patterns in order.
func (r *Registry[K, V]) Patterns() []string {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	return append([]string(nil), r.patterns...)
}

// BasePath returns the root directory used for auto-load resolution.
func (r *Registry[K, V]) BasePath() string {
	return r.basePath
}
