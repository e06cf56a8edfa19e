package registry

import (
	"context"
	"fmt"

	"github.com/Starscribers/any-registries/internal/ctxlog"
	"github.com/Starscribers/any-registries/internal/fsutil"
)

// LoadFunc is the file-loading primitive invoked for every file matched
// during the auto-load pass. Loading a file is expected to call Register
// on the given Registry for each entry the file declares.
type LoadFunc[K comparable, V any] func(ctx context.Context, path string, r *Registry[K, V]) error

// AutoLoad appends the given glob patterns after any existing ones and
// returns the Registry itself for fluent chaining. It does not trigger
// scanning; patterns are resolved by the first ForceLoad.
func (r *Registry[K, V]) AutoLoad(patterns ...string) *Registry[K, V] {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	r.patterns = append(r.patterns, patterns...)
	return r
}

// ForceLoad runs the auto-load pass once. Calls after the first
// successful pass return immediately with no effect.
//
// Each pattern is resolved against the base path in order, and every
// matched file is handed to the configured loader. The first failure
// aborts the pass and propagates: a file that cannot be loaded is a
// content error in the scanned tree, not a recoverable registry
// condition. The gate latches only after a fully successful pass, so a
// failed load can be retried once the tree is fixed.
func (r *Registry[K, V]) ForceLoad(ctx context.Context) error {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	if r.loaded {
		return nil
	}

	logger := ctxlog.FromContext(ctx)
	for _, pattern := range r.patterns {
		files, err := fsutil.Glob(r.basePath, pattern)
		if err != nil {
			return fmt.Errorf("auto-load pattern %q: %w", pattern, err)
		}
		for _, path := range files {
			if r.loadFile == nil {
				return fmt.Errorf("auto-load matched %s but no loader is configured", path)
			}
			if err := r.loadFile(ctx, path, r); err != nil {
				return fmt.Errorf("auto-load %s: %w", path, err)
			}
			logger.Debug("Auto-loaded file.", "path", path, "pattern", pattern)
		}
	}

	r.loaded = true
	logger.Debug("Auto-load complete.", "patterns", len(r.patterns), "entries", r.Len())
	return nil
}

// Get ensures the auto-load pass has run, then returns the value
// registered under key. A miss reports a NotRegisteredError naming the
// key; load failures from the implicit ForceLoad propagate unchanged.
func (r *Registry[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	if err := r.ForceLoad(ctx); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	if !ok {
		return zero, &NotRegisteredError{Key: key}
	}
	return v, nil
}
