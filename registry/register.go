package registry

import "log/slog"

// Register records v under key and returns v unchanged, so registration
// is transparent to the value's normal use. Re-registering an existing
// key overwrites the prior value silently.
func (r *Registry[K, V]) Register(key K, v V) V {
	slog.Debug("Registering entry.", "key", key)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = v
	return v
}

// RegisterValue records v under a key derived by the registry's key
// function and returns v unchanged. It panics when no key function was
// configured: the source of the key must be determinable before the
// value is registered.
func (r *Registry[K, V]) RegisterValue(v V) V {
	if r.keyFn == nil {
		panic("registry: RegisterValue requires a key function (see WithKeyFunc)")
	}
	return r.Register(r.keyFn(v), v)
}

// Module is the interface implemented by packages that register their
// own entries into a Registry.
type Module[K comparable, V any] interface {
	Register(r *Registry[K, V])
}

// Install applies each module's registrations in order and returns the
// Registry for chaining.
func (r *Registry[K, V]) Install(mods ...Module[K, V]) *Registry[K, V] {
	for _, mod := range mods {
		mod.Register(r)
	}
	return r
}
