package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Starscribers/any-registries/registry"
)

// Auto returns a loader that dispatches on file extension, accepting
// both .hcl and .yaml/.yml manifests against the same provider table.
func Auto[V any](providers map[string]V) registry.LoadFunc[string, V] {
	loadHCL := HCL(providers)
	loadYAML := YAML(providers)

	return func(ctx context.Context, path string, r *registry.Registry[string, V]) error {
		switch ext := filepath.Ext(path); ext {
		case ".hcl":
			return loadHCL(ctx, path, r)
		case ".yaml", ".yml":
			return loadYAML(ctx, path, r)
		default:
			return fmt.Errorf("manifest %s: unsupported format %q", path, ext)
		}
	}
}
