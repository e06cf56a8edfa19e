package manifest

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Starscribers/any-registries/internal/ctxlog"
	"github.com/Starscribers/any-registries/registry"
)

// YAML returns a loader with the same semantics as HCL for YAML manifest
// files: a top-level `registrations` list of key/provider pairs.
func YAML[V any](providers map[string]V) registry.LoadFunc[string, V] {
	return func(ctx context.Context, path string, r *registry.Registry[string, V]) error {
		logger := ctxlog.FromContext(ctx)

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read manifest %s: %w", path, err)
		}

		var mf yamlManifest
		if err := yaml.Unmarshal(raw, &mf); err != nil {
			return fmt.Errorf("failed to decode manifest %s: %w", path, err)
		}

		for _, reg := range mf.Registrations {
			if reg.Key == "" || reg.Provider == "" {
				return fmt.Errorf("manifest %s: a registration requires both key and provider", path)
			}
			if reg.Enabled != nil && !*reg.Enabled {
				logger.Debug("Skipping disabled registration.", "key", reg.Key, "file", path)
				continue
			}
			v, ok := providers[reg.Provider]
			if !ok {
				return fmt.Errorf("manifest %s: no provider named %q for key %q", path, reg.Provider, reg.Key)
			}
			r.Register(reg.Key, v)
			logger.Debug("Registered manifest entry.", "key", reg.Key, "provider", reg.Provider)
		}
		return nil
	}
}
