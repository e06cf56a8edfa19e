package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Starscribers/any-registries/internal/ctxlog"
	"github.com/Starscribers/any-registries/registry"
)

// HCL returns a loader that reads `register` blocks from an HCL manifest
// file and binds each key to a provider resolved from the given table.
// An unknown provider name or a parse failure aborts the file.
func HCL[V any](providers map[string]V) registry.LoadFunc[string, V] {
	return func(ctx context.Context, path string, r *registry.Registry[string, V]) error {
		logger := ctxlog.FromContext(ctx)

		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest %s: %w", path, diags)
		}

		var mf hclManifest
		if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest %s: %w", path, diags)
		}

		for _, block := range mf.Registrations {
			if block.Enabled != nil && !*block.Enabled {
				logger.Debug("Skipping disabled registration.", "key", block.Key, "file", path)
				continue
			}
			v, ok := providers[block.Provider]
			if !ok {
				return fmt.Errorf("manifest %s: no provider named %q for key %q", path, block.Provider, block.Key)
			}
			if block.Meta != nil {
				logger.Debug("Registration carries metadata.",
					"key", block.Key, "type", block.Meta.Type().FriendlyName())
			}
			r.Register(block.Key, v)
			logger.Debug("Registered manifest entry.", "key", block.Key, "provider", block.Provider)
		}
		return nil
	}
}
