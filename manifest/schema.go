package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// registerBlock represents one `register "<key>"` block from an HCL
// manifest file.
type registerBlock struct {
	Key      string     `hcl:"key,label"`
	Provider string     `hcl:"provider"`
	Enabled  *bool      `hcl:"enabled,optional"`
	Meta     *cty.Value `hcl:"meta,optional"`
}

// hclManifest represents the top-level structure of an HCL manifest file.
type hclManifest struct {
	Registrations []*registerBlock `hcl:"register,block"`
	Body          hcl.Body         `hcl:",remain"`
}

// yamlRegistration is one entry of a YAML manifest's registrations list.
type yamlRegistration struct {
	Key      string `yaml:"key"`
	Provider string `yaml:"provider"`
	Enabled  *bool  `yaml:"enabled"`
}

// yamlManifest represents the top-level structure of a YAML manifest file.
type yamlManifest struct {
	Registrations []yamlRegistration `yaml:"registrations"`
}
