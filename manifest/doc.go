// Package manifest provides loaders that populate a string-keyed
// Registry from declarative manifest files.
//
// A manifest binds registry keys to named providers supplied by the
// compiled program. Loading a manifest performs the registrations its
// blocks declare, which makes it the auto-load primitive handed to
// registry.WithLoader. Two formats are supported, HCL and YAML, plus an
// extension-dispatching loader that accepts both.
//
// HCL form:
//
//	register "greet" {
//	  provider = "hello"
//	}
//
// YAML form:
//
//	registrations:
//	  - key: greet
//	    provider: hello
//
// A registration may carry enabled = false to be skipped, and (in HCL) an
// arbitrary meta value for tooling to inspect.
package manifest
