// Package registry provides a generic, plugin-style key registry.
//
// A Registry maps comparable keys to arbitrary values, typically handler
// functions or factories. Entries are added directly in Go code with
// Register, through compiled-in Module registrants, or lazily by a
// one-time auto-load pass that scans a base directory for files matching
// glob patterns and hands each match to an injected loader. Loading a
// matched file is expected to register entries, which is how files
// "register themselves" without the Registry knowing their contents in
// advance.
//
// The auto-load gate fires exactly once per Registry instance: the first
// call to ForceLoad (made implicitly by Get) performs the scan, and every
// later call is a no-op. Lookups of unknown keys report a typed
// NotRegisteredError identifying the missing key.
package registry
