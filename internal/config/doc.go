// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources: environment variables,
// command-line flags, and an optional JSON config file, with built-in
// defaults filling whatever the explicit sources leave unset.
//
// The main entry point is [GetStructuredConfig].
package config
