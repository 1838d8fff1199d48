// Package config provides configuration loading, merging, and validation
// for the adapter, plus the loader for route descriptor files.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetStructuredConfig] and [LoadRoutes].
package config
