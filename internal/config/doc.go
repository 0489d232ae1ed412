// Package config loads, merges and validates go-page-gate configuration.
//
// Values come from environment variables, command-line flags and an
// optional JSON file. Sources are merged with mergo, which only fills fields
// that are still zero, so the effective priority is:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetClientConfig] and [GetServerConfig] return validated views of the
// merged [StructuredConfig] for the two binaries.
package config
