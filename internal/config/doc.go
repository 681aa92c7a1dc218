// Package config loads, merges and validates the server configuration.
//
// Sources, from lowest to highest priority (a later source overrides the
// non-zero fields of an earlier one):
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON config file (path from CONFIG or -c/-config)
//
// The entry point is [GetStructuredConfig].
package config
