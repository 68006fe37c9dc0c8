// Package config loads, merges and validates the configuration of the ger
// tool.
//
// Configuration is assembled from the following sources, highest priority
// first. For every field the first source holding a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables prefixed with GER_, including a .env file in
//     the working directory
//  3. A JSON or YAML config file named by --config or GER_CONFIG
//  4. Built-in defaults
//
// The entry point is [Load].
package config
