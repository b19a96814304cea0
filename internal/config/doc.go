// Package config provides configuration loading, merging, and validation
// for pg-config-view.
//
// Configuration is assembled from three sources, merged in order with
// mergo (a later source never overwrites a value an earlier one already
// set, so environment variables take precedence over flags, and flags
// over the JSON file):
//
//  1. environment variables (caarlos0/env struct tags)
//  2. command-line flags
//  3. an optional JSON file named by CONFIG or -c/-config
package config
