// Package config loads, normalizes, and validates xwc configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the XWC_CONFIG environment
// variable. Command-line flags override these values; the Config type only
// carries what a run starts from when no flag says otherwise.
package config
