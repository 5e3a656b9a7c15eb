// Package config handles configuration management for the xdgdir CLI.
// It layers defaults, an optional TOML file in the user's config
// directory, and XDGDIR_-prefixed environment variables.
package config
