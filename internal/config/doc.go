// Package config loads the podium TOML configuration: window defaults,
// playback options, manifest directories, and logging.
package config
