// Package config loads mtr's configuration.
//
// Values are layered, later sources winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user config file, normally $XDG_CONFIG_HOME/mtr/config.toml
//  3. MTR_<SECTION>_<KEY> environment variables
//  4. explicit overrides, typically from command line flags
//
// A missing user config file is not an error.
package config
