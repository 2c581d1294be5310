// Package config loads ShareNodes CLI settings from defaults, the
// environment, an optional JSON file and command-line flags, in that order.
package config
