// Package config loads the pre-build tool's own settings from multiple sources
// (YAML file, environment variables, CLI flags) with precedence: CLI flags >
// YAML config > Environment variables > Defaults. It never reads the firmware's
// data/config.json; that file is opaque to the tool.
package config
