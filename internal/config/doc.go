// Package config loads, normalizes, and validates coursework configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML or YAML files, and honours environment overrides such
// as COURSEWORK_LANG and COURSEWORK_STATE_DIR. The Config type centralizes the
// workload rates, message language, journal and metrics settings the CLI
// needs so they can be discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
