// Package config loads, normalizes, and validates prodlogs configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks for the
// ERP password and git-host token. The Config type centralizes every knob
// the CLI needs so data directories and external service credentials are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
