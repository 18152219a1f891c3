// Package config loads, normalizes, and validates cinelog configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates the result. The Config type
// centralizes every knob the CLI needs: bulk dataset location and file
// names, the normalized catalog and persisted index paths, the journal
// location, and logging options.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors.
package config
