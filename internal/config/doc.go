// Package config loads, normalizes, and validates gamedex configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// IGDB_CLIENT_ID and IGDB_CLIENT_SECRET. The Config type centralizes every
// knob the CLI needs: API credentials and endpoints, the token cache location,
// image size-token vocabulary, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
