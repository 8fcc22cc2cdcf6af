// Package config resolves the notes CLI settings: defaults, then an optional
// JSON file, then environment variables. Command-line flags are applied last
// by the cli package.
package config
