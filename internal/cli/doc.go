// Package cli defines the Cobra command tree for the vsext CLI. The root
// command runs the extension generator; every other file registers one
// subcommand (version, config, doctor). Commands delegate to internal
// packages for business logic and only handle flag parsing, I/O formatting,
// and user interaction.
package cli
