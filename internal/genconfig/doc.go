// Package genconfig turns command-line options and interactive answers into
// the GenerationConfig record that drives everything the generator writes.
//
// Build runs a fixed sequence of steps (type, extension pack info, display
// name, identifier, description, JavaScript checking, git, package manager).
// Each step resolves from a pre-supplied option, is skipped for the chosen
// extension type, or asks exactly one question. Later steps read earlier
// answers as defaults, so the order never changes.
package genconfig
