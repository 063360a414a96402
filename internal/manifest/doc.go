// Package manifest parses and validates the package.json manifest of a
// generated editor extension. Validation runs against an embedded JSON
// Schema covering the fields the marketplace requires before publishing.
package manifest
