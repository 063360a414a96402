package scaffold

import "embed"

// Dotfiles are stored without their leading dot; the file plan restores it.
//
//go:embed templates
var templatesFS embed.FS
