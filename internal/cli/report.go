package cli

import (
	"fmt"
	"io"

	"github.com/vsext-labs/vsext/internal/branding"
	"github.com/vsext-labs/vsext/internal/genconfig"
)

type report struct {
	config     *genconfig.GenerationConfig
	projectDir string
	editorCLI  string
	warnings   []string
	setupErr   error
}

// printWelcome is shown before the engine lookup and the first question.
func printWelcome(w io.Writer) {
	fmt.Fprintf(w, "Welcome to the %s!\n\n", branding.DisplayName())
}

// printReport writes the closing instructions shown after generation.
func printReport(w io.Writer, r report) {
	for _, warning := range r.warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	if r.setupErr != nil {
		fmt.Fprintf(w, "Setup did not complete: %v\n", r.setupErr)
	}

	editor := r.editorCLI
	if editor == "" {
		editor = "code"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Your extension %s has been created!\n", r.config.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To start editing with Visual Studio Code, use the following commands:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "     cd %s\n", r.projectDir)
	fmt.Fprintf(w, "     %s .\n", editor)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open vsc-extension-quickstart.md inside the new extension for further instructions")
	fmt.Fprintln(w, "on how to modify, test and publish your extension.")
	fmt.Fprintln(w)

	if r.config.Type == genconfig.TypeExtensionPack {
		fmt.Fprintln(w, `Please review the "extensionPack" in the "package.json" before publishing the extension pack.`)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "For more information, also visit %s and follow us @code.\n", branding.WebsiteURL())
	fmt.Fprintln(w)
}
