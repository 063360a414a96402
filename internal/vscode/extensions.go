package vscode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExtensionLister runs "<cli> --list-extensions".
type ExtensionLister struct {
	// CLI is the editor binary name or path (e.g. "code", "code-insiders").
	CLI string
}

// NewExtensionLister returns a lister for the given editor binary.
func NewExtensionLister(cli string) *ExtensionLister {
	if cli == "" {
		cli = "code"
	}
	return &ExtensionLister{CLI: cli}
}

// InstalledExtensions returns the installed extension identifiers in the
// order the editor prints them. Empty output yields a nil slice.
func (l *ExtensionLister) InstalledExtensions(ctx context.Context) ([]string, error) {
	bin, err := exec.LookPath(l.CLI)
	if err != nil {
		return nil, fmt.Errorf("listing extensions requires %s on PATH: %w", l.CLI, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--list-extensions")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s --list-extensions failed: %w: %s", l.CLI, err, msg)
		}
		return nil, fmt.Errorf("%s --list-extensions failed: %w", l.CLI, err)
	}

	return ParseExtensionList(stdout.String()), nil
}

// ParseExtensionList splits command output on whitespace.
func ParseExtensionList(out string) []string {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// InstalledVersion returns the editor version reported by "<cli> --version"
// (its first output line).
func (l *ExtensionLister) InstalledVersion(ctx context.Context) (string, error) {
	bin, err := exec.LookPath(l.CLI)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", l.CLI, err)
	}

	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", l.CLI, err)
	}

	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", fmt.Errorf("%s --version printed nothing", l.CLI)
	}
	return fields[0], nil
}
