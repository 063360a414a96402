package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Engines lists the host versions an extension runs on.
type Engines struct {
	VSCode string `json:"vscode"`
}

// PackageManifest is the subset of package.json the generator writes and
// reads back.
type PackageManifest struct {
	Name             string            `json:"name"`
	DisplayName      string            `json:"displayName,omitempty"`
	Description      string            `json:"description,omitempty"`
	Version          string            `json:"version"`
	Publisher        string            `json:"publisher,omitempty"`
	Engines          Engines           `json:"engines"`
	Categories       []string          `json:"categories,omitempty"`
	ActivationEvents []string          `json:"activationEvents,omitempty"`
	Main             string            `json:"main,omitempty"`
	Contributes      json.RawMessage   `json:"contributes,omitempty"`
	ExtensionPack    []string          `json:"extensionPack,omitempty"`
	Scripts          map[string]string `json:"scripts,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
}

// IsExtensionPack reports whether the manifest bundles other extensions.
func (m *PackageManifest) IsExtensionPack() bool {
	return m.ExtensionPack != nil
}

// Parse decodes package.json bytes.
func Parse(data []byte) (*PackageManifest, error) {
	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes a package.json file.
func ParseFile(path string) (*PackageManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
