package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFile_Extension(t *testing.T) {
	m, err := ParseFile(testPath("valid-extension.json"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	want := &PackageManifest{
		Name:             "hello-world",
		DisplayName:      "Hello World",
		Description:      "Says hello",
		Version:          "0.0.1",
		Engines:          Engines{VSCode: "^1.95.0"},
		Categories:       []string{"Other"},
		ActivationEvents: []string{},
		Main:             "./extension.js",
		Scripts:          map[string]string{"lint": "eslint .", "test": "vscode-test"},
		DevDependencies:  map[string]string{"@types/vscode": "^1.95.0", "eslint": "^9.13.0"},
	}
	if diff := cmp.Diff(want, m, cmpopts.IgnoreFields(PackageManifest{}, "Contributes")); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
	if len(m.Contributes) == 0 {
		t.Error("expected contributes to be captured")
	}
	if m.IsExtensionPack() {
		t.Error("plain extension reported as pack")
	}
}

func TestParseFile_Pack(t *testing.T) {
	m, err := ParseFile(testPath("valid-pack.json"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if !m.IsExtensionPack() {
		t.Fatal("expected extension pack")
	}
	if diff := cmp.Diff([]string{"publisher.extensionName"}, m.ExtensionPack); diff != "" {
		t.Errorf("extensionPack mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_Errors(t *testing.T) {
	if _, err := ParseFile(testPath("invalid-not-json.json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := ParseFile(testPath("nonexistent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
