package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePackageJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunManifestCheck_Valid(t *testing.T) {
	path := writePackageJSON(t, `{"name":"demo","version":"0.0.1","engines":{"vscode":"^1.95.0"},"extensionPack":[]}`)

	var out bytes.Buffer
	if err := runManifestCheck(&out, path); err != nil {
		t.Fatalf("runManifestCheck: %v", err)
	}
	if !strings.Contains(out.String(), "[ OK ] Valid extension pack manifest: demo (v0.0.1, engine ^1.95.0)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunManifestCheck_Invalid(t *testing.T) {
	path := writePackageJSON(t, `{"name":"Demo","version":"0.0.1","engines":{"vscode":"^1.95.0"}}`)

	var out bytes.Buffer
	if err := runManifestCheck(&out, path); err == nil {
		t.Fatal("expected error for invalid manifest")
	}
	if !strings.Contains(out.String(), "- /name:") {
		t.Errorf("expected issue for /name, got:\n%s", out.String())
	}
}

func TestCheckBinary_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	var out bytes.Buffer
	checkBinary(&out, "no-such-tool")
	if got := out.String(); got != "  [MISS] no-such-tool not found\n" {
		t.Errorf("output = %q", got)
	}
}

func TestReportEditorVersion(t *testing.T) {
	tests := []struct {
		engine, version, want string
	}{
		{"^1.95.0", "1.96.1", "[ OK ] installed editor 1.96.1 satisfies ^1.95.0"},
		{"^1.96.0", "1.95.3", "[WARN] installed editor 1.95.3 is older than ^1.96.0"},
		{"^1.96.0", "insiders", "[WARN] cannot compare editor insiders"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		reportEditorVersion(&out, tt.engine, tt.version)
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("reportEditorVersion(%s, %s) = %q, want %q", tt.engine, tt.version, out.String(), tt.want)
		}
	}
}
