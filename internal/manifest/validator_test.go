package manifest

import (
	"path/filepath"
	"strings"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-extension.json", "valid-pack.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				for _, issue := range result.Issues {
					t.Errorf("unexpected issue: %s (%s)", issue, issue.Keyword)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file     string
		wantPath string
	}{
		{"invalid-uppercase-name.json", "/name"},
		{"invalid-missing-engine.json", "/engines"},
		{"invalid-pack-entry.json", "/extensionPack/0"},
		{"invalid-category.json", "/categories/0"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected %s to be invalid", tt.file)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %s has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no issue at %s; got %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidateFile_NotJSON(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-json.json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidationIssue_String(t *testing.T) {
	issue := ValidationIssue{Path: "/name", Message: "does not match pattern"}
	if got := issue.String(); !strings.HasPrefix(got, "/name: ") {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q, want %q", got, "bad")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
