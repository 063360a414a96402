package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "vsext" {
		t.Errorf("CLIName() = %q, want %q", got, "vsext")
	}
	if got := HomeDir(); got != ".vsext" {
		t.Errorf("HomeDir() = %q, want %q", got, ".vsext")
	}
	if got := WebsiteURL(); got == "" {
		t.Error("WebsiteURL() should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "VSEXT_LOG_LEVEL" {
		t.Errorf("EnvVar() = %q, want %q", got, "VSEXT_LOG_LEVEL")
	}
}
