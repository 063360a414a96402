package genconfig

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Cool Tool!", "my-cool-tool-"},
		{"hello", "hello"},
		{"Hello World", "hello-world"},
		{"a  --  b", "a-b"},
		{"  padded  ", "-padded-"},
		{"Version 2.0", "version-2-0"},
		{"Ünïcode Name", "-n-code-name"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateExtensionID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"my-ext", false},
		{"MyExt", false},
		{"ext2", false},
		{"my-cool-tool-", false},
		{"0day", false},
		{"", true},
		{"-leading", true},
		{"has space", true},
		{"dots.not.allowed", true},
		{"under_score", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateExtensionID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtensionID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
