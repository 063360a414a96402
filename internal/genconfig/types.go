package genconfig

import (
	"slices"
	"strings"
)

// ExtensionType selects the template set and gates every type-specific step.
type ExtensionType string

const (
	// TypeNewExtension is a new JavaScript extension with a command.
	TypeNewExtension ExtensionType = "ext-command-js"
	// TypeExtensionPack is an extension whose manifest bundles other extensions.
	TypeExtensionPack ExtensionType = "ext-extensionpack"
)

const typePrefix = "ext-"

// typeChoices is the order the type question lists its options in.
var typeChoices = []struct {
	label string
	value ExtensionType
}{
	{"New Extension (JavaScript)", TypeNewExtension},
	{"New Extension Pack", TypeExtensionPack},
}

// TypeNames returns the values accepted by --extensionType.
func TypeNames() []string {
	names := make([]string, len(typeChoices))
	for i, c := range typeChoices {
		names[i] = strings.TrimPrefix(string(c.value), typePrefix)
	}
	return names
}

// ParseType maps a --extensionType value ("command-js", "extensionpack") to
// its ExtensionType. Matching is exact.
func ParseType(s string) (ExtensionType, bool) {
	if !slices.Contains(TypeNames(), s) {
		return "", false
	}
	return ExtensionType(typePrefix + s), true
}

// String returns the flag form of the type.
func (t ExtensionType) String() string {
	return strings.TrimPrefix(string(t), typePrefix)
}

// PackageManager installs the dependencies of a new extension.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
)

var packageManagers = []PackageManager{PackageManagerNPM, PackageManagerYarn}

// DefaultExtensionList is the placeholder list written into a new extension
// pack when the installed extensions are not used.
func DefaultExtensionList() []string {
	return []string{"publisher.extensionName"}
}

// ProjectSettings only exists for TypeNewExtension.
type ProjectSettings struct {
	CheckJavaScript bool           `json:"checkJavaScript"`
	GitInit         bool           `json:"gitInit"`
	PkgManager      PackageManager `json:"pkgManager" validate:"oneof=npm yarn"`
}

// PackSettings only exists for TypeExtensionPack.
type PackSettings struct {
	ExtensionList []string `json:"extensionList"`
}

// Options are the pre-supplied answers, usually taken from command-line
// flags. Empty strings mean "not supplied".
type Options struct {
	ExtensionType        string
	ExtensionName        string
	ExtensionDescription string
	ExtensionDisplayName string
	// ExtensionParam pre-answers the extension pack question "add the
	// currently installed extensions": "y" or "n".
	ExtensionParam string
	// ExtensionParam2 is accepted for command-line compatibility. No step
	// reads it.
	ExtensionParam2 string
}

// GenerationConfig fully determines what gets generated. Build returns it
// complete; callers treat it as read-only from then on.
type GenerationConfig struct {
	Type         ExtensionType `json:"type" validate:"required,oneof=ext-command-js ext-extensionpack"`
	DisplayName  string        `json:"displayName"`
	Name         string        `json:"name" validate:"required,extid"`
	Description  string        `json:"description"`
	VSCodeEngine string        `json:"vsCodeEngine" validate:"required"`

	Project *ProjectSettings `json:"project,omitempty"`
	Pack    *PackSettings    `json:"pack,omitempty"`

	InstallDependencies bool `json:"installDependencies"`
}

// GitInit reports whether a git repository should be initialized.
func (c *GenerationConfig) GitInit() bool {
	return c.Project != nil && c.Project.GitInit
}

// CheckJavaScript reports whether jsconfig.json enables type checking.
func (c *GenerationConfig) CheckJavaScript() bool {
	return c.Project != nil && c.Project.CheckJavaScript
}

// PkgManager returns the package manager, or "" for extension packs.
func (c *GenerationConfig) PkgManager() PackageManager {
	if c.Project == nil {
		return ""
	}
	return c.Project.PkgManager
}

// ExtensionList returns the extensions bundled by a pack, or nil.
func (c *GenerationConfig) ExtensionList() []string {
	if c.Pack == nil {
		return nil
	}
	return c.Pack.ExtensionList
}

// TemplateContext exposes the record to the template renderer. Keys follow
// the names used inside the templates.
func (c *GenerationConfig) TemplateContext() map[string]any {
	ctx := map[string]any{
		"type":                string(c.Type),
		"name":                c.Name,
		"displayName":         c.DisplayName,
		"description":         c.Description,
		"vsCodeEngine":        c.VSCodeEngine,
		"installDependencies": c.InstallDependencies,
		"gitInit":             c.GitInit(),
	}
	if c.Project != nil {
		ctx["checkJavaScript"] = c.Project.CheckJavaScript
		ctx["pkgManager"] = string(c.Project.PkgManager)
	}
	if c.Pack != nil {
		list := c.Pack.ExtensionList
		if list == nil {
			list = []string{}
		}
		ctx["extensionList"] = list
	}
	return ctx
}
