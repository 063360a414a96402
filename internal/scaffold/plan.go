package scaffold

import (
	"github.com/vsext-labs/vsext/internal/genconfig"
)

// entry maps one template path (file or directory) to its destination
// inside the project directory.
type entry struct {
	src  string
	dst  string
	when func(*genconfig.GenerationConfig) bool
}

func always(*genconfig.GenerationConfig) bool { return true }

func withGit(c *genconfig.GenerationConfig) bool { return c.GitInit() }

var plans = map[genconfig.ExtensionType][]entry{
	genconfig.TypeNewExtension: {
		{src: "vscode", dst: ".vscode", when: always},
		{src: "test", dst: "test", when: always},
		{src: "vscodeignore", dst: ".vscodeignore", when: always},
		{src: "gitignore", dst: ".gitignore", when: withGit},
		{src: "README.md.tmpl", dst: "README.md", when: always},
		{src: "CHANGELOG.md.tmpl", dst: "CHANGELOG.md", when: always},
		{src: "vsc-extension-quickstart.md.tmpl", dst: "vsc-extension-quickstart.md", when: always},
		{src: "jsconfig.json.tmpl", dst: "jsconfig.json", when: always},
		{src: "extension.js.tmpl", dst: "extension.js", when: always},
		{src: "package.json.tmpl", dst: "package.json", when: always},
		{src: "eslintrc.json.tmpl", dst: ".eslintrc.json", when: always},
		{src: "vscode-test.mjs", dst: ".vscode-test.mjs", when: always},
	},
	genconfig.TypeExtensionPack: {
		{src: "vscode", dst: ".vscode", when: always},
		{src: "package.json.tmpl", dst: "package.json", when: always},
		{src: "vsc-extension-quickstart.md.tmpl", dst: "vsc-extension-quickstart.md", when: always},
		{src: "README.md.tmpl", dst: "README.md", when: always},
		{src: "CHANGELOG.md.tmpl", dst: "CHANGELOG.md", when: always},
		{src: "vscodeignore", dst: ".vscodeignore", when: always},
		{src: "gitignore", dst: ".gitignore", when: withGit},
		{src: "gitattributes", dst: ".gitattributes", when: withGit},
	},
}

// templateSetName returns the embedded directory holding a type's templates.
func templateSetName(t genconfig.ExtensionType) string {
	return string(t)
}
