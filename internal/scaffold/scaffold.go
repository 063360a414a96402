package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/vsext-labs/vsext/internal/genconfig"
	"github.com/vsext-labs/vsext/internal/log"
	"github.com/vsext-labs/vsext/internal/manifest"
)

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // slash-separated paths relative to OutputDir, in write order
	Warnings  []string
}

// Generate writes the project described by cfg into outputDir, which must
// not exist yet or be empty.
func Generate(cfg *genconfig.GenerationConfig, outputDir string) (*Result, error) {
	if err := genconfig.Validate(cfg); err != nil {
		return nil, err
	}

	plan, ok := plans[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("no file plan for extension type %q", cfg.Type)
	}
	setName := templateSetName(cfg.Type)
	root := path.Join("templates", setName)
	if _, err := fs.Stat(templatesFS, root); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	logger := log.WithComponent("scaffold")
	w := &writer{
		root:     root,
		out:      outputDir,
		renderer: newRenderer(cfg.TemplateContext()),
		result:   &Result{OutputDir: outputDir},
	}

	for _, e := range plan {
		if !e.when(cfg) {
			logger.Debug().Str(log.FieldPath, e.dst).Msg("skipping plan entry")
			continue
		}
		if err := w.place(e.src, e.dst); err != nil {
			return nil, err
		}
	}

	for _, f := range w.result.Files {
		logger.Debug().Str(log.FieldPath, f).Msg("wrote file")
	}

	manifestFile := filepath.Join(outputDir, "package.json")
	if _, err := os.Stat(manifestFile); err == nil {
		w.result.Warnings = append(w.result.Warnings, manifestWarnings(manifestFile)...)
	}

	return w.result, nil
}

// manifestWarnings validates the generated package.json.
func manifestWarnings(file string) []string {
	res, err := manifest.ValidateFile(file)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate package.json: %v", err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, "package.json "+issue.String())
	}
	return warnings
}

type writer struct {
	root     string
	out      string
	renderer *renderer
	result   *Result
}

// place copies a template file or directory tree to dst.
func (w *writer) place(src, dst string) error {
	srcPath := path.Join(w.root, src)
	info, err := fs.Stat(templatesFS, srcPath)
	if err != nil {
		return fmt.Errorf("template %s not found: %w", src, err)
	}
	if !info.IsDir() {
		return w.writeFile(srcPath, dst)
	}

	return fs.WalkDir(templatesFS, srcPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, srcPath+"/")
		return w.writeFile(p, path.Join(dst, strings.TrimSuffix(rel, ".tmpl")))
	})
}

func (w *writer) writeFile(srcPath, dst string) error {
	data, err := fs.ReadFile(templatesFS, srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	if strings.HasSuffix(srcPath, ".tmpl") {
		data, err = w.renderer.render(srcPath, data)
		if err != nil {
			return err
		}
	}

	outPath := filepath.Join(w.out, filepath.FromSlash(dst))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}
	if err := renameio.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	w.result.Files = append(w.result.Files, dst)
	return nil
}
