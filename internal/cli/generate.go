package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vsext-labs/vsext/internal/config"
	"github.com/vsext-labs/vsext/internal/genconfig"
	"github.com/vsext-labs/vsext/internal/install"
	"github.com/vsext-labs/vsext/internal/log"
	"github.com/vsext-labs/vsext/internal/prompt"
	"github.com/vsext-labs/vsext/internal/scaffold"
	"github.com/vsext-labs/vsext/internal/vscode"
)

var (
	genOpts     genconfig.Options
	outputDir   string
	skipInstall bool
	skipGit     bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&genOpts.ExtensionType, "extensionType", "", "Extension type: command-js or extensionpack")
	f.StringVar(&genOpts.ExtensionName, "extensionName", "", "Extension identifier (lowercase, no spaces)")
	f.StringVar(&genOpts.ExtensionDescription, "extensionDescription", "", "Extension description")
	f.StringVar(&genOpts.ExtensionDisplayName, "extensionDisplayName", "", "Extension display name")
	f.StringVar(&genOpts.ExtensionParam, "extensionParam", "", "Extension pack: add the installed extensions (y/n)")
	f.StringVar(&genOpts.ExtensionParam2, "extensionParam2", "", "Reserved")
	f.StringVarP(&outputDir, "output-dir", "o", ".", "Directory the extension folder is created in")
	f.BoolVar(&skipInstall, "skip-install", false, "Do not install npm/yarn dependencies")
	f.BoolVar(&skipGit, "skip-git", false, "Do not run git init even when requested")
}

// generator wires the configuration builder to the scaffolder and the
// finalization commands.
type generator struct {
	builder   *genconfig.Builder
	finalizer *install.Finalizer
	out       io.Writer
	editorCLI string
}

func runGenerate(cmd *cobra.Command, args []string) error {
	asker := prompt.NewSurvey()
	engine := vscode.NewEngineResolver(
		vscode.WithFeedURL(config.EngineURL()),
		vscode.WithCache(config.Dir(), config.EngineCacheTTL()),
	)

	g := &generator{
		builder: genconfig.NewBuilder(asker,
			genconfig.WithEngineResolver(engine),
			genconfig.WithExtensionLister(vscode.NewExtensionLister(config.EditorCLI())),
			genconfig.WithFallbackEngine(config.EngineFallback()),
		),
		finalizer: install.NewFinalizer(
			install.WithRunner(&install.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}),
			install.SkipInstall(skipInstall),
			install.SkipGit(skipGit),
		),
		out:       cmd.OutOrStdout(),
		editorCLI: config.EditorCLI(),
	}
	return g.run(cmd.Context(), genOpts, outputDir)
}

func (g *generator) run(ctx context.Context, opts genconfig.Options, parentDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.WithComponent("generate")

	printWelcome(g.out)

	cfg, err := g.builder.Build(ctx, opts)
	if err != nil {
		return err
	}

	projectDir := filepath.Join(parentDir, cfg.Name)
	logger.Debug().Str(log.FieldType, cfg.Type.String()).Str(log.FieldPath, projectDir).Msg("writing project")

	result, err := scaffold.Generate(cfg, projectDir)
	if err != nil {
		return fmt.Errorf("writing extension: %w", err)
	}

	finalizeErr := g.finalizer.Run(ctx, cfg, projectDir)

	printReport(g.out, report{
		config:     cfg,
		projectDir: displayDir(parentDir, cfg.Name, projectDir),
		editorCLI:  g.editorCLI,
		warnings:   result.Warnings,
		setupErr:   finalizeErr,
	})

	if finalizeErr != nil {
		return fmt.Errorf("finishing %s: %w", cfg.Name, finalizeErr)
	}
	return nil
}

// displayDir returns the path the user should cd into.
func displayDir(parentDir, name, projectDir string) string {
	if parentDir == "" || parentDir == "." {
		return name
	}
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, projectDir); err == nil && !filepath.IsAbs(rel) {
			return rel
		}
	}
	return projectDir
}
