package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
	"github.com/vsext-labs/vsext/internal/config"
	"github.com/vsext-labs/vsext/internal/manifest"
	"github.com/vsext-labs/vsext/internal/vscode"
)

var (
	checkTools    bool
	checkEngine   bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify the editor CLI, npm, yarn and git are on PATH")
	doctorCmd.Flags().BoolVar(&checkEngine, "check-engine", false, "Resolve the latest engine version from the release feed")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools the generator depends on",
	Long:  `Run diagnostic checks on the external tools and services used while generating an extension.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		anyFlag := checkTools || checkEngine || checkManifest != ""

		if !anyFlag || checkTools {
			runToolsCheck(out)
		}
		if !anyFlag || checkEngine {
			runEngineCheck(cmd.Context(), out)
		}
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}
		return nil
	},
}

func runToolsCheck(w io.Writer) {
	fmt.Fprintln(w, "Tools check:")
	checkBinary(w, config.EditorCLI())
	checkBinary(w, "npm")
	checkBinary(w, "yarn")
	checkBinary(w, "git")
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

func runEngineCheck(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Engine check:")
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	r := vscode.NewEngineResolver(vscode.WithFeedURL(config.EngineURL()))
	engine, err := r.LatestEngine(ctx)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s unreachable: %v\n", config.EngineURL(), err)
		fmt.Fprintf(w, "  [INFO] new extensions will use %s\n", config.EngineFallback())
		return
	}
	fmt.Fprintf(w, "  [ OK ] latest engine %s\n", engine)

	editor := vscode.NewExtensionLister(config.EditorCLI())
	version, err := editor.InstalledVersion(ctx)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] installed editor version unknown: %v\n", err)
		return
	}
	reportEditorVersion(w, engine, version)
}

func reportEditorVersion(w io.Writer, engine, version string) {
	ok, err := vscode.SatisfiesEngine(engine, version)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] cannot compare editor %s with %s: %v\n", version, engine, err)
	case ok:
		fmt.Fprintf(w, "  [ OK ] installed editor %s satisfies %s\n", version, engine)
	default:
		fmt.Fprintf(w, "  [WARN] installed editor %s is older than %s; update it to run new extensions\n", version, engine)
	}
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := manifest.ParseFile(path)
		if err != nil {
			fmt.Fprintln(w, "  [ OK ] Valid manifest")
			return nil
		}
		kind := "extension"
		if m.IsExtensionPack() {
			kind = "extension pack"
		}
		fmt.Fprintf(w, "  [ OK ] Valid %s manifest: %s (v%s, engine %s)\n", kind, m.Name, m.Version, m.Engines.VSCode)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest has %d validation issue(s)", len(result.Issues))
}
