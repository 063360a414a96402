//go:build integration

package integration_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds the sandbox one generator run works in.
type testEnv struct {
	HomeDir   string // HOME; the engine cache lives under it
	BinDir    string // prepended to PATH; holds the fake tools
	OutputDir string // parent of generated projects
	LogFile   string // every fake tool appends "<tool> <args> @ <pwd>" here
	FeedURL   string
}

// setupTestEnv creates isolated directories, fake editor/npm/yarn/git
// binaries, and a release feed server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	env := &testEnv{
		HomeDir:   t.TempDir(),
		BinDir:    t.TempDir(),
		OutputDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	for _, tool := range []string{"npm", "yarn", "git"} {
		writeTool(t, env, tool, "")
	}
	writeTool(t, env, "code", `printf 'ms-python.python\nesbenp.prettier-vscode\n'`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"version":"1.96.2"},{"version":"1.96.1"}]`))
	}))
	t.Cleanup(srv.Close)
	env.FeedURL = srv.URL

	return env
}

func writeTool(t *testing.T, env *testEnv, name, extra string) {
	t.Helper()
	script := "#!/bin/sh\necho \"" + name + " $* @ $(pwd)\" >> " + env.LogFile + "\n" + extra + "\n"
	writeFile(t, filepath.Join(env.BinDir, name), script)
	if err := os.Chmod(filepath.Join(env.BinDir, name), 0755); err != nil {
		t.Fatal(err)
	}
}

// calls returns the recorded tool invocations.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q\n--- content ---\n%s", path, substr, data)
	}
}
