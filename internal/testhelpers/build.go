package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// BuildBin builds a repo-local package at pkgPath into a temp binary and
// returns its path. pkgPath is relative to the repository root.
func BuildBin(t *testing.T, outName, pkgPath string) string {
	t.Helper()
	root := RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), outName)
	cmd := exec.Command("go", "build", "-o", outPath, pkgPath)
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s failed: %v\n%s", pkgPath, err, string(out))
	}
	return outPath
}

// RepoRoot returns the nearest parent directory containing go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("go.mod not found above working directory")
		}
		dir = parent
	}
}

// Env returns a process environment isolated under dir: HOME points at dir
// and the editor reads its configuration from configYAML.
func Env(t *testing.T, dir, configYAML string) []string {
	t.Helper()
	cfg := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfg, []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return append(os.Environ(),
		"HOME="+dir,
		"LINEEDIT_CONFIG="+cfg,
		"LINEEDIT_LOG=",
		"LINEEDIT_LOG_FILE=",
	)
}
