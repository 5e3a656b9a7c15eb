package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pyk/xdgdir/pkg/xdg"
)

// PinEnv points $HOME at home and blanks every XDG variable so the test
// starts from a fully determined environment. Blank values count as unset
// during resolution, so this also neutralizes anything leaking in from the
// host shell.
func PinEnv(t *testing.T, home string) {
	t.Helper()

	t.Setenv(xdg.EnvHome, home)
	for _, key := range []string{
		xdg.EnvConfigHome,
		xdg.EnvDataHome,
		xdg.EnvStateHome,
		xdg.EnvCacheHome,
		xdg.EnvBinHome,
		xdg.EnvRuntimeDir,
	} {
		t.Setenv(key, "")
	}
}

// TempHome creates a temporary directory, pins the environment to it and
// returns its path.
func TempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	PinEnv(t, home)
	return home
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}
