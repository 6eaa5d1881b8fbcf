package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMain keeps the rotating log out of the package directory.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "crosswire-cmd-test-*")
	if err != nil {
		panic(err)
	}

	_ = os.Setenv(envPrefix+"_LOG_FILENAME", filepath.Join(dir, "test.log"))

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}
