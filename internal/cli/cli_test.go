package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// setupCLI isolates a command run: a fresh HOME, a reset viper, default
// flag values and an in-memory filesystem.
func setupCLI(t *testing.T) afero.Fs {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	newOpts = newOptions{editor: true}
	verbose = false

	prev := filesystem
	filesystem = afero.NewMemMapFs()
	t.Cleanup(func() { filesystem = prev })
	return filesystem
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}
