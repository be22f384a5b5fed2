package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsHeadless reports whether stdin is not a terminal, in which case forms
// cannot be shown and callers must rely on flags.
func IsHeadless() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
