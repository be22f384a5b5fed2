package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// Status is the outcome of a generation request.
type Status int

const (
	// StatusSuccess means the tree was written.
	StatusSuccess Status = iota
	// StatusNeedsConfirmation means the package root already exists and
	// nothing was written. Repeating the request overwrites it.
	StatusNeedsConfirmation
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNeedsConfirmation:
		return "needs-confirmation"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a generation request.
type Result struct {
	Status  Status
	Message string

	// Root is the package root directory. Dirs and Files are relative to it
	// in creation order.
	Root     string
	Dirs     []string
	Files    []string
	Warnings []string
}

// Session is the state a Scaffolder keeps between requests of one
// interactive run.
type Session struct {
	// PendingOverwrite is armed after a conflict was reported for PendingKey.
	PendingOverwrite bool
	PendingKey       string

	// LastAuthor and LastPackageName are the values of the latest request,
	// offered back to the user as defaults.
	LastAuthor      string
	LastPackageName string
}

// Scaffolder writes package trees under a base directory.
type Scaffolder struct {
	Session Session

	fs      afero.Fs
	baseDir string
	logger  *slog.Logger
}

// New creates a Scaffolder that writes into baseDir on fsys. A nil logger
// discards all output.
func New(fsys afero.Fs, baseDir string, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{
		fs:      fsys,
		baseDir: baseDir,
		logger:  logger,
	}
}

// BaseDir returns the directory package roots are created in.
func (s *Scaffolder) BaseDir() string { return s.baseDir }

// RequestGeneration generates the package tree for cfg.
//
// If the package root already exists and no overwrite is pending for it, the
// request returns StatusNeedsConfirmation without touching the filesystem and
// arms the pending overwrite. The next request for the same package clears it
// and writes into the existing tree: directories are merged and files are
// truncated.
//
// A filesystem failure aborts the remaining steps and is returned as an
// *IOFaultError; whatever was written before it stays on disk.
func (s *Scaffolder) RequestGeneration(ctx context.Context, cfg GenerationConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cfg.PackageKey()
	root := filepath.Join(s.baseDir, key)
	s.Session.LastAuthor = cfg.Author
	s.Session.LastPackageName = cfg.PackageName

	if s.Session.PendingOverwrite && s.Session.PendingKey != key {
		s.logger.Debug("dropping pending overwrite for a different package",
			"pending", s.Session.PendingKey, "requested", key)
		s.disarm()
	}

	if s.Session.PendingOverwrite {
		s.disarm()
		s.logger.Info("overwriting existing package", "root", root)
	} else {
		exists, err := afero.DirExists(s.fs, root)
		if err != nil {
			return nil, &IOFaultError{Step: "checking", Path: root, Err: err}
		}
		if exists {
			s.Session.PendingOverwrite = true
			s.Session.PendingKey = key
			s.logger.Info("package root already exists", "root", root)
			return &Result{
				Status:  StatusNeedsConfirmation,
				Message: fmt.Sprintf("Package with name '%s' already exists, request again to overwrite.", key),
				Root:    root,
			}, nil
		}
	}

	s.logger.Info("generating package",
		"root", root,
		"author", cfg.Author,
		"package", cfg.PackageName,
		"examples", cfg.ExampleCount,
	)

	g := &generator{fs: s.fs, root: root, logger: s.logger, result: &Result{Root: root}}
	if err := g.run(ctx, cfg); err != nil {
		return nil, err
	}

	g.result.Status = StatusSuccess
	g.result.Message = "Success"
	return g.result, nil
}

func (s *Scaffolder) disarm() {
	s.Session.PendingOverwrite = false
	s.Session.PendingKey = ""
}
