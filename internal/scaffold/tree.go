package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/upmgen-labs/upmgen/internal/manifest"
)

// Fixed names inside a package root.
const (
	RuntimeDir       = "Runtime"
	EditorDir        = "Editor"
	TestsDir         = "Tests"
	DocumentationDir = "Documentation"
	SamplesDir       = "Samples"
	IgnoreFileName   = ".gitIgnore"
)

// emptyFiles are created with no content in every package root.
var emptyFiles = []string{"README.md", "LICENSE.md", "CHANGELOG.md"}

// codeFolder is a folder that gets its own assembly definition.
type codeFolder struct {
	dir        string
	suffix     string
	editorOnly bool
}

var (
	runtimeFolder     = codeFolder{dir: RuntimeDir, suffix: "", editorOnly: false}
	editorFolder      = codeFolder{dir: EditorDir, suffix: ".Editor", editorOnly: true}
	testRuntimeFolder = codeFolder{dir: filepath.Join(TestsDir, RuntimeDir), suffix: ".Tests.Runtime", editorOnly: true}
	testEditorFolder  = codeFolder{dir: filepath.Join(TestsDir, EditorDir), suffix: ".Tests.Editor", editorOnly: true}
)

// ExampleDir returns the sample folder for example i, relative to the root.
func ExampleDir(i int) string {
	return filepath.Join(SamplesDir, fmt.Sprintf("Example %d", i))
}

type generator struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
	result *Result
}

func (g *generator) run(ctx context.Context, cfg GenerationConfig) error {
	authorKey, packageKey := cfg.AuthorKey(), cfg.PackageKey()

	if err := g.fs.MkdirAll(g.root, 0755); err != nil {
		return &IOFaultError{Step: "creating", Path: g.root, Err: err}
	}
	for _, name := range emptyFiles {
		if err := g.writeFile(name, nil); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.writePackageManifest(cfg); err != nil {
		return err
	}

	folders := []codeFolder{runtimeFolder}
	if cfg.Flags.IncludeEditorFolder {
		folders = append(folders, editorFolder)
	}
	if cfg.Flags.IncludeTestFolder {
		folders = append(folders, testRuntimeFolder)
		// Editor tests follow the Editor folder, not a flag of their own.
		if cfg.Flags.IncludeEditorFolder {
			folders = append(folders, testEditorFolder)
		}
	}
	for _, f := range folders {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.writeCodeFolder(f, authorKey, packageKey); err != nil {
			return err
		}
	}

	if cfg.Flags.IncludeDocsFolder {
		if err := g.mkdir(DocumentationDir); err != nil {
			return err
		}
	}

	if cfg.Flags.IncludeIgnoreFile {
		if cfg.IgnoreFileContent != nil {
			if err := g.writeFile(IgnoreFileName, []byte(*cfg.IgnoreFileContent)); err != nil {
				return err
			}
		} else {
			g.logger.Warn("ignore file requested but no content supplied")
			g.warn("no ignore file content supplied; %s was not written", IgnoreFileName)
		}
	}

	if cfg.ExampleCount > 0 {
		if err := g.mkdir(SamplesDir); err != nil {
			return err
		}
		for i := 1; i <= cfg.ExampleCount; i++ {
			if err := g.mkdir(ExampleDir(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *generator) writePackageManifest(cfg GenerationConfig) error {
	m := cfg.PackageManifest()
	if err := manifest.CheckVersion(m.Version); err != nil {
		g.warn("%v", err)
	}
	if err := manifest.CheckUnityVersion(m.Unity); err != nil {
		g.warn("%v", err)
	}

	data := m.Encode()
	if err := g.writeFile(manifest.PackageFileName, data); err != nil {
		return err
	}
	g.validate(manifest.KindPackage, manifest.PackageFileName, data)
	return nil
}

func (g *generator) writeCodeFolder(f codeFolder, authorKey, packageKey string) error {
	if err := g.mkdir(f.dir); err != nil {
		return err
	}
	asm := manifest.NewAssemblyDefinition(authorKey, packageKey, f.suffix, f.editorOnly)
	rel := filepath.Join(f.dir, asm.FileName())
	data := asm.Encode()
	if err := g.writeFile(rel, data); err != nil {
		return err
	}
	g.validate(manifest.KindAssembly, rel, data)
	return nil
}

func (g *generator) mkdir(rel string) error {
	path := filepath.Join(g.root, rel)
	if err := g.fs.MkdirAll(path, 0755); err != nil {
		return &IOFaultError{Step: "creating", Path: path, Err: err}
	}
	g.result.Dirs = append(g.result.Dirs, rel)
	g.logger.Debug("created directory", "path", path)
	return nil
}

// writeFile creates or truncates rel under the root.
func (g *generator) writeFile(rel string, data []byte) error {
	path := filepath.Join(g.root, rel)
	if err := afero.WriteFile(g.fs, path, data, 0644); err != nil {
		return &IOFaultError{Step: "writing", Path: path, Err: err}
	}
	g.result.Files = append(g.result.Files, rel)
	g.logger.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

// validate checks generated manifest bytes against the embedded schema and
// records problems as warnings.
func (g *generator) validate(kind manifest.Kind, rel string, data []byte) {
	res, err := manifest.Validate(kind, data)
	if err != nil {
		g.warn("could not validate %s: %v", rel, err)
		return
	}
	for _, issue := range res.Issues {
		g.warn("%s: %s", rel, issue)
	}
}

func (g *generator) warn(format string, args ...any) {
	g.result.Warnings = append(g.result.Warnings, fmt.Sprintf(format, args...))
}
