package scaffold

import (
	"strings"
	"unicode"

	"github.com/upmgen-labs/upmgen/internal/manifest"
)

// Flags selects the optional parts of the generated tree.
type Flags struct {
	IncludeEditorFolder bool
	IncludeTestFolder   bool
	IncludeDocsFolder   bool
	IncludeIgnoreFile   bool
}

// GenerationConfig is everything one generation request needs.
type GenerationConfig struct {
	Author      string // as entered; written to author.name
	PackageName string // as entered; written to displayName
	Flags       Flags

	// ExampleCount is the number of Samples/Example N folders to create.
	ExampleCount int

	// IgnoreFileContent is written verbatim to .gitIgnore when
	// Flags.IncludeIgnoreFile is set. Nil means no content was supplied.
	IgnoreFileContent *string

	// Manifest fields. Empty values fall back to the manifest package defaults.
	Version      string
	Description  string
	UnityVersion string
}

// Normalize removes every whitespace character from s.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// AuthorKey returns the normalized author.
func (c GenerationConfig) AuthorKey() string { return Normalize(c.Author) }

// PackageKey returns the normalized package name, which is also the name of
// the package root directory.
func (c GenerationConfig) PackageKey() string { return Normalize(c.PackageName) }

func (c GenerationConfig) version() string {
	if c.Version == "" {
		return manifest.DefaultVersion
	}
	return c.Version
}

func (c GenerationConfig) description() string {
	if c.Description == "" {
		return manifest.DefaultDescription
	}
	return c.Description
}

func (c GenerationConfig) unityVersion() string {
	if c.UnityVersion == "" {
		return manifest.DefaultUnity
	}
	return c.UnityVersion
}

// PackageManifest builds the package.json content for c.
func (c GenerationConfig) PackageManifest() *manifest.PackageManifest {
	return &manifest.PackageManifest{
		Name:         manifest.PackageID(c.AuthorKey(), c.PackageKey()),
		Version:      c.version(),
		DisplayName:  c.PackageName,
		Description:  c.description(),
		Unity:        c.unityVersion(),
		Author:       manifest.PackageAuthor{Name: c.Author},
		HideInEditor: "false",
		Samples:      manifest.ExampleSamples(c.ExampleCount),
	}
}
