package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Kind identifies which of the two manifest formats a file holds.
type Kind string

const (
	KindPackage  Kind = "package"
	KindAssembly Kind = "assembly"
)

// DetectKind returns the manifest kind implied by a file name.
func DetectKind(path string) (Kind, error) {
	base := filepath.Base(path)
	switch {
	case base == PackageFileName:
		return KindPackage, nil
	case strings.HasSuffix(base, AssemblyExtension):
		return KindAssembly, nil
	default:
		return "", fmt.Errorf("unrecognized manifest file %q", base)
	}
}

// ParsePackage reads and decodes a package.json file.
func ParsePackage(path string) (*PackageManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := DecodePackage(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseAssembly reads and decodes an .asmdef file.
func ParseAssembly(path string) (*AssemblyDefinition, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	a, err := DecodeAssembly(data)
	if err != nil {
		return nil, fmt.Errorf("parsing assembly definition %s: %w", path, err)
	}
	return a, nil
}

// DecodePackage decodes package manifest bytes.
func DecodePackage(data []byte) (*PackageManifest, error) {
	return decode[PackageManifest](data)
}

// DecodeAssembly decodes assembly definition bytes.
func DecodeAssembly(data []byte) (*AssemblyDefinition, error) {
	return decode[AssemblyDefinition](data)
}

// decode unmarshals JSON manifest bytes. JSON is valid YAML, so the YAML
// decoder used elsewhere in the CLI reads both formats.
func decode[T any](data []byte) (*T, error) {
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
