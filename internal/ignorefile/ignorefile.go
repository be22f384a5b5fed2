package ignorefile

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Builtin selects the embedded Unity template.
const Builtin = "builtin"

//go:embed unity.gitignore
var unityTemplate string

// Template returns the embedded Unity ignore template.
func Template() string {
	return unityTemplate
}

// Load resolves source into ignore-file content. An empty source means no
// content was supplied and yields nil without error. Builtin yields the
// embedded template; anything else is read as a path from fsys.
func Load(fsys afero.Fs, source string) (*string, error) {
	source = strings.TrimSpace(source)
	switch source {
	case "":
		return nil, nil
	case Builtin:
		content := unityTemplate
		return &content, nil
	}

	data, err := afero.ReadFile(fsys, source)
	if err != nil {
		return nil, fmt.Errorf("reading ignore template %s: %w", source, err)
	}
	content := string(data)
	return &content, nil
}
