package config

import (
	"os"
	"os/user"
	"path/filepath"
)

// Defaults are the values offered to the generator when the user leaves a
// field blank. They stand in for the company and product name a host editor
// would provide.
type Defaults struct {
	Author            string
	PackageName       string
	BaseDir           string
	GitignoreTemplate string
	Version           string
	Unity             string
	Description       string
}

// LoadDefaults resolves Defaults from the loaded config. Load must be called
// first. A blank author falls back to the OS account name and a blank package
// name to the current directory's name.
func LoadDefaults() Defaults {
	d := Defaults{
		Author:            Get(KeyAuthor),
		PackageName:       Get(KeyPackageName),
		BaseDir:           Get(KeyBaseDir),
		GitignoreTemplate: Get(KeyGitignoreTemplate),
		Version:           Get(KeyVersion),
		Unity:             Get(KeyUnity),
		Description:       Get(KeyDescription),
	}
	if d.Author == "" {
		d.Author = osUserName()
	}
	if d.PackageName == "" {
		if cwd, err := os.Getwd(); err == nil {
			d.PackageName = filepath.Base(cwd)
		}
	}
	return d
}

func osUserName() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
