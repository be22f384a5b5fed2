package manifest

// PackageManifest is the content of a package's package.json.
type PackageManifest struct {
	Name         string            `yaml:"name" json:"name"`
	Version      string            `yaml:"version" json:"version"`
	DisplayName  string            `yaml:"displayName" json:"displayName"`
	Description  string            `yaml:"description" json:"description"`
	Unity        string            `yaml:"unity" json:"unity"`
	Dependencies map[string]string `yaml:"dependencies" json:"dependencies"`
	Author       PackageAuthor     `yaml:"author" json:"author"`
	HideInEditor string            `yaml:"hideInEditor" json:"hideInEditor"`
	Samples      []Sample          `yaml:"samples,omitempty" json:"samples,omitempty"`
}

// PackageAuthor identifies who publishes the package.
type PackageAuthor struct {
	Name string `yaml:"name" json:"name"`
}

// Sample is an importable example listed in the package manifest.
type Sample struct {
	DisplayName string `yaml:"displayName" json:"displayName"`
	Description string `yaml:"description" json:"description"`
	Path        string `yaml:"path" json:"path"`
}

// AssemblyDefinition is the content of an .asmdef file.
type AssemblyDefinition struct {
	Name                  string          `yaml:"name" json:"name"`
	References            []string        `yaml:"references" json:"references"`
	IncludePlatforms      []string        `yaml:"includePlatforms" json:"includePlatforms"`
	ExcludePlatforms      []string        `yaml:"excludePlatforms" json:"excludePlatforms"`
	AllowUnsafeCode       bool            `yaml:"allowUnsafeCode" json:"allowUnsafeCode"`
	OverrideReferences    bool            `yaml:"overrideReferences" json:"overrideReferences"`
	PrecompiledReferences []string        `yaml:"precompiledReferences" json:"precompiledReferences"`
	AutoReferenced        bool            `yaml:"autoReferenced" json:"autoReferenced"`
	DefineConstraints     []string        `yaml:"defineConstraints" json:"defineConstraints"`
	VersionDefines        []VersionDefine `yaml:"versionDefines" json:"versionDefines"`
	NoEngineReferences    bool            `yaml:"noEngineReferences" json:"noEngineReferences"`
}

// VersionDefine sets a scripting symbol when a package version matches.
type VersionDefine struct {
	Name       string `yaml:"name" json:"name"`
	Expression string `yaml:"expression" json:"expression"`
	Define     string `yaml:"define" json:"define"`
}

// EditorPlatform is the only platform name the generator ever writes.
const EditorPlatform = "Editor"

// File names and extensions.
const (
	PackageFileName   = "package.json"
	AssemblyExtension = ".asmdef"
)

// Defaults written into a new package manifest.
const (
	DefaultVersion     = "1.0.0"
	DefaultDescription = "My Package"
	DefaultUnity       = "2019.1"
)
