package manifest

// NewAssemblyDefinition returns the descriptor for one code folder. The name
// is "<author>.<package><suffix>"; editor-only assemblies are restricted to
// the Editor platform.
func NewAssemblyDefinition(authorKey, packageKey, suffix string, editorOnly bool) *AssemblyDefinition {
	a := &AssemblyDefinition{
		Name:           authorKey + "." + packageKey + suffix,
		AutoReferenced: true,
	}
	if editorOnly {
		a.IncludePlatforms = []string{EditorPlatform}
	}
	return a
}

// FileName returns the file the descriptor is written to.
func (a *AssemblyDefinition) FileName() string {
	return a.Name + AssemblyExtension
}

// EditorOnly reports whether the assembly only compiles for the editor.
func (a *AssemblyDefinition) EditorOnly() bool {
	return len(a.IncludePlatforms) == 1 && a.IncludePlatforms[0] == EditorPlatform
}

// Document returns the descriptor as an ordered node. References and
// includePlatforms always open on their own line, matching the editor's
// output; the remaining lists collapse to [] when empty.
func (a *AssemblyDefinition) Document() *Object {
	defines := &Array{Inline: true}
	for _, d := range a.VersionDefines {
		defines.Elements = append(defines.Elements, (&Object{}).
			Add("name", String(d.Name)).
			Add("expression", String(d.Expression)).
			Add("define", String(d.Define)))
	}

	doc := &Object{}
	doc.Add("name", String(a.Name)).
		Add("references", Strings(a.References, false)).
		Add("includePlatforms", Strings(a.IncludePlatforms, false)).
		Add("excludePlatforms", Strings(a.ExcludePlatforms, true)).
		Add("allowUnsafeCode", Bool(a.AllowUnsafeCode)).
		Add("overrideReferences", Bool(a.OverrideReferences)).
		Add("precompiledReferences", Strings(a.PrecompiledReferences, true)).
		Add("autoReferenced", Bool(a.AutoReferenced)).
		Add("defineConstraints", Strings(a.DefineConstraints, true)).
		Add("versionDefines", defines).
		Add("noEngineReferences", Bool(a.NoEngineReferences))
	return doc
}

// Encode renders the descriptor with four-space indentation.
func (a *AssemblyDefinition) Encode() []byte {
	return Encode(a.Document(), "    ")
}
