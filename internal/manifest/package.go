package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// PackageID returns the reverse-domain package name "com.<author>.<package>"
// from already-normalized keys.
func PackageID(authorKey, packageKey string) string {
	return fmt.Sprintf("com.%s.%s", strings.ToLower(authorKey), strings.ToLower(packageKey))
}

// ExampleSamples returns n sample entries named "Example 1" through "Example n",
// each pointing at Samples/Example i.
func ExampleSamples(n int) []Sample {
	if n <= 0 {
		return nil
	}
	samples := make([]Sample, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("Example %d", i)
		samples = append(samples, Sample{
			DisplayName: name,
			Description: name + " description",
			Path:        "Samples/" + name,
		})
	}
	return samples
}

// Document returns the manifest as an ordered node. The samples key is left
// out entirely when there are no samples.
func (m *PackageManifest) Document() *Object {
	deps := &Object{Inline: true}
	keys := make([]string, 0, len(m.Dependencies))
	for k := range m.Dependencies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		deps.Add(k, String(m.Dependencies[k]))
	}

	doc := &Object{}
	doc.Add("name", String(m.Name)).
		Add("version", String(m.Version)).
		Add("displayName", String(m.DisplayName)).
		Add("description", String(m.Description)).
		Add("unity", String(m.Unity)).
		Add("dependencies", deps).
		Add("author", (&Object{}).Add("name", String(m.Author.Name))).
		Add("hideInEditor", String(m.HideInEditor))

	if len(m.Samples) > 0 {
		samples := &Array{}
		for _, s := range m.Samples {
			samples.Elements = append(samples.Elements, (&Object{}).
				Add("displayName", String(s.DisplayName)).
				Add("description", String(s.Description)).
				Add("path", String(s.Path)))
		}
		doc.Add("samples", samples)
	}
	return doc
}

// Encode renders the manifest with two-space indentation.
func (m *PackageManifest) Encode() []byte {
	return Encode(m.Document(), "  ")
}
