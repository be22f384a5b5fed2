package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/upmgen-labs/upmgen/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [package-dir]",
	Short: "Check a package's manifest and assembly definitions",
	Long: `Validate package.json and every .asmdef file under a package folder
against the built-in schemas, and check that each sample listed in
package.json points at an existing folder.

Example:
  upmgen validate Assets/SuperTool`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		reports, err := validatePackageDir(filesystem, dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, r := range reports {
			if len(r.Issues) == 0 {
				fmt.Fprintf(out, "ok    %s\n", r.Path)
				continue
			}
			failed++
			fmt.Fprintf(out, "FAIL  %s\n", r.Path)
			for _, issue := range r.Issues {
				fmt.Fprintf(out, "      - %s\n", issue)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed validation", failed, len(reports))
		}
		return nil
	},
}

// fileReport lists the problems found in one manifest file.
type fileReport struct {
	Path   string // relative to the package dir
	Issues []string
}

// validatePackageDir validates every manifest under dir. A missing
// package.json is itself reported as an issue.
func validatePackageDir(fsys afero.Fs, dir string) ([]fileReport, error) {
	if ok, err := afero.DirExists(fsys, dir); err != nil || !ok {
		return nil, fmt.Errorf("package directory %s not found", dir)
	}

	var reports []fileReport
	foundPackage := false

	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		kind, kindErr := manifest.DetectKind(path)
		if kindErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if kind == manifest.KindPackage {
			if rel != manifest.PackageFileName {
				return nil
			}
			foundPackage = true
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		reports = append(reports, fileReport{Path: rel, Issues: checkManifest(fsys, dir, kind, data)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !foundPackage {
		reports = append([]fileReport{{
			Path:   manifest.PackageFileName,
			Issues: []string{"file not found"},
		}}, reports...)
	}
	return reports, nil
}

func checkManifest(fsys afero.Fs, dir string, kind manifest.Kind, data []byte) []string {
	res, err := manifest.Validate(kind, data)
	if err != nil {
		return []string{err.Error()}
	}

	var issues []string
	for _, issue := range res.Issues {
		issues = append(issues, issue.String())
	}

	if kind == manifest.KindPackage {
		m, err := manifest.DecodePackage(data)
		if err != nil {
			return append(issues, err.Error())
		}
		for _, s := range m.Samples {
			if ok, _ := afero.DirExists(fsys, filepath.Join(dir, filepath.FromSlash(s.Path))); !ok {
				issues = append(issues, fmt.Sprintf("sample %q: folder %s does not exist", s.DisplayName, s.Path))
			}
		}
	}
	return issues
}
