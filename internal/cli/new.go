package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/upmgen-labs/upmgen/internal/config"
	"github.com/upmgen-labs/upmgen/internal/ignorefile"
	"github.com/upmgen-labs/upmgen/internal/scaffold"
	"github.com/upmgen-labs/upmgen/internal/ui"
)

type newOptions struct {
	author            string
	editor            bool
	tests             bool
	docs              bool
	gitignore         bool
	gitignoreTemplate string
	examples          int
	baseDir           string
	yes               bool
	interactive       bool
}

var newOpts newOptions

// filesystem is swapped out in tests.
var filesystem = afero.NewOsFs()

func init() {
	f := newCmd.Flags()
	f.StringVar(&newOpts.author, "author", "", "Author or company name (default: config author, then OS user)")
	f.BoolVar(&newOpts.editor, "editor", true, "Include an Editor folder")
	f.BoolVar(&newOpts.tests, "tests", false, "Include Tests/Runtime (and Tests/Editor with --editor)")
	f.BoolVar(&newOpts.docs, "docs", false, "Include a Documentation folder")
	f.BoolVar(&newOpts.gitignore, "gitignore", false, "Write an ignore file into the package root")
	f.StringVar(&newOpts.gitignoreTemplate, "gitignore-template", "", `Ignore file source: a path, or "builtin" (default: config gitignore_template)`)
	f.IntVar(&newOpts.examples, "examples", 0, "Number of sample folders to create")
	f.StringVar(&newOpts.baseDir, "base-dir", "", "Directory to create the package in (default: config base_dir)")
	f.BoolVarP(&newOpts.yes, "yes", "y", false, "Overwrite an existing package without asking")
	f.BoolVarP(&newOpts.interactive, "interactive", "i", false, "Fill in the package details with a form")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [package-name]",
	Short: "Scaffold a new Unity package",
	Long: `Scaffold a new Unity package folder.

The package folder is named after the package name with all whitespace
removed. If it already exists, the command reports the conflict and asks
before overwriting; pass --yes to overwrite without asking.

Without a package name on a terminal, a form asks for the details.

Examples:
  upmgen new "Super Tool" --author "Acme Games" --examples 2
  upmgen new "Super Tool" --tests --docs --gitignore --gitignore-template builtin
  upmgen new -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	defaults := config.LoadDefaults()

	values := ui.FormValues{
		Author:      firstNonEmpty(newOpts.author, defaults.Author),
		PackageName: defaults.PackageName,
		Flags: scaffold.Flags{
			IncludeEditorFolder: newOpts.editor,
			IncludeTestFolder:   newOpts.tests,
			IncludeDocsFolder:   newOpts.docs,
			IncludeIgnoreFile:   newOpts.gitignore,
		},
		ExampleCount: newOpts.examples,
	}
	if len(args) == 1 {
		values.PackageName = args[0]
	}

	interactive := newOpts.interactive || (len(args) == 0 && !ui.IsHeadless())
	if interactive && ui.IsHeadless() {
		return fmt.Errorf("--interactive needs a terminal; pass the package name and flags instead")
	}
	if interactive {
		if err := ui.RunForm(ctx, &values); err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return err
		}
	}
	if values.ExampleCount < 0 {
		return fmt.Errorf("--examples must not be negative, got %d", values.ExampleCount)
	}

	cfg, err := buildConfig(values, defaults)
	if err != nil {
		return err
	}

	s := scaffold.New(filesystem, firstNonEmpty(newOpts.baseDir, defaults.BaseDir), newLogger(cmd.ErrOrStderr()))
	result, err := s.RequestGeneration(ctx, cfg)
	if err != nil {
		return err
	}
	ui.PrintResult(out, result)

	if result.Status == scaffold.StatusNeedsConfirmation {
		overwrite := newOpts.yes
		if !overwrite && interactive {
			overwrite, err = ui.ConfirmOverwrite(ctx, "Overwrite "+result.Root+"?")
			if err != nil && !errors.Is(err, ui.ErrCancelled) {
				return err
			}
		}
		if !overwrite {
			if interactive {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return fmt.Errorf("%s exists; rerun with --yes to overwrite", result.Root)
		}

		result, err = s.RequestGeneration(ctx, cfg)
		if err != nil {
			return err
		}
		ui.PrintResult(out, result)
	}

	printNextSteps(out, cfg)
	return nil
}

// buildConfig turns the collected values into a GenerationConfig, loading
// the ignore file content when one was requested.
func buildConfig(values ui.FormValues, defaults config.Defaults) (scaffold.GenerationConfig, error) {
	cfg := scaffold.GenerationConfig{
		Author:       values.Author,
		PackageName:  values.PackageName,
		Flags:        values.Flags,
		ExampleCount: values.ExampleCount,
		Version:      defaults.Version,
		Description:  defaults.Description,
		UnityVersion: defaults.Unity,
	}

	if cfg.Flags.IncludeIgnoreFile {
		source := firstNonEmpty(newOpts.gitignoreTemplate, defaults.GitignoreTemplate)
		content, err := ignorefile.Load(filesystem, source)
		if err != nil {
			return cfg, err
		}
		cfg.IgnoreFileContent = content
	}
	return cfg, nil
}

func printNextSteps(w io.Writer, cfg scaffold.GenerationConfig) {
	steps := []string{fmt.Sprintf("Add runtime scripts under %s/", scaffold.RuntimeDir)}
	if cfg.Flags.IncludeEditorFolder {
		steps = append(steps, fmt.Sprintf("Add editor tooling under %s/", scaffold.EditorDir))
	}
	if cfg.ExampleCount > 0 {
		steps = append(steps, fmt.Sprintf("Fill the sample folders under %s/", scaffold.SamplesDir))
	}

	fmt.Fprintln(w, "\nNext steps:")
	for i, step := range steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
