package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/upmgen-labs/upmgen/internal/scaffold"
)

// ErrCancelled is returned when the user aborts a form.
var ErrCancelled = errors.New("cancelled by user")

// Folder option keys used by the include-folders multi-select.
const (
	FolderEditor        = "editor"
	FolderTests         = "tests"
	FolderDocumentation = "documentation"
	FolderGitignore     = "gitignore"
)

// FormValues are the fields of the generation form. They start as defaults
// and hold the user's answers after RunForm.
type FormValues struct {
	Author       string
	PackageName  string
	Flags        scaffold.Flags
	ExampleCount int
}

// RunForm shows the generation form pre-filled from v and stores the answers
// back into v.
func RunForm(ctx context.Context, v *FormValues) error {
	examples := strconv.Itoa(v.ExampleCount)
	folders := selectedFolders(v.Flags)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Value(&v.Author),
			huh.NewInput().
				Title("Package Name").
				Value(&v.PackageName),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Include Folders").
				Options(folderOptions()...).
				Value(&folders),
			huh.NewInput().
				Title("Examples").
				Value(&examples).
				Validate(func(s string) error {
					_, err := ParseExampleCount(s)
					return err
				}),
		),
	).WithTheme(newTheme())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("form error: %w", err)
	}

	n, err := ParseExampleCount(examples)
	if err != nil {
		return err
	}
	v.ExampleCount = n
	v.Flags = flagsFromFolders(folders)
	return nil
}

// ConfirmOverwrite asks whether to overwrite after a conflict was reported.
func ConfirmOverwrite(ctx context.Context, message string) (bool, error) {
	overwrite := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Overwrite").
				Negative("Cancel").
				Value(&overwrite),
		),
	).WithTheme(newTheme())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm error: %w", err)
	}
	return overwrite, nil
}

// ParseExampleCount parses the examples field. Blank means zero.
func ParseExampleCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("examples must be a whole number, got %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("examples must not be negative, got %d", n)
	}
	return n, nil
}

func folderOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Editor", FolderEditor),
		huh.NewOption("Tests", FolderTests),
		huh.NewOption("Documentation", FolderDocumentation),
		huh.NewOption("Add GitIgnore", FolderGitignore),
	}
}

func selectedFolders(f scaffold.Flags) []string {
	var keys []string
	if f.IncludeEditorFolder {
		keys = append(keys, FolderEditor)
	}
	if f.IncludeTestFolder {
		keys = append(keys, FolderTests)
	}
	if f.IncludeDocsFolder {
		keys = append(keys, FolderDocumentation)
	}
	if f.IncludeIgnoreFile {
		keys = append(keys, FolderGitignore)
	}
	return keys
}

func flagsFromFolders(keys []string) scaffold.Flags {
	var f scaffold.Flags
	for _, k := range keys {
		switch k {
		case FolderEditor:
			f.IncludeEditorFolder = true
		case FolderTests:
			f.IncludeTestFolder = true
		case FolderDocumentation:
			f.IncludeDocsFolder = true
		case FolderGitignore:
			f.IncludeIgnoreFile = true
		}
	}
	return f
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()
	primary := lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(primary)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
