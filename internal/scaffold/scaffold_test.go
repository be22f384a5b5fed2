package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/upmgen-labs/upmgen/internal/manifest"
)

const baseDir = "/project/Assets"

func newTestScaffolder(t *testing.T) (*Scaffolder, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(baseDir, 0755); err != nil {
		t.Fatal(err)
	}
	return New(fsys, baseDir, nil), fsys
}

func superTool() GenerationConfig {
	return GenerationConfig{
		Author:       "Acme Games",
		PackageName:  "Super Tool",
		ExampleCount: 2,
	}
}

func TestRequestGeneration_Scenario(t *testing.T) {
	s, fsys := newTestScaffolder(t)

	result, err := s.RequestGeneration(context.Background(), superTool())
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	if result.Status != StatusSuccess || result.Message != "Success" {
		t.Fatalf("got %s %q, want success", result.Status, result.Message)
	}

	root := filepath.Join(baseDir, "SuperTool")
	if result.Root != root {
		t.Errorf("Root = %q, want %q", result.Root, root)
	}

	assertDir(t, fsys, root, "Runtime")
	assertDir(t, fsys, root, "Samples/Example 1")
	assertDir(t, fsys, root, "Samples/Example 2")
	assertNoPath(t, fsys, root, "Samples/Example 3")
	assertNoPath(t, fsys, root, "Editor")
	assertNoPath(t, fsys, root, "Tests")
	assertNoPath(t, fsys, root, "Documentation")
	assertNoPath(t, fsys, root, ".gitIgnore")

	for _, name := range []string{"README.md", "LICENSE.md", "CHANGELOG.md"} {
		if got := readGenerated(t, fsys, root, name); got != "" {
			t.Errorf("%s should be empty, got %q", name, got)
		}
	}

	asm := readAssembly(t, fsys, root, "Runtime/AcmeGames.SuperTool.asmdef")
	if asm.Name != "AcmeGames.SuperTool" {
		t.Errorf("descriptor name = %q", asm.Name)
	}

	pkg, err := manifest.DecodePackage([]byte(readGenerated(t, fsys, root, "package.json")))
	if err != nil {
		t.Fatalf("decoding package.json: %v", err)
	}
	if pkg.Name != "com.acmegames.supertool" {
		t.Errorf("package name = %q", pkg.Name)
	}
	if len(pkg.Samples) != 2 || pkg.Samples[0].DisplayName != "Example 1" || pkg.Samples[1].DisplayName != "Example 2" {
		t.Errorf("samples = %+v", pkg.Samples)
	}

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	wantFiles := []string{
		"README.md", "LICENSE.md", "CHANGELOG.md", "package.json",
		filepath.Join("Runtime", "AcmeGames.SuperTool.asmdef"),
	}
	assertList(t, "Files", result.Files, wantFiles)
}

func TestRequestGeneration_NoSamples(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	cfg := superTool()
	cfg.ExampleCount = 0

	if _, err := s.RequestGeneration(context.Background(), cfg); err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}

	root := filepath.Join(baseDir, "SuperTool")
	content := readGenerated(t, fsys, root, "package.json")
	if strings.Contains(content, "samples") {
		t.Errorf("samples block should be absent:\n%s", content)
	}
	if !strings.Contains(content, "\"hideInEditor\": \"false\"\n}") {
		t.Errorf("hideInEditor line should end without a comma:\n%s", content)
	}
	assertNoPath(t, fsys, root, "Samples")
}

func TestRequestGeneration_SampleCount(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		s, fsys := newTestScaffolder(t)
		cfg := superTool()
		cfg.ExampleCount = n

		if _, err := s.RequestGeneration(context.Background(), cfg); err != nil {
			t.Fatalf("n=%d: RequestGeneration() error: %v", n, err)
		}
		root := filepath.Join(baseDir, "SuperTool")
		pkg, err := manifest.DecodePackage([]byte(readGenerated(t, fsys, root, "package.json")))
		if err != nil {
			t.Fatalf("n=%d: decoding package.json: %v", n, err)
		}
		if len(pkg.Samples) != n {
			t.Errorf("n=%d: got %d samples", n, len(pkg.Samples))
		}
		for i, sample := range pkg.Samples {
			want := manifest.ExampleSamples(n)[i]
			if sample != want {
				t.Errorf("n=%d: sample[%d] = %+v, want %+v", n, i, sample, want)
			}
			assertDir(t, fsys, root, ExampleDir(i+1))
		}
	}
}

func TestRequestGeneration_RuntimeAlwaysCreated(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		flags := Flags{
			IncludeEditorFolder: mask&1 != 0,
			IncludeTestFolder:   mask&2 != 0,
			IncludeDocsFolder:   mask&4 != 0,
			IncludeIgnoreFile:   mask&8 != 0,
		}
		s, fsys := newTestScaffolder(t)
		cfg := superTool()
		cfg.Flags = flags

		result, err := s.RequestGeneration(context.Background(), cfg)
		if err != nil {
			t.Fatalf("flags %+v: RequestGeneration() error: %v", flags, err)
		}
		if result.Status != StatusSuccess {
			t.Errorf("flags %+v: status = %s", flags, result.Status)
		}
		root := filepath.Join(baseDir, "SuperTool")
		assertDir(t, fsys, root, "Runtime")
		readAssembly(t, fsys, root, "Runtime/AcmeGames.SuperTool.asmdef")
	}
}

func TestRequestGeneration_TestFolders(t *testing.T) {
	tests := []struct {
		name            string
		editor, tests   bool
		wantTestRuntime bool
		wantTestEditor  bool
	}{
		{"neither", false, false, false, false},
		{"editor only", true, false, false, false},
		{"tests only", false, true, true, false},
		{"tests and editor", true, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fsys := newTestScaffolder(t)
			cfg := superTool()
			cfg.Flags = Flags{IncludeEditorFolder: tt.editor, IncludeTestFolder: tt.tests}

			if _, err := s.RequestGeneration(context.Background(), cfg); err != nil {
				t.Fatalf("RequestGeneration() error: %v", err)
			}
			root := filepath.Join(baseDir, "SuperTool")
			checkPresence(t, fsys, root, "Tests/Runtime/AcmeGames.SuperTool.Tests.Runtime.asmdef", tt.wantTestRuntime)
			checkPresence(t, fsys, root, "Tests/Editor/AcmeGames.SuperTool.Tests.Editor.asmdef", tt.wantTestEditor)
			checkPresence(t, fsys, root, "Editor/AcmeGames.SuperTool.Editor.asmdef", tt.editor)
		})
	}
}

func TestRequestGeneration_IncludePlatforms(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	cfg := superTool()
	cfg.Flags = Flags{IncludeEditorFolder: true, IncludeTestFolder: true}

	if _, err := s.RequestGeneration(context.Background(), cfg); err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	root := filepath.Join(baseDir, "SuperTool")

	tests := []struct {
		path       string
		editorOnly bool
	}{
		{"Runtime/AcmeGames.SuperTool.asmdef", false},
		{"Editor/AcmeGames.SuperTool.Editor.asmdef", true},
		{"Tests/Runtime/AcmeGames.SuperTool.Tests.Runtime.asmdef", true},
		{"Tests/Editor/AcmeGames.SuperTool.Tests.Editor.asmdef", true},
	}
	for _, tt := range tests {
		asm := readAssembly(t, fsys, root, tt.path)
		if tt.editorOnly {
			if len(asm.IncludePlatforms) != 1 || asm.IncludePlatforms[0] != "Editor" {
				t.Errorf("%s: includePlatforms = %v, want [Editor]", tt.path, asm.IncludePlatforms)
			}
		} else if len(asm.IncludePlatforms) != 0 {
			t.Errorf("%s: includePlatforms = %v, want empty", tt.path, asm.IncludePlatforms)
		}
	}
}

func TestRequestGeneration_Documentation(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	cfg := superTool()
	cfg.Flags.IncludeDocsFolder = true

	if _, err := s.RequestGeneration(context.Background(), cfg); err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	root := filepath.Join(baseDir, "SuperTool")
	assertDir(t, fsys, root, "Documentation")
	entries, err := afero.ReadDir(fsys, filepath.Join(root, "Documentation"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Documentation should be empty, has %d entries", len(entries))
	}
}

func TestRequestGeneration_IgnoreFile(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	content := "[Ll]ibrary/\n*.csproj\n"
	cfg := superTool()
	cfg.Flags.IncludeIgnoreFile = true
	cfg.IgnoreFileContent = &content

	result, err := s.RequestGeneration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	root := filepath.Join(baseDir, "SuperTool")
	if got := readGenerated(t, fsys, root, ".gitIgnore"); got != content {
		t.Errorf(".gitIgnore = %q, want %q", got, content)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRequestGeneration_IgnoreFileMissingContent(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	cfg := superTool()
	cfg.Flags.IncludeIgnoreFile = true

	result, err := s.RequestGeneration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Errorf("status = %s, want success", result.Status)
	}
	assertNoPath(t, fsys, filepath.Join(baseDir, "SuperTool"), ".gitIgnore")
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "no ignore file content") {
		t.Errorf("warnings = %v, want one missing-content warning", result.Warnings)
	}
}

func TestRequestGeneration_ConflictThenOverwrite(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	root := filepath.Join(baseDir, "SuperTool")
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, filepath.Join(root, "README.md"), []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, filepath.Join(root, "notes.txt"), []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := s.RequestGeneration(context.Background(), superTool())
	if err != nil {
		t.Fatalf("first RequestGeneration() error: %v", err)
	}
	if first.Status != StatusNeedsConfirmation {
		t.Fatalf("first status = %s, want needs-confirmation", first.Status)
	}
	if !strings.Contains(first.Message, "'SuperTool'") {
		t.Errorf("message should name the package: %q", first.Message)
	}
	if !s.Session.PendingOverwrite || s.Session.PendingKey != "SuperTool" {
		t.Errorf("session = %+v, want pending overwrite for SuperTool", s.Session)
	}
	if got := readGenerated(t, fsys, root, "README.md"); got != "keep me" {
		t.Errorf("README.md changed before confirmation: %q", got)
	}
	assertNoPath(t, fsys, root, "package.json")
	assertNoPath(t, fsys, root, "Runtime")

	second, err := s.RequestGeneration(context.Background(), superTool())
	if err != nil {
		t.Fatalf("second RequestGeneration() error: %v", err)
	}
	if second.Status != StatusSuccess {
		t.Fatalf("second status = %s, want success", second.Status)
	}
	if s.Session.PendingOverwrite {
		t.Error("pending overwrite should be cleared")
	}
	if got := readGenerated(t, fsys, root, "README.md"); got != "" {
		t.Errorf("README.md should be truncated, got %q", got)
	}
	if got := readGenerated(t, fsys, root, "notes.txt"); got != "mine" {
		t.Errorf("unrelated files should survive the overwrite, got %q", got)
	}
	assertDir(t, fsys, root, "Runtime")

	third, err := s.RequestGeneration(context.Background(), superTool())
	if err != nil {
		t.Fatalf("third RequestGeneration() error: %v", err)
	}
	if third.Status != StatusNeedsConfirmation {
		t.Errorf("third status = %s, want needs-confirmation again", third.Status)
	}
}

func TestRequestGeneration_PendingDroppedForOtherPackage(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	for _, name := range []string{"SuperTool", "OtherTool"} {
		if err := fsys.MkdirAll(filepath.Join(baseDir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	if res, _ := s.RequestGeneration(context.Background(), superTool()); res.Status != StatusNeedsConfirmation {
		t.Fatalf("status = %s, want needs-confirmation", res.Status)
	}

	other := superTool()
	other.PackageName = "Other Tool"
	res, err := s.RequestGeneration(context.Background(), other)
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	if res.Status != StatusNeedsConfirmation {
		t.Errorf("status = %s, want needs-confirmation for a different package", res.Status)
	}
	if s.Session.PendingKey != "OtherTool" {
		t.Errorf("PendingKey = %q, want OtherTool", s.Session.PendingKey)
	}
	assertNoPath(t, fsys, filepath.Join(baseDir, "OtherTool"), "package.json")
}

func TestRequestGeneration_SessionRemembersLastValues(t *testing.T) {
	s, _ := newTestScaffolder(t)
	if _, err := s.RequestGeneration(context.Background(), superTool()); err != nil {
		t.Fatal(err)
	}
	if s.Session.LastAuthor != "Acme Games" || s.Session.LastPackageName != "Super Tool" {
		t.Errorf("session = %+v", s.Session)
	}
}

func TestRequestGeneration_EmptyNamesArePermitted(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	cfg := GenerationConfig{Author: "   ", PackageName: "Tool"}

	result, err := s.RequestGeneration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Fatalf("status = %s, want success", result.Status)
	}
	readAssembly(t, fsys, filepath.Join(baseDir, "Tool"), "Runtime/.Tool.asmdef")
	if len(result.Warnings) == 0 {
		t.Error("expected schema warnings for an empty author")
	}
}

func TestRequestGeneration_VersionWarning(t *testing.T) {
	s, _ := newTestScaffolder(t)
	cfg := superTool()
	cfg.Version = "v2"

	result, err := s.RequestGeneration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "v2") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a version warning, got %v", result.Warnings)
	}
}

func TestRequestGeneration_ReadOnlyFilesystem(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll(baseDir, 0755); err != nil {
		t.Fatal(err)
	}
	s := New(afero.NewReadOnlyFs(base), baseDir, nil)

	_, err := s.RequestGeneration(context.Background(), superTool())
	if err == nil {
		t.Fatal("expected an error on a read-only filesystem")
	}
	if !errors.Is(err, ErrIOFault) {
		t.Errorf("error %v should match ErrIOFault", err)
	}
	var fault *IOFaultError
	if !errors.As(err, &fault) || fault.Path != filepath.Join(baseDir, "SuperTool") {
		t.Errorf("fault = %+v", fault)
	}
}

func TestRequestGeneration_FaultLeavesPartialTree(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(baseDir, 0755); err != nil {
		t.Fatal(err)
	}
	fsys := &failingFs{Fs: mem, failOn: "package.json"}
	s := New(fsys, baseDir, nil)

	_, err := s.RequestGeneration(context.Background(), superTool())
	if !errors.Is(err, ErrIOFault) {
		t.Fatalf("error = %v, want ErrIOFault", err)
	}
	root := filepath.Join(baseDir, "SuperTool")
	if ok, _ := afero.Exists(mem, filepath.Join(root, "README.md")); !ok {
		t.Error("files written before the fault should remain")
	}
	if ok, _ := afero.Exists(mem, filepath.Join(root, "Runtime")); ok {
		t.Error("steps after the fault should not run")
	}
}

func TestRequestGeneration_CancelledContext(t *testing.T) {
	s, fsys := newTestScaffolder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.RequestGeneration(ctx, superTool()); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	assertNoPath(t, fsys, baseDir, "SuperTool")
}

func TestRequestGeneration_OnDisk(t *testing.T) {
	base := t.TempDir()
	s := New(afero.NewOsFs(), base, nil)
	cfg := superTool()
	cfg.Flags = Flags{IncludeEditorFolder: true, IncludeTestFolder: true, IncludeDocsFolder: true}

	result, err := s.RequestGeneration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RequestGeneration() error: %v", err)
	}
	for _, rel := range result.Files {
		path := filepath.Join(result.Root, rel)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("reported file %s missing: %v", rel, err)
		}
		if kind, err := manifest.DetectKind(path); err == nil {
			res, err := manifest.ValidateFile(path)
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", rel, err)
			}
			if !res.Valid {
				t.Errorf("%s (%s) invalid: %v", rel, kind, res.Issues)
			}
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusSuccess.String() != "success" || StatusNeedsConfirmation.String() != "needs-confirmation" {
		t.Error("unexpected status names")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

// failingFs fails any file open whose base name equals failOn.
type failingFs struct {
	afero.Fs
	failOn string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.failOn {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func readGenerated(t *testing.T, fsys afero.Fs, root, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func readAssembly(t *testing.T, fsys afero.Fs, root, rel string) *manifest.AssemblyDefinition {
	t.Helper()
	asm, err := manifest.DecodeAssembly([]byte(readGenerated(t, fsys, root, rel)))
	if err != nil {
		t.Fatalf("decoding %s: %v", rel, err)
	}
	return asm
}

func assertDir(t *testing.T, fsys afero.Fs, root, rel string) {
	t.Helper()
	ok, err := afero.DirExists(fsys, filepath.Join(root, rel))
	if err != nil || !ok {
		t.Errorf("expected directory %s", rel)
	}
}

func assertNoPath(t *testing.T, fsys afero.Fs, root, rel string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, filepath.Join(root, rel)); ok {
		t.Errorf("%s should not exist", rel)
	}
}

func checkPresence(t *testing.T, fsys afero.Fs, root, rel string, want bool) {
	t.Helper()
	ok, _ := afero.Exists(fsys, filepath.Join(root, rel))
	if ok != want {
		t.Errorf("%s exists = %v, want %v", rel, ok, want)
	}
}

func assertList(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, got[i], want[i])
		}
	}
}
