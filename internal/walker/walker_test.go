package walker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// statFailFs fails Stat for selected paths, simulating permission errors.
type statFailFs struct {
	afero.Fs
	fail map[string]error
}

func (s statFailFs) Stat(name string) (os.FileInfo, error) {
	if err, ok := s.fail[filepath.Clean(name)]; ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return s.Fs.Stat(name)
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestList_ReturnsEveryChild(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/docs/a.md", "# A")
	writeFile(t, fsys, "/docs/b.txt", "b")
	if err := fsys.MkdirAll("/docs/sub", 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(fsys, "/docs")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	byName := make(map[string]Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}
	if !byName["a.md"].IsRegular() {
		t.Error("a.md should be a regular file")
	}
	if !byName["sub"].IsDir() {
		t.Error("sub should be a directory")
	}
	if byName["sub"].Path != filepath.Join("/docs", "sub") {
		t.Errorf("sub path = %q", byName["sub"].Path)
	}
}

func TestList_PerEntryFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFile(t, mem, "/docs/ok.md", "ok")
	writeFile(t, mem, "/docs/locked.md", "locked")

	fsys := statFailFs{Fs: mem, fail: map[string]error{
		filepath.Join("/docs", "locked.md"): os.ErrPermission,
	}}

	entries, err := List(fsys, "/docs")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	var failed, ok int
	for _, e := range entries {
		if e.Failed() {
			failed++
			if e.Status != StatusStatFailed {
				t.Errorf("status = %s, want stat_failed", e.Status)
			}
			if !errors.Is(e.Err, os.ErrPermission) {
				t.Errorf("err = %v, want permission error", e.Err)
			}
			if e.IsDir() || e.IsRegular() {
				t.Error("failed entry must not report a type")
			}
			continue
		}
		ok++
	}
	if failed != 1 || ok != 1 {
		t.Errorf("failed=%d ok=%d, want 1 and 1", failed, ok)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	if _, err := List(afero.NewMemMapFs(), "/nope"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCanonical_ResolvesSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	fsys := afero.NewOsFs()
	a, err := Canonical(fsys, target)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Canonical(fsys, link)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Canonical(link) = %q, want %q", b, a)
	}
}

func TestCanonical_MemFsCleansPath(t *testing.T) {
	got, err := Canonical(afero.NewMemMapFs(), "/docs/./a/../b/")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Clean("/docs/b") {
		t.Errorf("Canonical = %q", got)
	}
}

func TestExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/docs/index.md", "# Home")

	if ok, err := Exists(fsys, "/docs/index.md"); err != nil || !ok {
		t.Errorf("Exists(index.md) = %v, %v", ok, err)
	}
	if ok, err := Exists(fsys, "/docs/missing.md"); err != nil || ok {
		t.Errorf("Exists(missing.md) = %v, %v", ok, err)
	}
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"drafts/**", "*.draft.md", "_*"})
	if err != nil {
		t.Fatalf("NewMatcher() error: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"drafts/todo.md", true},
		{"go/notes.draft.md", true},
		{"go/_partial", true},
		{"go/notes.md", false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := m.Match(tc.path); got != tc.want {
				t.Errorf("Match(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestMatcher_NilMatchesNothing(t *testing.T) {
	var m *Matcher
	if m.Match("anything.md") {
		t.Error("nil matcher should not match")
	}
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	if _, err := NewMatcher([]string{"[unclosed"}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
