package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave_UserScopedPath(t *testing.T) {
	s := NewStore(t.TempDir())

	path, err := s.Save("u1", "moodboard.png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(filepath.Dir(path)) != "u1" {
		t.Errorf("path %q not scoped to user", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSave_RepeatFilenamesDoNotCollide(t *testing.T) {
	s := NewStore(t.TempDir())

	a, err := s.Save("u1", "draft.png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := s.Save("u1", "draft.png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Errorf("second upload overwrote the first: %q", a)
	}
}

func TestSave_StripsDirectoryComponents(t *testing.T) {
	base := t.TempDir()
	s := NewStore(base)

	path, err := s.Save("u1", "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Errorf("upload escaped base dir: %q", path)
	}
}

func TestSave_EmptyName(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Save("u1", "   ", strings.NewReader("x")); !errors.Is(err, ErrEmptyFilename) {
		t.Errorf("got %v, want ErrEmptyFilename", err)
	}
}

func TestSaveFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(src, []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	s := NewStore(t.TempDir())
	path, err := s.SaveFile("u1", src)
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if !strings.HasSuffix(path, "-photo.jpg") {
		t.Errorf("stored path %q lost the filename", path)
	}

	if _, err := s.SaveFile("u1", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing source file")
	}
}
