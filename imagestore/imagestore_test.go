package imagestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	key, err := s.Save(strings.NewReader("fake png bytes"), "photo.PNG")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key %q should carry the lowercased extension", key)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("stored bytes mismatch: %q", data)
	}
	if err := s.Remove(key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Remove(key); err != nil {
		t.Errorf("Remove of missing file should be a no-op, got %v", err)
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Save(strings.NewReader("x"), "script.exe"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := s.Save(strings.NewReader("x"), "noext"); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestRemoveIgnoresPathTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Remove("../outside.png"); err != nil {
		t.Errorf("traversal key should be ignored, got %v", err)
	}
}
