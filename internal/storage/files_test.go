package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	fs, err := NewFileStore(dir, "uploads/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if fs.Prefix() != "/uploads" || fs.Dir() != dir {
		t.Fatalf("prefix=%q dir=%q", fs.Prefix(), fs.Dir())
	}

	public, err := fs.Save([]byte("img"), ".png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(public, "/uploads/") || !strings.HasSuffix(public, ".png") {
		t.Fatalf("public path %q", public)
	}
	name := filepath.Base(public)
	if b, err := os.ReadFile(filepath.Join(dir, name)); err != nil || string(b) != "img" {
		t.Fatalf("stored %q err=%v", b, err)
	}

	if err := fs.Remove(name); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := fs.Remove(name); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}
	for _, bad := range []string{"", "../secret", "a/b.png", ".env"} {
		if err := fs.Remove(bad); !errors.Is(err, ErrInvalidFileName) {
			t.Fatalf("%q: want ErrInvalidFileName, got %v", bad, err)
		}
	}
}
