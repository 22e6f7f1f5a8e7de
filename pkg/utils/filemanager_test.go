package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverInputFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.ach"))
	touch(t, filepath.Join(dir, "b.TXT"))
	touch(t, filepath.Join(dir, "nested", "c.ach"))
	touch(t, filepath.Join(dir, "ignore.csv"))

	fm := NewFileManager(dir, t.TempDir(), []string{".ach", ".txt"})
	files, err := fm.DiscoverInputFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("discovered %d files, want 3: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) == ".csv" {
			t.Errorf("discovered unconfigured extension: %s", f)
		}
	}
}

func TestDiscoverWithNoExtensionsMatchesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.ach"))

	fm := NewFileManager(dir, t.TempDir(), nil)
	files, err := fm.DiscoverInputFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("discovered %v, want none", files)
	}
}

func TestArchiveFile(t *testing.T) {
	inputDir := t.TempDir()
	archiveDir := filepath.Join(t.TempDir(), "archive")
	src := filepath.Join(inputDir, "done.ach")
	touch(t, src)

	fm := NewFileManager(inputDir, archiveDir, []string{".ach"})
	dest, err := fm.ArchiveFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if dest != filepath.Join(archiveDir, "done.ach") {
		t.Errorf("archived to %q, want archive dir with same base name", dest)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("archived file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source file still present after archival")
	}
}
