package util

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readZip(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer r.Close()

	found := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open entry %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read entry %s: %v", f.Name, err)
		}
		found[f.Name] = string(b)
	}
	return found
}

func TestZipDirectory_WithSubdirs(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "root.txt"), []byte("root content"), 0644)

	nested := filepath.Join(dir, "subdir", "nested")
	os.MkdirAll(nested, 0755)
	os.WriteFile(filepath.Join(dir, "subdir", "sub.txt"), []byte("sub content"), 0644)
	os.WriteFile(filepath.Join(nested, "deep.txt"), []byte("deep content"), 0644)
	os.MkdirAll(filepath.Join(dir, "empty"), 0755)

	dest := filepath.Join(t.TempDir(), "out.zip")
	if err := ZipDirectory(dir, dest, "demo"); err != nil {
		t.Fatalf("ZipDirectory failed: %v", err)
	}

	found := readZip(t, dest)
	expected := map[string]string{
		"demo/":                       "",
		"demo/root.txt":               "root content",
		"demo/subdir/":                "",
		"demo/subdir/sub.txt":         "sub content",
		"demo/subdir/nested/":         "",
		"demo/subdir/nested/deep.txt": "deep content",
		"demo/empty/":                 "",
	}
	for name, content := range expected {
		got, ok := found[name]
		if !ok {
			t.Errorf("Expected entry %q not found in archive. Found: %v", name, found)
			continue
		}
		if got != content {
			t.Errorf("Entry %q = %q, want %q", name, got, content)
		}
	}
	if len(found) != len(expected) {
		t.Errorf("Archive has %d entries, want %d: %v", len(found), len(expected), found)
	}
}

func TestZipDirectory_EmptyRoot(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "file1.txt"), []byte("content1"), 0644)
	os.WriteFile(filepath.Join(dir, "file2.txt"), []byte("content2"), 0644)

	dest := filepath.Join(t.TempDir(), "output.zip")
	if err := ZipDirectory(dir, dest, ""); err != nil {
		t.Fatalf("ZipDirectory failed: %v", err)
	}

	found := readZip(t, dest)
	if len(found) != 2 {
		t.Errorf("Expected 2 entries in archive, got %d: %v", len(found), found)
	}
	if found["file1.txt"] != "content1" || found["file2.txt"] != "content2" {
		t.Errorf("Missing expected files in archive: %v", found)
	}
}

func TestZipDirectory_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "new.txt"), []byte("new"), 0644)

	dest := filepath.Join(t.TempDir(), "output.zip")
	os.WriteFile(dest, []byte("not a zip"), 0644)

	if err := ZipDirectory(dir, dest, ""); err != nil {
		t.Fatalf("ZipDirectory failed: %v", err)
	}
	found := readZip(t, dest)
	if found["new.txt"] != "new" {
		t.Errorf("Archive was not replaced: %v", found)
	}
}

func TestZipDirectory_Errors(t *testing.T) {
	tmp := t.TempDir()
	notADir := filepath.Join(tmp, "notadir.txt")
	os.WriteFile(notADir, []byte("content"), 0644)

	srcDir := filepath.Join(tmp, "src")
	os.MkdirAll(srcDir, 0755)
	os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("a"), 0644)

	// a non-empty directory at the destination cannot be replaced by a file
	blocked := filepath.Join(tmp, "blocked.zip")
	os.MkdirAll(blocked, 0755)
	os.WriteFile(filepath.Join(blocked, "keep"), []byte("x"), 0644)

	tests := []struct {
		name    string
		dir     string
		dest    string
		wantErr error
	}{
		{
			name:    "missing source",
			dir:     filepath.Join(tmp, "missing"),
			dest:    filepath.Join(tmp, "missing.zip"),
			wantErr: ErrNotFound,
		},
		{
			name:    "file instead of directory",
			dir:     notADir,
			dest:    filepath.Join(tmp, "file.zip"),
			wantErr: ErrExpectedDirectory,
		},
		{
			name:    "unwritable destination",
			dir:     srcDir,
			dest:    blocked,
			wantErr: ErrArchive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ZipDirectory(tt.dir, tt.dest, "x")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ZipDirectory() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestZipDirectory_ManyFiles(t *testing.T) {
	// file handles must be released per entry, not at the end of the walk
	srcDir := t.TempDir()
	for i := range 100 {
		sub := filepath.Join(srcDir, string(rune('a'+i%26)))
		os.MkdirAll(sub, 0755)
		os.WriteFile(filepath.Join(sub, string(rune('a'+i/26))+".txt"), []byte("content"), 0644)
	}

	dest := filepath.Join(t.TempDir(), "many_files.zip")
	if err := ZipDirectory(srcDir, dest, "many"); err != nil {
		t.Fatalf("ZipDirectory failed with many files: %v", err)
	}
	found := readZip(t, dest)
	// 100 files, 26 subdirectories, 1 root entry
	if len(found) != 127 {
		t.Errorf("Expected 127 entries, got %d", len(found))
	}
}
