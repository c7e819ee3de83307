package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "script.py")
	os.WriteFile(src, []byte("print('hello')"), 0755)
	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	os.Chtimes(src, old, old)

	existing := filepath.Join(tmpDir, "existing.py")
	os.WriteFile(existing, []byte("a much longer previous body that must be truncated"), 0644)

	subDir := filepath.Join(tmpDir, "subdir")
	os.Mkdir(subDir, 0755)

	tests := []struct {
		name          string
		src           string
		dst           string
		preserveTimes bool
		wantErr       error
	}{
		{
			name: "new destination",
			src:  src,
			dst:  filepath.Join(tmpDir, "copy.py"),
		},
		{
			name: "overwrite destination",
			src:  src,
			dst:  existing,
		},
		{
			name:          "preserve times",
			src:           src,
			dst:           filepath.Join(tmpDir, "timed.py"),
			preserveTimes: true,
		},
		{
			name:    "missing source",
			src:     filepath.Join(tmpDir, "nonexistent.py"),
			dst:     filepath.Join(tmpDir, "never.py"),
			wantErr: ErrNotFound,
		},
		{
			name:    "directory source",
			src:     subDir,
			dst:     filepath.Join(tmpDir, "dir.py"),
			wantErr: ErrExpectedFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CopyFile(tt.src, tt.dst, tt.preserveTimes)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CopyFile() error = %v, want %v", err, tt.wantErr)
				}
				if _, statErr := os.Stat(tt.dst); !os.IsNotExist(statErr) {
					t.Errorf("CopyFile() created %s despite failing", tt.dst)
				}
				return
			}
			if err != nil {
				t.Fatalf("CopyFile() unexpected error: %v", err)
			}

			got, _ := os.ReadFile(tt.dst)
			if string(got) != "print('hello')" {
				t.Errorf("CopyFile() content = %q", got)
			}
			info, _ := os.Stat(tt.dst)
			if info.Mode().Perm() != 0755 {
				t.Errorf("CopyFile() mode = %v, want 0755", info.Mode().Perm())
			}
			if tt.preserveTimes && !info.ModTime().Equal(old) {
				t.Errorf("CopyFile() mtime = %v, want %v", info.ModTime(), old)
			}
			if !tt.preserveTimes && info.ModTime().Equal(old) {
				t.Errorf("CopyFile() copied mtime without preserveTimes")
			}
		})
	}
}

func TestCopyFile_MissingSourceKeepsOSError(t *testing.T) {
	err := CopyFile(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "dst"), false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got: %v", err)
	}
}

func TestCopyTree_Merge(t *testing.T) {
	src := t.TempDir()
	os.MkdirAll(filepath.Join(src, "a", "b"), 0755)
	os.WriteFile(filepath.Join(src, "top.txt"), []byte("top"), 0644)
	os.WriteFile(filepath.Join(src, "a", "b", "deep.txt"), []byte("deep"), 0644)

	dst := filepath.Join(t.TempDir(), "dst")
	os.MkdirAll(filepath.Join(dst, "a"), 0755)
	os.WriteFile(filepath.Join(dst, "top.txt"), []byte("stale"), 0644)
	os.WriteFile(filepath.Join(dst, "a", "only_in_dst.txt"), []byte("keep me"), 0644)

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree failed: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"top.txt", "top"},
		{"a/b/deep.txt", "deep"},
		{"a/only_in_dst.txt", "keep me"},
	}
	for _, tt := range tests {
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(tt.path)))
		if err != nil {
			t.Errorf("reading %s: %v", tt.path, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCopyTree_PreservesModTime(t *testing.T) {
	src := t.TempDir()
	file := filepath.Join(src, "result.txt")
	os.WriteFile(file, []byte("42"), 0644)
	old := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	os.Chtimes(file, old, old)

	dst := filepath.Join(t.TempDir(), "dst")
	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(dst, "result.txt"))
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), old)
	}
}

func TestCopyTree_FollowsSymlinks(t *testing.T) {
	outside := t.TempDir()
	os.WriteFile(filepath.Join(outside, "target.txt"), []byte("linked"), 0644)
	os.MkdirAll(filepath.Join(outside, "linkeddir"), 0755)
	os.WriteFile(filepath.Join(outside, "linkeddir", "inner.txt"), []byte("inner"), 0644)

	src := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "target.txt"), filepath.Join(src, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	os.Symlink(filepath.Join(outside, "linkeddir"), filepath.Join(src, "dirlink"))

	dst := filepath.Join(t.TempDir(), "dst")
	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree failed: %v", err)
	}

	info, err := os.Lstat(filepath.Join(dst, "link.txt"))
	if err != nil {
		t.Fatalf("lstat copy: %v", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		t.Error("symlink was copied as a link, want its target contents")
	}
	got, _ := os.ReadFile(filepath.Join(dst, "dirlink", "inner.txt"))
	if string(got) != "inner" {
		t.Errorf("dirlink/inner.txt = %q, want %q", got, "inner")
	}
}

func TestCopyTree_Errors(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if err := CopyTree(filepath.Join(tmp, "missing"), filepath.Join(tmp, "out")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing source: error = %v, want ErrNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "out")); !os.IsNotExist(err) {
		t.Error("destination created for missing source")
	}
	if err := CopyTree(file, filepath.Join(tmp, "out2")); !errors.Is(err, ErrExpectedDirectory) {
		t.Errorf("file source: error = %v, want ErrExpectedDirectory", err)
	}
}
