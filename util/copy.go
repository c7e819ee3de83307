package util

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// statSource stats a path that must exist, mapping a missing path to ErrNotFound.
func statSource(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// CopyFile copies the file at src to dst, overwriting dst if it exists.
// The permission bits of src are carried over. If preserveTimes is true the
// access and modification times are copied as well.
func CopyFile(src, dst string, preserveTimes bool) error {
	info, err := statSource(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedFile, src)
	}
	return copyRegular(src, dst, info, preserveTimes)
}

func copyRegular(src, dst string, info os.FileInfo, preserveTimes bool) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	// O_CREATE only applies the mode to new files
	if err = os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	if preserveTimes {
		return os.Chtimes(dst, info.ModTime(), info.ModTime())
	}
	return nil
}

// CopyTree recursively copies the directory src into dst.
//
// dst is created if needed and merged into if it already exists: files
// present in both are overwritten from src, files only present in dst are left
// untouched. Symlinks are followed, so the copy holds the link targets'
// contents. File modes and modification times are preserved.
func CopyTree(src, dst string) error {
	info, err := statSource(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedDirectory, src)
	}
	if err = os.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())

		// Stat rather than the dirent type so symlinks resolve to their target
		target, err := os.Stat(from)
		if err != nil {
			return err
		}
		if target.IsDir() {
			if err = CopyTree(from, to); err != nil {
				return err
			}
			continue
		}
		if err = copyRegular(from, to, target, true); err != nil {
			return err
		}
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
