package util

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ZipDirectory writes a zip archive of the directory tree at dir to dest.
//
// Entry names are slash-separated and rooted at root, so with root "demo" a
// file dir/a/b.txt is stored as "demo/a/b.txt". An empty root stores entries
// relative to dir. Directories get their own entries so empty ones survive.
// An existing file at dest is replaced.
//
// Any failure is returned wrapped in ErrArchive. A partially written dest is
// left where it is.
func ZipDirectory(dir, dest, root string) error {
	info, err := statSource(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedDirectory, dir)
	}
	if err = zipTree(dir, dest, root); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, dest, err)
	}
	return nil
}

func zipTree(dir, dest, root string) error {
	os.Remove(dest)
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	w := zip.NewWriter(file)

	walkErr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := path.Join(root, filepath.ToSlash(rel))
		if rel == "." {
			if root == "" {
				return nil
			}
			name = root
		}
		return addToZip(w, p, name)
	})
	if walkErr != nil {
		w.Close()
		file.Close()
		return walkErr
	}
	if err = w.Close(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func addToZip(w *zip.Writer, p, name string) error {
	// Stat so a symlinked file is stored with its target contents
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	if info.IsDir() {
		header.Name += "/"
		_, err = w.CreateHeader(header)
		return err
	}
	header.Method = zip.Deflate

	writer, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(writer, f)
	return err
}
