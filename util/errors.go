package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrNotFound          = errors.New("source path not found")
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Archive errors
	ErrArchive = errors.New("archive creation failed")

	// Figure errors
	ErrEncoding = errors.New("payload cannot be encoded")

	// Study errors
	ErrEmptyName = errors.New("study name must not be empty")
)
