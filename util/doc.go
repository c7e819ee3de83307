// Package util provides the filesystem building blocks for study archival.
//
// This package contains the low-level operations used to mirror a simulation
// study onto long-term storage and compact it afterwards. Nothing in here knows
// about study layouts; callers pass plain paths.
//
// Key Components:
//
// Copying:
//   - CopyFile copies a single file, overwriting the destination
//   - CopyTree merges a directory tree into a destination tree, leaving
//     destination-only files in place and following symlinks
//
// Compression:
//   - ZipDirectory writes a deflated zip of a whole tree, with entries rooted
//     at a caller-chosen prefix
//
// Errors:
//   - Sentinel errors (ErrNotFound, ErrArchive, ErrEncoding, ...) that wrap the
//     underlying os error so both can be matched with errors.Is
//
// Every operation is synchronous and fails fast: the first error aborts and is
// returned to the caller without cleanup.
package util
