// Package study mirrors simulation studies onto long-term storage.
//
// A study lives under a working directory with a fixed layout:
//
//	master_jobs/                                  job templates
//	analysis/<kind>/analysis_<name>.ipynb         analysis notebook
//	001_make_folders_<name>.py                    driver scripts
//	002_chronjob.py
//	003_postprocessing.py
//	scans/<name>/                                 bulk scan results
//
// CopyStudy mirrors the selected parts of that layout under <dest>/<name>/,
// merging into whatever is already there. ArchiveAndClean then compacts the
// mirrored folder into <dest>/<name>.zip and removes the folder.
//
// Both operations are synchronous and stop at the first error. Nothing is
// rolled back: parts copied before a failure stay on disk. Calls for
// different studies touch disjoint trees and may run concurrently; calls for
// the same study must be serialized by the caller.
package study
