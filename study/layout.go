package study

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dendrascience/eosarchive/util"
)

// Fixed names inside a study directory.
const (
	MasterJobsDir = "master_jobs"
	AnalysisDir   = "analysis"
	ScansDir      = "scans"

	chronjobScript       = "002_chronjob.py"
	postprocessingScript = "003_postprocessing.py"
)

// Layout resolves the paths of one study relative to a root directory.
// The same Layout shape describes both the working copy and the mirror on
// long-term storage.
type Layout struct {
	Root string
	Name string
}

// MasterJobs returns the master job template directory.
func (l Layout) MasterJobs() string {
	return filepath.Join(l.Root, MasterJobsDir)
}

// AnalysisRel returns the notebook path relative to Root.
func (l Layout) AnalysisRel(kind string) string {
	return filepath.Join(AnalysisDir, kind, "analysis_"+l.Name+".ipynb")
}

// Analysis returns the analysis notebook for the given analysis kind.
func (l Layout) Analysis(kind string) string {
	return filepath.Join(l.Root, l.AnalysisRel(kind))
}

// TreeScripts returns the names of the scripts that generate the scan tree,
// in the order they are run.
func (l Layout) TreeScripts() []string {
	return []string{
		"001_make_folders_" + l.Name + ".py",
		chronjobScript,
		postprocessingScript,
	}
}

// Scan returns the scan result directory of the study.
func (l Layout) Scan() string {
	return filepath.Join(l.Root, ScansDir, l.Name)
}

// Archive returns the folder of a study mirrored under dest.
func Archive(dest, name string) string {
	return filepath.Join(dest, name)
}

// ArchiveZip returns the zip a mirrored study is compacted into.
func ArchiveZip(dest, name string) string {
	return filepath.Join(dest, name+".zip")
}

// validateName checks that name can be used as a single path segment.
func validateName(name string) error {
	if name == "" {
		return util.ErrEmptyName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid study name %q: must be a single path segment", name)
	}
	return nil
}
