package study

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dendrascience/eosarchive/util"
)

// Options selects which parts of a study CopyStudy mirrors.
type Options struct {
	CopyMasterJobs  bool // master_jobs/ templates
	CopyAnalysis    bool // analysis/<kind>/analysis_<name>.ipynb
	CopyTreeScripts bool // the three scripts that build the scan tree
	CopyScan        bool // scans/<name>/ results, usually the bulk of the data
}

// DefaultOptions returns Options with every part selected.
func DefaultOptions() Options {
	return Options{
		CopyMasterJobs:  true,
		CopyAnalysis:    true,
		CopyTreeScripts: true,
		CopyScan:        true,
	}
}

// CopyStudy mirrors the study name from sourceRoot into destRoot/name/.
//
// The destination folder is always created (including parents) and existing
// content is merged into rather than replaced. The selected parts are then
// copied in a fixed order: master jobs, analysis notebook of analysisKind,
// tree scripts, scan results. A missing source for a selected part returns an
// error wrapping util.ErrNotFound; parts copied before it stay in place.
func CopyStudy(name, sourceRoot, destRoot, analysisKind string, opts Options) error {
	if err := validateName(name); err != nil {
		return err
	}
	src := Layout{Root: sourceRoot, Name: name}
	dst := Layout{Root: Archive(destRoot, name), Name: name}

	if err := os.MkdirAll(dst.Root, 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory %s: %w", dst.Root, err)
	}

	if opts.CopyMasterJobs {
		if err := util.CopyTree(src.MasterJobs(), dst.MasterJobs()); err != nil {
			return fmt.Errorf("copy master jobs: %w", err)
		}
	}

	if opts.CopyAnalysis {
		to := dst.Analysis(analysisKind)
		if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
			return fmt.Errorf("copy analysis: %w", err)
		}
		if err := util.CopyFile(src.Analysis(analysisKind), to, false); err != nil {
			return fmt.Errorf("copy analysis: %w", err)
		}
	}

	if opts.CopyTreeScripts {
		for _, script := range src.TreeScripts() {
			err := util.CopyFile(filepath.Join(src.Root, script), filepath.Join(dst.Root, script), false)
			if err != nil {
				return fmt.Errorf("copy tree script: %w", err)
			}
		}
	}

	if opts.CopyScan {
		logSink.Println("Start copying scan, this may take a while...")
		if err := util.CopyTree(src.Scan(), dst.Scan()); err != nil {
			return fmt.Errorf("copy scan: %w", err)
		}
	}

	return nil
}
