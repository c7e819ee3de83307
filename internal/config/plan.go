package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dendrascience/eosarchive/study"
	"gopkg.in/yaml.v3"
)

// Plan is a list of studies to mirror, read from a YAML file:
//
//	source_root: /work/master_study
//	eos_root: /eos/save_simulations
//	analysis_kind: tune_scan
//	studies:
//	  - name: hl_tunescan
//	    archive: true
//	  - name: hl_octupole
//	    copy_scan: false
//
// Per-study fields override the plan-level ones. Unset copy_* fields default
// to true.
type Plan struct {
	SourceRoot   string      `yaml:"source_root"`
	EOSRoot      string      `yaml:"eos_root"`
	AnalysisKind string      `yaml:"analysis_kind"`
	Studies      []PlanEntry `yaml:"studies"`
}

// PlanEntry is one study of a Plan.
type PlanEntry struct {
	Name            string `yaml:"name"`
	SourceRoot      string `yaml:"source_root"`
	EOSRoot         string `yaml:"eos_root"`
	AnalysisKind    string `yaml:"analysis_kind"`
	CopyMasterJobs  *bool  `yaml:"copy_master_jobs"`
	CopyAnalysis    *bool  `yaml:"copy_analysis"`
	CopyTreeScripts *bool  `yaml:"copy_tree_scripts"`
	CopyScan        *bool  `yaml:"copy_scan"`
	Archive         bool   `yaml:"archive"`
}

// Job is a fully resolved PlanEntry.
type Job struct {
	Name         string
	SourceRoot   string
	EOSRoot      string
	AnalysisKind string
	Options      study.Options
	Archive      bool
}

var ErrInvalidPlan = errors.New("invalid plan")

// LoadPlan reads and validates a plan file. Roots missing from the file are
// taken from defaults.
func LoadPlan(path string, defaults Env) ([]Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", path, err)
	}
	var p Plan
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPlan, path, err)
	}
	return p.Resolve(defaults)
}

// Resolve applies plan-level values and defaults to every entry.
func (p Plan) Resolve(defaults Env) ([]Job, error) {
	if len(p.Studies) == 0 {
		return nil, fmt.Errorf("%w: no studies listed", ErrInvalidPlan)
	}
	jobs := make([]Job, 0, len(p.Studies))
	for i, e := range p.Studies {
		j := Job{
			Name:         e.Name,
			SourceRoot:   firstNonEmpty(e.SourceRoot, p.SourceRoot, defaults.SourceRoot),
			EOSRoot:      firstNonEmpty(e.EOSRoot, p.EOSRoot, defaults.EOSRoot),
			AnalysisKind: firstNonEmpty(e.AnalysisKind, p.AnalysisKind, defaults.AnalysisKind),
			Options: study.Options{
				CopyMasterJobs:  boolOr(e.CopyMasterJobs, true),
				CopyAnalysis:    boolOr(e.CopyAnalysis, true),
				CopyTreeScripts: boolOr(e.CopyTreeScripts, true),
				CopyScan:        boolOr(e.CopyScan, true),
			},
			Archive: e.Archive,
		}
		switch {
		case j.Name == "":
			return nil, fmt.Errorf("%w: study %d has no name", ErrInvalidPlan, i+1)
		case j.SourceRoot == "":
			return nil, fmt.Errorf("%w: study %q has no source_root", ErrInvalidPlan, j.Name)
		case j.EOSRoot == "":
			return nil, fmt.Errorf("%w: study %q has no eos_root", ErrInvalidPlan, j.Name)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
