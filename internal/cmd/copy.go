package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dendrascience/eosarchive/internal/config"
	"github.com/dendrascience/eosarchive/study"
	"github.com/spf13/cobra"
)

// studyRun is one copy (and optional archive) of a study.
type studyRun struct {
	name         string
	sourceRoot   string
	eosRoot      string
	analysisKind string
	opts         study.Options
	archive      bool
}

func (r studyRun) validate() error {
	switch {
	case r.name == "":
		return errors.New("--study is required")
	case r.sourceRoot == "":
		return errors.New("--source is required (or set EOSARCHIVE_SOURCE_ROOT)")
	case r.eosRoot == "":
		return errors.New("--eos is required (or set EOSARCHIVE_EOS_ROOT)")
	}
	return nil
}

func (r studyRun) execute(out io.Writer, verbose bool) error {
	label := studyLabel(r.name)
	if verbose {
		fmt.Fprintf(out, "Copying %s from %s to %s\n", label, r.sourceRoot, study.Archive(r.eosRoot, r.name))
	}
	if err := study.CopyStudy(r.name, r.sourceRoot, r.eosRoot, r.analysisKind, r.opts); err != nil {
		fmt.Fprintf(out, "Copy of %s %s\n", label, failMark)
		return err
	}
	fmt.Fprintf(out, "Copy of %s %s\n", label, okMark)

	if !r.archive {
		return nil
	}
	return runArchive(out, r.name, r.eosRoot, verbose)
}

// NewCopyCmd creates and returns the copy subcommand for the eosarchive CLI.
// It mirrors a study onto long-term storage, part by part.
func NewCopyCmd() *cobra.Command {
	defaults, envErr := config.LoadEnv()

	var (
		run           studyRun
		noMasterJobs  bool
		noAnalysis    bool
		noTreeScripts bool
		noScan        bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Mirror a study onto long-term storage",
		Long: `Copy a study from its working directory to long-term storage.

The study is mirrored under EOS_ROOT/STUDY/. Existing content there is merged
into, not replaced. Parts are copied in a fixed order and each can be skipped:
  - master_jobs/
  - analysis/KIND/analysis_STUDY.ipynb
  - 001_make_folders_STUDY.py, 002_chronjob.py, 003_postprocessing.py
  - scans/STUDY/ (usually the bulk of the data)

With --archive the mirrored folder is zipped and removed afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			run.opts = study.Options{
				CopyMasterJobs:  !noMasterJobs,
				CopyAnalysis:    !noAnalysis,
				CopyTreeScripts: !noTreeScripts,
				CopyScan:        !noScan,
			}
			if err := run.validate(); err != nil {
				return err
			}
			return run.execute(cmd.OutOrStdout(), verbose)
		},
	}

	cmd.Flags().StringVarP(&run.name, "study", "s", "", "Name of the study (required)")
	cmd.Flags().StringVar(&run.sourceRoot, "source", defaults.SourceRoot, "Path to the study working directory")
	cmd.Flags().StringVar(&run.eosRoot, "eos", defaults.EOSRoot, "Path to the long-term storage directory")
	cmd.Flags().StringVarP(&run.analysisKind, "analysis-kind", "k", defaults.AnalysisKind, "Analysis folder under analysis/")
	cmd.Flags().BoolVar(&noMasterJobs, "no-master-jobs", false, "Skip master_jobs/")
	cmd.Flags().BoolVar(&noAnalysis, "no-analysis", false, "Skip the analysis notebook")
	cmd.Flags().BoolVar(&noTreeScripts, "no-tree-scripts", false, "Skip the scan tree scripts")
	cmd.Flags().BoolVar(&noScan, "no-scan", false, "Skip scans/STUDY/")
	cmd.Flags().BoolVar(&run.archive, "archive", false, "Zip the mirrored study and remove the folder afterwards")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("study")

	return cmd
}
