package cmd

import (
	"fmt"

	"github.com/dendrascience/eosarchive/internal/config"
	"github.com/spf13/cobra"
)

// NewBatchCmd creates and returns the batch subcommand for the eosarchive CLI.
// It runs every study of a YAML plan, one after another.
func NewBatchCmd() *cobra.Command {
	var (
		planPath string
		verbose  bool
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Copy and archive the studies listed in a YAML plan",
		Long: `Run the studies listed in a YAML plan file one after another.

Each entry is copied like the copy command does and, if it sets archive: true,
archived afterwards. Studies run strictly in sequence and the batch stops at
the first failure. Roots missing from the plan fall back to
EOSARCHIVE_SOURCE_ROOT and EOSARCHIVE_EOS_ROOT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.LoadEnv()
			if err != nil {
				return err
			}
			jobs, err := config.LoadPlan(planPath, defaults)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "DRY RUN - no changes will be made")
			}
			for i, job := range jobs {
				if verbose || dryRun {
					fmt.Fprintf(out, "[%d/%d] %s: %s -> %s (archive: %v)\n",
						i+1, len(jobs), studyLabel(job.Name), job.SourceRoot, job.EOSRoot, job.Archive)
				}
				if dryRun {
					continue
				}
				run := studyRun{
					name:         job.Name,
					sourceRoot:   job.SourceRoot,
					eosRoot:      job.EOSRoot,
					analysisKind: job.AnalysisKind,
					opts:         job.Options,
					archive:      job.Archive,
				}
				if err := run.execute(out, verbose); err != nil {
					return fmt.Errorf("study %s: %w", job.Name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "Path to the YAML plan file (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	cmd.MarkFlagRequired("plan")

	return cmd
}
