package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dendrascience/eosarchive/internal/config"
	"github.com/dendrascience/eosarchive/study"
	"github.com/spf13/cobra"
)

// NewArchiveCmd creates and returns the archive subcommand for the eosarchive CLI.
// It compacts an already mirrored study into a single zip.
func NewArchiveCmd() *cobra.Command {
	defaults, envErr := config.LoadEnv()

	var (
		name    string
		eosRoot string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Zip a mirrored study and remove the uncompressed copy",
		Long: `Compress EOS_ROOT/STUDY/ into EOS_ROOT/STUDY.zip, then delete the folder.

The folder is only deleted once the zip has been written completely. If
archiving fails the folder is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if eosRoot == "" {
				return errors.New("--eos is required (or set EOSARCHIVE_EOS_ROOT)")
			}
			return runArchive(cmd.OutOrStdout(), name, eosRoot, verbose)
		},
	}

	cmd.Flags().StringVarP(&name, "study", "s", "", "Name of the study (required)")
	cmd.Flags().StringVar(&eosRoot, "eos", defaults.EOSRoot, "Path to the long-term storage directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("study")

	return cmd
}

func runArchive(out io.Writer, name, eosRoot string, verbose bool) error {
	label := studyLabel(name)
	if verbose {
		fmt.Fprintf(out, "Archiving %s into %s\n", label, study.ArchiveZip(eosRoot, name))
	}
	if err := study.ArchiveAndClean(name, eosRoot); err != nil {
		fmt.Fprintf(out, "Archive of %s %s\n", label, failMark)
		return err
	}
	fmt.Fprintf(out, "Archive of %s %s\n", label, okMark)
	return nil
}
