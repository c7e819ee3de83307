package cmd

import (
	"github.com/dendrascience/eosarchive/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the eosarchive CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eosarchive",
		Short: "eosarchive - Mirror and archive simulation studies on long-term storage",
		Long: `eosarchive copies simulation studies from a working directory to long-term
storage (EOS), compacts them into zip archives, and stamps plot figures with a
QR code linking back to their source.

Use subcommands to perform different operations:
  - copy: Mirror a study (master jobs, analysis, tree scripts, scans)
  - archive: Zip a mirrored study and remove the uncompressed copy
  - batch: Run a YAML plan of studies one after another
  - qr: Add a QR code overlay to a figure`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupStudy := "study"
	groupFigure := "figure"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupStudy,
		Title: "Study Archival",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFigure,
		Title: "Figures",
	})

	copyCmd := NewCopyCmd()
	archiveCmd := NewArchiveCmd()
	batchCmd := NewBatchCmd()
	qrCmd := NewQRCmd()

	copyCmd.GroupID = groupStudy
	archiveCmd.GroupID = groupStudy
	batchCmd.GroupID = groupStudy
	qrCmd.GroupID = groupFigure

	// Add subcommands
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(qrCmd)

	return rootCmd
}
