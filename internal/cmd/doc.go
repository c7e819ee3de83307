// Package cmd provides the command-line interface implementation for eosarchive.
//
// This package contains all the subcommand implementations for the eosarchive
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - copy: Mirror a study onto long-term storage
//   - archive: Compact a mirrored study into a zip and remove the folder
//   - batch: Run a YAML plan of copies and archives, one study at a time
//   - qr: Stamp a figure with a QR code linking to its source
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Flag defaults for the study paths
// come from the environment (see internal/config).
package cmd
