// Package main provides the eosarchive command-line interface.
//
// eosarchive moves finished simulation studies from a working directory onto
// long-term storage (EOS). A study is mirrored part by part (master job
// templates, the analysis notebook, the scripts that build the scan tree and
// the scan results), then optionally compacted into a single zip archive with
// the uncompressed copy removed. It can also stamp plot figures with a QR code
// linking back to where the study lives.
//
// The main binary supports multiple subcommands:
//   - copy: Mirror a study onto long-term storage
//   - archive: Zip a mirrored study and remove the folder
//   - batch: Run a YAML plan of studies one after another
//   - qr: Add a QR code overlay to a figure
package main
