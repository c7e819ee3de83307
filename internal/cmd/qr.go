package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/eosarchive/figure"
	"github.com/spf13/cobra"
)

// NewQRCmd creates and returns the qr subcommand for the eosarchive CLI.
// It stamps a rendered figure with a QR code pointing at a link.
func NewQRCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		link       string
	)

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Add a QR code overlay to a figure",
		Long: `Add a QR code encoding LINK to the top-right corner of a rendered figure.

The input is a PNG or JPEG image. The output format follows the output file
extension: .pdf keeps an invisible clickable link over the code, anything else
is written as PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQR(inputPath, outputPath, link)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the rendered figure (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the stamped figure (required)")
	cmd.Flags().StringVarP(&link, "link", "l", "", "Link to encode in the QR code (required)")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("link")

	return cmd
}

func runQR(inputPath, outputPath, link string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	base, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	fig, err := figure.AddCodeOverlay(figure.New(base), link)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(outputPath), ".pdf") {
		err = fig.WritePDF(out)
	} else {
		err = fig.WritePNG(out)
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
