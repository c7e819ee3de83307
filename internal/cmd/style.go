package cmd

import (
	"github.com/fatih/color"
	"github.com/taigrr/colorhash"
)

const paletteSize = 6

var studyPalette = [paletteSize]color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgMagenta,
	color.FgBlue,
	color.FgHiCyan,
}

// studyColorIndex picks a stable palette slot for a study name, so the same
// study always prints in the same color across runs.
func studyColorIndex(name string) int {
	i := int(colorhash.HashString(name) % paletteSize)
	if i < 0 {
		i = -i
	}
	return i
}

func studyLabel(name string) string {
	return color.New(studyPalette[studyColorIndex(name)], color.Bold).Sprint(name)
}

var (
	okMark   = color.GreenString("ok")
	failMark = color.RedString("failed")
)
