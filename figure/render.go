package figure

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const tickLength = 4

var axisColor = color.NRGBA{A: 0xff}

// Render composites the figure into a new raster. Insets are drawn in
// z-order with nearest-neighbor scaling. Hotspots whose opacity rounds to zero
// at 8 bits are invisible and not drawn.
func (f *Figure) Render() *image.NRGBA {
	w, h := f.Size()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), f.base, f.base.Bounds().Min, draw.Src)

	for _, ax := range f.Axes() {
		r := f.Placement(ax)
		if ax.image != nil {
			draw.NearestNeighbor.Scale(dst, r, ax.image, ax.image.Bounds(), draw.Over, nil)
		}
		if ax.frameOn {
			drawFrame(dst, r)
		}
		if ax.ticksOn {
			drawTicks(dst, r)
		}
		for _, hs := range ax.hotspots {
			if a := hotspotAlpha8(hs.Alpha); a > 0 {
				fill := image.NewUniform(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: a})
				draw.Draw(dst, r, fill, image.Point{}, draw.Over)
			}
		}
	}
	return dst
}

func hotspotAlpha8(alpha float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 0xff))
}

func drawFrame(dst draw.Image, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, axisColor)
		dst.Set(x, r.Max.Y-1, axisColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, axisColor)
		dst.Set(r.Max.X-1, y, axisColor)
	}
}

// drawTicks draws five ticks along the bottom and left edges, pointing out.
func drawTicks(dst draw.Image, r image.Rectangle) {
	for i := range 5 {
		x := r.Min.X + i*(r.Dx()-1)/4
		y := r.Max.Y - 1 - i*(r.Dy()-1)/4
		for d := 1; d <= tickLength; d++ {
			dst.Set(x, r.Max.Y-1+d, axisColor)
			dst.Set(r.Min.X-d, y, axisColor)
		}
	}
}

// WritePNG writes the rendered figure as PNG. Hotspots are cosmetic only.
func (f *Figure) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Render())
}

// WritePDF writes the figure as a single-page PDF, one point per pixel.
// Every hotspot becomes a URI link annotation over its inset.
func (f *Figure) WritePDF(w io.Writer) error {
	width, height := f.Size()
	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: float64(width), Ht: float64(height)})

	if err := placeImage(pdf, f.base, image.Rect(0, 0, width, height)); err != nil {
		return err
	}

	for _, ax := range f.Axes() {
		r := f.Placement(ax)
		if ax.image != nil {
			// pre-scale so viewers don't smooth the modules
			scaled := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
			draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), ax.image, ax.image.Bounds(), draw.Src, nil)
			if err := placeImage(pdf, scaled, r); err != nil {
				return err
			}
		}
		if ax.frameOn {
			pdf.SetDrawColor(0, 0, 0)
			pdf.Rect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), "D")
		}
		for _, hs := range ax.hotspots {
			x, y := float64(r.Min.X), float64(r.Min.Y)
			rw, rh := float64(r.Dx()), float64(r.Dy())
			pdf.SetAlpha(hs.Alpha, "Normal")
			pdf.SetFillColor(0xff, 0xff, 0xff)
			pdf.Rect(x, y, rw, rh, "F")
			pdf.SetAlpha(1, "Normal")
			pdf.LinkString(x, y, rw, rh, hs.URL)
		}
	}

	return pdf.Output(w)
}

func placeImage(pdf *fpdf.Fpdf, img image.Image, r image.Rectangle) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	name := uuid.NewString()
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), false, opts, 0, "")
	return pdf.Error()
}
