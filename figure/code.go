package figure

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/dendrascience/eosarchive/util"
	"github.com/skip2/go-qrcode"
)

const (
	// ModuleSize is the edge length of one code module in pixels.
	ModuleSize = 10
	// BorderModules is the quiet zone around the code, in modules.
	BorderModules = 1

	hotspotAlpha = 1e-6
)

// ErrNilFigure is returned when an overlay is requested on a nil figure.
var ErrNilFigure = errors.New("figure is nil")

// overlayRect is the inset box of the code: the top-right 5% of the figure.
var overlayRect = Rect{Left: 0.9, Bottom: 0.9, Width: 0.05, Height: 0.05}

// EncodeCode renders payload as a QR code raster: opaque black modules on a
// transparent background, ModuleSize pixels per module and a BorderModules
// quiet zone. The smallest version that fits payload at medium error
// correction is used, so equal payloads give identical rasters.
func EncodeCode(payload string) (*image.NRGBA, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", util.ErrEncoding)
	}
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrEncoding, err)
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()

	side := (len(bitmap) + 2*BorderModules) * ModuleSize
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	black := color.NRGBA{A: 0xff}
	for y, row := range bitmap {
		for x, on := range row {
			if !on {
				continue
			}
			px := (x + BorderModules) * ModuleSize
			py := (y + BorderModules) * ModuleSize
			for dy := range ModuleSize {
				for dx := range ModuleSize {
					img.SetNRGBA(px+dx, py+dy, black)
				}
			}
		}
	}
	return img, nil
}

// AddCodeOverlay adds a QR code of link to the top-right corner of fig, with
// an invisible hotspot over it that opens link in viewers supporting link
// annotations. fig is modified in place and returned.
func AddCodeOverlay(fig *Figure, link string) (*Figure, error) {
	if fig == nil {
		return nil, ErrNilFigure
	}
	code, err := EncodeCode(link)
	if err != nil {
		return nil, err
	}

	ax := fig.AddAxes(overlayRect, WithAnchor(AnchorNE), WithZOrder(1))
	ax.ShowImage(code)
	ax.AddHotspot(Hotspot{URL: link, Alpha: hotspotAlpha})
	ax.SetAxisOff()
	return fig, nil
}
