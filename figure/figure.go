package figure

import (
	"image"
	"math"
	"sort"
)

// Rect is a region in figure fractions: (0, 0) is the bottom-left corner of
// the figure and (1, 1) the top-right one.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Anchor decides where content smaller than its Axes box is placed.
type Anchor int

const (
	AnchorC Anchor = iota
	AnchorN
	AnchorNE
	AnchorE
	AnchorSE
	AnchorS
	AnchorSW
	AnchorW
	AnchorNW
)

// Hotspot is a clickable region covering an Axes. Alpha is its fill opacity.
type Hotspot struct {
	URL   string
	Alpha float64
}

// PlacedHotspot is a Hotspot resolved to pixel coordinates.
type PlacedHotspot struct {
	Hotspot
	Bounds image.Rectangle
}

// Axes is an inset region of a Figure.
type Axes struct {
	Rect   Rect
	Anchor Anchor
	ZOrder int

	image    image.Image
	frameOn  bool
	ticksOn  bool
	hotspots []Hotspot
}

// AxesOption configures an Axes on creation.
type AxesOption func(*Axes)

// WithAnchor sets the anchor of the new Axes.
func WithAnchor(a Anchor) AxesOption {
	return func(ax *Axes) { ax.Anchor = a }
}

// WithZOrder sets the drawing order of the new Axes. Higher is drawn later.
func WithZOrder(z int) AxesOption {
	return func(ax *Axes) { ax.ZOrder = z }
}

// ShowImage displays img in the Axes, keeping its aspect ratio.
func (a *Axes) ShowImage(img image.Image) { a.image = img }

// Image returns the image shown in the Axes, if any.
func (a *Axes) Image() image.Image { return a.image }

// SetTicksVisible toggles the tick marks along the Axes edges.
func (a *Axes) SetTicksVisible(on bool) { a.ticksOn = on }

// SetAxisOff hides both the frame and the ticks.
func (a *Axes) SetAxisOff() {
	a.frameOn = false
	a.ticksOn = false
}

// AxisOn reports whether the frame or ticks are drawn.
func (a *Axes) AxisOn() bool { return a.frameOn || a.ticksOn }

// AddHotspot attaches a clickable region covering the Axes.
func (a *Axes) AddHotspot(h Hotspot) { a.hotspots = append(a.hotspots, h) }

// Figure is a rendered plot plus the insets added on top of it. It is owned by
// the caller and mutated in place.
type Figure struct {
	base image.Image
	axes []*Axes
}

// New wraps a rendered plot image.
func New(base image.Image) *Figure {
	return &Figure{base: base}
}

// Size returns the figure size in pixels.
func (f *Figure) Size() (width, height int) {
	b := f.base.Bounds()
	return b.Dx(), b.Dy()
}

// AddAxes adds an inset at rect. New Axes have their frame and ticks on.
func (f *Figure) AddAxes(rect Rect, opts ...AxesOption) *Axes {
	ax := &Axes{Rect: rect, frameOn: true, ticksOn: true}
	for _, opt := range opts {
		opt(ax)
	}
	f.axes = append(f.axes, ax)
	return ax
}

// Axes returns the insets in drawing order.
func (f *Figure) Axes() []*Axes {
	axes := make([]*Axes, len(f.axes))
	copy(axes, f.axes)
	sort.SliceStable(axes, func(i, j int) bool { return axes[i].ZOrder < axes[j].ZOrder })
	return axes
}

// Hotspots returns every hotspot resolved to the pixel bounds of its Axes.
func (f *Figure) Hotspots() []PlacedHotspot {
	var placed []PlacedHotspot
	for _, ax := range f.Axes() {
		bounds := f.Placement(ax)
		for _, h := range ax.hotspots {
			placed = append(placed, PlacedHotspot{Hotspot: h, Bounds: bounds})
		}
	}
	return placed
}

// Placement returns the pixel rectangle ax occupies, with the origin at the
// top-left of the figure. When ax shows an image the box shrinks to the image
// aspect and is positioned by ax.Anchor.
func (f *Figure) Placement(ax *Axes) image.Rectangle {
	w, h := f.Size()
	fw, fh := float64(w), float64(h)

	x0 := ax.Rect.Left * fw
	x1 := (ax.Rect.Left + ax.Rect.Width) * fw
	y0 := (1 - ax.Rect.Bottom - ax.Rect.Height) * fh
	y1 := (1 - ax.Rect.Bottom) * fh

	if ax.image != nil && !ax.image.Bounds().Empty() {
		ib := ax.image.Bounds()
		bw, bh := x1-x0, y1-y0
		scale := math.Min(bw/float64(ib.Dx()), bh/float64(ib.Dy()))
		cw, ch := float64(ib.Dx())*scale, float64(ib.Dy())*scale

		fx, fy := anchorFractions(ax.Anchor)
		x0 += (bw - cw) * fx
		y0 += (bh - ch) * fy
		x1, y1 = x0+cw, y0+ch
	}

	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}

// anchorFractions returns how much of the slack goes left of and above the
// content, with y growing downwards.
func anchorFractions(a Anchor) (fx, fy float64) {
	switch a {
	case AnchorN:
		return 0.5, 0
	case AnchorNE:
		return 1, 0
	case AnchorE:
		return 1, 0.5
	case AnchorSE:
		return 1, 1
	case AnchorS:
		return 0.5, 1
	case AnchorSW:
		return 0, 1
	case AnchorW:
		return 0, 0.5
	case AnchorNW:
		return 0, 0
	default:
		return 0.5, 0.5
	}
}
