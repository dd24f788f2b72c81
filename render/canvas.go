package render

import (
	"image"
	"math"

	"github.com/npillmayer/cnc25d"
	"golang.org/x/image/vector"
)

// CanvasSink rasterizes outlines into an alpha mask, for previews.
// Subpaths are filled; a subpath is closed when it returns to its start
// point, and on Commit otherwise.
type CanvasSink struct {
	z       *vector.Rasterizer
	img     *image.Alpha
	lo      cnc25d.Pair
	scale   float64
	height  int
	open    bool
	start   cnc25d.Pair
	current cnc25d.Pair
}

var _ Sink = (*CanvasSink)(nil)

// NewCanvasSink creates a canvas showing the rectangle from lo to hi,
// with scale pixels per millimetre.
func NewCanvasSink(lo, hi cnc25d.Pair, scale float64) *CanvasSink {
	w := int(math.Ceil((hi.X() - lo.X()) * scale))
	h := int(math.Ceil((hi.Y() - lo.Y()) * scale))
	w, h = max(w, 1), max(h, 1)
	return &CanvasSink{
		z:      vector.NewRasterizer(w, h),
		img:    image.NewAlpha(image.Rect(0, 0, w, h)),
		lo:     lo,
		scale:  scale,
		height: h,
	}
}

// Backend is CanvasBackend.
func (cv *CanvasSink) Backend() Backend { return CanvasBackend }

func (cv *CanvasSink) sealed() {}

// pixel maps a point in millimetres to raster coordinates (y pointing down).
func (cv *CanvasSink) pixel(p cnc25d.Pair) (float32, float32) {
	x := (p.X() - cv.lo.X()) * cv.scale
	y := float64(cv.height) - (p.Y()-cv.lo.Y())*cv.scale
	return float32(x), float32(y)
}

func (cv *CanvasSink) moveTo(p cnc25d.Pair) {
	if cv.open {
		cv.z.ClosePath()
	}
	cv.z.MoveTo(cv.pixel(p))
	cv.open = true
	cv.start, cv.current = p, p
}

func (cv *CanvasSink) lineTo(p cnc25d.Pair) {
	cv.z.LineTo(cv.pixel(p))
	cv.current = p
	if p == cv.start {
		cv.z.ClosePath()
		cv.open = false
	}
}

// AddLine adds a straight segment to the current subpath, starting a new
// subpath if from is not the current point.
func (cv *CanvasSink) AddLine(from, to cnc25d.Pair) {
	if !cv.open || from != cv.current {
		cv.moveTo(from)
	}
	cv.lineTo(to)
}

// AddPolyline adds the legs of a polyline to the current subpath.
func (cv *CanvasSink) AddPolyline(pts []cnc25d.Pair) {
	for i := 1; i < len(pts); i++ {
		cv.AddLine(pts[i-1], pts[i])
	}
}

// Commit rasterizes all subpaths into the canvas image.
func (cv *CanvasSink) Commit() error {
	if cv.open {
		cv.z.ClosePath()
		cv.open = false
	}
	cv.z.Draw(cv.img, cv.img.Bounds(), image.Opaque, image.Point{})
	return nil
}

// Image returns the canvas image. It is complete after Commit.
func (cv *CanvasSink) Image() *image.Alpha {
	return cv.img
}
