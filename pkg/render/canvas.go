package render

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/archviz/archviz/pkg/geom"
)

const (
	defaultWidth  = 1600
	defaultHeight = 900
	defaultScale  = 1.0

	// refHeight is the canvas height at which point sizes and stroke
	// widths are specified; other resolutions scale proportionally.
	refHeight = 640.0
)

// Options configures one render call.
type Options struct {
	Width  int     // canvas width in pixels (default 1600)
	Height int     // canvas height in pixels (default 900)
	Scale  float64 // density multiplier applied to both axes (default 1.0)

	FontPath string // explicit TTF path; empty = system font discovery
	Logger   *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = defaultScale
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// PixelSize returns the output image dimensions the options produce.
func (o Options) PixelSize() (w, h int) {
	o = o.withDefaults()
	return int(float64(o.Width) * o.Scale), int(float64(o.Height) * o.Scale)
}

// canvas wraps a gg context with the normalized-to-pixel mapping.
// Scene coordinates are y-up; gg pixels are y-down, so the flip happens
// here and nowhere else.
type canvas struct {
	dc    *gg.Context
	w, h  float64
	fonts *fontSet
}

func newCanvas(opts Options) *canvas {
	w, h := opts.PixelSize()
	return &canvas{
		dc:    gg.NewContext(w, h),
		w:     float64(w),
		h:     float64(h),
		fonts: loadFonts(opts.FontPath, opts.Logger),
	}
}

func (cv *canvas) close() {
	_ = cv.dc.Close()
}

// px maps a scene point to pixel coordinates.
func (cv *canvas) px(p geom.Point) (x, y float64) {
	return p.X * cv.w, (1 - p.Y) * cv.h
}

// dist maps a normalized distance to pixels along the x axis.
func (cv *canvas) distX(d float64) float64 { return d * cv.w }

// distY maps a normalized distance to pixels along the y axis.
func (cv *canvas) distY(d float64) float64 { return d * cv.h }

// strokePx converts a point-based stroke width to pixels.
func (cv *canvas) strokePx(w float64) float64 {
	return w * cv.h / refHeight
}

// rect traces a scene rect as a pixel-space gg path.
func (cv *canvas) rect(r geom.Rect) {
	x, y := cv.px(geom.Pt(r.X, r.Top()))
	cv.dc.DrawRectangle(x, y, cv.distX(r.W), cv.distY(r.H))
}

// roundedRect traces a scene rect with rounded corners.
func (cv *canvas) roundedRect(r geom.Rect, radius float64) {
	x, y := cv.px(geom.Pt(r.X, r.Top()))
	cv.dc.DrawRoundedRectangle(x, y, cv.distX(r.W), cv.distY(r.H), cv.distY(radius))
}

// ellipse traces the ellipse inscribed in a scene rect.
func (cv *canvas) ellipse(r geom.Rect) {
	cx, cy := cv.px(r.Center())
	cv.dc.DrawEllipse(cx, cy, cv.distX(r.W/2), cv.distY(r.H/2))
}

// line draws a straight stroked segment between two scene points.
func (cv *canvas) line(a, b geom.Point, color string, width float64) {
	x1, y1 := cv.px(a)
	x2, y2 := cv.px(b)
	cv.dc.SetHexColor(color)
	cv.dc.SetLineWidth(cv.strokePx(width))
	cv.dc.DrawLine(x1, y1, x2, y2)
	cv.dc.Stroke()
}

// fillStroke fills the current path, then strokes it.
func (cv *canvas) fillStroke(fill, stroke string, width float64) {
	cv.dc.SetHexColor(fill)
	cv.dc.FillPreserve()
	cv.dc.SetHexColor(stroke)
	cv.dc.SetLineWidth(cv.strokePx(width))
	cv.dc.Stroke()
}
