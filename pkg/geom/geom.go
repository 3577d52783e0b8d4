// Package geom provides the normalized coordinate primitives shared by
// the diagram model and the renderer.
//
// All coordinates live in the unit square [0,1]x[0,1] with the origin at
// the bottom-left and y pointing up. Mapping to pixel space happens only
// at the canvas boundary, so layout constants stay resolution-independent.
package geom

import "math"

// Point is a position in normalized scene coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Normal returns the unit vector perpendicular to p, rotated 90 degrees
// counterclockwise (to the left of the direction of travel). Returns the
// zero point for a zero vector.
func (p Point) Normal() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{-p.Y / l, p.X / l}
}

// Rect is an axis-aligned rectangle in normalized scene coordinates.
// X, Y is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// XYWH is shorthand for Rect{x, y, w, h}.
func XYWH(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// LeftMid returns the midpoint of the left edge.
func (r Rect) LeftMid() Point { return Point{r.X, r.Y + r.H/2} }

// RightMid returns the midpoint of the right edge.
func (r Rect) RightMid() Point { return Point{r.X + r.W, r.Y + r.H/2} }

// TopMid returns the midpoint of the top edge.
func (r Rect) TopMid() Point { return Point{r.X + r.W/2, r.Y + r.H} }

// BottomMid returns the midpoint of the bottom edge.
func (r Rect) BottomMid() Point { return Point{r.X + r.W/2, r.Y} }
