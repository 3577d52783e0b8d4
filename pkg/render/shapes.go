package render

import (
	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/geom"
)

const (
	cornerRadius = 0.02  // rounded box corner, normalized
	cylinderCap  = 0.05  // cylinder cap ellipse height, normalized
	capInset     = 0.025 // cap center inset from the body's top/bottom edge
)

// drawShape renders one shape: geometry first, then its text policy.
// Containers with a title use the top-anchored layout; label-only
// shapes center their text.
func (cv *canvas) drawShape(s diagram.Shape) {
	fill := s.Fill
	if fill == "" {
		fill = diagram.ColorFill
	}
	stroke := s.Stroke
	if stroke == "" {
		stroke = diagram.ColorEdge
	}
	width := s.StrokeWidth
	if width == 0 {
		width = 1.2
	}

	switch s.Kind {
	case diagram.KindBox:
		cv.rect(s.Rect)
		cv.fillStroke(fill, stroke, width)
	case diagram.KindRoundedBox:
		cv.roundedRect(s.Rect, cornerRadius)
		cv.fillStroke(fill, stroke, width)
	case diagram.KindEllipse:
		cv.ellipse(s.Rect)
		cv.fillStroke(fill, stroke, width)
	case diagram.KindCylinder:
		cv.drawCylinder(s.Rect, fill, stroke, width)
		cv.drawCylinderText(s)
		return
	}

	if s.TopAnchored() {
		cv.drawTitleBody(s)
	} else {
		cv.drawCenteredLabel(s)
	}
}

// drawCylinder composes the database shape: a rectangular body plus two
// ellipse caps sharing its width, centered one cap-inset inside the
// body's top and bottom edges.
func (cv *canvas) drawCylinder(r geom.Rect, fill, stroke string, width float64) {
	body := geom.XYWH(r.X, r.Y+capInset, r.W, r.H-cylinderCap)
	cv.rect(body)
	cv.fillStroke(fill, stroke, width)

	bottom := geom.XYWH(r.X, r.Y, r.W, cylinderCap)
	cv.ellipse(bottom)
	cv.fillStroke(fill, stroke, width)

	top := geom.XYWH(r.X, r.Top()-cylinderCap, r.W, cylinderCap)
	cv.ellipse(top)
	cv.fillStroke(fill, stroke, width)
}

// drawLayer renders a grouping outline with its title centered just
// inside the top edge. Layers never fill: shapes behind them stay
// visible.
func (cv *canvas) drawLayer(l diagram.Layer) {
	stroke := l.Stroke
	if stroke == "" {
		stroke = diagram.ColorEdge
	}
	cv.rect(l.Rect)
	cv.dc.SetHexColor(stroke)
	cv.dc.SetLineWidth(cv.strokePx(1.4))
	cv.dc.Stroke()

	cv.drawText(l.Title, geom.Pt(l.Rect.Center().X, l.Rect.Top()-0.015), sizeLayer, false, diagram.ColorText, 0.5, 1)
}
