package render

import (
	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/geom"
)

// Top-anchored layout metrics, in normalized scene units.
const (
	textInsetX    = 0.012 // left padding inside a titled shape
	titleDrop     = 0.022 // title baseline area below the top edge
	bodyStart     = 0.052 // first body line below the top edge
	lineStep      = 0.028 // vertical pitch between body lines
	detailOffsetY = 0.02  // cylinder label/detail offset from midpoint
)

// Default point sizes, matching the house diagram style.
const (
	sizeTitle    = 20.0
	sizeSubtitle = 10.0
	sizeLayer    = 11.0
	sizeLabel    = 9.5
	sizeBoxTitle = 11.0
	sizeBoxBody  = 9.0
	sizeDetail   = 8.3
	sizeConnLbl  = 8.0
)

// drawText draws s at scene point p with the given anchor. ax/ay follow
// gg's anchoring convention: (0,1) pins the top-left corner to p,
// (0.5,0.5) centers the text on p. No-ops when no font is available.
func (cv *canvas) drawText(s string, p geom.Point, size float64, bold bool, color string, ax, ay float64) {
	if s == "" {
		return
	}
	face := cv.fonts.face(cv.strokePx(size), bold)
	if face == nil {
		return
	}
	cv.dc.SetFont(face)
	cv.dc.SetHexColor(color)
	x, y := cv.px(p)
	cv.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// drawCenteredLabel implements the label-only text policy: the label is
// centered on the shape both horizontally and vertically.
func (cv *canvas) drawCenteredLabel(s diagram.Shape) {
	size := s.FontSize
	if size == 0 {
		size = sizeLabel
	}
	cv.drawText(s.Label, s.Rect.Center(), size, false, diagram.ColorText, 0.5, 0.5)
}

// drawTitleBody implements the container text policy: bold title at the
// top-left inset, body lines beneath in order, oldest nearest the
// title. Lines past the MaxLines cap are silently not drawn.
func (cv *canvas) drawTitleBody(s diagram.Shape) {
	titleSize := s.TitleSize
	if titleSize == 0 {
		titleSize = sizeBoxTitle
	}
	bodySize := s.BodySize
	if bodySize == 0 {
		bodySize = sizeBoxBody
	}

	left := s.Rect.X + textInsetX
	cv.drawText(s.Title, geom.Pt(left, s.Rect.Top()-titleDrop), titleSize, true, diagram.ColorText, 0, 1)

	y := s.Rect.Top() - bodyStart
	for _, line := range s.VisibleBody() {
		if s.Bulleted {
			line = "- " + line
		}
		cv.drawText(line, geom.Pt(left, y), bodySize, false, "#333333", 0, 1)
		y -= lineStep
	}
}

// drawCylinderText centers the title/detail pair about the body's
// vertical midpoint, title slightly above and detail slightly below.
func (cv *canvas) drawCylinderText(s diagram.Shape) {
	size := s.FontSize
	if size == 0 {
		size = sizeLabel
	}
	c := s.Rect.Center()
	cv.drawText(s.Label, geom.Pt(c.X, c.Y+detailOffsetY), size, false, diagram.ColorText, 0.5, 0.5)
	if s.Detail != "" {
		cv.drawText(s.Detail, geom.Pt(c.X, c.Y-detailOffsetY), sizeDetail, false, "#444444", 0.5, 0.5)
	}
}
