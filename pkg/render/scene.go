package render

import (
	"bytes"
	"fmt"

	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/geom"
)

// Title block placement, from the house style.
var (
	titlePos    = geom.Pt(0.02, 0.975)
	subtitlePos = geom.Pt(0.02, 0.945)
)

// Render rasterizes the diagram to PNG bytes.
//
// The diagram is validated first; a validation failure produces no
// output at all. Z-order is fixed: background, grid, title text, layer
// outlines, shapes in list order, connectors in list order — connectors
// always render above shapes so arrowheads are never occluded.
func Render(d *diagram.Diagram, opts Options) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid diagram %q: %w", d.Title, err)
	}
	opts = opts.withDefaults()

	cv := newCanvas(opts)
	defer cv.close()

	cv.drawBackground(d)
	cv.drawGrid(d.GridSteps)
	cv.drawHeading(d)

	for _, l := range d.Layers {
		cv.drawLayer(l)
	}
	for _, s := range d.Shapes {
		cv.drawShape(s)
	}
	for _, c := range d.Connectors {
		cv.drawConnector(c)
	}

	var buf bytes.Buffer
	if err := cv.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode %q: %w", d.Title, err)
	}
	return buf.Bytes(), nil
}

func (cv *canvas) drawBackground(d *diagram.Diagram) {
	bg := d.Background
	if bg == "" {
		bg = diagram.ColorBackground
	}
	cv.dc.SetHexColor(bg)
	cv.dc.DrawRectangle(0, 0, cv.w, cv.h)
	cv.dc.Fill()
}

// drawGrid draws steps+1 evenly spaced guide lines along each axis,
// always beneath everything else.
func (cv *canvas) drawGrid(steps int) {
	if steps <= 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		cv.line(geom.Pt(p, 0), geom.Pt(p, 1), diagram.ColorGrid, 0.35)
		cv.line(geom.Pt(0, p), geom.Pt(1, p), diagram.ColorGrid, 0.35)
	}
}

func (cv *canvas) drawHeading(d *diagram.Diagram) {
	cv.drawText(d.Title, titlePos, sizeTitle, true, diagram.ColorText, 0, 1)
	cv.drawText(d.Subtitle, subtitlePos, sizeSubtitle, false, diagram.ColorSubtext, 0, 1)
}
