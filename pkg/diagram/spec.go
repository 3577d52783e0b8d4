package diagram

import "github.com/archviz/archviz/pkg/geom"

// Default palette, lifted from the house diagram style.
const (
	ColorBackground = "#f3f3f3"
	ColorGrid       = "#e1e1e1"
	ColorEdge       = "#3b3b3b"
	ColorText       = "#1f1f1f"
	ColorSubtext    = "#3f3f3f"
	ColorFill       = "#f8f8f8"
	ColorPanelFill  = "#f9f9f9"
	ColorConnector  = "#424242"

	AccentBlue   = "#3269b1"
	AccentGreen  = "#3f8f5a"
	AccentPurple = "#6a4fc9"
)

// Kind selects the geometry primitive for a shape.
type Kind int

const (
	// KindBox is a sharp-cornered rectangle.
	KindBox Kind = iota
	// KindRoundedBox is a rectangle with rounded corners.
	KindRoundedBox
	// KindEllipse is an ellipse inscribed in the shape's rect.
	KindEllipse
	// KindCylinder is a database cylinder: a rectangular body with an
	// ellipse cap at the top and bottom edges.
	KindCylinder
)

// String returns the TOML/CLI name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRoundedBox:
		return "rounded"
	case KindEllipse:
		return "ellipse"
	case KindCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Shape is one renderable element plus its embedded text.
//
// Text follows one of two policies, chosen by which fields are set:
//
//   - Label-only shapes center Label on the shape (both axes). Cylinders
//     additionally center Detail just below the midpoint.
//   - Title+Body shapes anchor text at the top-left inset: Title in bold,
//     Body lines beneath in order, oldest nearest the title.
//
// Body lines beyond MaxLines (when MaxLines > 0) are silently not drawn;
// diagrams favor a fixed number of readable rows over exhaustive content.
type Shape struct {
	Kind Kind
	Rect geom.Rect

	Fill        string
	Stroke      string
	StrokeWidth float64

	Label  string // centered single label
	Detail string // cylinder subtitle, centered below the midpoint

	Title    string   // bold heading for top-anchored layout
	Body     []string // ordered body lines
	MaxLines int      // visible body line cap; 0 = no cap
	Bulleted bool     // prefix body lines with "- "

	FontSize  float64 // label/detail size; 0 = default
	TitleSize float64 // title size; 0 = default
	BodySize  float64 // body line size; 0 = default
}

// TopAnchored reports whether the shape uses the title+body text layout
// instead of a centered label.
func (s Shape) TopAnchored() bool { return s.Title != "" || len(s.Body) > 0 }

// VisibleBody returns the body lines that will actually draw, applying
// the MaxLines cap.
func (s Shape) VisibleBody() []string {
	if s.MaxLines > 0 && len(s.Body) > s.MaxLines {
		return s.Body[:s.MaxLines]
	}
	return s.Body
}

// Connector is a directed arrow between two scene points.
//
// Curvature uses arc3 semantics: the path is a quadratic curve whose
// control point sits at the chord midpoint, offset along the chord's
// left normal by Curvature times the chord length. Zero curvature gives
// a straight segment. The arrowhead is drawn at To.
type Connector struct {
	From, To  geom.Point
	Curvature float64
	Label     string
	Color     string
	Width     float64
}

// Control returns the quadratic control point implied by the curvature.
func (c Connector) Control() geom.Point {
	chord := c.To.Sub(c.From)
	mid := c.From.Lerp(c.To, 0.5)
	return mid.Add(chord.Normal().Scale(c.Curvature * chord.Len()))
}

// Layer is a named rectangular outline grouping shapes visually. It has
// no layout role: children are positioned independently in the same flat
// shape list.
type Layer struct {
	Rect   geom.Rect
	Title  string
	Stroke string
}

// Diagram is a complete scene: everything needed to render one image.
type Diagram struct {
	Title      string
	Subtitle   string
	Background string // hex fill; empty = ColorBackground
	GridSteps  int    // draws GridSteps+1 guide lines per axis when > 0

	Layers     []Layer
	Shapes     []Shape
	Connectors []Connector
}

// AddShape appends s and returns the diagram for chaining.
func (d *Diagram) AddShape(s Shape) *Diagram {
	d.Shapes = append(d.Shapes, s)
	return d
}

// AddConnector appends c and returns the diagram for chaining.
func (d *Diagram) AddConnector(c Connector) *Diagram {
	d.Connectors = append(d.Connectors, c)
	return d
}

// AddLayer appends l and returns the diagram for chaining.
func (d *Diagram) AddLayer(l Layer) *Diagram {
	d.Layers = append(d.Layers, l)
	return d
}
