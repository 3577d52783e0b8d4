package diagram

import (
	"errors"
	"testing"

	"github.com/archviz/archviz/pkg/geom"
)

func validShape() Shape {
	return Shape{Kind: KindBox, Rect: geom.XYWH(0.1, 0.1, 0.2, 0.1), Label: "ok"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		diagram Diagram
		wantErr error
	}{
		{
			name:    "empty diagram is valid",
			diagram: Diagram{Title: "t"},
		},
		{
			name: "valid shapes and connectors",
			diagram: Diagram{
				Shapes: []Shape{validShape(), {Kind: KindCylinder, Rect: geom.XYWH(0.5, 0.5, 0.1, 0.2)}},
				Connectors: []Connector{
					{From: geom.Pt(0.1, 0.1), To: geom.Pt(0.5, 0.5)},
				},
			},
		},
		{
			name: "zero width shape",
			diagram: Diagram{
				Shapes: []Shape{{Kind: KindBox, Rect: geom.XYWH(0.1, 0.1, 0, 0.1)}},
			},
			wantErr: ErrEmptyShape,
		},
		{
			name: "negative height shape",
			diagram: Diagram{
				Shapes: []Shape{{Kind: KindEllipse, Rect: geom.XYWH(0.1, 0.1, 0.2, -0.1)}},
			},
			wantErr: ErrEmptyShape,
		},
		{
			name: "unknown kind",
			diagram: Diagram{
				Shapes: []Shape{{Kind: Kind(42), Rect: geom.XYWH(0, 0, 0.1, 0.1)}},
			},
			wantErr: ErrUnknownKind,
		},
		{
			name: "degenerate connector",
			diagram: Diagram{
				Connectors: []Connector{{From: geom.Pt(0.3, 0.3), To: geom.Pt(0.3, 0.3)}},
			},
			wantErr: ErrDegenerateConnector,
		},
		{
			name: "empty layer",
			diagram: Diagram{
				Layers: []Layer{{Rect: geom.XYWH(0, 0, 0.5, 0), Title: "flat"}},
			},
			wantErr: ErrEmptyShape,
		},
		{
			name: "shape outside unit square is legal",
			diagram: Diagram{
				Shapes: []Shape{{Kind: KindBox, Rect: geom.XYWH(0.9, 0.9, 0.3, 0.3)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.diagram.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVisibleBody(t *testing.T) {
	tests := []struct {
		name     string
		body     []string
		maxLines int
		want     int
	}{
		{"no cap", []string{"a", "b", "c"}, 0, 3},
		{"under cap", []string{"a", "b"}, 4, 2},
		{"at cap", []string{"a", "b", "c", "d"}, 4, 4},
		{"over cap keeps first k", []string{"a", "b", "c", "d", "e", "f"}, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Shape{Body: tt.body, MaxLines: tt.maxLines}
			got := s.VisibleBody()
			if len(got) != tt.want {
				t.Fatalf("VisibleBody() returned %d lines, want %d", len(got), tt.want)
			}
			for i, line := range got {
				if line != tt.body[i] {
					t.Errorf("line %d = %q, want %q (original order must hold)", i, line, tt.body[i])
				}
			}
		})
	}
}

func TestConnectorControl(t *testing.T) {
	tests := []struct {
		name string
		c    Connector
		want geom.Point
	}{
		{
			name: "zero curvature sits on chord midpoint",
			c:    Connector{From: geom.Pt(0, 0), To: geom.Pt(0.4, 0)},
			want: geom.Pt(0.2, 0),
		},
		{
			name: "positive curvature bows left of travel",
			c:    Connector{From: geom.Pt(0, 0), To: geom.Pt(0.4, 0), Curvature: 0.1},
			want: geom.Pt(0.2, 0.04),
		},
		{
			name: "negative curvature bows right of travel",
			c:    Connector{From: geom.Pt(0, 0), To: geom.Pt(0.4, 0), Curvature: -0.1},
			want: geom.Pt(0.2, -0.04),
		},
		{
			name: "vertical chord bows horizontally",
			c:    Connector{From: geom.Pt(0.5, 0.2), To: geom.Pt(0.5, 0.6), Curvature: 0.05},
			want: geom.Pt(0.48, 0.4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Control()
			if !almost(got.X, tt.want.X) || !almost(got.Y, tt.want.Y) {
				t.Errorf("Control() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func almost(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
