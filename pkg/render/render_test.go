package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/geom"
)

func sampleDiagram() *diagram.Diagram {
	d := &diagram.Diagram{
		Title:     "Sample",
		Subtitle:  "smoke test scene",
		GridSteps: 10,
	}
	d.AddLayer(diagram.Layer{Rect: geom.XYWH(0.05, 0.55, 0.4, 0.4), Title: "Layer", Stroke: diagram.AccentGreen})
	d.AddShape(diagram.Shape{Kind: diagram.KindBox, Rect: geom.XYWH(0.1, 0.7, 0.2, 0.1), Label: "box"})
	d.AddShape(diagram.Shape{Kind: diagram.KindRoundedBox, Rect: geom.XYWH(0.1, 0.4, 0.3, 0.2),
		Title: "Panel", Body: []string{"one", "two"}, Bulleted: true, MaxLines: 4})
	d.AddShape(diagram.Shape{Kind: diagram.KindEllipse, Rect: geom.XYWH(0.5, 0.5, 0.2, 0.15), Label: "proc"})
	d.AddShape(diagram.Shape{Kind: diagram.KindCylinder, Rect: geom.XYWH(0.8, 0.3, 0.1, 0.25), Label: "db", Detail: "rows"})
	d.AddConnector(diagram.Connector{From: geom.Pt(0.3, 0.75), To: geom.Pt(0.5, 0.58), Label: "flow"})
	d.AddConnector(diagram.Connector{From: geom.Pt(0.7, 0.57), To: geom.Pt(0.8, 0.42), Curvature: 0.05})
	return d
}

func decodeSize(t *testing.T, data []byte) (w, h int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestRenderOutputSize(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		wantW int
		wantH int
	}{
		{"defaults", Options{}, 1600, 900},
		{"explicit size", Options{Width: 400, Height: 300}, 400, 300},
		{"scaled", Options{Width: 400, Height: 300, Scale: 2}, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Render(sampleDiagram(), tt.opts)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			w, h := decodeSize(t, data)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("output size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderSizeIndependentOfContent(t *testing.T) {
	empty := &diagram.Diagram{Title: "empty"}
	full := sampleDiagram()
	opts := Options{Width: 320, Height: 200}

	a, err := Render(empty, opts)
	if err != nil {
		t.Fatalf("Render(empty) error: %v", err)
	}
	b, err := Render(full, opts)
	if err != nil {
		t.Fatalf("Render(full) error: %v", err)
	}

	aw, ah := decodeSize(t, a)
	bw, bh := decodeSize(t, b)
	if aw != bw || ah != bh {
		t.Errorf("content changed output size: %dx%d vs %dx%d", aw, ah, bw, bh)
	}
}

func TestRenderDeterministic(t *testing.T) {
	opts := Options{Width: 320, Height: 200}
	a, err := Render(sampleDiagram(), opts)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	b, err := Render(sampleDiagram(), opts)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different PNG bytes")
	}
}

func TestRenderRejectsInvalidDiagram(t *testing.T) {
	tests := []struct {
		name    string
		diagram *diagram.Diagram
		wantErr error
	}{
		{
			name: "degenerate connector",
			diagram: &diagram.Diagram{
				Connectors: []diagram.Connector{{From: geom.Pt(0.5, 0.5), To: geom.Pt(0.5, 0.5)}},
			},
			wantErr: diagram.ErrDegenerateConnector,
		},
		{
			name: "zero size shape",
			diagram: &diagram.Diagram{
				Shapes: []diagram.Shape{{Kind: diagram.KindBox, Rect: geom.XYWH(0.1, 0.1, 0, 0)}},
			},
			wantErr: diagram.ErrEmptyShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Render(tt.diagram, Options{Width: 100, Height: 100})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render error = %v, want %v", err, tt.wantErr)
			}
			if data != nil {
				t.Error("failed render must produce no partial output")
			}
		})
	}
}

func TestOptionsPixelSize(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		wantW int
		wantH int
	}{
		{"zero values take defaults", Options{}, 1600, 900},
		{"scale only", Options{Scale: 0.5}, 800, 450},
		{"full", Options{Width: 1000, Height: 500, Scale: 1.5}, 1500, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.opts.PixelSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("PixelSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
