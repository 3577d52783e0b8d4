package template

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/geom"
)

func baseSpec() Spec {
	return Spec{
		Role:    "Reviewer",
		Process: "Review Workflow",
		Actors:  []string{"Analyst", "Lead"},
		Actions: []string{"Open Case", "Annotate", "Close Case"},
		Notes:   []string{"n1", "n2"},
	}
}

func actorShapes(d *diagram.Diagram) []diagram.Shape {
	var out []diagram.Shape
	for _, s := range d.Shapes {
		if s.Kind == diagram.KindBox && s.Rect.X == actorX {
			out = append(out, s)
		}
	}
	return out
}

func actionShapes(d *diagram.Diagram) []diagram.Shape {
	var out []diagram.Shape
	for _, s := range d.Shapes {
		if s.Kind == diagram.KindBox && s.Rect.X == actionX {
			out = append(out, s)
		}
	}
	return out
}

func panels(d *diagram.Diagram) []diagram.Shape {
	var out []diagram.Shape
	for _, s := range d.Shapes {
		if s.Kind == diagram.KindRoundedBox {
			out = append(out, s)
		}
	}
	return out
}

func TestExpandCounts(t *testing.T) {
	actors := []string{"A", "B", "C"}
	actions := []string{"S1", "S2", "S3", "S4", "S5"}

	for na := 1; na <= MaxActors; na++ {
		for ns := 1; ns <= MaxActions; ns++ {
			spec := baseSpec()
			spec.Actors = actors[:na]
			spec.Actions = actions[:ns]

			d, err := Expand(spec)
			if err != nil {
				t.Fatalf("Expand(%d actors, %d actions) error: %v", na, ns, err)
			}

			if got := len(actorShapes(d)); got != na {
				t.Errorf("%d/%d: actor shapes = %d, want %d", na, ns, got, na)
			}
			if got := len(actionShapes(d)); got != ns {
				t.Errorf("%d/%d: action shapes = %d, want %d", na, ns, got, ns)
			}
			wantConn := na + ns + 5
			if got := len(d.Connectors); got != wantConn {
				t.Errorf("%d/%d: connectors = %d, want %d", na, ns, got, wantConn)
			}
			if err := d.Validate(); err != nil {
				t.Errorf("%d/%d: expanded diagram invalid: %v", na, ns, err)
			}
		}
	}
}

func TestExpandScenario(t *testing.T) {
	// 2 actors, 3 actions, 2 notes: the canonical instancing scenario.
	d, err := Expand(baseSpec())
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}

	acts := actorShapes(d)
	if len(acts) != 2 {
		t.Fatalf("actor shapes = %d, want 2", len(acts))
	}
	wantY := []float64{0.72, 0.61}
	for i, s := range acts {
		if !near(s.Rect.Y, wantY[i]) {
			t.Errorf("actor %d origin y = %v, want %v", i, s.Rect.Y, wantY[i])
		}
	}

	steps := actionShapes(d)
	if len(steps) != 3 {
		t.Fatalf("action shapes = %d, want 3", len(steps))
	}
	wantCenters := []float64{0.762, 0.672, 0.582}
	for i, s := range steps {
		if got := s.Rect.Center().Y; !near(got, wantCenters[i]) {
			t.Errorf("action %d center y = %v, want %v", i, got, wantCenters[i])
		}
	}

	if got := len(d.Connectors); got != 10 {
		t.Errorf("connectors = %d, want 10 (2 actors + 3 actions + 5 skeleton)", got)
	}

	ps := panels(d)
	if len(ps) != 1 {
		t.Fatalf("panels = %d, want 1 (no audit notes supplied)", len(ps))
	}
	if got := len(ps[0].VisibleBody()); got != 2 {
		t.Errorf("notes panel visible lines = %d, want 2", got)
	}
	if !ps[0].Bulleted {
		t.Error("notes panel must render bulleted lines")
	}
}

func TestExpandActorWiring(t *testing.T) {
	spec := baseSpec()
	spec.Actors = []string{"A", "B", "C"}

	d, err := Expand(spec)
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}

	target := geom.Pt(0.23, 0.60)
	wantCurve := []float64{0, 0.05, 0.09}
	// Actor connectors come first, in stack order.
	for i := 0; i < 3; i++ {
		c := d.Connectors[i]
		if c.To != target {
			t.Errorf("actor %d connector converges at %+v, want %+v", i, c.To, target)
		}
		if !near(c.Curvature, wantCurve[i]) {
			t.Errorf("actor %d curvature = %v, want %v", i, c.Curvature, wantCurve[i])
		}
		wantFrom := geom.Pt(actorX+actorW, 0.76-actorPitch*float64(i))
		if !near(c.From.X, wantFrom.X) || !near(c.From.Y, wantFrom.Y) {
			t.Errorf("actor %d connector from %+v, want %+v", i, c.From, wantFrom)
		}
		if i == 0 && c.Label != "Access" {
			t.Errorf("first actor connector label = %q, want %q", c.Label, "Access")
		}
		if i > 0 && c.Label != "" {
			t.Errorf("actor %d connector label = %q, want empty", i, c.Label)
		}
	}
}

func TestExpandReadWriteTracksLastAction(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		spec := baseSpec()
		spec.Actions = []string{"S1", "S2", "S3", "S4", "S5"}[:n]

		d, err := Expand(spec)
		if err != nil {
			t.Fatalf("Expand(%d actions) error: %v", n, err)
		}

		var rw *diagram.Connector
		for i := range d.Connectors {
			if d.Connectors[i].Label == "Read/Write" {
				rw = &d.Connectors[i]
			}
		}
		if rw == nil {
			t.Fatalf("%d actions: no Read/Write connector", n)
		}
		wantFrom := geom.Pt(actionX+actionW, actionSlots[n-1])
		if !near(rw.From.X, wantFrom.X) || !near(rw.From.Y, wantFrom.Y) {
			t.Errorf("%d actions: Read/Write from %+v, want %+v", n, rw.From, wantFrom)
		}
	}
}

func TestExpandAuditPanel(t *testing.T) {
	spec := baseSpec()
	spec.AuditNotes = []string{"actor identity", "before/after state"}

	d, err := Expand(spec)
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}

	ps := panels(d)
	if len(ps) != 2 {
		t.Fatalf("panels = %d, want 2 with audit notes", len(ps))
	}
}

func TestExpandCapacity(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr error
	}{
		{"no actors", func(s *Spec) { s.Actors = nil }, ErrNoActors},
		{"four actors", func(s *Spec) { s.Actors = []string{"a", "b", "c", "d"} }, ErrTooManyActors},
		{"no actions", func(s *Spec) { s.Actions = nil }, ErrNoActions},
		{"six actions", func(s *Spec) {
			s.Actions = []string{"1", "2", "3", "4", "5", "6"}
		}, ErrTooManyActions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := baseSpec()
			tt.mutate(&spec)
			if _, err := Expand(spec); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expand() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandDeterministic(t *testing.T) {
	a, err := Expand(baseSpec())
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}
	b, err := Expand(baseSpec())
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical specs expanded to different diagrams")
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
