// Package config loads diagram specifications from TOML files.
//
// A spec file declares its kind up front and carries exactly one of the
// two payloads:
//
//	kind = "diagram"   # a full scene: layers, shapes, connectors
//	kind = "roleflow"  # a role-flow template, expanded on Build
//
// Rects are [x, y, w, h] and points [x, y], both in the normalized
// scene space with the origin at the bottom-left.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/diagram/template"
	"github.com/archviz/archviz/pkg/geom"
)

// Spec file kinds.
const (
	KindDiagram  = "diagram"
	KindRoleFlow = "roleflow"
)

// ErrUnknownSpecKind marks a file whose kind is not supported.
var ErrUnknownSpecKind = errors.New("unknown spec kind")

// File is a parsed spec file.
type File struct {
	Kind     string        `toml:"kind"`
	Name     string        `toml:"name"` // artifact base name
	Diagram  *diagramSpec  `toml:"diagram"`
	RoleFlow *roleFlowSpec `toml:"roleflow"`
}

type diagramSpec struct {
	Title      string          `toml:"title"`
	Subtitle   string          `toml:"subtitle"`
	Background string          `toml:"background"`
	GridSteps  int             `toml:"grid_steps"`
	Layers     []layerSpec     `toml:"layers"`
	Shapes     []shapeSpec     `toml:"shapes"`
	Connectors []connectorSpec `toml:"connectors"`
}

type layerSpec struct {
	Title  string     `toml:"title"`
	Rect   [4]float64 `toml:"rect"`
	Stroke string     `toml:"stroke"`
}

type shapeSpec struct {
	Kind        string     `toml:"kind"`
	Rect        [4]float64 `toml:"rect"`
	Fill        string     `toml:"fill"`
	Stroke      string     `toml:"stroke"`
	StrokeWidth float64    `toml:"stroke_width"`
	Label       string     `toml:"label"`
	Detail      string     `toml:"detail"`
	Title       string     `toml:"title"`
	Body        []string   `toml:"body"`
	MaxLines    int        `toml:"max_lines"`
	Bulleted    bool       `toml:"bulleted"`
	FontSize    float64    `toml:"font_size"`
	TitleSize   float64    `toml:"title_size"`
	BodySize    float64    `toml:"body_size"`
}

type connectorSpec struct {
	From      [2]float64 `toml:"from"`
	To        [2]float64 `toml:"to"`
	Curvature float64    `toml:"curvature"`
	Label     string     `toml:"label"`
	Color     string     `toml:"color"`
	Width     float64    `toml:"width"`
}

type roleFlowSpec struct {
	Role        string     `toml:"role"`
	Process     string     `toml:"process"`
	Actors      []string   `toml:"actors"`
	Actions     []string   `toml:"actions"`
	Notes       []string   `toml:"notes"`
	AuditNotes  []string   `toml:"audit_notes"`
	Title       string     `toml:"title"`
	Subtitle    string     `toml:"subtitle"`
	PolicyLabel string     `toml:"policy_label"`
	NotesTitle  string     `toml:"notes_title"`
	AuditTitle  string     `toml:"audit_title"`
	Primary     storeLabel `toml:"primary_store"`
	Audit       storeLabel `toml:"audit_store"`
}

type storeLabel struct {
	Title  string `toml:"title"`
	Detail string `toml:"detail"`
}

var shapeKinds = map[string]diagram.Kind{
	"box":      diagram.KindBox,
	"rounded":  diagram.KindRoundedBox,
	"ellipse":  diagram.KindEllipse,
	"cylinder": diagram.KindCylinder,
}

// Load parses a spec file and checks its kind.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	switch f.Kind {
	case KindDiagram:
		if f.Diagram == nil {
			return nil, fmt.Errorf("%s: kind %q needs a [diagram] table", path, f.Kind)
		}
	case KindRoleFlow:
		if f.RoleFlow == nil {
			return nil, fmt.Errorf("%s: kind %q needs a [roleflow] table", path, f.Kind)
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownSpecKind, f.Kind)
	}
	return &f, nil
}

// Build converts the parsed file into a renderable diagram, expanding
// role-flow templates as needed.
func (f *File) Build() (*diagram.Diagram, error) {
	switch f.Kind {
	case KindDiagram:
		return f.Diagram.build()
	case KindRoleFlow:
		return template.Expand(f.RoleFlow.spec())
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSpecKind, f.Kind)
	}
}

func (s *diagramSpec) build() (*diagram.Diagram, error) {
	d := &diagram.Diagram{
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		Background: s.Background,
		GridSteps:  s.GridSteps,
	}

	for _, l := range s.Layers {
		d.AddLayer(diagram.Layer{Rect: rect(l.Rect), Title: l.Title, Stroke: l.Stroke})
	}
	for i, sh := range s.Shapes {
		kind, ok := shapeKinds[sh.Kind]
		if !ok {
			return nil, fmt.Errorf("shape %d: %w: %q", i, diagram.ErrUnknownKind, sh.Kind)
		}
		d.AddShape(diagram.Shape{
			Kind:        kind,
			Rect:        rect(sh.Rect),
			Fill:        sh.Fill,
			Stroke:      sh.Stroke,
			StrokeWidth: sh.StrokeWidth,
			Label:       sh.Label,
			Detail:      sh.Detail,
			Title:       sh.Title,
			Body:        sh.Body,
			MaxLines:    sh.MaxLines,
			Bulleted:    sh.Bulleted,
			FontSize:    sh.FontSize,
			TitleSize:   sh.TitleSize,
			BodySize:    sh.BodySize,
		})
	}
	for _, c := range s.Connectors {
		d.AddConnector(diagram.Connector{
			From:      geom.Pt(c.From[0], c.From[1]),
			To:        geom.Pt(c.To[0], c.To[1]),
			Curvature: c.Curvature,
			Label:     c.Label,
			Color:     c.Color,
			Width:     c.Width,
		})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *roleFlowSpec) spec() template.Spec {
	return template.Spec{
		Role:         s.Role,
		Process:      s.Process,
		Actors:       s.Actors,
		Actions:      s.Actions,
		Notes:        s.Notes,
		AuditNotes:   s.AuditNotes,
		Title:        s.Title,
		Subtitle:     s.Subtitle,
		PolicyLabel:  s.PolicyLabel,
		NotesTitle:   s.NotesTitle,
		AuditTitle:   s.AuditTitle,
		PrimaryStore: template.StoreLabel{Title: s.Primary.Title, Detail: s.Primary.Detail},
		AuditStore:   template.StoreLabel{Title: s.Audit.Title, Detail: s.Audit.Detail},
	}
}

func rect(v [4]float64) geom.Rect { return geom.XYWH(v[0], v[1], v[2], v[3]) }
