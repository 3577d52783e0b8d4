// Package template expands a small role-flow configuration into a full
// shape/connector diagram.
//
// Every expansion produces the same five-region skeleton — actor stack,
// role gateway, central process, action stack, and data stores — with
// positions taken from fixed layout tables rather than a computed
// layout. The tables keep every generated diagram visually consistent
// across different inputs (same skeleton, different labels) while
// avoiding a general constraint solver; the cardinalities are small and
// bounded, so overflow is rejected eagerly instead of solved.
package template

import (
	"errors"
	"fmt"

	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/geom"
)

// Capacity limits of the fixed layout tables.
const (
	MaxActors  = 3
	MaxActions = 5
)

// Capacity sentinels.
var (
	ErrNoActors       = errors.New("template needs at least one actor")
	ErrNoActions      = errors.New("template needs at least one action")
	ErrTooManyActors  = fmt.Errorf("template supports at most %d actors", MaxActors)
	ErrTooManyActions = fmt.Errorf("template supports at most %d actions", MaxActions)
)

// actionSlots holds the vertical centers of the action stack, consumed
// from the front for however many actions are supplied. This table is
// the load-bearing layout structure: it guarantees non-overlapping
// placement for 1..5 items without a stacking formula.
var actionSlots = [MaxActions]float64{0.762, 0.672, 0.582, 0.492, 0.402}

// actorCurvatures fans converging actor arrows into the gateway so they
// do not overlap each other.
var actorCurvatures = [MaxActors]float64{0, 0.05, 0.09}

// Actor stack geometry: boxes start at actorTopY and step down by
// actorPitch per actor.
const (
	actorX     = 0.04
	actorW     = 0.14
	actorH     = 0.08
	actorTopY  = 0.72
	actorPitch = 0.11
)

// Action stack geometry (vertical centers come from actionSlots).
const (
	actionX = 0.68
	actionW = 0.16
	actionH = 0.065
)

// Fixed skeleton positions.
var (
	gatewayRect    = geom.XYWH(0.23, 0.56, 0.14, 0.08)
	processRect    = geom.XYWH(0.45, 0.49, 0.18, 0.16)
	validationRect = geom.XYWH(0.41, 0.70, 0.22, 0.06)
	primaryRect    = geom.XYWH(0.88, 0.48, 0.09, 0.22)
	auditRect      = geom.XYWH(0.88, 0.18, 0.09, 0.20)
	notesRect      = geom.XYWH(0.56, 0.16, 0.22, 0.16)
	auditNotesRect = geom.XYWH(0.25, 0.16, 0.29, 0.16)
)

// panelMaxLines caps visible bullet lines per notes panel.
const panelMaxLines = 4

// StoreLabel names one data-store cylinder.
type StoreLabel struct {
	Title  string
	Detail string
}

// Spec is the role-flow instancing input.
//
// Actors (1..3) stack on the left and converge on the role gateway.
// Actions (1..5) stack on the right, fanned out from the central
// process. Notes and AuditNotes fill the bullet panels beneath the
// diagram; the audit panel only appears when AuditNotes is non-empty.
type Spec struct {
	Role    string // gateway box label, also seeds the default title
	Process string // central process ellipse label

	Actors  []string
	Actions []string

	Notes      []string
	AuditNotes []string

	PrimaryStore StoreLabel
	AuditStore   StoreLabel

	Title       string // diagram title; default "<Role> Data Flow"
	Subtitle    string
	PolicyLabel string // validation box label
	NotesTitle  string
	AuditTitle  string
}

// withDefaults fills zero-valued optional fields.
func (s Spec) withDefaults() Spec {
	if s.Title == "" {
		s.Title = s.Role + " Data Flow"
	}
	if s.Subtitle == "" {
		s.Subtitle = "Role-centric operational flow"
	}
	if s.PolicyLabel == "" {
		s.PolicyLabel = "Policy + Ownership Validation"
	}
	if s.NotesTitle == "" {
		s.NotesTitle = "Notes"
	}
	if s.AuditTitle == "" {
		s.AuditTitle = "Audit Focus"
	}
	if s.PrimaryStore.Title == "" {
		s.PrimaryStore.Title = "Primary Store"
	}
	if s.AuditStore.Title == "" {
		s.AuditStore.Title = "Audit Logs"
	}
	return s
}

// validate checks the fixed-table capacities up front. Overflow is a
// contract violation, not a truncation opportunity: silently dropping
// an actor would render a diagram that lies about its input.
func (s Spec) validate() error {
	switch {
	case len(s.Actors) == 0:
		return ErrNoActors
	case len(s.Actors) > MaxActors:
		return fmt.Errorf("%w, got %d", ErrTooManyActors, len(s.Actors))
	case len(s.Actions) == 0:
		return ErrNoActions
	case len(s.Actions) > MaxActions:
		return fmt.Errorf("%w, got %d", ErrTooManyActions, len(s.Actions))
	}
	return nil
}

// Expand instantiates the five-region layout for the spec.
//
// The result always contains exactly len(Actors) actor boxes,
// len(Actions) action boxes, and len(Actors)+len(Actions)+5
// connectors: gateway→process, validation→process, read/write,
// audit-event, and data-response form the fixed skeleton.
func Expand(spec Spec) (*diagram.Diagram, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	spec = spec.withDefaults()

	d := &diagram.Diagram{
		Title:     spec.Title,
		Subtitle:  spec.Subtitle,
		GridSteps: 50,
	}

	addActors(d, spec)
	addHub(d, spec)
	addActions(d, spec)
	addStores(d, spec)
	addPanels(d, spec)

	return d, nil
}

// addActors stacks the actor boxes top-down and wires each one to the
// gateway's left mid-point with increasing curvature.
func addActors(d *diagram.Diagram, spec Spec) {
	target := gatewayRect.LeftMid()
	for i, name := range spec.Actors {
		r := geom.XYWH(actorX, actorTopY-actorPitch*float64(i), actorW, actorH)
		d.AddShape(diagram.Shape{
			Kind:     diagram.KindBox,
			Rect:     r,
			Label:    name,
			FontSize: 8.6,
		})

		c := diagram.Connector{
			From:      r.RightMid(),
			To:        target,
			Curvature: actorCurvatures[i],
		}
		if i == 0 {
			c.Label = "Access"
		}
		d.AddConnector(c)
	}
}

// addHub places the gateway box, the central process ellipse, and the
// policy box gating it.
func addHub(d *diagram.Diagram, spec Spec) {
	d.AddShape(diagram.Shape{Kind: diagram.KindBox, Rect: gatewayRect, Label: spec.Role})
	d.AddShape(diagram.Shape{Kind: diagram.KindEllipse, Rect: processRect, Label: spec.Process, FontSize: 9.6})
	d.AddShape(diagram.Shape{Kind: diagram.KindBox, Rect: validationRect, Label: spec.PolicyLabel, FontSize: 8.7})

	d.AddConnector(diagram.Connector{
		From:  gatewayRect.RightMid(),
		To:    processRect.LeftMid(),
		Label: "Authorized request",
	})
	d.AddConnector(diagram.Connector{
		From:  validationRect.BottomMid(),
		To:    geom.Pt(validationRect.BottomMid().X, processRect.Top()),
		Label: "Policy checks",
	})
}

// addActions stacks the action boxes on their fixed slot centers and
// fans one arrow out of the process ellipse per action.
func addActions(d *diagram.Diagram, spec Spec) {
	source := processRect.RightMid()
	for i, step := range spec.Actions {
		r := geom.XYWH(actionX, actionSlots[i]-actionH/2, actionW, actionH)
		d.AddShape(diagram.Shape{
			Kind:     diagram.KindBox,
			Rect:     r,
			Label:    step,
			FontSize: 8.3,
		})
		d.AddConnector(diagram.Connector{
			From:      source,
			To:        geom.Pt(actionX, actionSlots[i]),
			Curvature: 0.02,
		})
	}
}

// addStores places the two cylinders and the fixed data-flow arrows:
// read/write from the last action box, the audit-event link between the
// stores, and the response flowing back to the process.
func addStores(d *diagram.Diagram, spec Spec) {
	d.AddShape(diagram.Shape{
		Kind:   diagram.KindCylinder,
		Rect:   primaryRect,
		Label:  spec.PrimaryStore.Title,
		Detail: spec.PrimaryStore.Detail,
	})
	d.AddShape(diagram.Shape{
		Kind:   diagram.KindCylinder,
		Rect:   auditRect,
		Label:  spec.AuditStore.Title,
		Detail: spec.AuditStore.Detail,
	})

	lastSlot := actionSlots[len(spec.Actions)-1]
	d.AddConnector(diagram.Connector{
		From:  geom.Pt(actionX+actionW, lastSlot),
		To:    primaryRect.LeftMid(),
		Label: "Read/Write",
	})
	d.AddConnector(diagram.Connector{
		From:  primaryRect.BottomMid(),
		To:    auditRect.TopMid(),
		Label: "Audit event",
	})
	d.AddConnector(diagram.Connector{
		From:      geom.Pt(primaryRect.Left(), primaryRect.Center().Y-0.03),
		To:        geom.Pt(processRect.Right(), processRect.Center().Y-0.04),
		Curvature: -0.1,
		Label:     "Data response",
	})
}

// addPanels renders the bounded bullet panels beneath the diagram. Both
// panels keep the silent line cap: panels favor a fixed number of
// readable rows over exhaustive content.
func addPanels(d *diagram.Diagram, spec Spec) {
	if len(spec.AuditNotes) > 0 {
		d.AddShape(panel(auditNotesRect, spec.AuditTitle, spec.AuditNotes))
	}
	d.AddShape(panel(notesRect, spec.NotesTitle, spec.Notes))
}

func panel(r geom.Rect, title string, lines []string) diagram.Shape {
	return diagram.Shape{
		Kind:      diagram.KindRoundedBox,
		Rect:      r,
		Fill:      diagram.ColorPanelFill,
		Title:     title,
		Body:      lines,
		MaxLines:  panelMaxLines,
		Bulleted:  true,
		TitleSize: 8.6,
		BodySize:  8,
	}
}
