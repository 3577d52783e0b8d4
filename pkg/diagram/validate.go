package diagram

import (
	"errors"
	"fmt"
)

// Validation sentinels. Callers can match these with errors.Is to
// distinguish caller precondition violations from I/O failures.
var (
	// ErrEmptyShape marks a shape with non-positive width or height.
	ErrEmptyShape = errors.New("shape has no area")

	// ErrDegenerateConnector marks a connector whose endpoints coincide.
	ErrDegenerateConnector = errors.New("connector endpoints coincide")

	// ErrUnknownKind marks a shape kind outside the supported set.
	ErrUnknownKind = errors.New("unknown shape kind")
)

// Validate checks the diagram for geometric degeneracy. It does not
// clip or bounds-check: shapes may legally extend outside [0,1]^2.
// The renderer calls this before drawing anything, so a failed
// validation produces no partial output.
func (d *Diagram) Validate() error {
	for i, s := range d.Shapes {
		if s.Kind < KindBox || s.Kind > KindCylinder {
			return fmt.Errorf("shape %d: %w (%d)", i, ErrUnknownKind, s.Kind)
		}
		if s.Rect.Empty() {
			return fmt.Errorf("shape %d (%s): %w", i, s.Kind, ErrEmptyShape)
		}
	}
	for i, c := range d.Connectors {
		if c.From == c.To {
			return fmt.Errorf("connector %d at (%.3f, %.3f): %w",
				i, c.From.X, c.From.Y, ErrDegenerateConnector)
		}
	}
	for i, l := range d.Layers {
		if l.Rect.Empty() {
			return fmt.Errorf("layer %d (%q): %w", i, l.Title, ErrEmptyShape)
		}
	}
	return nil
}
