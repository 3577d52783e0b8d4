// Package diagram defines the declarative scene model consumed by the
// renderer.
//
// A [Diagram] is a flat description of one picture: an optional grid
// background, a title/subtitle pair, layer outlines, shapes, and
// directed connectors. Everything is positioned explicitly in the
// normalized [0,1]x[0,1] scene space from [github.com/archviz/archviz/pkg/geom];
// there is no automatic layout and no containment — a shape drawn inside
// a layer outline is a coordinate coincidence, not an ownership
// relationship.
//
// Specs are plain values built fresh per render call. Construct them
// directly, load them from TOML via the config package, or expand a
// role-flow template with the template subpackage.
package diagram
