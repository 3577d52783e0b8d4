// Package render rasterizes a diagram spec to PNG bytes.
//
// Rendering is a pure, synchronous, single-pass transform: each call
// allocates its own gg drawing context, maps the normalized [0,1]x[0,1]
// scene space onto the requested pixel resolution, draws background,
// grid, titles, layers, shapes, and connectors in fixed z-order, and
// encodes the result. No canvas state survives between calls.
//
// Text rendering depends on a TrueType font located via go-findfont;
// when none is available the renderer logs a warning and produces
// geometry-only output with identical dimensions.
package render
