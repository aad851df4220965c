// Package render turns resolved chart data into files.
//
// The [dot] subpackage draws completed hierarchies as Graphviz diagrams:
//
//	src := dot.ToDOT(t, dot.Options{ViewRoot: nav.ViewRoot()})
//	svg, err := dot.RenderSVG(ctx, src)
//
// [ToPNG] and [ToPDF] convert any SVG using the external rsvg-convert tool
// (from librsvg).
package render
