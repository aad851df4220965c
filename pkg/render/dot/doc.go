// Package dot renders hierarchies as Graphviz node-link diagrams.
//
// [ToDOT] produces DOT source with one box per node, labelled with the node
// name and its completed value. The current view root is highlighted and
// zero-valued nodes are drawn dashed, which makes clamped or empty branches
// easy to spot. [RenderSVG] lays the source out with the embedded Graphviz
// library; [RenderPNG] and [RenderPDF] additionally need rsvg-convert.
//
//	tree.CompleteValues(t)
//	src := dot.ToDOT(t, dot.Options{ViewRoot: t.Root()})
//	svg, err := dot.RenderSVG(ctx, src)
package dot
