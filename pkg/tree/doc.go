// Package tree holds the hierarchical data of tree-structured series (sunburst
// style charts) and the two passes that run over it.
//
// # Arena
//
// A [Tree] stores its nodes in a slice and links them by [NodeID]. The root
// is a virtual node named after the series; user data hangs below it and gets
// data indices in declaration order. Trees are built once per data update,
// with [New] and [Tree.Add] or declaratively with [FromSpec], and replaced
// wholesale on the next update.
//
// # Values
//
// A node [Value] is a scalar, a vector whose first element is the semantic
// value, or missing. Passes operate on [Value.Float] and write results back
// with [Value.With], which keeps the original shape.
//
// # Aggregation
//
// [CompleteValues] fills in missing values bottom-up: a node without a usable
// value takes the sum of its children. Negative results are clamped to zero
// silently, because drawing assumes non-negative sizes. Callers that want to
// know about corrected data use [CompleteValuesNotify].
//
// # View Root
//
// A [Navigator] tracks the node the user drilled into. It stores a [Ref], a
// NodeID tagged with the generation of the tree it came from, and revalidates
// it whenever the tree is replaced. A reference into an older tree is never
// dereferenced; the view root falls back to the new root instead. To keep a
// drill-down across a rebuild, look the node up again by name with
// [Tree.FindPath] and pass the new reference to [Navigator.Reset].
package tree
