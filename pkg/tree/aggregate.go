package tree

import "math"

// ClampFunc is called for every node whose resolved value was negative and
// was corrected to zero. raw is the value before correction.
type ClampFunc func(id NodeID, raw float64)

// CompleteValues fills in missing values bottom-up, in place.
//
// Nodes are visited in post-order. A node whose value is missing or NaN takes
// the sum of its already completed children; a leaf in that state becomes 0.
// Any negative result is set to 0 without reporting an error. Results are
// written back in the node's original shape, so vector values keep their
// trailing elements.
//
// Afterwards every value is non-negative, and running CompleteValues again
// changes nothing.
func CompleteValues(t *Tree) {
	CompleteValuesNotify(t, nil)
}

// CompleteValuesNotify is CompleteValues with a callback for every negative
// value that was clamped. It returns the number of clamped nodes.
func CompleteValuesNotify(t *Tree, onClamp ClampFunc) int {
	clamped := 0
	for _, id := range t.PostOrder() {
		n := &t.nodes[id]

		sum := 0.0
		for _, c := range n.Children {
			sum += t.nodes[c].Value.Float()
		}

		v := n.Value.Float()
		if math.IsNaN(v) {
			v = sum
		}
		if v < 0 {
			if onClamp != nil {
				onClamp(id, v)
			}
			clamped++
			v = 0
		}
		n.Value = n.Value.With(v)
	}
	return clamped
}
