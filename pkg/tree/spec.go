package tree

// NodeSpec is the declarative form of a subtree, as it appears in chart
// fixtures.
type NodeSpec struct {
	Name     string     `json:"name" toml:"name"`
	Value    Value      `json:"value" toml:"value"`
	Children []NodeSpec `json:"children,omitempty" toml:"children"`
}

// FromSpec builds a tree under a virtual root named rootName. Nodes are
// added depth-first in declaration order, which fixes their data indices.
func FromSpec(rootName string, data []NodeSpec) *Tree {
	t := New(rootName)
	type item struct {
		parent NodeID
		spec   *NodeSpec
	}
	// Push in reverse so the first child is added first.
	var pending []item
	for i := len(data) - 1; i >= 0; i-- {
		pending = append(pending, item{t.Root(), &data[i]})
	}
	for len(pending) > 0 {
		it := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		id, _ := t.Add(it.parent, it.spec.Name, it.spec.Value)
		for i := len(it.spec.Children) - 1; i >= 0; i-- {
			pending = append(pending, item{id, &it.spec.Children[i]})
		}
	}
	return t
}

// Spec returns the subtree rooted at id in declarative form.
func (t *Tree) Spec(id NodeID) NodeSpec {
	if !t.Valid(id) {
		return NodeSpec{}
	}
	n := t.nodes[id]
	spec := NodeSpec{Name: n.Name, Value: n.Value}
	for _, c := range n.Children {
		spec.Children = append(spec.Children, t.Spec(c))
	}
	return spec
}
