package tree

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/seriescoord/pkg/errors"
)

var (
	// ErrUnknownNode is returned when a NodeID does not address a node of the
	// tree it is used with.
	ErrUnknownNode = errors.New(errors.ErrCodeNotFound, "unknown tree node")

	// ErrStaleRef is returned by [Tree.Resolve] when a Ref was taken from a
	// different tree, including an earlier build of the same data. Node
	// identities never survive a rebuild.
	ErrStaleRef = errors.Precondition("node reference belongs to another tree generation")
)

// NodeID addresses a node inside one Tree. IDs are dense, assigned in
// insertion order, and the root is always 0.
type NodeID int

// None is the parent of the root.
const None NodeID = -1

// Node is one element of the hierarchy.
type Node struct {
	Name     string
	Value    Value
	Parent   NodeID
	Children []NodeID
	Depth    int
}

// Tree is an arena of nodes. Parent and child edges are NodeIDs into the
// arena, so the tree never holds pointers that could outlive it.
//
// Every Tree gets a fresh generation token when it is created; a [Ref]
// carries the token and is rejected by any other tree.
//
// Tree is not safe for concurrent mutation.
type Tree struct {
	gen   uuid.UUID
	nodes []Node
}

// New creates a tree with a single root node. The root is virtual: it holds
// the series name and has no data index.
func New(rootName string) *Tree {
	return &Tree{
		gen:   uuid.New(),
		nodes: []Node{{Name: rootName, Parent: None}},
	}
}

// Generation returns the tree's generation token.
func (t *Tree) Generation() uuid.UUID { return t.gen }

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Valid reports whether id addresses a node of t.
func (t *Tree) Valid(id NodeID) bool { return id >= 0 && int(id) < len(t.nodes) }

// Add appends a child under parent and returns its ID.
func (t *Tree) Add(parent NodeID, name string, v Value) (NodeID, error) {
	if !t.Valid(parent) {
		return None, ErrUnknownNode
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Name:   name,
		Value:  v,
		Parent: parent,
		Depth:  t.nodes[parent].Depth + 1,
	})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id, nil
}

// Node returns a copy of the node with the given ID.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.Valid(id) {
		return Node{}, false
	}
	n := t.nodes[id]
	n.Children = slices.Clone(n.Children)
	return n, true
}

// Name returns the name of a node, or "" for unknown IDs.
func (t *Tree) Name(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	return t.nodes[id].Name
}

// Value returns the value of a node. Unknown IDs yield a missing value.
func (t *Tree) Value(id NodeID) Value {
	if !t.Valid(id) {
		return Missing()
	}
	return t.nodes[id].Value
}

// SetValue replaces the value of a node.
func (t *Tree) SetValue(id NodeID, v Value) error {
	if !t.Valid(id) {
		return ErrUnknownNode
	}
	t.nodes[id].Value = v
	return nil
}

// Parent returns the parent of a node, or None for the root and unknown IDs.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return None
	}
	return t.nodes[id].Parent
}

// Children returns the child IDs of a node in order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}
	return slices.Clone(t.nodes[id].Children)
}

// IsLeaf reports whether a node has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.Valid(id) && len(t.nodes[id].Children) == 0
}

// DataIndex returns the row of a node in the flattened data: its insertion
// order excluding the root. The root and unknown IDs yield -1.
func (t *Tree) DataIndex(id NodeID) int {
	if !t.Valid(id) || id == 0 {
		return -1
	}
	return int(id) - 1
}

// ByDataIndex is the inverse of DataIndex.
func (t *Tree) ByDataIndex(i int) (NodeID, bool) {
	id := NodeID(i + 1)
	return id, i >= 0 && t.Valid(id)
}

// Contains reports whether id is ancestor itself or one of its descendants.
// It walks the parent chain up from id.
func (t *Tree) Contains(ancestor, id NodeID) bool {
	if !t.Valid(ancestor) {
		return false
	}
	for cur := id; t.Valid(cur); cur = t.nodes[cur].Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Path returns the IDs from the root down to id, both included.
func (t *Tree) Path(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}
	path := make([]NodeID, 0, t.nodes[id].Depth+1)
	for cur := id; cur != None; cur = t.nodes[cur].Parent {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// NamePath returns the names along the path from the root to id, excluding
// the root.
func (t *Tree) NamePath(id NodeID) []string {
	path := t.Path(id)
	if len(path) == 0 {
		return nil
	}
	names := make([]string, 0, len(path)-1)
	for _, p := range path[1:] {
		names = append(names, t.nodes[p].Name)
	}
	return names
}

// FindPath follows child names down from the root and returns the node
// reached. The empty path is the root. Among siblings sharing a name the
// first one wins.
func (t *Tree) FindPath(names ...string) (NodeID, bool) {
	cur := t.Root()
	for _, name := range names {
		next := None
		for _, c := range t.nodes[cur].Children {
			if t.nodes[c].Name == name {
				next = c
				break
			}
		}
		if next == None {
			return None, false
		}
		cur = next
	}
	return cur, true
}

// PostOrder returns every node ID with children before their parent and
// siblings in order. It uses an explicit stack, so depth is not limited by
// the goroutine stack.
func (t *Tree) PostOrder() []NodeID {
	order := make([]NodeID, 0, len(t.nodes))
	type frame struct {
		id   NodeID
		next int
	}
	stack := []frame{{id: t.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := t.nodes[top.id].Children
		if top.next < len(children) {
			child := children[top.next]
			top.next++
			stack = append(stack, frame{id: child})
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}
	return order
}

// Ref is a generation-checked reference to a node. Refs are what callers
// hold across tree rebuilds; a bare NodeID is only meaningful within the
// tree it came from.
type Ref struct {
	Gen uuid.UUID
	ID  NodeID
}

// Ref returns a reference to id in this tree.
func (t *Tree) Ref(id NodeID) Ref { return Ref{Gen: t.gen, ID: id} }

// Resolve checks a Ref against this tree and returns the node it addresses.
func (t *Tree) Resolve(r Ref) (NodeID, error) {
	if r.Gen != t.gen {
		return None, ErrStaleRef
	}
	if !t.Valid(r.ID) {
		return None, ErrUnknownNode
	}
	return r.ID, nil
}
