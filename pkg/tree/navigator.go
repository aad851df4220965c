package tree

// Navigator tracks the view root of a hierarchy: the node currently shown as
// the top of the drill-down.
//
// The view root is held as a [Ref], so a rebuilt tree can tell that the
// stored node belongs to an older generation. Every change of tree or view
// root goes through the same validation: the candidate is accepted only if it
// is the tree's root or a node contained in the root's subtree, otherwise the
// view root falls back to the root.
type Navigator struct {
	tree *Tree
	view Ref
}

// NewNavigator returns a navigator over t with the view root at t's root.
func NewNavigator(t *Tree) *Navigator {
	n := &Navigator{}
	n.SetTree(t)
	return n
}

// Tree returns the tree being navigated.
func (n *Navigator) Tree() *Tree { return n.tree }

// SetTree replaces the tree and revalidates the stored view root against it.
// Node identities do not survive a rebuild, so a view root taken from the
// previous tree always falls back to the new root. It reports whether that
// fallback happened.
func (n *Navigator) SetTree(t *Tree) (fellBack bool) {
	n.tree = t
	return n.Reset(nil)
}

// Reset validates a view root. With a non-nil requested it becomes the
// candidate; otherwise the stored view root is revalidated. It reports
// whether the candidate was rejected in favour of the tree's root.
func (n *Navigator) Reset(requested *Ref) (fellBack bool) {
	if n.tree == nil {
		n.view = Ref{ID: None}
		return requested != nil
	}
	if requested != nil {
		n.view = *requested
	}
	root := n.tree.Root()
	id, err := n.tree.Resolve(n.view)
	if err != nil || (id != root && !n.tree.Contains(root, id)) {
		n.view = n.tree.Ref(root)
		return true
	}
	return false
}

// ViewRoot returns the current view root, or None without a tree.
func (n *Navigator) ViewRoot() NodeID {
	if n.tree == nil {
		return None
	}
	id, err := n.tree.Resolve(n.view)
	if err != nil {
		return n.tree.Root()
	}
	return id
}

// ViewRef returns the current view root as a reference.
func (n *Navigator) ViewRef() Ref { return n.view }

// DrillDown makes id the view root. It reports false, leaving the view root
// at the tree's root, when id is not a node of the tree.
func (n *Navigator) DrillDown(id NodeID) bool {
	if n.tree == nil {
		return false
	}
	ref := n.tree.Ref(id)
	return !n.Reset(&ref)
}

// DrillUp moves the view root to its parent. It reports false at the root.
func (n *Navigator) DrillUp() bool {
	cur := n.ViewRoot()
	if cur == None {
		return false
	}
	parent := n.tree.Parent(cur)
	if parent == None {
		return false
	}
	return n.DrillDown(parent)
}
