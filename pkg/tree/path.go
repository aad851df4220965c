package tree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matzehuels/seriescoord/pkg/errors"
)

// PathEntry describes one node on the way from the root to a node.
type PathEntry struct {
	Name      string  `json:"name"`
	DataIndex int     `json:"data_index"`
	Value     float64 `json:"value"`
}

// PathInfo returns an entry for every node from the root down to id, both
// included. The root entry has data index -1.
func (t *Tree) PathInfo(id NodeID) []PathEntry {
	path := t.Path(id)
	info := make([]PathEntry, len(path))
	for i, p := range path {
		info[i] = PathEntry{
			Name:      t.nodes[p].Name,
			DataIndex: t.DataIndex(p),
			Value:     t.nodes[p].Value.Float(),
		}
	}
	return info
}

// SortOrder selects how siblings are ordered.
type SortOrder int

const (
	// SortNone keeps declaration order.
	SortNone SortOrder = iota
	// SortDesc puts the largest value first.
	SortDesc
	// SortAsc puts the smallest value first.
	SortAsc
)

func (o SortOrder) String() string {
	switch o {
	case SortDesc:
		return "desc"
	case SortAsc:
		return "asc"
	default:
		return "none"
	}
}

// ParseSortOrder parses desc, asc or none. The empty string is desc, which is
// how hierarchies are drawn unless configured otherwise.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "desc":
		return SortDesc, nil
	case "asc":
		return SortAsc, nil
	case "none", "null":
		return SortNone, nil
	}
	return SortNone, errors.New(errors.ErrCodeInvalidInput,
		"invalid sort order %q (expected desc, asc or none)", s)
}

// Sort orders the children of every node by value. The sort is stable, so
// equal values keep declaration order. Data indices are unaffected.
func Sort(t *Tree, order SortOrder) {
	if order == SortNone {
		return
	}
	for i := range t.nodes {
		slices.SortStableFunc(t.nodes[i].Children, func(a, b NodeID) int {
			c := cmp.Compare(t.nodes[a].Value.Float(), t.nodes[b].Value.Float())
			if order == SortDesc {
				return -c
			}
			return c
		})
	}
}
