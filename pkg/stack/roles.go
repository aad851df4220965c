package stack

import (
	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/errors"
)

var (
	// ErrAxisCount is returned when a coordinate system does not expose
	// exactly two axes.
	ErrAxisCount = errors.Precondition("coordinate system must have exactly two axes")

	// ErrNotPrepared is returned when a row is resolved without a CoordInfo.
	ErrNotPrepared = errors.Precondition("coordinate info has not been prepared")
)

// Roles records which axis of a coordinate system orders the data and which
// carries the measured value, and the data columns they map to.
type Roles struct {
	BaseAxis  coord.Axis
	ValueAxis coord.Axis
	BaseDim   string
	ValueDim  string
}

// ResolveRoles designates the coordinate system's base axis as base and its
// complementary axis as value. Columns are looked up with
// data.MapDimension on each axis' dimension name.
func ResolveRoles(cs coord.CoordSys, data coord.DataStore) (Roles, error) {
	if cs == nil || len(cs.Axes()) != 2 {
		return Roles{}, ErrAxisCount
	}
	base := cs.BaseAxis()
	if base == nil {
		return Roles{}, ErrAxisCount
	}
	value := cs.OtherAxis(base)
	if value == nil || value == base {
		return Roles{}, ErrAxisCount
	}
	return Roles{
		BaseAxis:  base,
		ValueAxis: value,
		BaseDim:   data.MapDimension(base.Dim()),
		ValueDim:  data.MapDimension(value.Dim()),
	}, nil
}
