// Package marker maps logical data values to the points where markers (single
// points, lines and areas drawn on top of a series) are placed.
//
// Resolution clamps the value into the coordinate system's axis ranges and
// converts it to a point. With [Options.SnapToTick] the coordinate of every
// category axis is replaced by a tick boundary, so area markers cover whole
// category bands; range-end dimensions ([IsEndDim]) snap to the boundary
// after their category. Without snapping the point is shifted along the base
// axis by the series' bar layout, centering it on the bar.
//
// A coordinate system that does not implement [coord.Clamper] cannot place
// markers; [Point] then returns [coord.NaNPoint] and callers must skip the
// marker. [coord.Polar] is such a system.
package marker

import (
	"math"

	"github.com/matzehuels/seriescoord/pkg/coord"
)

// Range-end dimension names. A marker dimension with one of these names is
// the upper bound of a range.
const (
	DimX1      = "x1"
	DimY1      = "y1"
	DimRadius1 = "radius1"
	DimAngle1  = "angle1"
)

// Range-start dimension names.
const (
	DimX0      = "x0"
	DimY0      = "y0"
	DimRadius0 = "radius0"
	DimAngle0  = "angle0"
)

// IsEndDim reports whether dim names the upper bound of a range.
func IsEndDim(dim string) bool {
	switch dim {
	case DimX1, DimY1, DimRadius1, DimAngle1:
		return true
	}
	return false
}

// Options controls marker resolution.
type Options struct {
	// Dims names the logical dimension of each tuple slot. Only consulted
	// when snapping.
	Dims []string
	// SnapToTick replaces category axis coordinates with tick boundaries.
	SnapToTick bool
}

// Point resolves the position of a marker at value, a tuple ordered like
// cs.Dimensions().
func Point(cs coord.CoordSys, data coord.DataStore, value []float64, opts Options) coord.Point {
	clamper, ok := cs.(coord.Clamper)
	if !ok {
		return coord.NaNPoint()
	}
	clamped := clamper.ClampData(value)
	pt := cs.DataToPoint(clamped)

	if opts.SnapToTick {
		for i, axis := range cs.Axes() {
			if i >= len(pt) || i >= len(clamped) || axis.Type() != coord.AxisCategory {
				continue
			}
			if c, ok := snap(axis, clamped[i], endAt(opts.Dims, i)); ok {
				pt[i] = c
			}
		}
		return pt
	}

	var offset, size float64
	if data != nil {
		offset, _ = data.Layout(coord.LayoutOffset)
		size, _ = data.Layout(coord.LayoutSize)
	}
	slot := 1
	if base := cs.BaseAxis(); base != nil && base.IsHorizontal() {
		slot = 0
	}
	pt[slot] += offset + size/2
	return pt
}

// snap returns the global coordinate of the tick at index v (plus one for
// range ends), clamped to the available ticks. Fractional or NaN indices do
// not name a tick and leave the continuous coordinate in place.
func snap(axis coord.Axis, v float64, end bool) (float64, bool) {
	ticks := axis.TicksCoords()
	if len(ticks) == 0 || math.IsNaN(v) || v != math.Trunc(v) {
		return 0, false
	}
	if end {
		v++
	}
	idx := int(min(max(v, 0), float64(len(ticks)-1)))
	return axis.ToGlobalCoord(ticks[idx]), true
}

func endAt(dims []string, i int) bool {
	return i < len(dims) && IsEndDim(dims[i])
}
