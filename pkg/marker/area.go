package marker

import (
	"math"

	"github.com/matzehuels/seriescoord/pkg/coord"
)

// cornerDims lists the logical dimensions of the four corners of an area,
// in drawing order.
var cornerDims = [4][2]string{
	{DimX0, DimY0},
	{DimX1, DimY0},
	{DimX1, DimY1},
	{DimX0, DimY1},
}

// Area is a resolved range marker.
type Area struct {
	Corners [4]coord.Point
}

// IsNaN reports whether any corner is undrawable.
func (a Area) IsNaN() bool {
	for _, c := range a.Corners {
		if c.IsNaN() {
			return true
		}
	}
	return false
}

// Bounds returns the top-left and bottom-right corners of the area's
// bounding box.
func (a Area) Bounds() (lo, hi coord.Point) {
	lo = coord.Point{math.Inf(1), math.Inf(1)}
	hi = coord.Point{math.Inf(-1), math.Inf(-1)}
	for _, c := range a.Corners {
		lo[0], lo[1] = math.Min(lo[0], c[0]), math.Min(lo[1], c[1])
		hi[0], hi[1] = math.Max(hi[0], c[0]), math.Max(hi[1], c[1])
	}
	return lo, hi
}

// Range resolves an area marker spanning from one data tuple to another.
// Each corner pairs the coordinates of from and to the way the logical
// x0/x1/y0/y1 dimensions name them. With snapToTick the area covers whole
// category bands, the to side snapping to the boundary after its category.
func Range(cs coord.CoordSys, data coord.DataStore, from, to []float64, snapToTick bool) Area {
	var area Area
	if len(from) < 2 || len(to) < 2 {
		for i := range area.Corners {
			area.Corners[i] = coord.NaNPoint()
		}
		return area
	}
	for i, dims := range cornerDims {
		value := make([]float64, 2)
		names := make([]string, 2)
		for slot, d := range dims {
			if IsEndDim(d) {
				value[slot] = to[slot]
			} else {
				value[slot] = from[slot]
			}
			names[slot] = d
		}
		area.Corners[i] = Point(cs, data, value, Options{Dims: names, SnapToTick: snapToTick})
	}
	return area
}
