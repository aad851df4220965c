package coord

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Coordinate dimension names understood by the resolvers.
const (
	DimX      = "x"
	DimY      = "y"
	DimRadius = "radius"
	DimAngle  = "angle"
)

// AxisType classifies how an axis maps data to coordinates.
type AxisType int

const (
	// AxisOther covers time, log and any axis that is neither category nor value.
	AxisOther AxisType = iota
	// AxisCategory maps ordinal indices to discrete bands.
	AxisCategory
	// AxisValue maps a continuous numeric extent linearly.
	AxisValue
)

// String returns the lowercase axis type name.
func (t AxisType) String() string {
	switch t {
	case AxisCategory:
		return "category"
	case AxisValue:
		return "value"
	default:
		return "other"
	}
}

// ParseAxisType parses "category", "value" or "other" (case-insensitive).
func ParseAxisType(s string) (AxisType, error) {
	switch strings.ToLower(s) {
	case "category":
		return AxisCategory, nil
	case "value", "":
		return AxisValue, nil
	case "other", "time", "log":
		return AxisOther, nil
	default:
		return AxisOther, fmt.Errorf("unknown axis type %q", s)
	}
}

// Point is a resolved coordinate pair. Components may be NaN when the value
// could not be placed.
type Point [2]float64

// NaNPoint returns the sentinel for an undrawable position.
func NaNPoint() Point {
	return Point{math.NaN(), math.NaN()}
}

// IsNaN reports whether either component is not-a-number.
func (p Point) IsNaN() bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1])
}

// X returns the first component.
func (p Point) X() float64 { return p[0] }

// Y returns the second component.
func (p Point) Y() float64 { return p[1] }

// MarshalJSON writes the point as a two-element array with null for
// components that are not finite numbers.
func (p Point) MarshalJSON() ([]byte, error) {
	var out [2]*float64
	for i := range p {
		if !math.IsNaN(p[i]) && !math.IsInf(p[i], 0) {
			out[i] = &p[i]
		}
	}
	return json.Marshal(out)
}

// Axis is a read-only view of one axis of a coordinate system.
type Axis interface {
	// Dim is the coordinate dimension name: x, y, radius or angle.
	Dim() string
	Type() AxisType
	// Extent is the data extent as [min, max].
	Extent() [2]float64
	// TicksCoords returns tick positions in axis-local coordinates, in order.
	TicksCoords() []float64
	// DataToCoord maps a data value to an axis-local coordinate.
	DataToCoord(v float64) float64
	// ToGlobalCoord converts an axis-local coordinate to a global one.
	ToGlobalCoord(c float64) float64
	IsHorizontal() bool
}

// CoordSys is a two-axis coordinate system.
type CoordSys interface {
	// Dimensions lists the coordinate dimensions in tuple order,
	// [x, y] for cartesian and [radius, angle] for polar systems.
	Dimensions() []string
	// Axes returns the axes in the same order as Dimensions.
	Axes() []Axis
	BaseAxis() Axis
	// OtherAxis returns the axis that is not a.
	OtherAxis(a Axis) Axis
	// DataToPoint converts a data tuple ordered like Dimensions to a point.
	DataToPoint(data []float64) Point
}

// Clamper is implemented by coordinate systems that can clamp a data tuple
// into the range of their axes.
type Clamper interface {
	ClampData(data []float64) []float64
}

// Calculation info keys written by the stack calculator and read by the
// resolvers.
const (
	CalcStackedDimension     = "stackedDimension"
	CalcStackedByDimension   = "stackedByDimension"
	CalcStackResultDimension = "stackResultDimension"
	CalcStackedOverDimension = "stackedOverDimension"
)

// Layout keys written by the bar layout stage.
const (
	LayoutOffset = "offset"
	LayoutSize   = "size"
)

// DataStore is column-oriented tabular data for one series.
type DataStore interface {
	// MapDimension returns the column mapped to a coordinate dimension,
	// or "" when none is.
	MapDimension(coordDim string) string
	// Get returns the value of column dim at row, NaN when either is unknown.
	Get(dim string, row int) float64
	CalculationInfo(key string) string
	Layout(key string) (float64, bool)
	Count() int
}

// IsDimensionStacked reports whether dim is the stacked dimension recorded in
// the store's calculation info.
func IsDimensionStacked(data DataStore, dim string) bool {
	if dim == "" {
		return false
	}
	return data.CalculationInfo(CalcStackedDimension) == dim
}
