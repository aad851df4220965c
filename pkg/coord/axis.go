package coord

import "slices"

// DefaultSplitNumber is the number of intervals a ValueAxis divides its
// extent into when SplitNumber is unset.
const DefaultSplitNumber = 5

// ValueAxis maps a continuous data extent linearly onto [Start, End].
// Start may be greater than End for axes growing in negative pixel direction
// (a vertical y axis with the origin at the bottom).
type ValueAxis struct {
	Name        string
	Min, Max    float64
	Start, End  float64
	Offset      float64 // added by ToGlobalCoord
	Horizontal  bool
	SplitNumber int
}

// NewValueAxis creates a value axis. Horizontal is derived from the
// dimension name: only x axes are horizontal.
func NewValueAxis(dim string, min, max, start, end float64) *ValueAxis {
	return &ValueAxis{
		Name:       dim,
		Min:        min,
		Max:        max,
		Start:      start,
		End:        end,
		Horizontal: dim == DimX,
	}
}

func (a *ValueAxis) Dim() string        { return a.Name }
func (a *ValueAxis) Type() AxisType     { return AxisValue }
func (a *ValueAxis) Extent() [2]float64 { return [2]float64{a.Min, a.Max} }
func (a *ValueAxis) IsHorizontal() bool { return a.Horizontal }

func (a *ValueAxis) ToGlobalCoord(c float64) float64 { return c + a.Offset }

// DataToCoord maps v linearly. A degenerate extent maps everything to the
// middle of the pixel range.
func (a *ValueAxis) DataToCoord(v float64) float64 {
	span := a.Max - a.Min
	if span == 0 {
		return (a.Start + a.End) / 2
	}
	return a.Start + (v-a.Min)/span*(a.End-a.Start)
}

// TicksCoords returns SplitNumber+1 evenly spaced coordinates from Start to End.
func (a *ValueAxis) TicksCoords() []float64 {
	n := a.SplitNumber
	if n <= 0 {
		n = DefaultSplitNumber
	}
	step := (a.End - a.Start) / float64(n)
	ticks := make([]float64, n+1)
	for i := range ticks {
		ticks[i] = a.Start + float64(i)*step
	}
	return ticks
}

// CategoryAxis divides [Start, End] into one band per category. Data values
// on a category axis are category indices; a value maps to the middle of its
// band and ticks sit on band boundaries.
type CategoryAxis struct {
	Name       string
	Categories []string
	Start, End float64
	Offset     float64
	Horizontal bool
}

// NewCategoryAxis creates a category axis. Horizontal is derived from the
// dimension name.
func NewCategoryAxis(dim string, categories []string, start, end float64) *CategoryAxis {
	return &CategoryAxis{
		Name:       dim,
		Categories: slices.Clone(categories),
		Start:      start,
		End:        end,
		Horizontal: dim == DimX,
	}
}

func (a *CategoryAxis) Dim() string        { return a.Name }
func (a *CategoryAxis) Type() AxisType     { return AxisCategory }
func (a *CategoryAxis) IsHorizontal() bool { return a.Horizontal }

func (a *CategoryAxis) ToGlobalCoord(c float64) float64 { return c + a.Offset }

// Extent is [0, n-1] for n categories.
func (a *CategoryAxis) Extent() [2]float64 {
	if len(a.Categories) == 0 {
		return [2]float64{0, 0}
	}
	return [2]float64{0, float64(len(a.Categories) - 1)}
}

// BandWidth is the pixel span of one category.
func (a *CategoryAxis) BandWidth() float64 {
	if len(a.Categories) == 0 {
		return 0
	}
	return (a.End - a.Start) / float64(len(a.Categories))
}

func (a *CategoryAxis) DataToCoord(v float64) float64 {
	return a.Start + (v+0.5)*a.BandWidth()
}

// TicksCoords returns the n+1 band boundaries.
func (a *CategoryAxis) TicksCoords() []float64 {
	if len(a.Categories) == 0 {
		return nil
	}
	band := a.BandWidth()
	ticks := make([]float64, len(a.Categories)+1)
	for i := range ticks {
		ticks[i] = a.Start + float64(i)*band
	}
	return ticks
}

// Index returns the position of a category name.
func (a *CategoryAxis) Index(name string) (int, bool) {
	i := slices.Index(a.Categories, name)
	return i, i >= 0
}

func clampToExtent(a Axis, v float64) float64 {
	ext := a.Extent()
	lo, hi := ext[0], ext[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
