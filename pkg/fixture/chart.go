package fixture

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/seriescoord/pkg/tree"
)

// Coordinate system kinds.
const (
	CoordCartesian = "cartesian"
	CoordPolar     = "polar"
)

// Chart is the declarative description of a chart: one coordinate system, the
// series drawn on it, markers, and an optional hierarchy.
type Chart struct {
	Name    string   `json:"name" toml:"name"`
	Coord   Coord    `json:"coord" toml:"coord"`
	Stack   Stacking `json:"stack" toml:"stack"`
	Series  []Series `json:"series" toml:"series"`
	Markers []Marker `json:"markers,omitempty" toml:"markers"`
	Tree    *Tree    `json:"tree,omitempty" toml:"tree"`
}

// Coord describes the coordinate system.
type Coord struct {
	Type string `json:"type" toml:"type"`
	// Base forces the base axis; empty lets the system choose.
	Base   string     `json:"base,omitempty" toml:"base"`
	Center [2]float64 `json:"center,omitempty" toml:"center"`
	Axes   []Axis     `json:"axes" toml:"axes"`
}

// Axis describes one axis. Category axes use Categories; value axes use
// Extent. Range is the pixel span the axis is laid out on.
type Axis struct {
	Dim        string     `json:"dim" toml:"dim"`
	Type       string     `json:"type" toml:"type"`
	Categories []string   `json:"categories,omitempty" toml:"categories"`
	Extent     [2]float64 `json:"extent,omitempty" toml:"extent"`
	Range      [2]float64 `json:"range" toml:"range"`
	Offset     float64    `json:"offset,omitempty" toml:"offset"`
	Split      int        `json:"split,omitempty" toml:"split"`
}

// Stacking configures the stack calculator for every stack group.
type Stacking struct {
	Strategy string `json:"strategy,omitempty" toml:"strategy"`
	ByIndex  bool   `json:"by_index,omitempty" toml:"by_index"`
}

// Series is one data series. Series with the same non-empty Stack are
// stacked in declaration order.
type Series struct {
	Name    string   `json:"name" toml:"name"`
	Stack   string   `json:"stack,omitempty" toml:"stack"`
	Origin  string   `json:"origin,omitempty" toml:"origin"`
	Columns []Column `json:"columns" toml:"columns"`
	Layout  *Layout  `json:"layout,omitempty" toml:"layout"`
}

// Column is one data column, optionally mapped to a coordinate dimension.
type Column struct {
	Name   string `json:"name" toml:"name"`
	Dim    string `json:"dim,omitempty" toml:"dim"`
	Values Floats `json:"values" toml:"values"`
}

// Layout is the bar layout of a series, as computed by a bar layout stage.
type Layout struct {
	Offset float64 `json:"offset" toml:"offset"`
	Size   float64 `json:"size" toml:"size"`
}

// Marker is a point marker, or an area marker when To is set.
type Marker struct {
	Name   string   `json:"name" toml:"name"`
	Series string   `json:"series" toml:"series"`
	Value  Floats   `json:"value" toml:"value"`
	To     Floats   `json:"to,omitempty" toml:"to"`
	Dims   []string `json:"dims,omitempty" toml:"dims"`
	Snap   bool     `json:"snap,omitempty" toml:"snap"`
}

// IsArea reports whether the marker spans a range.
func (m Marker) IsArea() bool { return len(m.To) > 0 }

// Tree describes a hierarchical series.
type Tree struct {
	Name     string          `json:"name" toml:"name"`
	Sort     string          `json:"sort,omitempty" toml:"sort"`
	ViewRoot []string        `json:"view_root,omitempty" toml:"view_root"`
	Data     []tree.NodeSpec `json:"data" toml:"data"`
}

// Floats is a list of numbers in which JSON null stands for NaN.
type Floats []float64

// UnmarshalJSON decodes numbers and nulls.
func (f *Floats) UnmarshalJSON(b []byte) error {
	var raw []*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Floats, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *p
		}
	}
	*f = out
	return nil
}

// MarshalJSON encodes NaN and infinities as null.
func (f Floats) MarshalJSON() ([]byte, error) {
	raw := make([]*float64, len(f))
	for i := range f {
		if !math.IsNaN(f[i]) && !math.IsInf(f[i], 0) {
			raw[i] = &f[i]
		}
	}
	return json.Marshal(raw)
}
