// Package coord defines the collaborators the series resolvers consume:
// axes, two-axis coordinate systems and a column-oriented data store.
//
// # Contracts
//
// The resolvers in [github.com/matzehuels/seriescoord/pkg/stack] and
// [github.com/matzehuels/seriescoord/pkg/marker] only depend on the
// interfaces declared here:
//
//   - [Axis]: dimension name, type (category or value), extent, tick
//     coordinates and local-to-global coordinate conversion
//   - [CoordSys]: base axis, complementary axis, data tuple to [Point]
//   - [Clamper]: optional capability to clamp a data tuple into axis range
//   - [DataStore]: column lookup by coordinate dimension, per-row values,
//     calculation info and per-series layout annotations
//
// Clamping is modelled as a separate interface. Coordinate systems that cannot
// clamp simply do not implement it, and callers test for it with a type
// assertion:
//
//	if c, ok := cs.(coord.Clamper); ok {
//	    tuple = c.ClampData(tuple)
//	}
//
// # Implementations
//
// [ValueAxis], [CategoryAxis], [Cartesian2D] and [Polar] are small concrete
// implementations used by the CLI fixtures and the tests. They map data into
// pixel space linearly and carry no styling.
//
// # Points
//
// A [Point] is a pair of coordinates. Components may be not-a-number; see
// [NaNPoint] and [Point.IsNaN]. Callers must check before drawing.
package coord
