// Package stack resolves where the points of a (possibly stacked) series sit
// in a two-axis coordinate system.
//
// # Overview
//
// Resolution happens in two steps. [Prepare] runs once per layout pass and
// produces an immutable [CoordInfo]:
//
//  1. [ResolveRoles] picks the base axis (the one the coordinate system
//     designates) and the value axis (the other one), and maps both to data
//     columns.
//  2. [OriginValue] computes the baseline of the value axis under an
//     [Origin] policy.
//  3. The coordinate system's dimensions are mapped to columns; a column the
//     data store marks as stacked is replaced by its stack-result column.
//
// [PointAt] then resolves individual rows. A stacked series reads the
// stacked-over column for the row and falls back to the origin when that is
// NaN (the row sits directly on the baseline, or was filtered out of the
// stack). The resolved value and the row's base value form a 2-tuple which
// the coordinate system converts to a point.
//
// # Tuple Order
//
// Cartesian systems take [x, y] and polar systems take [radius, angle].
// [CoordInfo.BaseDataOffset] is the tuple slot of the base value: 1 when the
// value axis is x or radius, 0 otherwise. Swapping it silently mis-plots
// every point, so it is fixed at preparation time.
//
// # Concurrency
//
// A prepared CoordInfo is read-only. [Points] fans rows out across a bounded
// number of goroutines; the data store and coordinate system must tolerate
// concurrent reads.
//
// # Errors
//
// Not-a-number values are results, not errors. The only failures are
// contract violations: a coordinate system without exactly two axes
// ([ErrAxisCount]) and per-row resolution without a prepared CoordInfo
// ([ErrNotPrepared]).
package stack
