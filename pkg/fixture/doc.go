// Package fixture reads chart descriptions from TOML or JSON files and turns
// them into the coordinate systems, data stores and trees the resolvers work
// on.
//
// # Format
//
// A chart has one coordinate system with exactly two axes, any number of
// series, optional markers and an optional hierarchy:
//
//	name = "visits"
//
//	[coord]
//	type = "cartesian"          # or "polar"; polar charts also set center
//
//	[[coord.axes]]
//	dim = "x"
//	type = "category"
//	categories = ["mon", "tue", "wed"]
//	range = [0, 300]            # pixel span
//
//	[[coord.axes]]
//	dim = "y"
//	type = "value"
//	extent = [0, 20]            # data span
//	range = [200, 0]
//
//	[[series]]
//	name = "north"
//	stack = "total"             # series with equal stack names are stacked
//	origin = "auto"             # start, end, auto
//
//	  [[series.columns]]
//	  name = "visits"
//	  dim = "y"
//	  values = [4, 8, nan]
//
// JSON fixtures use the same field names. JSON has no NaN literal, so null
// stands for a missing value in columns, marker tuples and tree values.
//
// # Markers
//
// A marker names its series and a value tuple ordered like the coordinate
// system's dimensions. Setting to turns it into an area marker; snap places
// category coordinates on tick boundaries.
//
// # Trees
//
// The tree section holds nested data nodes. A node value is a number, a list
// whose first element is the value, or absent. sort orders siblings (desc by
// default) and view_root names the path of the initial drill-down.
//
// # Loading
//
// [Load] validates the path, picks the decoder from the extension and
// decodes the file. [Chart.Build] validates the declarations, builds live
// objects and runs the stack calculator over every stack group.
package fixture
