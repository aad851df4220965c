package fixture

import (
	"fmt"
	"strings"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/errors"
	"github.com/matzehuels/seriescoord/pkg/stack"
	"github.com/matzehuels/seriescoord/pkg/table"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

// Built is a chart with its declarations turned into live objects.
type Built struct {
	Name    string
	Coord   coord.CoordSys
	Series  []*BuiltSeries
	Markers []Marker
	// Tree is nil for charts without a hierarchy.
	Tree     *tree.Tree
	Sort     tree.SortOrder
	ViewRoot []string
}

// BuiltSeries is one series with its data store.
type BuiltSeries struct {
	Name   string
	Stack  string
	Origin stack.Origin
	Data   *table.Store
}

// SeriesByName looks a series up by name.
func (b *Built) SeriesByName(name string) (*BuiltSeries, bool) {
	for _, s := range b.Series {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Build validates the chart and constructs its coordinate system, data
// stores and tree. Series sharing a stack name are stacked along the
// coordinate system's value axis.
func (c *Chart) Build() (*Built, error) {
	cs, err := c.Coord.build()
	if err != nil {
		return nil, fmt.Errorf("coord: %w", err)
	}
	out := &Built{Name: c.Name, Coord: cs, Markers: c.Markers}

	seen := make(map[string]bool, len(c.Series))
	for i, s := range c.Series {
		if s.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "series %d has no name", i)
		}
		if seen[s.Name] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate series %q", s.Name)
		}
		seen[s.Name] = true
		bs, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		out.Series = append(out.Series, bs)
	}

	if err := c.stackGroups(cs, out.Series); err != nil {
		return nil, err
	}

	for _, m := range c.Markers {
		if _, ok := out.SeriesByName(m.Series); !ok {
			return nil, errors.New(errors.ErrCodeNotFound,
				"marker %q refers to unknown series %q", m.Name, m.Series)
		}
	}

	if c.Tree != nil {
		order, err := tree.ParseSortOrder(c.Tree.Sort)
		if err != nil {
			return nil, fmt.Errorf("tree: %w", err)
		}
		name := c.Tree.Name
		if name == "" {
			name = c.Name
		}
		out.Tree = tree.FromSpec(name, c.Tree.Data)
		out.Sort = order
		out.ViewRoot = c.Tree.ViewRoot
	}
	return out, nil
}

func (c *Chart) stackGroups(cs coord.CoordSys, series []*BuiltSeries) error {
	var groups []string
	members := make(map[string][]*table.Store)
	for _, s := range series {
		if s.Stack == "" {
			continue
		}
		if _, ok := members[s.Stack]; !ok {
			groups = append(groups, s.Stack)
		}
		members[s.Stack] = append(members[s.Stack], s.Data)
	}
	if len(groups) == 0 {
		return nil
	}

	strategy, err := table.ParseStrategy(c.Stack.Strategy)
	if err != nil {
		return fmt.Errorf("stack: %w", err)
	}
	base := cs.BaseAxis()
	value := cs.OtherAxis(base)
	if base == nil || value == nil {
		return stack.ErrAxisCount
	}
	opts := table.StackOptions{
		ValueDim: value.Dim(),
		BaseDim:  base.Dim(),
		ByIndex:  c.Stack.ByIndex,
		Strategy: strategy,
	}
	for _, g := range groups {
		if err := table.Stack(members[g], opts); err != nil {
			return fmt.Errorf("stack %s: %w", g, err)
		}
	}
	return nil
}

func (s Series) build() (*BuiltSeries, error) {
	origin, err := stack.ParseOrigin(s.Origin)
	if err != nil {
		return nil, err
	}
	store := table.NewStore(s.Name)
	for _, col := range s.Columns {
		if col.Dim != "" {
			if err := errors.ValidateAxisDim(col.Dim); err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
		}
		if err := store.AddColumn(col.Name, col.Dim, col.Values); err != nil {
			return nil, err
		}
	}
	if s.Layout != nil {
		store.SetLayout(coord.LayoutOffset, s.Layout.Offset)
		store.SetLayout(coord.LayoutSize, s.Layout.Size)
	}
	return &BuiltSeries{Name: s.Name, Stack: s.Stack, Origin: origin, Data: store}, nil
}

func (c Coord) build() (coord.CoordSys, error) {
	axes := make(map[string]coord.Axis, len(c.Axes))
	for _, a := range c.Axes {
		if err := errors.ValidateAxisDim(a.Dim); err != nil {
			return nil, err
		}
		if _, dup := axes[a.Dim]; dup {
			return nil, errors.New(errors.ErrCodeInvalidAxis, "duplicate %s axis", a.Dim)
		}
		ax, err := a.build()
		if err != nil {
			return nil, fmt.Errorf("%s axis: %w", a.Dim, err)
		}
		axes[a.Dim] = ax
	}

	typ := strings.ToLower(c.Type)
	if typ == "" {
		typ = CoordCartesian
	}
	switch typ {
	case CoordCartesian:
		cs := &coord.Cartesian2D{X: axes[coord.DimX], Y: axes[coord.DimY], Base: c.Base}
		if len(c.Axes) != 2 || cs.X == nil || cs.Y == nil {
			return nil, errors.New(errors.ErrCodeInvalidAxis, "cartesian coordinates need exactly one x and one y axis")
		}
		return cs, nil
	case CoordPolar:
		cs := &coord.Polar{
			Radius: axes[coord.DimRadius],
			Angle:  axes[coord.DimAngle],
			CX:     c.Center[0],
			CY:     c.Center[1],
			Base:   c.Base,
		}
		if len(c.Axes) != 2 || cs.Radius == nil || cs.Angle == nil {
			return nil, errors.New(errors.ErrCodeInvalidAxis, "polar coordinates need exactly one radius and one angle axis")
		}
		return cs, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported coordinate system %q", c.Type)
}

func (a Axis) build() (coord.Axis, error) {
	typ, err := coord.ParseAxisType(a.Type)
	if err != nil {
		return nil, err
	}
	switch typ {
	case coord.AxisCategory:
		ax := coord.NewCategoryAxis(a.Dim, a.Categories, a.Range[0], a.Range[1])
		ax.Offset = a.Offset
		return ax, nil
	case coord.AxisValue:
		ax := coord.NewValueAxis(a.Dim, a.Extent[0], a.Extent[1], a.Range[0], a.Range[1])
		ax.Offset = a.Offset
		ax.SplitNumber = a.Split
		return ax, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "axis type %q cannot be built", a.Type)
}
