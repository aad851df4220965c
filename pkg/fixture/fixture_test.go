package fixture

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/errors"
	"github.com/matzehuels/seriescoord/pkg/stack"
	"github.com/matzehuels/seriescoord/pkg/table"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

func TestLoadTOML(t *testing.T) {
	c, err := Load("testdata/visits.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Name != "visits" || len(c.Series) != 2 || len(c.Markers) != 2 {
		t.Fatalf("Load() = %q with %d series, %d markers", c.Name, len(c.Series), len(c.Markers))
	}
	if v := c.Series[0].Columns[1].Values[2]; !math.IsNaN(v) {
		t.Errorf("nan literal decoded as %v", v)
	}
	if !c.Markers[1].IsArea() || !c.Markers[1].Snap {
		t.Errorf("midweek marker = %+v, want snapped area", c.Markers[1])
	}

	b, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := b.Coord.(*coord.Cartesian2D); !ok {
		t.Fatalf("Coord = %T, want *coord.Cartesian2D", b.Coord)
	}
	south, ok := b.SeriesByName("south")
	if !ok {
		t.Fatal("series south missing")
	}
	if got := south.Data.CalculationInfo(coord.CalcStackedOverDimension); got != "visits"+table.SuffixStackedOver {
		t.Errorf("south stacked over column = %q", got)
	}
	over, _ := south.Data.Column("visits" + table.SuffixStackedOver)
	if over[0] != 4 || over[1] != 8 || !math.IsNaN(over[2]) || over[3] != 6 {
		t.Errorf("south stacked over = %v, want [4 8 NaN 6]", over)
	}
	if v, ok := south.Data.Layout(coord.LayoutOffset); !ok || v != 10 {
		t.Errorf("south layout offset = %v, %v", v, ok)
	}

	if b.Tree == nil {
		t.Fatal("Tree = nil")
	}
	if b.Tree.Name(b.Tree.Root()) != "regions" || b.Sort != tree.SortDesc {
		t.Errorf("tree root %q sort %v", b.Tree.Name(b.Tree.Root()), b.Sort)
	}
	southNode, _ := b.Tree.FindPath("south")
	if got := b.Tree.Value(southNode); !got.Equal(tree.Vector(-2, 1)) {
		t.Errorf("south value = %v", got)
	}
	bergen, _ := b.Tree.FindPath("north", "bergen")
	if !b.Tree.Value(bergen).IsNaN() {
		t.Errorf("bergen value = %v, want NaN", b.Tree.Value(bergen))
	}
}

func TestLoadJSONPolar(t *testing.T) {
	c, err := Load("testdata/rose.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p, ok := b.Coord.(*coord.Polar)
	if !ok {
		t.Fatalf("Coord = %T, want *coord.Polar", b.Coord)
	}
	if p.CX != 100 || p.CY != 100 {
		t.Errorf("center = %v,%v", p.CX, p.CY)
	}
	if p.BaseAxis().Dim() != coord.DimAngle {
		t.Errorf("base axis = %s, want angle", p.BaseAxis().Dim())
	}
	wind := b.Series[0]
	if wind.Origin != stack.OriginStart {
		t.Errorf("origin = %v, want start", wind.Origin)
	}
	if v := wind.Data.Get("speed", 1); !math.IsNaN(v) {
		t.Errorf("null speed decoded as %v", v)
	}
	if b.Tree != nil {
		t.Error("Tree should be nil without a tree section")
	}
}

func TestBuildErrors(t *testing.T) {
	axes := `"axes": [
		{"dim": "x", "type": "category", "categories": ["a"], "range": [0, 10]},
		{"dim": "y", "extent": [0, 1], "range": [10, 0]}
	]`
	tests := []struct {
		name string
		json string
		code errors.Code
	}{
		{
			name: "bad axis dim",
			json: `{"coord": {"axes": [{"dim": "z"}, {"dim": "y"}]}}`,
			code: errors.ErrCodeInvalidAxis,
		},
		{
			name: "missing axis",
			json: `{"coord": {"axes": [{"dim": "x"}]}}`,
			code: errors.ErrCodeInvalidAxis,
		},
		{
			name: "unknown coord type",
			json: `{"coord": {"type": "geo", ` + axes + `}}`,
			code: errors.ErrCodeUnsupported,
		},
		{
			name: "duplicate series",
			json: `{"coord": {` + axes + `}, "series": [{"name": "a"}, {"name": "a"}]}`,
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "bad origin",
			json: `{"coord": {` + axes + `}, "series": [{"name": "a", "origin": "middle"}]}`,
			code: errors.ErrCodeInvalidOrigin,
		},
		{
			name: "ragged columns",
			json: `{"coord": {` + axes + `}, "series": [{"name": "a", "columns": [
				{"name": "x", "dim": "x", "values": [0, 1]},
				{"name": "y", "dim": "y", "values": [1]}
			]}]}`,
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "marker on unknown series",
			json: `{"coord": {` + axes + `}, "markers": [{"name": "m", "series": "ghost", "value": [0, 0]}]}`,
			code: errors.ErrCodeNotFound,
		},
		{
			name: "bad stack strategy",
			json: `{"coord": {` + axes + `}, "stack": {"strategy": "zigzag"}, "series": [{"name": "a", "stack": "s", "columns": [
				{"name": "x", "dim": "x", "values": [0]},
				{"name": "y", "dim": "y", "values": [1]}
			]}]}`,
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "bad sort",
			json: `{"coord": {` + axes + `}, "tree": {"sort": "sideways"}}`,
			code: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tt.json), FormatJSON)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			_, err = c.Build()
			if err == nil {
				t.Fatal("Build() error = nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		path string
		code errors.Code
	}{
		{"", errors.ErrCodeInvalidPath},
		{"chart.yaml", errors.ErrCodeInvalidPath},
		{"testdata/missing.toml", ""},
	}
	for _, tt := range tests {
		_, err := Load(tt.path)
		if err == nil {
			t.Errorf("Load(%q) error = nil", tt.path)
			continue
		}
		if tt.code != "" && !errors.Is(err, tt.code) {
			t.Errorf("Load(%q) error = %v, want code %s", tt.path, err, tt.code)
		}
	}

	if _, err := Decode(strings.NewReader("{"), FormatJSON); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Decode(malformed json) error = %v", err)
	}
	if _, err := Decode(strings.NewReader("name = "), FormatTOML); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Decode(malformed toml) error = %v", err)
	}
	if _, err := Decode(strings.NewReader(""), "yaml"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Decode(yaml) error = %v", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	c, err := Load("testdata/visits.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `null`) {
		t.Error("NaN values should be written as null")
	}

	again, err := Decode(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, err := again.Build(); err != nil {
		t.Fatalf("Build() after round trip error = %v", err)
	}
	if v := again.Series[0].Columns[1].Values[2]; !math.IsNaN(v) {
		t.Errorf("NaN did not survive the round trip: %v", v)
	}
}

func TestExampleCharts(t *testing.T) {
	paths, err := filepath.Glob("../../examples/charts/*")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example charts found")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			c, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			b, err := c.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(b.Series) < 2 || b.Tree == nil {
				t.Errorf("%s: %d series, tree %v", c.Name, len(b.Series), b.Tree != nil)
			}
			for _, s := range b.Series {
				if s.Data.CalculationInfo(coord.CalcStackedDimension) == "" {
					t.Errorf("series %s was not stacked", s.Name)
				}
			}
		})
	}
}
