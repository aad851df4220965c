package coord

import (
	"encoding/json"
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestValueAxisDataToCoord(t *testing.T) {
	tests := []struct {
		name string
		axis *ValueAxis
		in   float64
		want float64
	}{
		{"min maps to start", NewValueAxis(DimY, 0, 100, 300, 0), 0, 300},
		{"max maps to end", NewValueAxis(DimY, 0, 100, 300, 0), 100, 0},
		{"midpoint", NewValueAxis(DimX, -50, 50, 0, 200), 0, 100},
		{"outside extent extrapolates", NewValueAxis(DimX, 0, 10, 0, 100), 20, 200},
		{"degenerate extent", NewValueAxis(DimX, 5, 5, 0, 100), 42, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.axis.DataToCoord(tt.in); !approx(got, tt.want) {
				t.Errorf("DataToCoord(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueAxisTicks(t *testing.T) {
	a := NewValueAxis(DimX, 0, 10, 0, 100)
	ticks := a.TicksCoords()
	if len(ticks) != DefaultSplitNumber+1 {
		t.Fatalf("len(TicksCoords()) = %d, want %d", len(ticks), DefaultSplitNumber+1)
	}
	if ticks[0] != 0 || ticks[len(ticks)-1] != 100 {
		t.Errorf("ticks = %v, want endpoints 0 and 100", ticks)
	}
}

func TestCategoryAxis(t *testing.T) {
	a := NewCategoryAxis(DimX, []string{"a", "b", "c", "d"}, 0, 80)

	if ext := a.Extent(); ext != [2]float64{0, 3} {
		t.Errorf("Extent() = %v, want [0 3]", ext)
	}
	if got := a.BandWidth(); got != 20 {
		t.Errorf("BandWidth() = %v, want 20", got)
	}
	if got := a.DataToCoord(1); got != 30 {
		t.Errorf("DataToCoord(1) = %v, want 30", got)
	}
	want := []float64{0, 20, 40, 60, 80}
	got := a.TicksCoords()
	if len(got) != len(want) {
		t.Fatalf("TicksCoords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TicksCoords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if i, ok := a.Index("c"); !ok || i != 2 {
		t.Errorf("Index(c) = %d, %v; want 2, true", i, ok)
	}
	if _, ok := a.Index("z"); ok {
		t.Error("Index(z) should not be found")
	}
	if !a.IsHorizontal() {
		t.Error("x category axis should be horizontal")
	}
}

func TestCategoryAxisEmpty(t *testing.T) {
	a := NewCategoryAxis(DimX, nil, 0, 100)
	if ticks := a.TicksCoords(); ticks != nil {
		t.Errorf("TicksCoords() = %v, want nil", ticks)
	}
	if ext := a.Extent(); ext != [2]float64{0, 0} {
		t.Errorf("Extent() = %v, want [0 0]", ext)
	}
}

func TestCartesianBaseAxis(t *testing.T) {
	cat := NewCategoryAxis(DimX, []string{"a", "b"}, 0, 100)
	val := NewValueAxis(DimY, 0, 10, 100, 0)

	tests := []struct {
		name string
		cs   *Cartesian2D
		want string
	}{
		{"category x", NewCartesian2D(cat, val), DimX},
		{"category y", NewCartesian2D(NewValueAxis(DimX, 0, 10, 0, 100), NewCategoryAxis(DimY, []string{"a"}, 100, 0)), DimY},
		{"two value axes", NewCartesian2D(NewValueAxis(DimX, 0, 1, 0, 1), val), DimX},
		{"forced", &Cartesian2D{X: cat, Y: val, Base: DimY}, DimY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.cs.BaseAxis()
			if base.Dim() != tt.want {
				t.Errorf("BaseAxis().Dim() = %q, want %q", base.Dim(), tt.want)
			}
			if other := tt.cs.OtherAxis(base); other == base {
				t.Error("OtherAxis(base) returned the base axis")
			}
		})
	}
}

func TestCartesianDataToPoint(t *testing.T) {
	x := NewCategoryAxis(DimX, []string{"a", "b", "c", "d"}, 0, 80)
	x.Offset = 10
	y := NewValueAxis(DimY, 0, 100, 200, 0)
	cs := NewCartesian2D(x, y)

	pt := cs.DataToPoint([]float64{2, 25})
	if pt != (Point{60, 150}) {
		t.Errorf("DataToPoint([2 25]) = %v, want [60 150]", pt)
	}

	if short := cs.DataToPoint([]float64{1}); !short.IsNaN() {
		t.Errorf("DataToPoint with one component = %v, want NaN component", short)
	}
}

func TestClampData(t *testing.T) {
	cs := NewCartesian2D(
		NewCategoryAxis(DimX, []string{"a", "b", "c"}, 0, 30),
		NewValueAxis(DimY, 100, 0, 0, 100), // inverted extent
	)
	in := []float64{7, -3}
	got := cs.ClampData(in)
	if got[0] != 2 || got[1] != 0 {
		t.Errorf("ClampData(%v) = %v, want [2 0]", in, got)
	}
	if in[0] != 7 {
		t.Error("ClampData must not modify its input")
	}
}

func TestPolarDataToPoint(t *testing.T) {
	radius := NewValueAxis(DimRadius, 0, 10, 0, 100)
	angle := NewValueAxis(DimAngle, 0, 360, 0, 360)
	p := NewPolar(radius, angle, 200, 200)

	tests := []struct {
		name string
		in   []float64
		want Point
	}{
		{"east", []float64{10, 0}, Point{300, 200}},
		{"north", []float64{10, 90}, Point{200, 100}},
		{"centre", []float64{0, 45}, Point{200, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.DataToPoint(tt.in)
			if !approx(got[0], tt.want[0]) || !approx(got[1], tt.want[1]) {
				t.Errorf("DataToPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if dims := p.Dimensions(); dims[0] != DimRadius || dims[1] != DimAngle {
		t.Errorf("Dimensions() = %v, want [radius angle]", dims)
	}
	if base := p.BaseAxis(); base != angle {
		t.Errorf("BaseAxis() = %v, want angle axis", base.Dim())
	}
}

func TestPointIsNaN(t *testing.T) {
	if !NaNPoint().IsNaN() {
		t.Error("NaNPoint().IsNaN() = false")
	}
	if (Point{1, math.NaN()}).IsNaN() != true {
		t.Error("point with one NaN component should report IsNaN")
	}
	if (Point{1, 2}).IsNaN() {
		t.Error("finite point reported IsNaN")
	}
}

func TestPointJSON(t *testing.T) {
	tests := []struct {
		p    Point
		want string
	}{
		{Point{1.5, 2}, `[1.5,2]`},
		{NaNPoint(), `[null,null]`},
		{Point{math.Inf(1), 3}, `[null,3]`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.p)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", tt.p, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestParseAxisType(t *testing.T) {
	tests := []struct {
		in      string
		want    AxisType
		wantErr bool
	}{
		{"category", AxisCategory, false},
		{"Value", AxisValue, false},
		{"", AxisValue, false},
		{"time", AxisOther, false},
		{"pie", AxisOther, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxisType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAxisType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAxisType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
