package stack

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/seriescoord/pkg/coord"
	sterrors "github.com/matzehuels/seriescoord/pkg/errors"
	"github.com/matzehuels/seriescoord/pkg/table"
)

// identitySys is a coordinate system whose points are the raw data tuple,
// which makes slot ordering directly observable.
type identitySys struct {
	dims []string
	axes []coord.Axis
	base int
}

func (s *identitySys) Dimensions() []string { return s.dims }
func (s *identitySys) Axes() []coord.Axis   { return s.axes }
func (s *identitySys) BaseAxis() coord.Axis { return s.axes[s.base] }
func (s *identitySys) OtherAxis(a coord.Axis) coord.Axis {
	if a == s.axes[0] {
		return s.axes[1]
	}
	return s.axes[0]
}
func (s *identitySys) DataToPoint(d []float64) coord.Point { return coord.Point{d[0], d[1]} }

func newIdentitySys(first, second string, base int, ext [2]float64) *identitySys {
	a := coord.NewValueAxis(first, ext[0], ext[1], 0, 1)
	b := coord.NewValueAxis(second, ext[0], ext[1], 0, 1)
	return &identitySys{dims: []string{first, second}, axes: []coord.Axis{a, b}, base: base}
}

func newStore(t *testing.T, name string, cols map[string][]float64) *table.Store {
	t.Helper()
	s := table.NewStore(name)
	for _, dim := range []string{coord.DimX, coord.DimY, coord.DimRadius, coord.DimAngle} {
		if v, ok := cols[dim]; ok {
			if err := s.AddColumn(dim, dim, v); err != nil {
				t.Fatalf("AddColumn(%s): %v", dim, err)
			}
		}
	}
	return s
}

func TestOriginValueConcrete(t *testing.T) {
	tests := []struct {
		name   string
		ext    [2]float64
		origin Origin
		want   float64
	}{
		{"end ignores signs", [2]float64{-5, 20}, OriginEnd, 20},
		{"start", [2]float64{-5, 20}, OriginStart, -5},
		{"auto straddling", [2]float64{-5, 20}, OriginAuto, 0},
		{"auto all positive", [2]float64{3, 20}, OriginAuto, 3},
		{"auto all negative", [2]float64{-30, -2}, OriginAuto, -2},
		{"unset all positive", [2]float64{3, 20}, OriginUnset, 3},
		{"auto zero extent", [2]float64{0, 0}, OriginAuto, 0},
		{"auto touching zero", [2]float64{0, 10}, OriginAuto, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis := coord.NewValueAxis(coord.DimY, tt.ext[0], tt.ext[1], 0, 100)
			if got := OriginValue(axis, tt.origin); got != tt.want {
				t.Errorf("OriginValue(%v, %v) = %v, want %v", tt.ext, tt.origin, got, tt.want)
			}
		})
	}
}

func TestOriginValueAutoProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		a := math.Round(r.NormFloat64()*50) / 2
		b := a + math.Round(r.ExpFloat64()*40)/2
		if i%50 == 0 {
			a, b = 0, 0
		}
		axis := coord.NewValueAxis(coord.DimY, a, b, 0, 1)

		var want float64
		switch {
		case a > 0:
			want = a
		case b < 0:
			want = b
		}
		for _, o := range []Origin{OriginAuto, OriginUnset} {
			if got := OriginValue(axis, o); got != want {
				t.Fatalf("OriginValue([%v %v], %v) = %v, want %v", a, b, o, got, want)
			}
		}
	}
}

func TestParseOrigin(t *testing.T) {
	for _, o := range []Origin{OriginUnset, OriginAuto, OriginStart, OriginEnd} {
		got, err := ParseOrigin(o.String())
		if err != nil || got != o {
			t.Errorf("ParseOrigin(%q) = %v, %v; want %v", o.String(), got, err, o)
		}
	}
	_, err := ParseOrigin("middle")
	if !sterrors.Is(err, sterrors.ErrCodeInvalidOrigin) {
		t.Errorf("ParseOrigin(middle) error = %v, want INVALID_ORIGIN", err)
	}
}

func TestBaseDataOffsetExhaustive(t *testing.T) {
	tests := []struct {
		dims      [2]string
		base      int
		valueAxis string
		want      int
	}{
		{[2]string{coord.DimX, coord.DimY}, 0, coord.DimY, 0},
		{[2]string{coord.DimX, coord.DimY}, 1, coord.DimX, 1},
		{[2]string{coord.DimRadius, coord.DimAngle}, 1, coord.DimRadius, 1},
		{[2]string{coord.DimRadius, coord.DimAngle}, 0, coord.DimAngle, 0},
	}

	for _, tt := range tests {
		t.Run("value="+tt.valueAxis, func(t *testing.T) {
			cs := newIdentitySys(tt.dims[0], tt.dims[1], tt.base, [2]float64{0, 10})
			data := newStore(t, "s", map[string][]float64{
				tt.dims[0]: {1},
				tt.dims[1]: {2},
			})
			info, err := Prepare(cs, data, OriginAuto)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			if info.ValueAxisDim != tt.valueAxis {
				t.Fatalf("ValueAxisDim = %q, want %q", info.ValueAxisDim, tt.valueAxis)
			}
			if info.BaseDataOffset != tt.want {
				t.Errorf("BaseDataOffset = %d, want %d", info.BaseDataOffset, tt.want)
			}

			// The base value must land in slot BaseDataOffset.
			pt, err := PointAt(info, cs, data, 0)
			if err != nil {
				t.Fatalf("PointAt() error = %v", err)
			}
			baseValue := data.Get(info.BaseDim, 0)
			if pt[info.BaseDataOffset] != baseValue {
				t.Errorf("point %v: slot %d = %v, want base value %v", pt, info.BaseDataOffset, pt[info.BaseDataOffset], baseValue)
			}
			if pt[1-info.BaseDataOffset] != info.ValueStart {
				t.Errorf("point %v: value slot = %v, want origin %v", pt, pt[1-info.BaseDataOffset], info.ValueStart)
			}
		})
	}
}

func TestPrepareStacked(t *testing.T) {
	cs := newIdentitySys(coord.DimX, coord.DimY, 0, [2]float64{0, 100})
	a := newStore(t, "a", map[string][]float64{coord.DimX: {0, 1}, coord.DimY: {5, 6}})
	b := newStore(t, "b", map[string][]float64{coord.DimX: {0, 1}, coord.DimY: {1, 2}})
	if err := table.Stack([]*table.Store{a, b}, table.StackOptions{ValueDim: coord.DimY, BaseDim: coord.DimX}); err != nil {
		t.Fatalf("Stack() error = %v", err)
	}

	info, err := Prepare(cs, b, OriginAuto)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !info.Stacked {
		t.Fatal("Stacked = false, want true")
	}
	want := []string{"x", "y" + table.SuffixStackResult}
	if info.PointDims[0] != want[0] || info.PointDims[1] != want[1] {
		t.Errorf("PointDims = %v, want %v", info.PointDims, want)
	}
	if info.StackedOverDim != "y"+table.SuffixStackedOver {
		t.Errorf("StackedOverDim = %q", info.StackedOverDim)
	}
	if info.ValueDim != "y" || info.BaseDim != "x" {
		t.Errorf("ValueDim, BaseDim = %q, %q; want y, x", info.ValueDim, info.BaseDim)
	}

	pt, err := PointAt(info, cs, b, 1)
	if err != nil {
		t.Fatalf("PointAt() error = %v", err)
	}
	if pt != (coord.Point{1, 6}) {
		t.Errorf("PointAt(row 1) = %v, want [1 6]", pt)
	}
}

func TestStackedValueProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	const rows = 200

	base := make([]float64, rows)
	first := make([]float64, rows)
	second := make([]float64, rows)
	for i := range base {
		base[i] = float64(i)
		first[i] = r.Float64()*20 - 10
		second[i] = r.Float64()*20 - 10
		if r.IntN(5) == 0 {
			first[i] = math.NaN()
		}
	}

	for _, origin := range []Origin{OriginStart, OriginEnd, OriginAuto} {
		a := newStore(t, "a", map[string][]float64{coord.DimX: base, coord.DimY: first})
		b := newStore(t, "b", map[string][]float64{coord.DimX: base, coord.DimY: second})
		if err := table.Stack([]*table.Store{a, b}, table.StackOptions{ValueDim: coord.DimY, BaseDim: coord.DimX}); err != nil {
			t.Fatalf("Stack() error = %v", err)
		}
		cs := newIdentitySys(coord.DimX, coord.DimY, 0, [2]float64{-4, 25})

		info, err := Prepare(cs, b, origin)
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}
		wantOrigin := OriginValue(cs.axes[1], origin)
		over := b.CalculationInfo(coord.CalcStackedOverDimension)

		for row := 0; row < rows; row++ {
			got, fallback := info.StackedValue(b, row)
			stacked := b.Get(over, row)
			if math.IsNaN(stacked) {
				if got != wantOrigin || !fallback {
					t.Fatalf("origin %v row %d: got %v (fallback=%v), want origin %v", origin, row, got, fallback, wantOrigin)
				}
				continue
			}
			if got != stacked || fallback {
				t.Fatalf("origin %v row %d: got %v, want stacked-over %v", origin, row, got, stacked)
			}
		}
	}
}

func TestUnstackedUsesOrigin(t *testing.T) {
	cs := newIdentitySys(coord.DimX, coord.DimY, 0, [2]float64{2, 9})
	data := newStore(t, "s", map[string][]float64{coord.DimX: {0, 1, 2}, coord.DimY: {4, 5, 6}})

	info, err := Prepare(cs, data, OriginEnd)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if info.Stacked {
		t.Fatal("Stacked = true for unstacked data")
	}
	for row := 0; row < 3; row++ {
		pt, _ := PointAt(info, cs, data, row)
		if pt != (coord.Point{float64(row), 9}) {
			t.Errorf("PointAt(%d) = %v, want [%d 9]", row, pt, row)
		}
	}
}

func TestContractViolations(t *testing.T) {
	data := newStore(t, "s", map[string][]float64{coord.DimX: {0}, coord.DimY: {1}})

	oneAxis := &identitySys{
		dims: []string{coord.DimX},
		axes: []coord.Axis{coord.NewValueAxis(coord.DimX, 0, 1, 0, 1)},
	}
	threeAxes := newIdentitySys(coord.DimX, coord.DimY, 0, [2]float64{0, 1})
	threeAxes.axes = append(threeAxes.axes, coord.NewValueAxis("z", 0, 1, 0, 1))

	for name, cs := range map[string]coord.CoordSys{"one axis": oneAxis, "three axes": threeAxes, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			_, err := Prepare(cs, data, OriginAuto)
			if !errors.Is(err, ErrAxisCount) {
				t.Errorf("Prepare() error = %v, want ErrAxisCount", err)
			}
			if !sterrors.Is(err, sterrors.ErrCodePrecondition) {
				t.Errorf("Prepare() error code = %v, want PRECONDITION_VIOLATION", sterrors.GetCode(err))
			}
		})
	}

	cs := newIdentitySys(coord.DimX, coord.DimY, 0, [2]float64{0, 1})
	if _, err := PointAt(nil, cs, data, 0); !errors.Is(err, ErrNotPrepared) {
		t.Errorf("PointAt(nil) error = %v, want ErrNotPrepared", err)
	}
	if _, err := Points(context.Background(), nil, cs, data, 2); !errors.Is(err, ErrNotPrepared) {
		t.Errorf("Points(nil) error = %v, want ErrNotPrepared", err)
	}
}

func TestPointsMatchesPointAt(t *testing.T) {
	const rows = 97
	xs := make([]float64, rows)
	ys := make([]float64, rows)
	for i := range xs {
		xs[i] = float64(i % 7)
		ys[i] = float64(i)
	}
	cat := coord.NewCategoryAxis(coord.DimX, []string{"a", "b", "c", "d", "e", "f", "g"}, 0, 700)
	val := coord.NewValueAxis(coord.DimY, 0, 100, 400, 0)
	cs := coord.NewCartesian2D(cat, val)
	data := newStore(t, "s", map[string][]float64{coord.DimX: xs, coord.DimY: ys})

	info, err := Prepare(cs, data, OriginAuto)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	for _, workers := range []int{0, 1, 4, 200} {
		pts, err := Points(context.Background(), info, cs, data, workers)
		if err != nil {
			t.Fatalf("Points(workers=%d) error = %v", workers, err)
		}
		if len(pts) != rows {
			t.Fatalf("len(Points) = %d, want %d", len(pts), rows)
		}
		for row := range pts {
			want, _ := PointAt(info, cs, data, row)
			if pts[row] != want {
				t.Fatalf("workers=%d row %d: %v, want %v", workers, row, pts[row], want)
			}
		}
	}
}

func TestPointsCanceled(t *testing.T) {
	cs := newIdentitySys(coord.DimX, coord.DimY, 0, [2]float64{0, 1})
	data := newStore(t, "s", map[string][]float64{coord.DimX: {0, 1}, coord.DimY: {1, 2}})
	info, err := Prepare(cs, data, OriginAuto)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Points(ctx, info, cs, data, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Points() error = %v, want context.Canceled", err)
	}
}
