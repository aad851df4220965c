package stack

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/seriescoord/pkg/coord"
)

// CoordInfo is the per-series, per-layout-pass metadata shared by every
// row resolution. It must not be modified after Prepare returns.
type CoordInfo struct {
	// PointDims are the data columns for each coordinate dimension, with
	// stacked columns replaced by their stack-result column.
	PointDims    []string `json:"point_dims"`
	ValueStart   float64  `json:"value_start"`
	ValueAxisDim string   `json:"value_axis_dim"`
	BaseAxisDim  string   `json:"base_axis_dim"`
	Stacked      bool     `json:"stacked"`
	ValueDim     string   `json:"value_dim"`
	BaseDim      string   `json:"base_dim"`
	// BaseDataOffset is the tuple slot of the base value; the resolved
	// value goes into slot 1-BaseDataOffset.
	BaseDataOffset int    `json:"base_data_offset"`
	StackedOverDim string `json:"stacked_over_dim,omitempty"`
}

// Prepare computes the CoordInfo of one series for one layout pass.
func Prepare(cs coord.CoordSys, data coord.DataStore, origin Origin) (*CoordInfo, error) {
	roles, err := ResolveRoles(cs, data)
	if err != nil {
		return nil, err
	}

	info := &CoordInfo{
		ValueStart:     OriginValue(roles.ValueAxis, origin),
		ValueAxisDim:   roles.ValueAxis.Dim(),
		BaseAxisDim:    roles.BaseAxis.Dim(),
		ValueDim:       roles.ValueDim,
		BaseDim:        roles.BaseDim,
		BaseDataOffset: BaseDataOffset(roles.ValueAxis.Dim()),
		StackedOverDim: data.CalculationInfo(coord.CalcStackedOverDimension),
	}

	dims := cs.Dimensions()
	info.PointDims = make([]string, len(dims))
	for i, d := range dims {
		info.PointDims[i] = data.MapDimension(d)
	}
	resultDim := data.CalculationInfo(coord.CalcStackResultDimension)
	for i, d := range info.PointDims {
		if coord.IsDimensionStacked(data, d) {
			info.Stacked = true
			info.PointDims[i] = resultDim
		}
	}
	return info, nil
}

// BaseDataOffset returns 1 when the value axis occupies the first tuple slot
// (x or radius) and 0 otherwise.
func BaseDataOffset(valueAxisDim string) int {
	if valueAxisDim == coord.DimX || valueAxisDim == coord.DimRadius {
		return 1
	}
	return 0
}

// StackedValue returns the value a row is drawn from: the stacked-over value
// for stacked series, or the origin when the series is not stacked or the
// stacked-over value is NaN. fallback reports whether the origin was used.
func (c *CoordInfo) StackedValue(data coord.DataStore, row int) (v float64, fallback bool) {
	v = math.NaN()
	if c.Stacked {
		v = data.Get(c.StackedOverDim, row)
	}
	if math.IsNaN(v) {
		return c.ValueStart, true
	}
	return v, false
}

// Tuple builds the data tuple of a row in coordinate-system order.
func (c *CoordInfo) Tuple(data coord.DataStore, row int) []float64 {
	v, _ := c.StackedValue(data, row)
	tuple := make([]float64, 2)
	tuple[c.BaseDataOffset] = data.Get(c.BaseDim, row)
	tuple[1-c.BaseDataOffset] = v
	return tuple
}

// PointAt resolves the stacked-on point of one row.
func PointAt(info *CoordInfo, cs coord.CoordSys, data coord.DataStore, row int) (coord.Point, error) {
	if info == nil {
		return coord.NaNPoint(), ErrNotPrepared
	}
	return cs.DataToPoint(info.Tuple(data, row)), nil
}

// Points resolves every row of data, spreading rows across at most workers
// goroutines. Results are in row order. workers <= 0 resolves sequentially.
func Points(ctx context.Context, info *CoordInfo, cs coord.CoordSys, data coord.DataStore, workers int) ([]coord.Point, error) {
	if info == nil {
		return nil, ErrNotPrepared
	}
	n := data.Count()
	out := make([]coord.Point, n)
	if n == 0 {
		return out, nil
	}
	if workers <= 0 {
		workers = 1
	}
	chunk := max((n+workers-1)/workers, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for row := start; row < end; row++ {
				out[row] = cs.DataToPoint(info.Tuple(data, row))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
