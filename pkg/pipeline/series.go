package pipeline

import (
	"context"

	"github.com/matzehuels/seriescoord/pkg/fixture"
	"github.com/matzehuels/seriescoord/pkg/observability"
	"github.com/matzehuels/seriescoord/pkg/stack"
)

// ResolveSeries prepares one series and resolves every row to a point.
// An origin override in opts replaces the series' own policy.
func (r *Runner) ResolveSeries(ctx context.Context, b *fixture.Built, s *fixture.BuiltSeries, opts Options) (SeriesResult, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	origin := s.Origin
	if opts.Origin != "" {
		o, err := stack.ParseOrigin(opts.Origin)
		if err != nil {
			return SeriesResult{}, err
		}
		origin = o
	}

	info, err := stack.Prepare(b.Coord, s.Data, origin)
	if err != nil {
		return SeriesResult{}, err
	}

	hooks := observability.Resolve()
	hooks.OnPrepare(ctx, s.Name, info.Stacked, info.ValueStart)
	opts.Logger.Debug("prepared series",
		"series", s.Name,
		"origin", origin,
		"stacked", info.Stacked,
		"value_axis", info.ValueAxisDim,
		"value_start", info.ValueStart)

	points, err := stack.Points(ctx, info, b.Coord, s.Data, opts.Workers)
	if err != nil {
		return SeriesResult{}, err
	}

	res := SeriesResult{
		Name:   s.Name,
		Info:   info,
		Points: points,
		Values: make([]float64, len(points)),
	}
	for row := range points {
		v, fallback := info.StackedValue(s.Data, row)
		res.Values[row] = v
		if fallback && info.Stacked {
			res.Fallbacks = append(res.Fallbacks, row)
			hooks.OnStackFallback(ctx, s.Name, row)
		}
	}
	if len(res.Fallbacks) > 0 {
		opts.Logger.Debug("stacked rows fell back to origin",
			"series", s.Name,
			"rows", res.Fallbacks)
	}
	return res, nil
}
