package pipeline

import (
	"context"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/fixture"
	"github.com/matzehuels/seriescoord/pkg/marker"
	"github.com/matzehuels/seriescoord/pkg/observability"
)

// ResolveMarkers places every marker of the chart against the store of the
// series it names. Markers that cannot be placed are kept with Drawable set
// to false.
func (r *Runner) ResolveMarkers(ctx context.Context, b *fixture.Built, opts Options) []MarkerResult {
	r.applyLogger(&opts)
	opts.SetDefaults()

	hooks := observability.Resolve()
	out := make([]MarkerResult, 0, len(b.Markers))
	for _, m := range b.Markers {
		var data coord.DataStore
		if s, ok := b.SeriesByName(m.Series); ok {
			data = s.Data
		}
		snap := m.Snap || opts.Snap

		res := MarkerResult{Name: m.Name, Series: m.Series}
		if m.IsArea() {
			area := marker.Range(b.Coord, data, m.Value, m.To, snap)
			res.Area = &area
			res.Point = area.Corners[0]
			res.Drawable = !area.IsNaN()
		} else {
			res.Point = marker.Point(b.Coord, data, m.Value, marker.Options{Dims: m.Dims, SnapToTick: snap})
			res.Drawable = !res.Point.IsNaN()
		}

		if !res.Drawable {
			hooks.OnMarkerUndrawable(ctx, m.Series, m.Name)
			opts.Logger.Debug("marker not drawable", "marker", m.Name, "series", m.Series)
		}
		out = append(out, res)
	}
	return out
}
