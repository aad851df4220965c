package pipeline

import (
	"github.com/matzehuels/seriescoord/pkg/fixture"
)

// Load reads opts.Fixture and builds its coordinate system, series stores
// and hierarchy.
func (r *Runner) Load(opts Options) (*fixture.Built, error) {
	c, err := fixture.Load(opts.Fixture)
	if err != nil {
		return nil, err
	}
	b, err := c.Build()
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded fixture",
		"path", opts.Fixture,
		"chart", b.Name,
		"series", len(b.Series),
		"markers", len(b.Markers),
		"tree", b.Tree != nil)
	return b, nil
}
