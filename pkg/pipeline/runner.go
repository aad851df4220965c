package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seriescoord/pkg/cache"
	"github.com/matzehuels/seriescoord/pkg/fixture"
	"github.com/matzehuels/seriescoord/pkg/observability"
)

// Runner executes resolve passes. It holds no per-chart state, so multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	// Cache holds rendered diagrams.
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables artifact caching and a
// nil logger uses log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute loads opts.Fixture and runs the complete pass, rendering the
// hierarchy in opts.Formats.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	opts.SetDefaults()

	b, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	result, err := r.Resolve(ctx, b, opts)
	if err != nil {
		return nil, err
	}

	if len(opts.Formats) > 0 && result.Tree != nil {
		renderStart := time.Now()
		artifacts, err := r.Render(ctx, result.Tree, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)

		r.Logger.Info("rendered hierarchy",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}
	return result, nil
}

// Resolve runs the series, marker and tree stages over a built chart.
func (r *Runner) Resolve(ctx context.Context, b *fixture.Built, opts Options) (result *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	opts.SetDefaults()

	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, b.Name, len(b.Series))
	start := time.Now()
	defer func() {
		hooks.OnResolveComplete(ctx, b.Name, time.Since(start), err)
	}()

	result = &Result{Chart: b.Name}
	result.Stats.SeriesCount = len(b.Series)

	for _, s := range b.Series {
		sr, err := r.ResolveSeries(ctx, b, s, opts)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		result.Series = append(result.Series, sr)
		result.Stats.RowCount += len(sr.Points)
	}

	result.Markers = r.ResolveMarkers(ctx, b, opts)
	result.Stats.ResolveTime = time.Since(start)

	r.Logger.Info("resolved series",
		"chart", b.Name,
		"series", result.Stats.SeriesCount,
		"rows", result.Stats.RowCount,
		"markers", len(result.Markers),
		"duration", result.Stats.ResolveTime)

	if b.Tree != nil {
		treeStart := time.Now()
		result.Tree = r.CompleteTree(ctx, b, opts)
		result.Stats.TreeTime = time.Since(treeStart)
		result.Stats.NodeCount = result.Tree.Tree.Len()

		r.Logger.Info("completed hierarchy",
			"nodes", result.Stats.NodeCount,
			"clamped", result.Tree.Clamped,
			"view_root", result.Tree.Tree.NamePath(result.Tree.ViewRoot),
			"duration", result.Stats.TreeTime)
	}
	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
