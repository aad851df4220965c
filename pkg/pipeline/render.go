package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/seriescoord/pkg/cache"
	"github.com/matzehuels/seriescoord/pkg/observability"
	"github.com/matzehuels/seriescoord/pkg/render/dot"
)

// Render draws a completed hierarchy in every format of opts.Formats.
// Rendered diagrams are looked up in and stored to the runner's cache; DOT
// source is always generated.
func (r *Runner) Render(ctx context.Context, tr *TreeResult, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	src := dot.ToDOT(tr.Tree, dot.Options{
		ViewRoot:    tr.ViewRoot,
		SubtreeOnly: opts.SubtreeOnly,
		Detailed:    opts.Detailed,
	})

	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		var data []byte
		var err error
		if format == FormatDOT {
			data = []byte(src)
		} else {
			data, err = r.renderCached(ctx, src, format, opts)
		}

		hooks.OnRenderComplete(ctx, format, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) renderCached(ctx context.Context, src, format string, opts Options) ([]byte, error) {
	scale := 0.0
	if format == FormatPNG {
		scale = opts.Scale
	}
	key := cache.ArtifactKey([]byte(src), format, scale)
	if data, ok, err := r.Cache.Get(ctx, key); err != nil {
		opts.Logger.Warn("artifact cache read failed", "format", format, "error", err)
	} else if ok {
		opts.Logger.Debug("artifact cache hit", "format", format)
		return data, nil
	}

	var data []byte
	var err error
	switch format {
	case FormatSVG:
		data, err = dot.RenderSVG(ctx, src)
	case FormatPNG:
		data, err = dot.RenderPNG(ctx, src, scale)
	case FormatPDF:
		data, err = dot.RenderPDF(ctx, src)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		opts.Logger.Warn("artifact cache write failed", "format", format, "error", err)
	}
	return data, nil
}
