package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/seriescoord/pkg/fixture"
	"github.com/matzehuels/seriescoord/pkg/observability"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

// CompleteTree fills in the chart hierarchy's missing values, sorts its
// siblings and validates the requested view root. The sort order and view
// root come from opts when set, otherwise from the fixture. With
// opts.Navigator the view root of the previous pass is revalidated instead.
func (r *Runner) CompleteTree(ctx context.Context, b *fixture.Built, opts Options) *TreeResult {
	r.applyLogger(&opts)
	opts.SetDefaults()

	hooks := observability.Tree()
	start := time.Now()
	t := b.Tree

	clamped := tree.CompleteValuesNotify(t, func(id tree.NodeID, raw float64) {
		name := strings.Join(t.NamePath(id), "/")
		hooks.OnClamp(ctx, name, raw)
		opts.Logger.Debug("clamped negative value", "node", name, "value", raw)
	})

	order := b.Sort
	if opts.Sort != "" {
		if o, err := tree.ParseSortOrder(opts.Sort); err == nil {
			order = o
		} else {
			opts.Logger.Warn("ignoring sort override", "sort", opts.Sort, "error", err)
		}
	}
	tree.Sort(t, order)

	var path []string
	nav := opts.Navigator
	fellBack := false
	if nav != nil {
		// A view root at the old tree's root moves to the new root silently.
		if prev := nav.Tree(); prev != nil {
			path = prev.NamePath(nav.ViewRoot())
		}
		fellBack = nav.SetTree(t) && len(path) > 0
	} else {
		nav = tree.NewNavigator(t)
		path = b.ViewRoot
	}
	if len(opts.ViewRoot) > 0 {
		path = opts.ViewRoot
	}
	if len(opts.ViewRoot) > 0 || (opts.Navigator == nil && len(path) > 0) {
		fellBack = resetViewRoot(nav, path)
	}
	requested := strings.Join(path, "/")
	hooks.OnViewRootReset(ctx, requested, fellBack)
	if fellBack {
		opts.Logger.Warn("view root not found, using tree root", "requested", requested)
	}

	view := nav.ViewRoot()
	hooks.OnComplete(ctx, t.Len(), clamped, time.Since(start))
	return &TreeResult{
		Tree:      t,
		Navigator: nav,
		ViewRoot:  view,
		Path:      t.PathInfo(view),
		Clamped:   clamped,
		FellBack:  fellBack,
	}
}

// resetViewRoot moves nav to the node at path. It reports true, leaving the
// view root at the tree's root, when no such node exists.
func resetViewRoot(nav *tree.Navigator, path []string) bool {
	t := nav.Tree()
	id, ok := t.FindPath(path...)
	if !ok {
		nav.Reset(nil)
		return true
	}
	ref := t.Ref(id)
	return nav.Reset(&ref)
}
