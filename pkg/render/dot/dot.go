package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/seriescoord/pkg/render"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

// Options configures hierarchy diagrams.
type Options struct {
	// ViewRoot is highlighted. tree.None disables highlighting.
	ViewRoot tree.NodeID
	// SubtreeOnly draws only ViewRoot and its descendants.
	SubtreeOnly bool
	// Detailed adds data indices and vector tails to node labels.
	Detailed bool
}

// ToDOT converts a hierarchy to Graphviz DOT source. Nodes are labelled with
// their name and value; the view root is drawn bold and filled.
func ToDOT(t *tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	start := t.Root()
	if opts.SubtreeOnly && t.Valid(opts.ViewRoot) {
		start = opts.ViewRoot
	}

	var edges []string
	queue := []tree.NodeID{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(id), strings.Join(fmtAttrs(t, id, opts), ", "))
		for _, c := range t.Children(id) {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", nodeName(id), nodeName(c)))
			queue = append(queue, c)
		}
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id tree.NodeID) string {
	return "n" + strconv.Itoa(int(id))
}

func fmtLabel(t *tree.Tree, id tree.NodeID, detailed bool) string {
	v := t.Value(id)
	label := t.Name(id) + "\n" + strconv.FormatFloat(v.Float(), 'g', 6, 64)
	if !detailed {
		return label
	}
	parts := []string{fmt.Sprintf("index: %d", t.DataIndex(id))}
	if v.Kind() == tree.KindVector {
		parts = append(parts, "value: "+v.String())
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(t *tree.Tree, id tree.NodeID, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(t, id, opts.Detailed))}
	if id == opts.ViewRoot {
		attrs = append(attrs, "style=\"rounded,filled,bold\"", "fillcolor=lightblue", "penwidth=2")
	} else if t.Value(id).Float() == 0 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders DOT source to PNG via SVG. See [render.ToPNG].
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// RenderPDF renders DOT source to PDF via SVG. See [render.ToPDF].
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales from a
// zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
