package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seriescoord/pkg/pipeline"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

type treeOpts struct {
	sort     string
	viewRoot string
	dot      bool
	output   string
	detailed bool
	subtree  bool
	scale    float64
	json     bool
}

// treeCommand completes a fixture's hierarchy and prints or renders it.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree <fixture>",
		Short: "Complete and render a hierarchical series",
		Long: `Fill in the missing values of a fixture's hierarchy from its children,
sort siblings and validate the view root.

Use --dot to print Graphviz source, or --output with a .dot, .svg, .png or
.pdf path to render a diagram. PNG and PDF output require rsvg-convert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.newRunner(cmd)
			if err != nil {
				return err
			}
			defer r.Cache.Close()
			return runTree(cmd, r, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.sort, "sort", "", "sibling order: desc, asc, none (default from fixture)")
	cmd.Flags().StringVar(&opts.viewRoot, "view-root", "", "drill-down path below the root, e.g. north/oslo")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "print the hierarchy as DOT")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "render the hierarchy to a .dot, .svg, .png or .pdf file")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "add data indices and vector values to diagram labels")
	cmd.Flags().BoolVar(&opts.subtree, "subtree", false, "draw only the view root and its descendants")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the view root subtree as JSON")

	return cmd
}

func runTree(cmd *cobra.Command, r *pipeline.Runner, path string, opts treeOpts) error {
	popts := pipeline.Options{
		Fixture:     path,
		Sort:        opts.sort,
		ViewRoot:    splitPath(opts.viewRoot),
		Detailed:    opts.detailed,
		SubtreeOnly: opts.subtree,
		Scale:       opts.scale,
	}
	var format string
	if opts.output != "" {
		f, err := pipeline.FormatFromPath(opts.output)
		if err != nil {
			return err
		}
		format = f
		popts.Formats = append(popts.Formats, f)
	}
	if opts.dot && format != pipeline.FormatDOT {
		popts.Formats = append(popts.Formats, pipeline.FormatDOT)
	}

	logger := loggerFromContext(cmd.Context())
	var spinner *Spinner
	if format == pipeline.FormatPNG || format == pipeline.FormatPDF {
		spinner = newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Rendering "+opts.output+"...")
		spinner.Start()
	}
	prog := newProgress(logger)
	res, err := r.Execute(cmd.Context(), popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	if res.Tree == nil {
		return fmt.Errorf("%s has no hierarchy", res.Chart)
	}

	out := cmd.OutOrStdout()
	if opts.dot {
		_, err := out.Write(res.Artifacts[pipeline.FormatDOT])
		return err
	}
	if opts.json {
		return writeJSON(out, res.Tree.Tree.Spec(res.Tree.ViewRoot))
	}

	printHierarchy(out, res.Tree)
	if format != "" {
		if err := os.WriteFile(opts.output, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		prog.done("Rendered " + opts.output)
		printSuccess(out, "Rendered hierarchy")
		printFile(out, opts.output)
	}
	return nil
}

func printHierarchy(w io.Writer, tr *pipeline.TreeResult) {
	t := tr.Tree
	crumbs := make([]string, len(tr.Path))
	for i, p := range tr.Path {
		crumbs[i] = p.Name
	}
	printTitle(w, strings.Join(crumbs, " "+iconArrow+" "), fmt.Sprintf("(%d nodes)", t.Len()))
	printKeyValue(w, "value", t.Value(tr.ViewRoot).String())
	printKeyValue(w, "clamped", strconv.Itoa(tr.Clamped))
	if tr.FellBack {
		printWarning(w, "requested view root not found, showing the root")
	}

	children := t.Children(tr.ViewRoot)
	if len(children) == 0 {
		return
	}
	printTable(w, []string{"node", "index", "value", "children"}, childRows(t, children), -1)
}

func childRows(t *tree.Tree, children []tree.NodeID) [][]string {
	rows := make([][]string, len(children))
	for i, id := range children {
		rows[i] = []string{
			t.Name(id),
			strconv.Itoa(t.DataIndex(id)),
			t.Value(id).String(),
			strconv.Itoa(len(t.Children(id))),
		}
	}
	return rows
}
