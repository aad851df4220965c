package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/seriescoord/pkg/pipeline"
)

// markersCommand prints the position of every marker in a fixture.
func (c *CLI) markersCommand() *cobra.Command {
	var snap, asJSON bool

	cmd := &cobra.Command{
		Use:   "markers <fixture>",
		Short: "Place point and area markers",
		Long: `Resolve the markers of a chart fixture to pixel positions. Point markers
are centred on their series' bars; with --snap category coordinates move to
the band boundaries instead. Area markers report all four corners.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.newRunner(cmd)
			if err != nil {
				return err
			}
			defer r.Cache.Close()

			res, err := r.Execute(cmd.Context(), pipeline.Options{
				Fixture: args[0],
				Snap:    snap,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res.Markers)
			}
			if len(res.Markers) == 0 {
				printWarning(out, "%s has no markers", res.Chart)
				return nil
			}

			rows := make([][]string, 0, len(res.Markers))
			for _, m := range res.Markers {
				kind, pos := "point", fmtPoint(m.Point)
				if m.Area != nil {
					lo, hi := m.Area.Bounds()
					kind, pos = "area", fmtPoint(lo)+" "+iconArrow+" "+fmtPoint(hi)
				}
				rows = append(rows, []string{m.Name, m.Series, kind, pos, fmtBool(m.Drawable)})
			}
			printTitle(out, res.Chart, "markers")
			printTable(out, []string{"marker", "series", "kind", "position", "drawable"}, rows, -1)
			return nil
		},
	}

	cmd.Flags().BoolVar(&snap, "snap", false, "snap every marker to category ticks")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
