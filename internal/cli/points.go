package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seriescoord/pkg/pipeline"
)

type pointsOpts struct {
	origin  string
	workers int
	json    bool
}

// pointsCommand prints the prepared coordinate info of every series and the
// stacked-on point of each row.
func (c *CLI) pointsCommand() *cobra.Command {
	var opts pointsOpts

	cmd := &cobra.Command{
		Use:   "points <fixture>",
		Short: "Resolve every series row to a stacked-on point",
		Long: `Prepare each series of a chart fixture against its coordinate system and
resolve every row to the point its bar or area segment starts from.

Stacked rows start on the series below them; rows with nothing below fall
back to the value axis origin and are listed as fallbacks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.newRunner(cmd)
			if err != nil {
				return err
			}
			defer r.Cache.Close()

			res, err := r.Execute(cmd.Context(), pipeline.Options{
				Fixture: args[0],
				Origin:  opts.origin,
				Workers: opts.workers,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, res.Series)
			}
			for _, s := range res.Series {
				printSeries(out, s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.origin, "origin", "", "override the origin policy: auto, start, end")
	cmd.Flags().IntVar(&opts.workers, "workers", pipeline.DefaultWorkers, "goroutines per series")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")

	return cmd
}

func printSeries(w io.Writer, s pipeline.SeriesResult) {
	printTitle(w, s.Name, fmt.Sprintf("(%d rows)", len(s.Points)))
	printKeyValue(w, "stacked", fmtBool(s.Info.Stacked))
	printKeyValue(w, "value axis", s.Info.ValueAxisDim)
	printKeyValue(w, "value start", fmtFloat(s.Info.ValueStart))
	printKeyValue(w, "base offset", strconv.Itoa(s.Info.BaseDataOffset))
	printKeyValue(w, "fallbacks", fmtInts(s.Fallbacks))

	fallback := make(map[int]bool, len(s.Fallbacks))
	for _, r := range s.Fallbacks {
		fallback[r] = true
	}
	rows := make([][]string, len(s.Points))
	for i, p := range s.Points {
		origin := ""
		if fallback[i] {
			origin = iconWarning
		}
		rows[i] = []string{strconv.Itoa(i), fmtFloat(s.Values[i]), fmtPoint(p), origin}
	}
	printTable(w, []string{"row", "value", "point", "origin"}, rows, -1)
}
