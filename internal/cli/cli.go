// Package cli implements the seriescoord command-line interface.
//
// The commands load a chart fixture, run it through [pipeline.Runner] and
// print what the resolver computed:
//
//   - points: prepared coordinate info and the stacked-on point of every row
//   - markers: point and area marker positions
//   - tree: completed hierarchy values, the view root and rendered diagrams
//   - explore: interactive drill-down through the hierarchy
//
// All commands accept --verbose (-v) for debug-level logging. The logger is
// attached to the command context.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seriescoord/pkg/buildinfo"
	"github.com/matzehuels/seriescoord/pkg/cache"
	"github.com/matzehuels/seriescoord/pkg/pipeline"
)

const appName = "seriescoord"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	noCache  bool
	cacheURL string
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Seriescoord resolves chart series to coordinates",
		Long: `Seriescoord prepares stacked chart series against a coordinate system,
places markers, and completes hierarchical series for drill-down views.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "do not cache rendered diagrams")
	root.PersistentFlags().StringVar(&c.cacheURL, "cache-url", os.Getenv("SERIESCOORD_CACHE_URL"),
		"redis:// URL of a shared diagram cache (default: local cache directory)")

	root.AddCommand(c.pointsCommand())
	root.AddCommand(c.markersCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. The caller closes the
// runner's cache.
func (c *CLI) newRunner(cmd *cobra.Command) (*pipeline.Runner, error) {
	store, err := c.newCache(cmd)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, loggerFromContext(cmd.Context())), nil
}

func (c *CLI) newCache(cmd *cobra.Command) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if c.cacheURL != "" {
		rc, err := cache.NewRedisCache(cmd.Context(), c.cacheURL, appName+":")
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/seriescoord/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// splitPath parses a slash-separated node path. Empty input means no path.
func splitPath(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
