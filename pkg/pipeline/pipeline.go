// Package pipeline runs a complete resolve pass over a chart.
//
// This package implements the load → build → resolve → render sequence that
// the CLI commands share. By centralizing it, every entry point prepares
// series, places markers and completes hierarchies the same way, and emits
// the same logs and observability events.
//
// # Architecture
//
// A pass consists of these stages:
//
//  1. Load: Read a chart fixture and build its live objects
//  2. Series: Prepare each series once, then resolve its rows in parallel
//  3. Markers: Place point and area markers
//  4. Tree: Complete hierarchy values, sort siblings, validate the view root
//  5. Render: Optionally draw the hierarchy as DOT, SVG, PNG or PDF
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Fixture: "visits.toml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range result.Series {
//	    fmt.Println(s.Name, s.Points)
//	}
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/fixture"
	"github.com/matzehuels/seriescoord/pkg/marker"
	"github.com/matzehuels/seriescoord/pkg/stack"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWorkers bounds the goroutines used to resolve one series.
	DefaultWorkers = 4

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for rendered hierarchy output.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a resolve pass. Zero values defer to the fixture.
type Options struct {
	Fixture string `json:"fixture,omitempty"`

	// Origin overrides the origin policy of every series.
	Origin string `json:"origin,omitempty"`
	// Snap forces tick snapping for every marker.
	Snap    bool `json:"snap,omitempty"`
	Workers int  `json:"workers,omitempty"`

	// Sort overrides the hierarchy sort order.
	Sort string `json:"sort,omitempty"`
	// ViewRoot overrides the drill-down path, as names below the root.
	ViewRoot []string `json:"view_root,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"`
	SubtreeOnly bool     `json:"subtree_only,omitempty"`
	Scale       float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	// Navigator carries a view root from an earlier pass. The rebuilt tree
	// replaces its tree and the stored view root is revalidated against it;
	// the fixture's view root is then ignored.
	Navigator *tree.Navigator `json:"-"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the overrides.
func (o *Options) Validate() error {
	if o.Origin != "" {
		if _, err := stack.ParseOrigin(o.Origin); err != nil {
			return err
		}
	}
	if o.Sort != "" {
		if _, err := tree.ParseSortOrder(o.Sort); err != nil {
			return err
		}
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatFromPath returns the render format implied by an output path.
func FormatFromPath(path string) (string, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", fmt.Errorf("output %q has no extension", path)
	}
	format := strings.ToLower(path[i+1:])
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	Chart   string
	Series  []SeriesResult
	Markers []MarkerResult
	// Tree is nil for charts without a hierarchy.
	Tree *TreeResult
	// Artifacts holds rendered hierarchy output keyed by format.
	Artifacts map[string][]byte
	Stats     Stats
}

// SeriesResult is one resolved series.
type SeriesResult struct {
	Name   string           `json:"name"`
	Info   *stack.CoordInfo `json:"info"`
	Points []coord.Point    `json:"points"`
	// Values are the stacked-on values each point was resolved from.
	Values fixture.Floats `json:"values"`
	// Fallbacks lists the rows of a stacked series drawn from the origin.
	Fallbacks []int `json:"fallbacks,omitempty"`
}

// MarkerResult is one placed marker. Drawable is false when the point (or
// any area corner) is NaN.
type MarkerResult struct {
	Name     string       `json:"name"`
	Series   string       `json:"series"`
	Point    coord.Point  `json:"point"`
	Area     *marker.Area `json:"area,omitempty"`
	Drawable bool         `json:"drawable"`
}

// TreeResult is a completed hierarchy with its validated view root.
type TreeResult struct {
	Tree      *tree.Tree
	Navigator *tree.Navigator
	ViewRoot  tree.NodeID
	Path      []tree.PathEntry
	Clamped   int
	// FellBack is true when the requested view root was rejected.
	FellBack bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	RowCount    int
	NodeCount   int
	ResolveTime time.Duration
	TreeTime    time.Duration
	RenderTime  time.Duration
}
