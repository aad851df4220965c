// Package table provides a column-oriented data store for one series and the
// stack calculator that accumulates values across series sharing a stack.
//
// A [Store] implements [coord.DataStore]. Columns are addressed by name and
// may be mapped to a coordinate dimension (x, y, radius, angle). Auxiliary
// "calculation info" annotations and numeric layout values written by
// upstream stages live beside the columns:
//
//	s := table.NewStore("sales")
//	_ = s.AddColumn("day", coord.DimX, []float64{0, 1, 2})
//	_ = s.AddColumn("amount", coord.DimY, []float64{10, 20, 15})
//	s.SetLayout(coord.LayoutOffset, -12)
//
// [Stack] fills the stacked-over and stack-result columns for a group of
// stores and records their names in calculation info, which is what the
// point resolver reads.
package table

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/errors"
)

// Store is column-oriented tabular data for a single series.
// The zero value is not usable; create stores with NewStore.
// Store is not safe for concurrent mutation. Concurrent reads are safe once
// all columns, calculation info and layout have been written.
type Store struct {
	name   string
	order  []string
	cols   map[string][]float64
	dims   map[string]string // coordinate dim -> column
	calc   map[string]string
	layout map[string]float64
	count  int
}

// NewStore creates an empty store.
func NewStore(name string) *Store {
	return &Store{
		name:   name,
		cols:   make(map[string][]float64),
		dims:   make(map[string]string),
		calc:   make(map[string]string),
		layout: make(map[string]float64),
		count:  -1,
	}
}

// Name returns the series name.
func (s *Store) Name() string { return s.name }

// AddColumn appends a column. coordDim may be empty for columns that are not
// plotted directly. All columns must have the same number of rows.
func (s *Store) AddColumn(name, coordDim string, values []float64) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "column name cannot be empty")
	}
	if _, exists := s.cols[name]; exists {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate column %q in series %q", name, s.name)
	}
	if s.count >= 0 && len(values) != s.count {
		return errors.New(errors.ErrCodeInvalidInput,
			"column %q has %d rows, series %q has %d", name, len(values), s.name, s.count)
	}
	s.count = len(values)
	s.cols[name] = slices.Clone(values)
	s.order = append(s.order, name)
	if coordDim != "" {
		s.dims[coordDim] = name
	}
	return nil
}

// Columns returns column names in insertion order.
func (s *Store) Columns() []string { return slices.Clone(s.order) }

// Column returns the values of a column.
func (s *Store) Column(name string) ([]float64, bool) {
	v, ok := s.cols[name]
	return v, ok
}

// MapDimension returns the column mapped to coordDim, or "".
func (s *Store) MapDimension(coordDim string) string { return s.dims[coordDim] }

// Get returns the value at (dim, row). Unknown columns and rows outside the
// store yield NaN.
func (s *Store) Get(dim string, row int) float64 {
	col, ok := s.cols[dim]
	if !ok || row < 0 || row >= len(col) {
		return math.NaN()
	}
	return col[row]
}

// Count returns the number of rows.
func (s *Store) Count() int { return max(s.count, 0) }

// CalculationInfo returns an annotation, "" when unset.
func (s *Store) CalculationInfo(key string) string { return s.calc[key] }

// SetCalculationInfo records an annotation.
func (s *Store) SetCalculationInfo(key, value string) { s.calc[key] = value }

// Layout returns a layout value written by an upstream layout stage.
func (s *Store) Layout(key string) (float64, bool) {
	v, ok := s.layout[key]
	return v, ok
}

// SetLayout records a layout value.
func (s *Store) SetLayout(key string, v float64) { s.layout[key] = v }

// String implements fmt.Stringer.
func (s *Store) String() string {
	return fmt.Sprintf("%s(%d rows, %d columns)", s.name, s.Count(), len(s.order))
}

var _ coord.DataStore = (*Store)(nil)
