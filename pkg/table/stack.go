package table

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/errors"
)

// Column name suffixes for the generated stack columns.
const (
	SuffixStackResult = "__stack_result"
	SuffixStackedOver = "__stacked_over"
)

// Strategy decides which earlier series a value is stacked on.
type Strategy int

const (
	// StrategySameSign stacks positive values on the positive running total
	// and negative values on the negative one.
	StrategySameSign Strategy = iota
	// StrategyAll stacks on the nearest earlier series regardless of sign.
	StrategyAll
	// StrategyPositive stacks only on earlier positive totals.
	StrategyPositive
	// StrategyNegative stacks only on earlier negative totals.
	StrategyNegative
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAll:
		return "all"
	case StrategyPositive:
		return "positive"
	case StrategyNegative:
		return "negative"
	default:
		return "samesign"
	}
}

// ParseStrategy parses samesign, all, positive or negative. Empty means samesign.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "", "samesign":
		return StrategySameSign, nil
	case "all":
		return StrategyAll, nil
	case "positive":
		return StrategyPositive, nil
	case "negative":
		return StrategyNegative, nil
	default:
		return StrategySameSign, errors.New(errors.ErrCodeInvalidInput,
			"stack strategy must be one of samesign, all, positive, negative: got %q", s)
	}
}

func (s Strategy) accepts(sum, val float64) bool {
	switch s {
	case StrategyAll:
		return true
	case StrategyPositive:
		return val > 0
	case StrategyNegative:
		return val < 0
	default:
		return (sum >= 0 && val > 0) || (sum <= 0 && val < 0)
	}
}

// StackOptions configures Stack.
type StackOptions struct {
	// ValueDim is the coordinate dimension being accumulated (the value axis).
	ValueDim string
	// BaseDim is the coordinate dimension rows are matched on across series.
	BaseDim string
	// ByIndex matches rows by index instead of by base value.
	ByIndex  bool
	Strategy Strategy
}

// Stack accumulates the ValueDim column of each store onto the stores before
// it, in order. For every store it writes two columns:
//
//   - <value>__stack_result: the cumulative total including this series
//   - <value>__stacked_over: the total this series sits on, NaN when it sits
//     directly on the origin
//
// and records stackedDimension, stackedByDimension, stackResultDimension and
// stackedOverDimension in the store's calculation info. Rows whose own value
// is NaN get NaN in both columns.
func Stack(group []*Store, opts StackOptions) error {
	if opts.ValueDim == "" {
		return errors.New(errors.ErrCodeInvalidInput, "stack value dimension cannot be empty")
	}
	type lookup struct {
		result  []float64
		byValue map[float64]int
	}
	done := make([]lookup, 0, len(group))

	for _, s := range group {
		valueCol := s.MapDimension(opts.ValueDim)
		if valueCol == "" {
			return errors.New(errors.ErrCodeNotFound,
				"series %q has no column for dimension %q", s.Name(), opts.ValueDim)
		}
		baseCol := s.MapDimension(opts.BaseDim)
		if baseCol == "" && !opts.ByIndex {
			return errors.New(errors.ErrCodeNotFound,
				"series %q has no column for dimension %q to stack by", s.Name(), opts.BaseDim)
		}

		n := s.Count()
		result := make([]float64, n)
		over := make([]float64, n)
		for row := 0; row < n; row++ {
			sum := s.Get(valueCol, row)
			stackedOver := math.NaN()
			if math.IsNaN(sum) {
				result[row], over[row] = math.NaN(), math.NaN()
				continue
			}
			for j := len(done) - 1; j >= 0; j-- {
				prev := done[j]
				idx := row
				if !opts.ByIndex {
					var ok bool
					if idx, ok = prev.byValue[s.Get(baseCol, row)]; !ok {
						continue
					}
				}
				if idx >= len(prev.result) {
					continue
				}
				val := prev.result[idx]
				if math.IsNaN(val) {
					continue
				}
				if opts.Strategy.accepts(sum, val) {
					sum += val
					stackedOver = val
					break
				}
			}
			result[row] = sum
			over[row] = stackedOver
		}

		resultCol := valueCol + SuffixStackResult
		overCol := valueCol + SuffixStackedOver
		if err := s.setColumn(resultCol, result); err != nil {
			return err
		}
		if err := s.setColumn(overCol, over); err != nil {
			return err
		}
		s.SetCalculationInfo(coord.CalcStackedDimension, valueCol)
		s.SetCalculationInfo(coord.CalcStackedByDimension, baseCol)
		s.SetCalculationInfo(coord.CalcStackResultDimension, resultCol)
		s.SetCalculationInfo(coord.CalcStackedOverDimension, overCol)

		l := lookup{result: result}
		if !opts.ByIndex {
			l.byValue = make(map[float64]int, n)
			for row := 0; row < n; row++ {
				b := s.Get(baseCol, row)
				if _, seen := l.byValue[b]; !seen && !math.IsNaN(b) {
					l.byValue[b] = row
				}
			}
		}
		done = append(done, l)
	}
	return nil
}

// setColumn adds or replaces a generated column so Stack can be rerun.
func (s *Store) setColumn(name string, values []float64) error {
	if _, exists := s.cols[name]; exists {
		if len(values) != s.Count() {
			return fmt.Errorf("replace column %q: row count mismatch", name)
		}
		s.cols[name] = values
		return nil
	}
	return s.AddColumn(name, "", values)
}
