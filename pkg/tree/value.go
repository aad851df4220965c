package tree

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// ValueKind distinguishes how a node value was supplied.
type ValueKind int

const (
	// KindMissing is a value that was not supplied. It is the zero kind.
	KindMissing ValueKind = iota
	// KindScalar is a single number.
	KindScalar
	// KindVector is a sequence of numbers whose first element is the
	// semantic value; the rest ride along untouched.
	KindVector
)

// Value is the value of a tree node: a scalar, a vector, or missing.
// The zero value is missing.
type Value struct {
	kind   ValueKind
	scalar float64
	vector []float64
}

// Scalar returns a scalar value.
func Scalar(f float64) Value { return Value{kind: KindScalar, scalar: f} }

// Vector returns a vector value holding a copy of vs.
func Vector(vs ...float64) Value { return Value{kind: KindVector, vector: slices.Clone(vs)} }

// Missing returns a value that was not supplied.
func Missing() Value { return Value{} }

// Kind reports how the value was supplied.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the semantic value: the scalar, the first vector element,
// or NaN for missing and empty-vector values.
func (v Value) Float() float64 {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindVector:
		if len(v.vector) > 0 {
			return v.vector[0]
		}
	}
	return math.NaN()
}

// Vector returns a copy of the vector elements, or nil for other kinds.
func (v Value) Vector() []float64 {
	if v.kind != KindVector {
		return nil
	}
	return slices.Clone(v.vector)
}

// IsNaN reports whether the semantic value is absent or not a number.
func (v Value) IsNaN() bool { return math.IsNaN(v.Float()) }

// With returns a value holding f in the same shape as v. A vector keeps its
// trailing elements and gets f in its first slot; a missing value becomes a
// scalar.
func (v Value) With(f float64) Value {
	if v.kind != KindVector {
		return Scalar(f)
	}
	out := slices.Clone(v.vector)
	if len(out) == 0 {
		out = []float64{f}
	} else {
		out[0] = f
	}
	return Value{kind: KindVector, vector: out}
}

// Equal reports whether two values have the same shape and elements, with
// NaN equal to NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return sameFloat(v.scalar, o.scalar)
	case KindVector:
		return slices.EqualFunc(v.vector, o.vector, sameFloat)
	}
	return true
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return strconv.FormatFloat(v.scalar, 'g', -1, 64)
	case KindVector:
		return fmt.Sprint(v.vector)
	}
	return "-"
}

// MarshalJSON encodes missing as null, scalars as numbers and vectors as
// arrays. NaN has no JSON form and is written as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		return json.Marshal(jsonFloat(v.scalar))
	case KindVector:
		out := make([]*float64, len(v.vector))
		for i, f := range v.vector {
			out[i] = jsonFloat(f)
		}
		return json.Marshal(out)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null, a number, or an array of numbers and nulls.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	return v.decode(raw)
}

// UnmarshalTOML implements the TOML decoder's Unmarshaler interface.
func (v *Value) UnmarshalTOML(data any) error {
	return v.decode(data)
}

func (v *Value) decode(raw any) error {
	switch x := raw.(type) {
	case nil:
		*v = Missing()
		return nil
	case []any:
		vs := make([]float64, len(x))
		for i, e := range x {
			f, err := toFloat(e)
			if err != nil {
				return fmt.Errorf("value element %d: %w", i, err)
			}
			vs[i] = f
		}
		*v = Value{kind: KindVector, vector: vs}
		return nil
	default:
		f, err := toFloat(x)
		if err != nil {
			return err
		}
		*v = Scalar(f)
		return nil
	}
}

func toFloat(e any) (float64, error) {
	switch n := e.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case string:
		if n == "" || n == "-" {
			return math.NaN(), nil
		}
		return strconv.ParseFloat(n, 64)
	}
	return 0, fmt.Errorf("unsupported value type %T", e)
}

func jsonFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
