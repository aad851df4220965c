package stack

import (
	"strings"

	"github.com/matzehuels/seriescoord/pkg/coord"
	"github.com/matzehuels/seriescoord/pkg/errors"
)

// Origin selects the baseline of the value axis.
type Origin int

const (
	// OriginUnset behaves like OriginAuto.
	OriginUnset Origin = iota
	OriginAuto
	// OriginStart uses the minimum of the axis extent.
	OriginStart
	// OriginEnd uses the maximum of the axis extent.
	OriginEnd
)

// String returns the policy name; OriginUnset renders as "".
func (o Origin) String() string {
	switch o {
	case OriginAuto:
		return "auto"
	case OriginStart:
		return "start"
	case OriginEnd:
		return "end"
	default:
		return ""
	}
}

// ParseOrigin parses start, end or auto. The empty string is OriginUnset.
func ParseOrigin(s string) (Origin, error) {
	if err := errors.ValidateOriginPolicy(s); err != nil {
		return OriginUnset, err
	}
	switch strings.ToLower(s) {
	case "auto":
		return OriginAuto, nil
	case "start":
		return OriginStart, nil
	case "end":
		return OriginEnd, nil
	default:
		return OriginUnset, nil
	}
}

// OriginValue returns the baseline of axis under policy o.
//
// start and end pick the extent bounds. auto (and unset) returns 0 unless
// the whole extent lies on one side of zero, in which case it snaps to the
// bound nearer to zero. An extent straddling zero yields 0.
func OriginValue(axis coord.Axis, o Origin) float64 {
	ext := axis.Extent()
	switch o {
	case OriginStart:
		return ext[0]
	case OriginEnd:
		return ext[1]
	}
	switch {
	case ext[0] > 0:
		return ext[0]
	case ext[1] < 0:
		return ext[1]
	default:
		return 0
	}
}
