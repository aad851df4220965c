package coord

import "math"

// Cartesian2D is a rectangular coordinate system with tuples ordered [x, y].
type Cartesian2D struct {
	X, Y Axis
	// Base forces the base axis dimension. When empty the first category
	// axis is the base axis, falling back to X.
	Base string
}

// NewCartesian2D creates a cartesian system over two axes.
func NewCartesian2D(x, y Axis) *Cartesian2D {
	return &Cartesian2D{X: x, Y: y}
}

func (c *Cartesian2D) Dimensions() []string { return []string{DimX, DimY} }

func (c *Cartesian2D) Axes() []Axis {
	axes := make([]Axis, 0, 2)
	if c.X != nil {
		axes = append(axes, c.X)
	}
	if c.Y != nil {
		axes = append(axes, c.Y)
	}
	return axes
}

func (c *Cartesian2D) BaseAxis() Axis {
	switch c.Base {
	case DimX:
		return c.X
	case DimY:
		return c.Y
	}
	if c.Y != nil && c.Y.Type() == AxisCategory && (c.X == nil || c.X.Type() != AxisCategory) {
		return c.Y
	}
	return c.X
}

func (c *Cartesian2D) OtherAxis(a Axis) Axis {
	if a == c.X {
		return c.Y
	}
	return c.X
}

// DataToPoint maps [x, y] to global pixel coordinates. Missing components
// yield NaN.
func (c *Cartesian2D) DataToPoint(data []float64) Point {
	pt := NaNPoint()
	if len(data) > 0 && c.X != nil {
		pt[0] = c.X.ToGlobalCoord(c.X.DataToCoord(data[0]))
	}
	if len(data) > 1 && c.Y != nil {
		pt[1] = c.Y.ToGlobalCoord(c.Y.DataToCoord(data[1]))
	}
	return pt
}

// ClampData clamps each component into its axis extent.
func (c *Cartesian2D) ClampData(data []float64) []float64 {
	return clampTuple(c.Axes(), data)
}

// Polar is a polar coordinate system with tuples ordered [radius, angle].
// The radius axis maps data to a pixel radius and the angle axis maps data
// to degrees, counter-clockwise from the positive x direction.
//
// Polar is not a [Clamper]: tick snapping and bar centering work on pixel
// components, which have no meaning once radius and angle are turned into
// x and y, so markers on polar systems are undrawable.
type Polar struct {
	Radius, Angle Axis
	CX, CY        float64
	// Base forces the base axis dimension. When empty the first category
	// axis is the base axis, falling back to Angle.
	Base string
}

// NewPolar creates a polar system centred at (cx, cy).
func NewPolar(radius, angle Axis, cx, cy float64) *Polar {
	return &Polar{Radius: radius, Angle: angle, CX: cx, CY: cy}
}

func (p *Polar) Dimensions() []string { return []string{DimRadius, DimAngle} }

func (p *Polar) Axes() []Axis {
	axes := make([]Axis, 0, 2)
	if p.Radius != nil {
		axes = append(axes, p.Radius)
	}
	if p.Angle != nil {
		axes = append(axes, p.Angle)
	}
	return axes
}

func (p *Polar) BaseAxis() Axis {
	switch p.Base {
	case DimRadius:
		return p.Radius
	case DimAngle:
		return p.Angle
	}
	if p.Radius != nil && p.Radius.Type() == AxisCategory && (p.Angle == nil || p.Angle.Type() != AxisCategory) {
		return p.Radius
	}
	return p.Angle
}

func (p *Polar) OtherAxis(a Axis) Axis {
	if a == p.Radius {
		return p.Angle
	}
	return p.Radius
}

// DataToPoint converts [radius, angle] into cartesian pixel coordinates.
// Screen y grows downwards, so positive angles turn counter-clockwise.
func (p *Polar) DataToPoint(data []float64) Point {
	if len(data) < 2 || p.Radius == nil || p.Angle == nil {
		return NaNPoint()
	}
	r := p.Radius.DataToCoord(data[0])
	rad := -p.Angle.DataToCoord(data[1]) * math.Pi / 180
	return Point{
		p.CX + r*math.Cos(rad),
		p.CY + r*math.Sin(rad),
	}
}

func clampTuple(axes []Axis, data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	for i := range out {
		if i < len(axes) {
			out[i] = clampToExtent(axes[i], out[i])
		}
	}
	return out
}
