package shape

import (
	"iter"
	"math"

	"gopkg.in/yaml.v3"
)

// Circle is a circle, before its pending transform.
//
// A circle under a non-uniform scale resolves to an ellipse, which its implicit radii
// reflect; it stays a Circle nonetheless. Circle and [Ellipse] are unrelated types that
// both implement [Elliptical], and compare equal when they resolve to the same
// ellipse.
type Circle struct {
	base
	Cx, Cy float64
	R      float64
}

// NewCircle creates a circle from the values cx, cy and r, in that order. Missing
// values default to 0, 0 and 1. NewCircle panics if given more than three values.
func NewCircle(values ...float64) *Circle {
	checkValues("NewCircle", values, 3)
	return &Circle{
		base: newBase(),
		Cx:   valueOr(values, 0, 0),
		Cy:   valueOr(values, 1, 0),
		R:    math.Abs(valueOr(values, 2, 1)),
	}
}

// NewCircleFromAttributes creates a circle from the SVG attributes cx, cy and r, which
// may carry a px suffix. The transform attribute becomes the pending transform and all
// other attributes are kept as presentation attributes.
func NewCircleFromAttributes(attrs map[string]string) (*Circle, error) {
	ar := newAttributeReader(attrs)
	c := &Circle{
		Cx: ar.length("cx", 0),
		Cy: ar.length("cy", 0),
		R:  ar.size("r", 1),
	}
	if err := ar.finish(&c.base); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCircleFromShape copies a circle, or converts an ellipse with equal radii. The
// pending transform is carried over. Ellipses with different radii and all other
// shapes result in [ErrIncompatibleConversion].
func NewCircleFromShape(s Shape) (*Circle, error) {
	switch s := s.(type) {
	case *Circle:
		return s.Clone(), nil
	case *Ellipse:
		if !near(s.Rx, s.Ry) {
			return nil, incompatible(s, "circle", "radii %g and %g differ", s.Rx, s.Ry)
		}
		return &Circle{
			base: s.base.clone(),
			Cx:   s.Cx,
			Cy:   s.Cy,
			R:    s.Rx,
		}, nil
	default:
		return nil, incompatible(s, "circle", "not elliptical")
	}
}

func (c *Circle) Tag() string { return "circle" }

// Clone returns a deep copy of c.
func (c *Circle) Clone() *Circle {
	o := *c
	o.base = c.base.clone()
	return &o
}

func (c *Circle) cloneShape() Shape { return c.Clone() }

// Transform returns a copy of c with m applied after its pending transform.
func (c *Circle) Transform(m Matrix) *Circle {
	o := c.Clone()
	o.ApplyTransform(m)
	return o
}

// ImplicitCenter returns the transformed center.
func (c *Circle) ImplicitCenter() Point {
	return Pt(c.Cx, c.Cy).Transform(c.PendingTransform())
}

func (c *Circle) ImplicitCx() float64 { return c.ImplicitCenter().X }
func (c *Circle) ImplicitCy() float64 { return c.ImplicitCenter().Y }

// ImplicitRx returns the radius scaled by the x scale of the pending transform.
func (c *Circle) ImplicitRx() float64 {
	return c.R * c.Decompose().ScaleX
}

// ImplicitRy returns the radius scaled by the y scale of the pending transform.
func (c *Circle) ImplicitRy() float64 {
	return c.R * math.Abs(c.Decompose().ScaleY)
}

func (c *Circle) Equal(o Shape) bool { return Equal(c, o) }

// Reify bakes the pending transform into the circle. Transforms that scale uniformly
// and don't skew are baked completely. Otherwise, the circle has become an ellipse
// that its canonical fields cannot describe; only the translation is baked.
func (c *Circle) Reify() {
	if !c.transformed {
		return
	}
	dec := c.Decompose()
	center := c.reifyAbout(Pt(c.Cx, c.Cy))
	c.Cx, c.Cy = center.X, center.Y
	if near(dec.Skew.Radians(), 0) && near(dec.ScaleX, math.Abs(dec.ScaleY)) {
		c.R *= dec.ScaleX
		c.resetTransform()
	}
}

// Segments draws the resolved circle as four quarter arcs; see [Ellipse.Segments].
func (c *Circle) Segments() iter.Seq[Segment] {
	return ellipticalSegments(c, Pt(c.Cx, c.Cy), Vec(c.R, c.R))
}

func (c *Circle) D() string { return FormatSegments(c.Segments()) }

// UnmarshalYAML decodes a mapping of attributes, as accepted by
// [NewCircleFromAttributes].
func (c *Circle) UnmarshalYAML(value *yaml.Node) error {
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	nc, err := NewCircleFromAttributes(attrs)
	if err != nil {
		return err
	}
	*c = *nc
	return nil
}

// ellipticalSegments draws a circle or ellipse with the given canonical center and
// radii. Without skew, the arcs use the implicit center, radii and rotation. A skewed
// ellipse is drawn by transforming the untransformed drawing exactly.
func ellipticalSegments(e Elliptical, center Point, radii Vec2) iter.Seq[Segment] {
	if near(e.Skew().Radians(), 0) {
		return ellipseSegments(e.ImplicitCenter(), Vec(e.ImplicitRx(), e.ImplicitRy()), e.Rotation())
	}
	return TransformSegments(ellipseSegments(center, radii, Angle{}), e.PendingTransform())
}
