package shape

import (
	"iter"
	"math"

	"gopkg.in/yaml.v3"
)

// Ellipse is an axis-aligned ellipse, before its pending transform.
type Ellipse struct {
	base
	Cx, Cy float64
	Rx, Ry float64
}

// NewEllipse creates an ellipse from the values cx, cy, rx and ry, in that order.
// Missing values default to 0, 0 and 1; a missing ry takes the value of rx. NewEllipse
// panics if given more than four values.
func NewEllipse(values ...float64) *Ellipse {
	checkValues("NewEllipse", values, 4)
	rx := math.Abs(valueOr(values, 2, 1))
	return &Ellipse{
		base: newBase(),
		Cx:   valueOr(values, 0, 0),
		Cy:   valueOr(values, 1, 0),
		Rx:   rx,
		Ry:   math.Abs(valueOr(values, 3, rx)),
	}
}

// NewEllipseFromAttributes creates an ellipse from the SVG attributes cx, cy, rx and
// ry, which may carry a px suffix. A missing rx or ry takes the value of the other;
// if both are missing, they default to 1. The transform attribute becomes the pending
// transform and all other attributes are kept as presentation attributes.
func NewEllipseFromAttributes(attrs map[string]string) (*Ellipse, error) {
	ar := newAttributeReader(attrs)
	e := &Ellipse{
		Cx: ar.length("cx", 0),
		Cy: ar.length("cy", 0),
	}
	hasRx, hasRy := ar.has("rx"), ar.has("ry")
	e.Rx = ar.size("rx", 1)
	e.Ry = ar.size("ry", 1)
	switch {
	case hasRx && !hasRy:
		e.Ry = e.Rx
	case hasRy && !hasRx:
		e.Rx = e.Ry
	}
	if err := ar.finish(&e.base); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEllipseFromShape copies an ellipse or converts a circle. The pending transform is
// carried over. All other shapes result in [ErrIncompatibleConversion].
func NewEllipseFromShape(s Shape) (*Ellipse, error) {
	switch s := s.(type) {
	case *Ellipse:
		return s.Clone(), nil
	case *Circle:
		return &Ellipse{
			base: s.base.clone(),
			Cx:   s.Cx,
			Cy:   s.Cy,
			Rx:   s.R,
			Ry:   s.R,
		}, nil
	default:
		return nil, incompatible(s, "ellipse", "not elliptical")
	}
}

func (e *Ellipse) Tag() string { return "ellipse" }

// Clone returns a deep copy of e.
func (e *Ellipse) Clone() *Ellipse {
	o := *e
	o.base = e.base.clone()
	return &o
}

func (e *Ellipse) cloneShape() Shape { return e.Clone() }

// Transform returns a copy of e with m applied after its pending transform.
func (e *Ellipse) Transform(m Matrix) *Ellipse {
	o := e.Clone()
	o.ApplyTransform(m)
	return o
}

func (e *Ellipse) ImplicitCenter() Point {
	return Pt(e.Cx, e.Cy).Transform(e.PendingTransform())
}

func (e *Ellipse) ImplicitCx() float64 { return e.ImplicitCenter().X }
func (e *Ellipse) ImplicitCy() float64 { return e.ImplicitCenter().Y }

func (e *Ellipse) ImplicitRx() float64 {
	return e.Rx * e.Decompose().ScaleX
}

func (e *Ellipse) ImplicitRy() float64 {
	return e.Ry * math.Abs(e.Decompose().ScaleY)
}

func (e *Ellipse) Equal(o Shape) bool { return Equal(e, o) }

// Reify bakes the pending transform into the ellipse. The center and radii absorb
// translation and scale; a rotation stays pending as a rotation about the new center.
// A skewed ellipse only has its translation baked.
func (e *Ellipse) Reify() {
	if !e.transformed {
		return
	}
	dec := e.Decompose()
	if !near(dec.Skew.Radians(), 0) {
		center := e.reifyAbout(Pt(e.Cx, e.Cy))
		e.Cx, e.Cy = center.X, center.Y
		return
	}
	center := e.ImplicitCenter()
	e.Cx, e.Cy = center.X, center.Y
	e.Rx *= dec.ScaleX
	e.Ry *= math.Abs(dec.ScaleY)
	e.setRotationAbout(dec.Rotation, center)
}

// Segments draws the resolved ellipse as four quarter arcs. The drawing starts at the
// end of the resolved x radius and runs through the ends of the y radius and the
// negative x radius, ending with an explicit close. A skewed ellipse is instead drawn
// by transforming the untransformed drawing exactly.
func (e *Ellipse) Segments() iter.Seq[Segment] {
	return ellipticalSegments(e, Pt(e.Cx, e.Cy), Vec(e.Rx, e.Ry))
}

func (e *Ellipse) D() string { return FormatSegments(e.Segments()) }

// UnmarshalYAML decodes a mapping of attributes, as accepted by
// [NewEllipseFromAttributes].
func (e *Ellipse) UnmarshalYAML(value *yaml.Node) error {
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	ne, err := NewEllipseFromAttributes(attrs)
	if err != nil {
		return err
	}
	*e = *ne
	return nil
}
