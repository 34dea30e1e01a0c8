package shape

import (
	"fmt"
	"iter"
)

// Shape is the contract shared by all shapes and by [Path].
//
// A shape stores its canonical geometry, its presentation attributes and a pending
// transform. Transforms applied to a shape accumulate in the pending transform
// without touching the canonical geometry, until [Shape.Reify] bakes them in.
// Geometry queries and serialization always reflect the pending transform.
type Shape interface {
	// Tag returns the SVG element name of the shape, such as "rect".
	Tag() string
	// Attributes returns the shape's presentation attributes. The map is owned by the
	// shape; modifying it modifies the shape.
	Attributes() Attributes
	// PendingTransform returns the transform that hasn't been applied to the canonical
	// geometry yet.
	PendingTransform() Matrix
	// ApplyTransform composes m onto the pending transform, in place. m applies after
	// whatever transform is already pending.
	ApplyTransform(m Matrix)
	// Reify bakes as much of the pending transform into the canonical geometry as the
	// geometry can represent. The shape is equal to itself before and after.
	Reify()
	// Segments returns the shape's drawing program, with the pending transform
	// resolved.
	Segments() iter.Seq[Segment]
	// D returns the shape's drawing program as SVG path data.
	D() string
	// Equal reports whether two shapes are geometrically equal and have the same
	// presentation attributes.
	Equal(o Shape) bool

	cloneShape() Shape
	attributes() Attributes
}

// Elliptical is implemented by shapes whose resolved geometry is an ellipse.
type Elliptical interface {
	Shape
	ImplicitCenter() Point
	ImplicitRx() float64
	ImplicitRy() float64
	Rotation() Angle
	Skew() Angle
}

// PointSequence is implemented by shapes whose resolved geometry is a sequence of
// points connected by straight lines.
type PointSequence interface {
	Shape
	ImplicitPoints() []Point
	// Closed reports whether the last point connects back to the first.
	Closed() bool
}

var (
	_ Elliptical    = (*Circle)(nil)
	_ Elliptical    = (*Ellipse)(nil)
	_ Shape         = (*Rect)(nil)
	_ PointSequence = (*SimpleLine)(nil)
	_ PointSequence = (*Polyline)(nil)
	_ PointSequence = (*Polygon)(nil)
	_ Shape         = (*Path)(nil)
)

// Clone returns a deep copy of s, including its presentation attributes and its
// pending transform.
func Clone(s Shape) Shape {
	return s.cloneShape()
}

// Transform returns a copy of s with m applied after its pending transform. s is not
// modified.
func Transform(s Shape, m Matrix) Shape {
	c := s.cloneShape()
	c.ApplyTransform(m)
	return c
}

// Equal reports whether a and b are equal.
//
// Shapes are compared by the capabilities they share, not by their types: a circle
// and an ellipse are equal if they resolve to the same ellipse, a line and a
// two-point polyline are equal if they have the same end points, and a path is equal
// to any shape that draws the same absolute drawing program. Presentation attributes
// must be equal, and open point sequences never equal closed ones.
//
// Shapes that share no notion of geometry are simply not equal.
func Equal(a, b Shape) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !a.attributes().Equal(b.attributes()) {
		return false
	}

	_, pa := a.(*Path)
	_, pb := b.(*Path)
	if pa || pb {
		return segmentsEqual(a.Segments(), b.Segments())
	}

	if ea, ok := a.(Elliptical); ok {
		eb, ok := b.(Elliptical)
		return ok && ellipticalEqual(ea, eb)
	}
	if ra, ok := a.(*Rect); ok {
		rb, ok := b.(*Rect)
		return ok && rectEqual(ra, rb)
	}
	if sa, ok := a.(PointSequence); ok {
		sb, ok := b.(PointSequence)
		return ok &&
			sa.Closed() == sb.Closed() &&
			pointsEqual(sa.ImplicitPoints(), sb.ImplicitPoints())
	}
	return false
}

func ellipticalEqual(a, b Elliptical) bool {
	return a.ImplicitCenter().Equal(b.ImplicitCenter()) &&
		a.Skew().Equal(b.Skew()) &&
		ellipsesEqual(
			Vec(a.ImplicitRx(), a.ImplicitRy()), a.Rotation(),
			Vec(b.ImplicitRx(), b.ImplicitRy()), b.Rotation())
}

// base holds the state common to all shapes. The zero value has no attributes and
// the identity as its pending transform.
type base struct {
	attrs Attributes
	// pending is only meaningful if transformed is set, so that the zero value of
	// shapes is untransformed.
	pending     Matrix
	transformed bool
}

func newBase() base {
	return base{attrs: make(Attributes)}
}

func (b *base) Attributes() Attributes {
	if b.attrs == nil {
		b.attrs = make(Attributes)
	}
	return b.attrs
}

// attributes returns the attributes without allocating, so that reading a zero value
// shape doesn't modify it.
func (b *base) attributes() Attributes { return b.attrs }

func (b *base) PendingTransform() Matrix {
	if !b.transformed {
		return Identity
	}
	return b.pending
}

func (b *base) ApplyTransform(m Matrix) {
	b.setTransform(m.Mul(b.PendingTransform()))
}

func (b *base) setTransform(m Matrix) {
	b.pending = m
	b.transformed = true
}

func (b *base) resetTransform() {
	b.pending = Matrix{}
	b.transformed = false
}

// Decompose returns the decomposition of the pending transform.
func (b *base) Decompose() Decomposition {
	return b.PendingTransform().Decompose()
}

// Rotation returns the rotation of the pending transform.
func (b *base) Rotation() Angle {
	return b.Decompose().Rotation
}

// Skew returns the skew of the pending transform.
func (b *base) Skew() Angle {
	return b.Decompose().Skew
}

func (b *base) clone() base {
	return base{
		attrs:       b.attrs.Clone(),
		pending:     b.pending,
		transformed: b.transformed,
	}
}

// reifyAbout bakes the translation of the pending transform into anchor and keeps the
// linear part pending about the new anchor. It returns the new anchor.
func (b *base) reifyAbout(anchor Point) Point {
	m := b.PendingTransform()
	p := anchor.Transform(m)
	b.setLinearAbout(m, p)
	return p
}

// setLinearAbout sets the pending transform to the linear part of m, acting about
// center.
func (b *base) setLinearAbout(m Matrix, center Point) {
	lin := Translate(center.X, center.Y).Mul(m.Linear()).PreTranslate(-center.X, -center.Y)
	if lin.IsIdentity() {
		b.resetTransform()
	} else {
		b.setTransform(lin)
	}
}

// setRotationAbout sets the pending transform to a rotation of th about center.
func (b *base) setRotationAbout(th Angle, center Point) {
	if near(th.Radians(), 0) {
		b.resetTransform()
	} else {
		b.setTransform(RotateAbout(th, center))
	}
}

// NewShapeFromAttributes creates the shape named by the tag attribute (rect, circle,
// ellipse, line, polyline, polygon or path) from an attribute mapping. See the
// variants' constructors, such as [NewRectFromAttributes], for how attributes are
// interpreted.
func NewShapeFromAttributes(attrs map[string]string) (Shape, error) {
	var (
		s   Shape
		err error
	)
	switch tag := attrs["tag"]; tag {
	case "rect":
		s, err = NewRectFromAttributes(attrs)
	case "circle":
		s, err = NewCircleFromAttributes(attrs)
	case "ellipse":
		s, err = NewEllipseFromAttributes(attrs)
	case "line":
		s, err = NewSimpleLineFromAttributes(attrs)
	case "polyline":
		s, err = NewPolylineFromAttributes(attrs)
	case "polygon":
		s, err = NewPolygonFromAttributes(attrs)
	case "path":
		s, err = NewPathFromAttributes(attrs)
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidAttribute, tag)
	}
	if err != nil {
		// Don't return a typed nil pointer as a non-nil Shape.
		return nil, err
	}
	return s, nil
}

func incompatible(from Shape, to string, format string, args ...any) error {
	return fmt.Errorf("%w: %s to %s: %s", ErrIncompatibleConversion, from.Tag(), to, fmt.Sprintf(format, args...))
}

func checkValues(name string, values []float64, max int) {
	if len(values) > max {
		panic(fmt.Sprintf("%s takes at most %d values, got %d", name, max, len(values)))
	}
}

// valueOr returns values[i], or def if there aren't enough values.
func valueOr(values []float64, i int, def float64) float64 {
	if i < len(values) {
		return values[i]
	}
	return def
}
