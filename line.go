package shape

import (
	"iter"

	"gopkg.in/yaml.v3"
)

// SimpleLine is a straight line between two points, before its pending transform.
type SimpleLine struct {
	base
	X1, Y1 float64
	X2, Y2 float64
}

// NewSimpleLine creates a line from the values x1, y1, x2 and y2, in that order.
// Missing values default to 0. NewSimpleLine panics if given more than four values.
func NewSimpleLine(values ...float64) *SimpleLine {
	checkValues("NewSimpleLine", values, 4)
	return &SimpleLine{
		base: newBase(),
		X1:   valueOr(values, 0, 0),
		Y1:   valueOr(values, 1, 0),
		X2:   valueOr(values, 2, 0),
		Y2:   valueOr(values, 3, 0),
	}
}

// NewSimpleLineFromAttributes creates a line from the SVG attributes x1, y1, x2 and
// y2.
func NewSimpleLineFromAttributes(attrs map[string]string) (*SimpleLine, error) {
	ar := newAttributeReader(attrs)
	l := &SimpleLine{
		X1: ar.length("x1", 0),
		Y1: ar.length("y1", 0),
		X2: ar.length("x2", 0),
		Y2: ar.length("y2", 0),
	}
	if err := ar.finish(&l.base); err != nil {
		return nil, err
	}
	return l, nil
}

// NewSimpleLineFromShape copies a line, or converts a polyline of exactly two points.
// All other shapes result in [ErrIncompatibleConversion].
func NewSimpleLineFromShape(s Shape) (*SimpleLine, error) {
	switch s := s.(type) {
	case *SimpleLine:
		return s.Clone(), nil
	case *Polyline:
		if len(s.Points) != 2 {
			return nil, incompatible(s, "line", "polyline has %d points", len(s.Points))
		}
		return &SimpleLine{
			base: s.base.clone(),
			X1:   s.Points[0].X,
			Y1:   s.Points[0].Y,
			X2:   s.Points[1].X,
			Y2:   s.Points[1].Y,
		}, nil
	default:
		return nil, incompatible(s, "line", "not an open point sequence")
	}
}

func (l *SimpleLine) Tag() string { return "line" }

// Clone returns a deep copy of l.
func (l *SimpleLine) Clone() *SimpleLine {
	o := *l
	o.base = l.base.clone()
	return &o
}

func (l *SimpleLine) cloneShape() Shape { return l.Clone() }

// Transform returns a copy of l with m applied after its pending transform.
func (l *SimpleLine) Transform(m Matrix) *SimpleLine {
	o := l.Clone()
	o.ApplyTransform(m)
	return o
}

func (l *SimpleLine) points() []Point {
	return []Point{Pt(l.X1, l.Y1), Pt(l.X2, l.Y2)}
}

func (l *SimpleLine) ImplicitX1() float64 { return Pt(l.X1, l.Y1).Transform(l.PendingTransform()).X }
func (l *SimpleLine) ImplicitY1() float64 { return Pt(l.X1, l.Y1).Transform(l.PendingTransform()).Y }
func (l *SimpleLine) ImplicitX2() float64 { return Pt(l.X2, l.Y2).Transform(l.PendingTransform()).X }
func (l *SimpleLine) ImplicitY2() float64 { return Pt(l.X2, l.Y2).Transform(l.PendingTransform()).Y }

// ImplicitPoints returns both end points mapped through the pending transform.
func (l *SimpleLine) ImplicitPoints() []Point {
	return transformPoints(l.points(), l.PendingTransform())
}

func (l *SimpleLine) Closed() bool { return false }

func (l *SimpleLine) Equal(o Shape) bool { return Equal(l, o) }

// Reify maps both end points through the pending transform.
func (l *SimpleLine) Reify() {
	if !l.transformed {
		return
	}
	m := l.PendingTransform()
	p1 := Pt(l.X1, l.Y1).Transform(m)
	p2 := Pt(l.X2, l.Y2).Transform(m)
	l.X1, l.Y1 = p1.X, p1.Y
	l.X2, l.Y2 = p2.X, p2.Y
	l.resetTransform()
}

// Segments draws the line as a moveto to the first point and a lineto to the second.
func (l *SimpleLine) Segments() iter.Seq[Segment] {
	return pointSegments(l.ImplicitPoints(), false)
}

func (l *SimpleLine) D() string { return FormatSegments(l.Segments()) }

// UnmarshalYAML decodes a mapping of attributes, as accepted by
// [NewSimpleLineFromAttributes].
func (l *SimpleLine) UnmarshalYAML(value *yaml.Node) error {
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	nl, err := NewSimpleLineFromAttributes(attrs)
	if err != nil {
		return err
	}
	*l = *nl
	return nil
}
