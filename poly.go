package shape

import (
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Polyline is an open sequence of points connected by straight lines, before its
// pending transform.
type Polyline struct {
	base
	Points []Point
}

// Polygon is a closed sequence of points connected by straight lines, before its
// pending transform. The last point connects back to the first.
type Polygon struct {
	base
	Points []Point
}

func NewPolyline(pts ...Point) *Polyline {
	return &Polyline{base: newBase(), Points: slices.Clone(pts)}
}

func NewPolygon(pts ...Point) *Polygon {
	return &Polygon{base: newBase(), Points: slices.Clone(pts)}
}

// NewPolylineFromAttributes creates a polyline from the SVG points attribute, a list
// of coordinate pairs such as "0,0 10,10".
func NewPolylineFromAttributes(attrs map[string]string) (*Polyline, error) {
	ar := newAttributeReader(attrs)
	p := &Polyline{Points: ar.points("points")}
	if err := ar.finish(&p.base); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPolygonFromAttributes creates a polygon from the SVG points attribute.
func NewPolygonFromAttributes(attrs map[string]string) (*Polygon, error) {
	ar := newAttributeReader(attrs)
	p := &Polygon{Points: ar.points("points")}
	if err := ar.finish(&p.base); err != nil {
		return nil, err
	}
	return p, nil
}

// sequenceOf returns the untransformed points and the state of lines, polylines and
// polygons.
func sequenceOf(s Shape) ([]Point, *base, bool) {
	switch s := s.(type) {
	case *SimpleLine:
		return s.points(), &s.base, true
	case *Polyline:
		return s.Points, &s.base, true
	case *Polygon:
		return s.Points, &s.base, true
	default:
		return nil, nil, false
	}
}

// NewPolylineFromShape converts a line, polyline or polygon into a polyline with the
// same points. A polygon loses its closing line. All other shapes result in
// [ErrIncompatibleConversion].
func NewPolylineFromShape(s Shape) (*Polyline, error) {
	pts, b, ok := sequenceOf(s)
	if !ok {
		return nil, incompatible(s, "polyline", "not a point sequence")
	}
	return &Polyline{base: b.clone(), Points: slices.Clone(pts)}, nil
}

// NewPolygonFromShape converts a line, polyline or polygon into a polygon with the
// same points. All other shapes result in [ErrIncompatibleConversion].
func NewPolygonFromShape(s Shape) (*Polygon, error) {
	pts, b, ok := sequenceOf(s)
	if !ok {
		return nil, incompatible(s, "polygon", "not a point sequence")
	}
	return &Polygon{base: b.clone(), Points: slices.Clone(pts)}, nil
}

func (p *Polyline) Tag() string { return "polyline" }
func (p *Polygon) Tag() string  { return "polygon" }

// Clone returns a deep copy of p.
func (p *Polyline) Clone() *Polyline {
	return &Polyline{base: p.base.clone(), Points: slices.Clone(p.Points)}
}

// Clone returns a deep copy of p.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{base: p.base.clone(), Points: slices.Clone(p.Points)}
}

func (p *Polyline) cloneShape() Shape { return p.Clone() }
func (p *Polygon) cloneShape() Shape  { return p.Clone() }

// Transform returns a copy of p with m applied after its pending transform.
func (p *Polyline) Transform(m Matrix) *Polyline {
	o := p.Clone()
	o.ApplyTransform(m)
	return o
}

// Transform returns a copy of p with m applied after its pending transform.
func (p *Polygon) Transform(m Matrix) *Polygon {
	o := p.Clone()
	o.ApplyTransform(m)
	return o
}

// ImplicitPoints returns the points mapped through the pending transform.
func (p *Polyline) ImplicitPoints() []Point {
	return transformPoints(p.Points, p.PendingTransform())
}

// ImplicitPoints returns the points mapped through the pending transform.
func (p *Polygon) ImplicitPoints() []Point {
	return transformPoints(p.Points, p.PendingTransform())
}

func (p *Polyline) Closed() bool { return false }
func (p *Polygon) Closed() bool  { return true }

func (p *Polyline) Equal(o Shape) bool { return Equal(p, o) }
func (p *Polygon) Equal(o Shape) bool  { return Equal(p, o) }

// Reify maps all points through the pending transform.
func (p *Polyline) Reify() {
	if p.transformed {
		p.Points = p.ImplicitPoints()
		p.resetTransform()
	}
}

// Reify maps all points through the pending transform.
func (p *Polygon) Reify() {
	if p.transformed {
		p.Points = p.ImplicitPoints()
		p.resetTransform()
	}
}

// Segments draws a moveto to the first point and a lineto to each further point.
func (p *Polyline) Segments() iter.Seq[Segment] {
	return pointSegments(p.ImplicitPoints(), false)
}

// Segments draws the polygon like a polyline, followed by a closepath.
func (p *Polygon) Segments() iter.Seq[Segment] {
	return pointSegments(p.ImplicitPoints(), true)
}

func (p *Polyline) D() string { return FormatSegments(p.Segments()) }
func (p *Polygon) D() string  { return FormatSegments(p.Segments()) }

// UnmarshalYAML decodes a mapping of attributes, as accepted by
// [NewPolylineFromAttributes].
func (p *Polyline) UnmarshalYAML(value *yaml.Node) error {
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	np, err := NewPolylineFromAttributes(attrs)
	if err != nil {
		return err
	}
	*p = *np
	return nil
}

// UnmarshalYAML decodes a mapping of attributes, as accepted by
// [NewPolygonFromAttributes].
func (p *Polygon) UnmarshalYAML(value *yaml.Node) error {
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	np, err := NewPolygonFromAttributes(attrs)
	if err != nil {
		return err
	}
	*p = *np
	return nil
}

func transformPoints(pts []Point, m Matrix) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(m)
	}
	return out
}

func pointSegments(pts []Point, closed bool) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i, pt := range pts {
			seg := LineTo(pt)
			if i == 0 {
				seg = MoveTo(pt)
			}
			if !yield(seg) {
				return
			}
		}
		if closed && len(pts) > 0 {
			yield(ClosePath().Rel())
		}
	}
}
