package shape

import (
	"iter"
	"math"

	"gopkg.in/yaml.v3"
)

// Rect is an axis-aligned rectangle with optionally rounded corners, before its pending
// transform.
//
// Width and Height are non-negative. Rx and Ry are the radii of the corners; each is
// limited to half the respective side. A rectangle only has rounded corners if both
// radii are positive.
type Rect struct {
	base
	X, Y          float64
	Width, Height float64
	Rx, Ry        float64
}

// NewRect creates a rectangle from the values x, y, width, height, rx and ry, in that
// order. Missing values default to 0, 0, 1 and 1, rx defaults to 0 and ry to rx.
// Negative sizes extend the rectangle to the left or up. NewRect panics if given more
// than six values.
func NewRect(values ...float64) *Rect {
	checkValues("NewRect", values, 6)
	rx := math.Abs(valueOr(values, 4, 0))
	r := &Rect{
		base:   newBase(),
		X:      valueOr(values, 0, 0),
		Y:      valueOr(values, 1, 0),
		Width:  valueOr(values, 2, 1),
		Height: valueOr(values, 3, 1),
		Rx:     rx,
		Ry:     math.Abs(valueOr(values, 5, rx)),
	}
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	r.clampRadii()
	return r
}

// NewRectFromAttributes creates a rectangle from the SVG attributes x, y, width,
// height, rx and ry, which may carry a px suffix. Like in SVG, a missing rx or ry takes
// the value of the other. The transform attribute becomes the pending transform and
// all other attributes are kept as presentation attributes.
func NewRectFromAttributes(attrs map[string]string) (*Rect, error) {
	ar := newAttributeReader(attrs)
	r := &Rect{
		X:      ar.length("x", 0),
		Y:      ar.length("y", 0),
		Width:  ar.size("width", 1),
		Height: ar.size("height", 1),
	}
	hasRx, hasRy := ar.has("rx"), ar.has("ry")
	r.Rx = ar.size("rx", 0)
	r.Ry = ar.size("ry", 0)
	switch {
	case hasRx && !hasRy:
		r.Ry = r.Rx
	case hasRy && !hasRx:
		r.Rx = r.Ry
	}
	if err := ar.finish(&r.base); err != nil {
		return nil, err
	}
	r.clampRadii()
	return r, nil
}

// NewRectFromShape copies a rectangle. Other shapes cannot be converted and result in
// [ErrIncompatibleConversion].
func NewRectFromShape(s Shape) (*Rect, error) {
	if r, ok := s.(*Rect); ok {
		return r.Clone(), nil
	}
	return nil, incompatible(s, "rect", "not a rectangle")
}

func (r *Rect) clampRadii() {
	r.Rx = min(r.Rx, r.Width/2)
	r.Ry = min(r.Ry, r.Height/2)
}

func (r *Rect) Tag() string { return "rect" }

// Clone returns a deep copy of r.
func (r *Rect) Clone() *Rect {
	c := *r
	c.base = r.base.clone()
	return &c
}

func (r *Rect) cloneShape() Shape { return r.Clone() }

// Transform returns a copy of r with m applied after its pending transform.
func (r *Rect) Transform(m Matrix) *Rect {
	c := r.Clone()
	c.ApplyTransform(m)
	return c
}

// frame returns the rectangle's resolved corner, its resolved extents, and the
// decomposition of the pending transform. If the pending transform reflects, the
// corner is the image of the bottom-left corner, so that the resolved rectangle still
// extends right and down from it in its rotated frame.
func (r *Rect) frame() (corner Point, sx, sy float64, dec Decomposition) {
	m := r.PendingTransform()
	dec = m.Decompose()
	if dec.Reflects() {
		return Pt(r.X, r.Y+r.Height).Transform(m), dec.ScaleX, -dec.ScaleY, dec
	}
	return Pt(r.X, r.Y).Transform(m), dec.ScaleX, dec.ScaleY, dec
}

func (r *Rect) ImplicitX() float64 {
	corner, _, _, _ := r.frame()
	return corner.X
}

func (r *Rect) ImplicitY() float64 {
	corner, _, _, _ := r.frame()
	return corner.Y
}

func (r *Rect) ImplicitWidth() float64 {
	_, sx, _, _ := r.frame()
	return r.Width * sx
}

func (r *Rect) ImplicitHeight() float64 {
	_, _, sy, _ := r.frame()
	return r.Height * sy
}

func (r *Rect) ImplicitRx() float64 {
	_, sx, _, _ := r.frame()
	return min(r.Rx*sx, r.ImplicitWidth()/2)
}

func (r *Rect) ImplicitRy() float64 {
	_, _, sy, _ := r.frame()
	return min(r.Ry*sy, r.ImplicitHeight()/2)
}

// Skew returns the skew of the resolved rectangle.
func (r *Rect) Skew() Angle {
	_, _, _, dec := r.frame()
	return dec.Skew
}

func rectEqual(a, b *Rect) bool {
	return near(a.ImplicitX(), b.ImplicitX()) &&
		near(a.ImplicitY(), b.ImplicitY()) &&
		near(a.ImplicitWidth(), b.ImplicitWidth()) &&
		near(a.ImplicitHeight(), b.ImplicitHeight()) &&
		near(a.ImplicitRx(), b.ImplicitRx()) &&
		near(a.ImplicitRy(), b.ImplicitRy()) &&
		a.Rotation().Equal(b.Rotation()) &&
		a.Skew().Equal(b.Skew())
}

func (r *Rect) Equal(o Shape) bool { return Equal(r, o) }

// Reify bakes the pending transform into the rectangle. Translation, scale and
// reflection are always baked. A rotation stays pending as a rotation about the new
// corner. A skewed rectangle cannot be represented by its canonical fields; only its
// translation is baked.
func (r *Rect) Reify() {
	if !r.transformed {
		return
	}
	corner, sx, sy, dec := r.frame()
	if !near(dec.Skew.Radians(), 0) {
		origin := r.reifyAbout(Pt(r.X, r.Y))
		r.X, r.Y = origin.X, origin.Y
		return
	}
	r.X, r.Y = corner.X, corner.Y
	r.Width *= sx
	r.Height *= sy
	r.Rx *= sx
	r.Ry *= sy
	r.clampRadii()
	r.setRotationAbout(dec.Rotation, corner)
}

// localSegments draws the rectangle without its pending transform.
func (r *Rect) localSegments(x, y, w, h, rx, ry float64) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if rx <= 0 || ry <= 0 {
			_ = yield(MoveTo(Pt(x, y))) &&
				yield(HLineTo(w).Rel()) &&
				yield(VLineTo(h).Rel()) &&
				yield(HLineTo(-w).Rel()) &&
				yield(ClosePath().Rel())
			return
		}
		radii := Vec(rx, ry)
		arc := func(dx, dy float64) Segment {
			return ArcTo(radii, Angle{}, false, true, Pt(dx, dy)).Rel()
		}
		_ = yield(MoveTo(Pt(x+rx, y))) &&
			yield(HLineTo(w-2*rx).Rel()) &&
			yield(arc(rx, ry)) &&
			yield(VLineTo(h-2*ry).Rel()) &&
			yield(arc(-rx, ry)) &&
			yield(HLineTo(-(w-2*rx)).Rel()) &&
			yield(arc(-rx, -ry)) &&
			yield(VLineTo(-(h-2*ry)).Rel()) &&
			yield(arc(rx, -ry)) &&
			yield(ClosePath().Rel())
	}
}

// Segments draws the rectangle starting at its resolved corner, using relative
// horizontal and vertical lines and quarter arcs for rounded corners. If the pending
// transform rotates or skews the rectangle, the drawing is instead transformed exactly,
// producing absolute lines and arcs.
func (r *Rect) Segments() iter.Seq[Segment] {
	corner, _, _, dec := r.frame()
	if near(dec.Rotation.Radians(), 0) && near(dec.Skew.Radians(), 0) {
		return r.localSegments(corner.X, corner.Y,
			r.ImplicitWidth(), r.ImplicitHeight(), r.ImplicitRx(), r.ImplicitRy())
	}
	return TransformSegments(r.localSegments(r.X, r.Y, r.Width, r.Height, r.Rx, r.Ry), r.PendingTransform())
}

func (r *Rect) D() string { return FormatSegments(r.Segments()) }

// UnmarshalYAML decodes a mapping of attributes, as accepted by
// [NewRectFromAttributes].
func (r *Rect) UnmarshalYAML(value *yaml.Node) error {
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	nr, err := NewRectFromAttributes(attrs)
	if err != nil {
		return err
	}
	*r = *nr
	return nil
}
