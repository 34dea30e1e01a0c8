package shape

import (
	"errors"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"
)

// testShapes returns one instance of every kind of shape.
func testShapes() []Shape {
	return []Shape{
		NewRect(1, 2, 3, 4),
		NewRect(1, 2, 6, 4, 1, 0.5),
		NewCircle(1, 2, 3),
		NewEllipse(1, 2, 3, 4),
		NewSimpleLine(1, 2, 3, 4),
		NewPolyline(Pt(1, 2), Pt(3, 4), Pt(5, 2)),
		NewPolygon(Pt(1, 2), Pt(3, 4), Pt(5, 2)),
		MustParsePath("M1,2 h3 a1,1 0 0,1 1,1 q1,1 2,0 z"),
	}
}

var testTransforms = []string{
	"translate(10,-5)",
	"scale(2)",
	"scale(2,0.5)",
	"scale(-1,1)",
	"scale(-2,-3)",
	"rotate(30)",
	"rotate(-120, 5, 5)",
	"skewX(20)",
	"skewY(-35)",
	"translate(40,40) rotate(15deg) scale(2,1.5)",
	"rotate(45) scale(2,1)",
	"scale(1,-1) rotate(10) skewX(5)",
	"matrix(1,2,3,4,5,6)",
}

func TestReifyKeepsEquality(t *testing.T) {
	for _, s := range testShapes() {
		for _, tf := range testTransforms {
			name := fmt.Sprintf("%s %s", s.Tag(), tf)
			x := Transform(s, MustParseTransform(tf))
			before := Clone(x)
			x.Reify()
			if !x.Equal(before) {
				t.Errorf("%s: got %q, want %q", name, x.D(), before.D())
			}
			if !Equal(before, x) {
				t.Errorf("%s: equality isn't symmetric", name)
			}
			// Reifying twice changes nothing.
			again := Clone(x)
			again.Reify()
			if !again.Equal(x) {
				t.Errorf("%s: second Reify changed the shape", name)
			}
		}
	}
}

func TestTransformComposition(t *testing.T) {
	m1 := MustParseTransform("rotate(30) translate(1,2)")
	m2 := MustParseTransform("scale(2,3) skewX(10)")
	for _, s := range testShapes() {
		stepwise := Transform(Transform(s, m2), m1)
		combined := Transform(s, m1.Mul(m2))
		if !stepwise.Equal(combined) {
			t.Errorf("%s: got %q, want %q", s.Tag(), stepwise.D(), combined.D())
		}
	}
}

func TestTransformIsolation(t *testing.T) {
	for _, s := range testShapes() {
		d := s.D()
		x := Transform(s, Scale(2, 2))
		if s.D() != d {
			t.Errorf("%s: Transform modified the receiver", s.Tag())
		}
		if !s.PendingTransform().IsIdentity() {
			t.Errorf("%s: Transform modified the receiver's pending transform", s.Tag())
		}
		if x.Equal(s) {
			t.Errorf("%s: scaled shape shouldn't equal the original", s.Tag())
		}
		s.ApplyTransform(Scale(2, 2))
		if !x.Equal(s) {
			t.Errorf("%s: ApplyTransform and Transform disagree", s.Tag())
		}
	}
}

func TestAttributeIsolation(t *testing.T) {
	pairs := [][2]Shape{
		{NewRect(), NewRect()},
		{NewCircle(), NewCircle()},
		{NewEllipse(), NewEllipse()},
		{NewSimpleLine(), NewSimpleLine()},
		{NewPolyline(), NewPolyline()},
		{NewPolygon(), NewPolygon()},
		{NewPath(), NewPath()},
		{&Rect{}, &Rect{}},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		a.Attributes()["fill"] = "red"
		if _, ok := b.Attributes()["fill"]; ok {
			t.Errorf("%s: default shapes share attributes", a.Tag())
		}
		if a.Equal(b) {
			t.Errorf("%s: shapes with different attributes should differ", a.Tag())
		}

		c := Clone(a)
		c.Attributes()["fill"] = "blue"
		if a.Attributes()["fill"] != "red" {
			t.Errorf("%s: clone shares attributes with original", a.Tag())
		}
	}
}

func TestEqualIncomparable(t *testing.T) {
	shapes := []Shape{NewRect(), NewCircle(), NewSimpleLine(0, 0, 1, 1)}
	for i, a := range shapes {
		for j, b := range shapes {
			if got := Equal(a, b); got != (i == j) {
				t.Errorf("Equal(%s, %s) = %t", a.Tag(), b.Tag(), got)
			}
		}
	}
	if !Equal(nil, nil) || Equal(NewRect(), nil) || Equal(nil, NewRect()) {
		t.Errorf("nil shapes are only equal to each other")
	}
}

func TestEqualPathAndShape(t *testing.T) {
	for _, s := range testShapes() {
		for _, tf := range []string{"", "rotate(30)", "scale(1,-2)"} {
			x := Transform(s, MustParseTransform(tf))
			p := NewPathFromShape(x)
			if !p.Equal(x) || !x.Equal(p) {
				t.Errorf("%s %s: shape doesn't equal its path", s.Tag(), tf)
			}
		}
	}
	if NewPathFromShape(NewRect()).Equal(NewRect(0, 0, 2, 1)) {
		t.Errorf("path shouldn't equal a different rectangle")
	}
}

func TestNewShapeFromAttributes(t *testing.T) {
	tests := []struct {
		attrs map[string]string
		want  Shape
	}{
		{map[string]string{"tag": "rect", "width": "2"}, NewRect(0, 0, 2)},
		{map[string]string{"tag": "circle", "r": "2"}, NewCircle(0, 0, 2)},
		{map[string]string{"tag": "ellipse", "rx": "2", "ry": "1"}, NewEllipse(0, 0, 2, 1)},
		{map[string]string{"tag": "line", "x2": "1"}, NewSimpleLine(0, 0, 1, 0)},
		{map[string]string{"tag": "polyline", "points": "0,0 1,1"}, NewPolyline(Pt(0, 0), Pt(1, 1))},
		{map[string]string{"tag": "polygon", "points": "0,0 1,1"}, NewPolygon(Pt(0, 0), Pt(1, 1))},
		{map[string]string{"tag": "path", "d": "M0,0 L1,1"}, NewPath(MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)))},
	}
	for _, tt := range tests {
		got, err := NewShapeFromAttributes(tt.attrs)
		if err != nil {
			t.Errorf("%v: unexpected error: %s", tt.attrs, err)
			continue
		}
		if got.Tag() != tt.attrs["tag"] {
			t.Errorf("got tag %q, want %q", got.Tag(), tt.attrs["tag"])
		}
		if !got.Equal(tt.want) {
			t.Errorf("%v: got %q, want %q", tt.attrs, got.D(), tt.want.D())
		}
	}

	for _, tag := range []string{"", "g", "RECT"} {
		if _, err := NewShapeFromAttributes(map[string]string{"tag": tag}); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("tag %q: got error %v, want ErrInvalidAttribute", tag, err)
		}
	}
}

func TestShapesFromYAML(t *testing.T) {
	in := `
- tag: circle
  cx: 5
  cy: 5
  r: 2
  fill: red
- tag: ellipse
  cx: 5
  cy: 5
  rx: 2
  ry: 2
  fill: red
- tag: polygon
  points: 0,0 10,0 10,10
  transform: scale(2)
`
	var docs []Attributes
	if err := yaml.Unmarshal([]byte(in), &docs); err != nil {
		t.Fatal(err)
	}
	var shapes []Shape
	for _, attrs := range docs {
		s, err := NewShapeFromAttributes(attrs)
		if err != nil {
			t.Fatal(err)
		}
		shapes = append(shapes, s)
	}
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}
	if !shapes[0].Equal(shapes[1]) {
		t.Errorf("circle and ellipse should be equal")
	}
	if !shapes[2].Equal(NewPolygon(Pt(0, 0), Pt(20, 0), Pt(20, 20))) {
		t.Errorf("got %q, want a scaled triangle", shapes[2].D())
	}
}

func TestConstructionForms(t *testing.T) {
	mustShape := func(s Shape, err error) Shape {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	groups := [][]Shape{
		{
			NewRect(),
			NewRect(0),
			NewRect(0, 0, 1),
			NewRect(0, 0, 1, 1, 0, 0),
			&Rect{Width: 1, Height: 1},
			mustShape(NewRectFromAttributes(map[string]string{"width": "1px", "height": "1"})),
			mustShape(NewRectFromShape(NewRect())),
		},
		{
			NewCircle(),
			NewCircle(0, 0),
			&Circle{R: 1},
			NewEllipse(0, 0, 1, 1),
			NewEllipse(0, 0, 1),
			mustShape(NewCircleFromAttributes(map[string]string{"cx": "0px", "cy": "0", "r": "1"})),
			mustShape(NewEllipseFromAttributes(map[string]string{"cx": "0", "cy": "0", "rx": "1"})),
			mustShape(NewEllipseFromAttributes(map[string]string{"cx": "0", "cy": "0", "ry": "1"})),
			mustShape(NewCircleFromShape(NewCircle())),
			mustShape(NewCircleFromShape(NewEllipse())),
			mustShape(NewEllipseFromShape(NewCircle())),
		},
		{
			NewPolyline(Pt(0, 0), Pt(1, 1)),
			&Polyline{Points: []Point{{0, 0}, {1, 1}}},
			mustShape(NewPolylineFromAttributes(map[string]string{"points": "0,0,1,1"})),
			mustShape(NewPolylineFromShape(NewPolyline(Pt(0, 0), Pt(1, 1)))),
			MustParsePath("M0,0L1,1"),
			NewSimpleLine(0, 0, 1, 1),
		},
		{
			NewPolygon(Pt(0, 0), Pt(1, 1)),
			mustShape(NewPolygonFromAttributes(map[string]string{"points": "0,0 1,1"})),
			mustShape(NewPolygonFromShape(NewPolyline(Pt(0, 0), Pt(1, 1)))),
			MustParsePath("M0,0L1,1z"),
		},
	}
	for _, group := range groups {
		for i, s := range group {
			if !group[0].Equal(s) {
				t.Errorf("%s #%d: got %q, want %q", group[0].Tag(), i, s.D(), group[0].D())
			}
		}
	}
}

func TestAttributeDicts(t *testing.T) {
	r, err := NewRectFromAttributes(map[string]string{
		"tag": "rect", "rx": "4", "ry": "2", "x": "50", "y": "51", "width": "20", "height": "10",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(NewRect(50, 51, 20, 10, 4, 2)) {
		t.Errorf("got %q", r.D())
	}
	if r.Equal(NewRect()) {
		t.Errorf("rectangle shouldn't equal the default rectangle")
	}

	c, err := NewCircleFromAttributes(map[string]string{"tag": "circle", "r": "4.0", "cx": "22.4", "cy": "33.33"})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(NewCircle(22.4, 33.33, 4)) {
		t.Errorf("got %q", c.D())
	}
	want := "M26.4,33.33A4,4 0 0,1 22.4,37.33 A4,4 0 0,1 18.4,33.33 A4,4 0 0,1 22.4,29.33 A4,4 0 0,1 26.4,33.33Z"
	if !NewPathFromShape(c).EqualString(want) {
		t.Errorf("got %q, want %q", c.D(), want)
	}

	e, err := NewEllipseFromAttributes(map[string]string{"tag": "ellipse", "rx": "4.0", "ry": "8.0", "cx": "22.4", "cy": "33.33"})
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(NewEllipse(22.4, 33.33, 4, 8)) || e.Equal(NewEllipse()) {
		t.Errorf("got %q", e.D())
	}

	l, err := NewSimpleLineFromAttributes(map[string]string{"x1": "0", "y1": "0", "x2": "100px", "y2": "100"})
	if err != nil {
		t.Fatal(err)
	}
	if !l.Equal(NewSimpleLine(0, 0, 100, 100)) || l.Equal(NewSimpleLine()) {
		t.Errorf("got %q", l.D())
	}
}

func TestImplicitGeometry(t *testing.T) {
	m := MustParseTransform("translate(40,40) rotate(15deg) scale(2,1.5)")

	c := NewCircle().Transform(m)
	diff(t, []float64{2, 1.5}, []float64{c.ImplicitRx(), c.ImplicitRy()}, approx)
	assertNear(t, c.ImplicitCenter(), Pt(40, 40))
	if !c.Rotation().Equal(Deg(15)) {
		t.Errorf("got rotation %v, want 15deg", c.Rotation())
	}

	l := NewSimpleLine(0, 0, 1, 1).Transform(m)
	p := Pt(1, 1).Transform(MustParseTransform("rotate(15deg) scale(2,1.5)"))
	got := []float64{l.ImplicitX1(), l.ImplicitY1(), l.ImplicitX2(), l.ImplicitY2()}
	diff(t, []float64{40, 40, 40 + p.X, 40 + p.Y}, got, approx)
	if !l.Rotation().Equal(Deg(15)) {
		t.Errorf("got rotation %v, want 15deg", l.Rotation())
	}
}

func TestEqualsTransformed(t *testing.T) {
	tests := []struct {
		plain, scaled Shape
	}{
		{NewCircle(0, 0, 2), NewCircle()},
		{NewRect(0, 0, 2, 2), NewRect(0, 0, 1, 1)},
		{NewRect(0, 0, 2, 2, 1, 1), NewRect(0, 0, 1, 1, 0.5, 0.5)},
		{NewSimpleLine(0, 0, 2, 2), NewSimpleLine(0, 0, 1, 1)},
		{NewPolyline(Pt(0, 0), Pt(2, 2)), NewPolyline(Pt(0, 0), Pt(1, 1))},
		{NewPolygon(Pt(0, 0), Pt(2, 2)), NewPolygon(Pt(0, 0), Pt(1, 1))},
	}
	for _, tt := range tests {
		s := Transform(tt.scaled, MustParseTransform("scale(2)"))
		if !tt.plain.Equal(s) {
			t.Errorf("%s: got %q, want %q", s.Tag(), s.D(), tt.plain.D())
		}
		s.Reify()
		if !tt.plain.Equal(s) {
			t.Errorf("%s: got %q after Reify, want %q", s.Tag(), s.D(), tt.plain.D())
		}
	}
}

func TestStyleInequality(t *testing.T) {
	for _, key := range []string{"stroke", "fill"} {
		red := NewCircle()
		red.Attributes()[key] = "red"
		if NewCircle().Equal(red) {
			t.Errorf("circle shouldn't equal a circle with %s=red", key)
		}
	}
}

func TestEllipticalEqualCanonical(t *testing.T) {
	a := NewCircle().Transform(MustParseTransform("scale(2,1) rotate(90)"))
	b := NewCircle().Transform(MustParseTransform("scale(2,1)"))
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("got %q and %q, want equal", a.D(), b.D())
	}
	if !NewEllipse(0, 0, 2, 1).Equal(NewEllipse(0, 0, 2, 1).Transform(Rotate(Deg(180)))) {
		t.Errorf("half turn of an ellipse should be equal")
	}
	if !NewEllipse(0, 0, 1, 2).Equal(NewEllipse(0, 0, 2, 1).Transform(Rotate(Deg(-90)))) {
		t.Errorf("quarter turn with swapped radii should be equal")
	}
	if NewEllipse(0, 0, 2, 1).Equal(NewEllipse(0, 0, 2, 1).Transform(Rotate(Deg(90)))) {
		t.Errorf("quarter turn of an ellipse shouldn't be equal")
	}
}

func TestEqualDoesNotModify(t *testing.T) {
	a, b := &Rect{Width: 1, Height: 1}, &Rect{Width: 1, Height: 1}
	if !a.Equal(b) {
		t.Errorf("zero value rectangles should be equal")
	}
	if a.attrs != nil || b.attrs != nil {
		t.Errorf("Equal allocated attributes")
	}
	if !Equal(a, NewRect()) {
		t.Errorf("nil and empty attributes should be equal")
	}
}
