package shape

import (
	"errors"
	"testing"
)

func TestSimpleLine(t *testing.T) {
	l := NewSimpleLine(1, 2, 3, 4)
	if want := "M 1,2 L 3,4"; l.D() != want {
		t.Errorf("got %q, want %q", l.D(), want)
	}
	if l.Closed() {
		t.Errorf("lines are open")
	}

	l = l.Transform(Rotate(Deg(90)))
	got := []float64{l.ImplicitX1(), l.ImplicitY1(), l.ImplicitX2(), l.ImplicitY2()}
	diff(t, []float64{-2, 1, -4, 3}, got, approx)
	if !l.Rotation().Equal(Deg(90)) {
		t.Errorf("got rotation %v, want 90deg", l.Rotation())
	}
	if want := "M -2,1 L -4,3"; l.D() != want {
		t.Errorf("got %q, want %q", l.D(), want)
	}

	before := l.Clone()
	l.Reify()
	if !l.Equal(before) {
		t.Errorf("got %q, want %q", l.D(), before.D())
	}
	if !l.PendingTransform().IsIdentity() {
		t.Errorf("got pending transform %v, want identity", l.PendingTransform())
	}
}

func TestSimpleLineSkew(t *testing.T) {
	// End points are mapped exactly, not via the decomposition.
	l := NewSimpleLine(0, 0, 0, 1).Transform(SkewX(Deg(45)))
	assertNear(t, Pt(l.ImplicitX2(), l.ImplicitY2()), Pt(1, 1))
}

func TestSimpleLineEquality(t *testing.T) {
	l := NewSimpleLine(0, 0, 2, 2)
	if !l.Equal(NewPolyline(Pt(0, 0), Pt(2, 2))) {
		t.Errorf("line should equal two-point polyline")
	}
	if l.Equal(NewPolygon(Pt(0, 0), Pt(2, 2))) {
		t.Errorf("open line shouldn't equal closed polygon")
	}
	if l.Equal(NewSimpleLine(2, 2, 0, 0)) {
		t.Errorf("line direction should matter")
	}
	if !l.Equal(NewSimpleLine(0, 0, 1, 1).Transform(Scale(2, 2))) {
		t.Errorf("line should equal its scaled half")
	}
}

func TestSimpleLineFromAttributes(t *testing.T) {
	l, err := NewSimpleLineFromAttributes(map[string]string{"x1": "1", "y1": "2", "x2": "3px", "stroke": "red"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, 2, 3, 0}, []float64{l.X1, l.Y1, l.X2, l.Y2})
	diff(t, Attributes{"stroke": "red"}, l.Attributes())

	// Coordinates may be negative.
	if _, err := NewSimpleLineFromAttributes(map[string]string{"x1": "-1"}); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if _, err := NewSimpleLineFromAttributes(map[string]string{"x1": "one"}); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("got error %v, want ErrInvalidAttribute", err)
	}
}

func TestSimpleLineFromShape(t *testing.T) {
	p := NewPolyline(Pt(1, 2), Pt(3, 4)).Transform(Translate(1, 1))
	l, err := NewSimpleLineFromShape(p)
	if err != nil {
		t.Fatal(err)
	}
	if !l.Equal(p) {
		t.Errorf("got %q, want %q", l.D(), p.D())
	}

	for _, s := range []Shape{
		NewPolyline(Pt(1, 2), Pt(3, 4), Pt(5, 6)),
		NewPolygon(Pt(1, 2), Pt(3, 4)),
		NewCircle(),
	} {
		if _, err := NewSimpleLineFromShape(s); !errors.Is(err, ErrIncompatibleConversion) {
			t.Errorf("%s: got error %v, want ErrIncompatibleConversion", s.Tag(), err)
		}
	}
}
