package shape

import (
	"errors"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestParsePoint(t *testing.T) {
	for _, in := range []string{"1,2", "1 2", " 1px , 2px ", "1,\t2"} {
		got, err := ParsePoint(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", in, err)
			continue
		}
		diff(t, Pt(1, 2), got)
	}
	for _, in := range []string{"", "1", "1,2,3", "a,b"} {
		if _, err := ParsePoint(in); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("%q: got error %v, want ErrInvalidAttribute", in, err)
		}
	}
}

func TestParsePoints(t *testing.T) {
	got, err := ParsePoints("0,100 50,25 50,75\n100,0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{{0, 100}, {50, 25}, {50, 75}, {100, 0}}, got)

	got, err = ParsePoints("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no points", got)
	}

	if _, err := ParsePoints("0,100 50"); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("got error %v, want ErrInvalidAttribute", err)
	}
}
