package shape

import (
	"errors"
	"math"
	"testing"
)

func TestAngleUnits(t *testing.T) {
	a := Deg(180)
	if r := a.Radians(); math.Abs(r-math.Pi) > 1e-12 {
		t.Errorf("got %v radians, want π", r)
	}
	if g := a.Gradians(); math.Abs(g-200) > 1e-12 {
		t.Errorf("got %v gradians, want 200", g)
	}
	if tr := a.Turns(); math.Abs(tr-0.5) > 1e-12 {
		t.Errorf("got %v turns, want 0.5", tr)
	}
	if !Turn(0.25).Equal(Deg(90)) {
		t.Errorf("a quarter turn should equal 90deg")
	}
	if Deg(0).Equal(Deg(360)) {
		t.Errorf("angles shouldn't wrap when compared")
	}
	if !Deg(-90).Normalized().Equal(Deg(270)) {
		t.Errorf("got %v, want 270deg", Deg(-90).Normalized())
	}
}

func TestAngleString(t *testing.T) {
	tests := []struct {
		a    Angle
		want string
	}{
		{Deg(15), "15deg"},
		{Rad(0.5), "0.5rad"},
		{Grad(100), "100grad"},
		{Turn(0.25), "0.25turn"},
		{Deg(-0.0), "0deg"},
		{Deg(30).Add(Rad(math.Pi / 6)), "60deg"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in   string
		want Angle
	}{
		{"15deg", Deg(15)},
		{" 0.5rad ", Rad(0.5)},
		{"100grad", Grad(100)},
		{"-1turn", Turn(-1)},
		{"1e1deg", Deg(10)},
	}
	for _, tt := range tests {
		got, err := ParseAngle(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) || got.Unit() != tt.want.Unit() {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "15", "deg", "15 degrees", "1.2.3deg"} {
		if _, err := ParseAngle(in); !errors.Is(err, ErrInvalidAngle) {
			t.Errorf("%q: got error %v, want ErrInvalidAngle", in, err)
		}
	}
}
