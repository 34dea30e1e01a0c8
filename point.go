package shape

import (
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// ParsePoint parses a point written as "x,y" or "x y". Each coordinate may carry a px
// suffix.
func ParsePoint(s string) (Point, error) {
	fields := splitCoordinates(s)
	if len(fields) != 2 {
		return Point{}, syntaxError(ErrInvalidAttribute, s, -1, "expected two coordinates, got %d", len(fields))
	}
	x, err := ParseLength(fields[0])
	if err != nil {
		return Point{}, syntaxError(ErrInvalidAttribute, s, -1, "malformed x coordinate %q", fields[0])
	}
	y, err := ParseLength(fields[1])
	if err != nil {
		return Point{}, syntaxError(ErrInvalidAttribute, s, -1, "malformed y coordinate %q", fields[1])
	}
	return Pt(x, y), nil
}

// ParsePoints parses a list of coordinate pairs, as used by the points attribute of
// polylines and polygons, such as "0,100 50,25 50,75".
func ParsePoints(s string) ([]Point, error) {
	fields := splitCoordinates(s)
	if len(fields)%2 != 0 {
		return nil, syntaxError(ErrInvalidAttribute, s, -1, "odd number of coordinates")
	}
	pts := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := ParseLength(fields[i])
		if err != nil {
			return nil, syntaxError(ErrInvalidAttribute, s, -1, "malformed coordinate %q", fields[i])
		}
		y, err := ParseLength(fields[i+1])
		if err != nil {
			return nil, syntaxError(ErrInvalidAttribute, s, -1, "malformed coordinate %q", fields[i+1])
		}
		pts = append(pts, Pt(x, y))
	}
	return pts, nil
}

func splitCoordinates(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r < 0x80 && isCommaWhitespace(byte(r))
	})
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform returns the image of pt under m.
func (pt Point) Transform(m Matrix) Point {
	return Point{
		X: m.A*pt.X + m.C*pt.Y + m.E,
		Y: m.B*pt.X + m.D*pt.Y + m.F,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// Equal reports whether both coordinates agree within tolerance.
func (pt Point) Equal(o Point) bool {
	return near(pt.X, o.X) && near(pt.Y, o.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
