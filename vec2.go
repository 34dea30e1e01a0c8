package shape

import (
	"fmt"
	"math"
)

// Vec2 is a displacement, such as the radii of an ellipse or the offset between two
// points.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle between the vector and ⟨1, 0⟩ in the positive y direction.
// This is atan2(y, x).
func (v Vec2) Angle() Angle {
	return Rad(math.Atan2(v.Y, v.X))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Equal reports whether both components agree within tolerance.
func (v Vec2) Equal(o Vec2) bool {
	return near(v.X, o.X) && near(v.Y, o.Y)
}

// rotate rotates v about the origin by th.
func (v Vec2) rotate(th Angle) Vec2 {
	sin, cos := math.Sincos(th.Radians())
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
