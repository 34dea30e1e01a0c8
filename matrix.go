package shape

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix describes a 2D affine transform via coefficients.
//
// The coefficients (a, b, c, d, e, f) represent this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// This is the layout used by the SVG matrix(a,b,c,d,e,f) transform function. Points
// are column vectors, so (A.Mul(B)).Transform(p) == A.Transform(B.Transform(p)): the
// right operand applies first.
//
// The zero value is not the identity; use [Identity].
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// NewMatrix creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Matrix] manually.
func NewMatrix(n [6]float64) Matrix {
	return Matrix{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// NewMatrixFromAff3 converts an x/image affine transform, which is stored in row-major
// order.
func NewMatrixFromAff3(m f64.Aff3) Matrix {
	return Matrix{m[0], m[3], m[1], m[4], m[2], m[5]}
}

// Translate creates an affine transform representing translation.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates an affine transform representing rotation about the origin.
//
// The convention for rotation is that a positive angle rotates a positive X direction
// into positive Y. Thus, in a Y-down coordinate system (as is common for graphics, and
// used by SVG), it is a clockwise rotation.
func Rotate(th Angle) Matrix {
	sin, cos := math.Sincos(th.Radians())
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th about center.
// It is equivalent to translate(cx,cy) rotate(th) translate(-cx,-cy).
func RotateAbout(th Angle, center Point) Matrix {
	return Translate(center.X, center.Y).Mul(Rotate(th)).PreTranslate(-center.X, -center.Y)
}

// SkewX creates a transform that skews along the x axis by th.
func SkewX(th Angle) Matrix {
	return Matrix{1, 0, math.Tan(th.Radians()), 1, 0, 0}
}

// SkewY creates a transform that skews along the y axis by th.
func SkewY(th Angle) Matrix {
	return Matrix{1, math.Tan(th.Radians()), 0, 1, 0, 0}
}

// Coefficients returns the coefficients of the transform.
func (m Matrix) Coefficients() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Aff3 returns the transform as an x/image affine transform.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}

// Mul composes two transforms. The result applies o first, then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m.A*o.A + m.C*o.B,
		m.B*o.A + m.D*o.B,
		m.A*o.C + m.C*o.D,
		m.B*o.C + m.D*o.D,
		m.A*o.E + m.C*o.F + m.E,
		m.B*o.E + m.D*o.F + m.F,
	}
}

// ThenRotate creates m followed by a rotation of th.
//
// Equivalent to "Rotate(th).Mul(m)"
func (m Matrix) ThenRotate(th Angle) Matrix {
	return Rotate(th).Mul(m)
}

// ThenScale creates m followed by a scale of (sx, sy).
//
// Equivalent to "Scale(sx, sy).Mul(m)"
func (m Matrix) ThenScale(sx, sy float64) Matrix {
	return Scale(sx, sy).Mul(m)
}

// ThenTranslate creates m followed by a translation of (tx, ty).
//
// Equivalent to "Translate(tx, ty).Mul(m)"
func (m Matrix) ThenTranslate(tx, ty float64) Matrix {
	m.E += tx
	m.F += ty
	return m
}

// PreTranslate creates a translation of (tx, ty) followed by m.
//
// Equivalent to "m.Mul(Translate(tx, ty))"
func (m Matrix) PreTranslate(tx, ty float64) Matrix {
	return m.Mul(Translate(tx, ty))
}

// Linear returns m without its translation.
func (m Matrix) Linear() Matrix {
	m.E = 0
	m.F = 0
	return m
}

// Translation returns the translation component of this affine transformation.
func (m Matrix) Translation() Vec2 {
	return Vec2{
		X: m.E,
		Y: m.F,
	}
}

// Determinant computes the determinant.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert computes the inverse transform. It returns [ErrSingularMatrix] if the
// determinant is zero or negligible relative to the lengths of the basis vectors,
// that is, if they are (nearly) parallel.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	norm := math.Hypot(m.A, m.B) * math.Hypot(m.C, m.D)
	if norm == 0 || math.Abs(det) <= 1e-12*norm {
		return Matrix{}, ErrSingularMatrix
	}
	invDet := 1 / det
	return Matrix{
		+invDet * m.D,
		-invDet * m.B,
		-invDet * m.C,
		+invDet * m.A,
		+invDet * (m.C*m.F - m.D*m.E),
		+invDet * (m.B*m.E - m.A*m.F),
	}, nil
}

// IsIdentity reports whether m is the identity transform, within tolerance.
func (m Matrix) IsIdentity() bool {
	return m.Equal(Identity)
}

// Equal reports whether all coefficients of m and o agree within tolerance.
func (m Matrix) Equal(o Matrix) bool {
	return near(m.A, o.A) &&
		near(m.B, o.B) &&
		near(m.C, o.C) &&
		near(m.D, o.D) &&
		near(m.E, o.E) &&
		near(m.F, o.F)
}

// String returns m as an SVG matrix() transform function, which [ParseTransform]
// accepts.
func (m Matrix) String() string {
	return "matrix(" + formatNumbers(m.A, m.B, m.C, m.D, m.E, m.F) + ")"
}

// GoString returns m in Go syntax.
func (m Matrix) GoString() string {
	return fmt.Sprintf("shape.Matrix{%g, %g, %g, %g, %g, %g}", m.A, m.B, m.C, m.D, m.E, m.F)
}

// Decomposition describes an affine transform as a translation, a rotation, an x-skew
// and a non-uniform scale, applied in reverse order:
//
//	Translate(TranslateX, TranslateY) · Rotate(Rotation) · SkewX(Skew) · Scale(ScaleX, ScaleY)
type Decomposition struct {
	TranslateX, TranslateY float64
	// ScaleX is always non-negative.
	ScaleX float64
	// ScaleY is negative if the transform contains a reflection.
	ScaleY   float64
	Rotation Angle
	Skew     Angle
}

// Reflects reports whether the decomposed transform flips orientation.
func (dec Decomposition) Reflects() bool {
	return dec.ScaleY < 0
}

// Decompose splits m into translation, rotation, skew and scale. The rotation is the
// angle that the transformed x axis makes with the original x axis, atan2(b, a), and
// ScaleX is the length of the transformed x axis. The skew is measured relative to the
// rotated frame.
//
// Decompose is the basis of the implicit geometry of shapes with a pending transform.
func (m Matrix) Decompose() Decomposition {
	dec := Decomposition{
		TranslateX: m.E,
		TranslateY: m.F,
		ScaleX:     math.Hypot(m.A, m.B),
		Rotation:   Rad(math.Atan2(m.B, m.A)),
	}
	if dec.ScaleX == 0 {
		// The x axis collapses to a point; only the y axis carries information.
		dec.ScaleY = math.Hypot(m.C, m.D)
		return dec
	}
	det := m.Determinant()
	sign := 1.0
	if det < 0 {
		sign = -1
	}
	dec.ScaleY = det / dec.ScaleX
	dec.Skew = Rad(math.Atan2(sign*(m.A*m.C+m.B*m.D), sign*det))
	return dec
}

// Recompose builds the transform described by dec. Recompose(m.Decompose()) equals m
// for any non-singular m.
func Recompose(dec Decomposition) Matrix {
	return Translate(dec.TranslateX, dec.TranslateY).
		Mul(Rotate(dec.Rotation)).
		Mul(SkewX(dec.Skew)).
		Mul(Scale(dec.ScaleX, dec.ScaleY))
}

// svd computes the singular value decomposition of the linear part of m.
//
// All non-degenerate linear transformations can be represented as
//
//  1. a rotation about the origin.
//  2. a scaling along the x and y axes
//  3. another rotation about the origin
//
// composed together. Decomposing a 2x2 matrix in this way is called a "singular value
// decomposition" and is written "U Σ V^T", where U and V^T are orthogonal (rotations) and Σ
// is a diagonal matrix (a scaling).
//
// This is used to find the radii and rotation of an ellipse that was mapped by an
// affine transform, so we don't calculate V^T: a rotation of a circle about its center
// is the same circle.
//
// The first return value is the scaling, with the larger factor first, the second is
// the angle of rotation of U.
func (m Matrix) svd() (scale Vec2, th Angle) {
	a := m.A
	a2 := a * a
	b := m.B
	b2 := b * b
	c := m.C
	c2 := c * c
	d := m.D
	d2 := d * d
	ab := a * b
	cd := c * d
	angle := 0.5 * math.Atan2(2.0*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := math.Sqrt(math.Pow(a2-b2+c2-d2, 2) + 4.0*math.Pow(ab+cd, 2))
	return Vec2{
		X: math.Sqrt(0.5 * (s1 + s2)),
		Y: math.Sqrt(math.Max(0, 0.5*(s1-s2))),
	}, Rad(angle)
}
