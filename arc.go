package shape

import (
	"iter"
	"math"
)

// / Take the ellipse radii, how the radii are rotated, and the sweep angle, and return a
// / point on the ellipse.
func sampleEllipse(radii Vec2, xRotation Angle, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return Vec2{u, v}.rotate(xRotation)
}

// ellipseSegments draws a full ellipse as four quarter arcs, starting at the end of
// the rotated x radius and proceeding in the positive angle direction (clockwise in a
// y-down space).
func ellipseSegments(center Point, radii Vec2, xRotation Angle) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if !yield(MoveTo(center.Translate(sampleEllipse(radii, xRotation, 0)))) {
			return
		}
		for i := 1; i <= 4; i++ {
			pt := center.Translate(sampleEllipse(radii, xRotation, float64(i)*math.Pi/2))
			if !yield(ArcTo(radii, xRotation, false, true, pt)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// transformArc maps an absolute arc segment through m.
//
// The arc's ellipse is the image of the unit circle under
// Rotate(XRotation)·Scale(rx, ry); after transformation it is the image under
// m·Rotate(XRotation)·Scale(rx, ry), whose radii and rotation are given by the
// singular value decomposition. A reflection reverses the direction of travel.
func transformArc(seg Segment, m Matrix) Segment {
	ell := m.Linear().Mul(Rotate(seg.XRotation)).Mul(Scale(seg.Radii.X, seg.Radii.Y))
	radii, th := ell.svd()
	sweep := seg.Sweep
	if m.Determinant() < 0 {
		sweep = !sweep
	}
	return ArcTo(radii, Deg(th.Degrees()), seg.LargeArc, sweep, seg.P0.Transform(m))
}

// canonicalEllipse returns the radii and rotation that describe the same ellipse
// with the larger radius first and the rotation in [0, π). The rotation of a circle
// is always 0.
func canonicalEllipse(radii Vec2, rot Angle) (Vec2, float64) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	phi := rot.Radians()
	if ry > rx {
		rx, ry = ry, rx
		phi += math.Pi / 2
	}
	if near(rx, ry) {
		return Vec(rx, ry), 0
	}
	phi = math.Mod(phi, math.Pi)
	if phi < 0 {
		phi += math.Pi
	}
	if near(phi, math.Pi) {
		phi = 0
	}
	return Vec(rx, ry), phi
}

// ellipsesEqual reports whether two sets of radii and rotations describe the same
// ellipse.
func ellipsesEqual(ra Vec2, tha Angle, rb Vec2, thb Angle) bool {
	ca, pa := canonicalEllipse(ra, tha)
	cb, pb := canonicalEllipse(rb, thb)
	return ca.Equal(cb) && near(pa, pb)
}
