package shape

import (
	"fmt"
	"iter"
	"strings"
)

type SegmentKind int

const (
	/// Move directly to the point without drawing anything, starting a new
	/// subpath.
	MoveToKind SegmentKind = iota + 1
	/// Draw a line from the current location to the point.
	LineToKind
	/// Draw a horizontal line to the x coordinate.
	HLineToKind
	/// Draw a vertical line to the y coordinate.
	VLineToKind
	/// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	/// Draw a cubic Bézier whose first control point is the reflection of
	/// the previous one.
	SmoothCubicToKind
	/// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	/// Draw a quadratic Bézier whose control point is the reflection of the
	/// previous one.
	SmoothQuadToKind
	/// Draw an elliptical arc to the point.
	ArcToKind
	/// Close off the subpath.
	ClosePathKind
)

var segmentLetters = [...]byte{
	MoveToKind:        'M',
	LineToKind:        'L',
	HLineToKind:       'H',
	VLineToKind:       'V',
	CubicToKind:       'C',
	SmoothCubicToKind: 'S',
	QuadToKind:        'Q',
	SmoothQuadToKind:  'T',
	ArcToKind:         'A',
	ClosePathKind:     'Z',
}

func (k SegmentKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case HLineToKind:
		return "HLineTo"
	case VLineToKind:
		return "VLineTo"
	case CubicToKind:
		return "CubicTo"
	case SmoothCubicToKind:
		return "SmoothCubicTo"
	case QuadToKind:
		return "QuadTo"
	case SmoothQuadToKind:
		return "SmoothQuadTo"
	case ArcToKind:
		return "ArcTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidSegmentKind"
	}
}

// Segment is a single command of a path's drawing program. It acts as a tagged union
// of all path commands, with Kind selecting the meaning of the remaining fields:
//
//   - MoveTo, LineTo, SmoothQuadTo: P0 is the end point.
//   - HLineTo: P0.X is the x coordinate. VLineTo: P0.Y is the y coordinate.
//   - CubicTo: P0 and P1 are control points, P2 is the end point.
//   - SmoothCubicTo, QuadTo: P0 is a control point, P1 is the end point.
//   - ArcTo: P0 is the end point; Radii, XRotation, LargeArc and Sweep describe
//     the arc.
//   - ClosePath: no payload.
//
// Coordinates of relative segments are offsets from the current point.
type Segment struct {
	Kind     SegmentKind
	Relative bool

	P0 Point
	P1 Point
	P2 Point

	Radii     Vec2
	XRotation Angle
	LargeArc  bool
	Sweep     bool
}

func MoveTo(pt Point) Segment {
	return Segment{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) Segment {
	return Segment{Kind: LineToKind, P0: pt}
}

func HLineTo(x float64) Segment {
	return Segment{Kind: HLineToKind, P0: Pt(x, 0)}
}

func VLineTo(y float64) Segment {
	return Segment{Kind: VLineToKind, P0: Pt(0, y)}
}

func CubicTo(p0, p1, p2 Point) Segment {
	return Segment{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func SmoothCubicTo(p0, p1 Point) Segment {
	return Segment{Kind: SmoothCubicToKind, P0: p0, P1: p1}
}

func QuadTo(p0, p1 Point) Segment {
	return Segment{Kind: QuadToKind, P0: p0, P1: p1}
}

func SmoothQuadTo(pt Point) Segment {
	return Segment{Kind: SmoothQuadToKind, P0: pt}
}

// ArcTo returns an elliptical arc segment to pt. The ellipse has the given radii and
// its x axis is rotated by xRotation; largeArc and sweep select one of the four
// possible arcs, as in SVG path data.
func ArcTo(radii Vec2, xRotation Angle, largeArc, sweep bool, pt Point) Segment {
	return Segment{
		Kind:      ArcToKind,
		P0:        pt,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

func ClosePath() Segment {
	return Segment{Kind: ClosePathKind}
}

// Rel returns a copy of seg with relative coordinates.
func (seg Segment) Rel() Segment {
	seg.Relative = true
	return seg
}

// End returns the point the segment ends at, in the segment's own coordinates. It is
// meaningless for HLineTo, VLineTo and ClosePath.
func (seg Segment) End() Point {
	switch seg.Kind {
	case CubicToKind:
		return seg.P2
	case SmoothCubicToKind, QuadToKind:
		return seg.P1
	default:
		return seg.P0
	}
}

func (seg Segment) letter() byte {
	if seg.Kind <= 0 || int(seg.Kind) >= len(segmentLetters) {
		return '?'
	}
	c := segmentLetters[seg.Kind]
	if seg.Relative {
		c += 'a' - 'A'
	}
	return c
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// String returns the segment as path data, e.g. "M 1,0" or "a 1,1 0 0,1 -1,1".
func (seg Segment) String() string {
	c := string(seg.letter())
	switch seg.Kind {
	case MoveToKind, LineToKind, SmoothQuadToKind:
		return c + " " + formatPair(seg.P0.X, seg.P0.Y)
	case HLineToKind:
		return c + " " + formatNumber(seg.P0.X)
	case VLineToKind:
		return c + " " + formatNumber(seg.P0.Y)
	case CubicToKind:
		return fmt.Sprintf("%s %s %s %s", c,
			formatPair(seg.P0.X, seg.P0.Y),
			formatPair(seg.P1.X, seg.P1.Y),
			formatPair(seg.P2.X, seg.P2.Y))
	case SmoothCubicToKind, QuadToKind:
		return fmt.Sprintf("%s %s %s", c,
			formatPair(seg.P0.X, seg.P0.Y),
			formatPair(seg.P1.X, seg.P1.Y))
	case ArcToKind:
		return fmt.Sprintf("%s %s %s %s,%s %s", c,
			formatPair(seg.Radii.X, seg.Radii.Y),
			formatNumber(seg.XRotation.Degrees()),
			flag(seg.LargeArc), flag(seg.Sweep),
			formatPair(seg.P0.X, seg.P0.Y))
	case ClosePathKind:
		return c
	default:
		return "InvalidSegment"
	}
}

// Equal reports whether two segments are the same command with the same arguments,
// within tolerance. Arcs are equal if their radii and rotations describe the same
// ellipse, such as "A 1,2 0" and "A 2,1 90". Equal doesn't resolve relative
// coordinates; compare the output of [Absolute] to compare drawing programs.
func (seg Segment) Equal(o Segment) bool {
	if seg.Kind != o.Kind {
		return false
	}
	if seg.Kind == ClosePathKind {
		return true
	}
	if seg.Relative != o.Relative {
		return false
	}
	switch seg.Kind {
	case HLineToKind:
		return near(seg.P0.X, o.P0.X)
	case VLineToKind:
		return near(seg.P0.Y, o.P0.Y)
	case ArcToKind:
		return seg.P0.Equal(o.P0) &&
			ellipsesEqual(seg.Radii, seg.XRotation, o.Radii, o.XRotation) &&
			seg.LargeArc == o.LargeArc &&
			seg.Sweep == o.Sweep
	default:
		return seg.P0.Equal(o.P0) && seg.P1.Equal(o.P1) && seg.P2.Equal(o.P2)
	}
}

// Transform returns the image of seg under m. seg must be absolute and must not be
// one of the shorthand kinds (HLineTo, VLineTo, SmoothCubicTo, SmoothQuadTo); use
// [Absolute] first.
func (seg Segment) Transform(m Matrix) Segment {
	if seg.Relative {
		panic("Transform called on relative segment")
	}
	switch seg.Kind {
	case MoveToKind:
		return MoveTo(seg.P0.Transform(m))
	case LineToKind:
		return LineTo(seg.P0.Transform(m))
	case CubicToKind:
		return CubicTo(seg.P0.Transform(m), seg.P1.Transform(m), seg.P2.Transform(m))
	case QuadToKind:
		return QuadTo(seg.P0.Transform(m), seg.P1.Transform(m))
	case ArcToKind:
		return transformArc(seg, m)
	case ClosePathKind:
		return ClosePath()
	default:
		panic(fmt.Sprintf("Transform called on %v segment", seg.Kind))
	}
}

// Absolute resolves a drawing program into absolute MoveTo, LineTo, CubicTo, QuadTo,
// ArcTo and ClosePath segments. Relative coordinates are made absolute, horizontal and
// vertical lines become lines, and smooth curves get their reflected control points.
//
// Two programs draw the same thing if their absolute forms are equal.
func Absolute(seq iter.Seq[Segment]) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var (
			cur, start Point
			// The last control point of the previous segment, for smooth curves.
			ctrl     Point
			prevKind SegmentKind
		)
		offset := func(seg Segment, pt Point) Point {
			if seg.Relative {
				return Pt(pt.X+cur.X, pt.Y+cur.Y)
			}
			return pt
		}
		reflect := func(kinds ...SegmentKind) Point {
			for _, k := range kinds {
				if prevKind == k {
					return Pt(2*cur.X-ctrl.X, 2*cur.Y-ctrl.Y)
				}
			}
			return cur
		}

		for seg := range seq {
			var out Segment
			switch seg.Kind {
			case MoveToKind:
				out = MoveTo(offset(seg, seg.P0))
				start = out.P0
			case LineToKind:
				out = LineTo(offset(seg, seg.P0))
			case HLineToKind:
				x := seg.P0.X
				if seg.Relative {
					x += cur.X
				}
				out = LineTo(Pt(x, cur.Y))
			case VLineToKind:
				y := seg.P0.Y
				if seg.Relative {
					y += cur.Y
				}
				out = LineTo(Pt(cur.X, y))
			case CubicToKind:
				out = CubicTo(offset(seg, seg.P0), offset(seg, seg.P1), offset(seg, seg.P2))
				ctrl = out.P1
			case SmoothCubicToKind:
				out = CubicTo(reflect(CubicToKind, SmoothCubicToKind), offset(seg, seg.P0), offset(seg, seg.P1))
				ctrl = out.P1
			case QuadToKind:
				out = QuadTo(offset(seg, seg.P0), offset(seg, seg.P1))
				ctrl = out.P0
			case SmoothQuadToKind:
				out = QuadTo(reflect(QuadToKind, SmoothQuadToKind), offset(seg, seg.P0))
				ctrl = out.P0
			case ArcToKind:
				out = ArcTo(seg.Radii, seg.XRotation, seg.LargeArc, seg.Sweep, offset(seg, seg.P0))
			case ClosePathKind:
				out = ClosePath()
			default:
				panic(fmt.Sprintf("invalid segment kind %v", seg.Kind))
			}

			if out.Kind == ClosePathKind {
				cur = start
			} else {
				cur = out.End()
			}
			prevKind = seg.Kind
			if !yield(out) {
				return
			}
		}
	}
}

// TransformSegments maps a drawing program through m. The result is absolute.
func TransformSegments(seq iter.Seq[Segment], m Matrix) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for seg := range Absolute(seq) {
			if !yield(seg.Transform(m)) {
				return
			}
		}
	}
}

// FormatSegments renders a drawing program as path data, separating commands by
// single spaces.
func FormatSegments(seq iter.Seq[Segment]) string {
	var sb strings.Builder
	for seg := range seq {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// segmentsEqual reports whether two drawing programs draw the same thing.
func segmentsEqual(a, b iter.Seq[Segment]) bool {
	nextB, stop := iter.Pull(Absolute(b))
	defer stop()
	for sa := range Absolute(a) {
		sb, ok := nextB()
		if !ok || !sa.Equal(sb) {
			return false
		}
	}
	_, ok := nextB()
	return !ok
}
