package shape

import (
	"strings"
)

// ParseTransform parses an SVG transform list, such as
// "translate(40,40) rotate(15deg) scale(2,1.5)".
//
// The supported functions are translate(x[,y]), scale(sx[,sy]), rotate(a[,cx,cy]),
// skewX(a), skewY(a) and matrix(a,b,c,d,e,f). Function names are matched
// case-insensitively. Functions and their arguments may be separated by any mix of
// whitespace and commas. Angles may carry a unit (deg, grad, rad, turn) and default to
// degrees; lengths may carry a px suffix.
//
// Functions are composed in textual order, each one multiplied onto the right of the
// result so far. Applied to a point, the rightmost function therefore acts first.
//
// An empty list is the identity. Malformed lists result in a [*SyntaxError] wrapping
// [ErrInvalidTransform].
func ParseTransform(s string) (Matrix, error) {
	sc := transformScanner{s: s}
	result := Identity
	for sc.scan() {
		m, err := sc.matrix()
		if err != nil {
			return Identity, err
		}
		result = result.Mul(m)
	}
	if sc.err != nil {
		return Identity, sc.err
	}
	return result, nil
}

// MustParseTransform is like [ParseTransform] but panics if s cannot be parsed. It
// simplifies initialization of global variables holding transforms.
func MustParseTransform(s string) Matrix {
	m, err := ParseTransform(s)
	if err != nil {
		panic(err)
	}
	return m
}

type transformArg struct {
	v    float64
	unit string
	off  int
}

type transformScanner struct {
	s string
	i int

	fn    string
	fnOff int
	args  []transformArg

	err error
}

func (sc *transformScanner) fail(off int, format string, args ...any) bool {
	sc.err = syntaxError(ErrInvalidTransform, sc.s, off, format, args...)
	return false
}

// scan reads the next function and its arguments. It returns false at the end of
// input or on error.
func (sc *transformScanner) scan() bool {
	sc.i += skipCommaWhitespace([]byte(sc.s[sc.i:]))
	if sc.i == len(sc.s) {
		return false
	}

	start := sc.i
	for sc.i < len(sc.s) && isAlpha(sc.s[sc.i]) {
		sc.i++
	}
	if start == sc.i {
		return sc.fail(start, "expected function name, got %q", sc.s[sc.i])
	}
	sc.fn = strings.ToLower(sc.s[start:sc.i])
	sc.fnOff = start

	sc.i += skipWhitespace([]byte(sc.s[sc.i:]))
	if sc.i == len(sc.s) || sc.s[sc.i] != '(' {
		return sc.fail(sc.i, "expected '(' after %s", sc.fn)
	}
	sc.i++

	sc.args = sc.args[:0]
	for {
		sc.i += skipCommaWhitespace([]byte(sc.s[sc.i:]))
		if sc.i == len(sc.s) {
			return sc.fail(sc.i, "missing ')' after arguments of %s", sc.fn)
		}
		if sc.s[sc.i] == ')' {
			sc.i++
			return true
		}
		off := sc.i
		v, n := scanNumber([]byte(sc.s[sc.i:]))
		if n == 0 {
			return sc.fail(off, "expected number in arguments of %s", sc.fn)
		}
		sc.i += n
		unitStart := sc.i
		for sc.i < len(sc.s) && isAlpha(sc.s[sc.i]) {
			sc.i++
		}
		sc.args = append(sc.args, transformArg{v: v, unit: sc.s[unitStart:sc.i], off: off})
	}
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (sc *transformScanner) arity(counts ...int) error {
	for _, n := range counts {
		if len(sc.args) == n {
			return nil
		}
	}
	return syntaxError(ErrInvalidTransform, sc.s, sc.fnOff, "%s doesn't take %d arguments", sc.fn, len(sc.args))
}

func (sc *transformScanner) length(i int) (float64, error) {
	arg := sc.args[i]
	if arg.unit != "" && arg.unit != "px" {
		return 0, syntaxError(ErrInvalidTransform, sc.s, arg.off, "unsupported unit %q", arg.unit)
	}
	return arg.v, nil
}

func (sc *transformScanner) number(i int) (float64, error) {
	arg := sc.args[i]
	if arg.unit != "" {
		return 0, syntaxError(ErrInvalidTransform, sc.s, arg.off, "unexpected unit %q", arg.unit)
	}
	return arg.v, nil
}

func (sc *transformScanner) angle(i int) (Angle, error) {
	arg := sc.args[i]
	if arg.unit == "" {
		return Deg(arg.v), nil
	}
	for _, u := range angleSuffixes {
		if arg.unit == u.suffix {
			return NewAngle(arg.v, u.unit), nil
		}
	}
	return Angle{}, syntaxError(ErrInvalidTransform, sc.s, arg.off, "unsupported angle unit %q", arg.unit)
}

func (sc *transformScanner) lengths() ([]float64, error) {
	out := make([]float64, len(sc.args))
	for i := range sc.args {
		v, err := sc.length(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// matrix returns the transform described by the current function.
func (sc *transformScanner) matrix() (Matrix, error) {
	switch sc.fn {
	case "matrix":
		if err := sc.arity(6); err != nil {
			return Matrix{}, err
		}
		var n [6]float64
		for i := range n {
			v, err := sc.length(i)
			if err != nil {
				return Matrix{}, err
			}
			n[i] = v
		}
		return NewMatrix(n), nil

	case "translate":
		if err := sc.arity(1, 2); err != nil {
			return Matrix{}, err
		}
		v, err := sc.lengths()
		if err != nil {
			return Matrix{}, err
		}
		if len(v) == 1 {
			return Translate(v[0], 0), nil
		}
		return Translate(v[0], v[1]), nil

	case "scale":
		if err := sc.arity(1, 2); err != nil {
			return Matrix{}, err
		}
		sx, err := sc.number(0)
		if err != nil {
			return Matrix{}, err
		}
		sy := sx
		if len(sc.args) == 2 {
			if sy, err = sc.number(1); err != nil {
				return Matrix{}, err
			}
		}
		return Scale(sx, sy), nil

	case "rotate":
		if err := sc.arity(1, 3); err != nil {
			return Matrix{}, err
		}
		th, err := sc.angle(0)
		if err != nil {
			return Matrix{}, err
		}
		if len(sc.args) == 1 {
			return Rotate(th), nil
		}
		cx, err := sc.length(1)
		if err != nil {
			return Matrix{}, err
		}
		cy, err := sc.length(2)
		if err != nil {
			return Matrix{}, err
		}
		return RotateAbout(th, Pt(cx, cy)), nil

	case "skewx", "skewy":
		if err := sc.arity(1); err != nil {
			return Matrix{}, err
		}
		th, err := sc.angle(0)
		if err != nil {
			return Matrix{}, err
		}
		if sc.fn == "skewx" {
			return SkewX(th), nil
		}
		return SkewY(th), nil

	default:
		return Matrix{}, syntaxError(ErrInvalidTransform, sc.s, sc.fnOff, "unknown function %q", sc.fn)
	}
}
