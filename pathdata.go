package shape

// argCounts maps upper-case command letters to the number of arguments each
// repetition of the command takes.
var argCounts = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// parsePathData parses SVG path data into segments. Path data must start with a
// moveto.
//
// Numbers may be separated by whitespace and at most one comma, or not at all where
// that is unambiguous ("M0-1.5.5" is "M 0,-1.5 0.5"). Commas only separate
// arguments. Arc flags are single 0 or 1 characters. Argument groups following a
// command repeat it; after a moveto, the repetitions are linetos.
func parsePathData(d string) ([]Segment, error) {
	return parsePathFragment(d, true)
}

// parsePathFragment is like parsePathData, but if leading is false, the data
// continues an existing path and may start with any command.
func parsePathFragment(d string, leading bool) ([]Segment, error) {
	b := []byte(d)
	var segs []Segment
	var f [7]float64

	var cmd byte
	i := skipWhitespace(b)
	for i < len(b) {
		c := b[i]
		if isAlpha(c) {
			if _, ok := argCounts[upper(c)]; !ok {
				return nil, syntaxError(ErrInvalidPathData, d, i, "unknown command %q", c)
			}
			if leading && cmd == 0 && upper(c) != 'M' {
				return nil, syntaxError(ErrInvalidPathData, d, i, "path data must start with a moveto, not %q", c)
			}
			cmd = c
			i++
			i += skipWhitespace(b[i:])
			if i < len(b) && b[i] == ',' {
				return nil, syntaxError(ErrInvalidPathData, d, i, "unexpected comma after command %q", cmd)
			}
		} else {
			// Implicit repetition of the previous command.
			switch {
			case cmd == 0:
				return nil, syntaxError(ErrInvalidPathData, d, i, "path data must start with a command")
			case upper(cmd) == 'Z':
				return nil, syntaxError(ErrInvalidPathData, d, i, "unexpected argument after closepath")
			case cmd == 'M':
				cmd = 'L'
			case cmd == 'm':
				cmd = 'l'
			}
		}

		CMD := upper(cmd)
		n := argCounts[CMD]
		for j := 0; j < n; j++ {
			if CMD == 'A' && (j == 3 || j == 4) {
				if i < len(b) && (b[i] == '0' || b[i] == '1') {
					f[j] = float64(b[i] - '0')
					i++
				} else {
					return nil, syntaxError(ErrInvalidPathData, d, i, "arc flags must be 0 or 1 in command %q", cmd)
				}
			} else {
				v, m := scanNumber(b[i:])
				if m == 0 {
					if n == 1 {
						return nil, syntaxError(ErrInvalidPathData, d, i, "number should follow command %q", cmd)
					}
					return nil, syntaxError(ErrInvalidPathData, d, i, "sets of %d numbers should follow command %q", n, cmd)
				}
				f[j] = v
				i += m
			}
			k, comma := skipSeparator(b[i:])
			if comma >= 0 && (i+k == len(b) || isAlpha(b[i+k])) {
				return nil, syntaxError(ErrInvalidPathData, d, i+comma, "unexpected comma after arguments of command %q", cmd)
			}
			i += k
		}

		var seg Segment
		switch CMD {
		case 'M':
			seg = MoveTo(Pt(f[0], f[1]))
		case 'L':
			seg = LineTo(Pt(f[0], f[1]))
		case 'H':
			seg = HLineTo(f[0])
		case 'V':
			seg = VLineTo(f[0])
		case 'C':
			seg = CubicTo(Pt(f[0], f[1]), Pt(f[2], f[3]), Pt(f[4], f[5]))
		case 'S':
			seg = SmoothCubicTo(Pt(f[0], f[1]), Pt(f[2], f[3]))
		case 'Q':
			seg = QuadTo(Pt(f[0], f[1]), Pt(f[2], f[3]))
		case 'T':
			seg = SmoothQuadTo(Pt(f[0], f[1]))
		case 'A':
			seg = ArcTo(Vec(f[0], f[1]), Deg(f[2]), f[3] == 1, f[4] == 1, Pt(f[5], f[6]))
		case 'Z':
			seg = ClosePath()
		}
		seg.Relative = cmd != CMD
		segs = append(segs, seg)
	}
	return segs, nil
}
