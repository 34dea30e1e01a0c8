package shape

import (
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Path is a generic drawing program: a sequence of segments, with presentation
// attributes and a pending transform like every other shape.
//
// Segments are stored as given, relative ones included. Two paths are equal if their
// absolute forms are equal, regardless of how they were written.
type Path struct {
	base
	segs []Segment
}

func NewPath(segs ...Segment) *Path {
	return &Path{base: newBase(), segs: slices.Clone(segs)}
}

// ParsePath parses SVG path data. Malformed path data results in a [*SyntaxError]
// wrapping [ErrInvalidPathData].
func ParsePath(d string) (*Path, error) {
	segs, err := parsePathData(d)
	if err != nil {
		return nil, err
	}
	return &Path{base: newBase(), segs: segs}, nil
}

// MustParsePath is like [ParsePath] but panics on error.
func MustParsePath(d string) *Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPathFromShape returns a path that draws the same as s, including its pending
// transform. The presentation attributes of s are not copied.
func NewPathFromShape(s Shape) *Path {
	p := NewPath()
	p.AppendShape(s)
	return p
}

// NewPathFromAttributes creates a path from the SVG attribute d. The transform
// attribute becomes the pending transform and all other attributes are kept as
// presentation attributes.
func NewPathFromAttributes(attrs map[string]string) (*Path, error) {
	ar := newAttributeReader(attrs)
	p := &Path{}
	if d, ok := ar.raw("d"); ok {
		segs, err := parsePathData(d)
		if err != nil {
			return nil, fmt.Errorf("attribute d: %w", err)
		}
		p.segs = segs
	}
	if err := ar.finish(&p.base); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Path) Tag() string { return "path" }

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{base: p.base.clone(), segs: slices.Clone(p.segs)}
}

func (p *Path) cloneShape() Shape { return p.Clone() }

// Transform returns a copy of p with m applied after its pending transform.
func (p *Path) Transform(m Matrix) *Path {
	o := p.Clone()
	o.ApplyTransform(m)
	return o
}

// AppendShape appends the drawing program of s, with its pending transform resolved.
// If p itself has a pending transform, it is reified first, so that the appended
// segments aren't affected by it.
func (p *Path) AppendShape(s Shape) {
	p.Reify()
	p.segs = slices.AppendSeq(p.segs, s.Segments())
}

// AppendString parses path data and appends its segments, like [Path.AppendShape].
// Unless p is empty, d continues the existing path and needn't start with a moveto.
// On error, p is not modified.
func (p *Path) AppendString(d string) error {
	segs, err := parsePathFragment(d, len(p.segs) == 0)
	if err != nil {
		return err
	}
	p.Reify()
	p.segs = append(p.segs, segs...)
	return nil
}

// Len returns the number of stored segments.
func (p *Path) Len() int { return len(p.segs) }

// At returns the i-th stored segment, without the pending transform.
func (p *Path) At(i int) Segment { return p.segs[i] }

// Reify transforms all segments by the pending transform. The resulting segments are
// absolute.
func (p *Path) Reify() {
	if !p.transformed {
		return
	}
	p.segs = slices.Collect(TransformSegments(slices.Values(p.segs), p.PendingTransform()))
	p.resetTransform()
}

// Segments returns the drawing program. Without a pending transform these are the
// stored segments; otherwise they are the absolute, transformed segments.
func (p *Path) Segments() iter.Seq[Segment] {
	if !p.transformed {
		return slices.Values(p.segs)
	}
	return TransformSegments(slices.Values(p.segs), p.PendingTransform())
}

func (p *Path) D() string { return FormatSegments(p.Segments()) }

func (p *Path) String() string { return p.D() }

func (p *Path) Equal(o Shape) bool { return Equal(p, o) }

// EqualString reports whether p draws the same as the path data d. Malformed path
// data is never equal.
func (p *Path) EqualString(d string) bool {
	segs, err := parsePathData(d)
	if err != nil {
		return false
	}
	return segmentsEqual(p.Segments(), slices.Values(segs))
}

// UnmarshalYAML decodes either a scalar holding path data or a mapping of attributes,
// as accepted by [NewPathFromAttributes].
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		np, err := ParsePath(value.Value)
		if err != nil {
			return err
		}
		*p = *np
		return nil
	}
	attrs, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	np, err := NewPathFromAttributes(attrs)
	if err != nil {
		return err
	}
	*p = *np
	return nil
}
