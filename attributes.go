package shape

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// Attributes holds a shape's presentation attributes, such as fill or stroke. Their
// values are opaque to this package and are only compared for equality.
type Attributes map[string]string

// Clone returns an independent copy of a. The result is never nil.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// Equal reports whether a and o contain the same keys and values. A nil map is equal
// to an empty one.
func (a Attributes) Equal(o Attributes) bool {
	return maps.Equal(a, o)
}

// UnmarshalYAML decodes a YAML mapping of scalars. Non-string scalars are kept in
// their textual form.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	m, err := decodeAttributeNode(value)
	if err != nil {
		return err
	}
	*a = m
	return nil
}

func decodeAttributeNode(value *yaml.Node) (Attributes, error) {
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidAttribute, value.Line)
	}
	out := make(Attributes, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: value of %q isn't a scalar", ErrInvalidAttribute, v.Line, k.Value)
		}
		out[k.Value] = v.Value
	}
	return out, nil
}

// attributeReader extracts geometry from an attribute mapping. Keys it reads are
// consumed; whatever remains afterwards is presentation.
type attributeReader struct {
	attrs map[string]string
	used  map[string]bool
	err   error
}

func newAttributeReader(attrs map[string]string) *attributeReader {
	return &attributeReader{
		attrs: attrs,
		// The element name selects the variant and isn't an attribute of it.
		used: map[string]bool{"tag": true},
	}
}

func (r *attributeReader) has(key string) bool {
	_, ok := r.attrs[key]
	return ok
}

func (r *attributeReader) raw(key string) (string, bool) {
	v, ok := r.attrs[key]
	if ok {
		r.used[key] = true
	}
	return v, ok
}

// length returns the value of key, or def if it is missing.
func (r *attributeReader) length(key string, def float64) float64 {
	s, ok := r.raw(key)
	if !ok || r.err != nil {
		return def
	}
	v, err := ParseLength(s)
	if err != nil {
		r.err = fmt.Errorf("attribute %s: %w", key, err)
		return def
	}
	return v
}

// size is like length but rejects negative values.
func (r *attributeReader) size(key string, def float64) float64 {
	v := r.length(key, def)
	if v < 0 && r.err == nil {
		r.err = fmt.Errorf("attribute %s: %w: negative value %g", key, ErrInvalidAttribute, v)
	}
	return v
}

func (r *attributeReader) points(key string) []Point {
	s, ok := r.raw(key)
	if !ok || r.err != nil {
		return nil
	}
	pts, err := ParsePoints(s)
	if err != nil {
		r.err = fmt.Errorf("attribute %s: %w", key, err)
	}
	return pts
}

// finish parses the transform attribute into b's pending transform and stores all
// unconsumed keys as presentation attributes.
func (r *attributeReader) finish(b *base) error {
	if s, ok := r.raw("transform"); ok && r.err == nil {
		m, err := ParseTransform(s)
		if err != nil {
			r.err = fmt.Errorf("attribute transform: %w", err)
		} else {
			b.setTransform(m)
		}
	}
	if r.err != nil {
		return r.err
	}
	b.attrs = make(Attributes, len(r.attrs))
	for k, v := range r.attrs {
		if !r.used[k] {
			b.attrs[k] = v
		}
	}
	return nil
}
