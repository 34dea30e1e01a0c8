// Package shape models the basic drawable shapes of SVG (rectangles, circles,
// ellipses, lines, polylines and polygons) and generic paths, built on 2D affine
// transforms.
//
// # Lazy transforms
//
// Every shape stores its canonical geometry (such as a rectangle's corner and size),
// a set of presentation attributes, and a pending transform. Applying a transform,
// with [Transform], [Rect.Transform] and friends, only composes it onto the pending
// transform. The canonical geometry stays untouched until [Shape.Reify] bakes the
// pending transform into it, as far as the geometry can represent it: a rotated
// rectangle is still a rectangle with a pending rotation.
//
// The implicit getters, such as [Rect.ImplicitWidth] or [Circle.ImplicitRx], resolve
// the pending transform on demand. They are based on [Matrix.Decompose], which splits
// a transform into translation, rotation, skew and scale.
//
// # Construction
//
// Each shape can be created in four ways:
//
//   - as a struct literal of its canonical fields, such as &Circle{Cx: 1, R: 2}
//   - from positional values, such as NewRect(0, 0, 10, 5)
//   - from a mapping of SVG attributes, such as [NewRectFromAttributes]; the transform
//     attribute becomes the pending transform, and unrecognized attributes are kept as
//     presentation attributes
//   - from another shape, such as [NewCircleFromShape]; this copies shapes of the same
//     kind and converts between compatible kinds
//
// Shapes also decode from YAML mappings of attributes.
//
// # Equality
//
// Shapes compare equal if they have the same presentation attributes and resolve to
// the same geometry, within a small tolerance. Comparison is by capability, not by
// type. A circle and an ellipse, which both implement [Elliptical], are equal if their
// resolved centers and radii agree. A line and a polyline, which both implement
// [PointSequence], are equal if they have the same points. Paths compare equal to
// anything that draws the same thing.
//
// # Path data
//
// All shapes serialize to SVG path data via [Shape.D]. [ParsePath] parses path data
// into a [Path], whose segments can be inspected and transformed.
//
// # Units
//
// Angles are represented by [Angle], which remembers the unit it was created in for
// display purposes. Lengths may carry a px suffix and are otherwise unitless.
package shape
