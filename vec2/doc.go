// Package vec2 provides the 2-D vector algebra used throughout orca2d: a
// value-typed Vec2, the small set of scalar operations the rest of the
// library builds on (dot product, 2-D determinant, squared/plain length,
// normalization, the "left of" orientation test and point-to-segment
// distance), and the single epsilon used everywhere to classify
// on-the-line cases.
//
// Every operation here returns a fresh Vec2; there are no pointer receivers
// and no shared mutable state. Normalize is undefined for the zero vector —
// callers must guard against zero-length inputs themselves, exactly as the
// rest of the library does before calling it.
package vec2
