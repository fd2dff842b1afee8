package vec2

import "math"

// Epsilon is the tolerance used across the library to classify "on the
// line" / "on the boundary" cases: BSP edge classification, obstacle
// coverage tests, and near-parallel constraint detection.
const Epsilon = 1e-5

// Vec2 is a pair of finite floating-point scalars. Zero value is the origin.
type Vec2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns a + b.
func Add(a, b Vec2) Vec2 { return Vec2{X: a.X + b.X, Y: a.Y + b.Y} }

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 { return Vec2{X: a.X - b.X, Y: a.Y - b.Y} }

// Scale returns v scaled by s.
func Scale(v Vec2, s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Neg returns -v.
func Neg(v Vec2) Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Dot returns a·b.
func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Det returns the 2-D determinant a.x*b.y - a.y*b.x, i.e. the z-component
// of the 3-D cross product of a and b extended into the plane.
func Det(a, b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// Sqr returns a*a.
func Sqr(a float64) float64 { return a * a }

// AbsSq returns |v|^2.
func AbsSq(v Vec2) float64 { return Dot(v, v) }

// Abs returns |v|.
func Abs(v Vec2) float64 { return math.Sqrt(AbsSq(v)) }

// Normalize returns v / |v|. Undefined (NaN/Inf components) for the zero
// vector; callers must guard against zero-length vectors before calling.
func Normalize(v Vec2) Vec2 { return Scale(v, 1/Abs(v)) }

// LeftOf returns det(a-c, b-a): positive when c lies to the left of the
// directed line from a to b, negative when to the right, zero when c is
// collinear with a and b.
func LeftOf(a, b, c Vec2) float64 { return Det(Sub(a, c), Sub(b, a)) }

// DistSqPointLineSegment returns the squared distance from r to the closest
// point on the segment pq, found by projecting r onto the line through p
// and q and clamping the projection parameter to [0, 1].
func DistSqPointLineSegment(p, q, r Vec2) float64 {
	pq := Sub(q, p)
	pr := Sub(r, p)
	absSqPQ := AbsSq(pq)
	if absSqPQ == 0 {
		// Degenerate segment: both endpoints coincide, distance is to p.
		return AbsSq(pr)
	}

	t := Dot(pr, pq) / absSqPQ
	if t < 0 {
		return AbsSq(pr)
	}
	if t > 1 {
		return AbsSq(Sub(r, q))
	}

	return AbsSq(Sub(r, Add(p, Scale(pq, t))))
}
