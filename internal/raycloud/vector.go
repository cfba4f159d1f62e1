package raycloud

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a direction anchored at a start point. The direction does not
// have to be unit-length; Start defaults to the origin.
type Vector struct {
	Direction r3.Vec
	Start     Point
}

// NewVector builds a vector from raw direction components. With normalize set
// the direction is scaled to unit length, which fails for a zero direction.
func NewVector(x, y, z Real, start Point, normalize bool) (Vector, error) {
	d := r3.Vec{X: x, Y: y, Z: z}
	if normalize {
		l := r3.Norm(d)
		if l == 0 {
			return Vector{}, ErrDegenerateVector
		}
		d = r3.Scale(1/l, d)
	}
	return Vector{Direction: d, Start: start}, nil
}

// Unit axis vectors starting at the origin.
func UnitRight() Vector   { return Vector{Direction: Right.Vec()} }
func UnitForward() Vector { return Vector{Direction: Forward.Vec()} }
func UnitUp() Vector      { return Vector{Direction: Up.Vec()} }

// Vector functions
func (v Vector) Neg() Vector { return Vector{Direction: r3.Scale(-1, v.Direction), Start: v.Start} }
func (v Vector) Add(w Vector) Vector {
	return Vector{Direction: r3.Add(v.Direction, w.Direction), Start: v.Start.Add(w.Start)}
}
func (v Vector) Sub(w Vector) Vector {
	return Vector{Direction: r3.Sub(v.Direction, w.Direction), Start: v.Start.Sub(w.Start)}
}
func (v Vector) Scale(s Real) Vector { return Vector{Direction: r3.Scale(s, v.Direction), Start: v.Start} }

// Magnitude returns the Euclidean length of the direction.
func (v Vector) Magnitude() Real { return r3.Norm(v.Direction) }

// End is Start + Direction.
func (v Vector) End() Point { return PointFromVec(r3.Add(v.Start.Vec(), v.Direction), "") }

// At evaluates the vector parametrically: Start + t*Direction.
func (v Vector) At(t Real) Point {
	return PointFromVec(r3.Add(v.Start.Vec(), r3.Scale(t, v.Direction)), "")
}

// OffsetTo re-bases the vector at p.
func (v Vector) OffsetTo(p Point) Vector { return Vector{Direction: v.Direction, Start: p} }

// OffsetBy moves the start point by p.
func (v Vector) OffsetBy(p Point) Vector { return Vector{Direction: v.Direction, Start: v.Start.Add(p)} }

// Line returns the segment from Start to End.
func (v Vector) Line() Line { return From(v.Start).To(v.End()) }

// ResizeTo keeps the direction and sets an absolute length.
func (v Vector) ResizeTo(length Real) (Vector, error) {
	l := v.Magnitude()
	if l == 0 {
		return Vector{}, ErrDegenerateVector
	}
	return Vector{Direction: r3.Scale(length/l, v.Direction), Start: v.Start}, nil
}

// ShrinkBy shortens the vector by delta (lengthens it for negative delta).
func (v Vector) ShrinkBy(delta Real) (Vector, error) {
	l := v.Magnitude()
	if l == 0 {
		return Vector{}, ErrDegenerateVector
	}
	return Vector{Direction: r3.Scale((l-delta)/l, v.Direction), Start: v.Start}, nil
}

// VectorFromPolar converts spherical-polar coordinates (degrees) to a vector:
// inclination is measured from +Z, azimuth from +X in the XY plane.
func VectorFromPolar(r, incl, azim Real, start Point, normalize bool) (Vector, error) {
	i := (s1.Angle(incl) * s1.Degree).Radians()
	a := (s1.Angle(azim) * s1.Degree).Radians()
	x := r * math.Sin(i) * math.Cos(a)
	y := r * math.Sin(i) * math.Sin(a)
	z := r * math.Cos(i)
	return NewVector(x, y, z, start, normalize)
}

// Polar returns the direction as (radius, inclination, azimuth), angles in degrees.
func (v Vector) Polar() (r, incl, azim Real, err error) {
	d := v.Direction
	r = r3.Norm(d)
	if r == 0 {
		return 0, 0, 0, ErrDegenerateVector
	}
	incl = (s1.Angle(math.Acos(d.Z/r)) * s1.Radian).Degrees()
	azim = (s1.Angle(math.Atan2(d.Y, d.X)) * s1.Radian).Degrees()
	return r, incl, azim, nil
}

// Cross returns the cross product of the directions, anchored at the sum of
// the start points.
func Cross(v1, v2 Vector, normalize bool) (Vector, error) {
	c := r3.Cross(v1.Direction, v2.Direction)
	return NewVector(c.X, c.Y, c.Z, v1.Start.Add(v2.Start), normalize)
}

// Intersection solves each axis independently for the parameter where the two
// vectors meet. It is only meaningful for vectors that actually intersect; an
// axis on which both directions agree has no solution and yields ErrParallel.
func Intersection(v1, v2 Vector) (Point, error) {
	d1, d2 := v1.Direction, v2.Direction
	p1, p2 := v1.Start, v2.Start
	dx, dy, dz := d1.X-d2.X, d1.Y-d2.Y, d1.Z-d2.Z
	if dx == 0 || dy == 0 || dz == 0 {
		return Point{}, fmt.Errorf("%w: direction delta (%g, %g, %g)", ErrParallel, dx, dy, dz)
	}
	return Point{
		X: (p2.X - p1.X) / dx,
		Y: (p2.Y - p1.Y) / dy,
		Z: (p2.Z - p1.Z) / dz,
	}, nil
}
