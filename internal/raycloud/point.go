package raycloud

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point represents a point in 3-dimensional space. Name is an optional label
// used to trace a sample back to the camera pixel that produced it.
type Point struct {
	X, Y, Z Real
	Name    string
}

// Named unit points.
var (
	Origin  = Point{}
	Right   = Point{X: 1}
	Forward = Point{Y: 1}
	Up      = Point{Z: 1}
)

// PointFromVec wraps a gonum vector.
func PointFromVec(v r3.Vec, name string) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z, Name: name}
}

// PointFromSlice builds a Point from a raw coordinate array.
func PointFromSlice(abc []Real, name string) (Point, error) {
	if len(abc) != 3 {
		return Point{}, fmt.Errorf("%w: got %d", ErrArity, len(abc))
	}
	return Point{X: abc[0], Y: abc[1], Z: abc[2], Name: name}, nil
}

// Vec returns the coordinates as a gonum vector.
func (p Point) Vec() r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

func (p Point) Array() [3]Real { return [3]Real{p.X, p.Y, p.Z} }

// Neg, Add and Sub drop the label: the result is a new, anonymous point.
func (p Point) Neg() Point         { return Point{X: -p.X, Y: -p.Y, Z: -p.Z} }
func (p Point) Add(q Point) Point { return PointFromVec(r3.Add(p.Vec(), q.Vec()), "") }
func (p Point) Sub(q Point) Point { return PointFromVec(r3.Sub(p.Vec(), q.Vec()), "") }

// Magnitude is the distance from the origin.
func (p Point) Magnitude() Real { return r3.Norm(p.Vec()) }

// ReflectOn mirrors p through q.
func (p Point) ReflectOn(q Point) Point {
	return PointFromVec(r3.Sub(r3.Scale(2, q.Vec()), p.Vec()), "")
}

// MoveBy translates p by the direction of v (v's start is ignored).
func (p Point) MoveBy(v Vector) Point {
	return PointFromVec(r3.Add(p.Vec(), v.Direction), "")
}

// Vector returns the position vector of p, starting at the origin.
func (p Point) Vector(normalize bool) (Vector, error) {
	return NewVector(p.X, p.Y, p.Z, Origin, normalize)
}

func (p Point) String() string {
	if p.Name == "" {
		return fmt.Sprintf("[%g %g %g]", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("%s[%g %g %g]", p.Name, p.X, p.Y, p.Z)
}
