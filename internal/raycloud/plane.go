package raycloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// planeMeshSteps is the grid resolution of Plane.Mesh along each axis.
const planeMeshSteps = 10

// Plane is the surface A*x + B*y + C*z + D = 0.
type Plane struct {
	A, B, C, D Real
}

// NewPlane validates the coefficients: A, B and C cannot all be zero.
func NewPlane(a, b, c, d Real) (Plane, error) {
	if a == 0 && b == 0 && c == 0 {
		return Plane{}, ErrDegeneratePlane
	}
	return Plane{A: a, B: b, C: c, D: d}, nil
}

// PlanePerpendicularAt returns the plane through p whose normal is v's direction.
func PlanePerpendicularAt(v Vector, p Point) (Plane, error) {
	n := v.Direction
	return NewPlane(n.X, n.Y, n.Z, -r3.Dot(n, p.Vec()))
}

func (p Plane) Coefficients() [4]Real { return [4]Real{p.A, p.B, p.C, p.D} }

// Normal returns the (non-normalized) normal (A, B, C).
func (p Plane) Normal() r3.Vec { return r3.Vec{X: p.A, Y: p.B, Z: p.C} }

// Distance returns the signed distance of q from the plane.
func (p Plane) Distance(q Point) Real {
	n := p.Normal()
	return (r3.Dot(n, q.Vec()) + p.D) / r3.Norm(n)
}

// Intersect returns the point where the infinite line through v meets the
// plane. A direction parallel to the plane has no such point.
func (p Plane) Intersect(v Vector) (Point, error) {
	n := p.Normal()
	den := r3.Dot(v.Direction, n)
	if math.Abs(den) < epsParallel {
		return Point{}, fmt.Errorf("%w: vector %+v lies parallel to plane %+v", ErrParallel, v.Direction, p)
	}
	onPlane := r3.Scale(-p.D/r3.Norm2(n), n)
	t := r3.Dot(r3.Sub(onPlane, v.Start.Vec()), n) / den
	return PointFromVec(r3.Add(r3.Scale(t, v.Direction), v.Start.Vec()), ""), nil
}

// Mesh returns a square patch of the plane spanning [-size, size] on the two
// axes that are not solved for. The solved axis is the first one with a
// non-zero coefficient.
func (p Plane) Mesh(size Real) Mesh {
	coord := linspace(-size, size, planeMeshSteps)
	m := Mesh{Name: fmt.Sprintf("plane %gx%+gy%+gz%+g=0", p.A, p.B, p.C, p.D)}
	for i := 0; i < planeMeshSteps; i++ {
		for j := 0; j < planeMeshSteps; j++ {
			u, w := -coord[j], coord[i]
			var x, y, z Real
			switch {
			case p.A != 0:
				y, z = u, w
				x = (-p.B*y - p.C*z - p.D) / p.A
			case p.B != 0:
				x, z = u, w
				y = (-p.A*x - p.C*z - p.D) / p.B
			default:
				x, y = u, w
				z = (-p.A*x - p.B*y - p.D) / p.C
			}
			m.addVertex(Point{X: x, Y: y, Z: z})
		}
	}
	m.addGrid(planeMeshSteps, planeMeshSteps)
	return m
}
