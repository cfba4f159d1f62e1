package raycloud

import (
	"errors"
	"testing"
)

func TestNewPlaneDegenerate(t *testing.T) {
	if _, err := NewPlane(0, 0, 0, 5); !errors.Is(err, ErrDegeneratePlane) {
		t.Fatalf("want ErrDegeneratePlane, got %v", err)
	}
}

func TestPlaneIntersect(t *testing.T) {
	pl, err := NewPlane(0, 0, 1, -1) // z = 1
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := NewVector(0.5, 0, 2, Origin, false)
	p, err := pl.Intersect(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEq(p.X, 0.25) || !almostEq(p.Y, 0) || !almostEq(p.Z, 1) {
		t.Fatalf("intersection mismatch: %+v", p)
	}
	if !almostEq(pl.Distance(p), 0) {
		t.Fatalf("intersection must lie on the plane: %v", pl.Distance(p))
	}
	if _, err := pl.Intersect(UnitRight()); !errors.Is(err, ErrParallel) {
		t.Fatalf("want ErrParallel, got %v", err)
	}
}

func TestPlanePerpendicularAt(t *testing.T) {
	v, _ := NewVector(3, 0, 0, Origin, false)
	pl, err := PlanePerpendicularAt(v, p3(2.95, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range []Point{p3(2.95, 0, 0), p3(2.95, 7, -3)} {
		if !almostEq(pl.Distance(q), 0) {
			t.Fatalf("%v should lie on the plane %+v", q, pl)
		}
	}
	if pl.Distance(Origin)*pl.Distance(p3(3, 0, 0)) >= 0 {
		t.Fatalf("origin and camera must be on opposite sides of %+v", pl)
	}
}

func TestPlaneMesh(t *testing.T) {
	pl, _ := NewPlane(0, 0, 1, -1)
	m := pl.Mesh(2)
	if m.VertexCount() != planeMeshSteps*planeMeshSteps {
		t.Fatalf("vertex count mismatch: %d", m.VertexCount())
	}
	if want := 2 * (planeMeshSteps - 1) * (planeMeshSteps - 1); m.TriangleCount() != want {
		t.Fatalf("triangle count mismatch: %d != %d", m.TriangleCount(), want)
	}
	for i := 0; i < m.VertexCount(); i++ {
		if v := m.Vertex(i); !almostEq(v.Z, 1) || v.X < -2 || v.X > 2 {
			t.Fatalf("vertex %d off the patch: %+v", i, v)
		}
	}
}

func TestPlaneCoefficients(t *testing.T) {
	pl, _ := NewPlane(1, -2, 3, -4)
	if c := pl.Coefficients(); c != [4]Real{1, -2, 3, -4} {
		t.Fatalf("coefficients mismatch: %v", c)
	}
	if n := pl.Normal(); n.X != 1 || n.Y != -2 || n.Z != 3 {
		t.Fatalf("normal mismatch: %+v", n)
	}
}
