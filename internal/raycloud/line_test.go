package raycloud

import (
	"errors"
	"testing"
)

func TestLineBuilder(t *testing.T) {
	l := From(p3(1, 0, 0)).To(p3(4, 4, 0)).WithName("ray")
	if l.Start != p3(1, 0, 0) || l.End != p3(4, 4, 0) || l.Name != "ray" {
		t.Fatalf("line mismatch: %+v", l)
	}
	if !almostEq(l.Length(), 5) {
		t.Fatalf("length mismatch: %v", l.Length())
	}
	v, err := l.Vector(true)
	if err != nil || !almostEq(v.Direction.X, 0.6) || v.Start != l.Start {
		t.Fatalf("vector mismatch: %+v %v", v, err)
	}
	if ToPoint(p3(1, 2, 3)).Start != Origin {
		t.Fatalf("ToPoint must start at the origin")
	}
}

func TestMeshKeepsInteriorSamples(t *testing.T) {
	ray := From(p3(3, 0, 0)).To(p3(-0.5, 0, 0)).WithName("img_0 w_1 h_1")
	pts, err := ray.Mesh(20, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// x steps of 3.5/19 from 3 down to -0.5; samples 10..19 are inside 1.2
	if len(pts) != 10 {
		t.Fatalf("sample count mismatch: %d", len(pts))
	}
	for _, p := range pts {
		if p.Magnitude() >= SubjectRadius*SubjectSlack {
			t.Fatalf("sample outside the slack sphere: %+v", p)
		}
		if p.Name != ray.Name {
			t.Fatalf("sample must inherit the ray name: %q", p.Name)
		}
	}
	if pts[len(pts)-1] != (Point{X: -0.5, Name: ray.Name}) {
		t.Fatalf("last sample must be the ray end: %+v", pts[len(pts)-1])
	}
}

func TestMeshEdgeCases(t *testing.T) {
	ray := From(p3(3, 0, 0)).To(p3(-3, 0, 0))
	if pts, err := ray.Mesh(0, 1); err != nil || len(pts) != 0 {
		t.Fatalf("density 0 must yield nothing: %+v %v", pts, err)
	}
	if _, err := ray.Mesh(-1, 1); !errors.Is(err, ErrInvalidDensity) {
		t.Fatalf("want ErrInvalidDensity, got %v", err)
	}
	if _, err := ray.Mesh(10, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig for zero radius, got %v", err)
	}
	// a single sample is the start point, outside the subject
	if pts, _ := ray.Mesh(1, 1); len(pts) != 0 {
		t.Fatalf("density 1 from outside must be empty: %+v", pts)
	}
}

func TestMeshSkipsRaysMissingTheBound(t *testing.T) {
	Debug = true
	defer func() { Debug = false; resetSampleStats() }()
	resetSampleStats()

	miss := From(p3(3, 3, 0)).To(p3(3, -3, 0))
	pts, err := miss.Mesh(50, 1)
	if err != nil || len(pts) != 0 {
		t.Fatalf("ray far from the subject must be empty: %+v %v", pts, err)
	}
	hit := From(p3(0, 0, 3)).To(p3(0, 0, -3))
	if pts, _ := hit.Mesh(50, 1); len(pts) == 0 {
		t.Fatalf("ray through the origin must keep samples")
	}
	stats := SampleStats()
	if stats[Culled] != 1 || stats[Hit] != 1 || stats[Miss] != 0 {
		t.Fatalf("stats mismatch: %+v", stats)
	}
}

func TestSubjectBound(t *testing.T) {
	b, err := NewSubjectBound(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Contains(p3(1.19, 0, 0)) || b.Contains(p3(1.21, 0, 0)) {
		t.Fatalf("bound must be the 1.2 sphere")
	}
	lo, hi := b.Box()
	if lo.X > -1.2+1e-9 || hi.Z < 1.2-1e-9 {
		t.Fatalf("box too small: %+v %+v", lo, hi)
	}
}

func TestMeshRefinementNeverLosesSamples(t *testing.T) {
	ray := From(p3(2.5, 1, -0.5)).To(p3(-1.5, -0.6, 0.3))
	prev := 0
	// each density 2n-1 sample set contains the density n one
	for _, d := range []int{2, 3, 5, 9, 17, 33, 65} {
		pts, err := ray.Mesh(d, 1)
		if err != nil {
			t.Fatalf("density %d: unexpected error: %v", d, err)
		}
		if len(pts) < prev {
			t.Fatalf("density %d kept %d samples, fewer than %d", d, len(pts), prev)
		}
		prev = len(pts)
	}
	if prev == 0 {
		t.Fatalf("ray through the subject must keep samples")
	}
}
