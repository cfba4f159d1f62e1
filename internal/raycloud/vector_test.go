package raycloud

import (
	"errors"
	"testing"
)

func TestNewVectorNormalize(t *testing.T) {
	v, err := NewVector(3, 0, 4, Origin, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEq(v.Magnitude(), 1) || !almostEq(v.Direction.X, 0.6) || !almostEq(v.Direction.Z, 0.8) {
		t.Fatalf("normalize mismatch: %+v", v)
	}
	if _, err := NewVector(0, 0, 0, Origin, true); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("want ErrDegenerateVector, got %v", err)
	}
	if _, err := NewVector(0, 0, 0, Origin, false); err != nil {
		t.Fatalf("zero vector without normalization is allowed: %v", err)
	}
}

func TestVectorAddSubKeepLength(t *testing.T) {
	a, _ := NewVector(1, 2, 3, p3(1, 0, 0), false)
	b, _ := NewVector(4, 5, 6, p3(0, 1, 0), false)
	sum := a.Add(b)
	if sum.Direction.X != 5 || sum.Direction.Y != 7 || sum.Direction.Z != 9 {
		t.Fatalf("Add direction mismatch: %+v", sum.Direction)
	}
	if sum.Start != p3(1, 1, 0) {
		t.Fatalf("Add start mismatch: %+v", sum.Start)
	}
	diff := b.Sub(a)
	if diff.Direction.X != 3 || diff.Direction.Y != 3 || diff.Direction.Z != 3 {
		t.Fatalf("Sub direction mismatch: %+v", diff.Direction)
	}
}

func TestResizeAndShrink(t *testing.T) {
	v, _ := NewVector(3, 0, 0, Origin, false)
	r, err := v.ResizeTo(0.5)
	if err != nil || !almostEq(r.Magnitude(), 0.5) {
		t.Fatalf("ResizeTo mismatch: %+v %v", r, err)
	}
	s, err := v.ShrinkBy(0.05)
	if err != nil || !almostEq(s.End().X, 2.95) {
		t.Fatalf("ShrinkBy mismatch: %+v %v", s, err)
	}
	var zero Vector
	if _, err := zero.ResizeTo(1); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("want ErrDegenerateVector, got %v", err)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	v, err := VectorFromPolar(3, 60, 45, Origin, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, incl, azim, err := v.Polar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEq(r, 3) || !almostEq(incl, 60) || !almostEq(azim, 45) {
		t.Fatalf("polar mismatch: r=%v incl=%v azim=%v", r, incl, azim)
	}
	for _, incl := range []Real{1, 30, 89.5, 90, 120, 179} {
		for _, azim := range []Real{-170, -45, 0, 10, 90, 179} {
			v, _ := VectorFromPolar(1.5, incl, azim, Origin, false)
			r, i, a, err := v.Polar()
			if err != nil || !almostEq(r, 1.5) || !almostEq(i, incl) || !almostEq(a, azim) {
				t.Fatalf("round trip (%v, %v) mismatch: %v %v %v %v", incl, azim, r, i, a, err)
			}
		}
	}
	up, _ := VectorFromPolar(2, 0, 123, Origin, false)
	if !almostEq(up.Direction.Z, 2) || !almostEq(up.Direction.X, 0) {
		t.Fatalf("zero inclination must point up: %+v", up.Direction)
	}
}

func TestCross(t *testing.T) {
	c, err := Cross(UnitRight(), UnitForward(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Direction.X != 0 || c.Direction.Y != 0 || c.Direction.Z != 1 {
		t.Fatalf("right x forward must be up: %+v", c.Direction)
	}
	if _, err := Cross(UnitUp(), UnitUp(), true); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("normalized cross of parallel vectors must fail, got %v", err)
	}
}

func TestIntersection(t *testing.T) {
	a, _ := NewVector(1, 1, 1, p3(1, 2, 3), false)
	b, _ := NewVector(2, 3, 4, Origin, false)
	p, err := Intersection(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != p3(1, 1, 1) {
		t.Fatalf("intersection mismatch: %+v", p)
	}
	if _, err := Intersection(a, a.OffsetTo(Origin)); !errors.Is(err, ErrParallel) {
		t.Fatalf("want ErrParallel, got %v", err)
	}
}

func TestVectorAtAndOffsets(t *testing.T) {
	v, _ := NewVector(2, 0, -1, p3(1, 1, 1), false)
	if got := v.At(0.5); got != p3(2, 1, 0.5) {
		t.Fatalf("At mismatch: %+v", got)
	}
	if got := v.At(0); got != v.Start {
		t.Fatalf("At(0) must be the start: %+v", got)
	}
	moved := v.OffsetBy(p3(0, -1, 2))
	if moved.Start != p3(1, 0, 3) || moved.Direction != v.Direction {
		t.Fatalf("OffsetBy mismatch: %+v", moved)
	}
	rebased := v.OffsetTo(Origin)
	if rebased.Start != Origin || rebased.End() != p3(2, 0, -1) {
		t.Fatalf("OffsetTo mismatch: %+v", rebased)
	}
}
