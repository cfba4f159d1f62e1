package raycloud

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SubjectBound is the sampling volume: a sphere of radius*SubjectSlack at the
// origin, held as an SDF. It is read-only and safe to share across workers.
type SubjectBound struct {
	Radius   Real // nominal subject radius
	s        sdf.SDF3
	min, max Point
}

// NewSubjectBound builds the slack sphere around a subject of the given radius.
func NewSubjectBound(subjectRadius Real) (*SubjectBound, error) {
	if !(subjectRadius > 0) || !isFinite(subjectRadius) {
		return nil, fmt.Errorf("%w: subject radius must be > 0, got %g", ErrInvalidConfig, subjectRadius)
	}
	s, err := sdf.Sphere3D(subjectRadius * SubjectSlack)
	if err != nil {
		return nil, fmt.Errorf("subject bound: %w", err)
	}
	bb := s.BoundingBox()
	return &SubjectBound{
		Radius: subjectRadius,
		s:      s,
		min:    Point{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		max:    Point{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}, nil
}

// Contains reports whether p lies strictly inside the slack sphere.
func (b *SubjectBound) Contains(p Point) bool {
	return b.s.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}) < 0
}

// Crosses reports whether the segment touches the bound's bounding box.
func (b *SubjectBound) Crosses(l Line) bool {
	return segmentAABB(l.Start, l.End, b.min, b.max)
}

// Box returns the axis-aligned bounding box of the sampling volume.
func (b *SubjectBound) Box() (min, max Point) { return b.min, b.max }
