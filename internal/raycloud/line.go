package raycloud

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Line is a segment between two points. Name identifies the pixel a ray was
// cast through and is inherited by every sample taken on it.
type Line struct {
	Start, End Point
	Name       string
}

// LineFrom is a line whose end point is not known yet.
type LineFrom struct {
	start Point
}

// From starts building a line at start; finish it with To.
func From(start Point) LineFrom { return LineFrom{start: start} }

// To completes the line.
func (l LineFrom) To(end Point) Line { return Line{Start: l.start, End: end} }

// ToPoint returns a line from the origin to end.
func ToPoint(end Point) Line { return Line{End: end} }

// WithName returns a copy of the line carrying name.
func (l Line) WithName(name string) Line {
	l.Name = name
	return l
}

// Vector returns End-Start anchored at Start.
func (l Line) Vector(normalize bool) (Vector, error) {
	d := r3.Sub(l.End.Vec(), l.Start.Vec())
	return NewVector(d.X, d.Y, d.Z, l.Start, normalize)
}

// Length returns the distance between the end points.
func (l Line) Length() Real { return r3.Norm(r3.Sub(l.End.Vec(), l.Start.Vec())) }

// Mesh samples density evenly spaced points from Start to End (both included)
// and keeps those strictly inside subjectRadius*SubjectSlack.
func (l Line) Mesh(density int, subjectRadius Real) ([]Point, error) {
	bound, err := NewSubjectBound(subjectRadius)
	if err != nil {
		return nil, err
	}
	return l.MeshWithin(density, bound)
}

// MeshWithin is Mesh against a prebuilt bound. Segments that miss the bound's
// box are skipped without sampling.
func (l Line) MeshWithin(density int, bound *SubjectBound) ([]Point, error) {
	if density < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDensity, density)
	}
	if density == 0 {
		return nil, nil
	}
	if !bound.Crosses(l) {
		if Debug {
			samplesCulled.Add(1)
		}
		return nil, nil
	}
	xs := linspace(l.Start.X, l.End.X, density)
	ys := linspace(l.Start.Y, l.End.Y, density)
	zs := linspace(l.Start.Z, l.End.Z, density)
	var out []Point
	for i := 0; i < density; i++ {
		p := Point{X: xs[i], Y: ys[i], Z: zs[i], Name: l.Name}
		if bound.Contains(p) {
			out = append(out, p)
		}
	}
	if Debug {
		if len(out) > 0 {
			samplesHit.Add(1)
		} else {
			samplesMissed.Add(1)
		}
	}
	return out, nil
}
