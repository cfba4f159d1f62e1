package raycloud

import (
	"fmt"
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Center is a subspace center. Its Key is the stable external identity used in
// assignment exports.
type Center [3]Real

// Key renders the center as "[x, y, z]" with the shortest exact float form.
func (c Center) Key() string {
	return "[" + formatReal(c[0]) + ", " + formatReal(c[1]) + ", " + formatReal(c[2]) + "]"
}

func (c Center) Point() Point { return Point{X: c[0], Y: c[1], Z: c[2], Name: c.Key()} }

// SubspaceCenters lays out the subspace grid. One division is the origin
// alone; otherwise it is the cartesian product of divisions evenly spaced
// values on [-length/2, length/2] per axis, x-major.
func SubspaceCenters(divisions int, length Real) ([]Center, error) {
	if divisions < 1 {
		return nil, fmt.Errorf("%w: subspace divisions must be >= 1, got %d", ErrInvalidConfig, divisions)
	}
	if divisions == 1 {
		return []Center{{0, 0, 0}}, nil
	}
	if !(length > 0) || !isFinite(length) {
		return nil, fmt.Errorf("%w: subspace length must be > 0, got %g", ErrInvalidConfig, length)
	}
	axis := linspace(-length/2, length/2, divisions)
	out := make([]Center, 0, divisions*divisions*divisions)
	for _, x := range axis {
		for _, y := range axis {
			for _, z := range axis {
				out = append(out, Center{x, y, z})
			}
		}
	}
	return out, nil
}

// QueryRadius is the neighborhood radius of every subspace center.
func QueryRadius(subjectRadius Real, divisions int) Real {
	return subjectRadius / Real(divisions) * math.Sqrt2
}

// Partition maps every subspace center to the set of cloud points within the
// query radius of it. A point may belong to several subspaces. The partition
// owns its sets; callers get copies.
type Partition struct {
	centers []Center
	keys    []string // distinct, in center order
	cloud   []Point
	radius  Real
	sets    map[string]mapset.Set[int]
}

// NewPartition queries index around every center. index must have been built
// over cloud.
func NewPartition(cloud []Point, centers []Center, radius Real, index SpatialIndex) (*Partition, error) {
	if index.Len() != len(cloud) {
		return nil, fmt.Errorf("partition: index holds %d points, cloud has %d", index.Len(), len(cloud))
	}
	if radius < 0 || !isFinite(radius) {
		return nil, fmt.Errorf("%w: query radius %g", ErrInvalidConfig, radius)
	}
	p := &Partition{
		centers: append([]Center(nil), centers...),
		cloud:   cloud,
		radius:  radius,
		sets:    make(map[string]mapset.Set[int], len(centers)),
	}
	for _, c := range p.centers {
		key := c.Key()
		set, ok := p.sets[key]
		if !ok {
			set = mapset.NewThreadUnsafeSet[int]()
			p.sets[key] = set
			p.keys = append(p.keys, key)
		}
		for _, i := range index.WithinRadius(c.Point(), radius) {
			set.Add(i)
		}
	}
	DebugLog("Partition: %d centers, %d points, radius %g", len(p.keys), len(cloud), radius)
	return p, nil
}

func (p *Partition) Centers() []Center { return append([]Center(nil), p.centers...) }
func (p *Partition) Keys() []string    { return append([]string(nil), p.keys...) }
func (p *Partition) Radius() Real      { return p.radius }
func (p *Partition) CloudLen() int     { return len(p.cloud) }

// Len returns the number of points assigned to key, 0 for unknown keys.
func (p *Partition) Len(key string) int {
	if s, ok := p.sets[key]; ok {
		return s.Cardinality()
	}
	return 0
}

// Contains reports whether cloud point i is assigned to key.
func (p *Partition) Contains(key string, i int) bool {
	s, ok := p.sets[key]
	return ok && s.Contains(i)
}

// Indices returns the cloud indices assigned to key in ascending order.
func (p *Partition) Indices(key string) []int {
	s, ok := p.sets[key]
	if !ok {
		return nil
	}
	out := s.ToSlice()
	sort.Ints(out)
	return out
}

// Points returns the points assigned to key in cloud order.
func (p *Partition) Points(key string) []Point {
	idx := p.Indices(key)
	out := make([]Point, len(idx))
	for j, i := range idx {
		out[j] = p.cloud[i]
	}
	return out
}

// Covered returns how many distinct cloud points belong to at least one subspace.
func (p *Partition) Covered() int {
	all := mapset.NewThreadUnsafeSet[int]()
	for _, s := range p.sets {
		s.Each(func(i int) bool {
			all.Add(i)
			return false
		})
	}
	return all.Cardinality()
}

// Snapshot exports the assignment as center key -> coordinate triples.
func (p *Partition) Snapshot() Assignments {
	out := make(Assignments, len(p.keys))
	for _, key := range p.keys {
		pts := p.Points(key)
		coords := make([][3]Real, len(pts))
		for i, pt := range pts {
			coords[i] = pt.Array()
		}
		out[key] = coords
	}
	return out
}
