package raycloud

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// SpatialIndex answers bounded-radius queries over a point cloud. Results are
// cloud indices in ascending order. An index is immutable once built and safe
// for concurrent queries.
type SpatialIndex interface {
	Len() int
	WithinRadius(center Point, radius Real) []int
}

// NewIndex builds the index of the given kind over cloud.
func NewIndex(kind string, cloud []Point) (SpatialIndex, error) {
	switch kind {
	case "", IndexKDTree:
		return NewKDTreeIndex(cloud), nil
	case IndexRTree:
		return NewRTreeIndex(cloud), nil
	default:
		return nil, fmt.Errorf("%w: unknown index %q", ErrInvalidConfig, kind)
	}
}

// cloudPoint is a kd-tree entry remembering its position in the cloud.
type cloudPoint struct {
	v   r3.Vec
	idx int
}

func coord(v r3.Vec, d kdtree.Dim) Real {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (p cloudPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(cloudPoint)
	return coord(p.v, d) - coord(q.v, d)
}

func (p cloudPoint) Dims() int { return 3 }

// Distance is squared Euclidean, as kdtree keepers expect.
func (p cloudPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(cloudPoint)
	return r3.Norm2(r3.Sub(p.v, q.v))
}

type cloudPoints []cloudPoint

func (p cloudPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p cloudPoints) Len() int                              { return len(p) }
func (p cloudPoints) Pivot(d kdtree.Dim) int                { return cloudPlane{points: p, dim: d}.Pivot() }
func (p cloudPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// cloudPlane sorts cloudPoints along one dimension for median selection.
type cloudPlane struct {
	points cloudPoints
	dim    kdtree.Dim
}

func (p cloudPlane) Len() int { return len(p.points) }
func (p cloudPlane) Less(i, j int) bool {
	return coord(p.points[i].v, p.dim) < coord(p.points[j].v, p.dim)
}
func (p cloudPlane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
func (p cloudPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p cloudPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

// KDTreeIndex is the default index, a gonum kd-tree.
type KDTreeIndex struct {
	tree *kdtree.Tree
	n    int
}

// NewKDTreeIndex builds a kd-tree over a copy of cloud's coordinates.
func NewKDTreeIndex(cloud []Point) *KDTreeIndex {
	pts := make(cloudPoints, len(cloud))
	for i, p := range cloud {
		pts[i] = cloudPoint{v: p.Vec(), idx: i}
	}
	idx := &KDTreeIndex{n: len(cloud)}
	if len(pts) > 0 {
		idx.tree = kdtree.New(pts, false)
	}
	return idx
}

func (k *KDTreeIndex) Len() int { return k.n }

// WithinRadius returns the indices of points at distance <= radius of center.
func (k *KDTreeIndex) WithinRadius(center Point, radius Real) []int {
	if k.tree == nil || radius < 0 {
		return nil
	}
	keep := kdtree.NewDistKeeper(radius * radius)
	k.tree.NearestSet(keep, cloudPoint{v: center.Vec(), idx: -1})
	out := make([]int, 0, keep.Len())
	for _, c := range keep.Heap {
		// the keeper seeds its heap with a nil sentinel
		if c.Comparable == nil {
			continue
		}
		out = append(out, c.Comparable.(cloudPoint).idx)
	}
	sort.Ints(out)
	return out
}

// rtreePoint is an r-tree entry: a degenerate box around one cloud point.
type rtreePoint struct {
	v   r3.Vec
	idx int
}

func (p *rtreePoint) Bounds() rtreego.Rect {
	return rtreego.Point{p.v.X, p.v.Y, p.v.Z}.ToRect(rtreeTolerance)
}

// RTreeIndex answers the same queries from an rtreego tree: a box search
// refined by the exact distance test.
type RTreeIndex struct {
	tree *rtreego.Rtree
	n    int
}

// NewRTreeIndex bulk-loads an r-tree over cloud.
func NewRTreeIndex(cloud []Point) *RTreeIndex {
	objs := make([]rtreego.Spatial, len(cloud))
	for i, p := range cloud {
		objs[i] = &rtreePoint{v: p.Vec(), idx: i}
	}
	return &RTreeIndex{
		tree: rtreego.NewTree(3, rtreeMinChildren, rtreeMaxChildren, objs...),
		n:    len(cloud),
	}
}

func (r *RTreeIndex) Len() int { return r.n }

// WithinRadius returns the indices of points at distance <= radius of center.
func (r *RTreeIndex) WithinRadius(center Point, radius Real) []int {
	if r.n == 0 || radius < 0 {
		return nil
	}
	half := radius + rtreeTolerance
	box, err := rtreego.NewRect(
		rtreego.Point{center.X - half, center.Y - half, center.Z - half},
		[]float64{2 * half, 2 * half, 2 * half},
	)
	if err != nil {
		DebugLogOnce("rtree query box: %v", err)
		return nil
	}
	c := center.Vec()
	r2 := radius * radius
	var out []int
	for _, s := range r.tree.SearchIntersect(box) {
		p := s.(*rtreePoint)
		if r3.Norm2(r3.Sub(p.v, c)) <= r2 {
			out = append(out, p.idx)
		}
	}
	sort.Ints(out)
	return out
}
