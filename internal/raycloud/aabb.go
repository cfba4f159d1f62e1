package raycloud

import "math"

type slab struct {
	inv Real
	par bool // parallel flag (|D| < eps)
}

func newSlab(d Real) slab {
	if math.Abs(d) < epsParallel {
		return slab{par: true}
	}
	return slab{inv: 1 / d}
}

// clip narrows [tmin,tmax] to the parameter range where o+t*d is inside [lo,hi].
func (s slab) clip(o, lo, hi, tmin, tmax Real) (Real, Real, bool) {
	if s.par {
		if o < lo || o > hi {
			return 0, 0, false
		}
		return tmin, tmax, true
	}
	t1 := (lo - o) * s.inv
	t2 := (hi - o) * s.inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax, tmin <= tmax
}

// segmentAABB is the slab test restricted to the segment a->b (t in [0,1]).
func segmentAABB(a, b Point, minP, maxP Point) bool {
	tmin, tmax := 0.0, 1.0
	var ok bool

	// X
	if tmin, tmax, ok = newSlab(b.X-a.X).clip(a.X, minP.X, maxP.X, tmin, tmax); !ok {
		return false
	}
	// Y
	if tmin, tmax, ok = newSlab(b.Y-a.Y).clip(a.Y, minP.Y, maxP.Y, tmin, tmax); !ok {
		return false
	}
	// Z
	if _, _, ok = newSlab(b.Z-a.Z).clip(a.Z, minP.Z, maxP.Z, tmin, tmax); !ok {
		return false
	}
	return true
}
