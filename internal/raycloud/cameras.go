package raycloud

import "fmt"

// CamerasAtInclination places n cameras evenly in azimuth on the ring of the
// sphere of radius r at inclination incl (degrees). Rings within PoleCapDeg of
// a pole collapse to the single pole camera.
func CamerasAtInclination(n int, incl, r Real) ([]Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cameras per inclination must be >= 1, got %d", ErrInvalidConfig, n)
	}
	switch {
	case incl < PoleCapDeg:
		incl, n = 0, 1
	case incl > 180-PoleCapDeg:
		incl, n = 180, 1
	}
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		azim := Real(i) * 360 / Real(n)
		v, err := VectorFromPolar(r, incl, azim, Origin, false)
		if err != nil {
			return nil, err
		}
		c := v.End()
		c.Name = fmt.Sprintf("incl_%g azim_%g", incl, azim)
		out = append(out, c)
	}
	return out, nil
}

// CamerasAtInclinations concatenates the rings for every inclination.
func CamerasAtInclinations(n int, inclinations []Real, r Real) ([]Point, error) {
	var out []Point
	for _, incl := range inclinations {
		ring, err := CamerasAtInclination(n, incl, r)
		if err != nil {
			return nil, err
		}
		out = append(out, ring...)
	}
	return out, nil
}

// OrbitalCameras walks a spiral over the sphere: sample k of density sits at
// inclination k*inclRotations*360/density and azimuth k*azimRotations*360/density.
func OrbitalCameras(density, inclRotations, azimRotations int, r Real) ([]Point, error) {
	if density < 1 {
		return nil, fmt.Errorf("%w: orbit density must be >= 1, got %d", ErrInvalidConfig, density)
	}
	out := make([]Point, 0, density)
	for k := 0; k < density; k++ {
		incl := Real(k*inclRotations*360) / Real(density)
		azim := Real(k*azimRotations*360) / Real(density)
		v, err := VectorFromPolar(r, incl, azim, Origin, false)
		if err != nil {
			return nil, err
		}
		c := v.End()
		c.Name = fmt.Sprintf("orbit_%d", k)
		out = append(out, c)
	}
	return out, nil
}
