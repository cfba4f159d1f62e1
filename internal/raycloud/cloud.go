package raycloud

import "context"

// SampleConfig is the read-only per-call configuration of the sampling stage.
type SampleConfig struct {
	Density       int // samples per ray
	SubjectRadius Real
	bound         *SubjectBound
}

// NewSampleConfig prebuilds the subject bound shared by all workers.
func NewSampleConfig(density int, subjectRadius Real) (SampleConfig, error) {
	bound, err := NewSubjectBound(subjectRadius)
	if err != nil {
		return SampleConfig{}, err
	}
	return SampleConfig{Density: density, SubjectRadius: subjectRadius, bound: bound}, nil
}

// RayToPoints samples one ray and keeps the points inside the subject bound.
// A ray that never enters the bound yields no points.
func RayToPoints(ray Line, cfg SampleConfig) ([]Point, error) {
	if cfg.bound == nil {
		return ray.Mesh(cfg.Density, cfg.SubjectRadius)
	}
	return ray.MeshWithin(cfg.Density, cfg.bound)
}

// CloudFromRays samples every ray in parallel and flattens the samples in ray
// order into the point cloud.
func CloudFromRays(ctx context.Context, rays []Line, cfg SampleConfig, workers int) ([]Point, error) {
	if cfg.bound == nil {
		c, err := NewSampleConfig(cfg.Density, cfg.SubjectRadius)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	return parallelMap(ctx, "cloud", workers, rays, func(ray Line) ([]Point, error) {
		return RayToPoints(ray, cfg)
	})
}
