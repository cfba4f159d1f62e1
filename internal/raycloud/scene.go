package raycloud

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Scene is one pipeline run: every intermediate product, kept for export and
// rendering.
type Scene struct {
	ID        string
	Cameras   []Point
	Pictures  []Square
	Rays      []Line
	Cloud     []Point
	Centers   []Center
	Partition *Partition
	Timings   map[string]time.Duration
}

// Build runs cameras -> pictures -> rays -> cloud -> partition. Stages are
// sequential; the ray and cloud stages fan out over cfg.Workers.
func Build(ctx context.Context, cfg *Config) (*Scene, error) {
	s := &Scene{ID: uuid.NewString(), Timings: make(map[string]time.Duration)}
	log := slog.With("scene", s.ID)
	stage := func(name string, fn func() error) error {
		dtStart := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		s.Timings[name] = time.Since(dtStart)
		log.Info("stage done", "stage", name, "took", s.Timings[name])
		return nil
	}

	err := stage("cameras", func() (err error) {
		s.Cameras, err = cfg.CameraPoints()
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage("pictures", func() (err error) {
		s.Pictures, err = NewPictures(s.Cameras, cfg.Lens())
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage("rays", func() (err error) {
		s.Rays, err = RaysFromPictures(ctx, s.Pictures, cfg.RayConfig(), cfg.Workers)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage("cloud", func() error {
		sc, err := cfg.SampleConfig()
		if err != nil {
			return err
		}
		s.Cloud, err = CloudFromRays(ctx, s.Rays, sc, cfg.Workers)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage("partition", func() error {
		centers, err := SubspaceCenters(cfg.SubspaceDivisions, cfg.SubspaceLength)
		if err != nil {
			return err
		}
		idx, err := NewIndex(cfg.Index, s.Cloud)
		if err != nil {
			return err
		}
		s.Centers = centers
		s.Partition, err = NewPartition(s.Cloud, centers, QueryRadius(cfg.SubjectRadius, cfg.SubspaceDivisions), idx)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info("scene built",
		"cameras", len(s.Cameras), "rays", len(s.Rays), "points", len(s.Cloud),
		"subspaces", len(s.Partition.Keys()), "covered", s.Partition.Covered())
	return s, nil
}

// Shapes lists what a figure of the scene shows: the origin, each camera with
// its picture, and the subspace assignment. Rays are left out; there are too
// many to draw usefully.
func (s *Scene) Shapes() []Shape {
	shapes := []Shape{PointShape{Origin}}
	for _, c := range s.Cameras {
		shapes = append(shapes, PointShape{c})
	}
	for _, p := range s.Pictures {
		shapes = append(shapes, SquareShape{p})
	}
	if s.Partition != nil {
		shapes = append(shapes, SubspaceShape{s.Partition})
	}
	return shapes
}
