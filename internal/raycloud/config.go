package raycloud

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// OrbitCfg places cameras on a spiral orbit instead of inclination rings.
type OrbitCfg struct {
	Density       int `yaml:"density"`
	InclRotations int `yaml:"inclRotations"`
	AzimRotations int `yaml:"azimRotations"`
}

type Config struct {
	SubjectRadius         Real      `yaml:"subjectRadius"`
	CameraRadius          Real      `yaml:"cameraRadius"`
	CamerasPerInclination int       `yaml:"camerasPerInclination"`
	Inclinations          []Real    `yaml:"inclinations,omitempty"`
	Orbit                 *OrbitCfg `yaml:"orbit,omitempty"`
	Cameras               [][]Real  `yaml:"cameras,omitempty"` // explicit positions, override rings and orbit

	FocalLength  Real `yaml:"focalLength"`
	SensorWidth  Real `yaml:"sensorWidth"`
	SensorHeight Real `yaml:"sensorHeight"`
	Unit         Real `yaml:"unit"`

	PixelWidth        int  `yaml:"pixelWidth"`
	PixelHeight       int  `yaml:"pixelHeight"`
	RayOffset         Real `yaml:"rayOffset"`
	PointsDensity     int  `yaml:"pointsDensity"`
	SubspaceDivisions int  `yaml:"subspaceDivisions"`
	SubspaceLength    Real `yaml:"subspaceLength,omitempty"` // 0: subjectRadius

	Workers        int    `yaml:"workers,omitempty"` // 0: one per CPU
	Index          string `yaml:"index,omitempty"`   // kdtree or rtree
	AssignmentsOut string `yaml:"assignmentsOut,omitempty"`
	FigureOut      string `yaml:"figureOut,omitempty"`
	WindowSize     Real   `yaml:"windowSize,omitempty"`
}

// DefaultConfig returns the reference experiment configuration.
func DefaultConfig() *Config {
	cfg := newConfig()
	cfg.applyDefaults()
	return &cfg
}

// newConfig holds the scalar defaults. Documents are decoded on top of it, so
// only keys absent from the document keep them.
func newConfig() Config {
	return Config{
		SubjectRadius:         SubjectRadius,
		CameraRadius:          CameraRadius,
		CamerasPerInclination: CamerasPerInclination,
		FocalLength:           FocalLength,
		SensorWidth:           SensorWidth,
		SensorHeight:          SensorHeight,
		Unit:                  Unit,
		PixelWidth:            PixelWidth,
		PixelHeight:           PixelHeight,
		RayOffset:             RayOffset,
		PointsDensity:         PointsDensity,
		SubspaceDivisions:     SubspaceDivisions,
		WindowSize:            WindowSize,
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config from %s: R=%g, camR=%g, pixels=%dx%d, density=%d, divisions=%d, index=%s",
		path, cfg.SubjectRadius, cfg.CameraRadius, cfg.PixelWidth, cfg.PixelHeight, cfg.PointsDensity, cfg.SubspaceDivisions, cfg.Index)
	return cfg, nil
}

// ParseConfig decodes a YAML (or JSON) document, fills defaults and validates.
func ParseConfig(data []byte) (*Config, error) {
	cfg := newConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills the settings whose default depends on other settings.
func (c *Config) applyDefaults() {
	if len(c.Inclinations) == 0 && c.Orbit == nil && len(c.Cameras) == 0 {
		c.Inclinations = append([]Real(nil), Inclinations...)
	}
	if c.SubspaceLength == 0 {
		c.SubspaceLength = c.SubjectRadius
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Index == "" {
		c.Index = IndexKDTree
	}
}

// Validate checks every setting; nothing invalid is silently replaced.
func (c *Config) Validate() error {
	var errs []error
	for _, f := range []struct {
		name string
		v    Real
	}{
		{"subjectRadius", c.SubjectRadius},
		{"cameraRadius", c.CameraRadius},
		{"focalLength", c.FocalLength},
		{"sensorWidth", c.SensorWidth},
		{"sensorHeight", c.SensorHeight},
		{"unit", c.Unit},
		{"subspaceLength", c.SubspaceLength},
		{"windowSize", c.WindowSize},
	} {
		if !(f.v > 0) || !isFinite(f.v) {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %g", f.name, f.v))
		}
	}
	if !(c.RayOffset >= 0) || !isFinite(c.RayOffset) {
		errs = append(errs, fmt.Errorf("rayOffset must be >= 0, got %g", c.RayOffset))
	}
	for _, f := range []struct {
		name     string
		v, least int
	}{
		{"camerasPerInclination", c.CamerasPerInclination, 1},
		{"pixelWidth", c.PixelWidth, 1},
		{"pixelHeight", c.PixelHeight, 1},
		{"pointsDensity", c.PointsDensity, 0},
		{"subspaceDivisions", c.SubspaceDivisions, 1},
		{"workers", c.Workers, 1},
	} {
		if f.v < f.least {
			errs = append(errs, fmt.Errorf("%s must be >= %d, got %d", f.name, f.least, f.v))
		}
	}
	if c.Unit > 0 && c.FocalLength/c.Unit >= c.CameraRadius {
		errs = append(errs, fmt.Errorf("focal length %g (unit %g) does not fit inside camera radius %g", c.FocalLength, c.Unit, c.CameraRadius))
	}
	if c.Index != IndexKDTree && c.Index != IndexRTree {
		errs = append(errs, fmt.Errorf("unknown index %q", c.Index))
	}
	if c.Orbit != nil && c.Orbit.Density <= 0 {
		errs = append(errs, fmt.Errorf("orbit density must be > 0, got %d", c.Orbit.Density))
	}
	for i, cam := range c.Cameras {
		if len(cam) != 3 {
			errs = append(errs, fmt.Errorf("camera #%d: want 3 coordinates, got %d", i, len(cam)))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Build generates the orbit camera positions.
func (o OrbitCfg) Build(cameraRadius Real) ([]Point, error) {
	return OrbitalCameras(o.Density, o.InclRotations, o.AzimRotations, cameraRadius)
}

// CameraPoints resolves the configured camera set: explicit positions first,
// then an orbit, then inclination rings.
func (c *Config) CameraPoints() ([]Point, error) {
	switch {
	case len(c.Cameras) > 0:
		out := make([]Point, 0, len(c.Cameras))
		for i, abc := range c.Cameras {
			p, err := PointFromSlice(abc, fmt.Sprintf("camera_%d", i))
			if err != nil {
				return nil, fmt.Errorf("camera #%d: %w", i, err)
			}
			out = append(out, p)
		}
		return out, nil
	case c.Orbit != nil:
		return c.Orbit.Build(c.CameraRadius)
	default:
		return CamerasAtInclinations(c.CamerasPerInclination, c.Inclinations, c.CameraRadius)
	}
}

func (c *Config) Lens() Lens {
	return Lens{FocalLength: c.FocalLength, SensorWidth: c.SensorWidth, SensorHeight: c.SensorHeight, Unit: c.Unit}
}

func (c *Config) RayConfig() RayConfig {
	return RayConfig{PixelWidth: c.PixelWidth, PixelHeight: c.PixelHeight, CameraRadius: c.CameraRadius, Offset: c.RayOffset}
}

func (c *Config) SampleConfig() (SampleConfig, error) {
	return NewSampleConfig(c.PointsDensity, c.SubjectRadius)
}
