package raycloud

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("subspaceDivisions: 3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SubjectRadius != SubjectRadius || cfg.CameraRadius != CameraRadius || cfg.PointsDensity != PointsDensity {
		t.Fatalf("defaults mismatch: %+v", cfg)
	}
	if cfg.SubspaceDivisions != 3 || cfg.SubspaceLength != cfg.SubjectRadius {
		t.Fatalf("subspace mismatch: %+v", cfg)
	}
	if len(cfg.Inclinations) != len(Inclinations) || cfg.Index != IndexKDTree || cfg.Workers != runtime.NumCPU() {
		t.Fatalf("defaults mismatch: %+v", cfg)
	}
	if cfg.Lens() != DefaultLens {
		t.Fatalf("lens mismatch: %+v", cfg.Lens())
	}
	if rc := cfg.RayConfig(); rc.Length() != CameraRadius+RayOffset {
		t.Fatalf("ray length mismatch: %+v", rc)
	}
}

func TestParseConfigJSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"subjectRadius": 2, "cameras": [[3, 0, 0], [0, -3, 0]], "index": "rtree"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SubjectRadius != 2 || cfg.Index != IndexRTree || len(cfg.Inclinations) != 0 {
		t.Fatalf("config mismatch: %+v", cfg)
	}
	cams, err := cfg.CameraPoints()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cams) != 2 || cams[1] != (Point{Y: -3, Name: "camera_1"}) {
		t.Fatalf("cameras mismatch: %+v", cams)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"index":   "index: octree\n",
		"focal":   "cameraRadius: 0.01\n",
		"arity":   "cameras: [[1, 2]]\n",
		"orbit":   "orbit: {density: -2}\n",
		"garbage": "subjectRadius: [1\n",
	} {
		if _, err := ParseConfig([]byte(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: want ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestOrbitKeepsPolarCameras(t *testing.T) {
	cfg, err := ParseConfig([]byte("orbit: {density: 8, inclRotations: 1, azimRotations: 1}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cams, err := cfg.CameraPoints()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// samples 0 and 4 sit on the poles
	if len(cams) != 8 || !almostEq(cams[0].Z, 3) || !almostEq(cams[4].Z, -3) {
		t.Fatalf("cameras mismatch: %+v", cams)
	}
	if _, err := NewPictures(cams, cfg.Lens()); err != nil {
		t.Fatalf("every orbit camera must be usable: %v", err)
	}
}

func TestParseConfigKeepsExplicitValues(t *testing.T) {
	cfg, err := ParseConfig([]byte("rayOffset: 0\npointsDensity: 0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RayOffset != 0 || cfg.PointsDensity != 0 {
		t.Fatalf("explicit zeros must be kept: offset=%v density=%v", cfg.RayOffset, cfg.PointsDensity)
	}
	if cfg.RayConfig().Length() != cfg.CameraRadius {
		t.Fatalf("ray length mismatch: %v", cfg.RayConfig().Length())
	}
}

func TestParseConfigRejectsOutOfRange(t *testing.T) {
	for _, doc := range []string{
		"subjectRadius: -1\n",
		"subjectRadius: 0\n",
		"cameraRadius: -3\n",
		"rayOffset: -0.5\n",
		"pixelWidth: 0\n",
		"pointsDensity: -1\n",
		"subspaceDivisions: 0\n",
		"subspaceLength: -2\n",
		"workers: -1\n",
		"unit: 0\n",
	} {
		if _, err := ParseConfig([]byte(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%q: want ErrInvalidConfig, got %v", doc, err)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("pixelWidth: 2\npixelHeight: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PixelWidth != 2 || cfg.PixelHeight != 2 {
		t.Fatalf("pixels mismatch: %+v", cfg)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file must fail")
	}
}
