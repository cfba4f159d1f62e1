package raycloud

// Defaults mirror the reference experiment: a unit subject seen from a ring of
// cameras three units away through a 50mm lens on a full-frame sensor.
const (
	SubjectRadius         = 1.0
	CameraRadius          = 3.0
	CamerasPerInclination = 1
	FocalLength           = 50.0 // mm
	SensorWidth           = 36.0 // mm
	SensorHeight          = 24.0 // mm
	Unit                  = 1000.0
	PixelWidth            = 6
	PixelHeight           = 4
	RayOffset             = 0.5
	PointsDensity         = 20
	SubspaceDivisions     = 2
	IndexKDTree           = "kdtree"
	IndexRTree            = "rtree"
	WindowSize            = 5.0 // figure axis half-extent
	// samples are kept while strictly inside SubjectSlack * subject radius
	SubjectSlack = 1.2
	// polar caps: inclinations closer than this to a pole collapse to a single camera
	PoleCapDeg = 5.0
	// hot-loop constants
	epsParallel      = 1e-12
	rtreeTolerance   = 1e-9
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// Inclinations is the default inclination ring set (degrees from +Z).
var Inclinations = []Real{20, 60, 80}
