package raycloud

import "errors"

var (
	ErrDegenerateVector = errors.New("vector must have non-zero length")
	ErrDegeneratePlane  = errors.New("invalid plane: coefficients a, b and c cannot all be zero")
	ErrArity            = errors.New("coordinates must have exactly 3 components")
	ErrParallel         = errors.New("no single intersection: operands are parallel")
	ErrCameraAtOrigin   = errors.New("camera must not be placed at the origin")
	ErrInvalidDensity   = errors.New("points density must be >= 0")
	ErrInvalidConfig    = errors.New("invalid config")
)
