package raycloud

import "context"

// RayConfig is the read-only per-call configuration of the ray stage.
type RayConfig struct {
	PixelWidth   int
	PixelHeight  int
	CameraRadius Real
	Offset       Real // reach past the subject
}

// Length is the ray length: every ray reaches Offset past the origin's distance.
func (c RayConfig) Length() Real { return c.CameraRadius + c.Offset }

// PictureToRays casts the ray bundle of one camera.
func PictureToRays(sq Square, cfg RayConfig) ([]Line, error) {
	return sq.Rays(cfg.PixelWidth, cfg.PixelHeight, cfg.Length())
}

// RaysFromPictures casts every picture's bundle in parallel and flattens them
// in picture order.
func RaysFromPictures(ctx context.Context, pictures []Square, cfg RayConfig, workers int) ([]Line, error) {
	return parallelMap(ctx, "rays", workers, pictures, func(sq Square) ([]Line, error) {
		return PictureToRays(sq, cfg)
	})
}
