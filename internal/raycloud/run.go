package raycloud

import (
	"context"
	"log/slog"
	"time"
)

// Run loads the config at cfgPath, builds the scene and writes the exports the
// config asks for.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	dtStart := time.Now()
	if Debug {
		resetSampleStats()
	}
	scene, err := Build(context.Background(), cfg)
	if err != nil {
		return err
	}
	if Debug {
		raysStats()
	}

	if cfg.AssignmentsOut != "" {
		if err := SaveAssignments(cfg.AssignmentsOut, scene.Partition.Snapshot()); err != nil {
			return err
		}
		slog.Info("assignments saved", "path", cfg.AssignmentsOut, "format", formatFor(cfg.AssignmentsOut))
	}
	if cfg.FigureOut != "" {
		fr := NewFigureRenderer(cfg.WindowSize)
		if err := Dispatch(fr, scene.Shapes()...); err != nil {
			return err
		}
		if err := fr.Figure().Save(cfg.FigureOut); err != nil {
			return err
		}
		slog.Info("figure saved", "path", cfg.FigureOut, "traces", len(fr.Figure().Data))
	}
	slog.Info("done", "scene", scene.ID, "took", time.Since(dtStart))
	return nil
}
