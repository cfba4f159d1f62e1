package raycloud

import (
	"log/slog"
	"sync/atomic"
)

type Category uint8

const (
	Hit    Category = iota // ray kept at least one sample
	Miss                   // ray crossed the bound's box but kept nothing
	Culled                 // ray never reached the bound's box
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Culled:
		return "culled"
	}
	return "unknown"
}

// Per-ray sampling outcomes, only counted when Debug is set.
var (
	samplesHit    atomic.Int64
	samplesMissed atomic.Int64
	samplesCulled atomic.Int64
)

// SampleStats returns the per-category ray counts collected so far.
func SampleStats() map[Category]int64 {
	return map[Category]int64{
		Hit:    samplesHit.Load(),
		Miss:   samplesMissed.Load(),
		Culled: samplesCulled.Load(),
	}
}

func resetSampleStats() {
	samplesHit.Store(0)
	samplesMissed.Store(0)
	samplesCulled.Store(0)
}

func raysStats() {
	for _, c := range []Category{Hit, Miss, Culled} {
		slog.Debug("raycloud: ray sampling", "category", c.String(), "rays", SampleStats()[c])
	}
}
