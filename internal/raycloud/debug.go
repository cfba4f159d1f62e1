package raycloud

import (
	"fmt"
	"log/slog"
	"sync"
)

var debugOnce sync.Map

// DebugLog logs at debug level when Debug is set.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...))
}

// DebugLogOnce is DebugLog keyed by format: each format is logged at most once.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	if _, loaded := debugOnce.LoadOrStore(format, struct{}{}); loaded {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...))
}
