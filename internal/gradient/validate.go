package gradient

import (
	"math"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs a logger for gradient diagnostics.
// The default is a nop logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Validate reports whether every gradient entry is finite.
//
// A NaN or infinite entry yields false and a diagnostic naming the full
// offending vector. Validate never mutates its argument; what to do with
// a degenerate gradient (typically: reject the proposal) is the caller's
// policy.
func Validate(grad []float64) bool {
	for i, g := range grad {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			logger.Warn("non-finite gradient entry",
				zap.Int("index", i),
				zap.Float64("entry", g),
				zap.Float64s("gradient", grad))
			return false
		}
	}
	return true
}
