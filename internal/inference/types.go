package inference

import (
	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
)

// #region config
// Config holds the fixed-point iteration parameters for state inference.
type Config struct {
	MaxIterations int     // sweep budget; the last estimate is returned on exhaustion
	Tolerance     float64 // stop when max absolute posterior change falls below this
	LogFloor      float64 // probability floor applied before every log
}

// DefaultConfig returns the standard iteration budget and tolerances.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 10,
		Tolerance:     1e-6,
		LogFloor:      numeric.DefaultLogFloor,
	}
}
// #endregion config

// #region result
// Result bundles the new posterior with diagnostics from the fixed point.
// Non-convergence within the iteration budget is not an error: the estimate
// is approximate by design, and Converged simply reports which exit was
// taken. FloorClamps counts probabilities clamped away from zero before a
// log was evaluated.
type Result struct {
	Posterior   belief.BeliefState
	Predictive  belief.BeliefState
	Iterations  int
	Converged   bool
	FloorClamps int
	ElapsedMs   int64
}
// #endregion result
