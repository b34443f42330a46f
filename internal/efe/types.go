package efe

import "github.com/FrancescoBalzan/pymdp/internal/numeric"

// #region config
// Config holds evaluation parameters.
type Config struct {
	LogFloor float64 // probability floor applied before every log
	Workers  int     // >0 fans policy evaluation out across goroutines
}

// DefaultConfig returns sequential evaluation with the standard floor.
func DefaultConfig() Config {
	return Config{
		LogFloor: numeric.DefaultLogFloor,
		Workers:  0,
	}
}
// #endregion config

// #region scores
// StepScore is the per-step decomposition of a policy's expected free
// energy. Pragmatic is the negated expected log-preference of predicted
// outcomes; Epistemic is the negated expected information gain about hidden
// states. Both are summed over modalities; lower is better.
type StepScore struct {
	Pragmatic float64
	Epistemic float64
}

// PolicyScore is the full score for one candidate policy.
type PolicyScore struct {
	Total     float64
	Pragmatic float64
	Epistemic float64
	Steps     []StepScore
}

// Result bundles the scores for an enumerated policy set, in enumeration
// order. FloorClamps counts probabilities clamped before a log.
type Result struct {
	EFE         []float64
	Scores      []PolicyScore
	FloorClamps int
}
// #endregion scores
