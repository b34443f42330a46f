package belief

import (
	"math"
	"time"

	"github.com/FrancescoBalzan/pymdp/internal/model"
)

// #region belief-state
// BeliefState is the agent's posterior: one categorical distribution per
// hidden state factor. It is replaced wholesale once per timestep; nothing
// outside the owning agent mutates it.
type BeliefState [][]float64

// FromPriors returns the time-0 belief: a copy of each factor's prior D.
func FromPriors(m *model.GenerativeModel) BeliefState {
	bs := make(BeliefState, m.NumFactors())
	for f := range bs {
		bs[f] = m.Prior(f)
	}
	return bs
}

// Clone returns a deep copy.
func (b BeliefState) Clone() BeliefState {
	out := make(BeliefState, len(b))
	for f, dist := range b {
		out[f] = append([]float64(nil), dist...)
	}
	return out
}

// Normalized reports whether every factor distribution sums to 1 within tol
// with no negative entries.
func (b BeliefState) Normalized(tol float64) bool {
	for _, dist := range b {
		var sum float64
		for _, v := range dist {
			if v < 0 {
				return false
			}
			sum += v
		}
		if math.Abs(sum-1) > tol {
			return false
		}
	}
	return true
}
// #endregion belief-state

// #region snapshot
// Snapshot is a versioned, persistable belief record with lineage back to
// the previous timestep's snapshot.
type Snapshot struct {
	VersionID   string
	ParentID    string
	EpisodeID   string
	Step        int
	Beliefs     BeliefState
	CreatedAt   time.Time
	MetricsJSON string
}
// #endregion snapshot

// #region decision-entry
// DecisionEntry records one completed decision cycle: what was observed,
// what the policy posterior looked like, and which action was emitted.
type DecisionEntry struct {
	VersionID       string
	EpisodeID       string
	Step            int
	ObservationJSON string
	ActionJSON      string
	EFEJSON         string
	PosteriorJSON   string
	Reason          string
	CreatedAt       time.Time
}
// #endregion decision-entry
