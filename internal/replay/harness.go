package replay

import (
	"fmt"
	"math"

	"github.com/FrancescoBalzan/pymdp/internal/agent"
	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/model"
)

// #region types

// DefaultBeliefTolerance is used when a step declares expected beliefs
// without a tolerance of its own.
const DefaultBeliefTolerance = 1e-6

// StepResult captures the outcome of replaying one observe/act cycle.
type StepResult struct {
	Step      int
	Action    []int
	Beliefs   belief.BeliefState
	EFE       []float64
	Posterior []float64

	// Mismatches lists every deviation from the step's expectations.
	// Empty for a step that matched (or declared no expectations).
	Mismatches []string
}

// Matched reports whether the step met all of its expectations.
func (r *StepResult) Matched() bool {
	return len(r.Mismatches) == 0
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps   int
	Matched      int
	Mismatched   int
	FinalBeliefs belief.BeliefState
}

// Passed reports whether every step met its expectations.
func (s *Summary) Passed() bool {
	return s.Mismatched == 0
}

// #endregion types

// #region replay

// Replay builds the fixture's model and agent in-memory and runs every
// step through the full perceive/plan/act cycle. Expectation failures
// are reported in the step results, never as errors; an error means the
// fixture itself could not be run.
func Replay(fx *Fixture) ([]StepResult, Summary, error) {
	spec, err := fx.Model.ToSpec()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("fixture model: %w", err)
	}
	m, err := model.New(spec)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("fixture model: %w", err)
	}
	ag, err := agent.New(fx.Agent.ToAgentConfig(m))
	if err != nil {
		return nil, Summary{}, fmt.Errorf("fixture agent: %w", err)
	}

	results := make([]StepResult, 0, len(fx.Steps))
	for i, step := range fx.Steps {
		beliefs, err := ag.InferStates(step.Observation)
		if err != nil {
			return results, summarize(results, ag.Beliefs()), fmt.Errorf("step %d: infer states: %w", i, err)
		}
		posterior, scores, err := ag.InferPolicies()
		if err != nil {
			return results, summarize(results, ag.Beliefs()), fmt.Errorf("step %d: infer policies: %w", i, err)
		}
		action, err := ag.SampleAction()
		if err != nil {
			return results, summarize(results, ag.Beliefs()), fmt.Errorf("step %d: sample action: %w", i, err)
		}

		r := StepResult{
			Step:      i,
			Action:    action,
			Beliefs:   beliefs,
			EFE:       scores,
			Posterior: posterior,
		}
		checkExpectations(&r, step)
		results = append(results, r)
	}

	return results, summarize(results, ag.Beliefs()), nil
}

func checkExpectations(r *StepResult, step FixtureStep) {
	if step.ExpectedAction != nil {
		if len(step.ExpectedAction) != len(r.Action) {
			r.Mismatches = append(r.Mismatches, fmt.Sprintf("action length: got %d, want %d", len(r.Action), len(step.ExpectedAction)))
		} else {
			for f, a := range step.ExpectedAction {
				if r.Action[f] != a {
					r.Mismatches = append(r.Mismatches, fmt.Sprintf("action factor %d: got %d, want %d", f, r.Action[f], a))
				}
			}
		}
	}
	if step.ExpectedBeliefs == nil {
		return
	}
	tol := step.BeliefTolerance
	if tol <= 0 {
		tol = DefaultBeliefTolerance
	}
	if len(step.ExpectedBeliefs) != len(r.Beliefs) {
		r.Mismatches = append(r.Mismatches, fmt.Sprintf("belief factors: got %d, want %d", len(r.Beliefs), len(step.ExpectedBeliefs)))
		return
	}
	for f, want := range step.ExpectedBeliefs {
		got := r.Beliefs[f]
		if len(want) != len(got) {
			r.Mismatches = append(r.Mismatches, fmt.Sprintf("belief factor %d length: got %d, want %d", f, len(got), len(want)))
			continue
		}
		for s, w := range want {
			if math.Abs(got[s]-w) > tol {
				r.Mismatches = append(r.Mismatches, fmt.Sprintf("belief factor %d state %d: got %.9f, want %.9f (tol %g)", f, s, got[s], w, tol))
			}
		}
	}
}

func summarize(results []StepResult, final belief.BeliefState) Summary {
	s := Summary{
		TotalSteps:   len(results),
		FinalBeliefs: final,
	}
	for i := range results {
		if results[i].Matched() {
			s.Matched++
		} else {
			s.Mismatched++
		}
	}
	return s
}

// #endregion replay
