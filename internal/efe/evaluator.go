// Package efe scores candidate policies by expected free energy: an
// additive, per-step, per-modality combination of pragmatic value (expected
// preference satisfaction) and epistemic value (expected information gain).
package efe

import (
	"sync"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
	"github.com/FrancescoBalzan/pymdp/internal/policy"
)

// #region evaluator
// Evaluator scores policies against a frozen belief snapshot. It is a pure
// function of the immutable model and its inputs, so independent policies
// may be evaluated concurrently without changing results.
type Evaluator struct {
	model       *model.GenerativeModel
	config      Config
	factorSizes []int
	prefs       [][]float64

	// Entropy of A[m][:, s] per modality and joint state, flattened in
	// lexicographic joint order. Depends only on the model; computed once.
	condEntropy [][]float64
}

// NewEvaluator precomputes the model-dependent terms and returns an
// evaluator.
func NewEvaluator(m *model.GenerativeModel, config Config) *Evaluator {
	if config.LogFloor <= 0 {
		config.LogFloor = numeric.DefaultLogFloor
	}

	e := &Evaluator{
		model:  m,
		config: config,
	}
	e.factorSizes = make([]int, m.NumFactors())
	for f := range e.factorSizes {
		e.factorSizes[f] = m.FactorSize(f)
	}
	e.prefs = make([][]float64, m.NumModalities())
	for mod := range e.prefs {
		e.prefs[mod] = m.Preference(mod)
	}

	jointSize := 1
	for _, s := range e.factorSizes {
		jointSize *= s
	}
	e.condEntropy = make([][]float64, m.NumModalities())
	for mod := range e.condEntropy {
		col := make([]float64, jointSize)
		idx := make([]int, len(e.factorSizes))
		pos := 0
		for {
			col[pos] = numeric.Entropy(m.Likelihood(mod, idx))
			pos++
			if !numeric.NextIndex(idx, e.factorSizes) {
				break
			}
		}
		e.condEntropy[mod] = col
	}
	return e
}
// #endregion evaluator

// #region evaluate
// Evaluate scores every policy against the given belief snapshot. Results
// are in policy enumeration order and identical whether evaluation runs
// sequentially or fanned out across workers.
func (e *Evaluator) Evaluate(bs belief.BeliefState, policies []policy.Policy) Result {
	res := Result{
		EFE:    make([]float64, len(policies)),
		Scores: make([]PolicyScore, len(policies)),
	}

	if e.config.Workers <= 1 || len(policies) < 2 {
		for i, p := range policies {
			score, clamps := e.evaluateOne(bs, p)
			res.Scores[i] = score
			res.EFE[i] = score.Total
			res.FloorClamps += clamps
		}
		return res
	}

	workers := e.config.Workers
	if workers > len(policies) {
		workers = len(policies)
	}
	clampCounts := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(policies); i += workers {
				score, clamps := e.evaluateOne(bs, policies[i])
				res.Scores[i] = score
				res.EFE[i] = score.Total
				clampCounts[w] += clamps
			}
		}(w)
	}
	wg.Wait()
	for _, c := range clampCounts {
		res.FloorClamps += c
	}
	return res
}
// #endregion evaluate

// #region rollout
// evaluateOne rolls one policy forward over its horizon, carrying the
// mean-field factorization through prediction, and accumulates the per-step
// pragmatic and epistemic terms.
func (e *Evaluator) evaluateOne(bs belief.BeliefState, p policy.Policy) (PolicyScore, int) {
	m := e.model
	score := PolicyScore{Steps: make([]StepScore, p.Horizon())}
	clamps := 0

	current := bs.Clone()
	for t, actions := range p.Steps {
		// Predictive state belief under this step's action, per factor.
		next := make(belief.BeliefState, len(current))
		for f := range current {
			next[f] = m.Propagate(f, current[f], actions[f])
		}
		current = next

		var step StepScore
		for mod := 0; mod < m.NumModalities(); mod++ {
			predObs, expEnt := e.predictObservation(mod, current)

			// Pragmatic value: negated expected log-preference.
			var pragmatic float64
			for o, po := range predObs {
				pragmatic -= po * e.prefs[mod][o]
			}

			// Epistemic value: negated mutual information between predicted
			// states and the predicted observation, H(o) - E_s[H(o|s)].
			// Equal to the expected KL between the posterior given each
			// outcome and the predictive belief, averaged over outcomes.
			obsEntropy, c := entropyCounting(predObs, e.config.LogFloor)
			clamps += c
			infoGain := obsEntropy - expEnt
			if infoGain < 0 {
				// Mutual information is nonnegative; tiny negatives are
				// floating-point residue from the two entropy sums.
				infoGain = 0
			}

			step.Pragmatic += pragmatic
			step.Epistemic += -infoGain
		}

		score.Steps[t] = step
		score.Pragmatic += step.Pragmatic
		score.Epistemic += step.Epistemic
	}

	score.Total = score.Pragmatic + score.Epistemic
	return score, clamps
}

// predictObservation contracts modality mod's likelihood tensor against the
// joint of the predicted per-factor beliefs. It returns the predicted
// observation distribution and the expected conditional entropy
// E_s[H(obs | s)] under the same joint.
func (e *Evaluator) predictObservation(mod int, bs belief.BeliefState) ([]float64, float64) {
	m := e.model
	predObs := make([]float64, m.ModalitySize(mod))
	var expEnt float64

	idx := make([]int, len(e.factorSizes))
	pos := 0
	for {
		w := numeric.JointProb(bs, idx)
		if w != 0 {
			col := m.Likelihood(mod, idx)
			for o, v := range col {
				predObs[o] += w * v
			}
			expEnt += w * e.condEntropy[mod][pos]
		}
		pos++
		if !numeric.NextIndex(idx, e.factorSizes) {
			break
		}
	}
	return predObs, expEnt
}

// entropyCounting is Entropy with floor-clamp accounting for diagnostics.
func entropyCounting(p []float64, floor float64) (float64, int) {
	var h float64
	clamps := 0
	for _, v := range p {
		if v <= 0 {
			continue
		}
		lv, clamped := numeric.LogFloor(v, floor)
		if clamped {
			clamps++
		}
		h -= v * lv
	}
	return h, clamps
}
// #endregion rollout
