// Package inference turns an observation into a posterior belief via
// mean-field variational fixed-point iteration, one timestep at a time.
// This is filtering, not smoothing: the one-step predictive prior is folded
// directly into a single-timestep fixed point and past beliefs are never
// revised.
package inference

import (
	"fmt"
	"time"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
)

// #region compute
// Compute derives the posterior belief from the previous belief, the action
// that led to the current timestep, and the new observation. A nil action
// marks t=0, where the predictive prior is the model's D. prev may be nil at
// t=0. Compute is a pure function: its inputs are never mutated.
func Compute(m *model.GenerativeModel, prev belief.BeliefState, action []int, obs []int, cfg Config) (Result, error) {
	start := time.Now()

	if err := checkInputs(m, prev, action, obs); err != nil {
		return Result{}, err
	}
	if cfg.MaxIterations < 1 {
		cfg.MaxIterations = 1
	}
	if cfg.LogFloor <= 0 {
		cfg.LogFloor = numeric.DefaultLogFloor
	}

	numFactors := m.NumFactors()
	factorSizes := make([]int, numFactors)
	for f := range factorSizes {
		factorSizes[f] = m.FactorSize(f)
	}

	res := Result{}

	// 1. One-step predictive belief per factor (D at t=0).
	predictive := make(belief.BeliefState, numFactors)
	for f := 0; f < numFactors; f++ {
		if action == nil {
			predictive[f] = m.Prior(f)
		} else {
			predictive[f] = m.Propagate(f, prev[f], action[f])
		}
	}
	res.Predictive = predictive

	// Floored log of the predictive prior, reused every sweep.
	logPredictive := make([][]float64, numFactors)
	for f, dist := range predictive {
		logPredictive[f] = make([]float64, len(dist))
		for i, v := range dist {
			lv, clamped := numeric.LogFloor(v, cfg.LogFloor)
			logPredictive[f][i] = lv
			if clamped {
				res.FloorClamps++
			}
		}
	}

	// Combined log-likelihood of the observed outcome over the joint state
	// space: sum over modalities of ln A[m][obs_m, states]. Constant across
	// sweeps, so computed once.
	jointLogLik, clamps := observationLogLikelihood(m, obs, factorSizes, cfg.LogFloor)
	res.FloorClamps += clamps

	// 2. Initialize each factor's posterior estimate to its predictive belief.
	posterior := make(belief.BeliefState, numFactors)
	for f, dist := range predictive {
		posterior[f] = numeric.Normalize(dist)
	}

	// 3-4. Fixed-point sweeps in ascending factor order until the posterior
	// stops moving or the budget runs out.
	accum := make([]float64, 0, maxInt(factorSizes))
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		res.Iterations = iter
		var maxDelta float64

		for f := 0; f < numFactors; f++ {
			accum = accum[:factorSizes[f]]
			for i := range accum {
				accum[i] = 0
			}

			// Contract the joint log-likelihood against the outer product of
			// the other factors' current posteriors, leaving a vector over
			// factor f's states.
			idx := make([]int, numFactors)
			pos := 0
			for {
				w := 1.0
				for j, ix := range idx {
					if j != f {
						w *= posterior[j][ix]
					}
				}
				if w != 0 {
					accum[idx[f]] += w * jointLogLik[pos]
				}
				pos++
				if !numeric.NextIndex(idx, factorSizes) {
					break
				}
			}

			for i := range accum {
				accum[i] += logPredictive[f][i]
			}
			updated := numeric.Softmax(accum)

			if d := numeric.MaxAbsDiff(updated, posterior[f]); d > maxDelta {
				maxDelta = d
			}
			posterior[f] = updated
		}

		if maxDelta <= cfg.Tolerance {
			res.Converged = true
			break
		}
	}

	res.Posterior = posterior
	res.ElapsedMs = time.Since(start).Milliseconds()
	return res, nil
}
// #endregion compute

// #region log-likelihood
// observationLogLikelihood flattens sum_m ln A[m][obs_m, states] over the
// joint state grid in lexicographic order, flooring every log.
func observationLogLikelihood(m *model.GenerativeModel, obs []int, factorSizes []int, floor float64) ([]float64, int) {
	jointSize := 1
	for _, s := range factorSizes {
		jointSize *= s
	}
	out := make([]float64, jointSize)
	clamps := 0

	idx := make([]int, len(factorSizes))
	pos := 0
	for {
		var sum float64
		for mod := 0; mod < m.NumModalities(); mod++ {
			lv, clamped := numeric.LogFloor(m.LikelihoodAt(mod, obs[mod], idx), floor)
			sum += lv
			if clamped {
				clamps++
			}
		}
		out[pos] = sum
		pos++
		if !numeric.NextIndex(idx, factorSizes) {
			break
		}
	}
	return out, clamps
}
// #endregion log-likelihood

// #region validation
func checkInputs(m *model.GenerativeModel, prev belief.BeliefState, action []int, obs []int) error {
	if len(obs) != m.NumModalities() {
		return fmt.Errorf("observation has %d entries, model has %d modalities", len(obs), m.NumModalities())
	}
	for mod, o := range obs {
		if o < 0 || o >= m.ModalitySize(mod) {
			return fmt.Errorf("observation %d out of range for modality %d (size %d)", o, mod, m.ModalitySize(mod))
		}
	}
	if action != nil {
		if len(action) != m.NumFactors() {
			return fmt.Errorf("action has %d entries, model has %d factors", len(action), m.NumFactors())
		}
		for f, a := range action {
			if a < 0 || a >= m.NumActions(f) {
				return fmt.Errorf("action %d out of range for factor %d (size %d)", a, f, m.NumActions(f))
			}
		}
		if len(prev) != m.NumFactors() {
			return fmt.Errorf("previous belief has %d factors, model has %d", len(prev), m.NumFactors())
		}
	}
	return nil
}

func maxInt(xs []int) int {
	max := 0
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	return max
}
// #endregion validation
