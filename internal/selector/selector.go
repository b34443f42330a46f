// Package selector converts policy scores into a concrete action: softmax
// policy posterior under a precision parameter, marginalized to first-step
// action posteriors per control factor, then sampled or taken greedily.
package selector

import (
	"fmt"
	"math/rand/v2"

	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
	"github.com/FrancescoBalzan/pymdp/internal/policy"
)

// #region config
// Config holds selection parameters. Precision is the inverse temperature
// over negated expected free energies: near zero the choice is uniform,
// large values approach the argmin policy. Deterministic swaps sampling for
// argmax over each factor's action posterior.
type Config struct {
	Precision     float64
	Deterministic bool
}

// DefaultConfig returns a sharp but stochastic selection policy.
func DefaultConfig() Config {
	return Config{
		Precision:     16.0,
		Deterministic: false,
	}
}
// #endregion config

// #region selection
// Selection is the outcome of one policy-selection pass. Only the immediate
// action is chosen; later policy steps are replanned next cycle.
type Selection struct {
	PolicyPosterior  []float64
	ActionPosteriors [][]float64 // per factor, over that factor's actions
	Action           []int       // one index per factor, 0 for fixed factors
}
// #endregion selection

// #region posterior
// Posterior returns the policy posterior: softmax of negated,
// precision-scaled expected free energies.
func Posterior(efe []float64, precision float64) []float64 {
	scaled := make([]float64, len(efe))
	for i, g := range efe {
		scaled[i] = -precision * g
	}
	return numeric.Softmax(scaled)
}
// #endregion posterior

// #region select
// Select computes the policy posterior from the EFE vector and draws the
// next action using the caller's random source. Policies and efe must be in
// matching enumeration order.
func Select(r *rand.Rand, m *model.GenerativeModel, policies []policy.Policy, efe []float64, cfg Config) (Selection, error) {
	if len(policies) == 0 {
		return Selection{}, fmt.Errorf("no policies to select from")
	}
	if len(policies) != len(efe) {
		return Selection{}, fmt.Errorf("policy/score length mismatch: %d vs %d", len(policies), len(efe))
	}
	if cfg.Precision <= 0 {
		return Selection{}, fmt.Errorf("precision must be positive, got %f", cfg.Precision)
	}

	posterior := Posterior(efe, cfg.Precision)

	sel := Selection{
		PolicyPosterior:  posterior,
		ActionPosteriors: make([][]float64, m.NumFactors()),
		Action:           make([]int, m.NumFactors()),
	}

	for f := 0; f < m.NumFactors(); f++ {
		if !m.Controllable(f) {
			// Fixed factors always take the sole no-op action.
			sel.ActionPosteriors[f] = []float64{1}
			sel.Action[f] = 0
			continue
		}

		// Marginalize the policy posterior over the first-step action for
		// this factor.
		dist := make([]float64, m.NumActions(f))
		for i, p := range policies {
			dist[p.Steps[0][f]] += posterior[i]
		}
		numeric.NormalizeInPlace(dist)
		sel.ActionPosteriors[f] = dist

		if cfg.Deterministic {
			sel.Action[f] = numeric.ArgMax(dist)
		} else {
			sel.Action[f] = numeric.SampleCategorical(r, dist)
		}
	}
	return sel, nil
}
// #endregion select
