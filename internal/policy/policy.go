// Package policy defines candidate action sequences and their enumeration.
package policy

import (
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
)

// #region policy
// Policy is one candidate action sequence over the planning horizon:
// Steps[t][f] is the action index for factor f at future step t. Fixed
// factors always carry the no-op action 0. Policies are enumerated fresh
// every decision cycle and never persisted.
type Policy struct {
	Steps [][]int
}

// Horizon returns the number of future steps the policy covers.
func (p Policy) Horizon() int {
	return len(p.Steps)
}

// Clone returns a deep copy.
func (p Policy) Clone() Policy {
	steps := make([][]int, len(p.Steps))
	for t, actions := range p.Steps {
		steps[t] = append([]int(nil), actions...)
	}
	return Policy{Steps: steps}
}
// #endregion policy

// #region enumerate
// Enumerate produces every action sequence of length horizon over the
// Cartesian product of per-factor action spaces, in lexicographic order
// (step-major, then factor-major, later factors fastest). The order is part
// of the contract: downstream scoring and tie-breaking depend on it being
// deterministic.
//
// There is no pruning. The caller keeps horizon and action-space sizes
// tractable; the result has (prod_f |actions_f|)^horizon entries.
func Enumerate(m *model.GenerativeModel, horizon int) []Policy {
	if horizon < 1 {
		return nil
	}
	numFactors := m.NumFactors()

	// The flattened index grid: horizon repetitions of the factor action sizes.
	sizes := make([]int, 0, horizon*numFactors)
	for t := 0; t < horizon; t++ {
		for f := 0; f < numFactors; f++ {
			sizes = append(sizes, m.NumActions(f))
		}
	}

	total := 1
	for _, s := range sizes {
		total *= s
	}

	policies := make([]Policy, 0, total)
	idx := make([]int, len(sizes))
	for {
		steps := make([][]int, horizon)
		for t := 0; t < horizon; t++ {
			steps[t] = append([]int(nil), idx[t*numFactors:(t+1)*numFactors]...)
		}
		policies = append(policies, Policy{Steps: steps})
		if !numeric.NextIndex(idx, sizes) {
			break
		}
	}
	return policies
}
// #endregion enumerate
