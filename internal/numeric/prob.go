package numeric

import (
	"math"
	"math/rand/v2"
)

// DefaultLogFloor is the smallest probability passed to a logarithm.
// The generative model legitimately contains exact zeros (outcomes that can
// never co-occur with certain states), so every log is floored to keep
// -inf/NaN out of the arithmetic.
const DefaultLogFloor = 1e-16

// #region normalize
// Normalize returns p scaled to sum to 1. A zero-sum input degrades to the
// uniform distribution rather than dividing by zero.
func Normalize(p []float64) []float64 {
	out := append([]float64(nil), p...)
	NormalizeInPlace(out)
	return out
}

// NormalizeInPlace scales p to sum to 1 in place.
func NormalizeInPlace(p []float64) {
	var sum float64
	for _, v := range p {
		sum += v
	}
	if sum <= 0 {
		u := 1.0 / float64(len(p))
		for i := range p {
			p[i] = u
		}
		return
	}
	for i := range p {
		p[i] /= sum
	}
}
// #endregion normalize

// #region log-floor
// LogFloor returns ln(max(x, floor)) and whether the floor was applied.
// A floor <= 0 falls back to DefaultLogFloor.
func LogFloor(x, floor float64) (float64, bool) {
	if floor <= 0 {
		floor = DefaultLogFloor
	}
	if x < floor {
		return math.Log(floor), true
	}
	return math.Log(x), false
}
// #endregion log-floor

// #region softmax
// Softmax returns the normalized exponential of x, shifted by the maximum
// for numerical stability.
func Softmax(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	max := x[0]
	for _, v := range x[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	for i, v := range x {
		out[i] = math.Exp(v - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
// #endregion softmax

// #region entropy-kl
// Entropy returns the Shannon entropy of p in nats, with floored logs.
func Entropy(p []float64) float64 {
	var h float64
	for _, v := range p {
		if v <= 0 {
			continue
		}
		lv, _ := LogFloor(v, DefaultLogFloor)
		h -= v * lv
	}
	return h
}

// KL returns the Kullback-Leibler divergence KL(p || q) in nats, with
// floored logs on both arguments.
func KL(p, q []float64) float64 {
	var d float64
	for i, pv := range p {
		if pv <= 0 {
			continue
		}
		lp, _ := LogFloor(pv, DefaultLogFloor)
		lq, _ := LogFloor(q[i], DefaultLogFloor)
		d += pv * (lp - lq)
	}
	return d
}
// #endregion entropy-kl

// #region sampling
// SampleCategorical draws an index from the categorical distribution p using
// the caller's random source. There is no package-level hidden RNG: callers
// own their source so that full runs replay bit-identically from a seed.
func SampleCategorical(r *rand.Rand, p []float64) int {
	u := r.Float64()
	var acc float64
	for i, v := range p {
		acc += v
		if u < acc {
			return i
		}
	}
	// Rounding can leave acc fractionally below 1; fall to the last index.
	return len(p) - 1
}

// ArgMax returns the index of the largest entry in p, lowest index on ties.
func ArgMax(p []float64) int {
	best := 0
	for i, v := range p {
		if v > p[best] {
			best = i
		}
	}
	return best
}
// #endregion sampling

// #region joint
// JointProb returns the mean-field joint probability of the state combination
// idx under per-factor distributions: the product of beliefs[f][idx[f]].
func JointProb(beliefs [][]float64, idx []int) float64 {
	p := 1.0
	for f, ix := range idx {
		p *= beliefs[f][ix]
	}
	return p
}

// MaxAbsDiff returns the largest absolute elementwise difference between a
// and b.
func MaxAbsDiff(a, b []float64) float64 {
	var max float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}
// #endregion joint
