package inference

import (
	"math"
	"testing"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/worlds"
)

func TestIdentityWorldRecoversTrueState(t *testing.T) {
	m, err := worlds.IdentityWorld(4)
	if err != nil {
		t.Fatalf("IdentityWorld: %v", err)
	}

	// One observation pins the posterior to the observed state, and the
	// fixed point settles in a single sweep beyond the convergence check.
	res, err := Compute(m, nil, nil, []int{2}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Posterior[0][2] < 1-1e-9 {
		t.Fatalf("posterior on true state: got %v, want ~1", res.Posterior[0][2])
	}
	if !res.Converged {
		t.Error("expected convergence")
	}
	if res.Iterations > 2 {
		t.Errorf("expected convergence within 2 sweeps, took %d", res.Iterations)
	}
}

func TestCertaintyIsAFixedPoint(t *testing.T) {
	m, err := worlds.IdentityWorld(3)
	if err != nil {
		t.Fatalf("IdentityWorld: %v", err)
	}

	// Delta predictive belief plus a consistent observation: the posterior
	// must stay pinned regardless of the iteration budget.
	prev := belief.BeliefState{{0, 1, 0}}
	for _, iters := range []int{1, 10, 50} {
		cfg := DefaultConfig()
		cfg.MaxIterations = iters
		res, err := Compute(m, prev, []int{0}, []int{1}, cfg)
		if err != nil {
			t.Fatalf("Compute (iters=%d): %v", iters, err)
		}
		if res.Posterior[0][1] < 1-1e-9 {
			t.Fatalf("iters=%d: posterior drifted off the certain state: %v", iters, res.Posterior[0])
		}
	}
}

func TestBanditInitialObservationIsUninformative(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	obs := []int{worlds.NoEvidence, worlds.Neutral, worlds.Start}
	res, err := Compute(m, nil, nil, obs, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// No evidence about the reward context: the prior survives untouched.
	if math.Abs(res.Posterior[worlds.FactorContext][worlds.HighReward]-0.5) > 1e-9 {
		t.Errorf("context belief: got %v, want [0.5 0.5]", res.Posterior[worlds.FactorContext])
	}
	// The stage self-observation is deterministic: full certainty on START.
	if res.Posterior[worlds.FactorStage][worlds.Start] < 1-1e-9 {
		t.Errorf("stage belief: got %v, want ~[1 0 0]", res.Posterior[worlds.FactorStage])
	}
}

func TestBanditEvidenceBayesUpdate(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	// After sampling from a uniform context prior, a high-reward hint with
	// 0.8 accuracy must produce the closed-form Bayes posterior [0.8, 0.2].
	prev := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	action := []int{0, worlds.ActSample}
	obs := []int{worlds.HighRewardEvidence, worlds.Neutral, worlds.Sampling}

	res, err := Compute(m, prev, action, obs, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	ctx := res.Posterior[worlds.FactorContext]
	if math.Abs(ctx[worlds.HighReward]-0.8) > 1e-9 || math.Abs(ctx[worlds.LowReward]-0.2) > 1e-9 {
		t.Fatalf("context posterior: got %v, want [0.8 0.2]", ctx)
	}
	if res.Posterior[worlds.FactorStage][worlds.Sampling] < 1-1e-9 {
		t.Errorf("stage posterior: got %v, want ~one-hot SAMPLING", res.Posterior[worlds.FactorStage])
	}
}

func TestPosteriorAlwaysNormalized(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	bs := belief.FromPriors(m)
	steps := []struct {
		action []int
		obs    []int
	}{
		{nil, []int{worlds.NoEvidence, worlds.Neutral, worlds.Start}},
		{[]int{0, worlds.ActSample}, []int{worlds.LowRewardEvidence, worlds.Neutral, worlds.Sampling}},
		{[]int{0, worlds.ActSample}, []int{worlds.HighRewardEvidence, worlds.Neutral, worlds.Sampling}},
		{[]int{0, worlds.ActPlay}, []int{worlds.NoEvidence, worlds.Reward, worlds.Playing}},
	}
	for i, step := range steps {
		res, err := Compute(m, bs, step.action, step.obs, DefaultConfig())
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !res.Posterior.Normalized(1e-9) {
			t.Fatalf("step %d: posterior not normalized: %v", i, res.Posterior)
		}
		bs = res.Posterior
	}
}

func TestNonConvergenceReturnsLastEstimate(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	cfg.Tolerance = 0 // a zero tolerance can never be met in one sweep here

	prev := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	res, err := Compute(m, prev, []int{0, worlds.ActSample},
		[]int{worlds.HighRewardEvidence, worlds.Neutral, worlds.Sampling}, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Converged {
		t.Error("expected Converged=false with an exhausted budget")
	}
	if res.Iterations != 1 {
		t.Errorf("got %d iterations, want 1", res.Iterations)
	}
	if !res.Posterior.Normalized(1e-9) {
		t.Error("last estimate must still be a valid belief")
	}
}

func TestFloorClampsReported(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	// The bandit's A tensors contain structural zeros; observing anything
	// forces floored logs somewhere in the joint grid.
	res, err := Compute(m, nil, nil, []int{worlds.NoEvidence, worlds.Neutral, worlds.Start}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.FloorClamps == 0 {
		t.Error("expected nonzero floor clamp count for a model with exact zeros")
	}
}

func TestComputeRejectsBadInputs(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	prev := belief.FromPriors(m)

	if _, err := Compute(m, nil, nil, []int{0, 0}, DefaultConfig()); err == nil {
		t.Error("expected error for short observation vector")
	}
	if _, err := Compute(m, nil, nil, []int{9, 0, 0}, DefaultConfig()); err == nil {
		t.Error("expected error for out-of-range observation")
	}
	if _, err := Compute(m, prev, []int{0, 7}, []int{0, 0, 0}, DefaultConfig()); err == nil {
		t.Error("expected error for out-of-range action")
	}
	if _, err := Compute(m, prev, []int{0}, []int{0, 0, 0}, DefaultConfig()); err == nil {
		t.Error("expected error for short action vector")
	}
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	prev := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	_, err = Compute(m, prev, []int{0, worlds.ActSample},
		[]int{worlds.HighRewardEvidence, worlds.Neutral, worlds.Sampling}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if prev[0][0] != 0.5 || prev[1][0] != 1 {
		t.Fatal("previous belief was mutated")
	}
}
