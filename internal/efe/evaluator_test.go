package efe

import (
	"math"
	"testing"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/policy"
	"github.com/FrancescoBalzan/pymdp/internal/worlds"
)

func banditModel(t *testing.T) *model.GenerativeModel {
	t.Helper()
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	return m
}

// helper: index of the horizon-1 policy whose first stage action is act.
func policyIndexByAction(t *testing.T, policies []policy.Policy, act int) int {
	t.Helper()
	for i, p := range policies {
		if p.Steps[0][worlds.FactorStage] == act {
			return i
		}
	}
	t.Fatalf("no policy with stage action %d", act)
	return -1
}

func TestSamplingWinsUnderUncertainty(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 1)

	// Maximum uncertainty about the reward context: the hint's information
	// gain comes free, while playing risks the strongly unpreferred loss.
	bs := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	res := e.Evaluate(bs, policies)

	sample := res.EFE[policyIndexByAction(t, policies, worlds.ActSample)]
	play := res.EFE[policyIndexByAction(t, policies, worlds.ActPlay)]
	if sample >= play {
		t.Fatalf("uncertain belief: EFE(SAMPLE)=%.4f should beat EFE(PLAY)=%.4f", sample, play)
	}
}

func TestPlayingWinsOnceCertain(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 1)

	// Near-certain high-reward context: nothing left to learn, the
	// pragmatic pull of the payoff dominates.
	bs := belief.BeliefState{{0.99, 0.01}, {1, 0, 0}}
	res := e.Evaluate(bs, policies)

	sample := res.EFE[policyIndexByAction(t, policies, worlds.ActSample)]
	play := res.EFE[policyIndexByAction(t, policies, worlds.ActPlay)]
	if play >= sample {
		t.Fatalf("certain belief: EFE(PLAY)=%.4f should beat EFE(SAMPLE)=%.4f", play, sample)
	}
}

func TestSampleScoreClosedForm(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 1)

	bs := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	res := e.Evaluate(bs, policies)

	// Sampling from a uniform context prior: predicted hint distribution is
	// [0, 0.5, 0.5], conditional entropy H(0.8, 0.2), preferences all zero.
	// EFE = -(ln 2 - H(0.8, 0.2)).
	condH := -(0.8*math.Log(0.8) + 0.2*math.Log(0.2))
	want := -(math.Log(2) - condH)
	i := policyIndexByAction(t, policies, worlds.ActSample)
	if math.Abs(res.EFE[i]-want) > 1e-9 {
		t.Fatalf("EFE(SAMPLE): got %.9f, want %.9f", res.EFE[i], want)
	}
	sc := res.Scores[i]
	if math.Abs(sc.Pragmatic) > 1e-9 {
		t.Errorf("sampling has zero preference weight: pragmatic %.9f", sc.Pragmatic)
	}
	if math.Abs(sc.Epistemic-want) > 1e-9 {
		t.Errorf("epistemic term: got %.9f, want %.9f", sc.Epistemic, want)
	}
}

func TestPlayScoreClosedForm(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 1)

	bs := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	res := e.Evaluate(bs, policies)

	// Playing at uniform belief: predicted reward distribution [0, .5, .5]
	// against preferences [0, 4, -6] gives pragmatic -(0.5*4 - 0.5*6) = 1;
	// the payoff channel carries the same ln2 - H(0.8,0.2) information gain.
	condH := -(0.8*math.Log(0.8) + 0.2*math.Log(0.2))
	want := 1.0 - (math.Log(2) - condH)
	i := policyIndexByAction(t, policies, worlds.ActPlay)
	if math.Abs(res.EFE[i]-want) > 1e-9 {
		t.Fatalf("EFE(PLAY): got %.9f, want %.9f", res.EFE[i], want)
	}
}

func TestReturningToStartIsNeutral(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 1)

	bs := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	res := e.Evaluate(bs, policies)

	// At START every modality emits a certain, preference-free outcome:
	// no information, no payoff, zero free energy.
	i := policyIndexByAction(t, policies, worlds.ActStart)
	if math.Abs(res.EFE[i]) > 1e-9 {
		t.Fatalf("EFE(START): got %.9f, want 0", res.EFE[i])
	}
}

func TestHorizonScoresAreAdditive(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 2)

	bs := belief.BeliefState{{0.5, 0.5}, {1, 0, 0}}
	res := e.Evaluate(bs, policies)

	for i, sc := range res.Scores {
		var sum float64
		for _, step := range sc.Steps {
			sum += step.Pragmatic + step.Epistemic
		}
		if math.Abs(sum-sc.Total) > 1e-12 {
			t.Fatalf("policy %d: step sums %.12f != total %.12f", i, sum, sc.Total)
		}
	}
}

func TestParallelEvaluationMatchesSequential(t *testing.T) {
	m := banditModel(t)
	policies := policy.Enumerate(m, 3) // 27 policies
	bs := belief.BeliefState{{0.7, 0.3}, {1, 0, 0}}

	seq := NewEvaluator(m, DefaultConfig()).Evaluate(bs, policies)

	cfg := DefaultConfig()
	cfg.Workers = 4
	par := NewEvaluator(m, cfg).Evaluate(bs, policies)

	if len(seq.EFE) != len(par.EFE) {
		t.Fatalf("length mismatch: %d vs %d", len(seq.EFE), len(par.EFE))
	}
	for i := range seq.EFE {
		if seq.EFE[i] != par.EFE[i] {
			t.Fatalf("policy %d: sequential %.15f != parallel %.15f", i, seq.EFE[i], par.EFE[i])
		}
	}
	if seq.FloorClamps != par.FloorClamps {
		t.Errorf("clamp counts diverge: %d vs %d", seq.FloorClamps, par.FloorClamps)
	}
}

func TestEvaluateDoesNotMutateBelief(t *testing.T) {
	m := banditModel(t)
	e := NewEvaluator(m, DefaultConfig())
	policies := policy.Enumerate(m, 2)

	bs := belief.BeliefState{{0.6, 0.4}, {1, 0, 0}}
	e.Evaluate(bs, policies)
	if bs[0][0] != 0.6 || bs[1][0] != 1 {
		t.Fatal("belief snapshot was mutated during evaluation")
	}
}
