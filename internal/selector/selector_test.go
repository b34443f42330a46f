package selector

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/policy"
	"github.com/FrancescoBalzan/pymdp/internal/worlds"
)

func banditSetup(t *testing.T) (*model.GenerativeModel, []policy.Policy) {
	t.Helper()
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	return m, policy.Enumerate(m, 1)
}

func rng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPosteriorFavorsLowEFE(t *testing.T) {
	m, policies := banditSetup(t)
	efe := []float64{0.0, 0.8, -0.2} // START, PLAY, SAMPLE

	sel, err := Select(rng(1), m, policies, efe, DefaultConfig())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.PolicyPosterior[2] <= sel.PolicyPosterior[0] ||
		sel.PolicyPosterior[0] <= sel.PolicyPosterior[1] {
		t.Fatalf("posterior does not order by EFE: %v", sel.PolicyPosterior)
	}
	var sum float64
	for _, p := range sel.PolicyPosterior {
		sum += p
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("posterior sums to %f", sum)
	}
}

func TestPrecisionExtremes(t *testing.T) {
	m, policies := banditSetup(t)
	efe := []float64{0.0, 0.8, -0.2}

	// Tiny precision: near-uniform over policies.
	cfg := Config{Precision: 1e-9}
	sel, err := Select(rng(2), m, policies, efe, cfg)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for i, p := range sel.PolicyPosterior {
		if math.Abs(p-1.0/3.0) > 1e-6 {
			t.Fatalf("near-zero precision: entry %d = %f, want ~1/3", i, p)
		}
	}

	// Huge precision: effectively a point mass on the argmin policy.
	cfg = Config{Precision: 1e6, Deterministic: true}
	sel, err = Select(rng(3), m, policies, efe, cfg)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.PolicyPosterior[2] < 1-1e-9 {
		t.Fatalf("huge precision: posterior %v, want point mass on policy 2", sel.PolicyPosterior)
	}
	if sel.Action[worlds.FactorStage] != worlds.ActSample {
		t.Fatalf("got action %d, want SAMPLE", sel.Action[worlds.FactorStage])
	}
}

func TestFixedFactorAlwaysNoOp(t *testing.T) {
	m, policies := banditSetup(t)
	efe := []float64{0.3, 0.1, 0.2}

	for seed := uint64(0); seed < 20; seed++ {
		sel, err := Select(rng(seed), m, policies, efe, DefaultConfig())
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if sel.Action[worlds.FactorContext] != 0 {
			t.Fatal("fixed factor must return the no-op action")
		}
		ap := sel.ActionPosteriors[worlds.FactorContext]
		if len(ap) != 1 || ap[0] != 1 {
			t.Fatalf("fixed factor posterior: got %v, want [1]", ap)
		}
	}
}

func TestActionsAlwaysInRange(t *testing.T) {
	m, policies := banditSetup(t)
	efe := []float64{0.1, 0.1, 0.1}

	for seed := uint64(0); seed < 200; seed++ {
		sel, err := Select(rng(seed), m, policies, efe, DefaultConfig())
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		for f, a := range sel.Action {
			if a < 0 || a >= m.NumActions(f) {
				t.Fatalf("factor %d: action %d out of range [0,%d)", f, a, m.NumActions(f))
			}
		}
	}
}

func TestSamplingReproducibleGivenSeed(t *testing.T) {
	m, policies := banditSetup(t)
	efe := []float64{0.05, 0.0, 0.02}

	a, err := Select(rng(99), m, policies, efe, DefaultConfig())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	b, err := Select(rng(99), m, policies, efe, DefaultConfig())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for f := range a.Action {
		if a.Action[f] != b.Action[f] {
			t.Fatal("same seed produced different actions")
		}
	}
}

func TestMarginalizationPoolsPolicies(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	// Horizon 2: three policies share each first-step action; their
	// posterior mass must pool onto that action.
	policies := policy.Enumerate(m, 2)
	efe := make([]float64, len(policies))
	for i := range efe {
		efe[i] = 1.0 // uniform posterior
	}
	sel, err := Select(rng(5), m, policies, efe, DefaultConfig())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	ap := sel.ActionPosteriors[worlds.FactorStage]
	for a, p := range ap {
		if math.Abs(p-1.0/3.0) > 1e-12 {
			t.Fatalf("action %d: got %f, want 1/3", a, p)
		}
	}
}

func TestSelectValidation(t *testing.T) {
	m, policies := banditSetup(t)

	if _, err := Select(rng(1), m, nil, nil, DefaultConfig()); err == nil {
		t.Error("expected error for empty policy set")
	}
	if _, err := Select(rng(1), m, policies, []float64{1}, DefaultConfig()); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := Select(rng(1), m, policies, []float64{0, 0, 0}, Config{Precision: 0}); err == nil {
		t.Error("expected error for non-positive precision")
	}
}
