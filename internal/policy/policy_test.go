package policy

import (
	"testing"

	"github.com/FrancescoBalzan/pymdp/internal/worlds"
)

func TestEnumerateCountAndShape(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	// Factor 0 is fixed (1 action), factor 1 has 3: 3^H policies.
	for horizon, want := range map[int]int{1: 3, 2: 9, 3: 27} {
		got := Enumerate(m, horizon)
		if len(got) != want {
			t.Fatalf("horizon %d: got %d policies, want %d", horizon, len(got), want)
		}
		for _, p := range got {
			if p.Horizon() != horizon {
				t.Fatalf("policy horizon: got %d, want %d", p.Horizon(), horizon)
			}
			for _, step := range p.Steps {
				if len(step) != m.NumFactors() {
					t.Fatalf("step width: got %d, want %d", len(step), m.NumFactors())
				}
				if step[0] != 0 {
					t.Fatal("fixed factor must always carry the no-op action")
				}
			}
		}
	}
}

func TestEnumerateLexicographicOrder(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}

	got := Enumerate(m, 2)
	// First policy is all zeros; the last factor of the last step advances
	// fastest.
	if got[0].Steps[0][1] != 0 || got[0].Steps[1][1] != 0 {
		t.Fatalf("first policy not all-zero: %v", got[0].Steps)
	}
	if got[1].Steps[1][1] != 1 {
		t.Fatalf("second policy should advance the final step action: %v", got[1].Steps)
	}
	if got[3].Steps[0][1] != 1 || got[3].Steps[1][1] != 0 {
		t.Fatalf("fourth policy should advance the first step action: %v", got[3].Steps)
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	a := Enumerate(m, 2)
	b := Enumerate(m, 2)
	for i := range a {
		for tt := range a[i].Steps {
			for f := range a[i].Steps[tt] {
				if a[i].Steps[tt][f] != b[i].Steps[tt][f] {
					t.Fatal("enumeration order is not reproducible")
				}
			}
		}
	}
}

func TestEnumerateZeroHorizon(t *testing.T) {
	m, err := worlds.EpistemicBandit()
	if err != nil {
		t.Fatalf("EpistemicBandit: %v", err)
	}
	if got := Enumerate(m, 0); got != nil {
		t.Fatalf("horizon 0: got %d policies, want none", len(got))
	}
}

func TestPolicyCloneDoesNotAlias(t *testing.T) {
	p := Policy{Steps: [][]int{{0, 1}, {0, 2}}}
	cp := p.Clone()
	cp.Steps[0][1] = 9
	if p.Steps[0][1] != 1 {
		t.Fatal("clone aliased steps")
	}
}
