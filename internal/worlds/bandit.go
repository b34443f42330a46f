// Package worlds provides small reference generative models used by tests,
// replay fixtures, and the demo commands. The numeric core does not depend
// on anything here.
package worlds

import (
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
)

// #region bandit-codes
// Factor, state, action, and observation codes for the epistemic bandit.
const (
	// Hidden state factors.
	FactorContext = 0 // reward context, fixed
	FactorStage   = 1 // decision stage, controllable

	// Factor 0 states.
	HighReward = 0
	LowReward  = 1

	// Factor 1 states.
	Start    = 0
	Playing  = 1
	Sampling = 2

	// Factor 1 actions.
	ActStart  = 0
	ActPlay   = 1
	ActSample = 2

	// Modalities.
	ModEvidence = 0
	ModReward   = 1
	ModStage    = 2

	// Evidence outcomes.
	NoEvidence         = 0
	HighRewardEvidence = 1
	LowRewardEvidence  = 2

	// Reward outcomes.
	Neutral = 0
	Reward  = 1
	Loss    = 2
)

// EvidenceAccuracy is the probability that a sampled hint matches the true
// reward context.
const EvidenceAccuracy = 0.8

// WinProbability is the probability of a reward when playing in the
// high-reward context (and of a loss in the low-reward context).
const WinProbability = 0.8
// #endregion bandit-codes

// #region bandit
// EpistemicBandit builds the two-armed bandit with a hint channel: the agent
// can pay nothing to SAMPLE a noisy hint about the hidden reward context, or
// PLAY and face the payoff directly. Evidence only flows while sampling and
// payoffs only occur while playing; everywhere else the modalities emit
// structurally certain null outcomes (exact zeros elsewhere in A).
func EpistemicBandit() (*model.GenerativeModel, error) {
	return model.New(EpistemicBanditSpec())
}

// EpistemicBanditSpec returns the raw tensors of the epistemic bandit, for
// callers that serialize the model (replay fixtures) rather than run it.
func EpistemicBanditSpec() model.Spec {
	const (
		nContexts = 2
		nStages   = 3
		nActions  = 3
	)

	// A[0]: evidence given (context, stage).
	aEvidence := numeric.Zeros(3, nContexts, nStages)
	for ctx := 0; ctx < nContexts; ctx++ {
		aEvidence.Set(1, NoEvidence, ctx, Start)
		aEvidence.Set(1, NoEvidence, ctx, Playing)
	}
	aEvidence.Set(EvidenceAccuracy, HighRewardEvidence, HighReward, Sampling)
	aEvidence.Set(1-EvidenceAccuracy, LowRewardEvidence, HighReward, Sampling)
	aEvidence.Set(EvidenceAccuracy, LowRewardEvidence, LowReward, Sampling)
	aEvidence.Set(1-EvidenceAccuracy, HighRewardEvidence, LowReward, Sampling)

	// A[1]: reward given (context, stage).
	aReward := numeric.Zeros(3, nContexts, nStages)
	for ctx := 0; ctx < nContexts; ctx++ {
		aReward.Set(1, Neutral, ctx, Start)
		aReward.Set(1, Neutral, ctx, Sampling)
	}
	aReward.Set(WinProbability, Reward, HighReward, Playing)
	aReward.Set(1-WinProbability, Loss, HighReward, Playing)
	aReward.Set(WinProbability, Loss, LowReward, Playing)
	aReward.Set(1-WinProbability, Reward, LowReward, Playing)

	// A[2]: the agent observes its own decision stage exactly.
	aStage := numeric.Zeros(nStages, nContexts, nStages)
	for ctx := 0; ctx < nContexts; ctx++ {
		for st := 0; st < nStages; st++ {
			aStage.Set(1, st, ctx, st)
		}
	}

	// B[0]: the reward context never changes; single no-op action.
	bContext := numeric.Zeros(nContexts, nContexts, 1)
	for s := 0; s < nContexts; s++ {
		bContext.Set(1, s, s, 0)
	}

	// B[1]: each action deterministically selects the next stage.
	bStage := numeric.Zeros(nStages, nStages, nActions)
	for prev := 0; prev < nStages; prev++ {
		bStage.Set(1, Start, prev, ActStart)
		bStage.Set(1, Playing, prev, ActPlay)
		bStage.Set(1, Sampling, prev, ActSample)
	}

	return model.Spec{
		A: []*numeric.Tensor{aEvidence, aReward, aStage},
		B: []*numeric.Tensor{bContext, bStage},
		C: [][]float64{
			{0, 0, 0},
			{0, 4, -6}, // prefer rewards, strongly avoid losses
			{0, 0, 0},
		},
		D: [][]float64{
			{0.5, 0.5},
			{1, 0, 0},
		},
		Controllable: []int{FactorStage},
		Labels: &model.Labels{
			States: [][]string{
				{"HIGH_REW", "LOW_REW"},
				{"START", "PLAYING", "SAMPLING"},
			},
			Observations: [][]string{
				{"NO_EVIDENCE", "HIGH_REW_EVIDENCE", "LOW_REW_EVIDENCE"},
				{"NEUTRAL", "REWARD", "LOSS"},
				{"START_OBS", "PLAY_OBS", "SAMPLE_OBS"},
			},
			Actions: [][]string{
				{"NO_OP"},
				{"START_ACTION", "PLAY_ACTION", "SAMPLE_ACTION"},
			},
		},
	}
}
// #endregion bandit

// #region identity-world
// IdentityWorld builds a single-factor, single-modality model in which each
// state deterministically produces a distinct observation and transitions are
// the identity. Useful for exact-posterior checks.
func IdentityWorld(n int) (*model.GenerativeModel, error) {
	return model.New(IdentityWorldSpec(n))
}

// IdentityWorldSpec returns the raw tensors of the identity world.
func IdentityWorldSpec(n int) model.Spec {
	a := numeric.Zeros(n, n)
	b := numeric.Zeros(n, n, 1)
	d := make([]float64, n)
	c := make([]float64, n)
	for s := 0; s < n; s++ {
		a.Set(1, s, s)
		b.Set(1, s, s, 0)
		d[s] = 1 / float64(n)
	}
	return model.Spec{
		A: []*numeric.Tensor{a},
		B: []*numeric.Tensor{b},
		C: [][]float64{c},
		D: [][]float64{d},
	}
}
// #endregion identity-world
