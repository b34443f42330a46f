// Package agent orchestrates one active-inference decision cycle per
// timestep: perceive (state inference), plan (policy enumeration and
// expected-free-energy scoring), act (policy selection and sampling).
package agent

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/efe"
	"github.com/FrancescoBalzan/pymdp/internal/inference"
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/policy"
	"github.com/FrancescoBalzan/pymdp/internal/selector"
)

// #region phase
// Phase tracks where the agent is in its decision cycle. Operations must be
// called in order: InferStates, InferPolicies, SampleAction.
type Phase int

const (
	PhaseAwaitingObservation Phase = iota
	PhaseBeliefUpdated
	PhasePolicyEvaluated
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingObservation:
		return "awaiting_observation"
	case PhaseBeliefUpdated:
		return "belief_updated"
	case PhasePolicyEvaluated:
		return "policy_evaluated"
	default:
		return "unknown"
	}
}
// #endregion phase

// #region config
// Config wires an agent. Model and Horizon are required; zero-valued
// sub-configs fall back to their package defaults. Seed feeds the agent's
// private random source unless Rand overrides it; there is no process-wide
// hidden RNG. Store is optional: when set, every cycle persists a belief
// snapshot and a decision-log entry.
type Config struct {
	Model     *model.GenerativeModel
	Horizon   int
	Inference inference.Config
	EFE       efe.Config
	Selection selector.Config
	Seed      uint64
	Rand      *rand.Rand
	Store     *belief.Store
	EpisodeID string
}
// #endregion config

// #region agent-struct
// Agent holds the only mutable state in the system: the current belief and
// the cycle phase. Each decision cycle is synchronous; the belief is
// replaced atomically at the end of InferStates and nothing reads it
// mid-update. Independent agents share nothing and may run fully in
// parallel.
type Agent struct {
	model     *model.GenerativeModel
	horizon   int
	infCfg    inference.Config
	selCfg    selector.Config
	evaluator *efe.Evaluator
	rng       *rand.Rand

	beliefs    belief.BeliefState
	phase      Phase
	step       int
	lastAction []int
	lastObs    []int

	// Planning products, retained only between InferPolicies and
	// SampleAction.
	policies  []policy.Policy
	efeResult efe.Result
	posterior []float64

	store     *belief.Store
	episodeID string
	versionID string
}
// #endregion agent-struct

// #region constructor
// New validates the configuration and returns an agent whose belief is
// initialized from the model's priors.
func New(cfg Config) (*Agent, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("agent: model is required")
	}
	if cfg.Horizon < 1 {
		return nil, fmt.Errorf("agent: horizon must be >= 1, got %d", cfg.Horizon)
	}
	if cfg.Inference.MaxIterations == 0 {
		cfg.Inference = inference.DefaultConfig()
	}
	if cfg.Inference.MaxIterations < 1 {
		return nil, fmt.Errorf("agent: inference iterations must be >= 1, got %d", cfg.Inference.MaxIterations)
	}
	if cfg.Inference.Tolerance < 0 {
		return nil, fmt.Errorf("agent: inference tolerance must be >= 0, got %f", cfg.Inference.Tolerance)
	}
	if cfg.Selection.Precision == 0 {
		cfg.Selection.Precision = selector.DefaultConfig().Precision
	}
	if cfg.Selection.Precision < 0 {
		return nil, fmt.Errorf("agent: precision must be > 0, got %f", cfg.Selection.Precision)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	a := &Agent{
		model:     cfg.Model,
		horizon:   cfg.Horizon,
		infCfg:    cfg.Inference,
		selCfg:    cfg.Selection,
		evaluator: efe.NewEvaluator(cfg.Model, cfg.EFE),
		rng:       rng,
		beliefs:   belief.FromPriors(cfg.Model),
		phase:     PhaseAwaitingObservation,
		store:     cfg.Store,
		episodeID: cfg.EpisodeID,
	}

	if a.store != nil {
		if a.episodeID == "" {
			a.episodeID = uuid.New().String()
		}
		rec, err := a.store.CreateInitial(a.episodeID, a.beliefs)
		if err != nil {
			return nil, fmt.Errorf("agent: persist initial belief: %w", err)
		}
		a.versionID = rec.VersionID
	}
	return a, nil
}
// #endregion constructor

// #region accessors
// Beliefs returns a copy of the agent's current belief.
func (a *Agent) Beliefs() belief.BeliefState {
	return a.beliefs.Clone()
}

// Phase returns the current cycle phase.
func (a *Agent) Phase() Phase {
	return a.phase
}

// Step returns the number of completed state-inference calls.
func (a *Agent) Step() int {
	return a.step
}

// EpisodeID returns the episode identifier used for persistence, if any.
func (a *Agent) EpisodeID() string {
	return a.episodeID
}
// #endregion accessors

// #region infer-states
// InferStates folds the new observation into the belief via the mean-field
// fixed point and advances the cycle. The observation carries one outcome
// index per modality; a "null" outcome stands in when a modality is not
// informative, it is never omitted. On any error the stored belief and
// phase are unchanged.
func (a *Agent) InferStates(observation []int) (belief.BeliefState, error) {
	if a.phase != PhaseAwaitingObservation {
		return nil, &InvalidStateTransitionError{Op: "InferStates", Got: a.phase, Want: PhaseAwaitingObservation}
	}
	if err := a.checkObservation(observation); err != nil {
		return nil, err
	}

	res, err := inference.Compute(a.model, a.beliefs, a.lastAction, observation, a.infCfg)
	if err != nil {
		return nil, fmt.Errorf("state inference: %w", err)
	}
	if !res.Converged {
		log.Printf("[AGENT] state inference stopped at iteration budget %d (step %d)", res.Iterations, a.step)
	}

	a.beliefs = res.Posterior
	a.lastObs = append([]int(nil), observation...)
	a.step++
	a.phase = PhaseBeliefUpdated

	if a.store != nil {
		a.persistSnapshot(res)
	}
	return a.beliefs.Clone(), nil
}

func (a *Agent) checkObservation(observation []int) error {
	if len(observation) != a.model.NumModalities() {
		return &InvalidObservationError{Modality: -1, Got: len(observation), Want: a.model.NumModalities()}
	}
	for mod, o := range observation {
		if o < 0 || o >= a.model.ModalitySize(mod) {
			return &InvalidObservationError{Modality: mod, Got: o, Want: a.model.ModalitySize(mod)}
		}
	}
	return nil
}
// #endregion infer-states

// #region infer-policies
// InferPolicies enumerates candidate policies, scores them by expected free
// energy, and returns the policy posterior with the raw scores for
// diagnostic access.
func (a *Agent) InferPolicies() ([]float64, []float64, error) {
	if a.phase != PhaseBeliefUpdated {
		return nil, nil, &InvalidStateTransitionError{Op: "InferPolicies", Got: a.phase, Want: PhaseBeliefUpdated}
	}

	a.policies = policy.Enumerate(a.model, a.horizon)
	a.efeResult = a.evaluator.Evaluate(a.beliefs, a.policies)
	a.posterior = selector.Posterior(a.efeResult.EFE, a.selCfg.Precision)
	a.phase = PhasePolicyEvaluated

	if a.efeResult.FloorClamps > 0 {
		log.Printf("[AGENT] %d probabilities floored during policy evaluation (step %d)", a.efeResult.FloorClamps, a.step)
	}

	posterior := append([]float64(nil), a.posterior...)
	scores := append([]float64(nil), a.efeResult.EFE...)
	return posterior, scores, nil
}
// #endregion infer-policies

// #region sample-action
// SampleAction draws the next action from the per-factor action posteriors
// and completes the cycle. The policy set and its scores are discarded;
// later policy steps are replanned on the next cycle.
func (a *Agent) SampleAction() ([]int, error) {
	if a.phase != PhasePolicyEvaluated {
		return nil, &InvalidStateTransitionError{Op: "SampleAction", Got: a.phase, Want: PhasePolicyEvaluated}
	}

	sel, err := selector.Select(a.rng, a.model, a.policies, a.efeResult.EFE, a.selCfg)
	if err != nil {
		return nil, fmt.Errorf("policy selection: %w", err)
	}

	a.lastAction = sel.Action
	if a.store != nil {
		a.persistDecision(sel)
	}

	a.policies = nil
	a.efeResult = efe.Result{}
	a.posterior = nil
	a.phase = PhaseAwaitingObservation

	return append([]int(nil), sel.Action...), nil
}
// #endregion sample-action

// #region reset
// Reset returns the agent to its time-0 state: beliefs from the priors, no
// pending action, awaiting the first observation. A new episode ID is drawn
// when persistence is enabled.
func (a *Agent) Reset() error {
	a.beliefs = belief.FromPriors(a.model)
	a.phase = PhaseAwaitingObservation
	a.step = 0
	a.lastAction = nil
	a.lastObs = nil
	a.policies = nil
	a.efeResult = efe.Result{}
	a.posterior = nil
	a.versionID = ""

	if a.store != nil {
		a.episodeID = uuid.New().String()
		rec, err := a.store.CreateInitial(a.episodeID, a.beliefs)
		if err != nil {
			return fmt.Errorf("agent: persist initial belief: %w", err)
		}
		a.versionID = rec.VersionID
	}
	return nil
}
// #endregion reset

// #region persistence
/// Persistence failures are logged, never fatal: durability is optional and
// the in-memory cycle stays authoritative.
func (a *Agent) persistSnapshot(res inference.Result) {
	snap := belief.NewSnapshot(a.episodeID, a.step, a.versionID, a.beliefs)
	metrics := struct {
		Iterations  int   `json:"iterations"`
		Converged   bool  `json:"converged"`
		FloorClamps int   `json:"floor_clamps"`
		ElapsedMs   int64 `json:"elapsed_ms"`
	}{res.Iterations, res.Converged, res.FloorClamps, res.ElapsedMs}
	if data, err := json.Marshal(metrics); err == nil {
		snap.MetricsJSON = string(data)
	}
	if err := a.store.Commit(snap); err != nil {
		log.Printf("[AGENT] snapshot commit failed: %v", err)
		return
	}
	a.versionID = snap.VersionID
}

func (a *Agent) persistDecision(sel selector.Selection) {
	entry := belief.DecisionEntry{
		VersionID: a.versionID,
		EpisodeID: a.episodeID,
		Step:      a.step,
		Reason:    "sampled",
	}
	if a.selCfg.Deterministic {
		entry.Reason = "argmax"
	}
	if data, err := json.Marshal(a.lastObs); err == nil {
		entry.ObservationJSON = string(data)
	}
	if data, err := json.Marshal(sel.Action); err == nil {
		entry.ActionJSON = string(data)
	}
	if data, err := json.Marshal(a.efeResult.EFE); err == nil {
		entry.EFEJSON = string(data)
	}
	if data, err := json.Marshal(sel.PolicyPosterior); err == nil {
		entry.PosteriorJSON = string(data)
	}
	if err := a.store.LogDecision(entry); err != nil {
		log.Printf("[AGENT] decision log failed: %v", err)
	}
}
// #endregion persistence
