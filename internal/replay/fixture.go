package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FrancescoBalzan/pymdp/internal/agent"
	"github.com/FrancescoBalzan/pymdp/internal/inference"
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
	"github.com/FrancescoBalzan/pymdp/internal/selector"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Model       FixtureModel  `json:"model"`
	Agent       FixtureAgent  `json:"agent"`
	Steps       []FixtureStep `json:"steps"`
}

// FixtureTensor is a flat serialization of a likelihood or transition tensor.
type FixtureTensor struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// FixtureLabels mirrors model.Labels with JSON tags.
type FixtureLabels struct {
	States       [][]string `json:"states,omitempty"`
	Observations [][]string `json:"observations,omitempty"`
	Actions      [][]string `json:"actions,omitempty"`
}

// FixtureModel is the JSON-serializable generative model.
type FixtureModel struct {
	A            []FixtureTensor `json:"a"`
	B            []FixtureTensor `json:"b"`
	C            [][]float64     `json:"c"`
	D            [][]float64     `json:"d"`
	Controllable []int           `json:"controllable"`
	Labels       *FixtureLabels  `json:"labels,omitempty"`
}

// FixtureAgent captures the agent configuration for a replay run.
type FixtureAgent struct {
	Horizon       int     `json:"horizon"`
	Precision     float64 `json:"precision"`
	MaxIterations int     `json:"max_iterations"`
	Tolerance     float64 `json:"tolerance"`
	Seed          uint64  `json:"seed"`
	Deterministic bool    `json:"deterministic"`
}

// FixtureStep is one observe/act cycle with optional expectations.
type FixtureStep struct {
	Observation     []int       `json:"observation"`
	ExpectedAction  []int       `json:"expected_action,omitempty"`
	ExpectedBeliefs [][]float64 `json:"expected_beliefs,omitempty"`
	BeliefTolerance float64     `json:"belief_tolerance,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// ToSpec converts a FixtureModel to a model.Spec. Tensor validation is
// deferred to model.New.
func (fm *FixtureModel) ToSpec() (model.Spec, error) {
	spec := model.Spec{
		C:            fm.C,
		D:            fm.D,
		Controllable: fm.Controllable,
	}
	for i, ft := range fm.A {
		t, err := numeric.NewTensor(ft.Shape, ft.Data)
		if err != nil {
			return model.Spec{}, fmt.Errorf("fixture A[%d]: %w", i, err)
		}
		spec.A = append(spec.A, t)
	}
	for i, ft := range fm.B {
		t, err := numeric.NewTensor(ft.Shape, ft.Data)
		if err != nil {
			return model.Spec{}, fmt.Errorf("fixture B[%d]: %w", i, err)
		}
		spec.B = append(spec.B, t)
	}
	if fm.Labels != nil {
		spec.Labels = &model.Labels{
			States:       fm.Labels.States,
			Observations: fm.Labels.Observations,
			Actions:      fm.Labels.Actions,
		}
	}
	return spec, nil
}

// FromSpec converts a model.Spec into its fixture form.
func FromSpec(spec model.Spec) FixtureModel {
	fm := FixtureModel{
		C:            spec.C,
		D:            spec.D,
		Controllable: spec.Controllable,
	}
	for _, t := range spec.A {
		fm.A = append(fm.A, FixtureTensor{Shape: t.Shape, Data: t.Data})
	}
	for _, t := range spec.B {
		fm.B = append(fm.B, FixtureTensor{Shape: t.Shape, Data: t.Data})
	}
	if spec.Labels != nil {
		fm.Labels = &FixtureLabels{
			States:       spec.Labels.States,
			Observations: spec.Labels.Observations,
			Actions:      spec.Labels.Actions,
		}
	}
	return fm
}

// ToAgentConfig converts a FixtureAgent to an agent.Config for the given model.
func (fa *FixtureAgent) ToAgentConfig(m *model.GenerativeModel) agent.Config {
	inf := inference.DefaultConfig()
	if fa.MaxIterations > 0 {
		inf.MaxIterations = fa.MaxIterations
	}
	if fa.Tolerance > 0 {
		inf.Tolerance = fa.Tolerance
	}
	sel := selector.DefaultConfig()
	if fa.Precision > 0 {
		sel.Precision = fa.Precision
	}
	sel.Deterministic = fa.Deterministic
	return agent.Config{
		Model:     m,
		Horizon:   fa.Horizon,
		Inference: inf,
		Selection: sel,
		Seed:      fa.Seed,
	}
}

// #endregion fixture-loader
