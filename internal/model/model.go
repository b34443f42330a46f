package model

import (
	"math"
	"strconv"

	"github.com/FrancescoBalzan/pymdp/internal/numeric"
)

// NormTolerance is the allowed deviation of a conditional-distribution slice
// from summing to exactly 1.
const NormTolerance = 1e-6

// #region spec
// Spec carries everything needed to construct a GenerativeModel.
//
// A[m] has shape (|obs_m|, |state_1|, ..., |state_F|) and gives
// P(obs_m | states). B[f] has shape (|state_f|, |state_f|, |actions_f|) and
// gives P(next_f | prev_f, action_f). C[m] is a log-preference vector over
// the outcomes of modality m (no normalization requirement). D[f] is the
// prior over factor f at time 0.
type Spec struct {
	A            []*numeric.Tensor
	B            []*numeric.Tensor
	C            [][]float64
	D            [][]float64
	Controllable []int // factor indices with a real control factor
	Labels       *Labels
}
// #endregion spec

// #region labels
// Labels is a purely cosmetic lookup table mapping integer codes to display
// names. The numeric core never branches on a label; nil is always valid.
type Labels struct {
	States       [][]string // per factor
	Observations [][]string // per modality
	Actions      [][]string // per factor
}

func labelOr(table [][]string, group, idx int) string {
	if table == nil || group >= len(table) || idx >= len(table[group]) {
		return ""
	}
	return table[group][idx]
}
// #endregion labels

// #region model
// GenerativeModel is an immutable, validated container for the agent's model
// of the world: likelihoods A, transitions B, preferences C, and priors D.
// All tensors are deep-copied at construction, so a model handed to an agent
// never aliases the caller's data (or any model driving a real environment).
type GenerativeModel struct {
	a            []*numeric.Tensor
	b            []*numeric.Tensor
	c            [][]float64
	d            [][]float64
	factorSizes  []int
	modSizes     []int
	numActions   []int
	controllable []bool
	labels       *Labels
}
// #endregion model

// #region constructor
// New validates the spec and returns an immutable model. Shape errors are
// reported before normalization errors; the first violation found wins.
func New(spec Spec) (*GenerativeModel, error) {
	m := &GenerativeModel{labels: spec.Labels}

	if err := m.validateShapes(spec); err != nil {
		return nil, err
	}
	if err := m.validateNormalization(spec); err != nil {
		return nil, err
	}

	m.a = make([]*numeric.Tensor, len(spec.A))
	for i, t := range spec.A {
		m.a[i] = t.Clone()
	}
	m.b = make([]*numeric.Tensor, len(spec.B))
	for i, t := range spec.B {
		m.b[i] = t.Clone()
	}
	m.c = make([][]float64, len(spec.C))
	for i, v := range spec.C {
		m.c[i] = append([]float64(nil), v...)
	}
	m.d = make([][]float64, len(spec.D))
	for i, v := range spec.D {
		m.d[i] = append([]float64(nil), v...)
	}
	return m, nil
}

func (m *GenerativeModel) validateShapes(spec Spec) error {
	numFactors := len(spec.D)
	numModalities := len(spec.C)

	if len(spec.B) != numFactors {
		return &ShapeMismatchError{Tensor: "B", Got: []int{len(spec.B)}, Want: []int{numFactors}}
	}
	if len(spec.A) != numModalities {
		return &ShapeMismatchError{Tensor: "A", Got: []int{len(spec.A)}, Want: []int{numModalities}}
	}

	m.factorSizes = make([]int, numFactors)
	for f, d := range spec.D {
		if len(d) < 1 {
			return &ShapeMismatchError{Tensor: tensorName("D", f), Got: []int{0}, Want: []int{1}}
		}
		m.factorSizes[f] = len(d)
	}

	m.modSizes = make([]int, numModalities)
	for mod, c := range spec.C {
		if len(c) < 1 {
			return &ShapeMismatchError{Tensor: tensorName("C", mod), Got: []int{0}, Want: []int{1}}
		}
		m.modSizes[mod] = len(c)
	}

	m.controllable = make([]bool, numFactors)
	for _, f := range spec.Controllable {
		if f < 0 || f >= numFactors {
			return &ShapeMismatchError{Tensor: "Controllable", Got: []int{f}, Want: []int{numFactors}}
		}
		m.controllable[f] = true
	}

	m.numActions = make([]int, numFactors)
	for f, b := range spec.B {
		sf := m.factorSizes[f]
		if len(b.Shape) != 3 || b.Shape[0] != sf || b.Shape[1] != sf {
			return &ShapeMismatchError{
				Tensor: tensorName("B", f),
				Got:    b.Shape,
				Want:   []int{sf, sf, -1},
			}
		}
		if !m.controllable[f] && b.Shape[2] != 1 {
			// A fixed factor is driven by a single implicit no-op action.
			return &ShapeMismatchError{
				Tensor: tensorName("B", f),
				Got:    b.Shape,
				Want:   []int{sf, sf, 1},
			}
		}
		m.numActions[f] = b.Shape[2]
	}

	for mod, a := range spec.A {
		want := append([]int{m.modSizes[mod]}, m.factorSizes...)
		if len(a.Shape) != len(want) {
			return &ShapeMismatchError{Tensor: tensorName("A", mod), Got: a.Shape, Want: want}
		}
		for i := range want {
			if a.Shape[i] != want[i] {
				return &ShapeMismatchError{Tensor: tensorName("A", mod), Got: a.Shape, Want: want}
			}
		}
	}
	return nil
}

func (m *GenerativeModel) validateNormalization(spec Spec) error {
	// Every A slice over the observation axis must be a distribution.
	for mod, a := range spec.A {
		idx := make([]int, len(m.factorSizes))
		for {
			var sum float64
			for o := 0; o < m.modSizes[mod]; o++ {
				sum += a.At(append([]int{o}, idx...)...)
			}
			if math.Abs(sum-1) > NormTolerance {
				return &NotNormalizedError{
					Tensor: tensorName("A", mod),
					Index:  append([]int(nil), idx...),
					Sum:    sum,
				}
			}
			if !numeric.NextIndex(idx, m.factorSizes) {
				break
			}
		}
	}

	// Every B slice over the next-state axis must be a distribution.
	for f, b := range spec.B {
		for prev := 0; prev < m.factorSizes[f]; prev++ {
			for act := 0; act < m.numActions[f]; act++ {
				var sum float64
				for next := 0; next < m.factorSizes[f]; next++ {
					sum += b.At(next, prev, act)
				}
				if math.Abs(sum-1) > NormTolerance {
					return &NotNormalizedError{
						Tensor: tensorName("B", f),
						Index:  []int{prev, act},
						Sum:    sum,
					}
				}
			}
		}
	}

	// D priors must be distributions too.
	for f, d := range spec.D {
		var sum float64
		for _, v := range d {
			sum += v
		}
		if math.Abs(sum-1) > NormTolerance {
			return &NotNormalizedError{Tensor: tensorName("D", f), Sum: sum}
		}
	}
	return nil
}

func tensorName(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
// #endregion constructor

// #region accessors
// NumFactors returns the number of hidden state factors.
func (m *GenerativeModel) NumFactors() int { return len(m.factorSizes) }

// NumModalities returns the number of observation modalities.
func (m *GenerativeModel) NumModalities() int { return len(m.modSizes) }

// FactorSize returns the cardinality of hidden state factor f.
func (m *GenerativeModel) FactorSize(f int) int { return m.factorSizes[f] }

// ModalitySize returns the cardinality of observation modality mod.
func (m *GenerativeModel) ModalitySize(mod int) int { return m.modSizes[mod] }

// NumActions returns the size of factor f's action space (1 for fixed factors).
func (m *GenerativeModel) NumActions(f int) int { return m.numActions[f] }

// Controllable reports whether factor f has a real control factor.
func (m *GenerativeModel) Controllable(f int) bool { return m.controllable[f] }

// Prior returns a copy of the time-0 prior over factor f.
func (m *GenerativeModel) Prior(f int) []float64 {
	return append([]float64(nil), m.d[f]...)
}

// Preference returns a copy of the log-preference vector for modality mod.
func (m *GenerativeModel) Preference(mod int) []float64 {
	return append([]float64(nil), m.c[mod]...)
}

// StateLabel, ObservationLabel, and ActionLabel return display names for
// integer codes, or "" when no label table was attached.
func (m *GenerativeModel) StateLabel(f, s int) string       { return labelOr(labelStates(m.labels), f, s) }
func (m *GenerativeModel) ObservationLabel(mod, o int) string {
	return labelOr(labelObs(m.labels), mod, o)
}
func (m *GenerativeModel) ActionLabel(f, a int) string { return labelOr(labelActions(m.labels), f, a) }

func labelStates(l *Labels) [][]string {
	if l == nil {
		return nil
	}
	return l.States
}

func labelObs(l *Labels) [][]string {
	if l == nil {
		return nil
	}
	return l.Observations
}

func labelActions(l *Labels) [][]string {
	if l == nil {
		return nil
	}
	return l.Actions
}
// #endregion accessors

// #region lookups
// Likelihood returns P(obs_mod | states) as a fresh distribution over the
// outcomes of modality mod, for the given full state combination.
func (m *GenerativeModel) Likelihood(mod int, states []int) []float64 {
	a := m.a[mod]
	base := a.Idx(append([]int{0}, states...)...)
	stride := a.Stride(0)
	out := make([]float64, m.modSizes[mod])
	for o := range out {
		out[o] = a.Data[base+o*stride]
	}
	return out
}

// LikelihoodAt returns the single entry P(obs = o | states) for modality mod.
func (m *GenerativeModel) LikelihoodAt(mod, o int, states []int) float64 {
	a := m.a[mod]
	return a.Data[a.Idx(append([]int{o}, states...)...)]
}

// Transition returns P(next_f | prev, action) as a fresh distribution over
// the states of factor f.
func (m *GenerativeModel) Transition(f, prev, action int) []float64 {
	b := m.b[f]
	base := b.Idx(0, prev, action)
	stride := b.Stride(0)
	out := make([]float64, m.factorSizes[f])
	for next := range out {
		out[next] = b.Data[base+next*stride]
	}
	return out
}

// Propagate returns the one-step predictive distribution over factor f given
// a belief over its previous state and the action taken on it:
// B[f][:, :, action] . belief.
func (m *GenerativeModel) Propagate(f int, belief []float64, action int) []float64 {
	out := make([]float64, m.factorSizes[f])
	b := m.b[f]
	for prev, w := range belief {
		if w == 0 {
			continue
		}
		base := b.Idx(0, prev, action)
		stride := b.Stride(0)
		for next := range out {
			out[next] += w * b.Data[base+next*stride]
		}
	}
	return out
}
// #endregion lookups
