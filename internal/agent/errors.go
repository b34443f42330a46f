package agent

import "fmt"

// #region invalid-observation
// InvalidObservationError reports an observation vector the model cannot
// accept. Modality is -1 when the vector length itself is wrong; otherwise
// it names the modality whose outcome index is out of range. The call fails
// without touching the agent's belief.
type InvalidObservationError struct {
	Modality int
	Got      int
	Want     int
}

func (e *InvalidObservationError) Error() string {
	if e.Modality < 0 {
		return fmt.Sprintf("observation vector has %d entries, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("observation %d out of range for modality %d (size %d)", e.Got, e.Modality, e.Want)
}
// #endregion invalid-observation

// #region invalid-transition
// InvalidStateTransitionError reports a decision-cycle operation called out
// of order. There is no implicit reordering or auto-advance; the agent's
// phase is unchanged.
type InvalidStateTransitionError struct {
	Op   string
	Got  Phase
	Want Phase
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s called in phase %s, want %s", e.Op, e.Got, e.Want)
}
// #endregion invalid-transition
