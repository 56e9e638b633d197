package bem

import (
	"context"

	"github.com/looplab/fsm"
)

// Section solve states, per spec.md §4.5: "Unsolved -> SearchingPositive ->
// SearchingNegative -> {Converged | Failed}". Generalises the teacher's
// MotorFSM (pkg/components/motor_fsm.go) from a burn-time state machine to
// the BEM solver's per-section branch search.
const (
	StateUnsolved          = "unsolved"
	StateSearchingPositive = "searching_positive"
	StateSearchingNegative = "searching_negative"
	StateConverged         = "converged"
	StateFailed            = "failed"
)

// sectionFSM drives one section through its branch-search state machine.
// It carries no solved values itself; the solver records phi/a/a' alongside
// it once a transition to Converged or Failed is reached.
type sectionFSM struct {
	*fsm.FSM
}

func newSectionFSM() *sectionFSM {
	return &sectionFSM{
		FSM: fsm.NewFSM(
			StateUnsolved,
			fsm.Events{
				{Name: "start", Src: []string{StateUnsolved}, Dst: StateSearchingPositive},
				{Name: "converge", Src: []string{StateSearchingPositive, StateSearchingNegative}, Dst: StateConverged},
				{Name: "exhaustPositive", Src: []string{StateSearchingPositive}, Dst: StateSearchingNegative},
				{Name: "exhaustNegative", Src: []string{StateSearchingNegative}, Dst: StateFailed},
			},
			fsm.Callbacks{},
		),
	}
}

var bgCtx = context.Background()

func (s *sectionFSM) begin() error { return s.Event(bgCtx, "start") }
func (s *sectionFSM) converge() error { return s.Event(bgCtx, "converge") }
func (s *sectionFSM) exhaustPositive() error { return s.Event(bgCtx, "exhaustPositive") }
func (s *sectionFSM) exhaustNegative() error { return s.Event(bgCtx, "exhaustNegative") }
