package project

// State is a phase of a generation run.
type State int

const (
	StateIdle State = iota
	StateProvisioning
	StateGenerating
	StateResolving
	StateInstalling
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateIdle:         "idle",
	StateProvisioning: "provisioning",
	StateGenerating:   "generating",
	StateResolving:    "resolving",
	StateInstalling:   "installing",
	StateDone:         "done",
	StateFailed:       "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Reporter observes state transitions. Calls happen on the goroutine
// running the orchestrator, in order.
type Reporter interface {
	Transition(from, to State)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(from, to State)

// Transition calls f(from, to).
func (f ReporterFunc) Transition(from, to State) { f(from, to) }

type nopReporter struct{}

func (nopReporter) Transition(State, State) {}
