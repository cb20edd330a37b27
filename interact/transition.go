package interact

import "github.com/gogpu/viz/interp"

// TransitionState is the lifecycle phase of a transition.
type TransitionState uint8

const (
	// Pending waits out the configured delay.
	Pending TransitionState = iota
	// Active is advancing between 0 and 1.
	Active
	// Ended reached 1 and fired its completion callback.
	Ended
	// Interrupted was cut short; its value is frozen where it stopped.
	Interrupted
)

// Transition drives a single eased 0-to-1 progression over wall time.
// Times are milliseconds.
type Transition struct {
	delay    float64
	duration float64
	easing   func(float64) float64

	onStart     func()
	onEnd       func()
	onInterrupt func()

	state   TransitionState
	elapsed float64
	value   float64
}

// NewTransition builds a transition with the given delay and duration
// in milliseconds. A nil easing means linear.
func NewTransition(delay, duration float64, easing func(float64) float64) *Transition {
	if easing == nil {
		easing = interp.EaseLinear
	}
	if duration <= 0 {
		duration = 1
	}
	return &Transition{delay: delay, duration: duration, easing: easing}
}

// OnStart registers a callback fired when the delay elapses.
func (t *Transition) OnStart(fn func()) *Transition { t.onStart = fn; return t }

// OnEnd registers a callback fired on natural completion.
func (t *Transition) OnEnd(fn func()) *Transition { t.onEnd = fn; return t }

// OnInterrupt registers a callback fired when cut short.
func (t *Transition) OnInterrupt(fn func()) *Transition { t.onInterrupt = fn; return t }

// State returns the lifecycle phase.
func (t *Transition) State() TransitionState { return t.state }

// Value returns the last computed eased value.
func (t *Transition) Value() float64 { return t.value }

// Tick advances the transition by dt milliseconds and returns the
// eased value in [0, 1]. Finished transitions hold their final value.
func (t *Transition) Tick(dt float64) float64 {
	switch t.state {
	case Ended:
		return t.value
	case Interrupted:
		return t.value
	}
	t.elapsed += dt
	if t.elapsed < t.delay {
		return t.value
	}
	if t.state == Pending {
		t.state = Active
		if t.onStart != nil {
			t.onStart()
		}
	}
	progress := (t.elapsed - t.delay) / t.duration
	if progress >= 1 {
		progress = 1
	}
	t.value = t.easing(progress)
	if progress >= 1 {
		t.state = Ended
		if t.onEnd != nil {
			t.onEnd()
		}
	}
	return t.value
}

// Interrupt stops the transition where it is. Interrupting an already
// ended transition is a no-op.
func (t *Transition) Interrupt() {
	if t.state == Ended || t.state == Interrupted {
		return
	}
	t.state = Interrupted
	if t.onInterrupt != nil {
		t.onInterrupt()
	}
}

// Manager holds named transitions. Adding a name that is already
// present interrupts the existing transition first, matching the
// replace-on-retarget behavior of selection transitions.
type Manager struct {
	transitions map[string]*Transition
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{transitions: make(map[string]*Transition)}
}

// Add registers a transition under the name.
func (m *Manager) Add(name string, t *Transition) {
	if existing, ok := m.transitions[name]; ok {
		existing.Interrupt()
	}
	m.transitions[name] = t
}

// Get returns the named transition.
func (m *Manager) Get(name string) (*Transition, bool) {
	t, ok := m.transitions[name]
	return t, ok
}

// Tick advances every transition and returns the current values by
// name.
func (m *Manager) Tick(dt float64) map[string]float64 {
	out := make(map[string]float64, len(m.transitions))
	for name, t := range m.transitions {
		out[name] = t.Tick(dt)
	}
	return out
}

// Prune drops transitions that have ended or were interrupted.
func (m *Manager) Prune() {
	for name, t := range m.transitions {
		if t.state == Ended || t.state == Interrupted {
			delete(m.transitions, name)
		}
	}
}

// Len returns the number of held transitions.
func (m *Manager) Len() int { return len(m.transitions) }
