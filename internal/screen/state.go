package screen

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/posts/internal/bus"
)

// State is the list-area state of the screen.
type State string

const (
	Idle            State = "IDLE"
	Loading         State = "LOADING"
	SkeletonDisplay State = "SKELETON"
	Content         State = "CONTENT"
)

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	Idle:            {Loading},
	Loading:         {Loading, SkeletonDisplay, Content},
	SkeletonDisplay: {Content, Loading},
	Content:         {Loading},
}

// Machine tracks and enforces screen state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Idle.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Idle,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Emit(EventStateChanged, StateChange{From: from, To: to})
	return nil
}

// StateChange is the payload for state change events.
type StateChange struct {
	From State
	To   State
}

// Mode is the three-way render decision for the list area.
type Mode int

const (
	ModeLoading Mode = iota
	ModeSkeleton
	ModeContent
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeSkeleton:
		return "skeleton"
	default:
		return "content"
	}
}

// ResolveMode picks what the list area shows. Loading takes priority over
// the skeleton, and the skeleton over the real list.
func ResolveMode(loading, skeletonActive bool) Mode {
	switch {
	case loading:
		return ModeLoading
	case skeletonActive:
		return ModeSkeleton
	default:
		return ModeContent
	}
}
