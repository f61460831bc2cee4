package screen

import (
	"testing"

	"github.com/matheus3301/posts/internal/bus"
)

func TestInitialState(t *testing.T) {
	m := NewMachine(nil)
	if m.Current() != Idle {
		t.Errorf("initial state = %s, want IDLE", m.Current())
	}
}

func TestValidTransitions(t *testing.T) {
	tests := []struct {
		path []State
	}{
		{[]State{Loading}},
		{[]State{Loading, Loading}},
		{[]State{Loading, SkeletonDisplay, Content}},
		{[]State{Loading, Content}},
		{[]State{Loading, SkeletonDisplay, Loading}},
		{[]State{Loading, Content, Loading, SkeletonDisplay}},
	}
	for _, tt := range tests {
		m := NewMachine(nil)
		for _, to := range tt.path {
			if err := m.Transition(to); err != nil {
				t.Fatalf("path %v: Transition(%s) error = %v", tt.path, to, err)
			}
		}
		if got, want := m.Current(), tt.path[len(tt.path)-1]; got != want {
			t.Errorf("path %v: state = %s, want %s", tt.path, got, want)
		}
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		walk []State
		to   State
	}{
		{"idle to content", nil, Content},
		{"idle to skeleton", nil, SkeletonDisplay},
		{"content to skeleton", []State{Loading, Content}, SkeletonDisplay},
		{"skeleton to skeleton", []State{Loading, SkeletonDisplay}, SkeletonDisplay},
		{"back to idle", []State{Loading}, Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(nil)
			for _, s := range tt.walk {
				if err := m.Transition(s); err != nil {
					t.Fatal(err)
				}
			}
			before := m.Current()
			if err := m.Transition(tt.to); err == nil {
				t.Errorf("Transition(%s -> %s) should fail", before, tt.to)
			}
			if m.Current() != before {
				t.Errorf("state changed to %s on invalid transition", m.Current())
			}
		})
	}
}

func TestTransitionEmitsEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("screen.", 10)
	defer unsub()

	m := NewMachine(b)
	if err := m.Transition(Loading); err != nil {
		t.Fatal(err)
	}

	evt := <-ch
	if evt.Kind != EventStateChanged {
		t.Errorf("event kind = %q, want %s", evt.Kind, EventStateChanged)
	}
	change, ok := evt.Payload.(StateChange)
	if !ok {
		t.Fatalf("payload type = %T, want StateChange", evt.Payload)
	}
	if change.From != Idle || change.To != Loading {
		t.Errorf("change = %v -> %v, want IDLE -> LOADING", change.From, change.To)
	}
}

func TestResolveModePrecedence(t *testing.T) {
	tests := []struct {
		loading, skeleton bool
		want              Mode
	}{
		{true, true, ModeLoading},
		{true, false, ModeLoading},
		{false, true, ModeSkeleton},
		{false, false, ModeContent},
	}
	for _, tt := range tests {
		if got := ResolveMode(tt.loading, tt.skeleton); got != tt.want {
			t.Errorf("ResolveMode(%v, %v) = %s, want %s", tt.loading, tt.skeleton, got, tt.want)
		}
	}
}
