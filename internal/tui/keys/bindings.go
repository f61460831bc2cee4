// Package keys maps key events to named actions, per page and globally.
package keys

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/posts/internal/tui/ui"
)

// Action represents a keybinding action.
type Action struct {
	Name        string
	Key         tcell.Key
	Rune        rune
	Label       string
	Description string
	Handler     func()
	Visible     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	return a.matches(ev.Key(), ev.Rune())
}

func (a *Action) matches(key tcell.Key, r rune) bool {
	if a.Key != tcell.KeyRune {
		return key == a.Key
	}
	return key == tcell.KeyRune && r == a.Rune
}

// Registry holds keybindings organized by scope. Bindings keep their
// registration order so hints render in a stable order.
type Registry struct {
	global []*Action
	views  map[string][]*Action
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string][]*Action),
	}
}

// AddGlobal registers a global keybinding.
func (r *Registry) AddGlobal(action *Action) {
	r.global = append(r.global, action)
}

// AddView registers a view-specific keybinding. View bindings take
// precedence over global ones.
func (r *Registry) AddView(view string, action *Action) {
	r.views[view] = append(r.views[view], action)
}

// Hints returns visible keybindings for a view, view bindings first.
func (r *Registry) Hints(view string) []ui.MenuHint {
	var hints []ui.MenuHint
	for _, a := range r.views[view] {
		if a.Visible {
			hints = append(hints, ui.MenuHint{Key: a.Label, Description: a.Description})
		}
	}
	for _, a := range r.global {
		if a.Visible {
			hints = append(hints, ui.MenuHint{Key: a.Label, Description: a.Description})
		}
	}
	return hints
}

// HandleEvent dispatches a key event to the matching action in the given
// view. Returns true if a handler matched.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	return r.Dispatch(view, ev.Key(), ev.Rune())
}

// Dispatch is HandleEvent for a decoded key.
func (r *Registry) Dispatch(view string, key tcell.Key, ch rune) bool {
	if a := r.lookup(view, key, ch); a != nil {
		a.Handler()
		return true
	}
	return false
}

func (r *Registry) lookup(view string, key tcell.Key, ch rune) *Action {
	for _, a := range r.views[view] {
		if a.matches(key, ch) {
			return a
		}
	}
	for _, a := range r.global {
		if a.matches(key, ch) {
			return a
		}
	}
	return nil
}
