package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
}

// Component is the lifecycle interface for pages pushed on the page stack.
// Start runs when the page becomes visible and Stop when it is hidden.
type Component interface {
	Name() string
	Start()
	Stop()
	Hints() []MenuHint
}
