package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrorBar is a one-line banner that shows the current error message with
// RETRY and, when a dismiss handler is set, DISMISS actions. It takes no
// space while there is no message.
type ErrorBar struct {
	*tview.TextView
	theme     *Theme
	message   string
	onRetry   func()
	onDismiss func()
	onResize  func(height int)
	// clicked is set once an action region fired; the highlight is cleared
	// on the next draw so the same action can be clicked again.
	clicked bool
}

// NewErrorBar creates a hidden error bar.
func NewErrorBar(theme *Theme) *ErrorBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true)
	tv.SetBackgroundColor(theme.ErrorBarBg)
	tv.SetTextColor(theme.ErrorBarFg)

	eb := &ErrorBar{
		TextView: tv,
		theme:    theme,
	}
	tv.SetHighlightedFunc(func(added, _, _ []string) {
		if len(added) == 0 {
			return
		}
		eb.activate(added[0])
	})
	return eb
}

// SetOnRetry sets the RETRY handler.
func (eb *ErrorBar) SetOnRetry(fn func()) {
	eb.onRetry = fn
	eb.render()
}

// SetOnDismiss sets the DISMISS handler. Without one the action is hidden.
func (eb *ErrorBar) SetOnDismiss(fn func()) {
	eb.onDismiss = fn
	eb.render()
}

// SetOnResize sets the callback used to grow or collapse the bar's slot in
// its parent layout.
func (eb *ErrorBar) SetOnResize(fn func(height int)) {
	eb.onResize = fn
}

// Show displays msg. An empty msg hides the bar.
func (eb *ErrorBar) Show(msg string) {
	if msg == eb.message {
		return
	}
	eb.message = msg
	eb.render()
	if eb.onResize != nil {
		eb.onResize(eb.Height())
	}
}

// Message returns the message being displayed.
func (eb *ErrorBar) Message() string {
	return eb.message
}

// Visible reports whether the bar is showing a message.
func (eb *ErrorBar) Visible() bool {
	return eb.message != ""
}

// Height returns the number of rows the bar needs.
func (eb *ErrorBar) Height() int {
	if eb.Visible() {
		return 1
	}
	return 0
}

// Actions returns the action labels currently offered.
func (eb *ErrorBar) Actions() []string {
	if !eb.Visible() {
		return nil
	}
	actions := []string{"RETRY"}
	if eb.onDismiss != nil {
		actions = append(actions, "DISMISS")
	}
	return actions
}

// Retry runs the RETRY handler if the bar is visible.
func (eb *ErrorBar) Retry() {
	if eb.Visible() && eb.onRetry != nil {
		eb.onRetry()
	}
}

// Dismiss runs the DISMISS handler if the bar is visible and one is set.
func (eb *ErrorBar) Dismiss() {
	if eb.Visible() && eb.onDismiss != nil {
		eb.onDismiss()
	}
}

func (eb *ErrorBar) activate(region string) {
	switch region {
	case "retry":
		eb.Retry()
	case "dismiss":
		eb.Dismiss()
	}
	eb.clicked = true
}

// Draw clears the highlight left by a click before drawing.
func (eb *ErrorBar) Draw(screen tcell.Screen) {
	if eb.clicked {
		eb.clicked = false
		eb.Highlight()
	}
	eb.TextView.Draw(screen)
}

func (eb *ErrorBar) render() {
	eb.Clear()
	if eb.message == "" {
		eb.Highlight()
		return
	}
	fg := ColorName(eb.theme.ErrorBarFg)
	bg := ColorName(eb.theme.ErrorActionBg)
	_, _ = fmt.Fprintf(eb, " %s ", tview.Escape(eb.message))
	for _, a := range eb.Actions() {
		_, _ = fmt.Fprintf(eb, ` [%s:%s:b]["%s"] %s [""][-:-:-]`, fg, bg, regionFor(a), a)
	}
}

func regionFor(action string) string {
	if action == "DISMISS" {
		return "dismiss"
	}
	return "retry"
}
