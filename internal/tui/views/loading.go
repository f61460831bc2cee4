package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/rivo/tview"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Loading is the centered spinner shown while a fetch is in flight.
type Loading struct {
	*tview.TextView
	theme *ui.Theme
	anim  *animator
	frame int
}

// NewLoading creates a loading indicator.
func NewLoading(theme *ui.Theme, queue Queue) *Loading {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTitle(" Posts ")
	tv.SetTitleColor(theme.TitleColor)

	l := &Loading{
		TextView: tv,
		theme:    theme,
	}
	l.anim = newAnimator(80*time.Millisecond, queue, l.advance)
	l.render()
	return l
}

// Start begins spinning.
func (l *Loading) Start() {
	l.anim.start()
}

// Stop halts the spinner.
func (l *Loading) Stop() {
	l.anim.halt()
}

func (l *Loading) advance() {
	l.frame = (l.frame + 1) % len(spinnerFrames)
	l.render()
}

func (l *Loading) render() {
	l.Clear()
	_, _ = fmt.Fprintf(l, "\n\n[%s::b]%s[-:-:-] Loading posts...",
		ui.ColorName(l.theme.MenuKeyColor), spinnerFrames[l.frame])
}
