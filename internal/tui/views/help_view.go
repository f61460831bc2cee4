package views

import (
	"fmt"

	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	hv.render()
	return hv
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Start implements Component.
func (hv *HelpView) Start() {}

// Stop implements Component.
func (hv *HelpView) Stop() {}

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (hv *HelpView) render() {
	kc := ui.ColorName(hv.theme.MenuKeyColor)

	_, _ = fmt.Fprintf(hv, `
  [::b]Global Keys[-:-:-]

  [%[1]s]:[-:-:-]      Command mode        [%[1]s]Esc[-:-:-]    Go back
  [%[1]s]?[-:-:-]      Help                [%[1]s]q[-:-:-]      Quit / Back
  [%[1]s]Ctrl-R[-:-:-] Retry fetch         [%[1]s]Ctrl-C[-:-:-] Quit immediately

  [::b]Post List[-:-:-]

  [%[1]s]/[-:-:-]      Focus search        [%[1]s]Enter[-:-:-]  Open post
  [%[1]s]j/Down[-:-:-] Move down           [%[1]s]k/Up[-:-:-]   Move up
  [%[1]s]g/Home[-:-:-] First post          [%[1]s]G/End[-:-:-]  Last post
  [%[1]s]r[-:-:-]      Retry after error   [%[1]s]x[-:-:-]      Dismiss error

  [::b]Search[-:-:-]

  [%[1]s]Enter[-:-:-]  Back to list        [%[1]s]Esc[-:-:-]    Back to list
  Typing filters posts by title. The query is kept between runs.

  [::b]Commands (: mode)[-:-:-]

  [%[1]s]:retry[-:-:-] / [%[1]s]:r[-:-:-]        Fetch posts again
  [%[1]s]:dismiss[-:-:-]            Hide the error bar
  [%[1]s]:clear[-:-:-]              Clear the search query
  [%[1]s]:open <id>[-:-:-]          Open a post by id
  [%[1]s]:help[-:-:-] / [%[1]s]:h[-:-:-]         Show this help
  [%[1]s]:quit[-:-:-] / [%[1]s]:q[-:-:-]         Quit application
`, kc)
}

var (
	_ ui.Component = (*HelpView)(nil)
	_ ui.Component = (*PostDetail)(nil)
)
