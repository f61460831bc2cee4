package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Logo displays a compact ASCII art logo.
type Logo struct {
	*tview.TextView
	theme *Theme
}

// NewLogo creates a new logo component.
func NewLogo(theme *Theme) *Logo {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 0)

	l := &Logo{
		TextView: tv,
		theme:    theme,
	}
	titleColor := ColorName(theme.TitleColor)
	_, _ = fmt.Fprintf(l,
		"[%s::b]╔═╗╔═╗╔═╗╔╦╗╔═╗[-:-:-]\n"+
			"[%s::b]╠═╝║ ║╚═╗ ║ ╚═╗[-:-:-]\n"+
			"[%s::b]╩  ╚═╝╚═╝ ╩ ╚═╝[-:-:-]",
		titleColor, titleColor, titleColor,
	)
	return l
}

// FeedData holds the header information about the loaded feed.
type FeedData struct {
	Profile  string
	Endpoint string
	State    string
	Visible  int
	Total    int
	Query    string
}

// FeedInfo displays feed metadata in the header.
type FeedInfo struct {
	*tview.TextView
	theme *Theme
}

// NewFeedInfo creates a new feed info panel.
func NewFeedInfo(theme *Theme) *FeedInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &FeedInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the feed info.
func (fi *FeedInfo) Update(data FeedData) {
	fi.Clear()

	fgColor := ColorName(fi.theme.FgColor)
	counterColor := ColorName(fi.theme.CounterColor)

	query := data.Query
	if query == "" {
		query = "-"
	}

	_, _ = fmt.Fprintf(fi,
		"[%s::b]Profile:[-:-:-]  [%s]%s[-]   [%s::b]State:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]Endpoint:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]Posts:[-:-:-]    [%s]%d/%d[-]   [%s::b]Query:[-:-:-] [%s]%s[-]",
		fgColor, counterColor, tview.Escape(data.Profile),
		fgColor, counterColor, data.State,
		fgColor, counterColor, tview.Escape(data.Endpoint),
		fgColor, counterColor, data.Visible, data.Total,
		fgColor, counterColor, tview.Escape(query),
	)
}
