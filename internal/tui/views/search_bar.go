package views

import (
	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/rivo/tview"
)

const (
	// SearchIcon is the label glyph shown before the query.
	SearchIcon = "⌕ "
	// SearchPlaceholder is shown while the query is empty.
	SearchPlaceholder = "Search posts..."
)

// SearchBar is the single-line query input above the post list.
type SearchBar struct {
	*tview.InputField
	theme    *ui.Theme
	onChange func(text string)
	quiet    bool
}

// NewSearchBar creates the query input.
func NewSearchBar(theme *ui.Theme) *SearchBar {
	input := tview.NewInputField().
		SetLabel(SearchIcon).
		SetPlaceholder(SearchPlaceholder)
	input.SetBorder(true)
	input.SetBorderColor(theme.BorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)
	input.SetPlaceholderTextColor(theme.CrumbInactiveBg)

	sb := &SearchBar{
		InputField: input,
		theme:      theme,
	}
	input.SetChangedFunc(func(text string) {
		if sb.quiet || sb.onChange == nil {
			return
		}
		sb.onChange(text)
	})
	input.SetFocusFunc(func() { input.SetBorderColor(theme.BorderFocusColor) })
	input.SetBlurFunc(func() { input.SetBorderColor(theme.BorderColor) })
	return sb
}

// SetOnChange sets the callback for user edits.
func (sb *SearchBar) SetOnChange(fn func(text string)) {
	sb.onChange = fn
}

// Sync replaces the displayed text without reporting it as a user edit.
func (sb *SearchBar) Sync(text string) {
	if sb.GetText() == text {
		return
	}
	sb.quiet = true
	sb.SetText(text)
	sb.quiet = false
}
