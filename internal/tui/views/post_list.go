package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/rivo/tview"
)

// EmptyText is shown when the filtered list has no posts.
const EmptyText = "No posts found!"

const defaultListWidth = 80

// PostList renders posts as cards and tracks a selected card.
type PostList struct {
	*tview.TextView
	theme    *ui.Theme
	posts    []posts.Post
	selected int
	width    int
	onOpen   func(p posts.Post)
}

// NewPostList creates an empty post list.
func NewPostList(theme *ui.Theme) *PostList {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTitle(" Posts ")
	tv.SetTitleColor(theme.TitleColor)

	pl := &PostList{
		TextView: tv,
		theme:    theme,
	}
	tv.SetInputCapture(pl.handleKey)
	tv.SetFocusFunc(func() { tv.SetBorderColor(theme.BorderFocusColor) })
	tv.SetBlurFunc(func() { tv.SetBorderColor(theme.BorderColor) })
	pl.render()
	return pl
}

// SetOnOpen sets the callback for Enter on a card.
func (pl *PostList) SetOnOpen(fn func(p posts.Post)) {
	pl.onOpen = fn
}

// Update replaces the displayed posts. The selection follows the previously
// selected post when it is still visible.
func (pl *PostList) Update(ps []posts.Post) {
	var prev int64
	if p, ok := pl.Selected(); ok {
		prev = p.ID
	}
	pl.posts = ps
	pl.selected = 0
	for i, p := range ps {
		if p.ID == prev {
			pl.selected = i
			break
		}
	}
	pl.render()
}

// Len returns the number of displayed posts.
func (pl *PostList) Len() int {
	return len(pl.posts)
}

// Selected returns the selected post.
func (pl *PostList) Selected() (posts.Post, bool) {
	if pl.selected < 0 || pl.selected >= len(pl.posts) {
		return posts.Post{}, false
	}
	return pl.posts[pl.selected], true
}

// Move shifts the selection by delta cards, clamped to the list.
func (pl *PostList) Move(delta int) {
	if len(pl.posts) == 0 {
		return
	}
	pl.Select(pl.selected + delta)
}

// Select selects the card at index i, clamped to the list.
func (pl *PostList) Select(i int) {
	if len(pl.posts) == 0 {
		return
	}
	pl.selected = max(0, min(i, len(pl.posts)-1))
	pl.highlight()
}

// Open runs the open callback for the selected post.
func (pl *PostList) Open() {
	if p, ok := pl.Selected(); ok && pl.onOpen != nil {
		pl.onOpen(p)
	}
}

// Draw re-renders when the available width changes so titles and bodies
// are truncated to fit.
func (pl *PostList) Draw(screen tcell.Screen) {
	_, _, w, _ := pl.GetInnerRect()
	if w > 0 && w != pl.width {
		pl.width = w
		pl.render()
	}
	pl.TextView.Draw(screen)
}

func (pl *PostList) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyDown:
		pl.Move(1)
		return nil
	case tcell.KeyUp:
		pl.Move(-1)
		return nil
	case tcell.KeyHome:
		pl.Select(0)
		return nil
	case tcell.KeyEnd:
		pl.Select(len(pl.posts) - 1)
		return nil
	case tcell.KeyEnter:
		pl.Open()
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			pl.Move(1)
			return nil
		case 'k':
			pl.Move(-1)
			return nil
		case 'g':
			pl.Select(0)
			return nil
		case 'G':
			pl.Select(len(pl.posts) - 1)
			return nil
		}
	}
	return ev
}

func (pl *PostList) render() {
	pl.Clear()
	if len(pl.posts) == 0 {
		pl.SetTextAlign(tview.AlignCenter)
		_, _ = fmt.Fprintf(pl, "\n\n[%s]%s[-]", ui.ColorName(pl.theme.EmptyColor), EmptyText)
		pl.Highlight()
		return
	}

	pl.SetTextAlign(tview.AlignLeft)
	width := pl.width
	if width <= 0 {
		width = defaultListWidth
	}
	_, _ = fmt.Fprint(pl, FormatCards(pl.posts, width, pl.theme))
	pl.highlight()
}

func (pl *PostList) highlight() {
	pl.Highlight(regionID(pl.selected))
	pl.ScrollToHighlight()
}

// FormatCards renders cards as tview markup with one region per card.
func FormatCards(ps []posts.Post, width int, theme *ui.Theme) string {
	marker := ui.ColorName(theme.CardMarkerColor)
	title := ui.ColorName(theme.CardTitleColor)
	body := ui.ColorName(theme.CardBodyColor)

	var sb strings.Builder
	for i, p := range ps {
		card := RenderCard(p, width)
		fmt.Fprintf(&sb, `["%s"]`, regionID(i))
		fmt.Fprintf(&sb, " [%s]▌[-] [%s::b]%s[-:-:-]\n", marker, title, tview.Escape(card.Title))
		for _, line := range card.Body {
			fmt.Fprintf(&sb, " [%s]▌[-] [%s]%s[-]\n", marker, body, tview.Escape(line))
		}
		sb.WriteString(`[""]`)
		sb.WriteString("\n")
	}
	return sb.String()
}

func regionID(i int) string {
	return "post-" + strconv.Itoa(i)
}
