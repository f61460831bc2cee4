package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/rivo/tview"
	"github.com/skip2/go-qrcode"
)

// PostDetail shows one post in full with a QR code of its URL.
type PostDetail struct {
	*tview.TextView
	theme    *ui.Theme
	endpoint string
	post     posts.Post
}

// NewPostDetail creates the detail page. endpoint is the collection URL the
// post was fetched from.
func NewPostDetail(theme *ui.Theme, endpoint string) *PostDetail {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.CardBodyColor)
	tv.SetTitleColor(theme.TitleColor)

	return &PostDetail{
		TextView: tv,
		theme:    theme,
		endpoint: endpoint,
	}
}

// Name implements Component.
func (pd *PostDetail) Name() string { return "Post" }

// Start implements Component.
func (pd *PostDetail) Start() {}

// Stop implements Component.
func (pd *PostDetail) Stop() {}

// Hints implements Component.
func (pd *PostDetail) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "j/k", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// Show renders p.
func (pd *PostDetail) Show(p posts.Post) {
	pd.post = p
	pd.Clear()
	pd.SetTitle(fmt.Sprintf(" Post #%d ", p.ID))
	pd.ScrollToBeginning()

	titleColor := ui.ColorName(pd.theme.CardTitleColor)
	metaColor := ui.ColorName(pd.theme.CounterColor)
	url := Permalink(pd.endpoint, p.ID)

	_, _ = fmt.Fprintf(pd, "\n [%s::b]%s[-:-:-]\n", titleColor, tview.Escape(sanitizeForTerminal(p.Title)))
	_, _ = fmt.Fprintf(pd, " [%s]user %d · post %d[-]\n\n", metaColor, p.UserID, p.ID)
	_, _ = fmt.Fprintf(pd, " %s\n\n", tview.Escape(sanitizeForTerminal(p.NormalizedBody())))
	_, _ = fmt.Fprintf(pd, " [%s]%s[-]\n\n", metaColor, tview.Escape(url))
	_, _ = fmt.Fprint(pd, renderQR(url))
}

// Post returns the post being shown.
func (pd *PostDetail) Post() posts.Post {
	return pd.post
}

// Permalink returns the URL of a single post under the collection endpoint.
func Permalink(endpoint string, id int64) string {
	return strings.TrimRight(endpoint, "/") + "/" + strconv.FormatInt(id, 10)
}

// renderQR draws content as a QR code using half-block characters, two
// bitmap rows per text line.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "  (QR generation failed: " + err.Error() + ")"
	}

	bitmap := qr.Bitmap()
	rows := len(bitmap)
	cols := 0
	if rows > 0 {
		cols = len(bitmap[0])
	}

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		sb.WriteString("  ")
		for x := 0; x < cols; x++ {
			top := bitmap[y][x]
			bot := y+1 < rows && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
