package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/rivo/tview"
)

const (
	skeletonCards    = 6
	shimmerInterval  = 120 * time.Millisecond
	skeletonMaxWidth = 72
)

// Skeleton shows placeholder cards with a moving shimmer band while posts
// are being revealed.
type Skeleton struct {
	*tview.TextView
	theme *ui.Theme
	anim  *animator
	phase int
	width int
}

// NewSkeleton creates a skeleton view. queue is used by the shimmer ticker to
// redraw on the UI goroutine.
func NewSkeleton(theme *ui.Theme, queue Queue) *Skeleton {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTitle(" Posts ")
	tv.SetTitleColor(theme.TitleColor)

	s := &Skeleton{
		TextView: tv,
		theme:    theme,
		width:    skeletonMaxWidth,
	}
	s.anim = newAnimator(shimmerInterval, queue, s.advance)
	s.render()
	return s
}

// Start begins the shimmer animation.
func (s *Skeleton) Start() {
	s.anim.start()
}

// Stop halts the shimmer animation.
func (s *Skeleton) Stop() {
	s.anim.halt()
}

// Animating reports whether the shimmer ticker is running.
func (s *Skeleton) Animating() bool {
	return s.anim.running()
}

// Draw re-renders for the current width before drawing.
func (s *Skeleton) Draw(screen tcell.Screen) {
	_, _, w, _ := s.GetInnerRect()
	if w > 0 {
		if width := max(min(w-cardIndent, skeletonMaxWidth), 4); width != s.width {
			s.width = width
			s.render()
		}
	}
	s.TextView.Draw(screen)
}

func (s *Skeleton) advance() {
	s.phase++
	s.render()
}

func (s *Skeleton) render() {
	s.Clear()
	marker := ui.ColorName(s.theme.CardMarkerColor)
	for i := 0; i < skeletonCards; i++ {
		bars := []int{s.width * 2 / 3, s.width, s.width, s.width / 2}
		for j, w := range bars {
			shade := ui.ColorName(s.shade(i*len(bars) + j))
			_, _ = fmt.Fprintf(s, " [%s]▌[-] [%s]%s[-]\n", marker, shade, strings.Repeat("█", w))
		}
		_, _ = fmt.Fprintln(s)
	}
}

func (s *Skeleton) shade(row int) tcell.Color {
	shades := s.theme.SkeletonShades
	return shades[(row+s.phase)%len(shades)]
}
