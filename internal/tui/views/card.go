package views

import (
	"strings"

	"github.com/matheus3301/posts/internal/posts"
	"github.com/rivo/uniseg"
)

const (
	ellipsis     = "…"
	bodyMaxLines = 3
	cardIndent   = 3
)

// Card is the rendered text of one post card, before color markup.
type Card struct {
	Title string
	Body  []string
}

// RenderCard lays out p for a list that is width cells wide. The title takes
// one line and the normalized body at most three.
func RenderCard(p posts.Post, width int) Card {
	inner := max(width-cardIndent, 1)
	return Card{
		Title: Truncate(sanitizeForTerminal(p.Title), inner),
		Body:  Wrap(sanitizeForTerminal(p.NormalizedBody()), inner, bodyMaxLines),
	}
}

// Truncate shortens s to at most width display cells, ending with an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return strings.TrimRight(sb.String(), " ") + ellipsis
}

// Wrap word-wraps s into lines of at most width cells. When the text needs
// more than maxLines lines, the last kept line ends with an ellipsis.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(s) {
		for _, chunk := range splitWidth(word, width) {
			w := uniseg.StringWidth(chunk)
			if lineWidth > 0 && lineWidth+1+w > width {
				flush()
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			line.WriteString(chunk)
			lineWidth += w
		}
	}
	if lineWidth > 0 {
		flush()
	}

	if len(lines) > maxLines {
		last := lines[maxLines-1] + " " + lines[maxLines]
		lines = lines[:maxLines]
		lines[maxLines-1] = Truncate(last, width)
	}
	return lines
}

// splitWidth breaks a single word wider than width into width-sized chunks.
func splitWidth(word string, width int) []string {
	if uniseg.StringWidth(word) <= width {
		return []string{word}
	}

	var chunks []string
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		w := g.Width()
		if used > 0 && used+w > width {
			chunks = append(chunks, sb.String())
			sb.Reset()
			used = 0
		}
		sb.WriteString(g.Str())
		used += w
	}
	if used > 0 {
		chunks = append(chunks, sb.String())
	}
	return chunks
}
