package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/matheus3301/posts/internal/tui/ui"
)

func TestDispatchPrefersViewBindings(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.AddGlobal(&Action{Name: "quit", Key: tcell.KeyRune, Rune: 'q', Handler: func() { got = append(got, "global-q") }})
	r.AddView("post", &Action{Name: "back", Key: tcell.KeyRune, Rune: 'q', Handler: func() { got = append(got, "view-q") }})
	r.AddGlobal(&Action{Name: "back", Key: tcell.KeyEscape, Handler: func() { got = append(got, "esc") }})

	if !r.Dispatch("post", tcell.KeyRune, 'q') {
		t.Fatal("q in post view should match")
	}
	if !r.Dispatch("posts", tcell.KeyRune, 'q') {
		t.Fatal("q in posts view should match the global binding")
	}
	if !r.Dispatch("posts", tcell.KeyEscape, 0) {
		t.Fatal("Esc should match")
	}
	if r.Dispatch("posts", tcell.KeyRune, 'z') {
		t.Error("z should not match")
	}
	if r.Dispatch("posts", tcell.KeyRune, 0) {
		t.Error("an empty rune should not match the Esc binding")
	}

	want := []string{"view-q", "global-q", "esc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("handlers mismatch (-want +got):\n%s", diff)
	}
}

func TestHintsOrder(t *testing.T) {
	r := NewRegistry()
	noop := func() {}
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: '?', Label: "?", Description: "Help", Visible: true, Handler: noop})
	r.AddGlobal(&Action{Key: tcell.KeyCtrlC, Label: "Ctrl-C", Description: "Quit", Handler: noop})
	r.AddView("posts", &Action{Key: tcell.KeyRune, Rune: 'r', Label: "r", Description: "Retry", Visible: true, Handler: noop})
	r.AddView("posts", &Action{Key: tcell.KeyRune, Rune: '/', Label: "/", Description: "Search", Visible: true, Handler: noop})

	want := []ui.MenuHint{
		{Key: "r", Description: "Retry"},
		{Key: "/", Description: "Search"},
		{Key: "?", Description: "Help"},
	}
	if diff := cmp.Diff(want, r.Hints("posts")); diff != "" {
		t.Errorf("Hints() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[2:], r.Hints("help")); diff != "" {
		t.Errorf("Hints(help) mismatch (-want +got):\n%s", diff)
	}
}
