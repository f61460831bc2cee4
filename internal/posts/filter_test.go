package posts

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sample = []Post{
	{ID: 1, UserID: 1, Title: "Hello World", Body: "first"},
	{ID: 2, UserID: 1, Title: "Goodbye", Body: "second"},
	{ID: 3, UserID: 2, Title: "qui est esse", Body: "third"},
	{ID: 4, UserID: 2, Title: "HELLO again", Body: "fourth"},
	{ID: 5, UserID: 3, Title: "ea molestias quasi", Body: "fifth"},
}

var queries = []string{"", "   ", "hello", "HELLO", "Hello World", "o", "qui", "  esse ", "zzz", "ea m"}

func TestFilterScenario(t *testing.T) {
	posts := []Post{
		{ID: 1, Title: "Hello World"},
		{ID: 2, Title: "Goodbye"},
	}
	got := Filter(posts, "hello")
	want := []Post{{ID: 1, Title: "Hello World"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n  "} {
		got := Filter(sample, q)
		if diff := cmp.Diff(sample, got); diff != "" {
			t.Errorf("Filter(%q) changed the list (-want +got):\n%s", q, diff)
		}
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	for _, q := range queries {
		got := Filter(sample, q)
		i := 0
		for _, p := range got {
			for i < len(sample) && sample[i].ID != p.ID {
				i++
			}
			if i == len(sample) {
				t.Fatalf("Filter(%q) = %v is not an ordered subsequence", q, got)
			}
			i++
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	for _, q := range queries {
		base := Filter(sample, q)
		if diff := cmp.Diff(base, Filter(sample, strings.ToUpper(q))); diff != "" {
			t.Errorf("upper %q differs:\n%s", q, diff)
		}
		if diff := cmp.Diff(base, Filter(sample, strings.ToLower(q))); diff != "" {
			t.Errorf("lower %q differs:\n%s", q, diff)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	for _, q := range queries {
		once := Filter(sample, q)
		twice := Filter(once, q)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Filter(Filter(P, %q)) differs:\n%s", q, diff)
		}
	}
}

func TestFilterMatchesTitleOnly(t *testing.T) {
	got := Filter(sample, "fourth")
	if len(got) != 0 {
		t.Errorf("Filter matched body text: %v", got)
	}
}

func TestFilterTrimsQuery(t *testing.T) {
	got := Filter(sample, "  esse ")
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Filter(\"  esse \") = %v, want post 3", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := append([]Post(nil), sample...)
	_ = Filter(in, "hello")
	if diff := cmp.Diff(sample, in); diff != "" {
		t.Errorf("input mutated:\n%s", diff)
	}
}

func TestFilterNilInput(t *testing.T) {
	if got := Filter(nil, "x"); len(got) != 0 {
		t.Errorf("Filter(nil) = %v", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"line one\nline two", "line one line two"},
		{"tabs\t\tand \n\n newlines", "tabs and newlines"},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	p := Post{Body: "quia et suscipit\nsuscipit recusandae"}
	if got := p.NormalizedBody(); got != "quia et suscipit suscipit recusandae" {
		t.Errorf("NormalizedBody() = %q", got)
	}
}
