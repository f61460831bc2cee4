// Package posts holds the Post record, the title filter and the HTTP fetcher
// that loads the collection from the remote endpoint.
package posts

import (
	"fmt"
	"strings"
)

// Post is a single fetched content record.
type Post struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// NormalizedBody returns the body with every whitespace run collapsed to a
// single space and surrounding whitespace removed.
func (p Post) NormalizedBody() string {
	return CollapseWhitespace(p.Body)
}

// CollapseWhitespace replaces runs of whitespace with one space and trims.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wirePost mirrors Post with pointer fields so missing keys can be told
// apart from zero values.
type wirePost struct {
	ID     *int64  `json:"id"`
	UserID *int64  `json:"userId"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
}

func (w wirePost) toPost() (Post, error) {
	switch {
	case w.ID == nil:
		return Post{}, fmt.Errorf("missing id")
	case *w.ID <= 0:
		return Post{}, fmt.Errorf("id %d is not positive", *w.ID)
	case w.UserID == nil:
		return Post{}, fmt.Errorf("post %d: missing userId", *w.ID)
	case w.Title == nil:
		return Post{}, fmt.Errorf("post %d: missing title", *w.ID)
	case w.Body == nil:
		return Post{}, fmt.Errorf("post %d: missing body", *w.ID)
	}
	return Post{ID: *w.ID, UserID: *w.UserID, Title: *w.Title, Body: *w.Body}, nil
}
