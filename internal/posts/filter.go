package posts

import "strings"

// NormalizeQuery trims surrounding whitespace and lowercases q.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns the posts whose lowercased title contains the normalized
// query, in input order. An empty or whitespace-only query returns posts
// unchanged. Filter never modifies its input.
func Filter(posts []Post, query string) []Post {
	q := NormalizeQuery(query)
	if q == "" {
		return posts
	}
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}
