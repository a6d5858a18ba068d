package blog

import (
	"strings"

	"github.com/eringen/tourweb/content"
)

// PageSize is the number of posts per blog list page.
const PageSize = 6

// AllCategories is the category filter value that matches every post.
const AllCategories = "All"

// Query is the public list filter: free-text search plus a category.
type Query struct {
	Search   string
	Category string
}

// Filter returns the posts whose title or summary contains q.Search
// (case-insensitive) and whose category equals q.Category. An empty
// category or AllCategories matches every post.
func Filter(posts []content.BlogPost, q Query) []content.BlogPost {
	term := strings.ToLower(q.Search)
	out := []content.BlogPost{}
	for _, p := range posts {
		matchesSearch := strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Summary), term)
		matchesCategory := q.Category == "" || q.Category == AllCategories || p.Category == q.Category
		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}

// AdminFilter returns the posts whose title or author contains term
// (case-insensitive).
func AdminFilter(posts []content.BlogPost, term string) []content.BlogPost {
	term = strings.ToLower(term)
	out := []content.BlogPost{}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Author), term) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns AllCategories followed by each distinct category in
// order of first appearance.
func Categories(posts []content.BlogPost) []string {
	out := []string{AllCategories}
	seen := map[string]struct{}{AllCategories: {}}
	for _, p := range posts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Page is one page of a paginated post list.
type Page struct {
	Posts      []content.BlogPost
	Number     int // 1-based
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Numbers lists every page number, for pagination links.
func (p Page) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Paginate returns page number (1-based) of posts, perPage at a time.
// Pages outside 1..TotalPages are empty.
func Paginate(posts []content.BlogPost, number, perPage int) Page {
	if perPage < 1 {
		perPage = PageSize
	}
	total := (len(posts) + perPage - 1) / perPage
	page := Page{Posts: []content.BlogPost{}, Number: number, TotalPages: total}
	if number < 1 || number > total {
		return page
	}
	start := (number - 1) * perPage
	end := min(start+perPage, len(posts))
	page.Posts = posts[start:end]
	return page
}

// Latest returns the first n posts in stored order.
func Latest(posts []content.BlogPost, n int) []content.BlogPost {
	n = max(0, min(n, len(posts)))
	return posts[:n]
}

// Paragraphs splits post content into its newline-delimited paragraphs.
func Paragraphs(body string) []string {
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}
