package views

import (
	"github.com/eringen/tourweb/blog"
	"github.com/eringen/tourweb/content"
)

// Site holds site-wide settings every page needs.
type Site struct {
	Name        string
	URL         string
	Description string
	Year        int
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string
}

// HomePage is the landing page.
type HomePage struct {
	Site        Site
	Meta        PageMeta
	Landing     content.Landing
	LatestPosts []content.BlogPost
	Pricing     PricingSection
}

// PricingSection is the public pricing grid.
type PricingSection struct {
	Plans    []content.PricingPlan
	Settings content.PricingSettings
	Columns  int
}

// BlogListPage is the searchable, paginated blog index.
type BlogListPage struct {
	Site       Site
	Meta       PageMeta
	Page       blog.Page
	Query      blog.Query
	Categories []string
}

// PostPage is a single blog post.
type PostPage struct {
	Site    Site
	Meta    PageMeta
	Post    content.BlogPost
	Related []content.BlogPost
}

// LegalPage is a rendered policy document.
type LegalPage struct {
	Site Site
	Meta PageMeta
	Doc  content.LegalPage
}

// ErrorPage backs the not-found and server-error pages.
type ErrorPage struct {
	Site Site
	Meta PageMeta
}

// Admin dashboard sections.
const (
	SectionBlog    = "blog"
	SectionPricing = "pricing"
)

// AdminPage is the admin dashboard with its blog and pricing tabs.
type AdminPage struct {
	Site      Site
	Meta      PageMeta
	Section   string
	Flashes   []string
	CSRFToken string
	Search    string
	Posts     []content.BlogPost
	Plans     []content.PricingPlan
	Settings  content.PricingSettings
	Preview   PricingSection
}

// PostForm is the blog post editor.
type PostForm struct {
	Site      Site
	Meta      PageMeta
	CSRFToken string
	Post      content.BlogPost
	IsNew     bool
	Errors    []string
}

// PlanForm is the pricing plan editor.
type PlanForm struct {
	Site      Site
	Meta      PageMeta
	CSRFToken string
	Plan      content.PricingPlan
	IsNew     bool
	Icons     []string
	Errors    []string
}

// SettingsForm is the pricing settings editor.
type SettingsForm struct {
	Site      Site
	Meta      PageMeta
	CSRFToken string
	Settings  content.PricingSettings
	Errors    []string
}

// Image is an uploaded file in the image library.
type Image struct {
	Filename   string
	URL        string
	Width      int
	Height     int
	Size       int64
	UploadedAt string
}

// ImagesPage is the admin image library.
type ImagesPage struct {
	Site      Site
	Meta      PageMeta
	CSRFToken string
	Flashes   []string
	Images    []Image
}
