// Package views renders tourweb's pages as templ components.
//
// Pages are html/template files embedded from templates/, each parsed on
// top of the shared layout and exposed through templ.FromGoHTML so the
// handlers deal only in templ.Component values.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/tourweb/blog"
	"github.com/eringen/tourweb/content"
	"github.com/eringen/tourweb/pricing"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"joinTags":     JoinTags,
	"joinLines":    func(lines []string) string { return strings.Join(lines, "\n") },
	"formatDate":   FormatDate,
	"paragraphs":   blog.Paragraphs,
	"ctaLabel":     pricing.CTALabel,
	"features":     pricing.Features,
	"featureLimit": pricing.FeatureLimit,
	"planIcon":     content.IconOrDefault,
	"gridClass":    func(cols int) string { return "grid-cols-" + strconv.Itoa(cols) },
	"buttonClass":  ButtonClass,
	"pageURL":      PageURL,
	"pathEscape":   url.PathEscape,
	// Legal pages are rendered from embedded Markdown only.
	"trustedHTML": func(s string) template.HTML { return template.HTML(s) },
	"jsonLD":      func(s string) template.JS { return template.JS(s) },
	"add":         func(a, b int) int { return a + b },
	"sub":         func(a, b int) int { return a - b },
}

var pages = map[string]*template.Template{}

func init() {
	base := template.Must(template.New("layout.html").Funcs(funcs).
		ParseFS(templatesFS, "templates/layout.html", "templates/partials.html"))
	for _, name := range []string{
		"home.html", "blog_list.html", "post.html", "legal.html",
		"not_found.html", "server_error.html",
		"admin.html", "admin_post_form.html", "admin_plan_form.html",
		"admin_settings.html", "admin_images.html",
	} {
		pages[name] = template.Must(template.Must(base.Clone()).ParseFS(templatesFS, "templates/"+name))
	}
}

func page(name string, data any) templ.Component {
	t, ok := pages[name]
	if !ok {
		panic(fmt.Sprintf("views: unknown page %q", name))
	}
	return templ.FromGoHTML(t, data)
}

// Home renders the landing page.
func Home(p HomePage) templ.Component { return page("home.html", p) }

// BlogList renders the blog index.
func BlogList(p BlogListPage) templ.Component { return page("blog_list.html", p) }

// Post renders a single blog post.
func Post(p PostPage) templ.Component { return page("post.html", p) }

// Legal renders a policy page.
func Legal(p LegalPage) templ.Component { return page("legal.html", p) }

// NotFound renders the 404 page.
func NotFound(p ErrorPage) templ.Component { return page("not_found.html", p) }

// ServerError renders the 5xx page.
func ServerError(p ErrorPage) templ.Component { return page("server_error.html", p) }

// Admin renders the admin dashboard.
func Admin(p AdminPage) templ.Component { return page("admin.html", p) }

// AdminPostForm renders the blog post editor.
func AdminPostForm(p PostForm) templ.Component { return page("admin_post_form.html", p) }

// AdminPlanForm renders the pricing plan editor.
func AdminPlanForm(p PlanForm) templ.Component { return page("admin_plan_form.html", p) }

// AdminSettings renders the pricing settings editor.
func AdminSettings(p SettingsForm) templ.Component { return page("admin_settings.html", p) }

// AdminImages renders the image library.
func AdminImages(p ImagesPage) templ.Component { return page("admin_images.html", p) }

// FormatDate renders an ISO-8601 post date as "March 15, 2024". Dates that
// do not parse are shown as stored.
func FormatDate(iso string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}

// ButtonClass returns CSS classes for a plan call-to-action.
func ButtonClass(style string, popular bool) string {
	base := "btn btn-" + style
	if style == "" {
		base = "btn btn-" + content.ButtonGradient
	}
	if popular {
		base += " btn-popular"
	}
	return base
}

// PageURL builds the blog index URL for a filter and page number.
func PageURL(q blog.Query, page int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Category != "" && q.Category != blog.AllCategories {
		v.Set("category", q.Category)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/blog/"
	}
	return "/blog/?" + v.Encode()
}
