package tourweb

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/tourweb/blog"
	"github.com/eringen/tourweb/pricing"
	"github.com/eringen/tourweb/views"
)

const (
	latestPostCount  = 3
	relatedPostCount = 3
)

func (a *App) handleHome(c echo.Context) error {
	plans := pricing.Visible(a.Pricing.Plans())
	settings := a.Pricing.Settings()

	meta := a.meta("", a.Config.Description)
	meta.JSONLD = "[" + views.WebsiteJsonLD(a.site()) + "," + views.FAQPageJsonLD(a.Landing.FAQs) + "]"

	return Render(c, a.Views.Home(views.HomePage{
		Site:        a.site(),
		Meta:        meta,
		Landing:     a.Landing,
		LatestPosts: blog.Latest(a.Blog.Posts(), latestPostCount),
		Pricing: views.PricingSection{
			Plans:    plans,
			Settings: settings,
			Columns:  pricing.GridColumns(len(plans), settings),
		},
	}))
}

func (a *App) handleBlogList(c echo.Context) error {
	q := blog.Query{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
	}
	if q.Category == "" {
		q.Category = blog.AllCategories
	}
	number, _ := strconv.Atoi(c.QueryParam("page"))
	if number < 1 {
		number = 1
	}

	posts := a.Blog.Posts()
	return Render(c, a.Views.BlogList(views.BlogListPage{
		Site:       a.site(),
		Meta:       a.meta("Blog", "Guides and news on virtual tours, 360° photography and property marketing.", "blog"),
		Page:       blog.Paginate(blog.Filter(posts, q), number, blog.PageSize),
		Query:      q,
		Categories: blog.Categories(posts),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Blog.PostBySlug(c.Param("slug"))
	if err != nil {
		return err
	}
	meta := a.meta(post.Title, post.Summary, "blog", post.Slug)
	meta.OGType = "article"
	meta.JSONLD = views.BlogPostingJsonLD(a.site(), post)

	return Render(c, a.Views.Post(views.PostPage{
		Site:    a.site(),
		Meta:    meta,
		Post:    post,
		Related: views.RelatedPosts(post, a.Blog.Posts(), relatedPostCount),
	}))
}

func (a *App) handleLegal(slug string) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, ok := a.legal[slug]
		if !ok {
			return echo.ErrNotFound
		}
		return Render(c, a.Views.Legal(views.LegalPage{
			Site: a.site(),
			Meta: a.meta(doc.Title, "", slug),
			Doc:  doc,
		}))
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Blog.Posts())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Blog.Posts())
}

// handleRobots serves robots.txt from the static dir when present and a
// generated one otherwise.
func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.Config.StaticDir, "robots.txt")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	body := fmt.Sprintf("User-agent: *\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n",
		strings.TrimRight(a.Config.URL, "/"))
	return c.String(http.StatusOK, body)
}

func handleAdminRedirect(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/admin/blog/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errorsIsAny(err, blog.ErrNotFound, pricing.ErrNotFound) {
		err = echo.ErrNotFound
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(views.ErrorPage{
			Site: a.site(),
			Meta: a.meta("Page not found", ""),
		}))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(views.ErrorPage{
			Site: a.site(),
			Meta: a.meta("Something went wrong", ""),
		}))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
