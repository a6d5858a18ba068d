package tourweb

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/tourweb/content"
	"github.com/eringen/tourweb/storage"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	n := 0
	opts = append([]Option{
		WithSubstrate(storage.NewMemory()),
		WithStaticDir(t.TempDir()),
		WithIDFunc(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	app := New(SiteConfig{
		SessionSecret: "test-secret",
		URL:           "https://example.com",
	}, ViewFuncs{}, opts...)
	app.Echo.Logger.SetOutput(io.Discard)
	require.NoError(t, app.Init(context.Background()))
	t.Cleanup(func() { app.Close() })
	return app
}

// client carries cookies between requests so CSRF tokens and flash
// messages survive redirects.
type client struct {
	t       *testing.T
	app     *App
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app *App) *client {
	return &client{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	req.Host = "example.com"
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.app.Echo.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) csrf() string {
	c.t.Helper()
	if _, ok := c.cookies["_csrf"]; !ok {
		c.get("/admin/blog/")
	}
	ck, ok := c.cookies["_csrf"]
	require.True(c.t, ok, "csrf cookie")
	return ck.Value
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set("_csrf", c.csrf())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) upload(name string, data []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(c.t, w.WriteField("_csrf", c.csrf()))
	part, err := w.CreateFormFile("image", name)
	require.NoError(c.t, err)
	_, err = part.Write(data)
	require.NoError(c.t, err)
	require.NoError(c.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/images/upload/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

func validPostForm() url.Values {
	return url.Values{
		"title":    {"Drone Shots for Large Estates"},
		"summary":  {"Aerial views add context."},
		"content":  {"Line one.\nLine two."},
		"author":   {"Jo Park"},
		"imageUrl": {"/public/uploads/drone.jpg"},
		"category": {"Equipment"},
		"tags":     {"drone, aerial , "},
	}
}

func TestInitRequiresSessionSecret(t *testing.T) {
	app := New(SiteConfig{}, ViewFuncs{}, WithSubstrate(storage.NewMemory()))
	err := app.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SessionSecret")
}

func TestInitSeedsEmptyStore(t *testing.T) {
	sub := storage.NewMemory()
	app := newTestApp(t, WithSubstrate(sub))

	stored := storage.NewAdapter(sub, app.Echo.Logger)
	assert.Equal(t, content.DefaultBlogPosts(), stored.LoadBlogPosts(context.Background()))
	assert.Equal(t, content.DefaultPricing(), stored.LoadPricingData(context.Background()))
}

func TestHomePage(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, plan := range content.DefaultPricing().Plans {
		assert.Contains(t, body, plan.Name)
	}
	assert.Contains(t, body, `$29<span class="period">/month</span>`)
	assert.Contains(t, body, `$99<span class="period">/month</span>`)
	assert.NotContains(t, body, "//month")
	assert.Contains(t, body, content.DefaultBlogPosts()[0].Title)
	assert.Contains(t, body, "Frequently Asked Questions")
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestBlogListSearchAndCategory(t *testing.T) {
	c := newClient(t, newTestApp(t))

	rec := c.get("/blog/?q=STAGING")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Virtual Staging: Furnish Empty Rooms Without the Truck")
	assert.NotContains(t, rec.Body.String(), "Why Virtual Tours Sell Homes Faster")

	rec = c.get("/blog/?category=Hospitality")
	assert.Contains(t, rec.Body.String(), "Virtual Tours for Hotels and Vacation Rentals")
	assert.NotContains(t, rec.Body.String(), "Virtual Staging: Furnish")

	rec = c.get("/blog/?q=nothing-matches-this")
	assert.Contains(t, rec.Body.String(), "No articles found.")
}

func TestBlogListPaginates(t *testing.T) {
	c := newClient(t, newTestApp(t))
	posts := content.DefaultBlogPosts()

	first := c.get("/blog/").Body.String()
	assert.Contains(t, first, posts[0].Title)
	assert.NotContains(t, first, posts[6].Title)
	assert.Contains(t, first, `href="/blog/?page=2"`)

	second := c.get("/blog/?page=2").Body.String()
	assert.Contains(t, second, posts[6].Title)
	assert.NotContains(t, second, posts[0].Title)
}

func TestBlogRedirectsToTrailingSlash(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.get("/blog")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/blog/", rec.Header().Get("Location"))
}

func TestPostPage(t *testing.T) {
	c := newClient(t, newTestApp(t))
	post := content.DefaultBlogPosts()[0]

	rec := c.get(post.Link())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), post.Title)
	assert.Contains(t, rec.Body.String(), `"@type":"BlogPosting"`)
}

func TestUnknownSlugRendersNotFound(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.get("/blog/no-such-post/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestLegalPages(t *testing.T) {
	c := newClient(t, newTestApp(t))
	for _, path := range []string{"/privacy-policy/", "/terms/"} {
		rec := c.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `<article class="legal">`, path)
	}
}

func TestFeedSitemapRobots(t *testing.T) {
	c := newClient(t, newTestApp(t))
	post := content.DefaultBlogPosts()[0]

	feed := c.get("/feed.xml")
	require.Equal(t, http.StatusOK, feed.Code)
	assert.Contains(t, feed.Body.String(), "<link>https://example.com/blog/"+post.Slug+"/</link>")
	assert.Contains(t, feed.Body.String(), "<pubDate>")

	sitemap := c.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, sitemap.Code)
	assert.Contains(t, sitemap.Body.String(), "<loc>https://example.com/terms/</loc>")
	assert.Contains(t, sitemap.Body.String(), "<lastmod>"+post.Date[:10]+"</lastmod>")

	robots := c.get("/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: https://example.com/sitemap.xml")
	assert.Contains(t, robots.Body.String(), "Disallow: /admin/")
}

func TestEmbeddedStylesheet(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.get("/public/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".pricing-grid")
}

func TestAdminRequiresCSRF(t *testing.T) {
	c := newClient(t, newTestApp(t))
	req := httptest.NewRequest(http.MethodPost, "/admin/blog/1/delete/", nil)
	rec := c.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/admin/blog/1/delete/", nil)
	req.Header.Set("X-CSRF-Token", c.csrf())
	rec = c.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "only the form field carries the token")
}

func TestAdminDashboardSections(t *testing.T) {
	c := newClient(t, newTestApp(t))

	rec := c.get("/admin/blog/?q=sarah")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Why Virtual Tours Sell Homes Faster")
	assert.NotContains(t, rec.Body.String(), "Choosing the Right 360")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec = c.get("/admin/blog/?section=pricing")
	assert.Contains(t, rec.Body.String(), "/admin/pricing/standard/move/")
	assert.Contains(t, rec.Body.String(), "<td>$29/month</td>")
	assert.NotContains(t, rec.Body.String(), "//month")

	rec = c.get("/admin/pricing/new/")
	assert.Contains(t, rec.Body.String(), `name="period" value="/month"`)

	rec = c.get("/admin/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAdminCreatePost(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/blog/save/", validPostForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, adminBlogURL, rec.Header().Get("Location"))

	created, err := app.Blog.PostBySlug("drone-shots-for-large-estates")
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", created.Date)
	assert.Equal(t, []string{"drone", "aerial"}, created.Tags)

	persisted := app.Store.LoadBlogPosts(context.Background())
	assert.Equal(t, created, persisted[len(persisted)-1])

	dash := c.get(adminBlogURL)
	assert.Contains(t, dash.Body.String(), "Created “Drone Shots for Large Estates”.")
	again := c.get(adminBlogURL)
	assert.NotContains(t, again.Body.String(), "Created “Drone Shots", "flash shown once")

	public := c.get("/blog/drone-shots-for-large-estates/")
	assert.Equal(t, http.StatusOK, public.Code)
	assert.Contains(t, public.Body.String(), "<p>Line two.</p>")
}

func TestAdminCreatePostValidation(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)
	form := validPostForm()
	form.Set("title", "!!!")
	form.Del("author")

	rec := c.post("/admin/blog/save/", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "author is required")
	assert.Contains(t, rec.Body.String(), "title must contain at least one letter or digit")
	assert.Len(t, app.Blog.Posts(), len(content.DefaultBlogPosts()))
}

func TestAdminUpdatePostKeepsDateAndReslugs(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)
	original := content.DefaultBlogPosts()[0]

	edit := c.get("/admin/blog/" + original.ID + "/edit/")
	require.Equal(t, http.StatusOK, edit.Code)
	assert.Contains(t, edit.Body.String(), original.Title)

	form := validPostForm()
	form.Set("id", original.ID)
	form.Set("title", "Renamed Post")
	rec := c.post("/admin/blog/save/", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	got, err := app.Blog.Post(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed-post", got.Slug)
	assert.Equal(t, original.Date, got.Date)

	assert.Equal(t, http.StatusNotFound, c.get(original.Link()).Code)
	assert.Equal(t, http.StatusOK, c.get("/blog/renamed-post/").Code)
}

func TestAdminEditUnknownPostIsNotFound(t *testing.T) {
	c := newClient(t, newTestApp(t))
	assert.Equal(t, http.StatusNotFound, c.get("/admin/blog/nope/edit/").Code)

	form := validPostForm()
	form.Set("id", "nope")
	assert.Equal(t, http.StatusNotFound, c.post("/admin/blog/save/", form).Code)
}

func TestAdminDeletePost(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/blog/1/delete/", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, err := app.Blog.Post("1")
	assert.Error(t, err)
	assert.Len(t, app.Store.LoadBlogPosts(context.Background()), len(content.DefaultBlogPosts())-1)
}

func TestAdminCreatePlan(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/pricing/save/", url.Values{
		"name":     {"Agency"},
		"price":    {"199"},
		"period":   {"/month"},
		"icon":     {"rocket"},
		"features": {"Unlimited tours\r\n\r\nWhite label\n"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, adminPricingURL, rec.Header().Get("Location"))

	plan, err := app.Pricing.Plan("id-1")
	require.NoError(t, err)
	assert.Equal(t, 5, plan.Order)
	assert.Equal(t, []string{"Unlimited tours", "White label"}, plan.Features)
	assert.Equal(t, "rocket", plan.Icon)
	assert.Equal(t, app.Pricing.Plans(), app.Store.LoadPricingData(context.Background()).Plans)
}

func TestAdminSavesEmptyListsAsArrays(t *testing.T) {
	sub := storage.NewMemory()
	app := newTestApp(t, WithSubstrate(sub))
	c := newClient(t, app)
	ctx := context.Background()

	form := validPostForm()
	form.Set("tags", " , ")
	form.Set("content", "First paragraph.\r\n\r\nSecond paragraph.\r\n")
	require.Equal(t, http.StatusSeeOther, c.post("/admin/blog/save/", form).Code)
	require.Equal(t, http.StatusSeeOther, c.post("/admin/pricing/save/", url.Values{
		"name":  {"Starter"},
		"price": {"9"},
	}).Code)

	raw, err := sub.Get(ctx, storage.BlogKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
	assert.NotContains(t, string(raw), `"tags":null`)
	assert.NotContains(t, string(raw), `\r`)

	raw, err = sub.Get(ctx, storage.PricingKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"features":[]`)
	assert.NotContains(t, string(raw), `"features":null`)

	page := c.get("/blog/drone-shots-for-large-estates/").Body.String()
	assert.Contains(t, page, "<p>First paragraph.</p>")
	assert.Contains(t, page, "<p>Second paragraph.</p>")
	assert.NotContains(t, page, "<p>\r</p>")
}

func TestAdminPlanValidation(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.post("/admin/pricing/save/", url.Values{"name": {"No price"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "price is required")
}

func TestAdminUpdatePlanKeepsOrder(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/pricing/save/", url.Values{
		"id":    {"pro"},
		"name":  {"Professional"},
		"price": {"109"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	plan, err := app.Pricing.Plan("pro")
	require.NoError(t, err)
	assert.Equal(t, "Professional", plan.Name)
	assert.Equal(t, 3, plan.Order)
}

func TestAdminDeletePopularPlanPromotesNext(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/pricing/standard/delete/", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var ids []string
	var popular []string
	for _, p := range app.Pricing.Plans() {
		ids = append(ids, p.ID)
		if p.IsPopular {
			popular = append(popular, p.ID)
		}
	}
	assert.Equal(t, []string{"basic", "pro", "enterprise"}, ids)
	assert.Equal(t, []string{"pro"}, popular)
}

func TestAdminMovePlan(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/pricing/pro/move/", url.Values{"direction": {"up"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	plans := app.Pricing.Plans()
	assert.Equal(t, "pro", plans[1].ID)
	assert.Equal(t, 2, plans[1].Order)
	assert.Equal(t, "standard", plans[2].ID)

	bad := c.post("/admin/pricing/pro/move/", url.Values{"direction": {"left"}})
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestAdminSettings(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	form := c.get("/admin/pricing/settings/")
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), `<option value="cards" selected>`)

	rec := c.post("/admin/pricing/settings/", url.Values{
		"plansPerRow":         {"9"},
		"layout":              {"cards"},
		"buttonStyle":         {"solid"},
		"mobilePlansPerRow":   {"1"},
		"mobileShowFeatures":  {"3"},
		"tabletPlansPerRow":   {"2"},
		"tabletShowFeatures":  {"5"},
		"showComparisonTable": {"true"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "plans per row must be between 1 and 4")
	assert.Equal(t, content.DefaultPricing().Settings, app.Pricing.Settings())

	rec = c.post("/admin/pricing/settings/", url.Values{
		"plansPerRow":         {"3"},
		"layout":              {"table"},
		"buttonStyle":         {"solid"},
		"mobilePlansPerRow":   {"1"},
		"mobileShowFeatures":  {"3"},
		"tabletPlansPerRow":   {"2"},
		"tabletShowFeatures":  {"5"},
		"showComparisonTable": {"true"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	got := app.Pricing.Settings()
	assert.Equal(t, 3, got.PlansPerRow)
	assert.Equal(t, content.LayoutTable, got.Layout)
	assert.True(t, got.ShowComparisonTable)
	assert.Equal(t, got, app.Store.LoadPricingData(context.Background()).Settings)

	home := c.get("/").Body.String()
	assert.Contains(t, home, "layout-table grid-cols-3")
	assert.Contains(t, home, `class="comparison"`)
}

func TestAdminWritesAreRateLimited(t *testing.T) {
	app := New(SiteConfig{
		SessionSecret:        "test-secret",
		URL:                  "https://example.com",
		AdminWritesPerMinute: 2,
	}, ViewFuncs{}, WithSubstrate(storage.NewMemory()), WithStaticDir(t.TempDir()))
	app.Echo.Logger.SetOutput(io.Discard)
	require.NoError(t, app.Init(context.Background()))
	t.Cleanup(func() { app.Close() })
	c := newClient(t, app)

	assert.Equal(t, http.StatusSeeOther, c.post("/admin/blog/1/delete/", nil).Code)
	assert.Equal(t, http.StatusSeeOther, c.post("/admin/blog/2/delete/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, c.post("/admin/blog/3/delete/", nil).Code)
	_, err := app.Blog.Post("3")
	assert.NoError(t, err)
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageUploadListDelete(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	rec := c.upload("My Photo.png", testPNG(t, 2000, 100))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	rec = c.upload("My Photo.png", testPNG(t, 20, 10))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	dir := filepath.Join(app.Config.StaticDir, uploadsSubdir)
	f, err := os.Open(filepath.Join(dir, "my-photo.jpg"))
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, maxImageWidth, cfg.Width)
	assert.Equal(t, 80, cfg.Height)

	list := c.get("/admin/images/")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "/public/uploads/my-photo.jpg")
	assert.Contains(t, list.Body.String(), "/public/uploads/my-photo-2.jpg")

	served := c.get("/public/uploads/my-photo.jpg")
	assert.Equal(t, http.StatusOK, served.Code)

	rec = c.post("/admin/images/my-photo.jpg/delete/", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, err = os.Stat(filepath.Join(dir, "my-photo.jpg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageUploadRejectsNonImages(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.upload("notes.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImageDeleteRejectsHiddenNames(t *testing.T) {
	c := newClient(t, newTestApp(t))
	rec := c.post("/admin/images/.env/delete/", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomViewsOverrideDefaults(t *testing.T) {
	custom := New(SiteConfig{SessionSecret: "s"}, ViewFuncs{
		NotFound: DefaultViews().ServerError,
	}, WithSubstrate(storage.NewMemory()), WithStaticDir(t.TempDir()))
	custom.Echo.Logger.SetOutput(io.Discard)
	require.NoError(t, custom.Init(context.Background()))
	t.Cleanup(func() { custom.Close() })

	rec := newClient(t, custom).get("/blog/missing/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotNil(t, custom.Views.Home, "unset views fall back to defaults")
}

func TestWithCustomRoutes(t *testing.T) {
	app := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/healthz/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	}))
	rec := newClient(t, app).get("/healthz/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
