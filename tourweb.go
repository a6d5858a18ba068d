// Package tourweb is the marketing site for a virtual-tour product, built
// with Go, Echo, and templ. It serves the landing page with live pricing,
// a searchable blog, legal pages, RSS and a sitemap, plus an admin area for
// editing blog posts, pricing plans and images.
//
// All content lives in a key-value substrate (memory, SQLite or Redis)
// behind storage.Adapter; the blog and pricing services keep the working
// copy in memory and write every change through.
package tourweb

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/tourweb/blog"
	"github.com/eringen/tourweb/content"
	"github.com/eringen/tourweb/pricing"
	"github.com/eringen/tourweb/storage"
	"github.com/eringen/tourweb/views"
)

// ViewFuncs holds the components the App renders. Nil fields fall back to
// the built-in views, so callers can override individual pages.
type ViewFuncs struct {
	Home          func(views.HomePage) templ.Component
	BlogList      func(views.BlogListPage) templ.Component
	Post          func(views.PostPage) templ.Component
	Legal         func(views.LegalPage) templ.Component
	Admin         func(views.AdminPage) templ.Component
	AdminPostForm func(views.PostForm) templ.Component
	AdminPlanForm func(views.PlanForm) templ.Component
	AdminSettings func(views.SettingsForm) templ.Component
	AdminImages   func(views.ImagesPage) templ.Component
	NotFound      func(views.ErrorPage) templ.Component
	ServerError   func(views.ErrorPage) templ.Component
}

// DefaultViews returns the built-in html/template pages.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:          views.Home,
		BlogList:      views.BlogList,
		Post:          views.Post,
		Legal:         views.Legal,
		Admin:         views.Admin,
		AdminPostForm: views.AdminPostForm,
		AdminPlanForm: views.AdminPlanForm,
		AdminSettings: views.AdminSettings,
		AdminImages:   views.AdminImages,
		NotFound:      views.NotFound,
		ServerError:   views.ServerError,
	}
}

func (v *ViewFuncs) fill() {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.BlogList == nil {
		v.BlogList = d.BlogList
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.Legal == nil {
		v.Legal = d.Legal
	}
	if v.Admin == nil {
		v.Admin = d.Admin
	}
	if v.AdminPostForm == nil {
		v.AdminPostForm = d.AdminPostForm
	}
	if v.AdminPlanForm == nil {
		v.AdminPlanForm = d.AdminPlanForm
	}
	if v.AdminSettings == nil {
		v.AdminSettings = d.AdminSettings
	}
	if v.AdminImages == nil {
		v.AdminImages = d.AdminImages
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
}

// App is the central tourweb application. It wires together the substrate,
// the content services, handlers, middleware, and templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *storage.Adapter
	Blog    *blog.Service
	Pricing *pricing.Service
	Views   ViewFuncs
	Landing content.Landing

	legal         map[string]content.LegalPage
	limitWrites   echo.MiddlewareFunc
	substrate     storage.Substrate
	ownsSubstrate bool
	customRoutes  []func(*App)
	blogOpts      []blog.Option
	pricingOpts   []pricing.Option
	now           func() time.Time
}

// New creates a new tourweb App with the given configuration and views.
func New(cfg SiteConfig, vf ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	vf.fill()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  vf,
		now:    time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the substrate, loads the content services and registers
// middleware and routes. Start calls it; tests call it directly and drive
// a.Echo with httptest.
func (a *App) Init(ctx context.Context) error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("tourweb: SessionSecret is required")
	}

	if a.substrate == nil {
		sub, err := storage.Open(a.Config.Store, a.Config.RedisPrefix)
		if err != nil {
			return fmt.Errorf("tourweb: open store: %w", err)
		}
		a.substrate = sub
		a.ownsSubstrate = true
	}
	a.Store = storage.NewAdapter(a.substrate, a.Echo.Logger)

	landing, err := content.LoadLanding()
	if err != nil {
		return fmt.Errorf("tourweb: %w", err)
	}
	a.Landing = landing

	a.legal = make(map[string]content.LegalPage)
	for _, slug := range []string{content.PrivacyPolicy, content.Terms} {
		page, err := content.LoadLegalPage(slug)
		if err != nil {
			return fmt.Errorf("tourweb: %w", err)
		}
		a.legal[slug] = page
	}

	a.Blog = blog.New(ctx, a.Store, a.blogOpts...)
	a.Pricing = pricing.New(ctx, a.Store, a.pricingOpts...)

	a.limitWrites = newWriteLimiter(a.Config.AdminWritesPerMinute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the App and starts the server. It returns nil after a
// graceful Shutdown.
func (a *App) Start() error {
	if err := a.Init(context.Background()); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded stylesheet first, then the user's static dir (uploads live there).
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogList)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/privacy-policy/", a.handleLegal(content.PrivacyPolicy))
	e.GET("/terms/", a.handleLegal(content.Terms))

	// Admin routes; writes share the per-IP limiter.
	e.GET("/admin/", handleAdminRedirect)
	e.GET("/admin/blog/", a.handleAdmin)
	e.GET("/admin/blog/new/", a.handleAdminPostNew)
	e.GET("/admin/blog/:id/edit/", a.handleAdminPostEdit)
	e.GET("/admin/pricing/new/", a.handleAdminPlanNew)
	e.GET("/admin/pricing/:id/edit/", a.handleAdminPlanEdit)
	e.GET("/admin/pricing/settings/", a.handleAdminSettings)
	e.GET("/admin/images/", a.handleImageList)

	e.POST("/admin/blog/save/", a.handleAdminPostSave, a.limitWrites)
	e.POST("/admin/blog/:id/delete/", a.handleAdminPostDelete, a.limitWrites)
	e.POST("/admin/pricing/save/", a.handleAdminPlanSave, a.limitWrites)
	e.POST("/admin/pricing/:id/delete/", a.handleAdminPlanDelete, a.limitWrites)
	e.POST("/admin/pricing/:id/move/", a.handleAdminPlanMove, a.limitWrites)
	e.POST("/admin/pricing/settings/", a.handleAdminSettingsSave, a.limitWrites)
	e.POST("/admin/images/upload/", a.handleImageUpload, a.limitWrites)
	e.POST("/admin/images/:filename/delete/", a.handleImageDelete, a.limitWrites)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.ownsSubstrate && a.substrate != nil {
		return a.substrate.Close()
	}
	return nil
}

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Year:        a.now().Year(),
	}
}

// meta builds page metadata with a canonical URL under Config.URL.
func (a *App) meta(title, description string, pathSegments ...string) views.PageMeta {
	if title == "" {
		title = a.Config.Name
	} else {
		title += " | " + a.Config.Name
	}
	if description == "" {
		description = a.Config.Description
	}
	return views.PageMeta{
		Title:       title,
		Description: description,
		URL:         views.BuildURL(a.Config.URL, pathSegments...),
		OGType:      "website",
	}
}
