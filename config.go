package tourweb

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/eringen/tourweb/blog"
	"github.com/eringen/tourweb/pricing"
	"github.com/eringen/tourweb/storage"
)

// SiteConfig holds all configuration for a tourweb site.
type SiteConfig struct {
	Name        string `env:"TOURWEB_NAME"`        // Site name (default "Showcase360")
	URL         string `env:"TOURWEB_URL"`         // Canonical URL (default "http://localhost:3000")
	Description string `env:"TOURWEB_DESCRIPTION"` // Site description for RSS and meta tags

	Addr        string `env:"TOURWEB_ADDR"`         // Listen address (default ":3000")
	Store       string `env:"TOURWEB_STORE"`        // Substrate DSN (default "data/tourweb.db")
	RedisPrefix string `env:"TOURWEB_REDIS_PREFIX"` // Key prefix for redis:// stores

	SessionSecret string `env:"TOURWEB_SESSION_SECRET"` // Required: session encryption secret
	CookieSecure  bool   `env:"TOURWEB_COOKIE_SECURE"`  // Set true for HTTPS

	StaticDir            string `env:"TOURWEB_STATIC_DIR"`              // User static assets (default "public")
	AdminWritesPerMinute int    `env:"TOURWEB_ADMIN_WRITES_PER_MINUTE"` // Per-IP admin write budget (default 30)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Showcase360"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Immersive 360° virtual tours for real estate, hospitality and beyond."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Store == "" {
		c.Store = "data/tourweb.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.AdminWritesPerMinute <= 0 {
		c.AdminWritesPerMinute = 30
	}
}

// LoadConfig reads SiteConfig from the environment after loading the given
// dotenv files (".env" when none are named). Missing dotenv files are
// ignored; malformed ones are not.
func LoadConfig(envFiles ...string) (SiteConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("tourweb: load %s: %w", f, err)
		}
	}
	cfg, err := env.ParseAs[SiteConfig]()
	if err != nil {
		return SiteConfig{}, fmt.Errorf("tourweb: parse environment: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets and uploads.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithSubstrate uses sub instead of opening Config.Store. The caller keeps
// ownership: Close does not close it.
func WithSubstrate(sub storage.Substrate) Option {
	return func(a *App) {
		a.substrate = sub
	}
}

// WithIDFunc sets the generator for new post and plan IDs.
func WithIDFunc(fn func() string) Option {
	return func(a *App) {
		a.blogOpts = append(a.blogOpts, blog.WithIDFunc(fn))
		a.pricingOpts = append(a.pricingOpts, pricing.WithIDFunc(fn))
	}
}

// WithClock sets the time source for post dates and the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
		a.blogOpts = append(a.blogOpts, blog.WithClock(now))
	}
}
