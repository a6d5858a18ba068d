package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eringen/tourweb/content"
)

// Fixed substrate keys of the two persisted documents.
const (
	BlogKey    = "blogData"
	PricingKey = "pricingData"
)

// Logger receives persistence failures. echo.Logger and gommon's
// *log.Logger satisfy it.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Adapter serializes the blog and pricing documents to a Substrate.
// It holds no state beyond its dependencies: every call goes to the
// substrate.
type Adapter struct {
	sub Substrate
	log Logger
}

// NewAdapter returns an Adapter writing to sub and reporting failures to log.
func NewAdapter(sub Substrate, log Logger) *Adapter {
	return &Adapter{sub: sub, log: log}
}

// load decodes the document under key into v. It reports false when the
// key is absent or unreadable.
func (a *Adapter) load(ctx context.Context, key string, v any) bool {
	b, err := a.sub.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.log.Errorf("storage: load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		a.log.Errorf("storage: decode %s: %v", key, err)
		return false
	}
	return true
}

func (a *Adapter) save(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		a.log.Errorf("storage: encode %s: %v", key, err)
		return
	}
	if err := a.sub.Set(ctx, key, b); err != nil {
		a.log.Errorf("storage: save %s: %v", key, err)
	}
}

// LoadBlogPosts returns the stored posts, or an empty slice when none are
// stored or the document cannot be decoded.
func (a *Adapter) LoadBlogPosts(ctx context.Context) []content.BlogPost {
	var posts []content.BlogPost
	if !a.load(ctx, BlogKey, &posts) || posts == nil {
		return []content.BlogPost{}
	}
	return posts
}

// SaveBlogPosts overwrites the stored posts. Failures are logged only.
func (a *Adapter) SaveBlogPosts(ctx context.Context, posts []content.BlogPost) {
	if posts == nil {
		posts = []content.BlogPost{}
	}
	a.save(ctx, BlogKey, posts)
}

// CreateBlogPost appends post to the stored collection.
func (a *Adapter) CreateBlogPost(ctx context.Context, post content.BlogPost) {
	posts := a.LoadBlogPosts(ctx)
	a.SaveBlogPosts(ctx, append(posts, post))
}

// UpdateBlogPost replaces the stored post with the same id. Absent ids
// leave the document untouched.
func (a *Adapter) UpdateBlogPost(ctx context.Context, post content.BlogPost) {
	posts := a.LoadBlogPosts(ctx)
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			a.SaveBlogPosts(ctx, posts)
			return
		}
	}
}

// DeleteBlogPost removes every stored post with the given id.
func (a *Adapter) DeleteBlogPost(ctx context.Context, id string) {
	posts := a.LoadBlogPosts(ctx)
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	a.SaveBlogPosts(ctx, kept)
}

// LoadPricingData returns the stored pricing document, or empty plans and
// zero settings when none is stored or it cannot be decoded. Bundled
// defaults are the caller's concern.
func (a *Adapter) LoadPricingData(ctx context.Context) content.PricingData {
	var data content.PricingData
	if !a.load(ctx, PricingKey, &data) {
		data = content.PricingData{}
	}
	if data.Plans == nil {
		data.Plans = []content.PricingPlan{}
	}
	return data
}

// SavePricingData overwrites the stored pricing document. Failures are
// logged only.
func (a *Adapter) SavePricingData(ctx context.Context, data content.PricingData) {
	if data.Plans == nil {
		data.Plans = []content.PricingPlan{}
	}
	a.save(ctx, PricingKey, data)
}

// CreatePricingPlan appends plan to the stored plans.
func (a *Adapter) CreatePricingPlan(ctx context.Context, plan content.PricingPlan) {
	data := a.LoadPricingData(ctx)
	data.Plans = append(data.Plans, plan)
	a.SavePricingData(ctx, data)
}

// UpdatePricingPlan replaces the stored plan with the same id. Absent ids
// leave the document untouched.
func (a *Adapter) UpdatePricingPlan(ctx context.Context, plan content.PricingPlan) {
	data := a.LoadPricingData(ctx)
	for i := range data.Plans {
		if data.Plans[i].ID == plan.ID {
			data.Plans[i] = plan
			a.SavePricingData(ctx, data)
			return
		}
	}
}

// DeletePricingPlan removes every stored plan with the given id.
func (a *Adapter) DeletePricingPlan(ctx context.Context, id string) {
	data := a.LoadPricingData(ctx)
	kept := data.Plans[:0]
	for _, p := range data.Plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	data.Plans = kept
	a.SavePricingData(ctx, data)
}

// UpdatePricingSettings replaces the stored settings, keeping the plans.
func (a *Adapter) UpdatePricingSettings(ctx context.Context, settings content.PricingSettings) {
	data := a.LoadPricingData(ctx)
	data.Settings = settings
	a.SavePricingData(ctx, data)
}

// Snapshot is the full persisted state, as written by the export command.
type Snapshot struct {
	BlogData    []content.BlogPost  `json:"blogData"`
	PricingData content.PricingData `json:"pricingData"`
}

// Export reads both documents.
func (a *Adapter) Export(ctx context.Context) Snapshot {
	return Snapshot{
		BlogData:    a.LoadBlogPosts(ctx),
		PricingData: a.LoadPricingData(ctx),
	}
}

// Reset deletes both documents so the next start seeds the defaults.
func (a *Adapter) Reset(ctx context.Context) error {
	return errors.Join(
		a.sub.Delete(ctx, BlogKey),
		a.sub.Delete(ctx, PricingKey),
	)
}
