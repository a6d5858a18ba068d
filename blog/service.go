// Package blog manages the collection of blog posts: creation, editing,
// deletion, slug lookup and the derived list views used by the site.
package blog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/tourweb/content"
)

// ErrNotFound is returned when no post matches the requested id or slug.
var ErrNotFound = errors.New("blog: post not found")

// DateLayout is the ISO-8601 form of BlogPost.Date.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Store persists the full post collection.
type Store interface {
	LoadBlogPosts(ctx context.Context) []content.BlogPost
	SaveBlogPosts(ctx context.Context, posts []content.BlogPost)
}

// Draft is the editable part of a post; id, slug and date are assigned by
// the service.
type Draft struct {
	Title    string
	Summary  string
	Content  string
	Author   string
	ImageURL string
	Category string
	Tags     []string
}

// Service owns the in-memory post collection and writes every change
// through to its Store.
type Service struct {
	mu    sync.RWMutex
	posts []content.BlogPost
	store Store
	newID func() string
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc sets the id generator (default random UUIDs).
func WithIDFunc(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithClock sets the time source used for post dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New loads the stored posts. When nothing is stored, the bundled default
// posts are used and persisted immediately.
func New(ctx context.Context, store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.posts = store.LoadBlogPosts(ctx)
	if len(s.posts) == 0 {
		s.posts = content.DefaultBlogPosts()
		store.SaveBlogPosts(ctx, s.posts)
	}
	return s
}

// Posts returns a copy of every post in stored order.
func (s *Service) Posts() []content.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]content.BlogPost, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// Post returns the post with the given id.
func (s *Service) Post(id string) (content.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.posts[i].Clone(), nil
	}
	return content.BlogPost{}, ErrNotFound
}

// PostBySlug returns the first post whose slug matches. Slugs are not
// unique; later duplicates are unreachable by slug.
func (s *Service) PostBySlug(slug string) (content.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return content.BlogPost{}, ErrNotFound
}

// CreatePost assigns an id, the current date and a slug derived from the
// title, appends the post and persists the collection.
func (s *Service) CreatePost(ctx context.Context, d Draft) content.BlogPost {
	post := content.BlogPost{
		ID:       s.newID(),
		Title:    d.Title,
		Slug:     content.Slugify(d.Title),
		Summary:  d.Summary,
		Content:  d.Content,
		Author:   d.Author,
		Date:     s.now().UTC().Format(DateLayout),
		ImageURL: d.ImageURL,
		Category: d.Category,
		Tags:     append([]string{}, d.Tags...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
	s.store.SaveBlogPosts(ctx, s.posts)
	return post.Clone()
}

// UpdatePost replaces the post with the same id, re-deriving its slug from
// the title, and persists the collection. The slug may change.
func (s *Service) UpdatePost(ctx context.Context, post content.BlogPost) (content.BlogPost, error) {
	post = post.Clone()
	post.Slug = content.Slugify(post.Title)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(post.ID)
	if i < 0 {
		return content.BlogPost{}, ErrNotFound
	}
	s.posts[i] = post
	s.store.SaveBlogPosts(ctx, s.posts)
	return post.Clone(), nil
}

// DeletePost removes the post with the given id and persists the
// collection. Unknown ids are ignored.
func (s *Service) DeletePost(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.posts = append(s.posts[:i:i], s.posts[i+1:]...)
	s.store.SaveBlogPosts(ctx, s.posts)
}

func (s *Service) indexOf(id string) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
