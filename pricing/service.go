// Package pricing manages the ordered pricing plans and the pricing
// display settings.
package pricing

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/eringen/tourweb/content"
)

// ErrNotFound is returned when no plan has the requested id.
var ErrNotFound = errors.New("pricing: plan not found")

// Store persists the pricing document as a whole.
type Store interface {
	LoadPricingData(ctx context.Context) content.PricingData
	SavePricingData(ctx context.Context, data content.PricingData)
}

// Direction moves a plan one position in the display order.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// PlanDraft is a plan before the service assigns its id and order.
type PlanDraft struct {
	Name        string
	Price       string
	Period      string
	Description string
	Badge       string
	Icon        string
	Features    []string
	CTAText     string
	CTAURL      string
	IsPopular   bool
	Metadata    content.PlanMetadata
}

// Service owns the plans and settings and writes the whole document
// through to its Store on every change.
type Service struct {
	mu    sync.RWMutex
	data  content.PricingData
	store Store
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc sets the id generator (default random UUIDs).
func WithIDFunc(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// New loads the stored document. Missing plans and missing settings are
// each filled from the bundled defaults, and the result is persisted if
// anything was filled.
func New(ctx context.Context, store Store, opts ...Option) *Service {
	s := &Service{store: store, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	s.data = store.LoadPricingData(ctx)
	defaults := content.DefaultPricing()
	seeded := false
	if len(s.data.Plans) == 0 {
		s.data.Plans = defaults.Plans
		seeded = true
	}
	if s.data.Settings.IsZero() {
		s.data.Settings = defaults.Settings
		seeded = true
	}
	if seeded {
		s.persist(ctx)
	}
	return s
}

// Plans returns a copy of the plans in stored order.
func (s *Service) Plans() []content.PricingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone().Plans
}

// Plan returns the plan with the given id.
func (s *Service) Plan(id string) (content.PricingPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.data.Plans[i].Clone(), nil
	}
	return content.PricingPlan{}, ErrNotFound
}

// Settings returns the current display settings.
func (s *Service) Settings() content.PricingSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Settings
}

// CreatePlan appends a plan ranked after every existing plan.
func (s *Service) CreatePlan(ctx context.Context, d PlanDraft) content.PricingPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := content.PricingPlan{
		ID:          s.newID(),
		Name:        d.Name,
		Price:       d.Price,
		Period:      d.Period,
		Description: d.Description,
		Badge:       d.Badge,
		Icon:        d.Icon,
		Features:    append([]string{}, d.Features...),
		CTAText:     d.CTAText,
		CTAURL:      d.CTAURL,
		IsPopular:   d.IsPopular,
		Order:       len(s.data.Plans) + 1,
		Metadata:    d.Metadata,
	}
	s.data.Plans = append(s.data.Plans, plan)
	s.persist(ctx)
	return plan.Clone()
}

// UpdatePlan replaces the plan with the same id as given. The order field
// is stored as given, without checking it against the other plans.
func (s *Service) UpdatePlan(ctx context.Context, plan content.PricingPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(plan.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.data.Plans[i] = plan.Clone()
	s.persist(ctx)
	return nil
}

// DeletePlan removes the plan with the given id. If it was the popular
// plan, the plan that now occupies its old slot (clamped to the last
// remaining plan) becomes popular. Remaining plans are renumbered 1..N.
// Unknown ids are ignored.
func (s *Service) DeletePlan(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	deleted := s.data.Plans[i]
	remaining := append(s.data.Plans[:i:i], s.data.Plans[i+1:]...)

	if deleted.IsPopular && len(remaining) > 0 {
		next := min(deleted.Order-1, len(remaining)-1)
		next = max(next, 0)
		remaining[next].IsPopular = true
	}

	s.data.Plans = renumber(remaining)
	s.persist(ctx)
}

// ReorderPlan swaps the plan with its neighbour in the given direction and
// renumbers every plan. Moving the first plan up, the last plan down, or
// an unknown plan does nothing.
func (s *Service) ReorderPlan(ctx context.Context, id string, dir Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	j := i + 1
	if dir == Up {
		j = i - 1
	}
	if (dir != Up && dir != Down) || j < 0 || j >= len(s.data.Plans) {
		return
	}
	plans := append([]content.PricingPlan(nil), s.data.Plans...)
	plans[i], plans[j] = plans[j], plans[i]
	s.data.Plans = renumber(plans)
	s.persist(ctx)
}

// UpdateSettings replaces the display settings.
func (s *Service) UpdateSettings(ctx context.Context, settings content.PricingSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Settings = settings
	s.persist(ctx)
}

// persist writes plans and settings together. Callers hold s.mu or own s
// exclusively.
func (s *Service) persist(ctx context.Context) {
	s.store.SavePricingData(ctx, s.data)
}

func (s *Service) indexOf(id string) int {
	for i, p := range s.data.Plans {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func renumber(plans []content.PricingPlan) []content.PricingPlan {
	for i := range plans {
		plans[i].Order = i + 1
	}
	return plans
}
