package content

import (
	"errors"
	"fmt"
)

// Validate checks the ranges the admin settings form enforces.
func (s PricingSettings) Validate() error {
	var errs []error
	if s.PlansPerRow < 1 || s.PlansPerRow > 4 {
		errs = append(errs, fmt.Errorf("plans per row must be between 1 and 4, got %d", s.PlansPerRow))
	}
	if s.Layout != LayoutCards && s.Layout != LayoutTable {
		errs = append(errs, fmt.Errorf("unknown layout %q", s.Layout))
	}
	switch s.ButtonStyle {
	case ButtonGradient, ButtonSolid, ButtonOutline:
	default:
		errs = append(errs, fmt.Errorf("unknown button style %q", s.ButtonStyle))
	}
	if p := s.Responsive.Mobile.PlansPerRow; p < 1 || p > 2 {
		errs = append(errs, fmt.Errorf("mobile plans per row must be between 1 and 2, got %d", p))
	}
	if p := s.Responsive.Tablet.PlansPerRow; p < 1 || p > 3 {
		errs = append(errs, fmt.Errorf("tablet plans per row must be between 1 and 3, got %d", p))
	}
	if s.Responsive.Mobile.ShowFeatures < 1 {
		errs = append(errs, errors.New("mobile features shown must be at least 1"))
	}
	if s.Responsive.Tablet.ShowFeatures < 1 {
		errs = append(errs, errors.New("tablet features shown must be at least 1"))
	}
	return errors.Join(errs...)
}

// Validate checks the fields the admin post editor marks required.
func (p BlogPost) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"title", p.Title},
		{"summary", p.Summary},
		{"content", p.Content},
		{"author", p.Author},
		{"image URL", p.ImageURL},
		{"category", p.Category},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", f.name))
		}
	}
	if p.Title != "" && Slugify(p.Title) == "" {
		errs = append(errs, errors.New("title must contain at least one letter or digit"))
	}
	return errors.Join(errs...)
}

// Validate checks the fields the admin plan editor marks required.
func (p PricingPlan) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.Price == "" {
		errs = append(errs, errors.New("price is required"))
	}
	return errors.Join(errs...)
}
