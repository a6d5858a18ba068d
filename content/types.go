// Package content holds the documents tourweb persists and renders: blog
// posts, pricing plans and pricing settings, plus the bundled default
// datasets and static landing copy.
package content

// BlogPost is a single article. Content is plain text, one paragraph per line.
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"` // ISO-8601, set on create
	ImageURL string   `json:"imageUrl"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Link returns the canonical detail path for the post.
func (p BlogPost) Link() string {
	return "/blog/" + p.Slug + "/"
}

// Clone returns a copy that shares no slices with p. A nil Tags becomes
// empty so the stored document always carries an array.
func (p BlogPost) Clone() BlogPost {
	p.Tags = append([]string{}, p.Tags...)
	return p
}

// PlanMetadata carries per-plan SEO fields.
type PlanMetadata struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// PricingPlan is one card in the pricing section. Price is free text: a
// numeric literal or "Custom".
type PricingPlan struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       string       `json:"price"`
	Period      string       `json:"period"`
	Description string       `json:"description"`
	Badge       string       `json:"badge"`
	Icon        string       `json:"icon"`
	Features    []string     `json:"features"`
	CTAText     string       `json:"ctaText"`
	CTAURL      string       `json:"ctaUrl"`
	IsPopular   bool         `json:"isPopular"`
	Order       int          `json:"order"` // 1-based rank
	Metadata    PlanMetadata `json:"metadata"`
}

// Clone returns a copy that shares no slices with p. A nil Features
// becomes empty.
func (p PricingPlan) Clone() PricingPlan {
	p.Features = append([]string{}, p.Features...)
	return p
}

// PriceIsCustom reports whether the plan is priced on request.
func (p PricingPlan) PriceIsCustom() bool {
	return p.Price == CustomPrice
}

// CustomPrice is the literal price of plans quoted on request.
const CustomPrice = "Custom"

// PlanIcons is the fixed set of icon keys a plan may reference.
var PlanIcons = []string{"package", "star", "zap", "crown", "building", "rocket"}

// DefaultPlanIcon is used when a plan references an unknown icon.
const DefaultPlanIcon = "package"

// IconOrDefault returns icon if it is a known key, DefaultPlanIcon otherwise.
func IconOrDefault(icon string) string {
	for _, known := range PlanIcons {
		if icon == known {
			return icon
		}
	}
	return DefaultPlanIcon
}

// Layout values for PricingSettings.Layout.
const (
	LayoutCards = "cards"
	LayoutTable = "table"
)

// Button styles for PricingSettings.ButtonStyle.
const (
	ButtonGradient = "gradient"
	ButtonSolid    = "solid"
	ButtonOutline  = "outline"
)

// BreakpointSettings tunes the pricing grid for one screen class.
type BreakpointSettings struct {
	PlansPerRow  int `json:"plansPerRow"`
	ShowFeatures int `json:"showFeatures"`
}

// ResponsiveSettings groups the per-breakpoint overrides.
type ResponsiveSettings struct {
	Mobile BreakpointSettings `json:"mobile"`
	Tablet BreakpointSettings `json:"tablet"`
}

// PricingSettings is the singleton display configuration for pricing.
type PricingSettings struct {
	PlansPerRow         int                `json:"plansPerRow"`
	Layout              string             `json:"layout"`
	ShowComparisonTable bool               `json:"showComparisonTable"`
	ButtonStyle         string             `json:"buttonStyle"`
	Responsive          ResponsiveSettings `json:"responsive"`
}

// IsZero reports whether s was never populated.
func (s PricingSettings) IsZero() bool {
	return s == PricingSettings{}
}

// PricingData is the document persisted under the pricing key.
type PricingData struct {
	Settings PricingSettings `json:"settings"`
	Plans    []PricingPlan   `json:"plans"`
}

// Clone returns a deep copy of d.
func (d PricingData) Clone() PricingData {
	out := PricingData{Settings: d.Settings}
	if d.Plans != nil {
		out.Plans = make([]PricingPlan, len(d.Plans))
		for i, p := range d.Plans {
			out.Plans[i] = p.Clone()
		}
	}
	return out
}
