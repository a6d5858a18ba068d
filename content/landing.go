package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed landing.yaml
var landingYAML []byte

// Link is a labelled call to action.
type Link struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// Hero is the top banner of the landing page.
type Hero struct {
	Title        string   `yaml:"title"`
	Highlight    string   `yaml:"highlight"`
	Subtitle     string   `yaml:"subtitle"`
	PrimaryCTA   Link     `yaml:"primaryCta"`
	SecondaryCTA Link     `yaml:"secondaryCta"`
	TrustBadges  []string `yaml:"trustBadges"`
}

// Industry is one card of the benefits carousel.
type Industry struct {
	Label       string `yaml:"label"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Demo describes the embedded sample tour.
type Demo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	EmbedURL    string `yaml:"embedUrl"`
}

// Feature is one tab of the feature section.
type Feature struct {
	Label       string `yaml:"label"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Camera is a supported capture device.
type Camera struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// FAQ is a question with its answer.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Landing is the static copy of the landing page sections.
type Landing struct {
	Hero       Hero       `yaml:"hero"`
	Industries []Industry `yaml:"industries"`
	Demo       Demo       `yaml:"demo"`
	Features   []Feature  `yaml:"features"`
	Cameras    []Camera   `yaml:"cameras"`
	FAQs       []FAQ      `yaml:"faqs"`
}

// LoadLanding decodes the embedded landing copy.
func LoadLanding() (Landing, error) {
	return ParseLanding(landingYAML)
}

// ParseLanding decodes landing copy from YAML.
func ParseLanding(b []byte) (Landing, error) {
	var l Landing
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Landing{}, fmt.Errorf("content: parse landing: %w", err)
	}
	return l, nil
}
