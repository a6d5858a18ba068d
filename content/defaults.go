package content

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

// DefaultBlogPosts returns a fresh copy of the bundled first-run blog posts.
func DefaultBlogPosts() []BlogPost {
	var doc struct {
		Blogs []BlogPost `json:"blogs"`
	}
	mustDecodeDefault("defaults/blogs.json", &doc)
	return doc.Blogs
}

// DefaultPricing returns a fresh copy of the bundled first-run pricing document.
func DefaultPricing() PricingData {
	var doc PricingData
	mustDecodeDefault("defaults/pricing.json", &doc)
	return doc
}

// The defaults ship inside the binary, so a decode failure is a build defect.
func mustDecodeDefault(name string, v any) {
	b, err := defaultsFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("content: read %s: %v", name, err))
	}
	if err := json.Unmarshal(b, v); err != nil {
		panic(fmt.Sprintf("content: decode %s: %v", name, err))
	}
}
