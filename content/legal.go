package content

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed legal/*.md
var legalFS embed.FS

// Legal page slugs, also used as their route paths.
const (
	PrivacyPolicy = "privacy-policy"
	Terms         = "terms"
)

// LegalPage is a rendered policy document.
type LegalPage struct {
	Slug  string
	Title string
	HTML  string
}

var legalMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer))

// LoadLegalPage renders the embedded Markdown document for slug.
func LoadLegalPage(slug string) (LegalPage, error) {
	src, err := legalFS.ReadFile("legal/" + slug + ".md")
	if err != nil {
		return LegalPage{}, fmt.Errorf("content: legal page %q: %w", slug, err)
	}
	return RenderLegalPage(slug, src)
}

// RenderLegalPage converts a Markdown policy to HTML. The first level-one
// heading becomes the page title.
func RenderLegalPage(slug string, src []byte) (LegalPage, error) {
	var buf bytes.Buffer
	if err := legalMarkdown.Convert(src, &buf); err != nil {
		return LegalPage{}, fmt.Errorf("content: render legal page %q: %w", slug, err)
	}
	return LegalPage{
		Slug:  slug,
		Title: markdownTitle(src),
		HTML:  buf.String(),
	}, nil
}

func markdownTitle(src []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
