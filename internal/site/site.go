// Package site builds the SEO scaffolding (canonical URLs, sitemap.xml,
// robots.txt) and renders the static information pages.
package site

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// URLBuilder turns site paths into canonical URLs. With an empty BaseURL the
// path is returned unchanged.
type URLBuilder struct {
	BaseURL string
}

func (u URLBuilder) Canonical(path string) string {
	if u.BaseURL == "" {
		return path
	}
	return strings.TrimRight(u.BaseURL, "/") + path
}

/* ─── sitemap.xml / robots.txt ────────────────────────────────────────── */

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap renders a sitemaps.org urlset for the given paths.
func (u URLBuilder) Sitemap(paths []string) ([]byte, error) {
	set := urlset{XMLNS: sitemapNS}
	for _, p := range paths {
		set.URLs = append(set.URLs, sitemapURL{Loc: u.Canonical(p)})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots allows every crawler and points at the sitemap.
func (u URLBuilder) Robots() string {
	return "User-agent: *\nAllow: /\nSitemap: " + u.Canonical("/sitemap.xml") + "\n"
}

/* ─── Information pages ───────────────────────────────────────────────── */

//go:embed pages/*.md
var pageFS embed.FS

// Page is a rendered information page.
type Page struct {
	Slug        string
	Title       string
	Description string
	Body        template.HTML
}

var pageMeta = []struct{ slug, title, description string }{
	{"about", "About", "What this site is and how the calculators work."},
	{"privacy", "Privacy", "No accounts, nothing sold: inputs are only used to compute the answer you asked for."},
	{"contact", "Contact", "Feedback, bug reports and partnership questions."},
}

// Pages renders every markdown page once. siteName replaces the {{site}}
// placeholder in page bodies.
func Pages(siteName string) (map[string]Page, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	pages := make(map[string]Page, len(pageMeta))
	for _, m := range pageMeta {
		src, err := pageFS.ReadFile("pages/" + m.slug + ".md")
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", m.slug, err)
		}
		src = bytes.ReplaceAll(src, []byte("{{site}}"), []byte(siteName))
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render page %s: %w", m.slug, err)
		}
		pages[m.slug] = Page{
			Slug:        m.slug,
			Title:       m.title,
			Description: m.description,
			// goldmark's default renderer omits raw HTML in the sources.
			Body: template.HTML(buf.String()),
		}
	}
	return pages, nil
}

// PageSlugs lists the information pages in navigation order.
func PageSlugs() []string {
	out := make([]string, len(pageMeta))
	for i, m := range pageMeta {
		out[i] = m.slug
	}
	return out
}
