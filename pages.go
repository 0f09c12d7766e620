package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/health-tools-go/internal/site"
	"lg/health-tools-go/internal/tools"
)

/* ─── View models ─────────────────────────────────────────────────────── */

type pageMeta struct {
	Title       string
	Description string
	Canonical   string
}

// view is the data handed to every HTML template. Fields unused by a given
// page stay zero.
type view struct {
	Site string
	Meta pageMeta
	Nav  []*tools.Tool

	Page site.Page

	Tool      *tools.Tool
	Values    map[string]string
	Outcome   *tools.Outcome
	ShowGauge bool
	Gauge     int
	Advice    []string
}

func (h *Handler) newView(title, description, path string) view {
	return view{
		Site: h.siteName,
		Meta: pageMeta{Title: title, Description: description, Canonical: h.urls.Canonical(path)},
		Nav:  h.catalog,
	}
}

/* ─── Pages ───────────────────────────────────────────────────────────── */

// index lists every tool.
// GET /.
func (h *Handler) index(c *gin.Context) {
	v := h.newView(h.siteName+" - online health calculators (BMI, BMR, TDEE, body fat and more)",
		"Free online calculators for BMI, BMR, TDEE, body fat, ideal weight, waist risk, protein, steps, calorie targets, water and sleep.",
		"/")
	c.HTML(http.StatusOK, "index.html", v)
}

// infoPage serves a pre-rendered markdown page (about, privacy, contact).
func (h *Handler) infoPage(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := h.pages[slug]
		v := h.newView(p.Title+" - "+h.siteName, p.Description, "/"+slug)
		v.Page = p
		c.HTML(http.StatusOK, "page.html", v)
	}
}

/* ─── Tools ───────────────────────────────────────────────────────────── */

func (h *Handler) toolView(tool *tools.Tool) view {
	v := h.newView(tool.Title+" - "+h.siteName, tool.Summary, tool.Path())
	v.Tool = tool
	return v
}

// showTool renders the empty form with default values.
// GET /<tool>.
func (h *Handler) showTool(tool *tools.Tool) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := h.toolView(tool)
		v.Values = tool.Defaults()
		c.HTML(http.StatusOK, "tool.html", v)
	}
}

// submitTool runs the tool on the posted form and re-renders the page with
// the submitted values and either the result or the validation message.
// Rejected input is still a 200: the page itself rendered fine.
// POST /<tool>.
func (h *Handler) submitTool(tool *tools.Tool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.String(http.StatusBadRequest, "invalid form body")
			return
		}
		out := tool.Run(c.Request.PostForm)
		h.recordCalculation(c, tool, "html", out)

		v := h.toolView(tool)
		v.Values = out.Values
		v.Outcome = &out
		if g, ok := out.Result.(tools.Gauged); ok {
			v.ShowGauge, v.Gauge = true, g.GaugePercent()
		}
		if a, ok := out.Result.(tools.Advised); ok {
			v.Advice = a.AdviceLines()
		}
		c.HTML(http.StatusOK, "tool.html", v)
	}
}

/* ─── SEO ─────────────────────────────────────────────────────────────── */

// sitemapPaths is the fixed list of public pages: home, tools, info pages.
func (h *Handler) sitemapPaths() []string {
	paths := []string{"/"}
	for _, t := range h.catalog {
		paths = append(paths, t.Path())
	}
	for _, slug := range site.PageSlugs() {
		paths = append(paths, "/"+slug)
	}
	return paths
}

// GET /robots.txt.
func (h *Handler) robots(c *gin.Context) {
	c.String(http.StatusOK, h.urls.Robots())
}

// GET /sitemap.xml.
func (h *Handler) sitemap(c *gin.Context) {
	body, err := h.urls.Sitemap(h.sitemapPaths())
	if err != nil {
		c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
