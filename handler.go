package main

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/health-tools-go/internal/config"
	"lg/health-tools-go/internal/logging"
	"lg/health-tools-go/internal/metrics"
	"lg/health-tools-go/internal/site"
	"lg/health-tools-go/internal/tools"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler holds shared dependencies (config, logger, metrics, rendered pages)
// for all route handlers. Nothing in it changes after newHandler returns.
type Handler struct {
	siteName string
	urls     site.URLBuilder
	log      *zap.Logger
	metrics  *metrics.Metrics // nil when metrics are disabled
	pages    map[string]site.Page
	catalog  []*tools.Tool
}

// newHandler renders the information pages up front so a broken page fails
// at startup rather than on first request.
func newHandler(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (*Handler, error) {
	pages, err := site.Pages(cfg.Site.Name)
	if err != nil {
		return nil, err
	}
	return &Handler{
		siteName: cfg.Site.Name,
		urls:     site.URLBuilder{BaseURL: cfg.Site.BaseURL},
		log:      log,
		metrics:  m,
		pages:    pages,
		catalog:  tools.Catalogue(),
	}, nil
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// recordCalculation logs and counts one tool run. Rejected input is routine
// and only logged at debug level.
func (h *Handler) recordCalculation(c *gin.Context, tool *tools.Tool, channel string, out tools.Outcome) {
	if h.metrics != nil {
		h.metrics.Calculation(tool.Slug, channel, out.OK())
	}
	if !out.OK() {
		h.log.Debug("calculation rejected",
			zap.String("request_id", logging.RequestID(c)),
			zap.String("tool", tool.Slug),
			zap.String("field", out.Field),
			zap.String("error", out.Err))
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// parseTemplates loads the embedded page templates.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// newRouter builds the gin engine with middleware, templates and routes.
func (h *Handler) newRouter() (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetTrustedProxies(nil)
	router.SetHTMLTemplate(tmpl)
	router.Use(logging.Middleware(h.log), logging.Recovery(h.log))
	if h.metrics != nil {
		router.Use(h.metrics.Middleware())
	}
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "page not found")
	})

	h.registerRoutes(router)
	return router, nil
}

// registerRoutes registers all routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Pages
	router.GET("/", h.index)
	for _, slug := range site.PageSlugs() {
		router.GET("/"+slug, h.infoPage(slug))
	}

	// Tools: GET shows the empty form, POST computes.
	for _, tool := range h.catalog {
		router.GET(tool.Path(), h.showTool(tool))
		router.POST(tool.Path(), h.submitTool(tool))
	}

	// SEO and operations
	router.GET("/robots.txt", h.robots)
	router.GET("/sitemap.xml", h.sitemap)
	router.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	// JSON API
	api := router.Group("/api")
	api.GET("/tools", h.listTools)
	api.POST("/tools/:slug", h.runTool)
}
