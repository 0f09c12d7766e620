package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"lg/health-tools-go/internal/tools"
)

/* ─── Request / Response types ───────────────────────────────────────── */

// runToolResponse is the success body of POST /api/tools/:slug.
type runToolResponse struct {
	Tool   string            `json:"tool"`
	Inputs map[string]string `json:"inputs"`
	Result tools.Result      `json:"result"`
	Stats  []tools.Stat      `json:"stats"`
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// listTools returns the catalogue with each tool's fields.
// GET /api/tools.
func (h *Handler) listTools(c *gin.Context) {
	type entry struct {
		*tools.Tool
		Path string `json:"path"`
	}
	out := make([]entry, 0, len(h.catalog))
	for _, t := range h.catalog {
		out = append(out, entry{Tool: t, Path: t.Path()})
	}
	c.JSON(http.StatusOK, out)
}

// runTool runs one tool on a JSON object or a form body.
// POST /api/tools/:slug. Validation failures return 422 with the message and
// the offending field.
func (h *Handler) runTool(c *gin.Context) {
	tool, ok := tools.Lookup(c.Param("slug"))
	if !ok {
		apiError(c, http.StatusNotFound, "unknown tool")
		return
	}

	in, err := requestInput(c)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	out := tool.Run(in)
	h.recordCalculation(c, tool, "api", out)
	if !out.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": out.Err, "field": out.Field, "inputs": out.Values})
		return
	}

	c.JSON(http.StatusOK, runToolResponse{
		Tool:   tool.Slug,
		Inputs: out.Values,
		Result: out.Result,
		Stats:  out.Result.Stats(),
	})
}

// requestInput binds a flat JSON object (string, number or bool values) or a
// URL-encoded form into url.Values so both go through the same parsing.
func requestInput(c *gin.Context) (url.Values, error) {
	if c.ContentType() != binding.MIMEJSON {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		return c.Request.PostForm, nil
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	in := url.Values{}
	for k, v := range body {
		switch v := v.(type) {
		case string:
			in.Set(k, v)
		case float64:
			in.Set(k, strconv.FormatFloat(v, 'g', -1, 64))
		case bool:
			in.Set(k, strconv.FormatBool(v))
		case nil:
		default:
			return nil, fmt.Errorf("field %q must be a string or number", k)
		}
	}
	return in, nil
}
