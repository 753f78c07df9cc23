// Package handlers implements the portal backend convention over an
// in-memory store: JSON detail and search endpoints, form-encoded
// writes with a _method override, and a minimal HTML listing whose
// table body the client's reload path scrapes.
package handlers

import (
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adminclient/entity"
	"adminclient/internal/store"
)

// EntityHandler serves one entity type.
type EntityHandler struct {
	store *store.Store
}

// NewEntityHandler wraps a store.
func NewEntityHandler(s *store.Store) *EntityHandler {
	return &EntityHandler{store: s}
}

// Mount registers the entity routes on the group.
func (h *EntityHandler) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/:id", h.Get)
	g.POST("/:id", h.Write)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

// List renders the listing page. It is deliberately minimal: a table
// with a header row and one body row per record is everything the
// reload-scrape flow needs.
func (h *EntityHandler) List(c *gin.Context) {
	cfg := h.store.Config()
	recs := h.store.All()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>")
	b.WriteString(html.EscapeString(cfg.PluralName))
	b.WriteString("</title></head><body><table><thead><tr>")
	b.WriteString("<th>" + html.EscapeString(cfg.Name) + "</th><th>Nome</th><th>Ações</th>")
	b.WriteString("</tr></thead><tbody>")
	for _, rec := range recs {
		id := rec.String(cfg.IdentityKey)
		b.WriteString("<tr data-id=\"" + html.EscapeString(entity.EscapeID(id)) + "\">")
		b.WriteString("<td>" + html.EscapeString(id) + "</td>")
		b.WriteString("<td>" + html.EscapeString(rec.String("name")) + "</td>")
		b.WriteString("<td></td></tr>")
	}
	b.WriteString("</tbody></table></body></html>")

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// Get returns one record as JSON.
func (h *EntityHandler) Get(c *gin.Context) {
	id := c.Param("id")
	rec, ok := h.store.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, "not_found", h.store.Config().Name+" not found")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Search filters records by term. No matches answer 204, which the
// client treats as an empty result, not an error.
func (h *EntityHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, []entity.Record{})
		return
	}
	recs := h.store.Search(q)
	if len(recs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// Create inserts a record from the form body and redirects back to the
// listing, the way the portal re-renders after a write.
func (h *EntityHandler) Create(c *gin.Context) {
	rec := h.recordFromForm(c)
	cfg := h.store.Config()

	id := rec.String(cfg.IdentityKey)
	if entity.Blank(id) {
		respondError(c, http.StatusBadRequest, "validation_error", cfg.IdentityKey+" is required")
		return
	}
	if _, exists := h.store.Get(id); exists {
		respondError(c, http.StatusConflict, "conflict", cfg.Name+" already exists")
		return
	}
	h.store.Put(rec)
	c.Redirect(http.StatusSeeOther, strings.TrimSuffix(c.Request.URL.Path, "/"))
}

// Write handles POST on the detail path: the _method override selects
// update or delete, matching the portal's routing convention.
func (h *EntityHandler) Write(c *gin.Context) {
	switch strings.ToUpper(c.PostForm("_method")) {
	case "PUT":
		h.update(c)
	case "DELETE":
		h.remove(c)
	default:
		respondError(c, http.StatusMethodNotAllowed, "method_not_allowed", "missing _method override")
	}
}

func (h *EntityHandler) update(c *gin.Context) {
	id := c.Param("id")
	fields := h.recordFromForm(c)
	if !h.store.Update(id, fields) {
		respondError(c, http.StatusNotFound, "not_found", h.store.Config().Name+" not found")
		return
	}
	c.Redirect(http.StatusSeeOther, h.listPath(c))
}

func (h *EntityHandler) remove(c *gin.Context) {
	id := c.Param("id")
	if !h.store.Delete(id) {
		respondError(c, http.StatusNotFound, "not_found", h.store.Config().Name+" not found")
		return
	}
	c.Redirect(http.StatusSeeOther, h.listPath(c))
}

func (h *EntityHandler) listPath(c *gin.Context) string {
	p := c.Request.URL.Path
	if i := strings.LastIndex(p, "/"); i > 0 {
		return p[:i]
	}
	return p
}

// recordFromForm converts the submitted form into a record. Checkbox
// fields arrive as "on"/"true"/"1" or not at all; number fields keep
// their string form since the store does not type values.
func (h *EntityHandler) recordFromForm(c *gin.Context) entity.Record {
	cfg := h.store.Config()

	boolFields := map[string]bool{}
	for _, f := range cfg.BooleanFields {
		boolFields[f] = true
	}

	rec := entity.Record{}
	if err := c.Request.ParseForm(); err != nil {
		return rec
	}
	for key, vals := range c.Request.PostForm {
		if key == "_method" || len(vals) == 0 {
			continue
		}
		if boolFields[key] {
			v := strings.ToLower(strings.TrimSpace(vals[0]))
			rec[key] = v == "on" || v == "true" || v == "1" || v == "yes"
			continue
		}
		rec[key] = vals[0]
	}
	// Unchecked boxes are absent from the body; record them as false so
	// edits can clear a flag.
	for f := range boolFields {
		if _, ok := rec[f]; !ok {
			rec[f] = false
		}
	}
	return rec
}
