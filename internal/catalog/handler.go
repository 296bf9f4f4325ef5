package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/store"
)

// browseLimit caps how many documents a collection listing returns.
const browseLimit = 20

// Handler serves the health check, the root helper and the
// collection-browsing convenience endpoints.
type Handler struct {
	docs store.Store
}

func NewHandler(docs store.Store) *Handler {
	return &Handler{docs: docs}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/collections", h.ListCollections)
	r.GET("/collections/:name", h.ReadCollection)
	r.GET("/", h.Root)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListCollections(c *gin.Context) {
	names, err := h.docs.Collections(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to list collections",
			"details": err.Error(),
		})
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"collections": names})
}

func (h *Handler) ReadCollection(c *gin.Context) {
	name := c.Param("name")

	docs, err := h.docs.Documents(c.Request.Context(), name, browseLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read collection " + name,
			"details": err.Error(),
		})
		return
	}

	documents := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		entry := map[string]any{"id": doc.ID}
		for k, v := range doc.Data {
			entry[k] = v
		}
		documents = append(documents, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"collection": name,
		"count":      len(documents),
		"documents":  documents,
	})
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Backend is running",
		"endpoints": []string{
			"/health",
			"/collections",
			"/collections/:name",
			"/register",
			"/login",
			"/roles",
			"/users/:id/role",
		},
	})
}
