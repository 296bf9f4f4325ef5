package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewok0116/CS308-Project/internal/store"
)

func newRouter(t *testing.T, docs store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHandler(docs).RegisterRoutes(router)

	return router
}

func get(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))

	return w, decoded
}

func TestHealth(t *testing.T) {
	router := newRouter(t, store.NewMemory())

	w, body := get(t, router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRootListsEndpoints(t *testing.T) {
	router := newRouter(t, store.NewMemory())

	w, body := get(t, router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend is running", body["message"])
	assert.Contains(t, body["endpoints"], "/register")
	assert.Contains(t, body["endpoints"], "/users/:id/role")
}

func TestListCollections(t *testing.T) {
	docs := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, docs.Set(ctx, "users", "1", map[string]any{"a": 1}))
	require.NoError(t, docs.Set(ctx, "products", "1", map[string]any{"a": 1}))

	router := newRouter(t, docs)

	w, body := get(t, router, "/collections")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []any{"users", "products"}, body["collections"])
}

func TestListCollectionsEmpty(t *testing.T) {
	router := newRouter(t, store.NewMemory())

	w, body := get(t, router, "/collections")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, body["collections"])
}

func TestReadCollectionCapsAtTwenty(t *testing.T) {
	docs := store.NewMemory()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("%02d", i)
		require.NoError(t, docs.Set(ctx, "products", id, map[string]any{"n": id}))
	}

	router := newRouter(t, docs)

	w, body := get(t, router, "/collections/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "products", body["collection"])
	assert.Equal(t, float64(20), body["count"])

	documents, ok := body["documents"].([]any)
	require.True(t, ok)
	assert.Len(t, documents, 20)

	first, ok := documents[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, first, "id")
}

func TestReadCollectionEmpty(t *testing.T) {
	router := newRouter(t, store.NewMemory())

	w, body := get(t, router, "/collections/ghosts")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["documents"])
}
