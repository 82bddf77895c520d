package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"inventory-service/internal/adapters/web"
	"inventory-service/internal/core"
	"inventory-service/internal/db"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires the real service and handler against the test
// database. Skipped unless TEST_DATABASE_URL is set.
func setupTestServer(t *testing.T) http.Handler {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dbURL)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, db.EnsureSchema(ctx, pool), "bootstrap test schema")
	_, err = pool.Exec(ctx, `TRUNCATE TABLE items`)
	require.NoError(t, err, "clean items table")

	return web.NewHandler(core.NewItemService(pool), zerolog.Nop(), pool.Ping)
}

func postItem(t *testing.T, h http.Handler, body string) core.Item {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/items", body)
	require.Equal(t, http.StatusCreated, rec.Code, "create: %s", rec.Body.String())
	var item core.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	return item
}

func TestItemLifecycle(t *testing.T) {
	h := setupTestServer(t)

	// Create
	item := postItem(t, h, `{"name":"Test Item","unit":"pcs","stock":10.0,"rack":"A1","location":"Warehouse 1"}`)
	assert.Equal(t, "Test Item", item.Name)
	assert.Equal(t, 10.0, item.Stock)
	assert.NotEmpty(t, item.ID)

	// Fetch it back
	rec := doJSON(t, h, http.MethodGet, "/items/"+item.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched core.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, item.ID, fetched.ID)
	assert.Equal(t, "Test Item", fetched.Name)
	assert.Equal(t, 10.0, fetched.Stock)

	// Delete, then the visible lookup 404s
	rec = doJSON(t, h, http.MethodDelete, "/items/"+item.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/items/"+item.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemUpdateOverHTTP(t *testing.T) {
	h := setupTestServer(t)

	item := postItem(t, h, `{"name":"Test Item for Update","unit":"pcs","stock":5.0}`)

	rec := doJSON(t, h, http.MethodPut, "/items/"+item.ID.String(),
		`{"name":"Updated","unit":"kg","stock":10.0,"rack":"B2","location":"Warehouse 2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated core.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Updated", updated.Name)
	assert.Equal(t, "kg", updated.Unit)
	assert.Equal(t, 10.0, updated.Stock)
	require.NotNil(t, updated.Rack)
	assert.Equal(t, "B2", *updated.Rack)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Warehouse 2", *updated.Location)
}

func TestItemListOverHTTP(t *testing.T) {
	h := setupTestServer(t)

	// Empty store lists as an empty array.
	rec := doJSON(t, h, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	visible := postItem(t, h, `{"name":"Visible","unit":"pcs","stock":1}`)
	hidden := postItem(t, h, `{"name":"Hidden","unit":"pcs","stock":1}`)

	rec = doJSON(t, h, http.MethodDelete, "/items/"+hidden.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []core.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, visible.ID, items[0].ID)
}

func TestHealthOverHTTP(t *testing.T) {
	h := setupTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
