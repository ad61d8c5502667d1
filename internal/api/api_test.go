// Package api_test provides behavior tests for the API package.
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jroosing/dnsname/internal/api"
	"github.com/jroosing/dnsname/internal/api/models"
	"github.com/jroosing/dnsname/internal/config"
	"github.com/jroosing/dnsname/internal/database"
	"github.com/jroosing/dnsname/internal/dname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Input: config.InputConfig{Format: config.InputHex},
		API: config.APIConfig{
			Host: "127.0.0.1",
			Port: 8053,
		},
	}
}

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// ============================================================================
// Server Creation Tests
// ============================================================================

func TestNew_CreatesServer(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)
	assert.NotNil(t, server)
	assert.NotNil(t, server.Engine())
}

func TestNew_PanicsOnNilConfig(t *testing.T) {
	assert.Panics(t, func() {
		api.New(nil, nil, nil)
	})
}

func TestServer_Addr(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.Host = "0.0.0.0"
	cfg.API.Port = 9090

	assert.Equal(t, "0.0.0.0:9090", api.New(cfg, nil, nil).Addr())
}

// ============================================================================
// System Endpoint Tests
// ============================================================================

func TestRoutes_HealthEndpoint(t *testing.T) {
	server := api.New(createTestConfig(), openTestDB(t), nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[models.StatusResponse](t, w).Status)
}

func TestRoutes_HealthEndpoint_ClosedDB(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	server := api.New(createTestConfig(), db, nil)
	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutes_StatsEndpoint(t *testing.T) {
	db := openTestDB(t)
	_, err := db.AddName(t.Context(), dname.MustFromString("example.com."), "")
	require.NoError(t, err)
	server := api.New(createTestConfig(), db, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ServerStatsResponse](t, w)
	assert.NotEmpty(t, resp.Uptime)
	assert.Positive(t, resp.GoRoutines)
	assert.Equal(t, 1, resp.IndexedNames)
}

// ============================================================================
// Name Endpoint Tests
// ============================================================================

func TestRoutes_CheckName(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	tests := []struct {
		name string
		body string
		want models.CheckNameResponse
	}{
		{
			name: "configured hex format",
			body: `{"name": "03 77 77 77 07 65 78 61 6d 70 6c 65 03 63 6f 6d 00"}`,
			want: models.CheckNameResponse{
				Valid:      true,
				Name:       "www.example.com.",
				Wire:       "03 77 77 77 07 65 78 61 6d 70 6c 65 03 63 6f 6d 00",
				Length:     17,
				LabelCount: 4,
				Absolute:   true,
			},
		},
		{
			name: "relative text",
			body: `{"name": "www", "format": "text", "relative": true}`,
			want: models.CheckNameResponse{Valid: true, Name: "www", Wire: "03 77 77 77", Length: 4, LabelCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(server.Engine(), http.MethodPost, "/api/v1/names/check", tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, decode[models.CheckNameResponse](t, w))
		})
	}
}

func TestRoutes_CheckName_Invalid(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/names/check", `{"name": "c0 0c"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.CheckNameResponse](t, w)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Error, "compressed")

	w = performRequest(server.Engine(), http.MethodPost, "/api/v1/names/check", `{"name": "x", "format": "base64"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(server.Engine(), http.MethodPost, "/api/v1/names/check", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_SortNames(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	body := `{"names": ["z.example.", "a..b", "\\200.z.example.", "example.", "*.z.example.", "a.example."]}`
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/names/sort", body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.SortNamesResponse](t, w)
	assert.Equal(t, []string{"example.", "a.example.", "z.example.", "*.z.example.", "\\200.z.example."}, resp.Names)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "a..b", resp.Rejected[0].Input)
}

func TestRoutes_NameLabels(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/names/www.example.com./labels", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.LabelsResponse](t, w)
	assert.Equal(t, "www.example.com.", resp.Name)
	assert.Equal(t, 17, resp.Length)
	require.Len(t, resp.Labels, 4)
	assert.Equal(t, 4, resp.Labels[1].Offset)
	assert.Equal(t, "example", resp.Labels[1].Text)
	assert.True(t, resp.Labels[3].Root)

	w = performRequest(server.Engine(), http.MethodGet, "/api/v1/names/www.example/labels?relative=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.LabelsResponse](t, w).Labels, 2)
}

// ============================================================================
// Index Endpoint Tests
// ============================================================================

func TestRoutes_Index(t *testing.T) {
	server := api.New(createTestConfig(), openTestDB(t), nil)
	r := server.Engine()

	for _, name := range []string{"z.example.", "example.", "a.example.", "other.test."} {
		w := performRequest(r, http.MethodPost, "/api/v1/index", fmt.Sprintf(`{"name": %q, "note": "n"}`, name))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := performRequest(r, http.MethodGet, "/api/v1/index?under=example.", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.IndexListResponse](t, w)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, 4, list.Total)
	names := make([]string, 0, len(list.Entries))
	for _, e := range list.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"example.", "a.example.", "z.example."}, names)

	w = performRequest(r, http.MethodGet, "/api/v1/index/A.EXAMPLE.", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a.example.", decode[models.IndexEntry](t, w).Name)

	w = performRequest(r, http.MethodGet, "/api/v1/index/z.example./next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "other.test.", decode[models.IndexEntry](t, w).Name)

	w = performRequest(r, http.MethodGet, "/api/v1/index/other.test./next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "example.", decode[models.IndexEntry](t, w).Name, "wraps around")

	w = performRequest(r, http.MethodDelete, "/api/v1/index/a.example.", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/api/v1/index/a.example.", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(r, http.MethodDelete, "/api/v1/index/a.example.", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_Index_BadInput(t *testing.T) {
	server := api.New(createTestConfig(), openTestDB(t), nil)
	r := server.Engine()

	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodPost, "/api/v1/index", `{"name": "a..b"}`).Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/api/v1/index?limit=-1", "").Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/api/v1/index/a..b", "").Code)
	assert.Equal(t, http.StatusNotFound, performRequest(r, http.MethodGet, "/api/v1/index/example./next", "").Code)
}

func TestRoutes_Index_NoDatabase(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/index", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ============================================================================
// API Key Protection Tests
// ============================================================================

func TestRoutes_WithAPIKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.APIKey = "secret-key"
	server := api.New(cfg, nil, nil)

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{"valid key", "secret-key", http.StatusOK},
		{"invalid key", "wrong-key", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.key != "" {
				req.Header.Set("X-Api-Key", tt.key)
			}
			w := httptest.NewRecorder()
			server.Engine().ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

// ============================================================================
// Swagger and Static Tests
// ============================================================================

func TestRoutes_SwaggerEndpoint(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(server.Engine(), http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/index/{name}/next")
}

func TestRoutes_StaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>names</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	cfg := createTestConfig()
	cfg.API.StaticDir = dir
	server := api.New(cfg, nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/app.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")

	w = performRequest(server.Engine(), http.MethodGet, "/some/client/route", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "names")

	w = performRequest(server.Engine(), http.MethodGet, "/api/v1/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_NotFound(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// Server Lifecycle Tests
// ============================================================================

func TestServer_ListenServeShutdown(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.Port = 0 // Let the OS pick a port
	server := api.New(cfg, nil, nil)

	ln, err := server.Listen(t.Context())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- server.Serve(ln) }()

	resp, err := http.Get("http://" + server.Addr() + "/api/v1/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))
	assert.NoError(t, <-done)
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))
}
