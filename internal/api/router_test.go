package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/api/handlers"
	"inventory-optimizer/internal/cache"
	"inventory-optimizer/internal/config"
	"inventory-optimizer/internal/metrics"
	"inventory-optimizer/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, policy allocator.Policy) (*gin.Engine, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Server{
		StaticDir:      filepath.Join(t.TempDir(), "missing"),
		Policy:         string(policy),
		ResultCacheTTL: time.Minute,
	}
	deps := Deps{
		Results: cache.New(cfg.ResultCacheTTL),
		Metrics: metrics.New(),
	}
	return NewRouter(cfg, deps), deps
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestOptimizeSuccess(t *testing.T) {
	r, deps := newTestServer(t, allocator.PolicyFailFast)

	rec := post(r, "/optimize", `{"max_space": 100, "data": [
		{"Region_Name": "A", "Predicted_Quantity": 10, "Space_Per_Unit": 5, "Value_Per_Unit": 50}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"max_space": 100,
		"remaining_space": 50,
		"total_value": 500,
		"allocation": [
			{"Region_Name": "A", "Units_Allocated": 10, "Space_Used": 50, "Value": 500, "Value_Per_m3": 10}
		]
	}`, rec.Body.String())

	id := rec.Header().Get(handlers.AllocationIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.Metrics.Requests.WithLabelValues(metrics.OutcomeOK)))

	got := httptest.NewRecorder()
	r.ServeHTTP(got, httptest.NewRequest(http.MethodGet, "/api/v1/optimize/"+id, nil))
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, rec.Body.String(), got.Body.String())
}

func TestOptimizeEmptyAllocationIsArray(t *testing.T) {
	r, _ := newTestServer(t, allocator.PolicyFailFast)

	rec := post(r, "/api/v1/optimize", `{"max_space": 1, "data": [
		{"Region_Name": "A", "Predicted_Quantity": 10, "Space_Per_Unit": 5, "Value_Per_Unit": 50}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []any{}, body["allocation"])
	assert.Equal(t, 1.0, body["remaining_space"])
}

func TestOptimizeValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		outcome model.ErrorKind
	}{
		{
			name:    "negative capacity",
			body:    `{"max_space": -5, "data": [{"Region_Name": "A", "Predicted_Quantity": 1, "Space_Per_Unit": 1, "Value_Per_Unit": 1}]}`,
			want:    "max_space must be a positive number",
			outcome: model.KindInvalidCapacity,
		},
		{
			name:    "string capacity",
			body:    `{"max_space": "100", "data": [{"Region_Name": "A", "Predicted_Quantity": 1, "Space_Per_Unit": 1, "Value_Per_Unit": 1}]}`,
			want:    "max_space must be a positive number",
			outcome: model.KindInvalidCapacity,
		},
		{
			name:    "empty data",
			body:    `{"max_space": 10, "data": []}`,
			want:    "items must be a non-empty list",
			outcome: model.KindInvalidCandidateList,
		},
		{
			name:    "data not a list",
			body:    `{"max_space": 10, "data": {"Region_Name": "A"}}`,
			want:    "items must be a non-empty list",
			outcome: model.KindInvalidCandidateList,
		},
		{
			name:    "missing value",
			body:    `{"max_space": 10, "data": [{"Region_Name": "A", "Predicted_Quantity": 1, "Space_Per_Unit": 1}]}`,
			want:    "Item at index 0 is missing keys: Value_Per_Unit",
			outcome: model.KindMissingField,
		},
		{
			name:    "zero space",
			body:    `{"max_space": 10, "data": [{"Region_Name": "A", "Predicted_Quantity": 1, "Space_Per_Unit": 0, "Value_Per_Unit": 1}]}`,
			want:    "Space_Per_Unit must be > 0 for region A",
			outcome: model.KindInvalidSpacePerUnit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, deps := newTestServer(t, allocator.PolicyFailFast)
			rec := post(r, "/optimize", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error": `+mustJSON(t, tt.want)+`}`, rec.Body.String())
			assert.Empty(t, rec.Header().Get(handlers.AllocationIDHeader))
			assert.Equal(t, 1.0, testutil.ToFloat64(deps.Metrics.Requests.WithLabelValues(string(tt.outcome))))
		})
	}
}

func TestOptimizeCollectAllPolicy(t *testing.T) {
	r, _ := newTestServer(t, allocator.PolicyCollectAll)

	rec := post(r, "/optimize", `{"max_space": 10, "data": [
		{"Region_Name": "A", "Predicted_Quantity": -1, "Space_Per_Unit": 1, "Value_Per_Unit": 1},
		{"Region_Name": "B", "Predicted_Quantity": 1, "Space_Per_Unit": 1, "Value_Per_Unit": -1}
	]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t,
		"Predicted_Quantity must be >= 0 for region A\nValue_Per_Unit must be >= 0 for region B",
		body["error"])
}

func TestOptimizeBadBodies(t *testing.T) {
	r, _ := newTestServer(t, allocator.PolicyFailFast)

	for _, body := range []string{"", "{}", "null"} {
		rec := post(r, "/optimize", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error": "No JSON received"}`, rec.Body.String(), "body %q", body)
	}

	rec := post(r, "/optimize", `{"max_space": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON")
}

func TestGetResultNotFound(t *testing.T) {
	r, _ := newTestServer(t, allocator.PolicyFailFast)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/optimize/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestHealthPoliciesAndMetrics(t *testing.T) {
	r, _ := newTestServer(t, allocator.PolicyCollectAll)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/policies", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"policies": [
		{"name": "fail_fast", "description": "Reject the request at the first invalid input, checking candidates in order.", "default": false},
		{"name": "collect_all", "description": "Check every candidate and report all violations in one error message.", "default": true}
	]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "inventory_optimize_duration_seconds")
}

func TestStaticFrontend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))

	r := NewRouter(&config.Server{StaticDir: dir}, Deps{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory/plan", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
