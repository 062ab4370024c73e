package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/reference"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	log := zerolog.New(nil).Level(zerolog.Disabled)

	store, err := reference.Load()
	require.NoError(t, err)

	handler := NewHandler(impact.NewCalculator(store, log), log)
	router := chi.NewRouter()
	router.Route("/api", handler.RegisterRoutes)
	return router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRegisterRoutes(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	store, err := reference.Load()
	require.NoError(t, err)
	handler := NewHandler(impact.NewCalculator(store, log), log)

	router := chi.NewRouter()
	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	}, "RegisterRoutes should not panic")
}

func TestHandleInit(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/init", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)

	var state impact.BaselineState
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, 2026, state.Year)
	assert.Equal(t, "+1.20°C", state.TemperatureFormatted)
	assert.Len(t, state.BAUProjection, 25)
	assert.Len(t, state.HistoricalData, 26)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	policies, ok := raw["policies"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, policies, reference.LeverCount)
}

func TestHandleCalculate(t *testing.T) {
	router := setupRouter(t)

	body := `{"renewable_energy": 100, "carbon_tax": "50", "unknown_lever": 7}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 210.0, result["total_cost"])
	assert.Equal(t, "$210.00B", result["total_cost_formatted"])
	assert.Equal(t, -0.195, result["temperature_mitigation"])
	assert.Equal(t, "-0.195°C", result["temperature_mitigation_formatted"])
	assert.Equal(t, false, result["bankruptcy_flag"])
	assert.Nil(t, result["warning_message"])
	assert.Contains(t, result, "warning_message")
	assert.Len(t, result["policy_breakdown"], 2)
	assert.Len(t, result["fiscal_treemap"], 1)
	assert.Len(t, result["efficiency_index"], 2)
	assert.Len(t, result["trend_line"], 25)

	applied := result["policies_applied"].(map[string]interface{})
	assert.Equal(t, 50.0, applied["carbon_tax"])
	assert.NotContains(t, applied, "unknown_lever")
}

func TestHandleCalculate_MissingInputs(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []string{"", "{}", "null"} {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		env := decode(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Missing policy inputs", env.Error)
	}
}

func TestHandleCalculate_MalformedJSON(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{"ev_adoption":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid JSON body", env.Error)
}

func TestHandleCalculate_ByteIdenticalResponses(t *testing.T) {
	router := setupRouter(t)
	body := `{"ev_adoption": 33, "reforestation": 71, "waste_management": 5}`

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}
