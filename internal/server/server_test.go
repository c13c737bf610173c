package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfs2006/affiliate-simulator/internal/catalog"
	"github.com/tfs2006/affiliate-simulator/internal/config"
	"github.com/tfs2006/affiliate-simulator/internal/game"
	"github.com/tfs2006/affiliate-simulator/internal/save"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
	"github.com/tfs2006/affiliate-simulator/internal/telemetry"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	bal := config.Default()
	content := catalog.New(bal)
	events := telemetry.NewMemoryRepository()
	engine := game.New(game.Options{
		Balance:   bal,
		Content:   &content,
		Clock:     game.NewFakeClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)),
		RNG:       &sim.SeqRNG{Seq: []float64{0.99}},
		Telemetry: events,
	})
	store, err := save.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return New(engine, store, events, content).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestHealthz(t *testing.T) {
	w, body := doJSON(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetState(t *testing.T) {
	w, body := doJSON(t, newTestServer(t), http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["day"])
	assert.Equal(t, float64(500), body["cash"])
}

func TestGetCatalog(t *testing.T) {
	w, body := doJSON(t, newTestServer(t), http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["actions"], 10)
	assert.Len(t, body["shop"], 12)
	assert.Len(t, body["wheel"], 7)
}

func TestPostAction(t *testing.T) {
	h := newTestServer(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/actions/network", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(90), body["energy"])

	w, _ = doJSON(t, h, http.MethodPost, "/api/actions/yodeling", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostDay(t *testing.T) {
	w, body := doJSON(t, newTestServer(t), http.MethodPost, "/api/day", "")
	require.Equal(t, http.StatusOK, w.Code)

	state, ok := body["state"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), state["day"])
}

func TestPostWheel_CooldownConflicts(t *testing.T) {
	h := newTestServer(t)

	w, _ := doJSON(t, h, http.MethodPost, "/api/wheel", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, h, http.MethodPost, "/api/wheel", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errObj["message"], "cooling down")
}

func TestPostShop(t *testing.T) {
	h := newTestServer(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/shop/opus", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(200), body["cash"])

	w, _ = doJSON(t, h, http.MethodPost, "/api/shop/opus", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, h, http.MethodPost, "/api/shop/analytics", "")
	assert.Equal(t, http.StatusConflict, w.Code, "remaining cash cannot afford a second upgrade")
}

func TestPostReset(t *testing.T) {
	h := newTestServer(t)
	_, _ = doJSON(t, h, http.MethodPost, "/api/day", "")

	w, body := doJSON(t, h, http.MethodPost, "/api/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["day"])
}

func TestPutAutoDay(t *testing.T) {
	h := newTestServer(t)

	w, body := doJSON(t, h, http.MethodPut, "/api/settings/autoday", `{"enabled":false,"ms":500}`)
	require.Equal(t, http.StatusOK, w.Code)
	settings, ok := body["settings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, settings["auto_day"])
	assert.Equal(t, float64(2000), settings["auto_ms"])

	w, _ = doJSON(t, h, http.MethodPut, "/api/settings/autoday", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlotLifecycle(t *testing.T) {
	h := newTestServer(t)

	_, _ = doJSON(t, h, http.MethodPost, "/api/day", "")

	w, _ := doJSON(t, h, http.MethodPut, "/api/slots/main", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, _ = doJSON(t, h, http.MethodPost, "/api/day", "")

	w, body := doJSON(t, h, http.MethodPost, "/api/slots/main/load", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["day"], "load rewinds to the saved day")

	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var infos []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "main", infos[0]["slot"])

	w, _ = doJSON(t, h, http.MethodDelete, "/api/slots/main", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doJSON(t, h, http.MethodPost, "/api/slots/main/load", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTelemetryEndpoint(t *testing.T) {
	h := newTestServer(t)
	_, _ = doJSON(t, h, http.MethodPost, "/api/actions/network", "")

	req := httptest.NewRequest(http.MethodGet, "/api/telemetry", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.NotEmpty(t, events)
	assert.Equal(t, "action_applied", events[0]["type"])

	w, _ := doJSON(t, h, http.MethodGet, "/api/telemetry?since=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsExposed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sim_day")
}
