package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestFetcher(t *testing.T, mux *http.ServeMux) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewFetcher(srv.URL+"/", time.Second)
}

func TestFetcher_Officer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/officer/{badge}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("badge") != "4127" {
			writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Officer not found"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.Officer{ID: "o1", Badge: "4127", Name: "Officer Johnson"})
	})
	f := newTestFetcher(t, mux)

	officer, err := f.Officer(context.Background(), "4127")
	require.NoError(t, err)
	require.NotNil(t, officer)
	assert.Equal(t, "Officer Johnson", officer.Name)

	missing, err := f.Officer(context.Background(), "0000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetcher_Lists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/routes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Route{{ID: "r1"}, {ID: "r2"}})
	})
	mux.HandleFunc("GET /api/alerts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Alert{{ID: "a1", Priority: models.PriorityCritical}})
	})
	mux.HandleFunc("GET /api/emergency-services", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.EmergencyService{{ID: "s1"}})
	})
	f := newTestFetcher(t, mux)
	ctx := context.Background()

	routes, err := f.Routes(ctx)
	require.NoError(t, err)
	assert.Len(t, routes, 2)

	alerts, err := f.ActiveAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.PriorityCritical, alerts[0].Priority)

	services, err := f.EmergencyServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestFetcher_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/alerts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch alerts"})
	})
	f := newTestFetcher(t, mux)

	alerts, err := f.ActiveAlerts(context.Background())

	require.Error(t, err)
	assert.Nil(t, alerts)
	assert.Contains(t, err.Error(), "fetch alerts")
	assert.Contains(t, err.Error(), "Failed to fetch alerts")
}

func TestFetcher_TriggerEmergency(t *testing.T) {
	var got models.EmergencyRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/emergency-alert", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"message": "Emergency alert sent",
			"alert":   models.Alert{ID: "e1", Priority: models.PriorityCritical},
		})
	})
	f := newTestFetcher(t, mux)

	alert, err := f.TriggerEmergency(context.Background(), models.EmergencyRequest{OfficerID: "o1", Location: "Pier 4"})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "e1", alert.ID)
	assert.Equal(t, "o1", got.OfficerID)
	assert.Equal(t, "Pier 4", got.Location)
}
