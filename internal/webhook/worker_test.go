package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/tactical_dashboard/internal/config"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *DispatchWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewDispatchWorker(nil, logger, cfg)
}

func testEvent() DispatchEvent {
	return DispatchEvent{
		OfficerID: "1",
		Alert:     models.Alert{ID: "e1", Type: models.EmergencyAlertType, Priority: models.PriorityCritical},
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := []byte(`{"officer_id":"1"}`)
	var gotSignature string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	err := worker.deliver(context.Background(), testEvent(), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	var hasSignature atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSignature.Store(r.Header.Get("X-Webhook-Signature") != "")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookTimeout: time.Second, WebhookMaxRetries: 1})

	require.NoError(t, worker.deliver(context.Background(), testEvent(), []byte(`{}`)))
	assert.False(t, hasSignature.Load())
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	require.NoError(t, worker.deliver(context.Background(), testEvent(), []byte(`{}`)))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	err := worker.deliver(context.Background(), testEvent(), []byte(`{}`))

	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	worker := newTestWorker(&config.Config{WebhookTimeout: time.Second})

	assert.NoError(t, worker.deliver(context.Background(), testEvent(), []byte(`{}`)))
}

func TestDeliver_StopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := worker.deliver(ctx, testEvent(), []byte(`{}`))

	assert.ErrorIs(t, err, context.Canceled)
}
