package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []models.InboundEvent
	downs  int
}

func (s *recordingSink) Dispatch(event models.InboundEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) SetLink(up bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !up {
		s.downs++
	}
}

func (s *recordingSink) snapshot() ([]models.InboundEvent, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InboundEvent(nil), s.events...), s.downs
}

func TestWebsocketURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:5000", "ws://localhost:5000/ws", false},
		{"https://dash.example.org/", "wss://dash.example.org/ws", false},
		{"ws://10.0.0.1:5000/anything?x=1", "ws://10.0.0.1:5000/ws", false},
		{"ftp://host", "", true},
	}
	for _, tt := range tests {
		got, err := websocketURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSubscriber_DeliversInOrderAndReconnects(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"connected","message":"WebSocket connection established"}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`garbage`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"new_alert","data":{"id":"a1"}}`))
		// Сервер рвет соединение, клиент должен переподключиться
	}))
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	sub, err := NewSubscriber(srv.URL, 10*time.Millisecond, logger)
	require.NoError(t, err)

	sink := &recordingSink{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sub.Run(ctx, sink)
		close(done)
	}()

	require.Eventually(t, func() bool {
		events, downs := sink.snapshot()
		return len(events) >= 4 && downs >= 1
	}, 2*time.Second, 10*time.Millisecond)

	events, _ := sink.snapshot()
	assert.Equal(t, models.EventConnected, events[0].Type)
	assert.Equal(t, models.EventNewAlert, events[1].Type)
	assert.JSONEq(t, `{"id":"a1"}`, string(events[1].Data))
	assert.Equal(t, models.EventConnected, events[2].Type)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop after cancel")
	}
}
