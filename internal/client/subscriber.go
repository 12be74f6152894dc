package client

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Sink принимает события канала и состояние связи. Реализуется Reducer.
type Sink interface {
	Dispatch(event models.InboundEvent)
	SetLink(up bool)
}

// Subscriber держит подключение к /ws и переподключается после обрыва
type Subscriber struct {
	url            string
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
	logger         *logrus.Logger
}

func NewSubscriber(serverURL string, reconnectDelay time.Duration, logger *logrus.Logger) (*Subscriber, error) {
	wsURL, err := websocketURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Subscriber{
		url:            wsURL,
		dialer:         websocket.DefaultDialer,
		reconnectDelay: reconnectDelay,
		logger:         logger,
	}, nil
}

// websocketURL переводит http(s)://host в ws(s)://host/ws
func websocketURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", errors.Wrap(err, "parse server url")
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", errors.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	u.Path = "/ws"
	u.RawQuery = ""
	return u.String(), nil
}

// Run работает до отмены ctx. После каждого обрыва сообщает SetLink(false) и ждет reconnectDelay.
func (s *Subscriber) Run(ctx context.Context, sink Sink) {
	for {
		err := s.session(ctx, sink)
		sink.SetLink(false)
		if ctx.Err() != nil {
			return
		}
		s.logger.WithError(err).Warnf("WebSocket disconnected, reconnecting in %s", s.reconnectDelay)

		t := time.NewTimer(s.reconnectDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

func (s *Subscriber) session(ctx context.Context, sink Sink) error {
	conn, resp, err := s.dialer.DialContext(ctx, s.url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return errors.Wrap(err, "dial websocket")
	}
	defer conn.Close()

	// Разблокирует ReadMessage при отмене ctx
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	s.logger.WithField("url", s.url).Info("WebSocket connected")

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "read websocket")
		}

		var event models.InboundEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			s.logger.WithError(err).Warn("Discarding malformed WebSocket frame")
			continue
		}
		sink.Dispatch(event)
	}
}
