// Package hub рассылает события канала /ws всем живым подключениям.
package hub

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Conn - одно подключение к каналу /ws.
// Send должен сохранять порядок вызовов для одного подключения.
type Conn interface {
	ID() string
	Send(payload []byte) error
	IsOpen() bool
}

// Hub хранит множество открытых подключений. Ошибка доставки одному подключению
// не влияет на доставку остальным.
type Hub struct {
	mu     sync.RWMutex
	conns  map[Conn]struct{}
	logger *logrus.Logger

	// activeUnits - имитация числа активных экипажей для status_update
	activeUnits func() int
	now         func() time.Time
}

func New(logger *logrus.Logger) *Hub {
	return &Hub{
		conns:  make(map[Conn]struct{}),
		logger: logger,
		activeUnits: func() int {
			return rand.IntN(5) + 3 // [3,7]
		},
		now: time.Now,
	}
}

// Register добавляет подключение и отправляет ему одному событие connected
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"connection_id": c.ID(),
		"connections":   total,
	}).Info("Client connected to WebSocket")

	h.Unicast(c, models.Event{
		Type:    models.EventConnected,
		Message: "WebSocket connection established",
	})
}

// Unregister идемпотентен
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	_, ok := h.conns[c]
	delete(h.conns, c)
	h.mu.Unlock()

	if ok {
		h.logger.WithField("connection_id", c.ID()).Info("Client disconnected from WebSocket")
	}
}

// Count возвращает число зарегистрированных подключений
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// BroadcastAll доставляет событие всем открытым подключениям
func (h *Hub) BroadcastAll(event models.Event) {
	h.fanOut(nil, event)
}

// BroadcastOthers доставляет событие всем открытым подключениям, кроме sender
func (h *Hub) BroadcastOthers(sender Conn, event models.Event) {
	h.fanOut(sender, event)
}

// Unicast доставляет событие только c
func (h *Hub) Unicast(c Conn, event models.Event) {
	payload, ok := h.marshal(event)
	if !ok {
		return
	}
	h.deliver(c, event.Type, payload)
}

func (h *Hub) fanOut(exclude Conn, event models.Event) {
	payload, ok := h.marshal(event)
	if !ok {
		return
	}

	// Снимок множества, запись идет без блокировки хаба
	h.mu.RLock()
	targets := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		if exclude != nil && c == exclude {
			continue
		}
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.deliver(c, event.Type, payload)
	}
}

// deliver пропускает закрытые подключения и проглатывает ошибки записи
func (h *Hub) deliver(c Conn, eventType string, payload []byte) {
	if !c.IsOpen() {
		return
	}
	if err := c.Send(payload); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"connection_id": c.ID(),
			"event_type":    eventType,
		}).Warn("Failed to deliver event")
	}
}

func (h *Hub) marshal(event models.Event) ([]byte, bool) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).WithField("event_type", event.Type).Error("Failed to marshal event")
		return nil, false
	}
	return payload, true
}

// RunHeartbeat каждые interval рассылает status_update, пока не отменен ctx.
// Число activeUnits - косметическая имитация, а не реальная загрузка.
func (h *Hub) RunHeartbeat(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopping heartbeat.")
			return
		case <-ticker.C:
			h.Heartbeat()
		}
	}
}

// Heartbeat рассылает один status_update
func (h *Hub) Heartbeat() {
	status := models.StatusUpdate{
		Timestamp:    h.now().UTC().Format(time.RFC3339Nano),
		SystemStatus: "operational",
		ActiveUnits:  h.activeUnits(),
	}
	h.logger.WithField("active_units", status.ActiveUnits).Debug("Broadcasting status update")
	h.BroadcastAll(models.Event{Type: models.EventStatusUpdate, Data: status})
}
