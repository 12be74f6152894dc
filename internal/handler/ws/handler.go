// Package ws обслуживает канал /ws: регистрирует подключения в хабе
// и разбирает входящие кадры по полю type.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/tactical_dashboard/internal/hub"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// RouteLister - то, что нужно каналу для ответа на route_request
type RouteLister interface {
	ListRoutes(ctx context.Context) ([]models.Route, error)
}

type Handler struct {
	hub       *hub.Hub
	routes    RouteLister
	logger    *logrus.Logger
	upgrader  websocket.Upgrader
	writeWait time.Duration
}

func NewHandler(h *hub.Hub, routes RouteLister, logger *logrus.Logger, writeWait time.Duration) *Handler {
	return &Handler{
		hub:    h,
		routes: routes,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		writeWait: writeWait,
	}
}

// Serve переводит запрос в websocket и держит подключение до его закрытия
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	sub := newConnection(conn, h.writeWait)
	h.hub.Register(sub)
	defer func() {
		h.hub.Unregister(sub)
		sub.close()
	}()

	h.readLoop(c.Request.Context(), sub)
}

func (h *Handler) readLoop(ctx context.Context, sub *connection) {
	log := h.logger.WithField("connection_id", sub.ID())

	for {
		_, payload, err := sub.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("WebSocket read failed")
			}
			return
		}

		var msg models.InboundEvent
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.WithError(err).Warn("Discarding malformed WebSocket message")
			continue
		}

		switch msg.Type {
		case models.EventLocationUpdate:
			h.hub.BroadcastOthers(sub, models.Event{Type: models.EventLocationUpdate, Data: msg.Data})
		case models.EventRouteRequest:
			h.replyRoutes(ctx, sub, log)
		default:
			log.WithField("type", msg.Type).Debug("Ignoring unknown WebSocket message type")
		}
	}
}

func (h *Handler) replyRoutes(ctx context.Context, sub *connection, log *logrus.Entry) {
	routes, err := h.routes.ListRoutes(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list routes for route_request")
		return
	}
	h.hub.Unicast(sub, models.Event{Type: models.EventRouteResponse, Data: routes})
}
