package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	v1 "github.com/shenikar/tactical_dashboard/internal/handler/http/v1"
	"github.com/shenikar/tactical_dashboard/internal/hub"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/repository"
	"github.com/shenikar/tactical_dashboard/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// newTestServer поднимает полный стек поверх хранилища в памяти с тестовыми данными
func newTestServer(t *testing.T) (*httptest.Server, *hub.Hub) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	store := repository.NewMemoryStore()
	require.NoError(t, repository.Seed(context.Background(), store))

	eventHub := hub.New(logger)
	svc := service.NewDashboardService(store, eventHub, nil, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1.NewHandler(svc, logger).RegisterRoutes(router.Group("/api"))
	router.GET("/ws", NewHandler(eventHub, svc, logger, time.Second).Serve)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, eventHub
}

// dial открывает подключение и вычитывает приветственный кадр connected
func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})

	f := readFrame(t, conn)
	require.Equal(t, models.EventConnected, f.Type)
	assert.Equal(t, "WebSocket connection established", f.Message)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var f frame
	require.NoError(t, json.Unmarshal(payload, &f))
	return f
}

// assertSilent проверяет, что за короткое окно кадров не пришло. Подключение после этого непригодно.
func assertSilent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, payload, err := conn.ReadMessage()
	require.Error(t, err, "unexpected frame: %s", payload)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateAlert_ReachesEveryConnection(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)

	resp := postJSON(t, srv.URL+"/api/alerts", `{"type":"SUSPECT","priority":"high","message":"Suspect fleeing","location":"5th & Main"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, conn := range []*websocket.Conn{a, b} {
		f := readFrame(t, conn)
		require.Equal(t, models.EventNewAlert, f.Type)
		var alert models.Alert
		require.NoError(t, json.Unmarshal(f.Data, &alert))
		assert.Equal(t, "Suspect fleeing", alert.Message)
		assert.True(t, alert.IsActive)
	}
}

func TestInvalidAlert_NotBroadcast(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)

	resp := postJSON(t, srv.URL+"/api/alerts", `{"type":"SUSPECT"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assertSilent(t, a)
}

func TestLocationUpdate_ExcludesSender(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"location_update","data":{"officerId":"1","lat":40.7128,"lng":-74.006}}`)))

	f := readFrame(t, b)
	assert.Equal(t, models.EventLocationUpdate, f.Type)
	assert.JSONEq(t, `{"officerId":"1","lat":40.7128,"lng":-74.006}`, string(f.Data))

	assertSilent(t, a)
}

func TestEmergencyAlert_ReachesEveryConnection(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)

	resp := postJSON(t, srv.URL+"/api/emergency-alert", `{"officerId":"1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, conn := range []*websocket.Conn{a, b} {
		f := readFrame(t, conn)
		require.Equal(t, models.EventEmergencyAlert, f.Type)
		var alert models.Alert
		require.NoError(t, json.Unmarshal(f.Data, &alert))
		assert.Equal(t, models.PriorityCritical, alert.Priority)
		assert.Equal(t, models.EmergencyAlertType, alert.Type)
		assert.Equal(t, models.DefaultEmergencyMessage, alert.Message)
		assert.Equal(t, models.DefaultEmergencyLocation, alert.Location)
	}
}

func TestRouteRequest_Unicast(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"route_request"}`)))

	f := readFrame(t, a)
	require.Equal(t, models.EventRouteResponse, f.Type)
	var routes []models.Route
	require.NoError(t, json.Unmarshal(f.Data, &routes))
	require.Len(t, routes, 3)
	assert.Equal(t, "Route Alpha", routes[0].Name)

	assertSilent(t, b)
}

func TestMalformedFrames_DoNotDropConnection(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"dance"}`)))
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"route_request"}`)))

	f := readFrame(t, a)
	assert.Equal(t, models.EventRouteResponse, f.Type)
}

func TestHeartbeat_ReachesConnection(t *testing.T) {
	srv, eventHub := newTestServer(t)
	a := dial(t, srv)

	eventHub.Heartbeat()

	f := readFrame(t, a)
	require.Equal(t, models.EventStatusUpdate, f.Type)
	var status models.StatusUpdate
	require.NoError(t, json.Unmarshal(f.Data, &status))
	assert.Equal(t, "operational", status.SystemStatus)
}

func TestDisconnect_Unregisters(t *testing.T) {
	srv, eventHub := newTestServer(t)
	a := dial(t, srv)
	require.Equal(t, 1, eventHub.Count())

	require.NoError(t, a.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	a.Close()

	require.Eventually(t, func() bool { return eventHub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}
