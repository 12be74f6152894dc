package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service"
	"github.com/shenikar/tactical_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает Handler с мокированным сервисом и роутер Gin
func newTestHandler(t *testing.T) (*mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(mockService, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// validationErr получает настоящую ValidationError через сервис, которому не нужен store
func validationErr(t *testing.T) error {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := service.NewDashboardService(nil, nil, nil, logger)
	_, err := svc.CreateAlert(context.Background(), models.AlertInput{})
	require.True(t, service.IsValidationError(err))
	return err
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestGetOfficerByBadge_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	officer := &models.Officer{ID: "1", Badge: "4127", Name: "Officer Johnson", Unit: "Unit 12", Status: models.OfficerStatusActive}

	mockService.EXPECT().GetOfficerByBadge(gomock.Any(), "4127").Return(officer, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/officer/4127", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Officer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, *officer, resp)
}

func TestGetOfficerByBadge_NotFound(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetOfficerByBadge(gomock.Any(), "9999").Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/officer/9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Officer not found", decodeError(t, w))
}

func TestGetOfficerByBadge_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetOfficerByBadge(gomock.Any(), "4127").Return(nil, errors.New("store down")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/officer/4127", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch officer", decodeError(t, w))
}

func TestListRoutes_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	routes := []models.Route{
		{ID: "r1", Name: "Route Alpha", SafetyScore: 94, Coordinates: []models.Coordinates{{Lat: 1, Lng: 2}}},
		{ID: "r2", Name: "Route Beta", SafetyScore: 67, Coordinates: []models.Coordinates{}},
	}

	mockService.EXPECT().ListRoutes(gomock.Any()).Return(routes, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/routes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Route
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "r1", resp[0].ID)
	assert.Equal(t, "r2", resp[1].ID)
}

func TestListRoutes_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().ListRoutes(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/routes", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch routes", decodeError(t, w))
}

func TestGetRoute_NotFound(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetRoute(gomock.Any(), "missing").Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/routes/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decodeError(t, w))
}

func TestListActiveAlerts_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	alerts := []models.Alert{
		{ID: "a1", Type: "HIGH PRIORITY", Priority: models.PriorityHigh, IsActive: true},
	}

	mockService.EXPECT().ListActiveAlerts(gomock.Any()).Return(alerts, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":true`)
}

func TestCreateAlert_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	reqBody := CreateAlertRequest{
		Type:     "SUSPECT",
		Priority: "high",
		Message:  "Suspect fleeing on foot",
		Location: "5th & Main",
	}
	created := &models.Alert{
		ID:        "a1",
		Type:      reqBody.Type,
		Priority:  models.PriorityHigh,
		Message:   reqBody.Message,
		Location:  reqBody.Location,
		Timestamp: time.Now().UTC(),
		IsActive:  true,
	}

	mockService.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.AlertInput) (*models.Alert, error) {
			assert.Equal(t, models.PriorityHigh, in.Priority)
			assert.Equal(t, reqBody.Message, in.Message)
			assert.Nil(t, in.Coordinates)
			return created, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.ID)
	assert.True(t, resp.IsActive)
}

func TestCreateAlert_MalformedJSON(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/alerts", strings.NewReader("{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to create alert", decodeError(t, w))
}

func TestCreateAlert_ValidationError(t *testing.T) {
	mockService, router := newTestHandler(t)
	vErr := validationErr(t)

	mockService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil, vErr).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/alerts", strings.NewReader(`{"type":"X"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to create alert", decodeError(t, w))
}

func TestCreateAlert_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil, errors.New("store down")).Times(1)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Type: "X", Priority: "low", Message: "m", Location: "l"})
	w := makeRequest(router, http.MethodPost, "/api/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeactivateAlert_Success(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().DeactivateAlert(gomock.Any(), "a1").Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/alerts/a1/deactivate", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		OfficerID:   "1",
		Type:        "traffic_stop",
		Description: "Routine stop",
		Location:    "Highway 9",
		ThreatLevel: "low",
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.IncidentInput) (*models.Incident, error) {
			assert.Equal(t, reqBody.OfficerID, in.OfficerID)
			return &models.Incident{ID: "i1", OfficerID: in.OfficerID, Status: models.IncidentStatusOpen}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"open"`)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil, validationErr(t)).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to create incident", decodeError(t, w))
}

func TestGetIncident_NotFound(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), "nope").Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/incidents/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncidentStatus(gomock.Any(), "i1", "closed").Return(nil).Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/incidents/i1/status", strings.NewReader(`{"status":"closed"}`))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateIncidentStatus_MissingStatus(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPatch, "/api/incidents/i1/status", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEmergencyServices_All(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().ListEmergencyServices(gomock.Any()).Return([]models.EmergencyService{{ID: "s1"}}, nil).Times(1)
	mockService.EXPECT().ListAvailableServices(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/emergency-services", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListEmergencyServices_ByType(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListAvailableServices(gomock.Any(), models.ServiceTypeFire).
		Return([]models.EmergencyService{{ID: "s1", Type: models.ServiceTypeFire, IsAvailable: true}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/emergency-services?type=fire", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.EmergencyService
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, models.ServiceTypeFire, resp[0].Type)
}

func TestTriggerEmergencyAlert_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	alert := &models.Alert{
		ID:       "e1",
		Type:     models.EmergencyAlertType,
		Priority: models.PriorityCritical,
		Message:  models.DefaultEmergencyMessage,
		Location: "5th & Main",
		IsActive: true,
	}

	mockService.EXPECT().
		TriggerEmergencyAlert(gomock.Any(), models.EmergencyRequest{OfficerID: "1", Location: "5th & Main"}).
		Return(alert, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/emergency-alert", strings.NewReader(`{"officerId":"1","location":"5th & Main"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyAlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Emergency alert sent", resp.Message)
	require.NotNil(t, resp.Alert)
	assert.Equal(t, models.PriorityCritical, resp.Alert.Priority)
}

func TestTriggerEmergencyAlert_EmptyBody(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().
		TriggerEmergencyAlert(gomock.Any(), models.EmergencyRequest{}).
		Return(&models.Alert{ID: "e1"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/emergency-alert", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTriggerEmergencyAlert_MalformedJSON(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().TriggerEmergencyAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/emergency-alert", strings.NewReader("{"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
