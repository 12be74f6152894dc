package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service/mocks"
	"github.com/shenikar/tactical_dashboard/internal/webhook"
	webhook_mocks "github.com/shenikar/tactical_dashboard/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDashboardService - вспомогательная функция для создания инстанса сервиса с моками
func newTestDashboardService(t *testing.T) (*dashboardService, *mocks.MockStore, *mocks.MockEventEmitter, *webhook_mocks.MockDispatchPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	eventsMock := mocks.NewMockEventEmitter(ctrl)
	dispatchMock := webhook_mocks.NewMockDispatchPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewDashboardService(storeMock, eventsMock, dispatchMock, logger)
	return svc.(*dashboardService), storeMock, eventsMock, dispatchMock
}

func validAlertInput() models.AlertInput {
	return models.AlertInput{
		Type:     "SUSPECT",
		Priority: models.PriorityHigh,
		Message:  "Suspect fleeing on foot",
		Location: "5th & Main",
	}
}

func TestGetOfficerByBadge_NotFound(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().FindOfficerByBadge(ctx, "0000").Return(nil, nil).Times(1)

	officer, err := svc.GetOfficerByBadge(ctx, "0000")

	require.NoError(t, err)
	assert.Nil(t, officer)
}

func TestGetOfficerByBadge_StoreError(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	storeMock.EXPECT().FindOfficerByBadge(ctx, "4127").Return(nil, storeErr).Times(1)

	officer, err := svc.GetOfficerByBadge(ctx, "4127")

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, officer)
}

func TestCreateAlert_Success_Broadcasts(t *testing.T) {
	// Подготовка
	svc, storeMock, eventsMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	in := validAlertInput()
	created := &models.Alert{ID: "a1", Type: in.Type, Priority: in.Priority, Message: in.Message, Location: in.Location, IsActive: true}

	// Ожидания
	gomock.InOrder(
		storeMock.EXPECT().InsertAlert(ctx, in).Return(created, nil).Times(1),
		eventsMock.EXPECT().BroadcastAll(models.Event{Type: models.EventNewAlert, Data: created}).Times(1),
	)

	// Действие
	alert, err := svc.CreateAlert(ctx, in)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, created, alert)
}

func TestCreateAlert_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.AlertInput)
		field  string
	}{
		{"missing type", func(in *models.AlertInput) { in.Type = "" }, "Type"},
		{"missing message", func(in *models.AlertInput) { in.Message = "" }, "Message"},
		{"missing location", func(in *models.AlertInput) { in.Location = "" }, "Location"},
		{"unknown priority", func(in *models.AlertInput) { in.Priority = "urgent" }, "Priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, storeMock, eventsMock, _ := newTestDashboardService(t)
			in := validAlertInput()
			tt.mutate(&in)

			storeMock.EXPECT().InsertAlert(gomock.Any(), gomock.Any()).Times(0)
			eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(0)

			alert, err := svc.CreateAlert(context.Background(), in)

			require.Error(t, err)
			assert.Nil(t, alert)
			assert.True(t, IsValidationError(err))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestCreateAlert_StoreError_NoBroadcast(t *testing.T) {
	svc, storeMock, eventsMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().InsertAlert(ctx, gomock.Any()).Return(nil, errors.New("disk full")).Times(1)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(0)

	alert, err := svc.CreateAlert(ctx, validAlertInput())

	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.Nil(t, alert)
}

func TestDeactivateAlert_Success(t *testing.T) {
	svc, storeMock, eventsMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetAlert(ctx, "a1").Return(&models.Alert{ID: "a1", IsActive: true}, nil).Times(1)
	storeMock.EXPECT().DeactivateAlert(ctx, "a1").Return(nil).Times(1)
	eventsMock.EXPECT().
		BroadcastAll(models.Event{Type: models.EventAlertDeactivated, Data: map[string]string{"id": "a1"}}).
		Times(1)

	require.NoError(t, svc.DeactivateAlert(ctx, "a1"))
}

func TestDeactivateAlert_UnknownID(t *testing.T) {
	svc, storeMock, eventsMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetAlert(ctx, "ghost").Return(nil, nil).Times(1)
	storeMock.EXPECT().DeactivateAlert(gomock.Any(), gomock.Any()).Times(0)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(0)

	require.NoError(t, svc.DeactivateAlert(ctx, "ghost"))
}

func TestCreateIncident_NotBroadcast(t *testing.T) {
	svc, storeMock, eventsMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	in := models.IncidentInput{
		OfficerID:   "1",
		Type:        "traffic_stop",
		Description: "Routine stop",
		Location:    "Highway 9",
		ThreatLevel: "low",
	}

	storeMock.EXPECT().InsertIncident(ctx, in).Return(&models.Incident{ID: "i1", Status: models.IncidentStatusOpen}, nil).Times(1)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(0)

	incident, err := svc.CreateIncident(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusOpen, incident.Status)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)

	storeMock.EXPECT().InsertIncident(gomock.Any(), gomock.Any()).Times(0)

	incident, err := svc.CreateIncident(context.Background(), models.IncidentInput{OfficerID: "1"})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Nil(t, incident)
}

func TestListAvailableServices_PassesType(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()
	expected := []models.EmergencyService{{ID: "s1", Type: models.ServiceTypeEMS, IsAvailable: true}}

	storeMock.EXPECT().ListAvailableServicesByType(ctx, models.ServiceTypeEMS).Return(expected, nil).Times(1)

	services, err := svc.ListAvailableServices(ctx, models.ServiceTypeEMS)

	require.NoError(t, err)
	assert.Equal(t, expected, services)
}

func TestTriggerEmergencyAlert_Defaults(t *testing.T) {
	// Подготовка
	svc, storeMock, eventsMock, dispatchMock := newTestDashboardService(t)
	ctx := context.Background()
	created := &models.Alert{
		ID:       "e1",
		Type:     models.EmergencyAlertType,
		Priority: models.PriorityCritical,
		Message:  models.DefaultEmergencyMessage,
		Location: models.DefaultEmergencyLocation,
		IsActive: true,
	}

	// Ожидания
	storeMock.EXPECT().
		InsertAlert(ctx, models.AlertInput{
			Type:     models.EmergencyAlertType,
			Priority: models.PriorityCritical,
			Message:  models.DefaultEmergencyMessage,
			Location: models.DefaultEmergencyLocation,
		}).
		Return(created, nil).
		Times(1)
	eventsMock.EXPECT().BroadcastAll(models.Event{Type: models.EventEmergencyAlert, Data: created}).Times(1)
	dispatchMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.DispatchEvent) error {
			assert.Equal(t, "1", event.OfficerID)
			assert.Equal(t, *created, event.Alert)
			assert.False(t, event.Timestamp.IsZero())
			return nil
		}).
		Times(1)

	// Действие
	alert, err := svc.TriggerEmergencyAlert(ctx, models.EmergencyRequest{OfficerID: "1"})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, created, alert)
}

func TestTriggerEmergencyAlert_KeepsCallerFields(t *testing.T) {
	svc, storeMock, eventsMock, dispatchMock := newTestDashboardService(t)
	ctx := context.Background()
	coords := &models.Coordinates{Lat: 40.71, Lng: -74.0}

	storeMock.EXPECT().
		InsertAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.AlertInput) (*models.Alert, error) {
			assert.Equal(t, "Shots fired", in.Message)
			assert.Equal(t, "Pier 4", in.Location)
			assert.Equal(t, coords, in.Coordinates)
			return &models.Alert{ID: "e1", Priority: in.Priority, Message: in.Message}, nil
		}).
		Times(1)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(1)
	dispatchMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := svc.TriggerEmergencyAlert(ctx, models.EmergencyRequest{
		OfficerID:   "1",
		Location:    "Pier 4",
		Message:     "Shots fired",
		Coordinates: coords,
	})

	require.NoError(t, err)
}

func TestTriggerEmergencyAlert_DispatchFailureIgnored(t *testing.T) {
	svc, storeMock, eventsMock, dispatchMock := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().InsertAlert(ctx, gomock.Any()).Return(&models.Alert{ID: "e1"}, nil).Times(1)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(1)
	dispatchMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	alert, err := svc.TriggerEmergencyAlert(ctx, models.EmergencyRequest{})

	require.NoError(t, err)
	assert.Equal(t, "e1", alert.ID)
}

func TestTriggerEmergencyAlert_NilDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	eventsMock := mocks.NewMockEventEmitter(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := NewDashboardService(storeMock, eventsMock, nil, logger)
	ctx := context.Background()

	storeMock.EXPECT().InsertAlert(ctx, gomock.Any()).Return(&models.Alert{ID: "e1"}, nil).Times(1)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(1)

	_, err := svc.TriggerEmergencyAlert(ctx, models.EmergencyRequest{})

	require.NoError(t, err)
}

func TestTriggerEmergencyAlert_StoreError(t *testing.T) {
	svc, storeMock, eventsMock, dispatchMock := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().InsertAlert(ctx, gomock.Any()).Return(nil, errors.New("disk full")).Times(1)
	eventsMock.EXPECT().BroadcastAll(gomock.Any()).Times(0)
	dispatchMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	alert, err := svc.TriggerEmergencyAlert(ctx, models.EmergencyRequest{})

	require.Error(t, err)
	assert.Nil(t, alert)
}
