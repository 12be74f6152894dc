package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// DashboardService определяет контракт шлюза запросов и событий дашборда
type DashboardService interface {
	GetOfficerByBadge(ctx context.Context, badge string) (*models.Officer, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	GetRoute(ctx context.Context, id string) (*models.Route, error)
	ListActiveAlerts(ctx context.Context) ([]models.Alert, error)
	CreateAlert(ctx context.Context, in models.AlertInput) (*models.Alert, error)
	DeactivateAlert(ctx context.Context, id string) error
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	CreateIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id, status string) error
	ListEmergencyServices(ctx context.Context) ([]models.EmergencyService, error)
	ListAvailableServices(ctx context.Context, serviceType models.ServiceType) ([]models.EmergencyService, error)
	TriggerEmergencyAlert(ctx context.Context, req models.EmergencyRequest) (*models.Alert, error)
}

type dashboardService struct {
	store    Store
	events   EventEmitter
	dispatch webhook.DispatchPublisher
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewDashboardService создает сервис. dispatch может быть nil, тогда внешний диспетчер не уведомляется.
func NewDashboardService(store Store, events EventEmitter, dispatch webhook.DispatchPublisher, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		store:    store,
		events:   events,
		dispatch: dispatch,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *dashboardService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  method,
	})
}

// GetOfficerByBadge возвращает сотрудника по номеру жетона или nil, если такого нет
func (s *dashboardService) GetOfficerByBadge(ctx context.Context, badge string) (*models.Officer, error) {
	log := s.log("GetOfficerByBadge").WithField("badge", badge)

	officer, err := s.store.FindOfficerByBadge(ctx, badge)
	if err != nil {
		log.WithError(err).Error("Failed to find officer in store")
		return nil, fmt.Errorf("service: could not get officer: %w", err)
	}
	if officer == nil {
		log.Debug("Officer not found")
	}
	return officer, nil
}

func (s *dashboardService) ListRoutes(ctx context.Context) ([]models.Route, error) {
	routes, err := s.store.ListRoutes(ctx)
	if err != nil {
		s.log("ListRoutes").WithError(err).Error("Failed to list routes from store")
		return nil, fmt.Errorf("service: could not list routes: %w", err)
	}
	return routes, nil
}

func (s *dashboardService) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	route, err := s.store.GetRoute(ctx, id)
	if err != nil {
		s.log("GetRoute").WithField("route_id", id).WithError(err).Error("Failed to get route from store")
		return nil, fmt.Errorf("service: could not get route: %w", err)
	}
	return route, nil
}

func (s *dashboardService) ListActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	alerts, err := s.store.ListActiveAlerts(ctx)
	if err != nil {
		s.log("ListActiveAlerts").WithError(err).Error("Failed to list active alerts from store")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// CreateAlert проверяет форму оповещения, сохраняет его и рассылает new_alert всем подключениям
func (s *dashboardService) CreateAlert(ctx context.Context, in models.AlertInput) (*models.Alert, error) {
	log := s.log("CreateAlert").WithFields(logrus.Fields{
		"type":     in.Type,
		"priority": in.Priority,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Warn("Alert validation failed")
		return nil, newValidationError(err)
	}

	alert, err := s.store.InsertAlert(ctx, in)
	if err != nil {
		log.WithError(err).Error("Failed to insert alert in store")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	s.events.BroadcastAll(models.Event{Type: models.EventNewAlert, Data: alert})
	log.WithField("alert_id", alert.ID).Info("Alert created and broadcast")
	return alert, nil
}

// DeactivateAlert снимает флаг активности. Неизвестный id - не ошибка.
func (s *dashboardService) DeactivateAlert(ctx context.Context, id string) error {
	log := s.log("DeactivateAlert").WithField("alert_id", id)

	existing, err := s.store.GetAlert(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get alert from store")
		return fmt.Errorf("service: could not deactivate alert: %w", err)
	}
	if existing == nil {
		log.Debug("Alert not found, nothing to deactivate")
		return nil
	}

	if err := s.store.DeactivateAlert(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate alert in store")
		return fmt.Errorf("service: could not deactivate alert: %w", err)
	}

	s.events.BroadcastAll(models.Event{
		Type: models.EventAlertDeactivated,
		Data: map[string]string{"id": id},
	})
	log.Info("Alert deactivated")
	return nil
}

func (s *dashboardService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	incidents, err := s.store.ListIncidents(ctx)
	if err != nil {
		s.log("ListIncidents").WithError(err).Error("Failed to list incidents from store")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

func (s *dashboardService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	incident, err := s.store.GetIncident(ctx, id)
	if err != nil {
		s.log("GetIncident").WithField("incident_id", id).WithError(err).Error("Failed to get incident from store")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// CreateIncident проверяет и сохраняет инцидент. Инциденты не рассылаются, клиенты их запрашивают сами.
func (s *dashboardService) CreateIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error) {
	log := s.log("CreateIncident").WithFields(logrus.Fields{
		"officer_id": in.OfficerID,
		"type":       in.Type,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return nil, newValidationError(err)
	}

	incident, err := s.store.InsertIncident(ctx, in)
	if err != nil {
		log.WithError(err).Error("Failed to insert incident in store")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

func (s *dashboardService) UpdateIncidentStatus(ctx context.Context, id, status string) error {
	log := s.log("UpdateIncidentStatus").WithFields(logrus.Fields{
		"incident_id": id,
		"status":      status,
	})

	if err := s.store.UpdateIncidentStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update incident status in store")
		return fmt.Errorf("service: could not update incident status: %w", err)
	}
	log.Info("Incident status updated")
	return nil
}

func (s *dashboardService) ListEmergencyServices(ctx context.Context) ([]models.EmergencyService, error) {
	services, err := s.store.ListEmergencyServices(ctx)
	if err != nil {
		s.log("ListEmergencyServices").WithError(err).Error("Failed to list emergency services from store")
		return nil, fmt.Errorf("service: could not list emergency services: %w", err)
	}
	return services, nil
}

// ListAvailableServices возвращает доступные службы заданного типа, ближайшие первыми
func (s *dashboardService) ListAvailableServices(ctx context.Context, serviceType models.ServiceType) ([]models.EmergencyService, error) {
	services, err := s.store.ListAvailableServicesByType(ctx, serviceType)
	if err != nil {
		s.log("ListAvailableServices").WithField("type", serviceType).WithError(err).Error("Failed to list available services from store")
		return nil, fmt.Errorf("service: could not list available services: %w", err)
	}
	return services, nil
}

// TriggerEmergencyAlert создает критическое оповещение EMERGENCY и рассылает его всем подключениям,
// включая инициатора
func (s *dashboardService) TriggerEmergencyAlert(ctx context.Context, req models.EmergencyRequest) (*models.Alert, error) {
	log := s.log("TriggerEmergencyAlert").WithField("officer_id", req.OfficerID)
	log.Warn("Emergency alert triggered")

	in := models.AlertInput{
		Type:        models.EmergencyAlertType,
		Priority:    models.PriorityCritical,
		Message:     req.Message,
		Location:    req.Location,
		Coordinates: req.Coordinates,
	}
	if in.Message == "" {
		in.Message = models.DefaultEmergencyMessage
	}
	if in.Location == "" {
		in.Location = models.DefaultEmergencyLocation
	}

	alert, err := s.store.InsertAlert(ctx, in)
	if err != nil {
		log.WithError(err).Error("Failed to insert emergency alert in store")
		return nil, fmt.Errorf("service: could not create emergency alert: %w", err)
	}

	s.events.BroadcastAll(models.Event{Type: models.EventEmergencyAlert, Data: alert})

	if s.dispatch != nil {
		event := webhook.DispatchEvent{
			OfficerID: req.OfficerID,
			Alert:     *alert,
			Timestamp: time.Now().UTC(),
		}
		// Сбой очереди диспетчера не отменяет уже разосланное оповещение
		if err := s.dispatch.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish emergency dispatch event")
		}
	}

	log.WithField("alert_id", alert.ID).Info("Emergency alert broadcast")
	return alert, nil
}
