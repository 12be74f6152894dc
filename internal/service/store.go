package service

import (
	"context"

	"github.com/shenikar/tactical_dashboard/internal/models"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store определяет контракт хранилища сущностей дашборда.
// Отсутствие записи не является ошибкой: Get/Find возвращают (nil, nil),
// DeactivateAlert и UpdateIncidentStatus для неизвестного id ничего не делают.
// Читающие получают копии, хранилище остается единственным владельцем сущностей.
type Store interface {
	InsertOfficer(ctx context.Context, in models.OfficerInput) (*models.Officer, error)
	GetOfficer(ctx context.Context, id string) (*models.Officer, error)
	FindOfficerByBadge(ctx context.Context, badge string) (*models.Officer, error)
	ListOfficers(ctx context.Context) ([]models.Officer, error)

	InsertRoute(ctx context.Context, in models.RouteInput) (*models.Route, error)
	GetRoute(ctx context.Context, id string) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)

	InsertAlert(ctx context.Context, in models.AlertInput) (*models.Alert, error)
	GetAlert(ctx context.Context, id string) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	ListActiveAlerts(ctx context.Context) ([]models.Alert, error)
	DeactivateAlert(ctx context.Context, id string) error

	InsertIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id, status string) error

	InsertEmergencyService(ctx context.Context, in models.EmergencyServiceInput) (*models.EmergencyService, error)
	GetEmergencyService(ctx context.Context, id string) (*models.EmergencyService, error)
	ListEmergencyServices(ctx context.Context) ([]models.EmergencyService, error)
	ListAvailableServicesByType(ctx context.Context, serviceType models.ServiceType) ([]models.EmergencyService, error)
}

// EventEmitter рассылает события всем открытым подключениям. Реализуется hub.Hub.
type EventEmitter interface {
	BroadcastAll(event models.Event)
}
