package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service"
)

// collection - записи одного типа в порядке вставки
type collection[T any] struct {
	byID  map[string]*T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{byID: make(map[string]*T)}
}

func (c *collection[T]) put(id string, v *T) {
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

// each обходит записи в порядке вставки
func (c *collection[T]) each(fn func(v *T)) {
	for _, id := range c.order {
		fn(c.byID[id])
	}
}

// MemoryStore - хранилище в памяти процесса. Записи никогда не удаляются физически.
type MemoryStore struct {
	mu        sync.RWMutex
	officers  collection[models.Officer]
	routes    collection[models.Route]
	alerts    collection[models.Alert]
	incidents collection[models.Incident]
	services  collection[models.EmergencyService]
	now       func() time.Time
}

func NewMemoryStore() service.Store {
	return newMemoryStore()
}

func newMemoryStore() *MemoryStore {
	return &MemoryStore{
		officers:  newCollection[models.Officer](),
		routes:    newCollection[models.Route](),
		alerts:    newCollection[models.Alert](),
		incidents: newCollection[models.Incident](),
		services:  newCollection[models.EmergencyService](),
		now:       time.Now,
	}
}

func (m *MemoryStore) InsertOfficer(_ context.Context, in models.OfficerInput) (*models.Officer, error) {
	officer := &models.Officer{
		ID:     uuid.NewString(),
		Badge:  in.Badge,
		Name:   in.Name,
		Unit:   in.Unit,
		Status: models.OfficerStatusActive,
	}

	m.mu.Lock()
	m.officers.put(officer.ID, officer)
	m.mu.Unlock()

	out := *officer
	return &out, nil
}

func (m *MemoryStore) GetOfficer(_ context.Context, id string) (*models.Officer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	officer, ok := m.officers.byID[id]
	if !ok {
		return nil, nil
	}
	out := *officer
	return &out, nil
}

// FindOfficerByBadge - линейный поиск, первое совпадение. Уникальность жетона при вставке не проверяется.
func (m *MemoryStore) FindOfficerByBadge(_ context.Context, badge string) (*models.Officer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.officers.order {
		if officer := m.officers.byID[id]; officer.Badge == badge {
			out := *officer
			return &out, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) ListOfficers(_ context.Context) ([]models.Officer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	officers := make([]models.Officer, 0, len(m.officers.order))
	m.officers.each(func(o *models.Officer) {
		officers = append(officers, *o)
	})
	return officers, nil
}

func (m *MemoryStore) InsertRoute(_ context.Context, in models.RouteInput) (*models.Route, error) {
	route := &models.Route{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		SafetyScore:   in.SafetyScore,
		RiskFactors:   in.RiskFactors,
		Coordinates:   cloneWaypoints(in.Coordinates),
		EstimatedTime: in.EstimatedTime,
		Distance:      in.Distance,
		Status:        models.RouteStatusAvailable,
	}

	m.mu.Lock()
	m.routes.put(route.ID, route)
	m.mu.Unlock()

	return copyRoute(route), nil
}

func (m *MemoryStore) GetRoute(_ context.Context, id string) (*models.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	route, ok := m.routes.byID[id]
	if !ok {
		return nil, nil
	}
	return copyRoute(route), nil
}

func (m *MemoryStore) ListRoutes(_ context.Context) ([]models.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	routes := make([]models.Route, 0, len(m.routes.order))
	m.routes.each(func(r *models.Route) {
		routes = append(routes, *copyRoute(r))
	})
	return routes, nil
}

func (m *MemoryStore) InsertAlert(_ context.Context, in models.AlertInput) (*models.Alert, error) {
	alert := &models.Alert{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Priority:    in.Priority,
		Message:     in.Message,
		Location:    in.Location,
		Coordinates: copyCoordinates(in.Coordinates),
		Timestamp:   m.now().UTC(),
		IsActive:    true,
	}

	m.mu.Lock()
	m.alerts.put(alert.ID, alert)
	m.mu.Unlock()

	return copyAlert(alert), nil
}

func (m *MemoryStore) GetAlert(_ context.Context, id string) (*models.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	alert, ok := m.alerts.byID[id]
	if !ok {
		return nil, nil
	}
	return copyAlert(alert), nil
}

func (m *MemoryStore) ListAlerts(_ context.Context) ([]models.Alert, error) {
	return m.filterAlerts(func(*models.Alert) bool { return true }), nil
}

func (m *MemoryStore) ListActiveAlerts(_ context.Context) ([]models.Alert, error) {
	return m.filterAlerts(func(a *models.Alert) bool { return a.IsActive }), nil
}

func (m *MemoryStore) filterAlerts(keep func(*models.Alert) bool) []models.Alert {
	m.mu.RLock()
	defer m.mu.RUnlock()

	alerts := make([]models.Alert, 0, len(m.alerts.order))
	m.alerts.each(func(a *models.Alert) {
		if keep(a) {
			alerts = append(alerts, *copyAlert(a))
		}
	})
	return alerts
}

// DeactivateAlert - мягкая деактивация; неизвестный id игнорируется
func (m *MemoryStore) DeactivateAlert(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if alert, ok := m.alerts.byID[id]; ok {
		alert.IsActive = false
	}
	return nil
}

func (m *MemoryStore) InsertIncident(_ context.Context, in models.IncidentInput) (*models.Incident, error) {
	incident := &models.Incident{
		ID:          uuid.NewString(),
		OfficerID:   in.OfficerID,
		Type:        in.Type,
		Description: in.Description,
		Location:    in.Location,
		Coordinates: copyCoordinates(in.Coordinates),
		Timestamp:   m.now().UTC(),
		Status:      models.IncidentStatusOpen,
		ThreatLevel: in.ThreatLevel,
	}

	m.mu.Lock()
	m.incidents.put(incident.ID, incident)
	m.mu.Unlock()

	return copyIncident(incident), nil
}

func (m *MemoryStore) GetIncident(_ context.Context, id string) (*models.Incident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	incident, ok := m.incidents.byID[id]
	if !ok {
		return nil, nil
	}
	return copyIncident(incident), nil
}

func (m *MemoryStore) ListIncidents(_ context.Context) ([]models.Incident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	incidents := make([]models.Incident, 0, len(m.incidents.order))
	m.incidents.each(func(i *models.Incident) {
		incidents = append(incidents, *copyIncident(i))
	})
	return incidents, nil
}

func (m *MemoryStore) UpdateIncidentStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if incident, ok := m.incidents.byID[id]; ok {
		incident.Status = status
	}
	return nil
}

func (m *MemoryStore) InsertEmergencyService(_ context.Context, in models.EmergencyServiceInput) (*models.EmergencyService, error) {
	svc := &models.EmergencyService{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Name:        in.Name,
		Location:    in.Location,
		Coordinates: in.Coordinates,
		Distance:    in.Distance,
		IsAvailable: true,
	}

	m.mu.Lock()
	m.services.put(svc.ID, svc)
	m.mu.Unlock()

	out := *svc
	return &out, nil
}

func (m *MemoryStore) GetEmergencyService(_ context.Context, id string) (*models.EmergencyService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, ok := m.services.byID[id]
	if !ok {
		return nil, nil
	}
	out := *svc
	return &out, nil
}

func (m *MemoryStore) ListEmergencyServices(_ context.Context) ([]models.EmergencyService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	services := make([]models.EmergencyService, 0, len(m.services.order))
	m.services.each(func(s *models.EmergencyService) {
		services = append(services, *s)
	})
	return services, nil
}

// ListAvailableServicesByType - доступные службы типа serviceType по возрастанию расстояния.
// При равном расстоянии сохраняется порядок вставки.
func (m *MemoryStore) ListAvailableServicesByType(_ context.Context, serviceType models.ServiceType) ([]models.EmergencyService, error) {
	m.mu.RLock()
	services := make([]models.EmergencyService, 0)
	m.services.each(func(s *models.EmergencyService) {
		if s.Type == serviceType && s.IsAvailable {
			services = append(services, *s)
		}
	})
	m.mu.RUnlock()

	sortByDistance(services)
	return services, nil
}

func sortByDistance(services []models.EmergencyService) {
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Distance < services[j].Distance
	})
}

func copyCoordinates(c *models.Coordinates) *models.Coordinates {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

func copyRoute(r *models.Route) *models.Route {
	out := *r
	out.Coordinates = cloneWaypoints(r.Coordinates)
	return &out
}

func cloneWaypoints(src []models.Coordinates) []models.Coordinates {
	out := make([]models.Coordinates, len(src))
	copy(out, src)
	return out
}

func copyAlert(a *models.Alert) *models.Alert {
	out := *a
	out.Coordinates = copyCoordinates(a.Coordinates)
	return &out
}

func copyIncident(i *models.Incident) *models.Incident {
	out := *i
	out.Coordinates = copyCoordinates(i.Coordinates)
	return &out
}
