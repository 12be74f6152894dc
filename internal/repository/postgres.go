package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service"
)

const routesCacheKey = "routes:all"

// PostgresStore - хранилище сущностей в PostgreSQL. Порядок вставки задается колонкой seq.
// Если redisClient не nil, список маршрутов кэшируется в Redis.
type PostgresStore struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.Store {
	return &PostgresStore{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (r *PostgresStore) InsertOfficer(ctx context.Context, in models.OfficerInput) (*models.Officer, error) {
	officer := &models.Officer{
		ID:     uuid.NewString(),
		Badge:  in.Badge,
		Name:   in.Name,
		Unit:   in.Unit,
		Status: models.OfficerStatusActive,
	}
	query := `
		INSERT INTO officers (id, badge, name, unit, status)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.db.Exec(ctx, query, officer.ID, officer.Badge, officer.Name, officer.Unit, officer.Status); err != nil {
		return nil, fmt.Errorf("failed to create officer: %w", err)
	}
	return officer, nil
}

const officerColumns = `id, badge, name, unit, status`

func scanOfficer(row rowScanner) (*models.Officer, error) {
	o := &models.Officer{}
	if err := row.Scan(&o.ID, &o.Badge, &o.Name, &o.Unit, &o.Status); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresStore) GetOfficer(ctx context.Context, id string) (*models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE id = $1;`
	officer, err := scanOfficer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get officer by id: %w", err)
	}
	return officer, nil
}

// FindOfficerByBadge возвращает первого по порядку вставки сотрудника с этим жетоном
func (r *PostgresStore) FindOfficerByBadge(ctx context.Context, badge string) (*models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE badge = $1 ORDER BY seq LIMIT 1;`
	officer, err := scanOfficer(r.db.QueryRow(ctx, query, badge))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find officer by badge: %w", err)
	}
	return officer, nil
}

func (r *PostgresStore) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers ORDER BY seq;`
	return collect(ctx, r.db, query, scanOfficer)
}

func (r *PostgresStore) InsertRoute(ctx context.Context, in models.RouteInput) (*models.Route, error) {
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
	waypoints, err := encodeWaypoints(route.Coordinates)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO routes (id, name, description, safety_score, risk_factors, coordinates, estimated_time, distance, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.db.Exec(ctx, query,
		route.ID,
		route.Name,
		route.Description,
		route.SafetyScore,
		route.RiskFactors,
		waypoints,
		route.EstimatedTime,
		route.Distance,
		route.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	// Строка уже записана; устаревший кэш ограничен TTL
	_ = r.invalidateRoutesCache(ctx)
	return route, nil
}

const routeColumns = `id, name, description, safety_score, risk_factors, coordinates, estimated_time, distance, status`

func scanRoute(row rowScanner) (*models.Route, error) {
	route := &models.Route{}
	var waypoints []byte
	err := row.Scan(
		&route.ID,
		&route.Name,
		&route.Description,
		&route.SafetyScore,
		&route.RiskFactors,
		&waypoints,
		&route.EstimatedTime,
		&route.Distance,
		&route.Status,
	)
	if err != nil {
		return nil, err
	}
	if route.Coordinates, err = decodeWaypoints(waypoints); err != nil {
		return nil, err
	}
	return route, nil
}

func (r *PostgresStore) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1;`
	route, err := scanRoute(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get route by id: %w", err)
	}
	return route, nil
}

// ListRoutes сначала смотрит в кэш Redis; ошибка кэша не мешает чтению из БД
func (r *PostgresStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	if cached, err := r.routesFromCache(ctx); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY seq;`
	routes, err := collect(ctx, r.db, query, scanRoute)
	if err != nil {
		return nil, err
	}

	_ = r.setRoutesCache(ctx, routes)
	return routes, nil
}

func (r *PostgresStore) InsertAlert(ctx context.Context, in models.AlertInput) (*models.Alert, error) {
	alert := &models.Alert{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Priority:    in.Priority,
		Message:     in.Message,
		Location:    in.Location,
		Coordinates: copyCoordinates(in.Coordinates),
		IsActive:    true,
	}
	point, err := encodePoint(alert.Coordinates)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO alerts (id, type, priority, message, location, coordinates, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE) RETURNING timestamp;
	`
	err = r.db.QueryRow(ctx, query,
		alert.ID,
		alert.Type,
		string(alert.Priority),
		alert.Message,
		alert.Location,
		point,
	).Scan(&alert.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return alert, nil
}

const alertColumns = `id, type, priority, message, location, coordinates, timestamp, is_active`

func scanAlert(row rowScanner) (*models.Alert, error) {
	a := &models.Alert{}
	var priority string
	var point []byte
	if err := row.Scan(&a.ID, &a.Type, &priority, &a.Message, &a.Location, &point, &a.Timestamp, &a.IsActive); err != nil {
		return nil, err
	}
	a.Priority = models.Priority(priority)
	var err error
	if a.Coordinates, err = decodePoint(point); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresStore) GetAlert(ctx context.Context, id string) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

func (r *PostgresStore) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY seq;`
	return collect(ctx, r.db, query, scanAlert)
}

func (r *PostgresStore) ListActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE is_active ORDER BY seq;`
	return collect(ctx, r.db, query, scanAlert)
}

// DeactivateAlert (мягкая деактивация); отсутствие строки не ошибка
func (r *PostgresStore) DeactivateAlert(ctx context.Context, id string) error {
	query := `UPDATE alerts SET is_active = FALSE WHERE id = $1;`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to deactivate alert: %w", err)
	}
	return nil
}

func (r *PostgresStore) InsertIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error) {
	incident := &models.Incident{
		ID:          uuid.NewString(),
		OfficerID:   in.OfficerID,
		Type:        in.Type,
		Description: in.Description,
		Location:    in.Location,
		Coordinates: copyCoordinates(in.Coordinates),
		Status:      models.IncidentStatusOpen,
		ThreatLevel: in.ThreatLevel,
	}
	point, err := encodePoint(incident.Coordinates)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO incidents (id, officer_id, type, description, location, coordinates, status, threat_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING timestamp;
	`
	err = r.db.QueryRow(ctx, query,
		incident.ID,
		incident.OfficerID,
		incident.Type,
		incident.Description,
		incident.Location,
		point,
		incident.Status,
		incident.ThreatLevel,
	).Scan(&incident.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return incident, nil
}

const incidentColumns = `id, officer_id, type, description, location, coordinates, timestamp, status, threat_level`

func scanIncident(row rowScanner) (*models.Incident, error) {
	i := &models.Incident{}
	var point []byte
	err := row.Scan(
		&i.ID,
		&i.OfficerID,
		&i.Type,
		&i.Description,
		&i.Location,
		&point,
		&i.Timestamp,
		&i.Status,
		&i.ThreatLevel,
	)
	if err != nil {
		return nil, err
	}
	if i.Coordinates, err = decodePoint(point); err != nil {
		return nil, err
	}
	return i, nil
}

func (r *PostgresStore) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *PostgresStore) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY seq;`
	return collect(ctx, r.db, query, scanIncident)
}

func (r *PostgresStore) UpdateIncidentStatus(ctx context.Context, id, status string) error {
	query := `UPDATE incidents SET status = $1 WHERE id = $2;`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	return nil
}

func (r *PostgresStore) InsertEmergencyService(ctx context.Context, in models.EmergencyServiceInput) (*models.EmergencyService, error) {
	svc := &models.EmergencyService{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Name:        in.Name,
		Location:    in.Location,
		Coordinates: in.Coordinates,
		Distance:    in.Distance,
		IsAvailable: true,
	}
	point, err := encodePoint(&svc.Coordinates)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO emergency_services (id, type, name, location, coordinates, distance, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE);
	`
	if _, err := r.db.Exec(ctx, query, svc.ID, string(svc.Type), svc.Name, svc.Location, point, svc.Distance); err != nil {
		return nil, fmt.Errorf("failed to create emergency service: %w", err)
	}
	return svc, nil
}

const serviceColumns = `id, type, name, location, coordinates, distance, is_available`

func scanEmergencyService(row rowScanner) (*models.EmergencyService, error) {
	s := &models.EmergencyService{}
	var serviceType string
	var point []byte
	if err := row.Scan(&s.ID, &serviceType, &s.Name, &s.Location, &point, &s.Distance, &s.IsAvailable); err != nil {
		return nil, err
	}
	s.Type = models.ServiceType(serviceType)
	c, err := decodePoint(point)
	if err != nil {
		return nil, err
	}
	if c != nil {
		s.Coordinates = *c
	}
	return s, nil
}

func (r *PostgresStore) GetEmergencyService(ctx context.Context, id string) (*models.EmergencyService, error) {
	query := `SELECT ` + serviceColumns + ` FROM emergency_services WHERE id = $1;`
	svc, err := scanEmergencyService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency service by id: %w", err)
	}
	return svc, nil
}

func (r *PostgresStore) ListEmergencyServices(ctx context.Context) ([]models.EmergencyService, error) {
	query := `SELECT ` + serviceColumns + ` FROM emergency_services ORDER BY seq;`
	return collect(ctx, r.db, query, scanEmergencyService)
}

// ListAvailableServicesByType сортирует по distance, при равенстве по seq (порядок вставки)
func (r *PostgresStore) ListAvailableServicesByType(ctx context.Context, serviceType models.ServiceType) ([]models.EmergencyService, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM emergency_services
		WHERE type = $1 AND is_available
		ORDER BY distance, seq;
	`
	return collect(ctx, r.db, query, scanEmergencyService, string(serviceType))
}

// collect выполняет запрос и сканирует все строки через scan
func collect[T any](ctx context.Context, db *pgxpool.Pool, query string, scan func(rowScanner) (*T, error), args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

// routesFromCache возвращает (nil, nil) при промахе или отключенном кэше
func (r *PostgresStore) routesFromCache(ctx context.Context) ([]models.Route, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, routesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get routes from cache: %w", err)
	}

	var routes []models.Route
	if err := json.Unmarshal(val, &routes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal routes from cache: %w", err)
	}
	return routes, nil
}

func (r *PostgresStore) setRoutesCache(ctx context.Context, routes []models.Route) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("failed to marshal routes for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, routesCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set routes in cache: %w", err)
	}
	return nil
}

func (r *PostgresStore) invalidateRoutesCache(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, routesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate routes cache: %w", err)
	}
	return nil
}
