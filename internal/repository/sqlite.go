package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service"
)

// SQLiteStore - однофайловое хранилище для автономного развертывания.
// Время хранится строкой RFC3339Nano, координаты - JSON.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore создает схему (если ее нет) и возвращает хранилище
func NewSQLiteStore(ctx context.Context, db *sql.DB) (service.Store, error) {
	if err := createSQLiteSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func createSQLiteSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS officers (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		badge TEXT NOT NULL,
		name TEXT NOT NULL,
		unit TEXT NOT NULL,
		status TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_officers_badge ON officers(badge);

	CREATE TABLE IF NOT EXISTS routes (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		safety_score INTEGER NOT NULL,
		risk_factors TEXT NOT NULL,
		coordinates TEXT NOT NULL,
		estimated_time INTEGER NOT NULL,
		distance REAL NOT NULL,
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS alerts (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		priority TEXT NOT NULL,
		message TEXT NOT NULL,
		location TEXT NOT NULL,
		coordinates TEXT,
		timestamp TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS incidents (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		officer_id TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		coordinates TEXT,
		timestamp TEXT NOT NULL,
		status TEXT NOT NULL,
		threat_level TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS emergency_services (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		coordinates TEXT NOT NULL,
		distance REAL NOT NULL,
		is_available INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_services_type ON emergency_services(type, is_available, distance);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *SQLiteStore) InsertOfficer(ctx context.Context, in models.OfficerInput) (*models.Officer, error) {
	officer := &models.Officer{
		ID:     uuid.NewString(),
		Badge:  in.Badge,
		Name:   in.Name,
		Unit:   in.Unit,
		Status: models.OfficerStatusActive,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO officers (id, badge, name, unit, status) VALUES (?, ?, ?, ?, ?)`,
		officer.ID, officer.Badge, officer.Name, officer.Unit, officer.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create officer: %w", err)
	}
	return officer, nil
}

func (s *SQLiteStore) GetOfficer(ctx context.Context, id string) (*models.Officer, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+officerColumns+` FROM officers WHERE id = ?`, id)
	return sqliteOne(row, scanOfficer, "officer")
}

func (s *SQLiteStore) FindOfficerByBadge(ctx context.Context, badge string) (*models.Officer, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+officerColumns+` FROM officers WHERE badge = ? ORDER BY seq LIMIT 1`, badge)
	return sqliteOne(row, scanOfficer, "officer")
}

func (s *SQLiteStore) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	return sqliteAll(ctx, s.db, `SELECT `+officerColumns+` FROM officers ORDER BY seq`, scanOfficer)
}

func (s *SQLiteStore) InsertRoute(ctx context.Context, in models.RouteInput) (*models.Route, error) {
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

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO routes (id, name, description, safety_score, risk_factors, coordinates, estimated_time, distance, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		route.ID, route.Name, route.Description, route.SafetyScore, route.RiskFactors,
		string(waypoints), route.EstimatedTime, route.Distance, route.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return route, nil
}

func (s *SQLiteStore) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = ?`, id)
	return sqliteOne(row, scanRoute, "route")
}

func (s *SQLiteStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	return sqliteAll(ctx, s.db, `SELECT `+routeColumns+` FROM routes ORDER BY seq`, scanRoute)
}

func (s *SQLiteStore) InsertAlert(ctx context.Context, in models.AlertInput) (*models.Alert, error) {
	alert := &models.Alert{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Priority:    in.Priority,
		Message:     in.Message,
		Location:    in.Location,
		Coordinates: copyCoordinates(in.Coordinates),
		Timestamp:   s.now().UTC(),
		IsActive:    true,
	}
	point, err := encodePoint(alert.Coordinates)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO alerts (id, type, priority, message, location, coordinates, timestamp, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		alert.ID, alert.Type, string(alert.Priority), alert.Message, alert.Location,
		nullableJSON(point), alert.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return alert, nil
}

func scanSQLiteAlert(row rowScanner) (*models.Alert, error) {
	a := &models.Alert{}
	var priority, ts string
	var point sql.NullString
	if err := row.Scan(&a.ID, &a.Type, &priority, &a.Message, &a.Location, &point, &ts, &a.IsActive); err != nil {
		return nil, err
	}
	a.Priority = models.Priority(priority)

	var err error
	if a.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return nil, fmt.Errorf("failed to parse alert timestamp: %w", err)
	}
	if point.Valid {
		if a.Coordinates, err = decodePoint([]byte(point.String)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (s *SQLiteStore) GetAlert(ctx context.Context, id string) (*models.Alert, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = ?`, id)
	return sqliteOne(row, scanSQLiteAlert, "alert")
}

func (s *SQLiteStore) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return sqliteAll(ctx, s.db, `SELECT `+alertColumns+` FROM alerts ORDER BY seq`, scanSQLiteAlert)
}

func (s *SQLiteStore) ListActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	return sqliteAll(ctx, s.db, `SELECT `+alertColumns+` FROM alerts WHERE is_active = 1 ORDER BY seq`, scanSQLiteAlert)
}

func (s *SQLiteStore) DeactivateAlert(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE alerts SET is_active = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to deactivate alert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) InsertIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error) {
	incident := &models.Incident{
		ID:          uuid.NewString(),
		OfficerID:   in.OfficerID,
		Type:        in.Type,
		Description: in.Description,
		Location:    in.Location,
		Coordinates: copyCoordinates(in.Coordinates),
		Timestamp:   s.now().UTC(),
		Status:      models.IncidentStatusOpen,
		ThreatLevel: in.ThreatLevel,
	}
	point, err := encodePoint(incident.Coordinates)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO incidents (id, officer_id, type, description, location, coordinates, timestamp, status, threat_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		incident.ID, incident.OfficerID, incident.Type, incident.Description, incident.Location,
		nullableJSON(point), incident.Timestamp.Format(time.RFC3339Nano), incident.Status, incident.ThreatLevel,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return incident, nil
}

func scanSQLiteIncident(row rowScanner) (*models.Incident, error) {
	i := &models.Incident{}
	var ts string
	var point sql.NullString
	err := row.Scan(&i.ID, &i.OfficerID, &i.Type, &i.Description, &i.Location, &point, &ts, &i.Status, &i.ThreatLevel)
	if err != nil {
		return nil, err
	}
	if i.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return nil, fmt.Errorf("failed to parse incident timestamp: %w", err)
	}
	if point.Valid {
		if i.Coordinates, err = decodePoint([]byte(point.String)); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func (s *SQLiteStore) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+incidentColumns+` FROM incidents WHERE id = ?`, id)
	return sqliteOne(row, scanSQLiteIncident, "incident")
}

func (s *SQLiteStore) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	return sqliteAll(ctx, s.db, `SELECT `+incidentColumns+` FROM incidents ORDER BY seq`, scanSQLiteIncident)
}

func (s *SQLiteStore) UpdateIncidentStatus(ctx context.Context, id, status string) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE incidents SET status = ? WHERE id = ?`, status, id); err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	return nil
}

func (s *SQLiteStore) InsertEmergencyService(ctx context.Context, in models.EmergencyServiceInput) (*models.EmergencyService, error) {
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

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO emergency_services (id, type, name, location, coordinates, distance, is_available)
		VALUES (?, ?, ?, ?, ?, ?, 1)`,
		svc.ID, string(svc.Type), svc.Name, svc.Location, string(point), svc.Distance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create emergency service: %w", err)
	}
	return svc, nil
}

func (s *SQLiteStore) GetEmergencyService(ctx context.Context, id string) (*models.EmergencyService, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM emergency_services WHERE id = ?`, id)
	return sqliteOne(row, scanEmergencyService, "emergency service")
}

func (s *SQLiteStore) ListEmergencyServices(ctx context.Context) ([]models.EmergencyService, error) {
	return sqliteAll(ctx, s.db, `SELECT `+serviceColumns+` FROM emergency_services ORDER BY seq`, scanEmergencyService)
}

func (s *SQLiteStore) ListAvailableServicesByType(ctx context.Context, serviceType models.ServiceType) ([]models.EmergencyService, error) {
	return sqliteAll(ctx, s.db, `
		SELECT `+serviceColumns+`
		FROM emergency_services
		WHERE type = ? AND is_available = 1
		ORDER BY distance, seq`,
		scanEmergencyService, string(serviceType),
	)
}

// nullableJSON превращает пустой JSON в SQL NULL
func nullableJSON(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}

func sqliteOne[T any](row *sql.Row, scan func(rowScanner) (*T, error), entity string) (*T, error) {
	item, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", entity, err)
	}
	return item, nil
}

func sqliteAll[T any](ctx context.Context, db *sql.DB, query string, scan func(rowScanner) (*T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
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
