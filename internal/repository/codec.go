package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/tactical_dashboard/internal/models"
)

// rowScanner покрывает pgx.Row, pgx.Rows, *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func encodePoint(c *models.Coordinates) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal coordinates: %w", err)
	}
	return b, nil
}

func decodePoint(raw []byte) (*models.Coordinates, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	c := &models.Coordinates{}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coordinates: %w", err)
	}
	return c, nil
}

func encodeWaypoints(points []models.Coordinates) ([]byte, error) {
	if points == nil {
		points = []models.Coordinates{}
	}
	b, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal waypoints: %w", err)
	}
	return b, nil
}

func decodeWaypoints(raw []byte) ([]models.Coordinates, error) {
	points := make([]models.Coordinates, 0)
	if len(raw) == 0 {
		return points, nil
	}
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal waypoints: %w", err)
	}
	return points, nil
}
