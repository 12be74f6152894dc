package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/shenikar/tactical_dashboard/internal/service"
)

// Seed заполняет пустое хранилище справочными данными: сотрудник 4127, три маршрута,
// два оповещения и три экстренные службы. Непустое хранилище не трогается.
func Seed(ctx context.Context, store service.Store) error {
	officers, err := store.ListOfficers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check store before seeding: %w", err)
	}
	if len(officers) > 0 {
		return nil
	}

	if _, err := store.InsertOfficer(ctx, models.OfficerInput{
		Badge: "4127",
		Name:  "Officer Johnson",
		Unit:  "Unit 12",
	}); err != nil {
		return fmt.Errorf("failed to seed officer: %w", err)
	}

	routes := []models.RouteInput{
		{
			Name:        "Route Alpha",
			Description: "Main Street → Highway 101",
			SafetyScore: 94,
			RiskFactors: "Low traffic, clear weather",
			Coordinates: []models.Coordinates{
				{Lat: 40.7128, Lng: -74.0060},
				{Lat: 40.7589, Lng: -73.9851},
			},
			EstimatedTime: 12,
			Distance:      3.2,
		},
		{
			Name:        "Route Beta",
			Description: "Downtown → Bridge",
			SafetyScore: 67,
			RiskFactors: "High pedestrian traffic",
			Coordinates: []models.Coordinates{
				{Lat: 40.7128, Lng: -74.0060},
				{Lat: 40.7505, Lng: -73.9934},
			},
			EstimatedTime: 18,
			Distance:      4.1,
		},
		{
			Name:        "Route Gamma",
			Description: "School Zone → Mall",
			SafetyScore: 23,
			RiskFactors: "School hours, construction",
			Coordinates: []models.Coordinates{
				{Lat: 40.7128, Lng: -74.0060},
				{Lat: 40.7831, Lng: -73.9712},
			},
			EstimatedTime: 25,
			Distance:      5.8,
		},
	}
	for _, r := range routes {
		if _, err := store.InsertRoute(ctx, r); err != nil {
			return fmt.Errorf("failed to seed route %s: %w", r.Name, err)
		}
	}

	alerts := []models.AlertInput{
		{
			Type:        "HIGH PRIORITY",
			Priority:    models.PriorityHigh,
			Message:     "Multiple vehicles reported ahead on Main St",
			Location:    "Main Street & 5th Ave",
			Coordinates: &models.Coordinates{Lat: 40.7489, Lng: -73.9857},
		},
		{
			Type:        "TRAFFIC UPDATE",
			Priority:    models.PriorityMedium,
			Message:     "School dismissal in progress - increased pedestrian activity",
			Location:    "Lincoln Elementary School",
			Coordinates: &models.Coordinates{Lat: 40.7614, Lng: -73.9776},
		},
	}
	for _, a := range alerts {
		if _, err := store.InsertAlert(ctx, a); err != nil {
			return fmt.Errorf("failed to seed alert %s: %w", a.Type, err)
		}
	}

	services := []models.EmergencyServiceInput{
		{
			Type:        models.ServiceTypeFire,
			Name:        "Fire Station 12",
			Location:    "Station 12 - Engine Company",
			Coordinates: models.Coordinates{Lat: 40.7505, Lng: -73.9934},
			Distance:    0.8,
		},
		{
			Type:        models.ServiceTypeEMS,
			Name:        "EMS Unit 7",
			Location:    "Ambulance Unit 7",
			Coordinates: models.Coordinates{Lat: 40.7831, Lng: -73.9712},
			Distance:    1.2,
		},
		{
			Type:        models.ServiceTypePolice,
			Name:        "Backup Units",
			Location:    "Police Precinct 15",
			Coordinates: models.Coordinates{Lat: 40.7589, Lng: -73.9851},
			Distance:    0.5,
		},
	}
	for _, s := range services {
		if _, err := store.InsertEmergencyService(ctx, s); err != nil {
			return fmt.Errorf("failed to seed emergency service %s: %w", s.Name, err)
		}
	}

	return nil
}
