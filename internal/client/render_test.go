package client

import (
	"bytes"
	"testing"

	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	s := State{
		Officer:        &models.Officer{Name: "Officer Johnson", Badge: "4127", Unit: "Unit 12"},
		Connected:      true,
		MissionSeconds: MissionStartSeconds,
		Routes: []models.Route{
			{Name: "Route Alpha", SafetyScore: 94},
			{Name: "Route Gamma", SafetyScore: 23},
		},
		Alerts: []models.Alert{
			{Type: "HIGH PRIORITY", Priority: models.PriorityHigh, Message: "Armed suspect", Location: "Downtown"},
		},
		EmergencyPrompt: true,
	}

	var buf bytes.Buffer
	Render(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "Officer Johnson #4127 (Unit 12) | ONLINE | mission 02:34 | threat MEDIUM")
	assert.Contains(t, out, "safe")
	assert.Contains(t, out, "high-risk")
	assert.Contains(t, out, "[HIGH] HIGH PRIORITY: Armed suspect @ Downtown")
	assert.Contains(t, out, "[y] confirm [n] cancel")
	assert.NotContains(t, out, "EMERGENCY:")
}

func TestRender_Offline(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, State{AlertsStale: true})

	assert.Contains(t, buf.String(), "loading... | OFFLINE | mission 00:00 | threat LOW")
	assert.Contains(t, buf.String(), "Alerts (refreshing):")
}
