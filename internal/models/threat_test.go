package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreatLevelOf(t *testing.T) {
	tests := []struct {
		name   string
		alerts []Alert
		want   ThreatLevel
	}{
		{"no alerts", nil, ThreatLevelLow},
		{"only low and medium", []Alert{{Priority: PriorityMedium}, {Priority: PriorityLow}}, ThreatLevelLow},
		{"high wins over medium", []Alert{{Priority: PriorityMedium}, {Priority: PriorityHigh}}, ThreatLevelMedium},
		{"critical wins over everything", []Alert{{Priority: PriorityHigh}, {Priority: PriorityCritical}, {Priority: PriorityLow}}, ThreatLevelHigh},
		{"unknown priority ignored", []Alert{{Priority: "urgent"}}, ThreatLevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThreatLevelOf(tt.alerts))
		})
	}
}

func TestRouteSafetyBand(t *testing.T) {
	tests := []struct {
		score int
		want  SafetyBand
	}{
		{100, SafetyBandSafe},
		{80, SafetyBandSafe},
		{79, SafetyBandCaution},
		{50, SafetyBandCaution},
		{49, SafetyBandHighRisk},
		{0, SafetyBandHighRisk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Route{SafetyScore: tt.score}.SafetyBand(), "score %d", tt.score)
	}
}
