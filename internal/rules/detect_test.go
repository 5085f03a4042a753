package rules

import (
	"testing"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectEmergency_FloodReport(t *testing.T) {
	result := DetectEmergency("Flood near market, water rising fast", "")

	assert.True(t, result.IsEmergency)
	assert.Equal(t, "flood", result.EmergencyType)
	assert.Equal(t, models.IncidentFlood, result.IncidentType)
	assert.Equal(t, models.SeverityMedium, result.Severity)
	assert.InDelta(t, 2.0/6.0, result.LifeThreateningScore, 1e-9)
	assert.False(t, result.LifeThreatening)
}

func TestDetectEmergency_CriticalFlood(t *testing.T) {
	// 5 of 6 flood keywords present.
	result := DetectEmergency("Flood", "water inundation, streets submerged, people drowning")

	assert.True(t, result.IsEmergency)
	assert.Equal(t, models.SeverityCritical, result.Severity)
	assert.True(t, result.LifeThreatening)
	assert.InDelta(t, 5.0/6.0, result.LifeThreateningScore, 1e-9)
	assert.InDelta(t, 5.0/6.0+0.1, result.ConfidenceScore, 1e-9)
}

func TestDetectEmergency_NoKeywords(t *testing.T) {
	result := DetectEmergency("Broken streetlight", "The lamp on 5th avenue is out")

	assert.False(t, result.IsEmergency)
	assert.Equal(t, "other", result.EmergencyType)
	assert.Equal(t, models.IncidentOther, result.IncidentType)
	assert.Equal(t, models.SeverityLow, result.Severity)
	assert.Equal(t, 0.0, result.LifeThreateningScore)
	assert.InDelta(t, 0.1, result.ConfidenceScore, 1e-9)
}

func TestDetectEmergency_EmptyText(t *testing.T) {
	result := DetectEmergency("", "")

	assert.False(t, result.IsEmergency)
	assert.Equal(t, "other", result.EmergencyType)
}

func TestDetectEmergency_TieKeepsDeclarationOrder(t *testing.T) {
	// One keyword each from cyclone and fire: equal ratios, first category
	// declared wins.
	result := DetectEmergency("storm and smoke", "")

	assert.Equal(t, "cyclone", result.EmergencyType)
	assert.Equal(t, models.IncidentCyclone, result.IncidentType)
}

func TestDetectEmergency_ConfidenceIsCapped(t *testing.T) {
	result := DetectEmergency("flood water inundation submerged drowning waterlogged", "")

	assert.Equal(t, 1.0, result.LifeThreateningScore)
	assert.Equal(t, 1.0, result.ConfidenceScore)
}

func TestDetectEmergency_SafetyMapsToAccident(t *testing.T) {
	result := DetectEmergency("violence and shooting, people trapped", "danger threat attack")

	assert.True(t, result.IsEmergency)
	assert.Equal(t, "safety", result.EmergencyType)
	assert.Equal(t, models.IncidentAccident, result.IncidentType)
}
