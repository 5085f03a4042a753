package rules

import (
	"testing"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAlertMessage_MappedCombination(t *testing.T) {
	msg := AlertMessage(models.IncidentFlood, models.AlertEvacuation)
	assert.Equal(t, "FLOOD WARNING: Please evacuate to higher ground immediately.", msg)

	msg = AlertMessage(models.IncidentEarthquake, models.AlertWarning)
	assert.Equal(t, "Aftershocks possible. Stay in safe areas.", msg)
}

func TestAlertMessage_UnmappedIncidentTypeFallsBackToFlood(t *testing.T) {
	msg := AlertMessage(models.IncidentMedicalEmergency, models.AlertShelter)
	assert.Equal(t, AlertMessage(models.IncidentFlood, models.AlertShelter), msg)
}

func TestAlertMessage_UnmappedAlertTypeUsesDefault(t *testing.T) {
	msg := AlertMessage(models.IncidentFire, models.AlertType("sms"))
	assert.Equal(t, DefaultAlertMessage, msg)
}
