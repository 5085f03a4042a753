package rules

import "github.com/crisisops/crisis_response_system/internal/models"

// DefaultAlertMessage is used when no template row matches the alert type.
const DefaultAlertMessage = "Emergency alert - follow official guidance."

// alertTemplates is keyed by incident type, then alert type. Incident types
// without their own row fall back to the flood row.
var alertTemplates = map[models.IncidentType]map[models.AlertType]string{
	models.IncidentFlood: {
		models.AlertEvacuation: "FLOOD WARNING: Please evacuate to higher ground immediately.",
		models.AlertShelter:    "Nearby shelters are open. Follow the location and contact info provided.",
		models.AlertWarning:    "Heavy rain expected. Stay alert for flooding.",
	},
	models.IncidentCyclone: {
		models.AlertEvacuation: "CYCLONE ALERT: Evacuate to designated shelters now.",
		models.AlertShelter:    "Cyclone shelters open. Move to safety with essential items.",
		models.AlertWarning:    "Severe cyclone approaching. Secure your surroundings.",
	},
	models.IncidentFire: {
		models.AlertEvacuation: "FIRE ALERT: Evacuate the area immediately.",
		models.AlertShelter:    "Evacuation centers ready. Head to nearest assembly point.",
		models.AlertWarning:    "Wildfire nearby. Keep track of wind direction.",
	},
	models.IncidentEarthquake: {
		models.AlertEvacuation: "EARTHQUAKE: Move to open ground away from buildings.",
		models.AlertShelter:    "Emergency shelters operational. Report to nearest center.",
		models.AlertWarning:    "Aftershocks possible. Stay in safe areas.",
	},
}

// AlertMessage renders the templated broadcast message for an incident and
// alert type combination.
func AlertMessage(incidentType models.IncidentType, alertType models.AlertType) string {
	row, ok := alertTemplates[incidentType]
	if !ok {
		row = alertTemplates[models.IncidentFlood]
	}
	if msg, ok := row[alertType]; ok {
		return msg
	}
	return DefaultAlertMessage
}
