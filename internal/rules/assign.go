package rules

import (
	"math"
	"sort"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/google/uuid"
)

// MaxAssignmentsPerDispatch caps the number of deployments a single
// dispatch run may create.
const MaxAssignmentsPerDispatch = 5

// resourceEligibility maps an incident type to the resource types that may
// respond to it.
var resourceEligibility = map[models.IncidentType][]models.ResourceType{
	models.IncidentFlood:            {models.ResourceAmbulance, models.ResourceRescueUnit, models.ResourceMedicalUnit, models.ResourceShelter, models.ResourceWaterTanker},
	models.IncidentCyclone:          {models.ResourceShelter, models.ResourceRescueUnit, models.ResourceAmbulance, models.ResourceMedicalUnit},
	models.IncidentFire:             {models.ResourceFireTeam, models.ResourceAmbulance, models.ResourceRescueUnit, models.ResourceMedicalUnit},
	models.IncidentEarthquake:       {models.ResourceAmbulance, models.ResourceRescueUnit, models.ResourceMedicalUnit, models.ResourceShelter},
	models.IncidentMedicalEmergency: {models.ResourceAmbulance, models.ResourceMedicalUnit},
	models.IncidentAccident:         {models.ResourceAmbulance, models.ResourceRescueUnit, models.ResourcePolice},
	models.IncidentOther:            {models.ResourceAmbulance, models.ResourceRescueUnit},
}

var defaultEligibility = []models.ResourceType{models.ResourceAmbulance, models.ResourceRescueUnit}

// severityWeights drive the assignment score. Unknown severities weigh 1.
var severityWeights = map[models.Severity]float64{
	models.SeverityCritical: 3,
	models.SeverityHigh:     2,
	models.SeverityMedium:   1,
	models.SeverityLow:      0.5,
}

// Assignment is one proposed resource-to-incident match.
type Assignment struct {
	ResourceID    uuid.UUID
	IncidentID    uuid.UUID
	DistanceKm    float64
	EtaMinutes    int
	PriorityScore float64
}

// MatchingResourceTypes returns the eligible resource types for an incident
// type. Unmapped types get the default ambulance + rescue unit pair.
func MatchingResourceTypes(incidentType models.IncidentType) []models.ResourceType {
	if types, ok := resourceEligibility[incidentType]; ok {
		return types
	}
	return defaultEligibility
}

// AssignmentScore rewards high severity and spare capacity and penalizes
// distance. The distance penalty is capped at 5 points.
func AssignmentScore(distanceKm float64, capacity int, severity models.Severity) float64 {
	weight, ok := severityWeights[severity]
	if !ok {
		weight = 1
	}
	capacityBonus := math.Min(float64(capacity)/10, 2)
	distancePenalty := math.Min(distanceKm/50, 5)
	return weight*10 + capacityBonus*5 - distancePenalty
}

// BuildAssignments scores every candidate resource against the incident and
// returns the best matches, at most MaxAssignmentsPerDispatch of them.
// ETA assumes a fixed 30 km/h average speed (2 minutes per km). Distances
// and scores are rounded to 2 decimal places for determinism.
func BuildAssignments(incident *models.Incident, resources []*models.Resource) []Assignment {
	assignments := make([]Assignment, 0, len(resources))
	for _, resource := range resources {
		distance := HaversineKm(resource.CurrentLatitude, resource.CurrentLongitude, incident.Latitude, incident.Longitude)
		assignments = append(assignments, Assignment{
			ResourceID:    resource.ID,
			IncidentID:    incident.ID,
			DistanceKm:    round2(distance),
			EtaMinutes:    int(math.Ceil(distance * 2)),
			PriorityScore: round2(AssignmentScore(distance, resource.AvailableCapacity, incident.Severity)),
		})
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].PriorityScore > assignments[j].PriorityScore
	})
	if len(assignments) > MaxAssignmentsPerDispatch {
		assignments = assignments[:MaxAssignmentsPerDispatch]
	}
	return assignments
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
