package rules

import (
	"fmt"
	"testing"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(20.0, 85.0, 20.0, 85.0))
}

func TestHaversineKm_QuarterCircumference(t *testing.T) {
	// (0,0) to (0,90) is a quarter of the equator: R*pi/2.
	assert.InDelta(t, 10007.5, HaversineKm(0, 0, 0, 90), 1.0)
}

func TestMatchingResourceTypes_KnownTypes(t *testing.T) {
	assert.Equal(t,
		[]models.ResourceType{models.ResourceAmbulance, models.ResourceRescueUnit, models.ResourceMedicalUnit, models.ResourceShelter, models.ResourceWaterTanker},
		MatchingResourceTypes(models.IncidentFlood))
	assert.Equal(t,
		[]models.ResourceType{models.ResourceAmbulance, models.ResourceMedicalUnit},
		MatchingResourceTypes(models.IncidentMedicalEmergency))
}

func TestMatchingResourceTypes_UnmappedDefaults(t *testing.T) {
	assert.Equal(t,
		[]models.ResourceType{models.ResourceAmbulance, models.ResourceRescueUnit},
		MatchingResourceTypes(models.IncidentType("landslide")))
}

func TestAssignmentScore(t *testing.T) {
	// critical, full capacity bonus, no distance: 3*10 + 2*5 - 0.
	assert.Equal(t, 40.0, AssignmentScore(0, 20, models.SeverityCritical))

	// Distance penalty caps at 5 points.
	assert.Equal(t, 35.0, AssignmentScore(500, 20, models.SeverityCritical))
	assert.Equal(t, AssignmentScore(250, 20, models.SeverityCritical), AssignmentScore(9000, 20, models.SeverityCritical))

	// Unknown severity weighs 1.
	assert.Equal(t, 10.0, AssignmentScore(0, 0, models.Severity("unknown")))
}

func TestBuildAssignments_TopFiveCap(t *testing.T) {
	incident := &models.Incident{
		ID:       uuid.New(),
		Severity: models.SeverityCritical,
		Latitude: 20.0, Longitude: 85.0,
	}

	resources := make([]*models.Resource, 0, 20)
	for i := 0; i < 20; i++ {
		resources = append(resources, &models.Resource{
			ID:                uuid.New(),
			ResourceType:      models.ResourceAmbulance,
			CurrentLatitude:   20.0 + float64(i)*0.1,
			CurrentLongitude:  85.0,
			Status:            models.ResourceStatusAvailable,
			AvailableCapacity: 10,
		})
	}

	assignments := BuildAssignments(incident, resources)

	require.Len(t, assignments, MaxAssignmentsPerDispatch)
	for i := 1; i < len(assignments); i++ {
		assert.GreaterOrEqual(t, assignments[i-1].PriorityScore, assignments[i].PriorityScore,
			fmt.Sprintf("assignments must be ordered by score, position %d", i))
	}
	// With equal severity and capacity, the closest resources win.
	assert.Equal(t, resources[0].ID, assignments[0].ResourceID)
}

func TestBuildAssignments_ColocatedResource(t *testing.T) {
	incident := &models.Incident{
		ID:       uuid.New(),
		Severity: models.SeverityHigh,
		Latitude: 12.97, Longitude: 77.59,
	}
	resource := &models.Resource{
		ID:                uuid.New(),
		CurrentLatitude:   12.97,
		CurrentLongitude:  77.59,
		AvailableCapacity: 5,
	}

	assignments := BuildAssignments(incident, []*models.Resource{resource})

	require.Len(t, assignments, 1)
	assert.Equal(t, 0.0, assignments[0].DistanceKm)
	assert.Equal(t, 0, assignments[0].EtaMinutes)
	// 2*10 + 0.5*5 - 0
	assert.Equal(t, 22.5, assignments[0].PriorityScore)
	assert.Equal(t, incident.ID, assignments[0].IncidentID)
}

func TestBuildAssignments_NoCandidates(t *testing.T) {
	incident := &models.Incident{ID: uuid.New(), Severity: models.SeverityLow}
	assert.Empty(t, BuildAssignments(incident, nil))
}
