package models

import "github.com/google/uuid"

type ResourceType string

const (
	ResourceAmbulance   ResourceType = "ambulance"
	ResourceRescueUnit  ResourceType = "rescue_unit"
	ResourceMedicalUnit ResourceType = "medical_unit"
	ResourceShelter     ResourceType = "shelter"
	ResourceWaterTanker ResourceType = "water_tanker"
	ResourceFireTeam    ResourceType = "fire_team"
	ResourcePolice      ResourceType = "police"
)

type ResourceStatus string

const (
	ResourceStatusAvailable   ResourceStatus = "available"
	ResourceStatusDeployed    ResourceStatus = "deployed"
	ResourceStatusUnavailable ResourceStatus = "unavailable"
)

// Resource is an emergency response unit owned by the resource registry.
// The core only reads resources that are available with spare capacity.
type Resource struct {
	ID                uuid.UUID      `json:"id"`
	ResourceType      ResourceType   `json:"resource_type"`
	CurrentLatitude   float64        `json:"current_latitude"`
	CurrentLongitude  float64        `json:"current_longitude"`
	Status            ResourceStatus `json:"status"`
	AvailableCapacity int            `json:"available_capacity"`
}
