package rules

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/google/uuid"
)

// severityPoints is the severity term of the priority score. Unknown
// severities fall back to the low value.
var severityPoints = map[models.Severity]float64{
	models.SeverityCritical: 40,
	models.SeverityHigh:     30,
	models.SeverityMedium:   15,
	models.SeverityLow:      5,
}

// highImpactTypes get a flat bonus in the priority score.
var highImpactTypes = map[models.IncidentType]bool{
	models.IncidentFlood:      true,
	models.IncidentCyclone:    true,
	models.IncidentFire:       true,
	models.IncidentEarthquake: true,
}

// PriorityResult is one row of a ranking run.
type PriorityResult struct {
	IncidentID    uuid.UUID
	PriorityScore float64
	Ranking       int
	Rationale     string
}

// PriorityScore computes the 0-100 urgency score for an incident at the
// given wall-clock time. The score is strictly additive and capped at 100:
// severity (max 40), life threat (25), affected population (max 20),
// recency (max 15, fully decayed after 150 minutes) and a high-impact type
// bonus (10).
func PriorityScore(incident *models.Incident, now time.Time) float64 {
	points, ok := severityPoints[incident.Severity]
	if !ok {
		points = severityPoints[models.SeverityLow]
	}
	score := points

	if incident.LifeThreatening {
		score += 25
	}

	score += math.Min(float64(incident.AffectedPopulation)/100, 20)

	ageMinutes := now.Sub(incident.CreatedAt).Minutes()
	score += math.Max(15-ageMinutes/10, 0)

	if highImpactTypes[incident.IncidentType] {
		score += 10
	}

	return math.Min(score, 100)
}

// RankIncidents scores every incident and orders them by descending score.
// The sort is stable, so ties keep the caller's fetch order. Ranking is the
// 1-based position after sorting.
func RankIncidents(incidents []*models.Incident, now time.Time) []PriorityResult {
	results := make([]PriorityResult, 0, len(incidents))
	for _, incident := range incidents {
		threat := "non-threat"
		if incident.LifeThreatening {
			threat = "life-threatening"
		}
		results = append(results, PriorityResult{
			IncidentID:    incident.ID,
			PriorityScore: PriorityScore(incident, now),
			Rationale:     fmt.Sprintf("Score: %s (%d affected, %s)", incident.Severity, incident.AffectedPopulation, threat),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PriorityScore > results[j].PriorityScore
	})
	for i := range results {
		results[i].Ranking = i + 1
	}
	return results
}
