// Package rules contains the pure decision logic of the crisis pipeline:
// keyword detection, priority scoring, resource matching and alert
// templating. Everything here is table-driven and free of I/O so it can be
// tested without a live store.
package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/crisisops/crisis_response_system/internal/models"
)

// Detection thresholds. A report becomes an emergency above 0.3; the
// life-threatening flag requires a stronger keyword signal.
const (
	emergencyThreshold       = 0.3
	lifeThreateningThreshold = 0.6
)

type keywordCategory struct {
	name         string
	incidentType models.IncidentType
	keywords     []string
}

// keywordCategories is ordered: on equal match ratios the first declared
// category wins.
var keywordCategories = []keywordCategory{
	{"flood", models.IncidentFlood, []string{"flood", "water", "inundation", "submerged", "drowning", "waterlogged"}},
	{"cyclone", models.IncidentCyclone, []string{"cyclone", "storm", "hurricane", "tornado", "high wind", "severe weather"}},
	{"fire", models.IncidentFire, []string{"fire", "burning", "ablaze", "smoke", "arson", "wildfire"}},
	{"earthquake", models.IncidentEarthquake, []string{"earthquake", "tremor", "seismic", "collapsed", "building collapse"}},
	{"medical", models.IncidentMedicalEmergency, []string{"injury", "injured", "accident", "collision", "poisoning", "medical", "ambulance", "emergency"}},
	{"safety", models.IncidentAccident, []string{"attack", "violence", "shooting", "danger", "threat", "emergency", "trapped"}},
}

// DetectionResult is the outcome of rule-based emergency detection.
type DetectionResult struct {
	IsEmergency          bool
	EmergencyType        string
	IncidentType         models.IncidentType
	Severity             models.Severity
	LifeThreatening      bool
	LifeThreateningScore float64
	ConfidenceScore      float64
	Reasoning            string
}

// DetectEmergency classifies free report text against the keyword tables.
// Absent title or description is fine; they are just empty strings.
func DetectEmergency(title, description string) DetectionResult {
	text := strings.ToLower(title + " " + description)

	maxScore := 0.0
	detectedName := "other"
	detectedType := models.IncidentOther

	for _, cat := range keywordCategories {
		matches := 0
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		score := float64(matches) / float64(len(cat.keywords))
		if score > maxScore {
			maxScore = score
			detectedName = cat.name
			detectedType = cat.incidentType
		}
	}

	severity := models.SeverityLow
	switch {
	case maxScore > 0.7:
		severity = models.SeverityCritical
	case maxScore > 0.5:
		severity = models.SeverityHigh
	case maxScore > emergencyThreshold:
		severity = models.SeverityMedium
	}

	return DetectionResult{
		IsEmergency:          maxScore > emergencyThreshold,
		EmergencyType:        detectedName,
		IncidentType:         detectedType,
		Severity:             severity,
		LifeThreatening:      maxScore > lifeThreateningThreshold,
		LifeThreateningScore: maxScore,
		ConfidenceScore:      math.Min(maxScore+0.1, 1.0),
		Reasoning:            fmt.Sprintf("Detected %s emergency with %d%% confidence based on keywords.", detectedName, int(math.Round(maxScore*100))),
	}
}
