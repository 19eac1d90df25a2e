package risk

import (
	"math"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
)

// Weight of each impact dimension in the issue risk score. The weights sum to
// 1, so uniform inputs reproduce themselves.
const (
	weightConfidentiality = 0.25
	weightIntegrity       = 0.25
	weightAvailability    = 0.25
	weightCompliance      = 0.15
	weightThirdParty      = 0.10
)

// SeverityWeights scale issue scores in the severity-weighted container
// aggregation. Unknown severities carry no weight.
var SeverityWeights = map[dtos.Severity]float64{
	dtos.SeverityCritical: 1.0,
	dtos.SeverityHigh:     0.8,
	dtos.SeverityMedium:   0.6,
	dtos.SeverityLow:      0.3,
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// IssueScore combines the five impact dimensions into a single 0-100 score.
func IssueScore(confidentiality, integrity, availability, compliance, thirdParty int) float64 {
	score := weightConfidentiality*float64(confidentiality) +
		weightIntegrity*float64(integrity) +
		weightAvailability*float64(availability) +
		weightCompliance*float64(compliance) +
		weightThirdParty*float64(thirdParty)
	return Round2(score)
}

// MeanScore is the plain average over all given issues regardless of their
// status, 0 if there are none.
func MeanScore(issues []models.SecurityIssue) float64 {
	if len(issues) == 0 {
		return 0
	}
	var sum float64
	for _, issue := range issues {
		sum += issue.RiskScore
	}
	return Round2(sum / float64(len(issues)))
}

// WeightedOpenScore is the severity-weighted average over the Open issues in
// the given slice. Issues in any other status do not contribute. The result
// is clamped to 100.
func WeightedOpenScore(issues []models.SecurityIssue) float64 {
	var weightedSum, totalWeight float64
	for _, issue := range issues {
		if issue.Status != dtos.StatusOpen {
			continue
		}
		weight, ok := SeverityWeights[issue.Severity]
		if !ok {
			continue
		}
		weightedSum += issue.RiskScore * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return Round2(math.Min(weightedSum/totalWeight, 100))
}
