package risk

import (
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/stretchr/testify/assert"
)

func TestIssueScore(t *testing.T) {
	t.Run("should reproduce uniform inputs exactly", func(t *testing.T) {
		assert.Equal(t, 0.0, IssueScore(0, 0, 0, 0, 0))
		assert.Equal(t, 100.0, IssueScore(100, 100, 100, 100, 100))
		assert.Equal(t, 50.0, IssueScore(50, 50, 50, 50, 50))
	})

	t.Run("should apply the dimension weights", func(t *testing.T) {
		// 0.25*80 + 0.25*70 + 0.25*60 + 0.15*10 + 0.10*5
		assert.Equal(t, 54.5, IssueScore(80, 70, 60, 10, 5))
	})

	t.Run("should produce the merged score after a partial dimension update", func(t *testing.T) {
		// stored dimensions {50,30,20,10,5}, update sets C=90 and Compl=40
		assert.Equal(t, 41.5, IssueScore(90, 30, 20, 40, 5))
	})

	t.Run("should handle mixed dimension values", func(t *testing.T) {
		// 0.25*87 + 0.25*60 + 0.25*40 + 0.15*50 + 0.10*27 = 56.95
		assert.Equal(t, 56.95, IssueScore(87, 60, 40, 50, 27))
	})
}

func TestMeanScore(t *testing.T) {
	t.Run("should return 0 for a container without issues", func(t *testing.T) {
		assert.Equal(t, 0.0, MeanScore(nil))
		assert.Equal(t, 0.0, MeanScore([]models.SecurityIssue{}))
	})

	t.Run("should average over all issues regardless of status", func(t *testing.T) {
		issues := []models.SecurityIssue{
			{RiskScore: 90, Status: dtos.StatusOpen},
			{RiskScore: 10, Status: dtos.StatusClosed},
		}
		assert.Equal(t, 50.0, MeanScore(issues))
	})

	t.Run("should match the dashboard mean", func(t *testing.T) {
		issues := []models.SecurityIssue{
			{RiskScore: 95},
			{RiskScore: 80},
			{RiskScore: 50},
			{RiskScore: 20},
		}
		assert.Equal(t, 61.25, MeanScore(issues))
	})
}

func TestWeightedOpenScore(t *testing.T) {
	t.Run("should weight open issues by severity", func(t *testing.T) {
		issues := []models.SecurityIssue{
			{RiskScore: 90, Severity: dtos.SeverityCritical, Status: dtos.StatusOpen},
			{RiskScore: 60, Severity: dtos.SeverityHigh, Status: dtos.StatusOpen},
		}
		// (90*1.0 + 60*0.8) / 1.8
		assert.Equal(t, 76.67, WeightedOpenScore(issues))
	})

	t.Run("should ignore issues that are not open", func(t *testing.T) {
		issues := []models.SecurityIssue{
			{RiskScore: 90, Severity: dtos.SeverityCritical, Status: dtos.StatusOpen},
			{RiskScore: 60, Severity: dtos.SeverityHigh, Status: dtos.StatusOpen},
			{RiskScore: 100, Severity: dtos.SeverityCritical, Status: dtos.StatusClosed},
			{RiskScore: 100, Severity: dtos.SeverityCritical, Status: dtos.StatusResolved},
			{RiskScore: 100, Severity: dtos.SeverityCritical, Status: dtos.StatusInProgress},
		}
		assert.Equal(t, 76.67, WeightedOpenScore(issues))
	})

	t.Run("should return 0 when no issue is open", func(t *testing.T) {
		issues := []models.SecurityIssue{
			{RiskScore: 90, Severity: dtos.SeverityCritical, Status: dtos.StatusResolved},
		}
		assert.Equal(t, 0.0, WeightedOpenScore(issues))
		assert.Equal(t, 0.0, WeightedOpenScore(nil))
	})

	t.Run("should never exceed 100", func(t *testing.T) {
		issues := []models.SecurityIssue{
			{RiskScore: 100, Severity: dtos.SeverityCritical, Status: dtos.StatusOpen},
			{RiskScore: 100, Severity: dtos.SeverityLow, Status: dtos.StatusOpen},
		}
		assert.Equal(t, 100.0, WeightedOpenScore(issues))
	})
}
