package transformer_test

import (
	"testing"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/stretchr/testify/assert"
)

func TestSecurityIssueCreateRequestToModel(t *testing.T) {
	t.Run("defaults status to Open and hierarchy level to Task", func(t *testing.T) {
		issue := transformer.SecurityIssueCreateRequestToModel(dtos.SecurityIssueCreateRequest{
			Title:          "SQL injection in login form",
			Severity:       dtos.SeverityHigh,
			Classification: dtos.ClassificationVulnerability,
			ContainerID:    1,
			CreatedByID:    1,
		})

		assert.Equal(t, dtos.StatusOpen, issue.Status)
		assert.Equal(t, dtos.HierarchyLevelTask, issue.HierarchyLevel)
	})

	t.Run("keeps an explicit status and hierarchy level", func(t *testing.T) {
		issue := transformer.SecurityIssueCreateRequestToModel(dtos.SecurityIssueCreateRequest{
			Title:          "Broken access control",
			Severity:       dtos.SeverityCritical,
			Status:         utils.Ptr(dtos.StatusInProgress),
			Classification: dtos.ClassificationWeakness,
			HierarchyLevel: utils.Ptr(dtos.HierarchyLevelEpic),
			ContainerID:    1,
			CreatedByID:    1,
		})

		assert.Equal(t, dtos.StatusInProgress, issue.Status)
		assert.Equal(t, dtos.HierarchyLevelEpic, issue.HierarchyLevel)
	})

	t.Run("never maps a risk score from the request", func(t *testing.T) {
		issue := transformer.SecurityIssueCreateRequestToModel(dtos.SecurityIssueCreateRequest{
			Title:                 "Unpatched dependency",
			Severity:              dtos.SeverityMedium,
			Classification:        dtos.ClassificationVulnerability,
			ConfidentialityImpact: 90,
			IntegrityImpact:       90,
			AvailabilityImpact:    90,
			ComplianceRelevance:   90,
			ThirdPartyRisk:        90,
			ContainerID:           1,
			CreatedByID:           1,
		})

		assert.Zero(t, issue.RiskScore)
	})
}

func TestApplySecurityIssuePatchRequestToModel(t *testing.T) {
	base := func() *dtos.SecurityIssuePatchRequest {
		return &dtos.SecurityIssuePatchRequest{}
	}

	t.Run("empty patch leaves the issue untouched", func(t *testing.T) {
		issue := transformer.SecurityIssueCreateRequestToModel(dtos.SecurityIssueCreateRequest{
			Title:          "Weak TLS configuration",
			Severity:       dtos.SeverityLow,
			Classification: dtos.ClassificationMisconfiguration,
			ContainerID:    1,
			CreatedByID:    1,
		})

		updated, impactChanged := transformer.ApplySecurityIssuePatchRequestToModel(*base(), &issue)

		assert.False(t, updated)
		assert.False(t, impactChanged)
		assert.Equal(t, "Weak TLS configuration", issue.Title)
	})

	t.Run("patching an impact dimension reports an impact change", func(t *testing.T) {
		issue := transformer.SecurityIssueCreateRequestToModel(dtos.SecurityIssueCreateRequest{
			Title:           "Weak TLS configuration",
			Severity:        dtos.SeverityLow,
			Classification:  dtos.ClassificationMisconfiguration,
			IntegrityImpact: 20,
			ContainerID:     1,
			CreatedByID:     1,
		})

		patch := base()
		patch.IntegrityImpact = utils.Ptr(80)

		updated, impactChanged := transformer.ApplySecurityIssuePatchRequestToModel(*patch, &issue)

		assert.True(t, updated)
		assert.True(t, impactChanged)
		assert.Equal(t, 80, issue.IntegrityImpact)
	})

	t.Run("patching only metadata does not report an impact change", func(t *testing.T) {
		issue := transformer.SecurityIssueCreateRequestToModel(dtos.SecurityIssueCreateRequest{
			Title:          "Weak TLS configuration",
			Severity:       dtos.SeverityLow,
			Classification: dtos.ClassificationMisconfiguration,
			ContainerID:    1,
			CreatedByID:    1,
		})

		patch := base()
		patch.Title = utils.Ptr("Outdated TLS configuration")
		patch.Status = utils.Ptr(dtos.StatusResolved)

		updated, impactChanged := transformer.ApplySecurityIssuePatchRequestToModel(*patch, &issue)

		assert.True(t, updated)
		assert.False(t, impactChanged)
		assert.Equal(t, "Outdated TLS configuration", issue.Title)
		assert.Equal(t, dtos.StatusResolved, issue.Status)
	})
}
