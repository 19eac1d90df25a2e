package transformer

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/utils"
)

// SecurityIssueCreateRequestToModel maps the request without computing the
// risk score. The score is derived in the service so it can never be written
// from client input.
func SecurityIssueCreateRequestToModel(c dtos.SecurityIssueCreateRequest) models.SecurityIssue {
	return models.SecurityIssue{
		Title:          c.Title,
		Description:    c.Description,
		Severity:       c.Severity,
		Status:         utils.OrDefault(c.Status, dtos.StatusOpen),
		Classification: c.Classification,
		HierarchyLevel: utils.OrDefault(c.HierarchyLevel, dtos.HierarchyLevelTask),

		ParentIssueID: c.ParentIssueID,

		ConfidentialityImpact: c.ConfidentialityImpact,
		IntegrityImpact:       c.IntegrityImpact,
		AvailabilityImpact:    c.AvailabilityImpact,
		ComplianceRelevance:   c.ComplianceRelevance,
		ThirdPartyRisk:        c.ThirdPartyRisk,

		MitreAttackTechnique: c.MitreAttackTechnique,
		LinddunCategory:      c.LinddunCategory,

		ContainerID:  c.ContainerID,
		AssignedToID: c.AssignedToID,
		CreatedByID:  c.CreatedByID,

		IsAutomatedFinding: c.IsAutomatedFinding,
	}
}

// ApplySecurityIssuePatchRequestToModel merges the patch into the issue.
// impactChanged reports whether any of the five impact dimensions changed, in
// which case the caller has to recompute the risk score.
func ApplySecurityIssuePatchRequestToModel(p dtos.SecurityIssuePatchRequest, issue *models.SecurityIssue) (updated bool, impactChanged bool) {
	if p.Title != nil {
		updated = true
		issue.Title = *p.Title
	}

	if p.Description != nil {
		updated = true
		issue.Description = *p.Description
	}

	if p.Severity != nil {
		updated = true
		issue.Severity = *p.Severity
	}

	if p.Status != nil {
		updated = true
		issue.Status = *p.Status
	}

	if p.Classification != nil {
		updated = true
		issue.Classification = *p.Classification
	}

	if p.HierarchyLevel != nil {
		updated = true
		issue.HierarchyLevel = *p.HierarchyLevel
	}

	if p.ConfidentialityImpact != nil {
		updated = true
		impactChanged = true
		issue.ConfidentialityImpact = *p.ConfidentialityImpact
	}

	if p.IntegrityImpact != nil {
		updated = true
		impactChanged = true
		issue.IntegrityImpact = *p.IntegrityImpact
	}

	if p.AvailabilityImpact != nil {
		updated = true
		impactChanged = true
		issue.AvailabilityImpact = *p.AvailabilityImpact
	}

	if p.ComplianceRelevance != nil {
		updated = true
		impactChanged = true
		issue.ComplianceRelevance = *p.ComplianceRelevance
	}

	if p.ThirdPartyRisk != nil {
		updated = true
		impactChanged = true
		issue.ThirdPartyRisk = *p.ThirdPartyRisk
	}

	if p.MitreAttackTechnique != nil {
		updated = true
		issue.MitreAttackTechnique = p.MitreAttackTechnique
	}

	if p.LinddunCategory != nil {
		updated = true
		issue.LinddunCategory = p.LinddunCategory
	}

	if p.AssignedToID != nil {
		updated = true
		issue.AssignedToID = p.AssignedToID
	}

	return updated, impactChanged
}

func SecurityIssueDTOFromModel(issue models.SecurityIssue) dtos.SecurityIssueDTO {
	return dtos.SecurityIssueDTO{
		ID:             issue.ID,
		Title:          issue.Title,
		Description:    issue.Description,
		Severity:       issue.Severity,
		Status:         issue.Status,
		Classification: issue.Classification,
		HierarchyLevel: issue.HierarchyLevel,

		ParentIssueID: issue.ParentIssueID,

		ConfidentialityImpact: issue.ConfidentialityImpact,
		IntegrityImpact:       issue.IntegrityImpact,
		AvailabilityImpact:    issue.AvailabilityImpact,
		ComplianceRelevance:   issue.ComplianceRelevance,
		ThirdPartyRisk:        issue.ThirdPartyRisk,

		RiskScore: issue.RiskScore,

		MitreAttackTechnique: issue.MitreAttackTechnique,
		LinddunCategory:      issue.LinddunCategory,

		ContainerID:  issue.ContainerID,
		AssignedToID: issue.AssignedToID,
		CreatedByID:  issue.CreatedByID,

		IsAutomatedFinding: issue.IsAutomatedFinding,

		CreatedAt: issue.CreatedAt,
		UpdatedAt: issue.UpdatedAt,
	}
}
