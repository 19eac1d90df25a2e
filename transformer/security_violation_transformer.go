package transformer

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
)

func SecurityViolationCreateRequestToModel(c dtos.SecurityViolationCreateRequest) models.SecurityViolation {
	return models.SecurityViolation{
		Title:         c.Title,
		Description:   c.Description,
		ViolationType: c.ViolationType,
		Severity:      c.Severity,
		Status:        dtos.StatusOpen,

		IncidentDate: c.IncidentDate,

		ContainerID:    c.ContainerID,
		RelatedIssueID: c.RelatedIssueID,
		AssignedToID:   c.AssignedToID,
		CreatedByID:    c.CreatedByID,
	}
}

func SecurityViolationDTOFromModel(violation models.SecurityViolation) dtos.SecurityViolationDTO {
	return dtos.SecurityViolationDTO{
		ID:            violation.ID,
		Title:         violation.Title,
		Description:   violation.Description,
		ViolationType: violation.ViolationType,
		Severity:      violation.Severity,
		Status:        violation.Status,

		IncidentDate: violation.IncidentDate,

		ContainerID:    violation.ContainerID,
		RelatedIssueID: violation.RelatedIssueID,
		AssignedToID:   violation.AssignedToID,
		CreatedByID:    violation.CreatedByID,

		CreatedAt: violation.CreatedAt,
		UpdatedAt: violation.UpdatedAt,
	}
}
