package dtos

import "time"

// Canonical violation types. The column is free text, new categories can be
// introduced without a schema change.
const (
	ViolationTypePolicyViolation  = "PolicyViolation"
	ViolationTypeAccessViolation  = "AccessViolation"
	ViolationTypeDataLeak         = "DataLeak"
	ViolationTypeComplianceBreach = "ComplianceBreach"
)

type SecurityViolationCreateRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	ViolationType string   `json:"violationType" validate:"required"`
	Severity      Severity `json:"severity" validate:"required,oneof=Critical High Medium Low"`

	IncidentDate time.Time `json:"incidentDate" validate:"required"`

	ContainerID    *uint `json:"containerId"`
	RelatedIssueID *uint `json:"relatedIssueId"`
	AssignedToID   *uint `json:"assignedToId"`
	CreatedByID    uint  `json:"createdById" validate:"required"`
}

type SecurityViolationDTO struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ViolationType string   `json:"violationType"`
	Severity      Severity `json:"severity"`
	Status        Status   `json:"status"`

	IncidentDate time.Time `json:"incidentDate"`

	ContainerID    *uint `json:"containerId"`
	RelatedIssueID *uint `json:"relatedIssueId"`
	AssignedToID   *uint `json:"assignedToId"`
	CreatedByID    uint  `json:"createdById"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SecurityViolationDetailDTO is the flat join of a violation with the names of
// its container, assignee and creator.
type SecurityViolationDetailDTO struct {
	SecurityViolationDTO
	ContainerName    *string `json:"containerName"`
	ContainerSlug    *string `json:"containerSlug"`
	AssignedToName   *string `json:"assignedToName"`
	CreatedByName    *string `json:"createdByName"`
	RelatedIssueName *string `json:"relatedIssueName"`
}

type SecurityViolationFilter struct {
	ViolationType *string   `query:"violationType"`
	Severity      *Severity `query:"severity" validate:"omitempty,oneof=Critical High Medium Low"`
	Status        *Status   `query:"status" validate:"omitempty,oneof=Open In-progress Resolved Closed"`
	AssignedToID  *uint     `query:"assignedToId"`
	ContainerID   *uint     `query:"containerId"`

	CreatedAfter  *time.Time `query:"createdAfter"`
	CreatedBefore *time.Time `query:"createdBefore"`

	IncidentAfter  *time.Time `query:"incidentAfter"`
	IncidentBefore *time.Time `query:"incidentBefore"`
}
