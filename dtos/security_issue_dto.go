package dtos

import "time"

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Status is the shared lifecycle of security issues and security violations.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In-progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

type IssueClassification string

const (
	ClassificationVulnerability    IssueClassification = "Vulnerability"
	ClassificationMisconfiguration IssueClassification = "Misconfiguration"
	ClassificationWeakness         IssueClassification = "Weakness"
	ClassificationPolicyGap        IssueClassification = "PolicyGap"
)

type HierarchyLevel string

const (
	HierarchyLevelEpic  HierarchyLevel = "Epic"
	HierarchyLevelStory HierarchyLevel = "Story"
	HierarchyLevelTask  HierarchyLevel = "Task"
)

type SecurityIssueCreateRequest struct {
	Title          string              `json:"title" validate:"required"`
	Description    string              `json:"description"`
	Severity       Severity            `json:"severity" validate:"required,oneof=Critical High Medium Low"`
	Status         *Status             `json:"status" validate:"omitempty,oneof=Open In-progress Resolved Closed"`
	Classification IssueClassification `json:"classification" validate:"required,oneof=Vulnerability Misconfiguration Weakness PolicyGap"`
	HierarchyLevel *HierarchyLevel     `json:"hierarchyLevel" validate:"omitempty,oneof=Epic Story Task"`

	ParentIssueID *uint `json:"parentIssueId"`

	ConfidentialityImpact int `json:"confidentialityImpact" validate:"min=0,max=100"`
	IntegrityImpact       int `json:"integrityImpact" validate:"min=0,max=100"`
	AvailabilityImpact    int `json:"availabilityImpact" validate:"min=0,max=100"`
	ComplianceRelevance   int `json:"complianceRelevance" validate:"min=0,max=100"`
	ThirdPartyRisk        int `json:"thirdPartyRisk" validate:"min=0,max=100"`

	MitreAttackTechnique *string `json:"mitreAttackTechnique"`
	LinddunCategory      *string `json:"linddunCategory"`

	ContainerID  uint  `json:"containerId" validate:"required"`
	AssignedToID *uint `json:"assignedToId"`
	CreatedByID  uint  `json:"createdById" validate:"required"`

	IsAutomatedFinding bool `json:"isAutomatedFinding"`
}

// SecurityIssuePatchRequest updates a subset of issue fields. Changing any
// impact dimension triggers a risk score recalculation using the merged set of
// dimensions.
type SecurityIssuePatchRequest struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	Severity       *Severity            `json:"severity" validate:"omitempty,oneof=Critical High Medium Low"`
	Status         *Status              `json:"status" validate:"omitempty,oneof=Open In-progress Resolved Closed"`
	Classification *IssueClassification `json:"classification" validate:"omitempty,oneof=Vulnerability Misconfiguration Weakness PolicyGap"`
	HierarchyLevel *HierarchyLevel      `json:"hierarchyLevel" validate:"omitempty,oneof=Epic Story Task"`

	ConfidentialityImpact *int `json:"confidentialityImpact" validate:"omitempty,min=0,max=100"`
	IntegrityImpact       *int `json:"integrityImpact" validate:"omitempty,min=0,max=100"`
	AvailabilityImpact    *int `json:"availabilityImpact" validate:"omitempty,min=0,max=100"`
	ComplianceRelevance   *int `json:"complianceRelevance" validate:"omitempty,min=0,max=100"`
	ThirdPartyRisk        *int `json:"thirdPartyRisk" validate:"omitempty,min=0,max=100"`

	MitreAttackTechnique *string `json:"mitreAttackTechnique"`
	LinddunCategory      *string `json:"linddunCategory"`

	AssignedToID *uint `json:"assignedToId"`
}

type SecurityIssueDTO struct {
	ID             uint                `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Severity       Severity            `json:"severity"`
	Status         Status              `json:"status"`
	Classification IssueClassification `json:"classification"`
	HierarchyLevel HierarchyLevel      `json:"hierarchyLevel"`

	ParentIssueID *uint `json:"parentIssueId"`

	ConfidentialityImpact int `json:"confidentialityImpact"`
	IntegrityImpact       int `json:"integrityImpact"`
	AvailabilityImpact    int `json:"availabilityImpact"`
	ComplianceRelevance   int `json:"complianceRelevance"`
	ThirdPartyRisk        int `json:"thirdPartyRisk"`

	RiskScore float64 `json:"riskScore"`

	MitreAttackTechnique *string `json:"mitreAttackTechnique"`
	LinddunCategory      *string `json:"linddunCategory"`

	ContainerID  uint  `json:"containerId"`
	AssignedToID *uint `json:"assignedToId"`
	CreatedByID  uint  `json:"createdById"`

	IsAutomatedFinding bool `json:"isAutomatedFinding"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SecurityIssueFilter struct {
	ContainerID        *uint                `query:"containerId"`
	Severity           *Severity            `query:"severity" validate:"omitempty,oneof=Critical High Medium Low"`
	Status             *Status              `query:"status" validate:"omitempty,oneof=Open In-progress Resolved Closed"`
	Classification     *IssueClassification `query:"classification" validate:"omitempty,oneof=Vulnerability Misconfiguration Weakness PolicyGap"`
	AssignedToID       *uint                `query:"assignedToId"`
	IsAutomatedFinding *bool                `query:"isAutomatedFinding"`

	CreatedAfter  *time.Time `query:"createdAfter"`
	CreatedBefore *time.Time `query:"createdBefore"`

	RiskScoreMin *float64 `query:"riskScoreMin"`
	RiskScoreMax *float64 `query:"riskScoreMax"`
}
