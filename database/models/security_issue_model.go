package models

import "github.com/graylake-dev/postureguard/dtos"

type SecurityIssue struct {
	Model
	Title          string                   `json:"title" gorm:"type:text;not null"`
	Description    string                   `json:"description" gorm:"type:text"`
	Severity       dtos.Severity            `json:"severity" gorm:"type:text;not null;index:idx_security_issue_severity"`
	Status         dtos.Status              `json:"status" gorm:"type:text;not null;default:'Open';index:idx_security_issue_status"`
	Classification dtos.IssueClassification `json:"classification" gorm:"type:text;not null"`
	HierarchyLevel dtos.HierarchyLevel      `json:"hierarchyLevel" gorm:"type:text;not null;default:'Task'"`

	ParentIssueID *uint          `json:"parentIssueId" gorm:"index"`
	ParentIssue   *SecurityIssue `json:"-" gorm:"foreignKey:ParentIssueID;references:ID;constraint:OnDelete:SET NULL;"`

	// The five impact dimensions feed the weighted risk score. All range 0-100.
	ConfidentialityImpact int `json:"confidentialityImpact" gorm:"not null;default:0"`
	IntegrityImpact       int `json:"integrityImpact" gorm:"not null;default:0"`
	AvailabilityImpact    int `json:"availabilityImpact" gorm:"not null;default:0"`
	ComplianceRelevance   int `json:"complianceRelevance" gorm:"not null;default:0"`
	ThirdPartyRisk        int `json:"thirdPartyRisk" gorm:"not null;default:0"`

	// RiskScore is recomputed whenever an impact dimension changes, never
	// written from client input.
	RiskScore float64 `json:"riskScore" gorm:"type:decimal(5,2);not null;default:0"`

	MitreAttackTechnique *string `json:"mitreAttackTechnique" gorm:"type:text"`
	LinddunCategory      *string `json:"linddunCategory" gorm:"type:text"`

	ContainerID uint      `json:"containerId" gorm:"not null;index:idx_security_issue_container"`
	Container   Container `json:"-" gorm:"foreignKey:ContainerID;references:ID;constraint:OnDelete:CASCADE;"`

	AssignedToID *uint `json:"assignedToId" gorm:"index"`
	AssignedTo   *User `json:"-" gorm:"foreignKey:AssignedToID;references:ID;constraint:OnDelete:SET NULL;"`

	CreatedByID uint `json:"createdById" gorm:"not null"`
	CreatedBy   User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE;"`

	IsAutomatedFinding bool `json:"isAutomatedFinding" gorm:"not null;default:false"`
}

func (SecurityIssue) TableName() string {
	return "security_issues"
}
