package models

import (
	"time"

	"github.com/graylake-dev/postureguard/dtos"
)

type SecurityViolation struct {
	Model
	Title         string        `json:"title" gorm:"type:text;not null"`
	Description   string        `json:"description" gorm:"type:text"`
	ViolationType string        `json:"violationType" gorm:"type:text;not null;index:idx_security_violation_type"`
	Severity      dtos.Severity `json:"severity" gorm:"type:text;not null"`
	Status        dtos.Status   `json:"status" gorm:"type:text;not null;default:'Open';index:idx_security_violation_status"`

	// IncidentDate is when the violation actually happened, as opposed to when
	// it was recorded.
	IncidentDate time.Time `json:"incidentDate" gorm:"not null;index"`

	ContainerID *uint      `json:"containerId" gorm:"index"`
	Container   *Container `json:"-" gorm:"foreignKey:ContainerID;references:ID;constraint:OnDelete:CASCADE;"`

	RelatedIssueID *uint          `json:"relatedIssueId"`
	RelatedIssue   *SecurityIssue `json:"-" gorm:"foreignKey:RelatedIssueID;references:ID;constraint:OnDelete:SET NULL;"`

	AssignedToID *uint `json:"assignedToId"`
	AssignedTo   *User `json:"-" gorm:"foreignKey:AssignedToID;references:ID;constraint:OnDelete:SET NULL;"`

	CreatedByID uint `json:"createdById" gorm:"not null"`
	CreatedBy   User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (SecurityViolation) TableName() string {
	return "security_violations"
}
