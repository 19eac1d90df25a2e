package models

import "github.com/graylake-dev/postureguard/dtos"

// Container is the unit security issues, reviews, controls and architecture
// components attach to. Depending on the team it models a project, an
// application, a whole system or a single service.
type Container struct {
	Model
	Name        string             `json:"name" gorm:"type:text;not null"`
	Slug        string             `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string             `json:"description" gorm:"type:text"`
	Type        dtos.ContainerType `json:"type" gorm:"type:text;not null"`

	ExternalID     *string `json:"externalId" gorm:"type:text"`
	ExternalSystem *string `json:"externalSystem" gorm:"type:text"`

	// RiskScore is derived from the container's issues and never written from
	// client input.
	RiskScore float64 `json:"riskScore" gorm:"type:decimal(5,2);not null;default:0"`
	IsActive  bool    `json:"isActive" gorm:"not null;default:true"`

	CreatedByID uint `json:"createdById" gorm:"not null;index"`
	CreatedBy   User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (Container) TableName() string {
	return "containers"
}
