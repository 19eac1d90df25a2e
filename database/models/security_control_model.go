package models

import "github.com/graylake-dev/postureguard/dtos"

type SecurityControl struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	ControlType        string  `json:"controlType" gorm:"type:text;not null"`
	ControlFamily      *string `json:"controlFamily" gorm:"type:text"`
	FrameworkReference *string `json:"frameworkReference" gorm:"type:text"`

	ImplementationStatus dtos.ImplementationStatus `json:"implementationStatus" gorm:"type:text;not null;default:'NotSpecified'"`
	EffectivenessRating  *int                      `json:"effectivenessRating"`

	IsActive bool `json:"isActive" gorm:"not null;default:true"`

	ContainerID uint      `json:"containerId" gorm:"not null;index:idx_security_control_container"`
	Container   Container `json:"-" gorm:"foreignKey:ContainerID;references:ID;constraint:OnDelete:CASCADE;"`

	CreatedByID uint `json:"createdById" gorm:"not null"`
	CreatedBy   User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (SecurityControl) TableName() string {
	return "security_controls"
}
