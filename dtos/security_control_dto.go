package dtos

import "time"

type ImplementationStatus string

const (
	ImplementationStatusExisting     ImplementationStatus = "Existing"
	ImplementationStatusPlanned      ImplementationStatus = "Planned"
	ImplementationStatusNotSpecified ImplementationStatus = "NotSpecified"
)

type SecurityControlCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`

	ControlType        string  `json:"controlType" validate:"required"`
	ControlFamily      *string `json:"controlFamily"`
	FrameworkReference *string `json:"frameworkReference"`

	ImplementationStatus *ImplementationStatus `json:"implementationStatus" validate:"omitempty,oneof=Existing Planned NotSpecified"`
	EffectivenessRating  *int                  `json:"effectivenessRating" validate:"omitempty,min=0,max=100"`

	ContainerID uint `json:"containerId" validate:"required"`
	CreatedByID uint `json:"createdById" validate:"required"`
}

type SecurityControlDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	ControlType        string  `json:"controlType"`
	ControlFamily      *string `json:"controlFamily"`
	FrameworkReference *string `json:"frameworkReference"`

	ImplementationStatus ImplementationStatus `json:"implementationStatus"`
	EffectivenessRating  *int                 `json:"effectivenessRating"`

	IsActive bool `json:"isActive"`

	ContainerID uint `json:"containerId"`
	CreatedByID uint `json:"createdById"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SecurityControlFilter struct {
	ImplementationStatus *ImplementationStatus `query:"implementationStatus" validate:"omitempty,oneof=Existing Planned NotSpecified"`
	ControlType          *string               `query:"controlType"`
	FrameworkReference   *string               `query:"frameworkReference"`
	ControlFamily        *string               `query:"controlFamily"`
	ContainerID          *uint                 `query:"containerId"`
	IsActive             *bool                 `query:"isActive"`
}
