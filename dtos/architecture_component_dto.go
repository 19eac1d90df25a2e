package dtos

import "time"

type ArchitectureComponentCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`

	ComponentType  string  `json:"componentType" validate:"required"`
	SecurityDomain *string `json:"securityDomain"`
	TrustBoundary  *string `json:"trustBoundary"`
	NetworkZone    *string `json:"networkZone"`

	PositionX *float64 `json:"positionX"`
	PositionY *float64 `json:"positionY"`

	ContainerID uint `json:"containerId" validate:"required"`
	CreatedByID uint `json:"createdById" validate:"required"`
}

type ArchitectureComponentDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	ComponentType  string  `json:"componentType"`
	SecurityDomain *string `json:"securityDomain"`
	TrustBoundary  *string `json:"trustBoundary"`
	NetworkZone    *string `json:"networkZone"`

	PositionX *float64 `json:"positionX"`
	PositionY *float64 `json:"positionY"`

	IsActive bool `json:"isActive"`

	ContainerID uint `json:"containerId"`
	CreatedByID uint `json:"createdById"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ArchitectureComponentFilter struct {
	ComponentType  *string `query:"componentType"`
	SecurityDomain *string `query:"securityDomain"`
	ContainerID    *uint   `query:"containerId"`
	TrustBoundary  *string `query:"trustBoundary"`
	NetworkZone    *string `query:"networkZone"`
	IsActive       *bool   `query:"isActive"`
}
