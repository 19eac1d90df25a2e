package dtos

import "time"

type ContainerType string

const (
	ContainerTypeProject     ContainerType = "Project"
	ContainerTypeApplication ContainerType = "Application"
	ContainerTypeSystem      ContainerType = "System"
	ContainerTypeService     ContainerType = "Service"
)

type ContainerCreateRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Type        ContainerType `json:"type" validate:"required,oneof=Project Application System Service"`

	ExternalID     *string `json:"externalId"`
	ExternalSystem *string `json:"externalSystem"`

	CreatedByID uint `json:"createdById" validate:"required"`
}

type ContainerDTO struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Type        ContainerType `json:"type"`

	ExternalID     *string `json:"externalId"`
	ExternalSystem *string `json:"externalSystem"`

	RiskScore float64 `json:"riskScore"`
	IsActive  bool    `json:"isActive"`

	CreatedByID uint      `json:"createdById"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ContainerFilter struct {
	Type     *ContainerType `query:"type" validate:"omitempty,oneof=Project Application System Service"`
	IsActive *bool          `query:"isActive"`
}
