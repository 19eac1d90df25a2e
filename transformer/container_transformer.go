package transformer

import (
	"github.com/gosimple/slug"
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
)

func ContainerCreateRequestToModel(c dtos.ContainerCreateRequest) models.Container {
	return models.Container{
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
		Type:        c.Type,

		ExternalID:     c.ExternalID,
		ExternalSystem: c.ExternalSystem,

		IsActive:    true,
		CreatedByID: c.CreatedByID,
	}
}

func ContainerDTOFromModel(container models.Container) dtos.ContainerDTO {
	return dtos.ContainerDTO{
		ID:          container.ID,
		Name:        container.Name,
		Slug:        container.Slug,
		Description: container.Description,
		Type:        container.Type,

		ExternalID:     container.ExternalID,
		ExternalSystem: container.ExternalSystem,

		RiskScore: container.RiskScore,
		IsActive:  container.IsActive,

		CreatedByID: container.CreatedByID,
		CreatedAt:   container.CreatedAt,
		UpdatedAt:   container.UpdatedAt,
	}
}
