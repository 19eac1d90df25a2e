package transformer

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
)

func ArchitectureComponentCreateRequestToModel(c dtos.ArchitectureComponentCreateRequest) models.ArchitectureComponent {
	return models.ArchitectureComponent{
		Name:        c.Name,
		Description: c.Description,

		ComponentType:  c.ComponentType,
		SecurityDomain: c.SecurityDomain,
		TrustBoundary:  c.TrustBoundary,
		NetworkZone:    c.NetworkZone,

		PositionX: c.PositionX,
		PositionY: c.PositionY,

		IsActive: true,

		ContainerID: c.ContainerID,
		CreatedByID: c.CreatedByID,
	}
}

func ArchitectureComponentDTOFromModel(component models.ArchitectureComponent) dtos.ArchitectureComponentDTO {
	return dtos.ArchitectureComponentDTO{
		ID:          component.ID,
		Name:        component.Name,
		Description: component.Description,

		ComponentType:  component.ComponentType,
		SecurityDomain: component.SecurityDomain,
		TrustBoundary:  component.TrustBoundary,
		NetworkZone:    component.NetworkZone,

		PositionX: component.PositionX,
		PositionY: component.PositionY,

		IsActive: component.IsActive,

		ContainerID: component.ContainerID,
		CreatedByID: component.CreatedByID,

		CreatedAt: component.CreatedAt,
		UpdatedAt: component.UpdatedAt,
	}
}
