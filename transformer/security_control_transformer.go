package transformer

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/utils"
)

func SecurityControlCreateRequestToModel(c dtos.SecurityControlCreateRequest) models.SecurityControl {
	return models.SecurityControl{
		Name:        c.Name,
		Description: c.Description,

		ControlType:        c.ControlType,
		ControlFamily:      c.ControlFamily,
		FrameworkReference: c.FrameworkReference,

		ImplementationStatus: utils.OrDefault(c.ImplementationStatus, dtos.ImplementationStatusNotSpecified),
		EffectivenessRating:  c.EffectivenessRating,

		IsActive: true,

		ContainerID: c.ContainerID,
		CreatedByID: c.CreatedByID,
	}
}

func SecurityControlDTOFromModel(control models.SecurityControl) dtos.SecurityControlDTO {
	return dtos.SecurityControlDTO{
		ID:          control.ID,
		Name:        control.Name,
		Description: control.Description,

		ControlType:        control.ControlType,
		ControlFamily:      control.ControlFamily,
		FrameworkReference: control.FrameworkReference,

		ImplementationStatus: control.ImplementationStatus,
		EffectivenessRating:  control.EffectivenessRating,

		IsActive: control.IsActive,

		ContainerID: control.ContainerID,
		CreatedByID: control.CreatedByID,

		CreatedAt: control.CreatedAt,
		UpdatedAt: control.UpdatedAt,
	}
}
