package services

import (
	"fmt"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type securityControlService struct {
	securityControlRepository shared.SecurityControlRepository
	containerRepository       shared.ContainerRepository
	userRepository            shared.UserRepository
}

func NewSecurityControlService(securityControlRepository shared.SecurityControlRepository, containerRepository shared.ContainerRepository, userRepository shared.UserRepository) *securityControlService {
	return &securityControlService{
		securityControlRepository: securityControlRepository,
		containerRepository:       containerRepository,
		userRepository:            userRepository,
	}
}

func (s *securityControlService) Create(req dtos.SecurityControlCreateRequest) (models.SecurityControl, error) {
	if _, err := s.containerRepository.Read(req.ContainerID); err != nil {
		return models.SecurityControl{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", req.ContainerID)).WithInternal(err)
	}

	if _, err := s.userRepository.Read(req.CreatedByID); err != nil {
		return models.SecurityControl{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", req.CreatedByID)).WithInternal(err)
	}

	control := transformer.SecurityControlCreateRequestToModel(req)

	if err := s.securityControlRepository.Create(nil, &control); err != nil {
		return models.SecurityControl{}, echo.NewHTTPError(500, "could not create security control").WithInternal(err)
	}

	return control, nil
}

func (s *securityControlService) List(filter dtos.SecurityControlFilter, opts shared.ListOptions) ([]models.SecurityControl, error) {
	controls, err := s.securityControlRepository.FindByFilter(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security controls").WithInternal(err)
	}
	return controls, nil
}

func (s *securityControlService) ListByContainer(containerID uint, opts shared.ListOptions) ([]models.SecurityControl, error) {
	if _, err := s.containerRepository.Read(containerID); err != nil {
		return nil, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", containerID)).WithInternal(err)
	}

	controls, err := s.securityControlRepository.FindByContainerID(containerID, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security controls").WithInternal(err)
	}
	return controls, nil
}
