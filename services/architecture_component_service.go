package services

import (
	"fmt"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type architectureComponentService struct {
	architectureComponentRepository shared.ArchitectureComponentRepository
	containerRepository             shared.ContainerRepository
	userRepository                  shared.UserRepository
}

func NewArchitectureComponentService(architectureComponentRepository shared.ArchitectureComponentRepository, containerRepository shared.ContainerRepository, userRepository shared.UserRepository) *architectureComponentService {
	return &architectureComponentService{
		architectureComponentRepository: architectureComponentRepository,
		containerRepository:             containerRepository,
		userRepository:                  userRepository,
	}
}

func (s *architectureComponentService) Create(req dtos.ArchitectureComponentCreateRequest) (models.ArchitectureComponent, error) {
	if _, err := s.containerRepository.Read(req.ContainerID); err != nil {
		return models.ArchitectureComponent{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", req.ContainerID)).WithInternal(err)
	}

	if _, err := s.userRepository.Read(req.CreatedByID); err != nil {
		return models.ArchitectureComponent{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", req.CreatedByID)).WithInternal(err)
	}

	component := transformer.ArchitectureComponentCreateRequestToModel(req)

	if err := s.architectureComponentRepository.Create(nil, &component); err != nil {
		return models.ArchitectureComponent{}, echo.NewHTTPError(500, "could not create architecture component").WithInternal(err)
	}

	return component, nil
}

func (s *architectureComponentService) List(filter dtos.ArchitectureComponentFilter, opts shared.ListOptions) ([]models.ArchitectureComponent, error) {
	components, err := s.architectureComponentRepository.FindByFilter(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list architecture components").WithInternal(err)
	}
	return components, nil
}

func (s *architectureComponentService) ListByContainer(containerID uint, opts shared.ListOptions) ([]models.ArchitectureComponent, error) {
	if _, err := s.containerRepository.Read(containerID); err != nil {
		return nil, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", containerID)).WithInternal(err)
	}

	components, err := s.architectureComponentRepository.FindByContainerID(containerID, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list architecture components").WithInternal(err)
	}
	return components, nil
}
