package services

import (
	"fmt"

	"github.com/graylake-dev/postureguard/database"
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/risk"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type containerService struct {
	containerRepository     shared.ContainerRepository
	securityIssueRepository shared.SecurityIssueRepository
	userRepository          shared.UserRepository
}

func NewContainerService(containerRepository shared.ContainerRepository, securityIssueRepository shared.SecurityIssueRepository, userRepository shared.UserRepository) *containerService {
	return &containerService{
		containerRepository:     containerRepository,
		securityIssueRepository: securityIssueRepository,
		userRepository:          userRepository,
	}
}

func (s *containerService) Create(req dtos.ContainerCreateRequest) (models.Container, error) {
	if _, err := s.userRepository.Read(req.CreatedByID); err != nil {
		return models.Container{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", req.CreatedByID)).WithInternal(err)
	}

	container := transformer.ContainerCreateRequestToModel(req)

	if err := s.containerRepository.Create(nil, &container); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Container{}, echo.NewHTTPError(409, fmt.Sprintf("container with slug %s already exists", container.Slug)).WithInternal(err)
		}
		return models.Container{}, echo.NewHTTPError(500, "could not create container").WithInternal(err)
	}

	return container, nil
}

func (s *containerService) List(filter dtos.ContainerFilter, opts shared.ListOptions) ([]models.Container, error) {
	containers, err := s.containerRepository.FindActive(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list containers").WithInternal(err)
	}
	return containers, nil
}

func (s *containerService) Read(id uint) (models.Container, error) {
	container, err := s.containerRepository.Read(id)
	if err != nil {
		return models.Container{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", id)).WithInternal(err)
	}
	return container, nil
}

// UpdateRiskScore recomputes the container score as the severity-weighted
// average over its open issues and persists it. Resolved and closed issues do
// not contribute.
func (s *containerService) UpdateRiskScore(containerID uint) (models.Container, error) {
	container, err := s.containerRepository.Read(containerID)
	if err != nil {
		return models.Container{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", containerID)).WithInternal(err)
	}

	issues, err := s.securityIssueRepository.GetAllByContainerID(containerID)
	if err != nil {
		return models.Container{}, echo.NewHTTPError(500, "could not load security issues").WithInternal(err)
	}

	container.RiskScore = risk.WeightedOpenScore(issues)

	if err := s.containerRepository.Save(nil, &container); err != nil {
		return models.Container{}, echo.NewHTTPError(500, "could not save container").WithInternal(err)
	}

	return container, nil
}

// RefreshRiskScore keeps the container score in sync after issue writes. It
// uses the plain average over all issues of the container regardless of
// status.
func (s *containerService) RefreshRiskScore(containerID uint) error {
	issues, err := s.securityIssueRepository.GetAllByContainerID(containerID)
	if err != nil {
		return fmt.Errorf("could not load issues of container %d: %w", containerID, err)
	}

	container, err := s.containerRepository.Read(containerID)
	if err != nil {
		return fmt.Errorf("could not read container %d: %w", containerID, err)
	}

	container.RiskScore = risk.MeanScore(issues)

	if err := s.containerRepository.Save(nil, &container); err != nil {
		return fmt.Errorf("could not save container %d: %w", containerID, err)
	}

	return nil
}

func (s *containerService) GetSeverityBadgeSVG(distribution dtos.SeverityDistribution) string {
	if distribution.Critical == 0 && distribution.High == 0 && distribution.Medium == 0 && distribution.Low == 0 {
		return shared.GetBadgeSVG("Risk", []shared.BadgeValues{
			{Key: "all clear", Value: 0, Color: "#008000"},
		})
	}

	values := []shared.BadgeValues{
		{Key: "C", Value: distribution.Critical, Color: "#8B0000"},
		{Key: "H", Value: distribution.High, Color: "#B22222"},
		{Key: "M", Value: distribution.Medium, Color: "#CD5C5C"},
		{Key: "L", Value: distribution.Low, Color: "#F08080"},
	}
	return shared.GetBadgeSVG("Risk", values)
}
