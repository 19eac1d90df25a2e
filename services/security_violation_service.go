package services

import (
	"fmt"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type securityViolationService struct {
	securityViolationRepository shared.SecurityViolationRepository
	securityIssueRepository     shared.SecurityIssueRepository
	containerRepository         shared.ContainerRepository
	userRepository              shared.UserRepository
}

func NewSecurityViolationService(securityViolationRepository shared.SecurityViolationRepository, securityIssueRepository shared.SecurityIssueRepository, containerRepository shared.ContainerRepository, userRepository shared.UserRepository) *securityViolationService {
	return &securityViolationService{
		securityViolationRepository: securityViolationRepository,
		securityIssueRepository:     securityIssueRepository,
		containerRepository:         containerRepository,
		userRepository:              userRepository,
	}
}

func (s *securityViolationService) Create(req dtos.SecurityViolationCreateRequest) (models.SecurityViolation, error) {
	if req.ContainerID != nil {
		if _, err := s.containerRepository.Read(*req.ContainerID); err != nil {
			return models.SecurityViolation{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", *req.ContainerID)).WithInternal(err)
		}
	}

	if req.RelatedIssueID != nil {
		if _, err := s.securityIssueRepository.Read(*req.RelatedIssueID); err != nil {
			return models.SecurityViolation{}, echo.NewHTTPError(404, fmt.Sprintf("security issue %d not found", *req.RelatedIssueID)).WithInternal(err)
		}
	}

	if req.AssignedToID != nil {
		if _, err := s.userRepository.Read(*req.AssignedToID); err != nil {
			return models.SecurityViolation{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", *req.AssignedToID)).WithInternal(err)
		}
	}

	if _, err := s.userRepository.Read(req.CreatedByID); err != nil {
		return models.SecurityViolation{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", req.CreatedByID)).WithInternal(err)
	}

	violation := transformer.SecurityViolationCreateRequestToModel(req)

	if err := s.securityViolationRepository.Create(nil, &violation); err != nil {
		return models.SecurityViolation{}, echo.NewHTTPError(500, "could not create security violation").WithInternal(err)
	}

	return violation, nil
}

func (s *securityViolationService) List(filter dtos.SecurityViolationFilter, opts shared.ListOptions) ([]models.SecurityViolation, error) {
	violations, err := s.securityViolationRepository.FindByFilter(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security violations").WithInternal(err)
	}
	return violations, nil
}

func (s *securityViolationService) ListActive(opts shared.ListOptions) ([]models.SecurityViolation, error) {
	violations, err := s.securityViolationRepository.FindActive(opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list active security violations").WithInternal(err)
	}
	return violations, nil
}

func (s *securityViolationService) ListWithDetails(filter dtos.SecurityViolationFilter, opts shared.ListOptions) ([]dtos.SecurityViolationDetailDTO, error) {
	details, err := s.securityViolationRepository.FindWithDetails(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security violations").WithInternal(err)
	}
	return details, nil
}
