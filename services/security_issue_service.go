package services

import (
	"fmt"
	"log/slog"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/monitoring"
	"github.com/graylake-dev/postureguard/risk"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type securityIssueService struct {
	securityIssueRepository shared.SecurityIssueRepository
	containerRepository     shared.ContainerRepository
	userRepository          shared.UserRepository
	containerService        shared.ContainerService
}

func NewSecurityIssueService(securityIssueRepository shared.SecurityIssueRepository, containerRepository shared.ContainerRepository, userRepository shared.UserRepository, containerService shared.ContainerService) *securityIssueService {
	return &securityIssueService{
		securityIssueRepository: securityIssueRepository,
		containerRepository:     containerRepository,
		userRepository:          userRepository,
		containerService:        containerService,
	}
}

func (s *securityIssueService) Create(req dtos.SecurityIssueCreateRequest) (models.SecurityIssue, error) {
	if _, err := s.containerRepository.Read(req.ContainerID); err != nil {
		return models.SecurityIssue{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", req.ContainerID)).WithInternal(err)
	}

	if _, err := s.userRepository.Read(req.CreatedByID); err != nil {
		return models.SecurityIssue{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", req.CreatedByID)).WithInternal(err)
	}

	if req.AssignedToID != nil {
		if _, err := s.userRepository.Read(*req.AssignedToID); err != nil {
			return models.SecurityIssue{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", *req.AssignedToID)).WithInternal(err)
		}
	}

	if req.ParentIssueID != nil {
		if _, err := s.securityIssueRepository.Read(*req.ParentIssueID); err != nil {
			return models.SecurityIssue{}, echo.NewHTTPError(404, fmt.Sprintf("security issue %d not found", *req.ParentIssueID)).WithInternal(err)
		}
	}

	issue := transformer.SecurityIssueCreateRequestToModel(req)
	issue.RiskScore = risk.IssueScore(issue.ConfidentialityImpact, issue.IntegrityImpact, issue.AvailabilityImpact, issue.ComplianceRelevance, issue.ThirdPartyRisk)

	if err := s.securityIssueRepository.Create(nil, &issue); err != nil {
		return models.SecurityIssue{}, echo.NewHTTPError(500, "could not create security issue").WithInternal(err)
	}

	s.refreshContainerRiskScore(issue.ContainerID)

	return issue, nil
}

func (s *securityIssueService) Update(id uint, patch dtos.SecurityIssuePatchRequest) (models.SecurityIssue, error) {
	issue, err := s.securityIssueRepository.Read(id)
	if err != nil {
		return models.SecurityIssue{}, echo.NewHTTPError(404, fmt.Sprintf("security issue %d not found", id)).WithInternal(err)
	}

	if patch.AssignedToID != nil {
		if _, err := s.userRepository.Read(*patch.AssignedToID); err != nil {
			return models.SecurityIssue{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", *patch.AssignedToID)).WithInternal(err)
		}
	}

	updated, impactChanged := transformer.ApplySecurityIssuePatchRequestToModel(patch, &issue)
	if !updated {
		return issue, nil
	}

	if impactChanged {
		issue.RiskScore = risk.IssueScore(issue.ConfidentialityImpact, issue.IntegrityImpact, issue.AvailabilityImpact, issue.ComplianceRelevance, issue.ThirdPartyRisk)
	}

	if err := s.securityIssueRepository.Save(nil, &issue); err != nil {
		return models.SecurityIssue{}, echo.NewHTTPError(500, "could not update security issue").WithInternal(err)
	}

	s.refreshContainerRiskScore(issue.ContainerID)

	return issue, nil
}

func (s *securityIssueService) List(filter dtos.SecurityIssueFilter, opts shared.ListOptions, sort []shared.SortQuery) ([]models.SecurityIssue, error) {
	issues, err := s.securityIssueRepository.FindByFilter(filter, opts, sort)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security issues").WithInternal(err)
	}
	return issues, nil
}

func (s *securityIssueService) ListByContainer(containerID uint, opts shared.ListOptions) ([]models.SecurityIssue, error) {
	if _, err := s.containerRepository.Read(containerID); err != nil {
		return nil, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", containerID)).WithInternal(err)
	}

	issues, err := s.securityIssueRepository.FindByContainerID(containerID, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security issues").WithInternal(err)
	}
	return issues, nil
}

// refreshContainerRiskScore keeps the container aggregate in sync after an
// issue write. A failing refresh never fails the write itself, the next write
// will catch up.
func (s *securityIssueService) refreshContainerRiskScore(containerID uint) {
	monitoring.RiskRefreshAmount.Inc()

	if err := s.containerService.RefreshRiskScore(containerID); err != nil {
		monitoring.RiskRefreshFailedAmount.Inc()
		slog.Error("could not refresh container risk score", "err", err, "containerID", containerID)
	}
}
