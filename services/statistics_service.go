package services

import (
	"log/slog"
	"time"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/risk"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

const (
	recentViolationWindow = 30 * 24 * time.Hour
	recentViolationLimit  = 10
	topRiskContainerLimit = 5
	topIssueLimit         = 10
)

type statisticsService struct {
	statisticsRepository        shared.StatisticsRepository
	securityIssueRepository     shared.SecurityIssueRepository
	securityViolationRepository shared.SecurityViolationRepository
}

func NewStatisticsService(statisticsRepository shared.StatisticsRepository, securityIssueRepository shared.SecurityIssueRepository, securityViolationRepository shared.SecurityViolationRepository) *statisticsService {
	return &statisticsService{
		statisticsRepository:        statisticsRepository,
		securityIssueRepository:     securityIssueRepository,
		securityViolationRepository: securityViolationRepository,
	}
}

// GetDashboardAnalytics assembles the dashboard from independent read-only
// rollup queries, which therefore run concurrently.
func (s *statisticsService) GetDashboardAnalytics() (dtos.DashboardAnalytics, error) {
	res := utils.Concurrently(
		func() (any, error) {
			return s.statisticsRepository.IssueSeverityDistribution()
		},
		func() (any, error) {
			return s.statisticsRepository.IssueStatusBuckets()
		},
		func() (any, error) {
			return s.statisticsRepository.AverageIssueRiskScore()
		},
		func() (any, error) {
			return s.statisticsRepository.TopRiskContainers(topRiskContainerLimit)
		},
		func() (any, error) {
			return s.securityViolationRepository.FindSince(time.Now().Add(-recentViolationWindow), recentViolationLimit)
		},
		func() (any, error) {
			return s.statisticsRepository.ControlCoverage()
		},
	)

	if res.HasErrors() {
		slog.Error("could not collect dashboard analytics", "errors", res.Errors())
		return dtos.DashboardAnalytics{}, echo.NewHTTPError(500, "could not collect dashboard analytics")
	}

	severity := res.GetValue(0).(dtos.SeverityDistribution)
	violations := res.GetValue(4).([]models.SecurityViolation)

	return dtos.DashboardAnalytics{
		TotalIssues:          severity.Total,
		SeverityDistribution: severity,
		StatusBuckets:        res.GetValue(1).(dtos.StatusBuckets),
		AverageRiskScore:     risk.Round2(res.GetValue(2).(float64)),
		TopRiskContainers:    res.GetValue(3).([]dtos.ContainerRiskSummary),
		RecentViolations:     utils.Map(violations, transformer.SecurityViolationDTOFromModel),
		ControlCoverage:      res.GetValue(5).(dtos.ControlCoverage),
	}, nil
}

// GetContainerRiskAnalytics reports on a single container. An unknown or
// empty container yields zero values instead of an error, only mutation
// paths validate their references.
func (s *statisticsService) GetContainerRiskAnalytics(containerID uint) (dtos.ContainerRiskAnalytics, error) {
	res := utils.Concurrently(
		func() (any, error) {
			return s.securityIssueRepository.GetAllByContainerID(containerID)
		},
		func() (any, error) {
			return s.statisticsRepository.ContainerSeverityCounts(containerID)
		},
		func() (any, error) {
			return s.statisticsRepository.ContainerRiskTimeline(containerID)
		},
		func() (any, error) {
			return s.statisticsRepository.ContainerTopIssues(containerID, topIssueLimit)
		},
	)

	if res.HasErrors() {
		slog.Error("could not collect container risk analytics", "containerID", containerID, "errors", res.Errors())
		return dtos.ContainerRiskAnalytics{}, echo.NewHTTPError(500, "could not collect container risk analytics")
	}

	issues := res.GetValue(0).([]models.SecurityIssue)

	return dtos.ContainerRiskAnalytics{
		ContainerID:    containerID,
		RiskScore:      risk.MeanScore(issues),
		SeverityCounts: res.GetValue(1).(map[string]int),
		RiskTimeline:   res.GetValue(2).([]dtos.RiskTimelinePoint),
		TopIssues:      res.GetValue(3).([]dtos.IssueRiskSummary),
	}, nil
}
