package services

import (
	"fmt"
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetDashboardAnalytics(t *testing.T) {
	t.Run("should assemble all rollups into one response", func(t *testing.T) {
		statisticsRepository := mocks.NewStatisticsRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)

		statisticsRepository.On("IssueSeverityDistribution").Return(dtos.SeverityDistribution{
			Total: 4, Critical: 1, High: 1, Medium: 1, Low: 1,
		}, nil)
		statisticsRepository.On("IssueStatusBuckets").Return(dtos.StatusBuckets{Open: 3, Resolved: 1}, nil)
		statisticsRepository.On("AverageIssueRiskScore").Return(61.25, nil)
		statisticsRepository.On("TopRiskContainers", 5).Return([]dtos.ContainerRiskSummary{
			{ID: 1, Name: "Payment Gateway", AvgRiskScore: 80},
			{ID: 2, Name: "Customer Portal", AvgRiskScore: 40},
		}, nil)
		securityViolationRepository.On("FindSince", mock.AnythingOfType("time.Time"), 10).Return([]models.SecurityViolation{
			{Title: "Shared admin account used", Severity: dtos.SeverityHigh, Status: dtos.StatusOpen},
		}, nil)
		statisticsRepository.On("ControlCoverage").Return(dtos.ControlCoverage{Existing: 2, Planned: 1}, nil)

		s := NewStatisticsService(statisticsRepository, securityIssueRepository, securityViolationRepository)

		analytics, err := s.GetDashboardAnalytics()

		assert.NoError(t, err)
		assert.Equal(t, 4, analytics.TotalIssues)
		assert.Equal(t, 61.25, analytics.AverageRiskScore)
		assert.Len(t, analytics.TopRiskContainers, 2)
		assert.Equal(t, "Payment Gateway", analytics.TopRiskContainers[0].Name)
		assert.Len(t, analytics.RecentViolations, 1)
		assert.Equal(t, "Shared admin account used", analytics.RecentViolations[0].Title)
		assert.Equal(t, dtos.ControlCoverage{Existing: 2, Planned: 1}, analytics.ControlCoverage)
	})

	t.Run("should fail as a whole when a single rollup fails", func(t *testing.T) {
		statisticsRepository := mocks.NewStatisticsRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)

		statisticsRepository.On("IssueSeverityDistribution").Return(dtos.SeverityDistribution{}, nil)
		statisticsRepository.On("IssueStatusBuckets").Return(dtos.StatusBuckets{}, nil)
		statisticsRepository.On("AverageIssueRiskScore").Return(0.0, fmt.Errorf("connection refused"))
		statisticsRepository.On("TopRiskContainers", 5).Return([]dtos.ContainerRiskSummary{}, nil)
		securityViolationRepository.On("FindSince", mock.AnythingOfType("time.Time"), 10).Return([]models.SecurityViolation{}, nil)
		statisticsRepository.On("ControlCoverage").Return(dtos.ControlCoverage{}, nil)

		s := NewStatisticsService(statisticsRepository, securityIssueRepository, securityViolationRepository)

		_, err := s.GetDashboardAnalytics()

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 500, httpError.Code)
	})
}

func TestGetContainerRiskAnalytics(t *testing.T) {
	t.Run("should average over all issues of the container", func(t *testing.T) {
		statisticsRepository := mocks.NewStatisticsRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)

		securityIssueRepository.On("GetAllByContainerID", uint(3)).Return([]models.SecurityIssue{
			{RiskScore: 90, Status: dtos.StatusOpen},
			{RiskScore: 10, Status: dtos.StatusClosed},
		}, nil)
		statisticsRepository.On("ContainerSeverityCounts", uint(3)).Return(map[string]int{"Critical": 1, "Low": 1}, nil)
		statisticsRepository.On("ContainerRiskTimeline", uint(3)).Return([]dtos.RiskTimelinePoint{
			{Day: "2026-08-20", AvgRiskScore: 50, IssueCount: 2},
		}, nil)
		statisticsRepository.On("ContainerTopIssues", uint(3), 10).Return([]dtos.IssueRiskSummary{
			{ID: 9, Title: "Outdated TLS configuration", RiskScore: 90},
		}, nil)

		s := NewStatisticsService(statisticsRepository, securityIssueRepository, securityViolationRepository)

		analytics, err := s.GetContainerRiskAnalytics(3)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), analytics.ContainerID)
		assert.Equal(t, 50.0, analytics.RiskScore)
		assert.Len(t, analytics.RiskTimeline, 1)
		assert.Len(t, analytics.TopIssues, 1)
	})

	t.Run("should yield zero values for an unknown container", func(t *testing.T) {
		statisticsRepository := mocks.NewStatisticsRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)

		securityIssueRepository.On("GetAllByContainerID", uint(999999)).Return([]models.SecurityIssue{}, nil)
		statisticsRepository.On("ContainerSeverityCounts", uint(999999)).Return(map[string]int{}, nil)
		statisticsRepository.On("ContainerRiskTimeline", uint(999999)).Return([]dtos.RiskTimelinePoint{}, nil)
		statisticsRepository.On("ContainerTopIssues", uint(999999), 10).Return([]dtos.IssueRiskSummary{}, nil)

		s := NewStatisticsService(statisticsRepository, securityIssueRepository, securityViolationRepository)

		analytics, err := s.GetContainerRiskAnalytics(999999)

		assert.NoError(t, err)
		assert.Equal(t, uint(999999), analytics.ContainerID)
		assert.Equal(t, 0.0, analytics.RiskScore)
		assert.Empty(t, analytics.SeverityCounts)
		assert.Empty(t, analytics.RiskTimeline)
		assert.Empty(t, analytics.TopIssues)
	})
}
