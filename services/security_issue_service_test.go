package services

import (
	"fmt"
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSecurityIssueCreate(t *testing.T) {
	t.Run("should derive the risk score from the impact dimensions", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityIssueRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		containerService.On("RefreshRiskScore", uint(1)).Return(nil)

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		issue, err := s.Create(dtos.SecurityIssueCreateRequest{
			Title:                 "SQL injection in login form",
			Severity:              dtos.SeverityHigh,
			Classification:        dtos.ClassificationVulnerability,
			ConfidentialityImpact: 80,
			IntegrityImpact:       70,
			AvailabilityImpact:    60,
			ComplianceRelevance:   10,
			ThirdPartyRisk:        5,
			ContainerID:           1,
			CreatedByID:           7,
		})

		assert.NoError(t, err)
		assert.Equal(t, 54.5, issue.RiskScore)
		assert.Equal(t, dtos.StatusOpen, issue.Status)
		assert.Equal(t, dtos.HierarchyLevelTask, issue.HierarchyLevel)
	})

	t.Run("should fail with a not found error naming the container id", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		containerRepository.On("Read", uint(999999)).Return(models.Container{}, fmt.Errorf("record not found"))

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		_, err := s.Create(dtos.SecurityIssueCreateRequest{
			Title:          "Dangling issue",
			Severity:       dtos.SeverityLow,
			Classification: dtos.ClassificationWeakness,
			ContainerID:    999999,
			CreatedByID:    7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "container 999999 not found", httpError.Message)
	})

	t.Run("should fail with a not found error naming the assignee id", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		userRepository.On("Read", uint(42)).Return(models.User{}, fmt.Errorf("record not found"))

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		_, err := s.Create(dtos.SecurityIssueCreateRequest{
			Title:          "Unassignable issue",
			Severity:       dtos.SeverityLow,
			Classification: dtos.ClassificationWeakness,
			ContainerID:    1,
			AssignedToID:   utils.Ptr(uint(42)),
			CreatedByID:    7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "user 42 not found", httpError.Message)
	})

	t.Run("should not fail the write when the container score refresh fails", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityIssueRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		containerService.On("RefreshRiskScore", uint(1)).Return(fmt.Errorf("container vanished"))

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		issue, err := s.Create(dtos.SecurityIssueCreateRequest{
			Title:          "Issue with failing refresh",
			Severity:       dtos.SeverityMedium,
			Classification: dtos.ClassificationMisconfiguration,
			ContainerID:    1,
			CreatedByID:    7,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Issue with failing refresh", issue.Title)
	})
}

func TestSecurityIssueUpdate(t *testing.T) {
	t.Run("should recombine unchanged dimensions with the patched ones", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		stored := models.SecurityIssue{
			Title:                 "Stale dependency",
			Severity:              dtos.SeverityMedium,
			Status:                dtos.StatusOpen,
			ConfidentialityImpact: 50,
			IntegrityImpact:       30,
			AvailabilityImpact:    20,
			ComplianceRelevance:   10,
			ThirdPartyRisk:        5,
			RiskScore:             23,
			ContainerID:           3,
		}
		securityIssueRepository.On("Read", uint(12)).Return(stored, nil)
		securityIssueRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		containerService.On("RefreshRiskScore", uint(3)).Return(nil)

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		issue, err := s.Update(12, dtos.SecurityIssuePatchRequest{
			ConfidentialityImpact: utils.Ptr(90),
			ComplianceRelevance:   utils.Ptr(40),
		})

		assert.NoError(t, err)
		assert.Equal(t, 41.5, issue.RiskScore)
		assert.Equal(t, 30, issue.IntegrityImpact)
		assert.Equal(t, 20, issue.AvailabilityImpact)
		assert.Equal(t, 5, issue.ThirdPartyRisk)
	})

	t.Run("should keep the risk score when no impact dimension changes", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		stored := models.SecurityIssue{
			Title:       "Stale dependency",
			Status:      dtos.StatusOpen,
			RiskScore:   23,
			ContainerID: 3,
		}
		securityIssueRepository.On("Read", uint(12)).Return(stored, nil)
		securityIssueRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		containerService.On("RefreshRiskScore", uint(3)).Return(nil)

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		issue, err := s.Update(12, dtos.SecurityIssuePatchRequest{
			Status: utils.Ptr(dtos.StatusResolved),
		})

		assert.NoError(t, err)
		assert.Equal(t, 23.0, issue.RiskScore)
		assert.Equal(t, dtos.StatusResolved, issue.Status)
	})

	t.Run("should return the stored issue untouched for an empty patch", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		stored := models.SecurityIssue{Title: "Stale dependency", RiskScore: 23}
		securityIssueRepository.On("Read", uint(12)).Return(stored, nil)

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		issue, err := s.Update(12, dtos.SecurityIssuePatchRequest{})

		assert.NoError(t, err)
		assert.Equal(t, stored, issue)
	})

	t.Run("should fail with a not found error for an unknown issue", func(t *testing.T) {
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)
		containerService := mocks.NewContainerService(t)

		securityIssueRepository.On("Read", uint(404)).Return(models.SecurityIssue{}, fmt.Errorf("record not found"))

		s := NewSecurityIssueService(securityIssueRepository, containerRepository, userRepository, containerService)

		_, err := s.Update(404, dtos.SecurityIssuePatchRequest{Title: utils.Ptr("new title")})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "security issue 404 not found", httpError.Message)
	})
}
