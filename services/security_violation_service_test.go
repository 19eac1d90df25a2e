package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSecurityViolationCreate(t *testing.T) {
	t.Run("should create the violation as Open without touching optional references", func(t *testing.T) {
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityViolationRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewSecurityViolationService(securityViolationRepository, securityIssueRepository, containerRepository, userRepository)

		violation, err := s.Create(dtos.SecurityViolationCreateRequest{
			Title:         "Unreviewed firewall change",
			ViolationType: dtos.ViolationTypePolicyViolation,
			Severity:      dtos.SeverityHigh,
			IncidentDate:  time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			CreatedByID:   7,
		})

		assert.NoError(t, err)
		assert.Equal(t, dtos.StatusOpen, violation.Status)
		assert.Nil(t, violation.ContainerID)
		assert.Nil(t, violation.RelatedIssueID)
	})

	t.Run("should validate each optional reference that is set", func(t *testing.T) {
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		securityIssueRepository.On("Read", uint(77)).Return(models.SecurityIssue{}, fmt.Errorf("record not found"))

		s := NewSecurityViolationService(securityViolationRepository, securityIssueRepository, containerRepository, userRepository)

		containerID := uint(1)
		relatedIssueID := uint(77)
		_, err := s.Create(dtos.SecurityViolationCreateRequest{
			Title:          "Stale credentials in use",
			ViolationType:  dtos.ViolationTypeAccessViolation,
			Severity:       dtos.SeverityMedium,
			IncidentDate:   time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			ContainerID:    &containerID,
			RelatedIssueID: &relatedIssueID,
			CreatedByID:    7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "security issue 77 not found", httpError.Message)
	})

	t.Run("should reject an unknown creator", func(t *testing.T) {
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(999999)).Return(models.User{}, fmt.Errorf("record not found"))

		s := NewSecurityViolationService(securityViolationRepository, securityIssueRepository, containerRepository, userRepository)

		_, err := s.Create(dtos.SecurityViolationCreateRequest{
			Title:         "Backup job disabled",
			ViolationType: dtos.ViolationTypeComplianceBreach,
			Severity:      dtos.SeverityLow,
			IncidentDate:  time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			CreatedByID:   999999,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "user 999999 not found", httpError.Message)
	})
}

func TestSecurityViolationListActive(t *testing.T) {
	t.Run("should pass the list options through to the repository", func(t *testing.T) {
		securityViolationRepository := mocks.NewSecurityViolationRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		opts := shared.ListOptions{Limit: 20, Offset: 40}
		securityViolationRepository.On("FindActive", opts).Return([]models.SecurityViolation{
			{Title: "Shared admin account used", Status: dtos.StatusOpen},
			{Title: "Unencrypted export", Status: dtos.StatusInProgress},
		}, nil)

		s := NewSecurityViolationService(securityViolationRepository, securityIssueRepository, containerRepository, userRepository)

		violations, err := s.ListActive(opts)

		assert.NoError(t, err)
		assert.Len(t, violations, 2)
	})
}
