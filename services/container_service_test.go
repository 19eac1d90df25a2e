package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContainerCreate(t *testing.T) {
	t.Run("should slugify the name and persist the container", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		containerRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		container, err := s.Create(dtos.ContainerCreateRequest{
			Name:        "Payment Gateway",
			Type:        dtos.ContainerTypeService,
			CreatedByID: 7,
		})

		assert.NoError(t, err)
		assert.Equal(t, "payment-gateway", container.Slug)
		assert.True(t, container.IsActive)
		assert.Equal(t, 0.0, container.RiskScore)
	})

	t.Run("should translate a duplicate slug into a conflict error", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		containerRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"idx_containers_slug\" (SQLSTATE 23505)"))

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		_, err := s.Create(dtos.ContainerCreateRequest{
			Name:        "Payment Gateway",
			Type:        dtos.ContainerTypeService,
			CreatedByID: 7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
		assert.Equal(t, "container with slug payment-gateway already exists", httpError.Message)
	})

	t.Run("should fail with a not found error for an unknown creator", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(999999)).Return(models.User{}, fmt.Errorf("record not found"))

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		_, err := s.Create(dtos.ContainerCreateRequest{
			Name:        "Orphan",
			Type:        dtos.ContainerTypeProject,
			CreatedByID: 999999,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "user 999999 not found", httpError.Message)
	})
}

func TestContainerUpdateRiskScore(t *testing.T) {
	t.Run("should persist the severity weighted average over open issues", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(3)).Return(models.Container{Name: "Payment Gateway"}, nil)
		securityIssueRepository.On("GetAllByContainerID", uint(3)).Return([]models.SecurityIssue{
			{RiskScore: 90, Severity: dtos.SeverityCritical, Status: dtos.StatusOpen},
			{RiskScore: 60, Severity: dtos.SeverityHigh, Status: dtos.StatusOpen},
			// closed issues contribute to the write triggered mean but not here
			{RiskScore: 100, Severity: dtos.SeverityCritical, Status: dtos.StatusClosed},
		}, nil)
		containerRepository.On("Save", mock.Anything, mock.MatchedBy(func(c *models.Container) bool {
			return c.RiskScore == 76.67
		})).Return(nil)

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		container, err := s.UpdateRiskScore(3)

		assert.NoError(t, err)
		assert.Equal(t, 76.67, container.RiskScore)
	})

	t.Run("should fail with a not found error for an unknown container", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(999999)).Return(models.Container{}, fmt.Errorf("record not found"))

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		_, err := s.UpdateRiskScore(999999)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "container 999999 not found", httpError.Message)
	})
}

func TestContainerRefreshRiskScore(t *testing.T) {
	t.Run("should persist the plain mean over all issues regardless of status", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		securityIssueRepository.On("GetAllByContainerID", uint(3)).Return([]models.SecurityIssue{
			{RiskScore: 90, Status: dtos.StatusOpen},
			{RiskScore: 10, Status: dtos.StatusClosed},
		}, nil)
		containerRepository.On("Read", uint(3)).Return(models.Container{Name: "Payment Gateway"}, nil)
		containerRepository.On("Save", mock.Anything, mock.MatchedBy(func(c *models.Container) bool {
			return c.RiskScore == 50.0
		})).Return(nil)

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		assert.NoError(t, s.RefreshRiskScore(3))
	})

	t.Run("should report the failure instead of an http error", func(t *testing.T) {
		containerRepository := mocks.NewContainerRepository(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)
		userRepository := mocks.NewUserRepository(t)

		securityIssueRepository.On("GetAllByContainerID", uint(3)).Return(nil, fmt.Errorf("connection refused"))

		s := NewContainerService(containerRepository, securityIssueRepository, userRepository)

		err := s.RefreshRiskScore(3)

		assert.Error(t, err)
		httpError := &echo.HTTPError{}
		assert.False(t, errors.As(err, &httpError))
		assert.Contains(t, err.Error(), "could not load issues of container 3")
	})
}

func TestGetSeverityBadgeSVG(t *testing.T) {
	t.Run("should render one segment per severity", func(t *testing.T) {
		s := NewContainerService(mocks.NewContainerRepository(t), mocks.NewSecurityIssueRepository(t), mocks.NewUserRepository(t))

		svg := s.GetSeverityBadgeSVG(dtos.SeverityDistribution{Critical: 2, High: 1, Medium: 4, Low: 0})

		assert.True(t, strings.HasPrefix(svg, "<svg"))
		assert.Contains(t, svg, "C:2")
		assert.Contains(t, svg, "H:1")
		assert.Contains(t, svg, "M:4")
		assert.Contains(t, svg, "L:0")
	})

	t.Run("should render an all clear badge without any issue", func(t *testing.T) {
		s := NewContainerService(mocks.NewContainerRepository(t), mocks.NewSecurityIssueRepository(t), mocks.NewUserRepository(t))

		svg := s.GetSeverityBadgeSVG(dtos.SeverityDistribution{})

		assert.Contains(t, svg, "all clear")
		assert.NotContains(t, svg, "C:0")
	})
}
