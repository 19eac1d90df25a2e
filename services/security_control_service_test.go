package services

import (
	"fmt"
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSecurityControlCreate(t *testing.T) {
	t.Run("should default the implementation status to NotSpecified", func(t *testing.T) {
		securityControlRepository := mocks.NewSecurityControlRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityControlRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewSecurityControlService(securityControlRepository, containerRepository, userRepository)

		control, err := s.Create(dtos.SecurityControlCreateRequest{
			Name:        "TLS termination at the edge",
			ControlType: "Preventive",
			ContainerID: 1,
			CreatedByID: 7,
		})

		assert.NoError(t, err)
		assert.Equal(t, dtos.ImplementationStatusNotSpecified, control.ImplementationStatus)
		assert.True(t, control.IsActive)
	})

	t.Run("should keep an explicit implementation status", func(t *testing.T) {
		securityControlRepository := mocks.NewSecurityControlRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityControlRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewSecurityControlService(securityControlRepository, containerRepository, userRepository)

		status := dtos.ImplementationStatusPlanned
		rating := 75
		control, err := s.Create(dtos.SecurityControlCreateRequest{
			Name:                 "Quarterly access review",
			ControlType:          "Detective",
			ImplementationStatus: &status,
			EffectivenessRating:  &rating,
			ContainerID:          1,
			CreatedByID:          7,
		})

		assert.NoError(t, err)
		assert.Equal(t, dtos.ImplementationStatusPlanned, control.ImplementationStatus)
		assert.Equal(t, 75, *control.EffectivenessRating)
	})

	t.Run("should reject an unknown container", func(t *testing.T) {
		securityControlRepository := mocks.NewSecurityControlRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(999999)).Return(models.Container{}, fmt.Errorf("record not found"))

		s := NewSecurityControlService(securityControlRepository, containerRepository, userRepository)

		_, err := s.Create(dtos.SecurityControlCreateRequest{
			Name:        "Dependency pinning",
			ControlType: "Preventive",
			ContainerID: 999999,
			CreatedByID: 7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "container 999999 not found", httpError.Message)
	})
}

func TestSecurityControlListByContainer(t *testing.T) {
	t.Run("should reject an unknown container instead of returning an empty list", func(t *testing.T) {
		securityControlRepository := mocks.NewSecurityControlRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(999999)).Return(models.Container{}, fmt.Errorf("record not found"))

		s := NewSecurityControlService(securityControlRepository, containerRepository, userRepository)

		_, err := s.ListByContainer(999999, shared.ListOptions{Limit: 50})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "container 999999 not found", httpError.Message)
	})
}
