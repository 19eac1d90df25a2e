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

func TestArchitectureComponentCreate(t *testing.T) {
	t.Run("should create the component with its diagram position", func(t *testing.T) {
		architectureComponentRepository := mocks.NewArchitectureComponentRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(1)).Return(models.Container{}, nil)
		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		architectureComponentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewArchitectureComponentService(architectureComponentRepository, containerRepository, userRepository)

		x := 120.5
		y := 48.0
		zone := "DMZ"
		component, err := s.Create(dtos.ArchitectureComponentCreateRequest{
			Name:          "API Gateway",
			ComponentType: "Gateway",
			NetworkZone:   &zone,
			PositionX:     &x,
			PositionY:     &y,
			ContainerID:   1,
			CreatedByID:   7,
		})

		assert.NoError(t, err)
		assert.True(t, component.IsActive)
		assert.Equal(t, 120.5, *component.PositionX)
		assert.Equal(t, "DMZ", *component.NetworkZone)
	})

	t.Run("should reject an unknown container", func(t *testing.T) {
		architectureComponentRepository := mocks.NewArchitectureComponentRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(999999)).Return(models.Container{}, fmt.Errorf("record not found"))

		s := NewArchitectureComponentService(architectureComponentRepository, containerRepository, userRepository)

		_, err := s.Create(dtos.ArchitectureComponentCreateRequest{
			Name:          "Message Broker",
			ComponentType: "Queue",
			ContainerID:   999999,
			CreatedByID:   7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "container 999999 not found", httpError.Message)
	})
}

func TestArchitectureComponentListByContainer(t *testing.T) {
	t.Run("should reject an unknown container instead of returning an empty list", func(t *testing.T) {
		architectureComponentRepository := mocks.NewArchitectureComponentRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		containerRepository.On("Read", uint(999999)).Return(models.Container{}, fmt.Errorf("record not found"))

		s := NewArchitectureComponentService(architectureComponentRepository, containerRepository, userRepository)

		_, err := s.ListByContainer(999999, shared.ListOptions{Limit: 50})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "container 999999 not found", httpError.Message)
	})
}
