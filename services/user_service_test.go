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

func TestUserCreate(t *testing.T) {
	t.Run("should create an active user", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewUserService(userRepository)

		user, err := s.Create(dtos.UserCreateRequest{
			Username: "ada",
			Email:    "ada@example.com",
			FullName: "Ada Lovelace",
			Role:     dtos.UserRoleAdmin,
		})

		assert.NoError(t, err)
		assert.True(t, user.IsActive)
		assert.Equal(t, dtos.UserRoleAdmin, user.Role)
	})

	t.Run("should map a unique constraint violation to a conflict", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"idx_users_username\" (SQLSTATE 23505)"))

		s := NewUserService(userRepository)

		_, err := s.Create(dtos.UserCreateRequest{
			Username: "ada",
			Email:    "ada@example.com",
			FullName: "Ada Lovelace",
			Role:     dtos.UserRoleAdmin,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
		assert.Equal(t, "user with username ada or email ada@example.com already exists", httpError.Message)
	})
}

func TestUserList(t *testing.T) {
	t.Run("should pass the filter through to the repository", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)

		role := dtos.UserRoleSecurityAnalyst
		filter := dtos.UserFilter{Role: &role}
		opts := shared.ListOptions{Limit: 50}
		userRepository.On("FindByFilter", filter, opts).Return([]models.User{
			{Username: "grace", Role: dtos.UserRoleSecurityAnalyst},
		}, nil)

		s := NewUserService(userRepository)

		users, err := s.List(filter, opts)

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "grace", users[0].Username)
	})
}
