package services

import (
	"fmt"

	"github.com/graylake-dev/postureguard/database"
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type userService struct {
	userRepository shared.UserRepository
}

func NewUserService(userRepository shared.UserRepository) *userService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) Create(req dtos.UserCreateRequest) (models.User, error) {
	user := transformer.UserCreateRequestToModel(req)

	if err := s.userRepository.Create(nil, &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.User{}, echo.NewHTTPError(409, fmt.Sprintf("user with username %s or email %s already exists", req.Username, req.Email)).WithInternal(err)
		}
		return models.User{}, echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}

	return user, nil
}

func (s *userService) List(filter dtos.UserFilter, opts shared.ListOptions) ([]models.User, error) {
	users, err := s.userRepository.FindByFilter(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list users").WithInternal(err)
	}
	return users, nil
}
