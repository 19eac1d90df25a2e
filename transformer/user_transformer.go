package transformer

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
)

func UserCreateRequestToModel(c dtos.UserCreateRequest) models.User {
	return models.User{
		Username: c.Username,
		Email:    c.Email,
		FullName: c.FullName,
		Role:     c.Role,
		IsActive: true,
	}
}

func UserDTOFromModel(user models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
